package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/mwhitten/jobtrack/pkg/status"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

func statusGet(c *cli.Context) error {
	// Args
	if len(c.Args()) != 1 {
		return errors.New(
			"status get requires one argument-- a job ID",
		)
	}
	id := c.Args()[0]

	// Command-specific flags
	output := c.String(flagOutput)

	if err := validateOutputFormat(output); err != nil {
		return err
	}

	redisProvider, err := getRedisProvider()
	if err != nil {
		return errors.Wrap(err, "error getting redis connection")
	}
	store := status.NewStore(redisProvider, nil)

	record, err := store.ReadHashForID(id)
	if err != nil {
		return err
	}
	if len(record) == 0 {
		return errors.Errorf(
			"no status record found for job %q; it may be unknown or expired",
			id,
		)
	}

	switch strings.ToLower(output) {
	case "table":
		fields := make([]string, 0, len(record))
		for field := range record {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		table := uitable.New()
		table.AddRow("FIELD", "VALUE")
		for _, field := range fields {
			table.AddRow(field, record[field])
		}
		fmt.Println(table)

	case "json":
		prettyJSON, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return errors.Wrap(
				err,
				"error formatting output from get status operation",
			)
		}
		fmt.Println(string(prettyJSON))
	}

	return nil
}
