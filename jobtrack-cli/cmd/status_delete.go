package main

import (
	"fmt"

	"github.com/mwhitten/jobtrack/pkg/status"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

func statusDelete(c *cli.Context) error {
	// Args
	if len(c.Args()) != 1 {
		return errors.New(
			"status delete requires one argument-- a job ID",
		)
	}
	id := c.Args()[0]

	redisProvider, err := getRedisProvider()
	if err != nil {
		return errors.Wrap(err, "error getting redis connection")
	}
	store := status.NewStore(redisProvider, nil)

	removed, err := store.DeleteStatus(id)
	if err != nil {
		return err
	}
	if removed == 0 {
		fmt.Printf("No status record found for job %q.\n", id)
		return nil
	}

	fmt.Printf("Deleted status record for job %q.\n", id)

	return nil
}
