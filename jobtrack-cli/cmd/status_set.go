package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/mwhitten/jobtrack/pkg/status"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

func statusSet(c *cli.Context) error {
	// Args
	if len(c.Args()) != 2 {
		return errors.New(
			"status set requires two arguments-- a job ID and a status",
		)
	}
	id := c.Args()[0]
	statusValue := c.Args()[1]

	// Command-specific flags
	expirySeconds := c.Int64(flagExpiry)
	fieldArgs := c.StringSlice(flagField)

	updates := map[string]interface{}{
		status.FieldStatus: statusValue,
	}
	for _, fieldArg := range fieldArgs {
		keyValue := strings.SplitN(fieldArg, "=", 2)
		if len(keyValue) != 2 || keyValue[0] == "" {
			return errors.Errorf(
				"field %q is not of the form KEY=VALUE",
				fieldArg,
			)
		}
		updates[keyValue[0]] = keyValue[1]
	}

	var expiration *time.Duration
	if expirySeconds > 0 {
		ttl := time.Duration(expirySeconds) * time.Second
		expiration = &ttl
	}

	redisProvider, err := getRedisProvider()
	if err != nil {
		return errors.Wrap(err, "error getting redis connection")
	}
	store := status.NewStore(redisProvider, nil)

	if err := store.StoreForID(id, updates, expiration); err != nil {
		return err
	}

	fmt.Printf("Recorded status %q for job %q.\n", statusValue, id)

	return nil
}
