package main

import (
	"fmt"
	"time"

	"github.com/mwhitten/jobtrack/pkg/status"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

func jobCancel(c *cli.Context) error {
	// Args
	if len(c.Args()) != 1 {
		return errors.New(
			"job cancel requires one argument-- a job ID",
		)
	}
	id := c.Args()[0]

	// Command-specific flags
	atSeconds := c.Int64(flagAt)

	var at *time.Time
	if atSeconds > 0 {
		scheduledTime := time.Unix(atSeconds, 0)
		at = &scheduledTime
	}

	redisProvider, err := getRedisProvider()
	if err != nil {
		return errors.Wrap(err, "error getting redis connection")
	}
	store := status.NewStore(redisProvider, nil)
	scanner := status.NewScheduleScanner(redisProvider, store, nil)

	found, err := scanner.DeleteAndUnschedule(id, at)
	if err != nil {
		return err
	}
	if !found {
		fmt.Printf(
			"No schedule entry found for job %q; it is unknown, already "+
				"started, or already completed.\n",
			id,
		)
		return nil
	}

	fmt.Printf("Canceled scheduled job %q.\n", id)

	return nil
}
