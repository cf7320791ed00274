package main

import (
	"context"
	"fmt"

	"github.com/mwhitten/jobtrack/pkg/signals"
	"github.com/mwhitten/jobtrack/pkg/status"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

func statusWatch(c *cli.Context) error {
	redisProvider, err := getRedisProvider()
	if err != nil {
		return errors.Wrap(err, "error getting redis connection")
	}
	store := status.NewStore(redisProvider, nil)
	watcher := status.NewWatcher(redisProvider, nil)

	fmt.Println("Watching for status updates. Press ctrl+c to stop.")

	err = watcher.Watch(
		signals.Context(),
		func(jobID string) {
			statusValue, err := store.ReadFieldForID(jobID, status.FieldStatus)
			if err != nil {
				fmt.Printf("%s\t<error reading status: %s>\n", jobID, err)
				return
			}
			if statusValue == "" {
				// The record was written and already deleted or expired
				statusValue = "<gone>"
			}
			fmt.Printf("%s\t%s\n", jobID, statusValue)
		},
	)
	if err == context.Canceled {
		return nil
	}
	return err
}
