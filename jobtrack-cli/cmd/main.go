package main

import (
	"fmt"
	"os"

	"github.com/mwhitten/jobtrack/pkg/version"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "jobtrack"
	app.Usage = "Inspect, update, and cancel tracked jobs"
	app.Version = fmt.Sprintf(
		"%s -- commit %s",
		version.Version(),
		version.Commit(),
	)
	app.Commands = []cli.Command{
		{
			Name:  "job",
			Usage: "Manage scheduled jobs",
			Subcommands: []cli.Command{
				{
					Name:  "cancel",
					Usage: "Cancel a scheduled job that has not started yet",
					Description: "Removes the job's schedule entry and its status " +
						"record. A job that already started cannot be canceled this way.",
					ArgsUsage: "JOB_ID",
					Flags: []cli.Flag{
						cli.Int64Flag{
							Name: flagsAt,
							Usage: "The job's intended execution time as a unix " +
								"timestamp; narrows the schedule scan considerably",
						},
					},
					Action: jobCancel,
				},
			},
		},
		{
			Name:  "status",
			Usage: "Manage job status records",
			Subcommands: []cli.Command{
				{
					Name:      "delete",
					Usage:     "Delete a job's status record",
					ArgsUsage: "JOB_ID",
					Action:    statusDelete,
				},
				{
					Name:      "get",
					Usage:     "Get a job's status record",
					ArgsUsage: "JOB_ID",
					Flags: []cli.Flag{
						cliFlagOutput,
					},
					Action: statusGet,
				},
				{
					Name:      "set",
					Usage:     "Set a job's status, optionally with extra fields",
					ArgsUsage: "JOB_ID STATUS",
					Flags: []cli.Flag{
						cli.Int64Flag{
							Name: flagsExpiry,
							Usage: "Record time-to-live in seconds; useful for " +
								"keeping terminal statuses around longer",
						},
						cli.StringSliceFlag{
							Name:  flagsField,
							Usage: "An extra KEY=VALUE field to merge into the record",
						},
					},
					Action: statusSet,
				},
				{
					Name:   "watch",
					Usage:  "Stream job status updates until interrupted",
					Action: statusWatch,
				},
			},
		},
	}
	fmt.Println()
	if err := app.Run(os.Args); err != nil {
		fmt.Printf("\n%s\n\n", err)
		os.Exit(1)
	}
	fmt.Println()
}
