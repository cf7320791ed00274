package main

import "github.com/urfave/cli"

const (
	flagAt      = "at"
	flagsAt     = "at"
	flagExpiry  = "expiry"
	flagsExpiry = "expiry, e"
	flagField   = "field"
	flagsField  = "field, f"
	flagOutput  = "output"
	flagsOutput = "output, o"
)

var (
	cliFlagOutput = cli.StringFlag{
		Name:  flagsOutput,
		Usage: "Return output in another format. Supported formats: table, json",
		Value: "table",
	}
)
