// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command skycal displays sunrise, sunset, moon illumination and the
// rising and setting times of the moon and planets for a location.
package main

import (
	"context"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
)

type CommonFlags struct {
	cmdutil.LoggingFlags
	ConfigFile string `subcmd:"config,,'YAML configuration file, the Kodaikanal observatory in IST is used if not specified'"`
}

type dayFlags struct {
	CommonFlags
	JSON bool `subcmd:"json,false,output json rather than text"`
}

type monthFlags struct {
	CommonFlags
}

type serveFlags struct {
	CommonFlags
	Address string        `subcmd:"http,:8080,address to run the http server on"`
	Grace   time.Duration `subcmd:"grace,5s,time allowed for in-flight requests to complete on shutdown"`
}

var cmdSet *subcmd.CommandSet

func init() {
	dayFlagSet := subcmd.NewFlagSet()
	dayFlagSet.MustRegisterFlagStruct(&dayFlags{}, nil, nil)
	monthFlagSet := subcmd.NewFlagSet()
	monthFlagSet.MustRegisterFlagStruct(&monthFlags{}, nil, nil)
	serveFlagSet := subcmd.NewFlagSet()
	serveFlagSet.MustRegisterFlagStruct(&serveFlags{}, nil, nil)
	configFlagSet := subcmd.NewFlagSet()

	dayCmd := subcmd.NewCommand("day", dayFlagSet, day, subcmd.ExactlyNumArguments(3))
	dayCmd.Document("display the almanac for a single day", "<year> <month> <day>")

	monthCmd := subcmd.NewCommand("month", monthFlagSet, month, subcmd.ExactlyNumArguments(2))
	monthCmd.Document("display the calendar for a month", "<year> <month>")

	serveCmd := subcmd.NewCommand("serve", serveFlagSet, serve, subcmd.WithoutArguments())
	serveCmd.Document("run the interactive calendar web server")

	configCmd := subcmd.NewCommand("describe-config", configFlagSet, describeConfig, subcmd.WithoutArguments())
	configCmd.Document("describe the YAML configuration file")

	cmdSet = subcmd.NewCommandSet(dayCmd, monthCmd, serveCmd, configCmd)
	cmdSet.Document(`skycal displays astronomical data for a calendar date at a fixed location.

Times are displayed in the configured civil time zone using a 12-hour clock,
events that do not occur on the selected date, because the body remains above
or below the horizon, are displayed as N/A. Month may be specified by number
or by name, eg. 1, jan or January.`)
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}
