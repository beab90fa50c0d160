// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/skycal/almanac"
	"cloudeng.io/skycal/calendar"
	"cloudeng.io/skycal/ephemeris"
	"cloudeng.io/skycal/webui"
	"cloudeng.io/webapp"
)

// setup configures logging and returns an Almanac for the configuration
// named by the common flags. The returned function must be called to
// release the log file, if any.
func (cf *CommonFlags) setup(ctx context.Context) (context.Context, *almanac.Almanac, func(), error) {
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, nil, nil, err
	}
	ctx = ctxlog.Context(ctx, logger.Logger)
	cleanup := func() { logger.Close() }
	cfg, err := almanac.LoadConfig(ctx, cf.ConfigFile)
	if err != nil {
		cleanup()
		return ctx, nil, nil, err
	}
	a, err := almanac.New(cfg, ephemeris.NewMeeus())
	if err != nil {
		cleanup()
		return ctx, nil, nil, err
	}
	ctxlog.Logger(ctx).Info("configured", "location", cfg.Location.String(), "timezone", cfg.Zone.Name(), "years", cfg.Years.String())
	return ctx, a, cleanup, nil
}

func day(ctx context.Context, values any, args []string) error {
	fv := values.(*dayFlags)
	ctx, a, cleanup, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	date, err := calendar.ParseDate(args[0], args[1], args[2])
	if err != nil {
		return err
	}
	d, err := a.Compute(ctx, date)
	if err != nil {
		return err
	}
	if fv.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(d.Summary())
	}
	return d.Report(os.Stdout)
}

func month(ctx context.Context, values any, args []string) error {
	fv := values.(*monthFlags)
	_, a, cleanup, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid year: %q", args[0])
	}
	if years := a.Config().Years; !years.Contains(year) {
		return fmt.Errorf("year %d is outside of %v", year, years)
	}
	m, err := calendar.ParseMonth(args[1])
	if err != nil {
		return err
	}
	fmt.Print(calendar.NewMondayGrid(year, m).String())
	return nil
}

func serve(ctx context.Context, values any, _ []string) error {
	ctx, done := signal.NotifyContext(ctx, os.Interrupt)
	defer done()
	fv := values.(*serveFlags)
	ctx, a, cleanup, err := fv.setup(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	handler := webui.New(a).Handler()
	ln, srv, err := webapp.NewHTTPServer(ctx, fv.Address, handler)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("serving", "addr", ln.Addr().String())
	fmt.Printf("running on %s\n", ln.Addr())
	return webapp.ServeWithShutdown(ctx, ln, srv, fv.Grace)
}

func describeConfig(_ context.Context, _ any, _ []string) error {
	desc, err := almanac.DescribeConfig()
	if err != nil {
		return err
	}
	fmt.Print(desc)
	return nil
}
