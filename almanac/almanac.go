// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package almanac computes the astronomical data displayed for a single
// calendar date at a configured location.
package almanac

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/skycal/astronomy"
	"cloudeng.io/skycal/calendar"
	"cloudeng.io/skycal/civiltime"
	"cloudeng.io/skycal/ephemeris"
	"cloudeng.io/skycal/riseset"
)

// BodyEvents contains the rising and setting of a single body.
type BodyEvents struct {
	Body ephemeris.Body
	riseset.Result
}

// Day contains the data computed for a single date. A Day is only ever
// returned complete.
type Day struct {
	Date     calendar.Date
	Location Location
	Zone     civiltime.Zone

	Sunrise, Sunset  time.Time
	SolarNoon        time.Time
	DayLength        time.Duration
	MoonIllumination float64 // percent
	Moon             BodyEvents
	Planets          []BodyEvents // in ephemeris.Planets order.
	Season           string
	SeasonMarker     string // the equinox or solstice on this date, if any.
}

// Almanac computes Days for a fixed configuration. It is safe for
// concurrent use.
type Almanac struct {
	cfg      Config
	provider ephemeris.Provider
	resolver *riseset.Resolver
}

// New returns a new Almanac for the supplied configuration.
func New(cfg Config, provider ephemeris.Provider) (*Almanac, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Almanac{
		cfg:      cfg,
		provider: provider,
		resolver: riseset.NewResolver(provider),
	}, nil
}

// Config returns the almanac's configuration.
func (a *Almanac) Config() Config {
	return a.cfg
}

// Zone returns the civil time zone used for display.
func (a *Almanac) Zone() civiltime.Zone {
	return a.cfg.Zone.Zone
}

// Observer returns the observer for the specified date, anchored at local
// noon in the configured zone.
func (a *Almanac) Observer(date calendar.Date) ephemeris.Observer {
	loc := a.cfg.Location
	when := civiltime.AnchorNoon(a.Zone(), date.Year, time.Month(date.Month), date.Day)
	return ephemeris.NewObserver(loc.Latitude, loc.Longitude, loc.Elevation, when)
}

// Compute returns the Day for date. The moon and each planet are queried
// in display order and the first failure ends the computation; no partial
// Day is ever returned.
func (a *Almanac) Compute(ctx context.Context, date calendar.Date) (*Day, error) {
	if err := a.cfg.Years.Check(date); err != nil {
		return nil, err
	}
	start := time.Now()
	logger := ctxlog.Logger(ctx).With("date", date.String(), "location", a.cfg.Location.Name)
	day, err := a.compute(ctx, date)
	if err != nil {
		logger.Warn("almanac computation failed", "duration", time.Since(start), "error", err)
		return nil, fmt.Errorf("%v: %w", date, err)
	}
	logger.Debug("almanac computed", "duration", time.Since(start))
	return day, nil
}

func (a *Almanac) compute(ctx context.Context, date calendar.Date) (*Day, error) {
	zone := a.Zone()
	obs := a.Observer(date)
	place := astronomy.Place{
		Latitude:  a.cfg.Location.Latitude,
		Longitude: a.cfg.Location.Longitude,
		Zone:      zone,
	}
	day := &Day{
		Date:         date,
		Location:     a.cfg.Location,
		Zone:         zone,
		Season:       astronomy.Season(date, zone),
		SeasonMarker: astronomy.SeasonMarker(date, zone),
	}
	day.Sunrise, day.Sunset = astronomy.SunRiseAndSet(date, place)
	day.SolarNoon = astronomy.ApparentSolarNoon(date, place)
	day.DayLength = astronomy.DayLength(day.Sunrise, day.Sunset)

	pct, err := a.provider.MoonIllumination(ctx, obs.When)
	if err != nil {
		return nil, fmt.Errorf("moon illumination: %w", err)
	}
	day.MoonIllumination = pct

	if day.Moon, err = a.resolve(ctx, obs, ephemeris.Moon); err != nil {
		return nil, err
	}
	planets := make([]BodyEvents, 0, len(ephemeris.Planets))
	for _, p := range ephemeris.Planets {
		ev, err := a.resolve(ctx, obs, p)
		if err != nil {
			return nil, err
		}
		planets = append(planets, ev)
	}
	day.Planets = planets
	return day, nil
}

func (a *Almanac) resolve(ctx context.Context, obs ephemeris.Observer, body ephemeris.Body) (BodyEvents, error) {
	res, err := a.resolver.Resolve(ctx, obs, body)
	if err != nil {
		return BodyEvents{}, err
	}
	return BodyEvents{Body: body, Result: res}, nil
}
