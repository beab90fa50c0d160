// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package riseset resolves the next rising and setting of a celestial body
// for an observer and converts the results for display in a civil time zone.
//
// A body that stays above or below the horizon for the whole search window
// (ie. is circumpolar for that observer and date) has no rising or setting
// and is reported as Absent. Absent is not an error; failures of the
// underlying ephemeris provider are always returned as errors.
package riseset

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/skycal/civiltime"
	"cloudeng.io/skycal/ephemeris"
)

// Instant is either a concrete UTC instant or Absent.
type Instant struct {
	t    time.Time
	cond ephemeris.Condition
}

// At returns an Instant for t. Resolve never returns an At Instant
// with a zero time.
func At(t time.Time) Instant {
	return Instant{t: t.UTC(), cond: ephemeris.Occurs}
}

// Absent returns an Instant that records the circumpolar condition
// that prevented the event from occurring.
func Absent(cond ephemeris.Condition) Instant {
	return Instant{cond: cond}
}

// IsAbsent returns true if the instant does not exist.
func (i Instant) IsAbsent() bool {
	return i.cond != ephemeris.Occurs
}

// Time returns the UTC instant, or the zero time if Absent.
func (i Instant) Time() time.Time {
	return i.t
}

// Condition returns the condition that produced the instant.
func (i Instant) Condition() ephemeris.Condition {
	return i.cond
}

func (i Instant) String() string {
	if i.IsAbsent() {
		return "absent (" + i.cond.String() + ")"
	}
	return i.t.Format(time.RFC3339)
}

// Result contains the next rising and setting of a body.
type Result struct {
	Rise, Set Instant
}

// Resolver answers rise and set queries using an ephemeris.Provider.
// A Resolver is immutable and safe for concurrent use if its provider is.
type Resolver struct {
	provider ephemeris.Provider
}

// NewResolver returns a new Resolver that uses provider.
func NewResolver(provider ephemeris.Provider) *Resolver {
	return &Resolver{provider: provider}
}

// Resolve returns the first rising and the first setting of body strictly
// after obs.When. Each is resolved independently, so a body may have a
// rising but no setting within the search window.
func (r *Resolver) Resolve(ctx context.Context, obs ephemeris.Observer, body ephemeris.Body) (Result, error) {
	if err := obs.Validate(); err != nil {
		return Result{}, err
	}
	rise, err := r.provider.NextRising(ctx, obs, body)
	if err != nil {
		return Result{}, fmt.Errorf("%v rising: %w", body, err)
	}
	set, err := r.provider.NextSetting(ctx, obs, body)
	if err != nil {
		return Result{}, fmt.Errorf("%v setting: %w", body, err)
	}
	var res Result
	if res.Rise, err = instant(obs, rise); err != nil {
		return Result{}, fmt.Errorf("%v rising: %w", body, err)
	}
	if res.Set, err = instant(obs, set); err != nil {
		return Result{}, fmt.Errorf("%v setting: %w", body, err)
	}
	return res, nil
}

func instant(obs ephemeris.Observer, ev ephemeris.Event) (Instant, error) {
	switch ev.Condition {
	case ephemeris.AlwaysUp, ephemeris.NeverUp:
		return Absent(ev.Condition), nil
	case ephemeris.Occurs:
		if ev.Time.IsZero() {
			return Instant{}, fmt.Errorf("%w: event has no time", ephemeris.ErrComputation)
		}
		if !ev.Time.After(obs.When) {
			return Instant{}, fmt.Errorf("%w: event at %v is not after %v", ephemeris.ErrComputation, ev.Time, obs.When)
		}
		return At(ev.Time), nil
	}
	return Instant{}, fmt.Errorf("%w: unknown condition %v", ephemeris.ErrComputation, ev.Condition)
}

// ToLocalDisplay formats i in zone using a 12-hour clock, or returns
// civiltime.NotApplicable if i is Absent.
func ToLocalDisplay(i Instant, zone civiltime.Zone) string {
	if i.IsAbsent() {
		return civiltime.NotApplicable
	}
	return civiltime.Display(i.t, zone)
}
