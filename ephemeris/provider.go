// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ephemeris

import (
	"context"
	"time"
)

// Condition describes whether a rise or set event occurs.
type Condition int

const (
	// Occurs indicates that the event occurs at Event.Time.
	Occurs Condition = iota
	// AlwaysUp indicates that the body stays above the horizon.
	AlwaysUp
	// NeverUp indicates that the body stays below the horizon.
	NeverUp
)

func (c Condition) String() string {
	switch c {
	case Occurs:
		return "occurs"
	case AlwaysUp:
		return "always up"
	case NeverUp:
		return "never up"
	}
	return "unknown"
}

// Circumpolar returns true for AlwaysUp and NeverUp.
func (c Condition) Circumpolar() bool {
	return c == AlwaysUp || c == NeverUp
}

// Event is the tagged outcome of a rise or set query. Time is only
// meaningful when Condition is Occurs.
type Event struct {
	Condition Condition
	Time      time.Time
}

// EventAt returns an Event that occurs at t.
func EventAt(t time.Time) Event {
	return Event{Condition: Occurs, Time: t.UTC()}
}

// Provider is implemented by astronomical computation libraries that can
// answer rise and set queries. A Provider reports circumpolar conditions
// via the returned Event and returns errors only for failures.
type Provider interface {
	// NextRising returns the first rising of body strictly after obs.When.
	NextRising(ctx context.Context, obs Observer, body Body) (Event, error)
	// NextSetting returns the first setting of body strictly after obs.When.
	NextSetting(ctx context.Context, obs Observer, body Body) (Event, error)
	// MoonIllumination returns the percentage, 0 to 100, of the Moon's disk
	// that is illuminated at the specified instant.
	MoonIllumination(ctx context.Context, when time.Time) (float64, error)
}
