// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ephemeris

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/mooncaker816/learnmeeus/v3/base"
	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/mooncaker816/learnmeeus/v3/moonillum"
)

const (
	// DefaultSearchStep is the interval at which altitudes are sampled
	// when looking for horizon crossings. It is short enough that a body
	// cannot rise and set again within one step at non-polar latitudes.
	DefaultSearchStep = 10 * time.Minute

	// DefaultSearchWindow is how far ahead of the reference instant events
	// are searched for. The Moon's next rising or setting is always within
	// ~25 hours unless it is circumpolar.
	DefaultSearchWindow = 36 * time.Hour

	resolution = time.Second
)

// Meeus is a Provider based on the low precision series and mean orbital
// elements from Astronomical Algorithms, as implemented by the learnmeeus
// package. Positions are computed in dynamical time, with ΔT from the
// deltat package, and sidereal time from UT. Rise and set times are
// accurate to about a minute at mid latitudes.
type Meeus struct {
	step, window time.Duration
}

// MeeusOption represents an option to NewMeeus.
type MeeusOption func(*Meeus)

// WithSearchStep sets the sampling interval used for horizon searches.
func WithSearchStep(d time.Duration) MeeusOption {
	return func(m *Meeus) {
		m.step = d
	}
}

// WithSearchWindow sets how far ahead of the reference instant to search
// for events before reporting a circumpolar condition.
func WithSearchWindow(d time.Duration) MeeusOption {
	return func(m *Meeus) {
		m.window = d
	}
}

// NewMeeus returns a new Meeus provider.
func NewMeeus(opts ...MeeusOption) *Meeus {
	m := &Meeus{
		step:   DefaultSearchStep,
		window: DefaultSearchWindow,
	}
	for _, fn := range opts {
		fn(m)
	}
	if m.step <= 0 {
		m.step = DefaultSearchStep
	}
	if m.window < m.step {
		m.window = m.step
	}
	return m
}

// NextRising implements Provider.
func (m *Meeus) NextRising(ctx context.Context, obs Observer, body Body) (Event, error) {
	return m.next(ctx, obs, body, true)
}

// NextSetting implements Provider.
func (m *Meeus) NextSetting(ctx context.Context, obs Observer, body Body) (Event, error) {
	return m.next(ctx, obs, body, false)
}

// MoonIllumination implements Provider. The value is the illuminated
// fraction of the disk, as a percentage, computed from the phase angle.
func (m *Meeus) MoonIllumination(_ context.Context, when time.Time) (float64, error) {
	if when.IsZero() {
		return 0, fmt.Errorf("%w: zero instant", ErrComputation)
	}
	jd := julian.TimeToJD(when.UTC())
	i := moonillum.PhaseAngle3(jd + deltaT(jd))
	pct := base.Illuminated(i) * 100
	if math.IsNaN(pct) {
		return 0, fmt.Errorf("%w: moon illumination at %v", ErrComputation, when)
	}
	return min(max(pct, 0), 100), nil
}

func crossed(rising bool, prev, cur float64) bool {
	if rising {
		return prev < 0 && cur >= 0
	}
	return prev >= 0 && cur < 0
}

func (m *Meeus) next(ctx context.Context, obs Observer, body Body, rising bool) (Event, error) {
	if err := obs.Validate(); err != nil {
		return Event{}, err
	}
	start := obs.When.UTC()
	startAlt, err := horizonDistance(obs, body, start)
	if err != nil {
		return Event{}, err
	}
	prevT, prevAlt := start, startAlt
	end := start.Add(m.window)
	for t := start.Add(m.step); !t.After(end); t = t.Add(m.step) {
		if err := ctx.Err(); err != nil {
			return Event{}, err
		}
		alt, err := horizonDistance(obs, body, t)
		if err != nil {
			return Event{}, err
		}
		if crossed(rising, prevAlt, alt) {
			when, err := bisect(obs, body, prevT, t, rising)
			if err != nil {
				return Event{}, err
			}
			return EventAt(when), nil
		}
		prevT, prevAlt = t, alt
	}
	if startAlt >= 0 {
		return Event{Condition: AlwaysUp}, nil
	}
	return Event{Condition: NeverUp}, nil
}

// bisect narrows a bracketed horizon crossing in (lo, hi] to within
// resolution and returns the later bound, which is always strictly after lo.
func bisect(obs Observer, body Body, lo, hi time.Time, rising bool) (time.Time, error) {
	for hi.Sub(lo) > resolution {
		mid := lo.Add(hi.Sub(lo) / 2)
		alt, err := horizonDistance(obs, body, mid)
		if err != nil {
			return time.Time{}, err
		}
		up := alt >= 0
		if up == rising {
			hi = mid
		} else {
			lo = mid
		}
	}
	return hi, nil
}
