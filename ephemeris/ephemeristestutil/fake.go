// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package ephemeristestutil provides a scripted ephemeris.Provider
// for use in tests.
package ephemeristestutil

import (
	"context"
	"sync"
	"time"

	"cloudeng.io/skycal/ephemeris"
)

// Fake is an ephemeris.Provider that returns preset events and errors.
// Bodies with no scripted event are reported as NeverUp.
type Fake struct {
	mu           sync.Mutex
	rising       map[ephemeris.Body]ephemeris.Event
	setting      map[ephemeris.Body]ephemeris.Event
	errs         map[ephemeris.Body]error
	illumination float64
	illumErr     error
	calls        int
}

// NewFake returns a new Fake with an illumination of 50%.
func NewFake() *Fake {
	return &Fake{
		rising:       map[ephemeris.Body]ephemeris.Event{},
		setting:      map[ephemeris.Body]ephemeris.Event{},
		errs:         map[ephemeris.Body]error{},
		illumination: 50,
	}
}

// SetRising sets the event returned by NextRising for body.
func (f *Fake) SetRising(body ephemeris.Body, ev ephemeris.Event) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rising[body] = ev
	return f
}

// SetSetting sets the event returned by NextSetting for body.
func (f *Fake) SetSetting(body ephemeris.Body, ev ephemeris.Event) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setting[body] = ev
	return f
}

// SetTimes is shorthand for SetRising and SetSetting with occurring events.
func (f *Fake) SetTimes(body ephemeris.Body, rise, set time.Time) *Fake {
	f.SetRising(body, ephemeris.EventAt(rise))
	return f.SetSetting(body, ephemeris.EventAt(set))
}

// SetError arranges for all queries about body to fail with err.
func (f *Fake) SetError(body ephemeris.Body, err error) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[body] = err
	return f
}

// SetIllumination sets the value and error returned by MoonIllumination.
func (f *Fake) SetIllumination(pct float64, err error) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.illumination, f.illumErr = pct, err
	return f
}

// Calls returns the number of Provider methods invoked so far.
func (f *Fake) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *Fake) event(ctx context.Context, events map[ephemeris.Body]ephemeris.Event, body ephemeris.Body) (ephemeris.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if err := ctx.Err(); err != nil {
		return ephemeris.Event{}, err
	}
	if err := f.errs[body]; err != nil {
		return ephemeris.Event{}, err
	}
	if ev, ok := events[body]; ok {
		return ev, nil
	}
	return ephemeris.Event{Condition: ephemeris.NeverUp}, nil
}

// NextRising implements ephemeris.Provider.
func (f *Fake) NextRising(ctx context.Context, _ ephemeris.Observer, body ephemeris.Body) (ephemeris.Event, error) {
	return f.event(ctx, f.rising, body)
}

// NextSetting implements ephemeris.Provider.
func (f *Fake) NextSetting(ctx context.Context, _ ephemeris.Observer, body ephemeris.Body) (ephemeris.Event, error) {
	return f.event(ctx, f.setting, body)
}

// MoonIllumination implements ephemeris.Provider.
func (f *Fake) MoonIllumination(ctx context.Context, _ time.Time) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return f.illumination, f.illumErr
}
