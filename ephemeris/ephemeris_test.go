// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ephemeris_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"cloudeng.io/skycal/ephemeris"
)

const (
	kodaiLat = 10 + 13.0/60 + 50.0/3600
	kodaiLon = 77 + 28.0/60 + 7.0/3600
)

var ist = time.FixedZone("IST", 5*3600+1800)

func TestBody(t *testing.T) {
	for _, b := range append([]ephemeris.Body{ephemeris.Sun, ephemeris.Moon}, ephemeris.Planets...) {
		p, err := ephemeris.ParseBody(b.String())
		if err != nil {
			t.Errorf("%v: %v", b, err)
			continue
		}
		if got, want := p, b; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	if _, err := ephemeris.ParseBody("pluto"); err == nil {
		t.Errorf("expected an error")
	}
	if b, err := ephemeris.ParseBody("jupiter"); err != nil || b != ephemeris.Jupiter {
		t.Errorf("got %v, %v", b, err)
	}
	if ephemeris.Sun.IsPlanet() || ephemeris.Moon.IsPlanet() || !ephemeris.Saturn.IsPlanet() {
		t.Errorf("IsPlanet is wrong")
	}
	if got, want := ephemeris.Body(42).String(), "Body(42)"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestObserverValidate(t *testing.T) {
	when := time.Date(2024, 1, 15, 0, 0, 0, 0, ist)
	for i, tc := range []struct {
		obs ephemeris.Observer
		ok  bool
	}{
		{ephemeris.NewObserver(kodaiLat, kodaiLon, 0, when), true},
		{ephemeris.NewObserver(-90, 180, 9000, when), true},
		{ephemeris.NewObserver(90.1, 0, 0, when), false},
		{ephemeris.NewObserver(0, -180.5, 0, when), false},
		{ephemeris.NewObserver(0, 0, -501, when), false},
		{ephemeris.NewObserver(0, 0, 10001, when), false},
		{ephemeris.NewObserver(math.NaN(), 0, 0, when), false},
		{ephemeris.NewObserver(0, math.Inf(1), 0, when), false},
		{ephemeris.NewObserver(0, 0, 0, time.Time{}), false},
	} {
		err := tc.obs.Validate()
		if got, want := err == nil, tc.ok; got != want {
			t.Errorf("%v: %v: got %v, want %v", i, tc.obs, got, want)
		}
		if err != nil && !errors.Is(err, ephemeris.ErrInvalidObserver) {
			t.Errorf("%v: unexpected error: %v", i, err)
		}
	}
	obs := ephemeris.NewObserver(1, 2, 3, when)
	if got, want := obs.When.Location(), time.UTC; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := obs.At(when.Add(time.Hour)).When, when.Add(time.Hour).UTC(); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func within(t *testing.T, body ephemeris.Body, ev ephemeris.Event, want time.Time, tolerance time.Duration) {
	t.Helper()
	if got, want := ev.Condition, ephemeris.Occurs; got != want {
		t.Errorf("%v: got %v, want %v", body, got, want)
		return
	}
	if d := ev.Time.Sub(want); d < -tolerance || d > tolerance {
		t.Errorf("%v: got %v, want %v +/- %v", body, ev.Time.In(ist), want.In(ist), tolerance)
	}
}

func TestSunKodaikanal(t *testing.T) {
	ctx := context.Background()
	m := ephemeris.NewMeeus()
	when := time.Date(2024, 1, 15, 0, 0, 0, 0, ist)
	obs := ephemeris.NewObserver(kodaiLat, kodaiLon, 0, when)

	rise, err := m.NextRising(ctx, obs, ephemeris.Sun)
	if err != nil {
		t.Fatal(err)
	}
	within(t, ephemeris.Sun, rise, time.Date(2024, 1, 15, 6, 41, 0, 0, ist), 10*time.Minute)

	set, err := m.NextSetting(ctx, obs, ephemeris.Sun)
	if err != nil {
		t.Fatal(err)
	}
	within(t, ephemeris.Sun, set, time.Date(2024, 1, 15, 18, 16, 0, 0, ist), 10*time.Minute)

	// Asking again from just after sunrise returns the following day's.
	again, err := m.NextRising(ctx, obs.At(rise.Time), ephemeris.Sun)
	if err != nil {
		t.Fatal(err)
	}
	if d := again.Time.Sub(rise.Time); d < 23*time.Hour || d > 25*time.Hour {
		t.Errorf("got %v, want ~24h", d)
	}
}

func TestEventsAfterReference(t *testing.T) {
	ctx := context.Background()
	m := ephemeris.NewMeeus()
	bodies := append([]ephemeris.Body{ephemeris.Sun, ephemeris.Moon}, ephemeris.Planets...)
	for _, when := range []time.Time{
		time.Date(2024, 1, 15, 0, 0, 0, 0, ist),
		time.Date(2024, 6, 30, 12, 0, 0, 0, ist),
		time.Date(1987, 11, 2, 23, 59, 0, 0, ist),
	} {
		obs := ephemeris.NewObserver(kodaiLat, kodaiLon, 2133, when)
		for _, b := range bodies {
			for _, fn := range []func(context.Context, ephemeris.Observer, ephemeris.Body) (ephemeris.Event, error){
				m.NextRising, m.NextSetting,
			} {
				ev, err := fn(ctx, obs, b)
				if err != nil {
					t.Errorf("%v: %v: %v", when, b, err)
					continue
				}
				if got, want := ev.Condition, ephemeris.Occurs; got != want {
					t.Errorf("%v: %v: got %v, want %v", when, b, got, want)
					continue
				}
				if !ev.Time.After(when) {
					t.Errorf("%v: %v: event %v is not after reference", when, b, ev.Time)
				}
				if ev.Time.Sub(when) > ephemeris.DefaultSearchWindow {
					t.Errorf("%v: %v: event %v is outside the search window", when, b, ev.Time)
				}
			}
		}
	}
}

func TestReferenceTimes(t *testing.T) {
	ctx := context.Background()
	m := ephemeris.NewMeeus()
	// Reference times for Kodaikanal at sea level were computed from
	// the JPL approximate Keplerian elements for the planets and a
	// perturbed lunar series for the Moon.
	at := func(y int, mo time.Month, d, h, mi int) time.Time {
		return time.Date(y, mo, d, h, mi, 0, 0, ist)
	}
	for _, tc := range []struct {
		when      time.Time
		body      ephemeris.Body
		rise, set time.Time
	}{
		{at(2000, 1, 1, 12, 0), ephemeris.Moon, at(2000, 1, 2, 2, 54), at(2000, 1, 1, 14, 15)},
		{at(2000, 1, 1, 12, 0), ephemeris.Venus, at(2000, 1, 2, 3, 50), at(2000, 1, 1, 15, 26)},
		{at(2000, 1, 1, 12, 0), ephemeris.Jupiter, at(2000, 1, 1, 13, 6), at(2000, 1, 2, 1, 22)},
		{at(2000, 1, 1, 12, 0), ephemeris.Saturn, at(2000, 1, 1, 14, 2), at(2000, 1, 2, 2, 23)},
		{at(2024, 3, 1, 12, 0), ephemeris.Moon, at(2024, 3, 1, 23, 0), at(2024, 3, 2, 10, 50)},
		{at(2024, 3, 1, 12, 0), ephemeris.Venus, at(2024, 3, 2, 5, 10), at(2024, 3, 1, 16, 50)},
		{at(2024, 3, 1, 12, 0), ephemeris.Jupiter, at(2024, 3, 2, 10, 3), at(2024, 3, 1, 22, 30)},
		{at(2024, 3, 1, 12, 0), ephemeris.Mars, at(2024, 3, 2, 4, 56), at(2024, 3, 1, 16, 34)},
		{at(2024, 1, 15, 0, 0), ephemeris.Moon, at(2024, 1, 15, 10, 1), at(2024, 1, 15, 22, 14)},
		{at(2024, 1, 15, 0, 0), ephemeris.Venus, at(2024, 1, 15, 4, 14), at(2024, 1, 15, 15, 47)},
	} {
		obs := ephemeris.NewObserver(kodaiLat, kodaiLon, 0, tc.when)
		rise, err := m.NextRising(ctx, obs, tc.body)
		if err != nil {
			t.Errorf("%v: %v: %v", tc.when, tc.body, err)
			continue
		}
		within(t, tc.body, rise, tc.rise, 5*time.Minute)
		set, err := m.NextSetting(ctx, obs, tc.body)
		if err != nil {
			t.Errorf("%v: %v: %v", tc.when, tc.body, err)
			continue
		}
		within(t, tc.body, set, tc.set, 5*time.Minute)
	}
}

func TestCircumpolar(t *testing.T) {
	ctx := context.Background()
	m := ephemeris.NewMeeus()
	for i, tc := range []struct {
		lat  float64
		when time.Time
		cond ephemeris.Condition
	}{
		{80, time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC), ephemeris.AlwaysUp},
		{80, time.Date(2024, 12, 21, 0, 0, 0, 0, time.UTC), ephemeris.NeverUp},
		{-80, time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC), ephemeris.NeverUp},
		{-80, time.Date(2024, 12, 21, 0, 0, 0, 0, time.UTC), ephemeris.AlwaysUp},
	} {
		obs := ephemeris.NewObserver(tc.lat, 15, 0, tc.when)
		rise, err := m.NextRising(ctx, obs, ephemeris.Sun)
		if err != nil {
			t.Fatal(err)
		}
		set, err := m.NextSetting(ctx, obs, ephemeris.Sun)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := rise.Condition, tc.cond; got != want {
			t.Errorf("%v: rise: got %v, want %v", i, got, want)
		}
		if got, want := set.Condition, tc.cond; got != want {
			t.Errorf("%v: set: got %v, want %v", i, got, want)
		}
		if !rise.Condition.Circumpolar() || !rise.Time.IsZero() {
			t.Errorf("%v: unexpected event: %v", i, rise)
		}
	}
}

func TestInvalidObserver(t *testing.T) {
	ctx := context.Background()
	m := ephemeris.NewMeeus()
	obs := ephemeris.NewObserver(91, 0, 0, time.Now())
	if _, err := m.NextRising(ctx, obs, ephemeris.Sun); !errors.Is(err, ephemeris.ErrInvalidObserver) {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := m.NextSetting(ctx, obs, ephemeris.Moon); !errors.Is(err, ephemeris.ErrInvalidObserver) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := ephemeris.NewMeeus()
	obs := ephemeris.NewObserver(kodaiLat, kodaiLon, 0, time.Date(2024, 1, 15, 12, 0, 0, 0, ist))
	if _, err := m.NextRising(ctx, obs, ephemeris.Sun); !errors.Is(err, context.Canceled) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSearchWindow(t *testing.T) {
	ctx := context.Background()
	// A window shorter than the time to the next sunrise reports the
	// condition at the reference instant.
	m := ephemeris.NewMeeus(ephemeris.WithSearchWindow(time.Hour), ephemeris.WithSearchStep(5*time.Minute))
	obs := ephemeris.NewObserver(kodaiLat, kodaiLon, 0, time.Date(2024, 1, 15, 0, 0, 0, 0, ist))
	ev, err := m.NextRising(ctx, obs, ephemeris.Sun)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := ev.Condition, ephemeris.NeverUp; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMoonIllumination(t *testing.T) {
	ctx := context.Background()
	m := ephemeris.NewMeeus()
	for _, tc := range []struct {
		when     time.Time
		min, max float64
	}{
		{time.Date(2024, 1, 25, 17, 54, 0, 0, time.UTC), 97, 100}, // full
		{time.Date(2024, 1, 11, 11, 57, 0, 0, time.UTC), 0, 3},    // new
		{time.Date(2024, 1, 18, 3, 53, 0, 0, time.UTC), 40, 60},   // first quarter
	} {
		pct, err := m.MoonIllumination(ctx, tc.when)
		if err != nil {
			t.Fatal(err)
		}
		if pct < tc.min || pct > tc.max {
			t.Errorf("%v: got %.2f, want in [%v, %v]", tc.when, pct, tc.min, tc.max)
		}
	}
	if _, err := m.MoonIllumination(ctx, time.Time{}); !errors.Is(err, ephemeris.ErrComputation) {
		t.Errorf("unexpected error: %v", err)
	}
}
