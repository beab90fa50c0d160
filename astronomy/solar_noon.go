// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"fmt"
	"time"

	"cloudeng.io/skycal/calendar"
)

// ApparentSolarNoon returns the midpoint of sunrise and sunset, in the
// place's zone, or the zero time if there is no sunrise or sunset.
func ApparentSolarNoon(date calendar.Date, place Place) time.Time {
	rise, set := SunRiseAndSet(date, place)
	if rise.IsZero() {
		return time.Time{}
	}
	return place.Zone.In(rise.Add(set.Sub(rise) / 2))
}

// DayLength returns the time between rise and set, or zero if either is
// the zero time.
func DayLength(rise, set time.Time) time.Duration {
	if rise.IsZero() || set.IsZero() {
		return 0
	}
	return set.Sub(rise)
}

// FormatDuration formats d as hours and minutes, eg. "11h 23m".
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	return fmt.Sprintf("%dh %02dm", h, m)
}
