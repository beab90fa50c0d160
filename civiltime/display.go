// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civiltime

import "time"

const (
	// NotApplicable is displayed in place of an event that does not occur.
	NotApplicable = "N/A"

	// Layout12h is a 12-hour clock with zero padded hour and an AM/PM
	// suffix, eg. "06:14 AM".
	Layout12h = "03:04 PM"
)

// AnchorNoon returns the UTC instant of local noon on the specified civil
// date in zone z. Queries for the next event after a selected date are
// made from local noon rather than midnight so that the zone's offset can
// never move the reference instant onto the neighbouring civil day.
func AnchorNoon(z Zone, year int, month time.Month, day int) time.Time {
	return z.Date(year, month, day, 12, 0, 0).UTC()
}

// Format12h returns t, in its own location, formatted using Layout12h.
// The zero time is formatted as NotApplicable.
func Format12h(t time.Time) string {
	if t.IsZero() {
		return NotApplicable
	}
	return t.Format(Layout12h)
}

// Display returns the 12-hour wall clock time of the instant t in zone z,
// or NotApplicable for the zero time.
func Display(t time.Time, z Zone) string {
	if t.IsZero() {
		return NotApplicable
	}
	return Format12h(z.In(t))
}
