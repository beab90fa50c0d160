// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"time"

	"cloudeng.io/skycal/calendar"
	"cloudeng.io/skycal/civiltime"
	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/mooncaker816/learnmeeus/v3/solstice"
)

// SeasonEvent is an equinox or solstice.
type SeasonEvent struct {
	Name string
	Time time.Time
}

// SeasonEvents returns the equinoxes and solstices of year in date order,
// with times in zone.
func SeasonEvents(year int, zone civiltime.Zone) []SeasonEvent {
	return []SeasonEvent{
		{"March equinox", zone.In(julian.JDToTime(solstice.March(year)))},
		{"June solstice", zone.In(julian.JDToTime(solstice.June(year)))},
		{"September equinox", zone.In(julian.JDToTime(solstice.September(year)))},
		{"December solstice", zone.In(julian.JDToTime(solstice.December(year)))},
	}
}

// SeasonMarker returns the name of the equinox or solstice that falls on
// the civil date in zone, or the empty string.
func SeasonMarker(date calendar.Date, zone civiltime.Zone) string {
	for _, ev := range SeasonEvents(date.Year, zone) {
		if calendar.DateFromTime(ev.Time) == date {
			return ev.Name
		}
	}
	return ""
}

// Season returns the astronomical season, as named in the northern
// hemisphere, that the civil date in zone falls in.
func Season(date calendar.Date, zone civiltime.Zone) string {
	events := SeasonEvents(date.Year, zone)
	names := []string{"Winter", "Spring", "Summer", "Autumn"}
	season := names[0]
	for i, ev := range events {
		if !date.Before(calendar.DateFromTime(ev.Time)) {
			season = names[(i+1)%len(names)]
		}
	}
	return season
}
