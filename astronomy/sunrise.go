// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package astronomy provides the solar calculations for a calendar date:
// sunrise, sunset, solar noon and the dates of the solstices and equinoxes.
package astronomy

import (
	"time"

	"cloudeng.io/skycal/calendar"
	"cloudeng.io/skycal/civiltime"
	"github.com/nathan-osman/go-sunrise"
)

// Place is a geographic position and the civil time zone used there.
type Place struct {
	Latitude  float64
	Longitude float64
	Zone      civiltime.Zone
}

// SunRiseAndSet returns the time of sunrise and sunset for the specified
// date and place, in the place's zone. Zero times are returned if the sun
// does not rise or set on that date.
func SunRiseAndSet(date calendar.Date, place Place) (rise, set time.Time) {
	rise, set = sunrise.SunriseSunset(
		place.Latitude, place.Longitude,
		date.Year, time.Month(date.Month), date.Day)
	if rise.IsZero() || set.IsZero() {
		return time.Time{}, time.Time{}
	}
	return place.Zone.In(rise), place.Zone.In(set)
}
