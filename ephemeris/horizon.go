// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ephemeris

import (
	"math"
	"time"

	"github.com/mooncaker816/learnmeeus/v3/base"
	"github.com/mooncaker816/learnmeeus/v3/deltat"
	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/mooncaker816/learnmeeus/v3/sidereal"
	"github.com/soniakeys/unit"
)

var (
	// Standard altitudes of the center of the body at rising and setting,
	// allowing for refraction and, for the Sun, its semidiameter.
	stdAltitudeStellar = unit.AngleFromMin(-34).Rad()
	stdAltitudeSolar   = unit.AngleFromMin(-50).Rad()
)

// dip returns the depression of the horizon, in radians, for an observer
// at the given elevation in meters.
func dip(elevation float64) float64 {
	if elevation <= 0 {
		return 0
	}
	return unit.AngleFromMin(1.76 * math.Sqrt(elevation)).Rad()
}

// standardAltitude returns the altitude of body at rising or setting.
// The Moon's value depends on its horizontal parallax.
func standardAltitude(body Body, pos equatorial) float64 {
	switch body {
	case Sun:
		return stdAltitudeSolar
	case Moon:
		return 0.7275*pos.parallax + stdAltitudeStellar
	}
	return stdAltitudeStellar
}

// deltaT returns TD - UT, in days, for the Julian day jd. The tabulated
// values are used for the years they cover and the polynomial
// approximations otherwise.
func deltaT(jd float64) float64 {
	year := base.JDEToJulianYear(jd)
	switch {
	case year < 948:
		return deltat.PolyBefore948(year).Day()
	case year < 1620:
		return deltat.Poly948to1600(year).Day()
	case year <= 2018:
		return deltat.Interp10A(jd).Day()
	}
	return deltat.PolyAfter2000(year).Day()
}

// horizonDistance returns the altitude of body above its standard
// altitude for obs at instant t, in radians. Positive values mean
// the body is up.
func horizonDistance(obs Observer, body Body, t time.Time) (float64, error) {
	jd := julian.TimeToJD(t.UTC())
	pos, err := position(body, jd+deltaT(jd))
	if err != nil {
		return 0, err
	}
	φ := obs.Latitude * math.Pi / 180
	// Sidereal time is a function of UT and is returned in seconds of
	// a sidereal day.
	θ0 := radians(sidereal.Apparent(jd)) * 2 * math.Pi / 86400
	H := θ0 + obs.Longitude*math.Pi/180 - pos.ra
	sφ, cφ := math.Sincos(φ)
	sδ, cδ := math.Sincos(pos.dec)
	h := math.Asin(sφ*sδ + cφ*cδ*math.Cos(H))
	return h - standardAltitude(body, pos) + dip(obs.Elevation), nil
}
