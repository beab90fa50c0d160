// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ephemeris

import (
	"fmt"
	"math"

	"github.com/mooncaker816/learnmeeus/v3/base"
	"github.com/mooncaker816/learnmeeus/v3/moonposition"
	"github.com/mooncaker816/learnmeeus/v3/nutation"
	"github.com/mooncaker816/learnmeeus/v3/planetelements"
	"github.com/mooncaker816/learnmeeus/v3/solar"
)

// radians converts the library's angle types, which all have an
// underlying float64 in radians, to float64.
func radians[T ~float64](a T) float64 {
	return float64(a)
}

// equatorial is a geocentric apparent position referred to the equinox
// of date. Angles are in radians.
type equatorial struct {
	ra, dec  float64
	parallax float64 // horizontal parallax, only set for the Moon.
}

func (e equatorial) finite() bool {
	for _, v := range []float64{e.ra, e.dec, e.parallax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

var planetIndex = map[Body]int{
	Mercury: planetelements.Mercury,
	Venus:   planetelements.Venus,
	Mars:    planetelements.Mars,
	Jupiter: planetelements.Jupiter,
	Saturn:  planetelements.Saturn,
}

// position returns the position of body at the Julian ephemeris day jde.
func position(body Body, jde float64) (equatorial, error) {
	var pos equatorial
	switch body {
	case Sun:
		α, δ := solar.ApparentEquatorial(jde)
		pos = equatorial{ra: radians(α), dec: radians(δ)}
	case Moon:
		λ, β, Δ := moonposition.Position(jde)
		ε := radians(nutation.MeanObliquity(jde))
		pos.ra, pos.dec = eclipticToEquatorial(radians(λ), radians(β), ε)
		pos.parallax = radians(moonposition.Parallax(Δ))
	case Mercury, Venus, Mars, Jupiter, Saturn:
		λ, β := planetGeocentric(planetIndex[body], jde)
		ε := radians(nutation.MeanObliquity(jde))
		pos.ra, pos.dec = eclipticToEquatorial(λ, β, ε)
	default:
		return equatorial{}, fmt.Errorf("%w: unsupported body %v", ErrComputation, body)
	}
	if !pos.finite() {
		return equatorial{}, fmt.Errorf("%w: %v position is not finite at JDE %f", ErrComputation, body, jde)
	}
	return pos, nil
}

func eclipticToEquatorial(λ, β, ε float64) (α, δ float64) {
	sε, cε := math.Sincos(ε)
	sλ, cλ := math.Sincos(λ)
	sβ, cβ := math.Sincos(β)
	α = math.Atan2(sλ*cε-(sβ/cβ)*sε, cλ)
	δ = math.Asin(sβ*cε + cβ*sε*sλ)
	return normalize(α), δ
}

func normalize(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// heliocentric returns the rectangular heliocentric ecliptic coordinates,
// in AU, of planet p from its mean orbital elements for the equinox
// of date.
func heliocentric(p int, jde float64) (x, y, z float64) {
	var e planetelements.Elements
	planetelements.Mean(p, jde, &e)
	L := radians(e.Lon)
	ϖ := radians(e.Peri)
	Ω := radians(e.Node)
	i := radians(e.Inc)
	a := float64(e.Axis)
	ecc := float64(e.Ecc)

	E := eccentricAnomaly(ecc, normalize(L-ϖ))
	xv := a * (math.Cos(E) - ecc)
	yv := a * math.Sqrt(1-ecc*ecc) * math.Sin(E)
	r := math.Hypot(xv, yv)
	u := math.Atan2(yv, xv) + ϖ - Ω // argument of latitude

	su, cu := math.Sincos(u)
	sΩ, cΩ := math.Sincos(Ω)
	si, ci := math.Sincos(i)
	x = r * (cΩ*cu - sΩ*su*ci)
	y = r * (sΩ*cu + cΩ*su*ci)
	z = r * su * si
	return
}

// earthHeliocentric returns the rectangular heliocentric ecliptic
// coordinates, in AU, of the Earth. planetelements has no node or
// inclination terms for the Earth so its position is taken as the
// reverse of the geometric geocentric position of the Sun.
func earthHeliocentric(jde float64) (x, y, z float64) {
	T := base.J2000Century(jde)
	s, _ := solar.True(T)
	R := solar.Radius(T)
	λ := radians(s) + math.Pi
	return R * math.Cos(λ), R * math.Sin(λ), 0
}

// planetGeocentric returns the geometric geocentric ecliptic longitude
// and latitude of planet p.
func planetGeocentric(p int, jde float64) (λ, β float64) {
	px, py, pz := heliocentric(p, jde)
	ex, ey, ez := earthHeliocentric(jde)
	x, y, z := px-ex, py-ey, pz-ez
	return normalize(math.Atan2(y, x)), math.Atan2(z, math.Hypot(x, y))
}

// eccentricAnomaly solves Kepler's equation, E - e sin E = M, using
// Newton's method.
func eccentricAnomaly(e, M float64) float64 {
	E := M
	if e > 0.8 {
		E = math.Pi
	}
	for range 50 {
		d := (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
		E -= d
		if math.Abs(d) < 1e-12 {
			break
		}
	}
	return E
}
