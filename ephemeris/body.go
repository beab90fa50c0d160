// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package ephemeris defines the contract with the astronomical computation
// provider used for rise and set queries and supplies an implementation
// based on the algorithms in Jean Meeus' Astronomical Algorithms.
package ephemeris

import (
	"fmt"
	"strings"
)

// Body identifies one of the closed set of supported celestial bodies.
type Body int

const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
)

// Planets lists the supported planets in display order.
var Planets = []Body{Mercury, Venus, Mars, Jupiter, Saturn}

var bodyNames = []string{"Sun", "Moon", "Mercury", "Venus", "Mars", "Jupiter", "Saturn"}

func (b Body) String() string {
	if b < Sun || b > Saturn {
		return fmt.Sprintf("Body(%d)", int(b))
	}
	return bodyNames[b]
}

// IsPlanet returns true for Mercury, Venus, Mars, Jupiter and Saturn.
func (b Body) IsPlanet() bool {
	return b >= Mercury && b <= Saturn
}

// ParseBody parses a body name in any case.
func ParseBody(name string) (Body, error) {
	for i, n := range bodyNames {
		if strings.EqualFold(n, name) {
			return Body(i), nil
		}
	}
	return 0, fmt.Errorf("unknown body: %q", name)
}
