// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ephemeris

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrInvalidObserver is returned, wrapped, for observers whose position
	// or reference instant cannot be used.
	ErrInvalidObserver = errors.New("invalid observer")

	// ErrComputation is returned, wrapped, when a position or event cannot
	// be computed.
	ErrComputation = errors.New("ephemeris computation failed")
)

const (
	minElevation = -500.0
	maxElevation = 10000.0
)

// Observer is a geographic position and a reference instant.
type Observer struct {
	Latitude  float64   // decimal degrees, north positive.
	Longitude float64   // decimal degrees, east positive.
	Elevation float64   // meters above sea level.
	When      time.Time // reference instant.
}

// NewObserver returns an Observer with its reference instant in UTC.
func NewObserver(latitude, longitude, elevation float64, when time.Time) Observer {
	return Observer{
		Latitude:  latitude,
		Longitude: longitude,
		Elevation: elevation,
		When:      when.UTC(),
	}
}

// At returns a copy of the observer with a new reference instant.
func (o Observer) At(when time.Time) Observer {
	o.When = when.UTC()
	return o
}

// Validate returns an error wrapping ErrInvalidObserver if the observer
// is unusable.
func (o Observer) Validate() error {
	for _, v := range []float64{o.Latitude, o.Longitude, o.Elevation} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite position (%v, %v, %v)", ErrInvalidObserver, o.Latitude, o.Longitude, o.Elevation)
		}
	}
	if o.Latitude < -90 || o.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v out of range", ErrInvalidObserver, o.Latitude)
	}
	if o.Longitude < -180 || o.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v out of range", ErrInvalidObserver, o.Longitude)
	}
	if o.Elevation < minElevation || o.Elevation > maxElevation {
		return fmt.Errorf("%w: elevation %vm out of range", ErrInvalidObserver, o.Elevation)
	}
	if o.When.IsZero() {
		return fmt.Errorf("%w: reference instant not set", ErrInvalidObserver)
	}
	return nil
}

func (o Observer) String() string {
	return fmt.Sprintf("%.6f,%.6f %.0fm @ %s", o.Latitude, o.Longitude, o.Elevation, o.When.Format(time.RFC3339))
}
