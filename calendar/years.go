// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "fmt"

// YearRange is an inclusive range of supported years.
type YearRange struct {
	Min int `yaml:"min" json:"min" cmd:"earliest supported year"`
	Max int `yaml:"max" json:"max" cmd:"latest supported year"`
}

// DefaultYears is the range of years offered by default.
var DefaultYears = YearRange{Min: 1900, Max: 2100}

// Contains returns true if year is within the range.
func (yr YearRange) Contains(year int) bool {
	return year >= yr.Min && year <= yr.Max
}

// Clamp returns year limited to the range.
func (yr YearRange) Clamp(year int) int {
	return min(max(year, yr.Min), yr.Max)
}

// Validate returns an error if the range is empty.
func (yr YearRange) Validate() error {
	if yr.Min > yr.Max {
		return fmt.Errorf("invalid year range: %d > %d", yr.Min, yr.Max)
	}
	return nil
}

// Check returns an error wrapping ErrInvalidDate if the date's year is
// outside of the range or the date is otherwise invalid.
func (yr YearRange) Check(d Date) error {
	if !yr.Contains(d.Year) {
		return fmt.Errorf("%w: year %d is outside of %d..%d", ErrInvalidDate, d.Year, yr.Min, yr.Max)
	}
	return d.Validate()
}

func (yr YearRange) String() string {
	return fmt.Sprintf("%d..%d", yr.Min, yr.Max)
}
