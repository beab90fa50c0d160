// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar provides the calendar support needed to offer and
// validate dates for the sky calendar: validated dates, the supported
// range of years and month grids. Month and leap year arithmetic is
// provided by cloudeng.io/datetime.
package calendar

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

// Month is 1 for January through 12 for December.
type Month = datetime.Month

// MonthName returns the English name of m, eg. "March".
func MonthName(m Month) string {
	return time.Month(m).String()
}

// MonthNames returns the twelve month names in calendar order.
func MonthNames() []string {
	names := make([]string, 12)
	for i := range names {
		names[i] = MonthName(Month(i + 1))
	}
	return names
}

// ParseMonth parses a month in numeric format, or as a name or a prefix
// of a name of at least three characters in either case, eg. "sept".
func ParseMonth(val string) (Month, error) {
	if m, err := datetime.ParseNumericMonth(val); err == nil {
		return m, nil
	}
	if len(val) < 3 {
		return 0, fmt.Errorf("invalid month: %q", val)
	}
	return datetime.ParseMonth(val)
}

// DaysInMonth is like datetime.DaysInMonth but returns zero for an
// invalid month.
func DaysInMonth(year int, month Month) int {
	if month < 1 || month > 12 {
		return 0
	}
	return int(datetime.DaysInMonth(year, month))
}
