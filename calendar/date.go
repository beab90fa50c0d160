// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"cloudeng.io/datetime"
)

// ErrInvalidDate is returned, wrapped, for dates that do not exist in
// the calendar, eg. Feb 30.
var ErrInvalidDate = errors.New("invalid date")

// Date is a civil calendar date with no associated time zone.
type Date datetime.CalendarDate

// NewDate returns a new Date, it does not validate its arguments.
func NewDate(year int, month Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateFromTime returns the Date of t in t's location.
func DateFromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: Month(m), Day: d}
}

// ParseDate parses a year, a month in numeric or name format and a day.
// The resulting date is validated.
func ParseDate(year, month, day string) (Date, error) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return Date{}, fmt.Errorf("%w: year %q", ErrInvalidDate, year)
	}
	m, err := ParseMonth(month)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return Date{}, fmt.Errorf("%w: day %q", ErrInvalidDate, day)
	}
	date := NewDate(y, m, d)
	return date, date.Validate()
}

// Validate returns an error wrapping ErrInvalidDate if the date does
// not exist.
func (d Date) Validate() error {
	if d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("%w: month %d", ErrInvalidDate, int(d.Month))
	}
	if d.Day < 1 || d.Day > DaysInMonth(d.Year, d.Month) {
		return fmt.Errorf("%w: %v %d has no day %d", ErrInvalidDate, MonthName(d.Month), d.Year, d.Day)
	}
	return nil
}

// DayOfYear returns the day of the year as 1-365 for non-leap years and
// 1-366 for leap years.
func (d Date) DayOfYear() int {
	return datetime.CalendarDate(d).Date().DayOfYear(d.Year)
}

// Weekday returns the day of the week for the date.
func (d Date) Weekday() time.Weekday {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 12, 0, 0, 0, time.UTC).Weekday()
}

// Tomorrow returns the date of the next day, wrapping to the next
// year as required.
func (d Date) Tomorrow() Date {
	next := datetime.CalendarDate(d).Date().Tomorrow(d.Year)
	year := d.Year
	if next.Month == 1 && next.Day == 1 {
		year++
	}
	return NewDate(year, next.Month, next.Day)
}

// Yesterday returns the date of the previous day, wrapping to the
// previous year as required.
func (d Date) Yesterday() Date {
	prev := datetime.CalendarDate(d).Date().Yesterday(d.Year)
	year := d.Year
	if prev.Month == 12 && prev.Day == 31 {
		year--
	}
	return NewDate(year, prev.Month, prev.Day)
}

// Before returns true if d is earlier than o.
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// String returns the date in ISO 8601 format, eg. 2000-01-01.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Long returns the date in a long form, eg. "Saturday, 01 January 2000".
func (d Date) Long() string {
	return fmt.Sprintf("%s, %02d %s %04d", d.Weekday(), d.Day, MonthName(d.Month), d.Year)
}
