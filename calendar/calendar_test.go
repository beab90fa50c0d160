// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"cloudeng.io/skycal/calendar"
)

func TestMonthParse(t *testing.T) {
	for _, tc := range []struct {
		val   string
		month calendar.Month
	}{
		{"1", 1},
		{"01", 1},
		{"12", 12},
		{"jan", 1},
		{"January", 1},
		{"FEB", 2},
		{"sept", 9},
		{"December", 12},
	} {
		m, err := calendar.ParseMonth(tc.val)
		if err != nil {
			t.Errorf("failed: %v: %v", tc.val, err)
			continue
		}
		if got, want := m, tc.month; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}

	// The empty string and short prefixes would otherwise match January.
	for _, val := range []string{"", "0", "13", "j", "ja", "Janx", "foo"} {
		if _, err := calendar.ParseMonth(val); err == nil {
			t.Errorf("failed to return an error: %q", val)
		}
	}

	if got, want := len(calendar.MonthNames()), 12; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.MonthName(3), "March"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDaysInMonth(t *testing.T) {
	for _, tc := range []struct {
		year  int
		month calendar.Month
		days  int
	}{
		{2023, 1, 31},
		{2023, 2, 28},
		{2024, 2, 29},
		{1900, 2, 28},
		{2000, 2, 29},
		{2100, 2, 28},
		{2024, 4, 30},
		{2024, 12, 31},
		{2024, 13, 0},
	} {
		if got, want := calendar.DaysInMonth(tc.year, tc.month), tc.days; got != want {
			t.Errorf("%v %v: got %v, want %v", tc.year, tc.month, got, want)
		}
	}
}

func TestDateValidate(t *testing.T) {
	valid := []calendar.Date{
		calendar.NewDate(2024, 2, 29),
		calendar.NewDate(2000, 1, 1),
		calendar.NewDate(2100, 12, 31),
	}
	for _, d := range valid {
		if err := d.Validate(); err != nil {
			t.Errorf("%v: %v", d, err)
		}
	}
	invalid := []calendar.Date{
		calendar.NewDate(2023, 2, 29),
		calendar.NewDate(2024, 2, 30),
		calendar.NewDate(2024, 4, 31),
		calendar.NewDate(2024, 0, 1),
		calendar.NewDate(2024, 1, 0),
	}
	for _, d := range invalid {
		err := d.Validate()
		if !errors.Is(err, calendar.ErrInvalidDate) {
			t.Errorf("%v: expected ErrInvalidDate, got %v", d, err)
		}
	}

	years := calendar.DefaultYears
	if err := years.Check(calendar.NewDate(1899, 12, 31)); !errors.Is(err, calendar.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
	if err := years.Check(calendar.NewDate(1900, 1, 1)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if got, want := years.Clamp(2200), 2100; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if err := (calendar.YearRange{Min: 2000, Max: 1999}).Validate(); err == nil {
		t.Errorf("expected an error")
	}
}

func TestParseDate(t *testing.T) {
	d, err := calendar.ParseDate("2024", "feb", "29")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := d, calendar.NewDate(2024, 2, 29); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, tc := range [][3]string{
		{"2023", "feb", "29"},
		{"x", "1", "1"},
		{"2023", "smarch", "1"},
		{"2023", "1", "x"},
	} {
		if _, err := calendar.ParseDate(tc[0], tc[1], tc[2]); !errors.Is(err, calendar.ErrInvalidDate) {
			t.Errorf("%v: expected ErrInvalidDate, got %v", tc, err)
		}
	}
}

func TestDateArithmetic(t *testing.T) {
	nd := calendar.NewDate
	for _, tc := range []struct {
		d, tomorrow calendar.Date
	}{
		{nd(2024, 1, 1), nd(2024, 1, 2)},
		{nd(2024, 1, 31), nd(2024, 2, 1)},
		{nd(2024, 2, 28), nd(2024, 2, 29)},
		{nd(2023, 2, 28), nd(2023, 3, 1)},
		{nd(2023, 12, 31), nd(2024, 1, 1)},
	} {
		if got, want := tc.d.Tomorrow(), tc.tomorrow; got != want {
			t.Errorf("%v: got %v, want %v", tc.d, got, want)
		}
		if got, want := tc.tomorrow.Yesterday(), tc.d; got != want {
			t.Errorf("%v: got %v, want %v", tc.tomorrow, got, want)
		}
		if !tc.d.Before(tc.tomorrow) || tc.tomorrow.Before(tc.d) || tc.d.Before(tc.d) {
			t.Errorf("%v: Before is wrong", tc.d)
		}
	}

	if got, want := nd(2024, 3, 1).DayOfYear(), 31+29+1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := nd(2023, 12, 31).DayOfYear(), 365; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := nd(2000, 1, 1).Weekday(), time.Saturday; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := nd(2000, 1, 1).Long(), "Saturday, 01 January 2000"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := nd(2000, 1, 1).String(), "2000-01-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := calendar.DateFromTime(time.Date(2024, 7, 4, 23, 0, 0, 0, time.UTC)), nd(2024, 7, 4); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestGrid(t *testing.T) {
	g := calendar.NewMondayGrid(2024, 1)
	want := []calendar.Week{
		{1, 2, 3, 4, 5, 6, 7},
		{8, 9, 10, 11, 12, 13, 14},
		{15, 16, 17, 18, 19, 20, 21},
		{22, 23, 24, 25, 26, 27, 28},
		{29, 30, 31, 0, 0, 0, 0},
	}
	if got := g.Weeks; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	g = calendar.NewMondayGrid(2024, 2)
	if got, want := g.Weeks[0], (calendar.Week{0, 0, 0, 1, 2, 3, 4}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := g.Weeks[len(g.Weeks)-1], (calendar.Week{26, 27, 28, 29, 0, 0, 0}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := len(g.Dates()), 29; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := g.Weekdays(), []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	g = calendar.NewGrid(2024, 2, time.Sunday)
	if got, want := g.Weeks[0], (calendar.Week{0, 0, 0, 0, 1, 2, 3}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := g.Weekdays()[0], "Sun"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// Every grid contains exactly the valid days of the month.
	for year := 1900; year <= 2100; year += 37 {
		for m := calendar.Month(1); m <= 12; m++ {
			dates := calendar.NewMondayGrid(year, m).Dates()
			if got, want := len(dates), calendar.DaysInMonth(year, m); got != want {
				t.Errorf("%v %v: got %v, want %v", year, m, got, want)
			}
			for _, d := range dates {
				if err := d.Validate(); err != nil {
					t.Errorf("%v: %v", d, err)
				}
			}
		}
	}

	if got := calendar.NewMondayGrid(2024, 13).Weeks; got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestGridString(t *testing.T) {
	out := calendar.NewMondayGrid(2024, 2).String()
	want := `   February 2024
Mo Tu We Th Fr Sa Su
          1  2  3  4
 5  6  7  8  9 10 11
12 13 14 15 16 17 18
19 20 21 22 23 24 25
26 27 28 29         
`
	if got := out; got != want {
		t.Errorf("got\n%q\nwant\n%q", got, want)
	}
}
