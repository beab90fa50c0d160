// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"strconv"
	"strings"
	"time"
)

// Week is a row of a month grid; a zero day denotes a cell that does not
// belong to the month.
type Week [7]int

// Grid is a month laid out in weeks, starting on FirstWeekday.
// Only valid days of the month appear in the grid.
type Grid struct {
	Year         int
	Month        Month
	FirstWeekday time.Weekday
	Weeks        []Week
}

// NewGrid returns the grid for the specified month with weeks starting
// on first.
func NewGrid(year int, month Month, first time.Weekday) Grid {
	g := Grid{Year: year, Month: month, FirstWeekday: first}
	n := DaysInMonth(year, month)
	if n == 0 {
		return g
	}
	col := (int(NewDate(year, month, 1).Weekday()) - int(first) + 7) % 7
	var w Week
	for day := 1; day <= n; day++ {
		w[col] = day
		col++
		if col == 7 {
			g.Weeks = append(g.Weeks, w)
			w = Week{}
			col = 0
		}
	}
	if col > 0 {
		g.Weeks = append(g.Weeks, w)
	}
	return g
}

// NewMondayGrid is equivalent to NewGrid(year, month, time.Monday).
func NewMondayGrid(year int, month Month) Grid {
	return NewGrid(year, month, time.Monday)
}

// Weekdays returns the three letter weekday names in grid column order.
func (g Grid) Weekdays() []string {
	names := make([]string, 7)
	for i := range names {
		names[i] = time.Weekday((int(g.FirstWeekday) + i) % 7).String()[:3]
	}
	return names
}

// Dates returns the dates in the grid in order.
func (g Grid) Dates() []Date {
	var dates []Date
	for _, w := range g.Weeks {
		for _, d := range w {
			if d != 0 {
				dates = append(dates, NewDate(g.Year, g.Month, d))
			}
		}
	}
	return dates
}

// String renders the grid in the style of cal(1).
func (g Grid) String() string {
	var out strings.Builder
	title := MonthName(g.Month) + " " + strconv.Itoa(g.Year)
	if pad := (20 - len(title)) / 2; pad > 0 {
		out.WriteString(strings.Repeat(" ", pad))
	}
	out.WriteString(title)
	out.WriteByte('\n')
	for i, wd := range g.Weekdays() {
		if i > 0 {
			out.WriteByte(' ')
		}
		out.WriteString(wd[:2])
	}
	out.WriteByte('\n')
	for _, w := range g.Weeks {
		for i, d := range w {
			if i > 0 {
				out.WriteByte(' ')
			}
			if d == 0 {
				out.WriteString("  ")
				continue
			}
			if d < 10 {
				out.WriteByte(' ')
			}
			out.WriteString(strconv.Itoa(d))
		}
		out.WriteByte('\n')
	}
	return out.String()
}
