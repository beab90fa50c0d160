// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package webui

import (
	"cloudeng.io/skycal/almanac"
	"cloudeng.io/skycal/calendar"
)

type cell struct {
	Day             int
	Link            string
	Today, Selected bool
}

type monthOption struct {
	Number   int
	Name     string
	Selected bool
}

type page struct {
	Location string
	Zone     string
	Action   string
	Year     int
	Month    string
	Years    []int
	Months   []monthOption
	Weekdays []string
	Weeks    [][7]cell
	Prev     string
	Next     string
	Day      *almanac.Summary
	Error    string
}

// newPage returns the page for the month, with only the days that exist
// in that month offered as links.
func (s *Server) newPage(year int, month calendar.Month, selected *calendar.Date) *page {
	cfg := s.almanac.Config()
	pg := &page{
		Location: cfg.Location.Name,
		Zone:     s.almanac.Zone().Name(),
		Action:   "/",
		Year:     year,
		Month:    calendar.MonthName(month),
	}
	for y := cfg.Years.Min; y <= cfg.Years.Max; y++ {
		pg.Years = append(pg.Years, y)
	}
	for i, name := range calendar.MonthNames() {
		pg.Months = append(pg.Months, monthOption{Number: i + 1, Name: name, Selected: i+1 == int(month)})
	}
	grid := calendar.NewMondayGrid(year, month)
	pg.Weekdays = grid.Weekdays()
	today := s.today()
	for _, w := range grid.Weeks {
		var row [7]cell
		for i, d := range w {
			if d == 0 {
				continue
			}
			date := calendar.NewDate(year, month, d)
			row[i] = cell{
				Day:      d,
				Link:     dayPath(date),
				Today:    date == today,
				Selected: selected != nil && date == *selected,
			}
		}
		pg.Weeks = append(pg.Weeks, row)
	}
	first := calendar.NewDate(year, month, 1)
	if prev := first.Yesterday(); cfg.Years.Contains(prev.Year) {
		pg.Prev = monthPath(prev.Year, prev.Month)
	} else {
		pg.Prev = monthPath(year, month)
	}
	last := calendar.NewDate(year, month, calendar.DaysInMonth(year, month))
	if next := last.Tomorrow(); cfg.Years.Contains(next.Year) {
		pg.Next = monthPath(next.Year, next.Month)
	} else {
		pg.Next = monthPath(year, month)
	}
	return pg
}
