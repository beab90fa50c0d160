// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package almanac

import (
	"fmt"
	"io"
	"strings"

	"cloudeng.io/skycal/astronomy"
	"cloudeng.io/skycal/civiltime"
	"cloudeng.io/skycal/riseset"
)

// Events is the display form of a body's rising and setting.
type Events struct {
	Body string `json:"body"`
	Rise string `json:"rise"`
	Set  string `json:"set"`
}

// Summary is the display form of a Day, with all times formatted
// as 12-hour clock times in the Day's zone or "N/A".
type Summary struct {
	Date             string   `json:"date"`
	Weekday          string   `json:"weekday"`
	Location         Location `json:"location"`
	Zone             string   `json:"timezone"`
	Sunrise          string   `json:"sunrise"`
	Sunset           string   `json:"sunset"`
	SolarNoon        string   `json:"solar_noon"`
	DayLength        string   `json:"day_length"`
	MoonIllumination string   `json:"moon_illumination"`
	Moon             Events   `json:"moon"`
	Planets          []Events `json:"planets"`
	Season           string   `json:"season"`
	SeasonMarker     string   `json:"season_marker,omitempty"`
}

func (be BodyEvents) display(z civiltime.Zone) Events {
	return Events{
		Body: be.Body.String(),
		Rise: riseset.ToLocalDisplay(be.Rise, z),
		Set:  riseset.ToLocalDisplay(be.Set, z),
	}
}

// Summary returns the display form of the Day.
func (d *Day) Summary() Summary {
	s := Summary{
		Date:             d.Date.String(),
		Weekday:          d.Date.Weekday().String(),
		Location:         d.Location,
		Zone:             d.Zone.Name(),
		Sunrise:          civiltime.Display(d.Sunrise, d.Zone),
		Sunset:           civiltime.Display(d.Sunset, d.Zone),
		SolarNoon:        civiltime.Display(d.SolarNoon, d.Zone),
		DayLength:        civiltime.NotApplicable,
		MoonIllumination: fmt.Sprintf("%.1f%%", d.MoonIllumination),
		Moon:             d.Moon.display(d.Zone),
		Season:           d.Season,
		SeasonMarker:     d.SeasonMarker,
	}
	if d.DayLength > 0 {
		s.DayLength = astronomy.FormatDuration(d.DayLength)
	}
	for _, p := range d.Planets {
		s.Planets = append(s.Planets, p.display(d.Zone))
	}
	return s
}

// Report writes a plain text rendition of the Day to w.
func (d *Day) Report(w io.Writer) error {
	s := d.Summary()
	out := &strings.Builder{}
	fmt.Fprintf(out, "%s, %s\n", d.Location, s.Zone)
	fmt.Fprintf(out, "%s (%s)\n", d.Date.Long(), s.Season)
	if len(s.SeasonMarker) > 0 {
		fmt.Fprintf(out, "%s\n", s.SeasonMarker)
	}
	out.WriteString("\n")
	line := func(label, value string) {
		fmt.Fprintf(out, "%-18s %s\n", label+":", value)
	}
	line("Sunrise", s.Sunrise)
	line("Sunset", s.Sunset)
	line("Solar noon", s.SolarNoon)
	line("Day length", s.DayLength)
	line("Moon illumination", s.MoonIllumination)
	line("Moonrise", s.Moon.Rise)
	line("Moonset", s.Moon.Set)
	for _, p := range s.Planets {
		line(p.Body+" rise", p.Rise)
		line(p.Body+" set", p.Set)
	}
	_, err := io.WriteString(w, out.String())
	return err
}
