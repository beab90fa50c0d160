// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package civiltime provides the civil time zone policy used to present
// astronomical events as local wall clock times. A Zone may be a fixed
// offset, such as Indian Standard Time, or an IANA location whose offset
// varies with daylight saving rules; callers never assume either.
package civiltime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Zone is the policy used to map instants to and from civil time.
type Zone interface {
	// Name returns the name of the zone, eg. IST or Asia/Kolkata.
	Name() string
	// In returns t as civil time in the zone.
	In(t time.Time) time.Time
	// Date returns the instant corresponding to the specified wall clock
	// time in the zone.
	Date(year int, month time.Month, day, hour, minute, second int) time.Time
}

type fixedZone struct {
	name string
	loc  *time.Location
}

// FixedZone returns a Zone with a constant offset from UTC and no
// daylight saving transitions.
func FixedZone(name string, offset time.Duration) Zone {
	return fixedZone{
		name: name,
		loc:  time.FixedZone(name, int(offset/time.Second)),
	}
}

func (z fixedZone) Name() string {
	return z.name
}

func (z fixedZone) In(t time.Time) time.Time {
	return t.In(z.loc)
}

func (z fixedZone) Date(year int, month time.Month, day, hour, minute, second int) time.Time {
	return time.Date(year, month, day, hour, minute, second, 0, z.loc)
}

type locationZone struct {
	loc *time.Location
}

// LocationZone returns a Zone that uses the offsets, including any daylight
// saving rules, of the supplied location.
func LocationZone(loc *time.Location) Zone {
	return locationZone{loc: loc}
}

func (z locationZone) Name() string {
	return z.loc.String()
}

func (z locationZone) In(t time.Time) time.Time {
	return t.In(z.loc)
}

func (z locationZone) Date(year int, month time.Month, day, hour, minute, second int) time.Time {
	return time.Date(year, month, day, hour, minute, second, 0, z.loc)
}

var (
	// IST is Indian Standard Time, UTC+5:30 with no daylight saving.
	IST = FixedZone("IST", 5*time.Hour+30*time.Minute)
	// UTC is Coordinated Universal Time.
	UTC = FixedZone("UTC", 0)
)

var offsetRe = regexp.MustCompile(`^(?:UTC|GMT)?([+-])(\d{1,2})(?::?(\d{2}))?$`)

// ParseZone parses a zone specification. Supported forms are the
// abbreviations IST and UTC, numeric offsets such as UTC+05:30, +0530
// or UTC-3, and IANA location names such as Asia/Kolkata.
func ParseZone(spec string) (Zone, error) {
	spec = strings.TrimSpace(spec)
	switch strings.ToUpper(spec) {
	case "IST":
		return IST, nil
	case "UTC", "GMT", "Z":
		return UTC, nil
	case "":
		return nil, fmt.Errorf("empty time zone")
	}
	if m := offsetRe.FindStringSubmatch(strings.ToUpper(spec)); m != nil {
		hours, _ := strconv.Atoi(m[2])
		var minutes int
		if len(m[3]) > 0 {
			minutes, _ = strconv.Atoi(m[3])
		}
		if hours > 14 || minutes > 59 {
			return nil, fmt.Errorf("invalid utc offset: %q", spec)
		}
		offset := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
		if m[1] == "-" {
			offset = -offset
		}
		return FixedZone(FormatOffset(offset), offset), nil
	}
	loc, err := time.LoadLocation(spec)
	if err != nil {
		return nil, fmt.Errorf("unrecognised time zone %q: %w", spec, err)
	}
	return LocationZone(loc), nil
}

// FormatOffset formats an offset from UTC as UTC+hh:mm.
func FormatOffset(offset time.Duration) string {
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	h := int(offset / time.Hour)
	m := int((offset % time.Hour) / time.Minute)
	return fmt.Sprintf("UTC%c%02d:%02d", sign, h, m)
}

// Spec is a Zone that can be read from and written to YAML
// configuration files using the formats accepted by ParseZone.
type Spec struct {
	Zone
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Spec) UnmarshalYAML(node *yaml.Node) error {
	var val string
	if err := node.Decode(&val); err != nil {
		return err
	}
	z, err := ParseZone(val)
	if err != nil {
		return err
	}
	s.Zone = z
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Spec) MarshalYAML() (any, error) {
	if s.Zone == nil {
		return "", nil
	}
	return s.Name(), nil
}
