// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package almanac

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/cmdutil/structdoc"
	"cloudeng.io/errors"
	"cloudeng.io/skycal/calendar"
	"cloudeng.io/skycal/civiltime"
	"github.com/go-playground/validator/v10"
)

// Location is a named observing site.
type Location struct {
	Name      string  `yaml:"name" json:"name" validate:"required" cmd:"name of the observing site"`
	Latitude  float64 `yaml:"latitude" json:"latitude" validate:"gte=-90,lte=90" cmd:"latitude in decimal degrees, north positive"`
	Longitude float64 `yaml:"longitude" json:"longitude" validate:"gte=-180,lte=180" cmd:"longitude in decimal degrees, east positive"`
	Elevation float64 `yaml:"elevation" json:"elevation" validate:"gte=-500,lte=10000" cmd:"elevation in meters"`
}

func (l Location) String() string {
	return fmt.Sprintf("%s (%.4f, %.4f)", l.Name, l.Latitude, l.Longitude)
}

// Config represents the location, civil time zone and range of years
// used for almanac computations.
type Config struct {
	Location Location           `yaml:"location" cmd:"observing site"`
	Zone     civiltime.Spec     `yaml:"timezone" cmd:"civil time zone, eg. IST, UTC+05:30 or Asia/Kolkata"`
	Years    calendar.YearRange `yaml:"years" cmd:"range of years offered"`
}

// Kodaikanal is the Kodaikanal Solar Observatory, India.
var Kodaikanal = Location{
	Name:      "Kodaikanal",
	Latitude:  10 + 13.0/60 + 50.0/3600,
	Longitude: 77 + 28.0/60 + 7.0/3600,
}

// DefaultConfig returns a configuration for Kodaikanal using Indian
// Standard Time and the default range of years.
func DefaultConfig() Config {
	return Config{
		Location: Kodaikanal,
		Zone:     civiltime.Spec{Zone: civiltime.IST},
		Years:    calendar.DefaultYears,
	}
}

var validate = validator.New()

// Validate returns all of the problems found with the configuration.
func (c Config) Validate() error {
	errs := &errors.M{}
	if err := validate.Struct(c.Location); err != nil {
		errs.Append(fmt.Errorf("location: %w", err))
	}
	if c.Zone.Zone == nil {
		errs.Append(fmt.Errorf("timezone: not specified"))
	}
	if err := c.Years.Validate(); err != nil {
		errs.Append(fmt.Errorf("years: %w", err))
	}
	return errs.Err()
}

// ParseConfig parses a YAML configuration, unspecified fields retain their
// values from DefaultConfig. Unknown fields are reported as errors.
func ParseConfig(spec []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := cmdyaml.ParseConfigStrict(spec, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// LoadConfig is like ParseConfig but reads the configuration from filename.
// DefaultConfig is returned if filename is empty.
func LoadConfig(ctx context.Context, filename string) (Config, error) {
	cfg := DefaultConfig()
	if len(filename) == 0 {
		return cfg, nil
	}
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

// DescribeConfig returns a description of the YAML configuration file.
func DescribeConfig() (string, error) {
	desc, err := structdoc.Describe(&Config{}, "cmd", "YAML configuration file options\n")
	if err != nil {
		return "", err
	}
	return desc.String(), nil
}
