// Package config loads the almanac CLI configuration.
//
// Values are layered with koanf. Precedence, highest first: flags, ALMANAC_
// environment variables, the config file, defaults.
package config

import "github.com/ib-77/almanac/pkg/almanac"

// Defaults.
const (
	DefaultInput    = "-"
	DefaultMode     = ModeBoth
	DefaultWorkers  = 1
	DefaultOutput   = "text"
	DefaultLogLevel = "info"
)

// ModeBoth answers the scalar and the range reading of the seeds.
const ModeBoth = "both"

// Config holds all CLI options.
type Config struct {
	Input    string `koanf:"input"`
	Mode     string `koanf:"mode"`
	Workers  int    `koanf:"workers"`
	Output   string `koanf:"output"`
	LogLevel string `koanf:"log_level"`

	// File is the config file that was read, if any.
	File string `koanf:"-"`
}

// Modes expands Mode into the seed modes to answer.
func (c *Config) Modes() ([]almanac.Mode, error) {
	if c.Mode == ModeBoth {
		return []almanac.Mode{almanac.ModeScalar, almanac.ModeRanges}, nil
	}
	m, err := almanac.ParseMode(c.Mode)
	if err != nil {
		return nil, err
	}
	return []almanac.Mode{m}, nil
}
