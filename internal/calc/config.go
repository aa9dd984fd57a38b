// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of a Calculator.
type Config struct {
	Format    string `yaml:"format"` // q16.16, uq16.16 or uq8.8
	Policy    string `yaml:"policy"` // saturate or check
	Locale    string `yaml:"locale"` // BCP 47 tag, empty for plain output
	Prec      int    `yaml:"prec"`   // decimals, -1 for the exact value
	CacheSize int    `yaml:"cache_size"`
	Workers   int    `yaml:"workers"`

	Log struct {
		Level       string `yaml:"level"`
		Development bool   `yaml:"development"`
	} `yaml:"log"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	c := &Config{
		Format:    "q16.16",
		Policy:    "saturate",
		Prec:      -1,
		CacheSize: 1024,
		Workers:   4,
	}
	c.Log.Level = "warn"
	return c
}

// LoadConfig reads a YAML configuration file. Settings missing from the
// file keep their default value.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("calc: %s: %w", filename, err)
	}

	return config, nil
}

// Logger builds the logger described by c.
func (c *Config) Logger() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	if c.Log.Level != "" {
		lvl, err := zap.ParseAtomicLevel(c.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("calc: log level: %w", err)
		}
		zc.Level = lvl
	}
	return zc.Build()
}
