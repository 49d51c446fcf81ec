/*

SPDX-Copyright: Copyright (c) Capital One Services, LLC
SPDX-License-Identifier: Apache-2.0
Copyright 2017 Capital One Services, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and limitations under the License.

*/

// Package config loads the tritcipher command configuration from YAML files.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/deltak/tritcipher"
	"github.com/deltak/tritcipher/trit"
)

//go:embed default.yaml
var DEFAULT []byte

// Config is the command configuration.
type Config struct {
	Glyphs      string `yaml:"glyphs"`
	Separator   string `yaml:"separator"`
	KeyedScheme string `yaml:"keyed_scheme"`
	Strict      bool   `yaml:"strict"`
	LogLevel    string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	var cfg Config
	if err := yaml.Unmarshal(DEFAULT, &cfg); err != nil {
		panic(fmt.Sprintf("config: default.yaml: %v", err))
	}
	return &cfg
}

func readFile(cfg *Config, path string) error {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
	default:
		return fmt.Errorf("%s: not in a valid format", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	// fields missing from the file keep their current value
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Process reads the provided configuration files in order on top of the
// default configuration, later files overriding earlier ones, and validates
// the result.
func Process(configPaths []string) (*Config, error) {
	cfg := Default()
	for _, path := range configPaths {
		if err := readFile(cfg, path); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if _, err := c.GlyphSet(); err != nil {
		return err
	}
	if _, err := c.Keyed(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// GlyphSet builds the configured glyph set.
func (c *Config) GlyphSet() (trit.GlyphSet, error) {
	if utf8.RuneCountInString(c.Separator) != 1 {
		return trit.GlyphSet{}, fmt.Errorf("separator must be a single character, got %q", c.Separator)
	}
	sep, _ := utf8.DecodeRuneInString(c.Separator)
	return trit.NewGlyphSet(c.Glyphs, sep)
}

// Keyed returns the scheme used for keys other than the sentinel.
func (c *Config) Keyed() (tritcipher.Scheme, error) {
	s, err := tritcipher.ParseScheme(c.KeyedScheme)
	if err != nil {
		return s, err
	}
	if _, ok := s.KeyMode(); !ok {
		return s, fmt.Errorf("keyed_scheme must be additive or permutation, got %q", c.KeyedScheme)
	}
	return s, nil
}

// Level returns the configured log level.
func (c *Config) Level() (zerolog.Level, error) {
	return zerolog.ParseLevel(c.LogLevel)
}
