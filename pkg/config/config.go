// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the eodl configuration from YAML, HCL or JSON
// files.
package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var parsers []Parser

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔑 CredentialArgs holds the catalog account credentials.
type CredentialArgs struct {
	Username string `json:"username" yaml:"username" hcl:"username,optional"`
	Password string `json:"password" yaml:"password" hcl:"password,optional"`
}

// 📚 Config represents the complete configuration
type Config struct {
	Credentials *CredentialArgs `json:"credentials,omitempty" yaml:"credentials,omitempty" hcl:"credentials,block"`

	Domain       string  `json:"domain,omitempty" yaml:"domain,omitempty" hcl:"domain,optional"`
	Downloads    string  `json:"downloads,omitempty" yaml:"downloads,omitempty" hcl:"downloads,optional"`
	Results      string  `json:"results,omitempty" yaml:"results,omitempty" hcl:"results,optional"`
	TimeoutQuery float64 `json:"timeout_query,omitempty" yaml:"timeout_query,omitempty" hcl:"timeout_query,optional"`
	TimeoutOrder float64 `json:"timeout_order,omitempty" yaml:"timeout_order,omitempty" hcl:"timeout_order,optional"`
	MaxResults   int     `json:"max_results,omitempty" yaml:"max_results,omitempty" hcl:"max_results,optional"`
	Silent       bool    `json:"silent,omitempty" yaml:"silent,omitempty" hcl:"silent,optional"`

	// ExcludeFields are doublestar patterns matched against metadata field
	// names to drop columns from the results CSV.
	ExcludeFields []string `json:"exclude_fields,omitempty" yaml:"exclude_fields,omitempty" hcl:"exclude_fields,optional"`
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks the configuration and fills in defaults.
func (cfg *Config) Validate() error {
	if cfg.Credentials == nil {
		cfg.Credentials = &CredentialArgs{}
	}
	if cfg.Credentials.Username == "" {
		cfg.Credentials.Username = os.Getenv("EODMS_USER")
	}
	if cfg.Credentials.Password == "" {
		cfg.Credentials.Password = os.Getenv("EODMS_PASSWORD")
	}

	if cfg.Downloads == "" {
		cfg.Downloads = "downloads"
	}
	if cfg.Results == "" {
		cfg.Results = "results"
	}
	cfg.Downloads = filepath.Clean(cfg.Downloads)
	cfg.Results = filepath.Clean(cfg.Results)

	if cfg.TimeoutQuery <= 0 {
		cfg.TimeoutQuery = 60.0
	}
	if cfg.TimeoutOrder <= 0 {
		cfg.TimeoutOrder = 180.0
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 1000
	}

	return nil
}

// ⏱️ QueryTimeout returns the query timeout as a duration.
func (cfg *Config) QueryTimeout() time.Duration {
	return time.Duration(cfg.TimeoutQuery * float64(time.Second))
}

// ⏱️ OrderTimeout returns the order timeout as a duration.
func (cfg *Config) OrderTimeout() time.Duration {
	return time.Duration(cfg.TimeoutOrder * float64(time.Second))
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &cfg, nil
}
