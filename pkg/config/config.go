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

package config

import (
	"context"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/genuuid/pkg/identifier"
	"github.com/walteh/genuuid/pkg/uti"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

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

// FileNames are the config file names Find looks for, in order
var FileNames = []string{".genuuid.yaml", ".genuuid.yml", ".genuuid.hcl", ".genuuid.json"}

// 🏷️ TypeDeclaration declares an extra content type
type TypeDeclaration struct {
	Identifier  string   `json:"identifier" yaml:"identifier" hcl:"identifier,label"`
	ConformsTo  []string `json:"conforms_to,omitempty" yaml:"conforms_to,omitempty" hcl:"conforms_to,optional"`
	Extensions  []string `json:"extensions,omitempty" yaml:"extensions,omitempty" hcl:"extensions,optional"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty" hcl:"description,optional"`
}

// 🗺️ FileRule assigns a content type to files matching a glob
type FileRule struct {
	Pattern string `json:"pattern" yaml:"pattern" hcl:"pattern"`
	Type    string `json:"type" yaml:"type" hcl:"type"`
}

// 📚 Config represents the complete configuration
type Config struct {
	Quote       string            `json:"quote,omitempty" yaml:"quote,omitempty" hcl:"quote,optional"`                      // Quote for source documents; empty means the default
	Case        string            `json:"case,omitempty" yaml:"case,omitempty" hcl:"case,optional"`                         // upper or lower
	QuotedTypes []string          `json:"quoted_types,omitempty" yaml:"quoted_types,omitempty" hcl:"quoted_types,optional"` // Categories written quoted; nil means the defaults, empty means none
	Types       []TypeDeclaration `json:"types,omitempty" yaml:"types,omitempty" hcl:"type,block"`
	Files       []FileRule        `json:"files,omitempty" yaml:"files,omitempty" hcl:"file,block"`
	Async       bool              `json:"async,omitempty" yaml:"async,omitempty" hcl:"async,optional"`

	location string
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (cfg *Config) setDefaults() {
	if cfg.Quote == "" {
		cfg.Quote = identifier.DefaultQuote
	}
	if cfg.Case == "" {
		cfg.Case = identifier.Upper.String()
	}
	if cfg.QuotedTypes == nil {
		for _, t := range identifier.DefaultQuotedTypes() {
			cfg.QuotedTypes = append(cfg.QuotedTypes, t.String())
		}
	}
}

// Location returns the file the config was loaded from, or "" for defaults
func (cfg *Config) Location() string {
	return cfg.location
}

// 🔎 Find returns the first config file in dir, or "" when there is none
func Find(dir string) string {
	for _, name := range FileNames {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// 🎯 Load loads the configuration from a file. A missing file yields Default().
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)

	if path == "" {
		logger.Debug().Msg("no config file, using defaults")
		return Default(), nil
	}

	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("path", path).Msg("config file not found, using defaults")
			return Default(), nil
		}
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
	cfg.location = path

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks the configuration and fills in defaults
func (cfg *Config) Validate() error {
	cfg.setDefaults()

	if _, err := identifier.ParseCase(cfg.Case); err != nil {
		return errors.Errorf("case: %w", err)
	}

	if utf8.RuneCountInString(cfg.Quote) > 1 {
		return errors.Errorf("quote must be a single character, got %q", cfg.Quote)
	}

	for i, t := range cfg.QuotedTypes {
		if t == "" {
			return errors.Errorf("quoted_types[%d] is empty", i)
		}
	}

	for i, d := range cfg.Types {
		if d.Identifier == "" {
			return errors.Errorf("types[%d]: identifier is required", i)
		}
	}

	for i, f := range cfg.Files {
		if f.Pattern == "" {
			return errors.Errorf("files[%d]: pattern is required", i)
		}
		if !doublestar.ValidatePattern(f.Pattern) {
			return errors.Errorf("files[%d]: invalid glob pattern %q", i, f.Pattern)
		}
		if f.Type == "" {
			return errors.Errorf("files[%d]: type is required", i)
		}
	}

	return nil
}

// 📚 Registry builds the type registry: the defaults plus declared types and file rules
func (cfg *Config) Registry() (*uti.Registry, error) {
	reg := uti.DefaultRegistry()

	for _, d := range cfg.Types {
		decl := uti.Declaration{
			Identifier:  uti.UTI(d.Identifier),
			Extensions:  d.Extensions,
			Description: d.Description,
		}
		for _, parent := range d.ConformsTo {
			decl.ConformsTo = append(decl.ConformsTo, uti.UTI(parent))
		}
		if err := reg.Declare(decl); err != nil {
			return nil, errors.Errorf("declaring %q: %w", d.Identifier, err)
		}
	}

	for _, f := range cfg.Files {
		if err := reg.AddRule(f.Pattern, uti.UTI(f.Type)); err != nil {
			return nil, errors.Errorf("adding file rule: %w", err)
		}
	}

	return reg, nil
}

// 📜 Policy builds the formatting policy over reg
func (cfg *Config) Policy(reg *uti.Registry) (identifier.Policy, error) {
	c, err := identifier.ParseCase(cfg.Case)
	if err != nil {
		return identifier.Policy{}, errors.Errorf("case: %w", err)
	}

	quote := cfg.Quote
	if quote == "" {
		quote = identifier.DefaultQuote
	}

	policy := identifier.Policy{
		Quote:    quote,
		Case:     c,
		Registry: reg,
	}
	for _, t := range cfg.QuotedTypes {
		policy.QuotedTypes = append(policy.QuotedTypes, uti.UTI(t))
	}
	return policy, nil
}
