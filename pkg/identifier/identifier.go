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

// Package identifier generates UUIDs and renders them as source text.
package identifier

import (
	"strings"

	"github.com/google/uuid"
	"gitlab.com/tozd/go/errors"
)

// 🎲 Generator produces fresh identifiers
type Generator interface {
	New() (uuid.UUID, error)
}

// GeneratorFunc adapts a function to Generator
type GeneratorFunc func() (uuid.UUID, error)

func (f GeneratorFunc) New() (uuid.UUID, error) {
	return f()
}

// RandomGenerator produces random (version 4) identifiers
type RandomGenerator struct{}

func (RandomGenerator) New() (uuid.UUID, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return uuid.Nil, errors.Errorf("generating uuid: %w", err)
	}
	return id, nil
}

// FixedGenerator always produces ID
type FixedGenerator struct {
	ID uuid.UUID
}

func (g FixedGenerator) New() (uuid.UUID, error) {
	return g.ID, nil
}

// 🔠 Case selects the letter case of the hex digits
type Case int

const (
	Upper Case = iota
	Lower
)

func (c Case) String() string {
	if c == Lower {
		return "lower"
	}
	return "upper"
}

// ParseCase parses "upper" or "lower". Empty means Upper.
func ParseCase(s string) (Case, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "upper":
		return Upper, nil
	case "lower":
		return Lower, nil
	default:
		return Upper, errors.Errorf("unknown case %q: want upper or lower", s)
	}
}

// 🎨 Style is how an identifier is written into a document.
// The zero value is the bare form.
type Style struct {
	Quote string // Written on both sides when non-empty
}

// Simple is the bare 8-4-4-4-12 form
func Simple() Style {
	return Style{}
}

// Quoted wraps the identifier in quote on both sides
func Quoted(quote string) Style {
	return Style{Quote: quote}
}

// IsQuoted reports whether the style adds quotes
func (s Style) IsQuoted() bool {
	return s.Quote != ""
}

func (s Style) String() string {
	if s.IsQuoted() {
		return "quoted(" + s.Quote + ")"
	}
	return "simple"
}

// 📝 Format renders id in canonical hyphenated form using style and c
func Format(id uuid.UUID, style Style, c Case) string {
	text := id.String()
	if c == Upper {
		text = strings.ToUpper(text)
	}
	if style.IsQuoted() {
		return style.Quote + text + style.Quote
	}
	return text
}
