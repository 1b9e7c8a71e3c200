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

package uti

import (
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// 📋 Declaration describes one type and where it sits in the conformance graph
type Declaration struct {
	Identifier  UTI      // The declared type
	ConformsTo  []UTI    // Direct parents
	Extensions  []string // File extensions without the dot
	Description string   // Human readable name
}

// 🗺️ Rule maps a doublestar glob to a type
type Rule struct {
	Pattern string
	Type    UTI
}

// 📚 Registry holds type declarations and path rules. It is safe for concurrent use.
type Registry struct {
	mu          sync.RWMutex
	decls       map[UTI]Declaration
	order       []UTI
	byExtension map[string]UTI
	rules       []Rule
}

// 🏭 NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		decls:       make(map[UTI]Declaration),
		byExtension: make(map[string]UTI),
	}
}

// 🏭 DefaultRegistry creates a registry seeded with DefaultDeclarations
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, d := range DefaultDeclarations() {
		if err := r.Declare(d); err != nil {
			panic(err)
		}
	}
	return r
}

// 📝 Declare adds or replaces a declaration. Its extensions take over any earlier owner.
func (r *Registry) Declare(d Declaration) error {
	if d.Identifier.IsZero() {
		return errors.Errorf("declaration identifier is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.decls[d.Identifier]; !exists {
		r.order = append(r.order, d.Identifier)
	}
	r.decls[d.Identifier] = d

	for _, ext := range d.Extensions {
		r.byExtension[normalizeExtension(ext)] = d.Identifier
	}

	return nil
}

// 📝 AddRule appends a path rule. Rules are tried in the order they were added.
func (r *Registry) AddRule(pattern string, t UTI) error {
	if !doublestar.ValidatePattern(pattern) {
		return errors.Errorf("invalid glob pattern %q", pattern)
	}
	if t.IsZero() {
		return errors.Errorf("rule %q: type is required", pattern)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, Rule{Pattern: pattern, Type: t})
	return nil
}

// Lookup returns the declaration for t
func (r *Registry) Lookup(t UTI) (Declaration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.decls[t]
	return d, ok
}

// Declarations returns every declaration in declaration order
func (r *Registry) Declarations() []Declaration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Declaration, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.decls[id])
	}
	return out
}

// Rules returns the path rules in match order
func (r *Registry) Rules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]Rule(nil), r.rules...)
}

// 🔗 ConformsTo reports whether value is target or reaches it through declared parents
func (r *Registry) ConformsTo(value, target UTI) bool {
	if value == target {
		return true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := map[UTI]bool{value: true}
	queue := []UTI{value}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, parent := range r.decls[current].ConformsTo {
			if parent == target {
				return true
			}
			if !seen[parent] {
				seen[parent] = true
				queue = append(queue, parent)
			}
		}
	}
	return false
}

// 🔍 MatchesCategory reports whether value belongs to the category named by pattern
func (r *Registry) MatchesCategory(pattern, value UTI) bool {
	return r.ConformsTo(value, pattern)
}

// 🎯 ForPath picks the type of the file at p: first matching rule, then
// extension, then public.plain-text.
func (r *Registry) ForPath(p string) UTI {
	slashed := filepath.ToSlash(p)
	base := path.Base(slashed)

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rule := range r.rules {
		target := slashed
		if !strings.Contains(rule.Pattern, "/") {
			target = base
		}
		if ok, _ := doublestar.Match(rule.Pattern, target); ok {
			return rule.Type
		}
	}

	if t, ok := r.byExtension[normalizeExtension(path.Ext(base))]; ok {
		return t
	}

	return PlainText
}

func normalizeExtension(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
