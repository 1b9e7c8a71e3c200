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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ConformsTo(t *testing.T) {
	reg := DefaultRegistry()

	tests := []struct {
		name   string
		value  UTI
		target UTI
		want   bool
	}{
		{name: "reflexive", value: SourceCode, target: SourceCode, want: true},
		{name: "reflexive_undeclared", value: "com.example.other", target: "com.example.other", want: true},
		{name: "direct_parent", value: SwiftSource, target: SourceCode, want: true},
		{name: "transitive", value: ShellScript, target: SourceCode, want: true},
		{name: "transitive_to_root", value: SwiftSource, target: Item, want: true},
		{name: "not_a_child", value: PlainText, target: SourceCode, want: false},
		{name: "sibling", value: JSON, target: SourceCode, want: false},
		{name: "playground_is_not_source", value: Playground, target: SourceCode, want: false},
		{name: "undeclared_value", value: "com.example.other", target: SourceCode, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reg.ConformsTo(tt.value, tt.target))
			assert.Equal(t, tt.want, reg.MatchesCategory(tt.target, tt.value), "MatchesCategory takes the pattern first")
		})
	}
}

func TestRegistry_ConformsToHandlesCycles(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Declare(Declaration{Identifier: "a", ConformsTo: []UTI{"b"}}))
	require.NoError(t, reg.Declare(Declaration{Identifier: "b", ConformsTo: []UTI{"a"}}))

	assert.True(t, reg.ConformsTo("a", "b"))
	assert.False(t, reg.ConformsTo("a", "c"), "cycle should terminate")
}

func TestRegistry_Declare(t *testing.T) {
	reg := DefaultRegistry()

	err := reg.Declare(Declaration{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "identifier is required")

	require.NoError(t, reg.Declare(Declaration{
		Identifier: "com.example.template",
		ConformsTo: []UTI{SourceCode},
		Extensions: []string{".TMPL"},
	}))

	d, ok := reg.Lookup("com.example.template")
	require.True(t, ok)
	assert.Equal(t, []UTI{SourceCode}, d.ConformsTo)
	assert.True(t, reg.ConformsTo("com.example.template", PlainText))
	assert.Equal(t, UTI("com.example.template"), reg.ForPath("views/index.tmpl"), "extension should be case-insensitive")

	decls := reg.Declarations()
	assert.Equal(t, UTI("com.example.template"), decls[len(decls)-1].Identifier, "new declarations go last")
}

func TestRegistry_ForPath(t *testing.T) {
	reg := DefaultRegistry()
	require.NoError(t, reg.AddRule("**/testdata/**", PlainText))
	require.NoError(t, reg.AddRule("*.swift.txt", SwiftSource))
	require.NoError(t, reg.AddRule("Makefile", ShellScript))

	tests := []struct {
		path string
		want UTI
	}{
		{path: "Sources/App/Model.swift", want: SwiftSource},
		{path: "main.go", want: "org.golang.go-source"},
		{path: "include/api.h", want: CHeader},
		{path: "build.SH", want: ShellScript},
		{path: "config.yml", want: YAML},
		{path: "pkg/testdata/fixture.go", want: PlainText},
		{path: "notes/Example.swift.txt", want: SwiftSource},
		{path: "Makefile", want: ShellScript},
		{path: "sub/Makefile", want: ShellScript},
		{path: "README", want: PlainText},
		{path: "image.unknownext", want: PlainText},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, reg.ForPath(tt.path))
		})
	}
}

func TestRegistry_AddRuleValidates(t *testing.T) {
	reg := NewRegistry()

	err := reg.AddRule("[unclosed", PlainText)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid glob pattern")

	err = reg.AddRule("*.txt", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type is required")

	assert.Empty(t, reg.Rules())
}

func TestRegistry_ConcurrentUse(t *testing.T) {
	reg := DefaultRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = reg.Declare(Declaration{Identifier: "com.example.concurrent", ConformsTo: []UTI{SourceCode}})
			_ = reg.ConformsTo("com.example.concurrent", Text)
			_ = reg.ForPath("x.swift")
		}()
	}
	wg.Wait()

	assert.True(t, reg.ConformsTo("com.example.concurrent", Text))
}

func TestMatchesCategory_System(t *testing.T) {
	assert.True(t, MatchesCategory(SourceCode, SwiftSource))
	assert.True(t, SwiftSource.ConformsTo(PlainText))
	assert.False(t, MatchesCategory(SourceCode, "com.example.other"))
	assert.Same(t, System(), System(), "system registry should be shared")
}
