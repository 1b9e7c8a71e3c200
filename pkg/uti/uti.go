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

// Package uti classifies documents by Uniform Type Identifier.
//
// A UTI is a reverse-DNS string such as "public.swift-source". Types form a
// conformance graph: public.swift-source conforms to public.source-code,
// which conforms to public.plain-text, and so on. A Registry holds that graph
// along with the file name rules used to pick a type for a path.
package uti

import (
	"sync"
)

// 🏷️ UTI is a Uniform Type Identifier
type UTI string

// Well-known identifiers
const (
	Item           UTI = "public.item"
	Content        UTI = "public.content"
	Data           UTI = "public.data"
	Text           UTI = "public.text"
	PlainText      UTI = "public.plain-text"
	SourceCode     UTI = "public.source-code"
	SwiftSource    UTI = "public.swift-source"
	CSource        UTI = "public.c-source"
	CHeader        UTI = "public.c-header"
	ObjCSource     UTI = "public.objective-c-source"
	CPlusSource    UTI = "public.c-plus-plus-source"
	GoSource       UTI = "org.golang.go-source"
	Script         UTI = "public.script"
	ShellScript    UTI = "public.shell-script"
	PythonScript   UTI = "public.python-script"
	RubyScript     UTI = "public.ruby-script"
	JSON           UTI = "public.json"
	XML            UTI = "public.xml"
	YAML           UTI = "public.yaml"
	Package        UTI = "com.apple.package"
	Playground     UTI = "com.apple.dt.playground"
	PlaygroundPage UTI = "com.apple.dt.playgroundpage"
)

// String returns the identifier
func (u UTI) String() string {
	return string(u)
}

// IsZero reports whether the identifier is empty
func (u UTI) IsZero() bool {
	return u == ""
}

var (
	systemOnce     sync.Once
	systemRegistry *Registry
)

// System returns the shared registry seeded with DefaultDeclarations
func System() *Registry {
	systemOnce.Do(func() {
		systemRegistry = DefaultRegistry()
	})
	return systemRegistry
}

// 🔍 MatchesCategory reports whether value conforms to pattern in the System registry
func MatchesCategory(pattern, value UTI) bool {
	return System().MatchesCategory(pattern, value)
}

// ConformsTo reports whether u conforms to other in the System registry
func (u UTI) ConformsTo(other UTI) bool {
	return System().ConformsTo(u, other)
}
