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

package identifier

import (
	"github.com/google/uuid"
	"github.com/walteh/genuuid/pkg/uti"
)

// DefaultQuote is the quote used for source documents
const DefaultQuote = `"`

// DefaultQuotedTypes are the categories whose documents get quoted identifiers
func DefaultQuotedTypes() []uti.UTI {
	return []uti.UTI{uti.SourceCode, uti.Playground, uti.PlaygroundPage}
}

// 📜 Policy picks the style and case of an identifier for a content type
type Policy struct {
	Quote       string        // Quote for matching types
	Case        Case          // Hex digit case
	QuotedTypes []uti.UTI     // Categories written quoted
	Registry    *uti.Registry // Conformance graph; nil means uti.System()
}

// DefaultPolicy quotes source code and playgrounds with a double quote, upper case
func DefaultPolicy() Policy {
	return Policy{
		Quote:       DefaultQuote,
		Case:        Upper,
		QuotedTypes: DefaultQuotedTypes(),
	}
}

func (p Policy) registry() *uti.Registry {
	if p.Registry == nil {
		return uti.System()
	}
	return p.Registry
}

// 🎯 StyleFor returns the style for documents of type t
func (p Policy) StyleFor(t uti.UTI) Style {
	reg := p.registry()
	for _, category := range p.QuotedTypes {
		if reg.MatchesCategory(category, t) {
			return Quoted(p.Quote)
		}
	}
	return Simple()
}

// Render formats id for a document of type t
func (p Policy) Render(id uuid.UUID, t uti.UTI) string {
	return Format(id, p.StyleFor(t), p.Case)
}
