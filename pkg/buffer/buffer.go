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

package buffer

import (
	"github.com/walteh/genuuid/pkg/uti"
)

// 📄 Buffer is one document's text, selections and content type.
// It owns its Lines accessor.
type Buffer struct {
	store      Store
	contentUTI uti.UTI
	selections []*Range
	lines      *Lines
}

// 🏭 New creates a buffer over store. Selections are normalized.
func New(store Store, contentUTI uti.UTI, selections ...Range) *Buffer {
	b := &Buffer{
		store:      store,
		contentUTI: contentUTI,
	}
	b.lines = &Lines{owner: b}
	for _, sel := range selections {
		b.AddSelection(sel)
	}
	return b
}

// 🏭 FromString creates a buffer over an in-memory copy of content
func FromString(content string, contentUTI uti.UTI, selections ...Range) *Buffer {
	return New(NewSliceStore(Split(content)), contentUTI, selections...)
}

// Lines returns the line accessor for this buffer
func (b *Buffer) Lines() *Lines {
	return b.lines
}

// Store returns the underlying host collection
func (b *Buffer) Store() Store {
	return b.store
}

// ContentUTI returns the type of the buffer's content
func (b *Buffer) ContentUTI() uti.UTI {
	return b.contentUTI
}

// SetContentUTI overrides the type of the buffer's content
func (b *Buffer) SetContentUTI(t uti.UTI) {
	b.contentUTI = t
}

// Selections returns the live selections. Edits made through them update them in place.
func (b *Buffer) Selections() []*Range {
	return b.selections
}

// AddSelection appends a selection, normalized to document order
func (b *Buffer) AddSelection(r Range) *Range {
	sel := r.Normalize()
	b.selections = append(b.selections, &sel)
	return &sel
}

// String returns the buffer's full content
func (b *Buffer) String() string {
	return Join(b.lines.Slice(0, b.lines.Len()))
}
