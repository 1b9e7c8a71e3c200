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

// 🗄️ Store is the host-owned collection of lines a Buffer edits.
// Indices passed to At, Replace and RemoveAt must be in [0, Count()).
type Store interface {
	Count() int
	At(i int) string
	Replace(i int, text string)
	Append(texts ...string)
	RemoveAt(i int)
}

// SliceStore is an in-memory Store
type SliceStore struct {
	lines []string
}

var _ Store = (*SliceStore)(nil)

// NewSliceStore creates a store holding a copy of lines
func NewSliceStore(lines []string) *SliceStore {
	return &SliceStore{lines: append([]string(nil), lines...)}
}

func (s *SliceStore) Count() int {
	return len(s.lines)
}

func (s *SliceStore) At(i int) string {
	return s.lines[i]
}

func (s *SliceStore) Replace(i int, text string) {
	s.lines[i] = text
}

func (s *SliceStore) Append(texts ...string) {
	s.lines = append(s.lines, texts...)
}

func (s *SliceStore) RemoveAt(i int) {
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
}

// Lines returns a copy of the stored lines
func (s *SliceStore) Lines() []string {
	return append([]string(nil), s.lines...)
}
