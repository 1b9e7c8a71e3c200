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
	"strings"
)

// 📚 Lines accesses the lines of its owning Buffer.
// It holds no state of its own and is only valid while the owner is.
type Lines struct {
	owner *Buffer
}

// Len returns the number of materialized lines
func (l *Lines) Len() int {
	return l.owner.store.Count()
}

// Get returns line i including its terminator, or "" when i is past the last line
func (l *Lines) Get(i int) string {
	if i < 0 || i >= l.Len() {
		return ""
	}
	return l.owner.store.At(i)
}

// Set writes line i.
//
// When i is past the last line, empty lines are appended up to and including i first.
// An empty text removes line i instead of leaving it blank. Negative indices are ignored.
func (l *Lines) Set(i int, text string) {
	if i < 0 {
		return
	}

	store := l.owner.store
	if count := store.Count(); i >= count {
		store.Append(make([]string, i-count+1)...)
	}

	if text == "" {
		store.RemoveAt(i)
		return
	}
	store.Replace(i, text)
}

// Slice returns lines [from, to). Lines past the end read as "".
func (l *Lines) Slice(from, to int) []string {
	if from < 0 {
		from = 0
	}
	if to < from {
		return []string{}
	}
	out := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, l.Get(i))
	}
	return out
}

// 🔍 GetRange returns the text covered by r
func (l *Lines) GetRange(r Range) string {
	start, end := r.Start, r.End

	if start.Line == end.Line {
		return substring(l.Get(start.Line), start.Column, end.Column)
	}

	var sb strings.Builder
	sb.WriteString(suffix(l.Get(start.Line), start.Column))
	for _, line := range l.Slice(start.Line+1, end.Line) {
		sb.WriteString(line)
	}
	sb.WriteString(prefix(l.Get(end.Line), end.Column))
	return sb.String()
}

// ✏️ SetRange replaces the text covered by r with text.
//
// A multi-line range collapses into its start line; the lines after it up to and
// including the end line are removed. Afterwards r is moved to end right after the
// inserted text, on the start line.
func (l *Lines) SetRange(r *Range, text string) {
	start, end := r.Start, r.End

	defer func() {
		r.End = Position{
			Line:   r.Start.Line,
			Column: r.Start.Column + CharacterCount(text),
		}
	}()

	if start.Line == end.Line {
		line := l.Get(start.Line)
		from := byteOffset(line, start.Column)
		to := byteOffset(line, end.Column)
		if to < from {
			to = from
		}
		l.Set(start.Line, line[:from]+text+line[to:])
		return
	}

	first := l.Get(start.Line)
	last := l.Get(end.Line)
	l.Set(start.Line, prefix(first, start.Column)+text+suffix(last, end.Column))

	for line := end.Line; line > start.Line; line-- {
		l.Set(line, "")
	}
}
