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
	"fmt"
	"strconv"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ErrInvalidRange is returned when a textual range cannot be parsed
var ErrInvalidRange = errors.Base("invalid range")

// 📍 Position is a zero-based line and character column in a buffer
type Position struct {
	Line   int // Line index
	Column int // Character offset within the line
}

// EndLine returns the exclusive line bound of a span ending at p.
// A span ending at column 0 does not touch line p.Line.
func (p Position) EndLine() int {
	if p.Column == 0 {
		return p.Line
	}
	return p.Line + 1
}

// String returns "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// ComparePositions orders a and b in document order, returning -1, 0 or 1
func ComparePositions(a, b Position) int {
	switch {
	case a.Line < b.Line:
		return -1
	case a.Line > b.Line:
		return 1
	case a.Column < b.Column:
		return -1
	case a.Column > b.Column:
		return 1
	default:
		return 0
	}
}

// 📐 Range is a selection in a buffer: [Start, End) with Start <= End
type Range struct {
	Start Position
	End   Position
}

// Caret returns an empty range at p
func Caret(p Position) Range {
	return Range{Start: p, End: p}
}

// IsSingleLine reports whether the range starts and ends on the same line
func (r Range) IsSingleLine() bool {
	return r.Start.Line == r.End.Line
}

// IsEmpty reports whether the range is a caret
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Normalize returns r with Start and End in document order
func (r Range) Normalize() Range {
	if ComparePositions(r.Start, r.End) <= 0 {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

// Lines returns the half-open interval of lines the range touches
func (r Range) Lines() (first, end int) {
	end = r.End.EndLine()
	if end <= r.Start.Line {
		end = r.Start.Line + 1
	}
	return r.Start.Line, end
}

// String returns "line:column-line:column"
func (r Range) String() string {
	return r.Start.String() + "-" + r.End.String()
}

// 🔍 ParsePosition parses "line:column"
func ParsePosition(s string) (Position, error) {
	lineText, columnText, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Position{}, errors.Errorf("%w: %q is not line:column", ErrInvalidRange, s)
	}

	line, err := strconv.Atoi(lineText)
	if err != nil || line < 0 {
		return Position{}, errors.Errorf("%w: bad line in %q", ErrInvalidRange, s)
	}

	column, err := strconv.Atoi(columnText)
	if err != nil || column < 0 {
		return Position{}, errors.Errorf("%w: bad column in %q", ErrInvalidRange, s)
	}

	return Position{Line: line, Column: column}, nil
}

// 🔍 ParseRange parses "line:column-line:column", or "line:column" for a caret.
// The result is normalized.
func ParseRange(s string) (Range, error) {
	startText, endText, isSpan := strings.Cut(s, "-")

	start, err := ParsePosition(startText)
	if err != nil {
		return Range{}, errors.Errorf("parsing start: %w", err)
	}

	if !isSpan {
		return Caret(start), nil
	}

	end, err := ParsePosition(endText)
	if err != nil {
		return Range{}, errors.Errorf("parsing end: %w", err)
	}

	return Range{Start: start, End: end}.Normalize(), nil
}
