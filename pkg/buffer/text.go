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

	"github.com/rivo/uniseg"
)

// 📏 CharacterCount returns the number of user-perceived characters in s
func CharacterCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// boundaries returns the byte offset of every character boundary in s,
// starting with 0 and ending with len(s).
func boundaries(s string) []int {
	offsets := make([]int, 1, len(s)+1)
	state := -1
	rest := s
	pos := 0
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		pos += len(cluster)
		offsets = append(offsets, pos)
	}
	return offsets
}

// byteOffset maps a character column onto a byte offset in s, clamped to [0, len(s)]
func byteOffset(s string, column int) int {
	if column <= 0 {
		return 0
	}
	b := boundaries(s)
	if column >= len(b) {
		return len(s)
	}
	return b[column]
}

// substring returns the characters of s in [start, end)
func substring(s string, start, end int) string {
	from := byteOffset(s, start)
	to := byteOffset(s, end)
	if to < from {
		to = from
	}
	return s[from:to]
}

// prefix returns the first n characters of s
func prefix(s string, n int) string {
	return s[:byteOffset(s, n)]
}

// suffix returns s from character n onward
func suffix(s string, n int) string {
	return s[byteOffset(s, n):]
}

// ✂️ Split breaks content into lines, each keeping its terminator.
// A trailing terminator does not produce an extra empty line.
func Split(content string) []string {
	if content == "" {
		return []string{}
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// 🧵 Join concatenates lines back into content
func Join(lines []string) string {
	return strings.Join(lines, "")
}
