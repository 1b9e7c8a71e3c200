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

/*
Package buffer implements the line-array text model that genuuid edits.

	+-----------+        +-----------+        +-----------+
	|  Buffer   |------->|   Lines   |------->|   Store   |
	| (owner)   |  back  | (accessor)|  host  | (strings) |
	+-----------+  ref   +-----------+        +-----------+

🎯 Purpose:
- Holds a document as an ordered list of lines, terminators included
- Reads and writes whole lines by index
- Reads and writes text spans addressed by line/column ranges
- Keeps selections in step with the edits made through them

📐 Line semantics:
- Reading past the last line yields "" (the implicit trailing line)
- Writing past the last line pads with empty lines first
- Writing "" to a line removes it

📏 Columns:
Columns count user-perceived characters (grapheme clusters), not bytes.
Out-of-range columns are a caller error; they are clamped to the line.

🔍 Example:

	buf := buffer.FromString("let id = \n", uti.SwiftSource)
	r := &buffer.Range{
		Start: buffer.Position{Line: 0, Column: 9},
		End:   buffer.Position{Line: 0, Column: 9},
	}
	buf.Lines().SetRange(r, `"A1B2"`)
	// buf.String() == "let id = \"A1B2\"\n", r.End.Column == 15
*/
package buffer
