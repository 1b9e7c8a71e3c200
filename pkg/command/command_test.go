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

package command

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/walteh/genuuid/pkg/buffer"
	"github.com/walteh/genuuid/pkg/identifier"
	"github.com/walteh/genuuid/pkg/uti"
	"gitlab.com/tozd/go/errors"
)

// 🔧 MockGenerator is a mock implementation of identifier.Generator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) New() (uuid.UUID, error) {
	result := m.Called()
	return result.Get(0).(uuid.UUID), result.Error(1)
}

var testID = uuid.MustParse("3f2504e0-4f89-41d3-9a0c-0305e82c3301")

const (
	quotedID = `"3F2504E0-4F89-41D3-9A0C-0305E82C3301"`
	bareID   = `3F2504E0-4F89-41D3-9A0C-0305E82C3301`
)

func caret(line, column int) buffer.Range {
	return buffer.Caret(buffer.Position{Line: line, Column: column})
}

func testContext(t *testing.T) context.Context {
	return zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.TraceLevel).WithContext(context.Background())
}

func TestGenerateCommand_Run(t *testing.T) {
	tests := []struct {
		name           string
		content        string
		contentUTI     uti.UTI
		selections     []buffer.Range
		want           string
		wantText       string
		wantSelections []buffer.Range
	}{
		{
			name:       "swift_caret_is_quoted",
			content:    "let id = \n",
			contentUTI: uti.SwiftSource,
			selections: []buffer.Range{caret(0, 9)},
			want:       "let id = " + quotedID + "\n",
			wantText:   quotedID,
			wantSelections: []buffer.Range{
				{Start: buffer.Position{Line: 0, Column: 9}, End: buffer.Position{Line: 0, Column: 47}},
			},
		},
		{
			name:       "plain_text_is_bare",
			content:    "id: \n",
			contentUTI: uti.PlainText,
			selections: []buffer.Range{caret(0, 4)},
			want:       "id: " + bareID + "\n",
			wantText:   bareID,
			wantSelections: []buffer.Range{
				{Start: buffer.Position{Line: 0, Column: 4}, End: buffer.Position{Line: 0, Column: 40}},
			},
		},
		{
			name:       "replaces_selected_text",
			content:    "let id = TODO\n",
			contentUTI: uti.SourceCode,
			selections: []buffer.Range{{Start: buffer.Position{Line: 0, Column: 9}, End: buffer.Position{Line: 0, Column: 13}}},
			want:       "let id = " + quotedID + "\n",
			wantText:   quotedID,
			wantSelections: []buffer.Range{
				{Start: buffer.Position{Line: 0, Column: 9}, End: buffer.Position{Line: 0, Column: 47}},
			},
		},
		{
			name:       "multi_line_selection_collapses",
			content:    "a = [\n  1,\n]\nnext\n",
			contentUTI: "com.example.other",
			selections: []buffer.Range{{Start: buffer.Position{Line: 0, Column: 4}, End: buffer.Position{Line: 2, Column: 1}}},
			want:       "a = " + bareID + "\nnext\n",
			wantText:   bareID,
			wantSelections: []buffer.Range{
				{Start: buffer.Position{Line: 0, Column: 4}, End: buffer.Position{Line: 0, Column: 40}},
			},
		},
		{
			name:       "every_selection_gets_the_same_text",
			content:    "a = \nb = \nc = \n",
			contentUTI: uti.GoSource,
			selections: []buffer.Range{caret(0, 4), caret(1, 4), caret(2, 4)},
			want:       "a = " + quotedID + "\nb = " + quotedID + "\nc = " + quotedID + "\n",
			wantText:   quotedID,
			wantSelections: []buffer.Range{
				{Start: buffer.Position{Line: 0, Column: 4}, End: buffer.Position{Line: 0, Column: 42}},
				{Start: buffer.Position{Line: 1, Column: 4}, End: buffer.Position{Line: 1, Column: 42}},
				{Start: buffer.Position{Line: 2, Column: 4}, End: buffer.Position{Line: 2, Column: 42}},
			},
		},
		{
			name:       "no_selections_leaves_buffer_alone",
			content:    "unchanged\n",
			contentUTI: uti.SwiftSource,
			want:       "unchanged\n",
			wantText:   quotedID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &MockGenerator{}
			gen.On("New").Return(testID, nil).Once()

			buf := buffer.FromString(tt.content, tt.contentUTI, tt.selections...)
			cmd := New(gen, identifier.DefaultPolicy())

			result, err := cmd.Run(testContext(t), Invocation{Buffer: buf})
			require.NoError(t, err, "Run should succeed")

			assert.Equal(t, tt.want, buf.String(), "buffer content should match")
			assert.Equal(t, tt.wantText, result.Text, "inserted text should match")
			assert.Equal(t, tt.contentUTI, result.ContentUTI, "content type should be reported")
			assert.Equal(t, tt.wantSelections, result.Selections, "selections should follow the inserted text")
			for i, sel := range buf.Selections() {
				assert.Equal(t, tt.wantSelections[i], *sel, "live selection %d should be updated", i)
				assert.Equal(t, tt.wantText, buf.Lines().GetRange(*sel), "selection %d should cover the inserted text", i)
			}

			gen.AssertExpectations(t)
		})
	}
}

func TestGenerateCommand_OneIdentifierPerInvocation(t *testing.T) {
	cmd := New(nil, identifier.DefaultPolicy())
	buf := buffer.FromString("\n\n\n", uti.PlainText, caret(0, 0), caret(1, 0), caret(2, 0))

	result, err := cmd.Run(testContext(t), Invocation{Buffer: buf})
	require.NoError(t, err)

	lines := buf.Lines().Slice(0, 3)
	assert.Equal(t, lines[0], lines[1], "all selections should receive identical text")
	assert.Equal(t, lines[1], lines[2], "all selections should receive identical text")
	assert.Equal(t, result.Text+"\n", lines[0])

	second := buffer.FromString("\n", uti.PlainText, caret(0, 0))
	again, err := cmd.Run(testContext(t), Invocation{Buffer: second})
	require.NoError(t, err)
	assert.NotEqual(t, result.Text, again.Text, "each invocation should generate a fresh identifier")
}

func TestGenerateCommand_Failures(t *testing.T) {
	t.Run("generator_error_leaves_buffer_untouched", func(t *testing.T) {
		gen := &MockGenerator{}
		gen.On("New").Return(uuid.Nil, errors.New("entropy exhausted"))

		buf := buffer.FromString("let id = \n", uti.SwiftSource, caret(0, 9))
		_, err := New(gen, identifier.DefaultPolicy()).Run(testContext(t), Invocation{Buffer: buf})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "generating identifier")
		assert.Equal(t, "let id = \n", buf.String(), "buffer should not be edited")
		gen.AssertExpectations(t)
	})

	t.Run("cancelled_context", func(t *testing.T) {
		gen := &MockGenerator{}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		buf := buffer.FromString("x\n", uti.SwiftSource, caret(0, 0))
		_, err := New(gen, identifier.DefaultPolicy()).Run(ctx, Invocation{Buffer: buf})

		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
		assert.Equal(t, "x\n", buf.String())
		gen.AssertNotCalled(t, "New")
	})

	t.Run("missing_buffer", func(t *testing.T) {
		_, err := New(nil, identifier.DefaultPolicy()).Run(context.Background(), Invocation{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no buffer")
	})
}

func TestGenerateCommand_Perform(t *testing.T) {
	ctx := zerolog.New(os.Stderr).Level(zerolog.Disabled).WithContext(context.Background())
	buf := buffer.FromString("x = \n", uti.PlainText, caret(0, 4))

	var (
		called bool
		got    error
	)
	New(identifier.FixedGenerator{ID: testID}, identifier.DefaultPolicy()).Perform(ctx, Invocation{Buffer: buf}, func(err error) {
		called = true
		got = err
	})

	require.True(t, called, "completion handler should be called")
	assert.NoError(t, got, "completion should report success")
	assert.Equal(t, "x = "+bareID+"\n", buf.String())

	New(nil, identifier.DefaultPolicy()).Perform(ctx, Invocation{}, func(err error) {
		got = err
	})
	assert.Error(t, got, "completion should carry the failure")
}
