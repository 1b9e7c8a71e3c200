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

package runner

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/genuuid/pkg/buffer"
	"github.com/walteh/genuuid/pkg/command"
	"github.com/walteh/genuuid/pkg/identifier"
	"github.com/walteh/genuuid/pkg/log"
	"github.com/walteh/genuuid/pkg/uti"
)

const quotedID = `"3F2504E0-4F89-41D3-9A0C-0305E82C3301"`

func newTestRunner(t *testing.T, async, dryRun bool) *Runner {
	t.Helper()
	cmd := command.New(identifier.FixedGenerator{ID: uuid.MustParse("3f2504e0-4f89-41d3-9a0c-0305e82c3301")}, identifier.DefaultPolicy())
	r, err := New(Options{
		Command: cmd,
		Logger:  log.New(io.Discard, zerolog.Disabled),
		Async:   async,
		DryRun:  dryRun,
	})
	require.NoError(t, err)
	return r
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func caret(line, column int) buffer.Range {
	return buffer.Caret(buffer.Position{Line: line, Column: column})
}

func TestRunner_Run(t *testing.T) {
	tests := []struct {
		name   string
		async  bool
		dryRun bool
	}{
		{name: "sync"},
		{name: "async", async: true},
		{name: "dry_run", dryRun: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			swift := writeFile(t, dir, "Model.swift", "let id = \n")
			text := writeFile(t, dir, "ids.txt", "first: \nsecond: \n")

			ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
			reports, err := newTestRunner(t, tt.async, tt.dryRun).Run(ctx, []Job{
				{Path: swift, Selections: []buffer.Range{caret(0, 9)}},
				{Path: text, Selections: []buffer.Range{caret(0, 7), caret(1, 8)}},
			})
			require.NoError(t, err, "Run should succeed")
			require.Len(t, reports, 2, "one report per job")

			assert.Equal(t, swift, reports[0].Path, "reports keep job order")
			assert.Equal(t, uti.SwiftSource, reports[0].ContentUTI)
			assert.Equal(t, quotedID, reports[0].Text)
			assert.Equal(t, "let id = "+quotedID+"\n", string(reports[0].Content))
			assert.True(t, reports[0].Modified)

			assert.Equal(t, uti.PlainText, reports[1].ContentUTI)
			assert.Len(t, reports[1].Selections, 2)
			bare := "3F2504E0-4F89-41D3-9A0C-0305E82C3301"
			assert.Equal(t, "first: "+bare+"\nsecond: "+bare+"\n", string(reports[1].Content))

			onDisk, err := os.ReadFile(swift)
			require.NoError(t, err)
			if tt.dryRun {
				assert.Equal(t, "let id = \n", string(onDisk), "dry run should not write")
			} else {
				assert.Equal(t, "let id = "+quotedID+"\n", string(onDisk), "file should be written")
			}
		})
	}
}

func TestRunner_ContentTypeOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "snippet.txt", "x = \n")

	reports, err := newTestRunner(t, false, true).Run(context.Background(), []Job{
		{Path: path, Selections: []buffer.Range{caret(0, 4)}, ContentUTI: uti.SourceCode},
	})
	require.NoError(t, err)
	assert.Equal(t, uti.SourceCode, reports[0].ContentUTI)
	assert.Equal(t, "x = "+quotedID+"\n", string(reports[0].Content))
}

func TestRunner_FailureDoesNotStopOtherFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.swift", "a\n")
	missing := filepath.Join(dir, "missing.swift")

	for _, async := range []bool{false, true} {
		reports, err := newTestRunner(t, async, true).Run(context.Background(), []Job{
			{Path: missing, Selections: []buffer.Range{caret(0, 0)}},
			{Path: good, Selections: []buffer.Range{caret(0, 1)}},
		})

		require.Error(t, err, "Run should report the failure")
		assert.Contains(t, err.Error(), "missing.swift")
		assert.Error(t, reports[0].Err)
		assert.NoError(t, reports[1].Err, "other jobs should still run")
		assert.Equal(t, "a"+quotedID+"\n", string(reports[1].Content))
	}
}

func TestNew_Validates(t *testing.T) {
	_, err := New(Options{Logger: log.New(io.Discard, zerolog.Disabled)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command is required")

	_, err = New(Options{Command: command.New(nil, identifier.DefaultPolicy())})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logger is required")
}

func TestRunner_NoSelectionsWarns(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.txt", "a\n")
	console := &bytes.Buffer{}

	r, err := New(Options{
		Command: command.New(identifier.FixedGenerator{}, identifier.DefaultPolicy()),
		Logger:  log.New(console, zerolog.Disabled),
	})
	require.NoError(t, err)

	reports, err := r.Run(context.Background(), []Job{{Path: path}})
	require.NoError(t, err)
	assert.False(t, reports[0].Modified, "nothing to insert")
	assert.Contains(t, console.String(), "no selections for "+path)
}
