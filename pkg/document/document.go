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

// Package document loads files into buffers and writes them back, playing the
// part of the editor that hosts the command.
package document

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/genuuid/pkg/buffer"
	"github.com/walteh/genuuid/pkg/uti"
	"gitlab.com/tozd/go/errors"
)

// 📄 Document is a file opened for editing
type Document struct {
	Path     string         // Path the file was read from
	Buffer   *buffer.Buffer // Editable content
	Mode     os.FileMode    // Permissions to write back with
	checksum string         // Content hash at load time
}

// 🔍 calculateChecksum generates a SHA-256 hash of the content
func calculateChecksum(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// 📂 Load reads the file at path. Its content type comes from reg; a nil reg means uti.System().
func Load(ctx context.Context, path string, reg *uti.Registry) (*Document, error) {
	if reg == nil {
		reg = uti.System()
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Errorf("checking file: %w", err)
	}
	if info.IsDir() {
		return nil, errors.Errorf("%s is a directory", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}

	contentUTI := reg.ForPath(path)
	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Str("content_uti", contentUTI.String()).
		Int("bytes", len(content)).
		Msg("loaded document")

	return &Document{
		Path:     path,
		Buffer:   buffer.FromString(string(content), contentUTI),
		Mode:     info.Mode().Perm(),
		checksum: calculateChecksum(content),
	}, nil
}

// Content returns the buffer's current content
func (d *Document) Content() []byte {
	return []byte(d.Buffer.String())
}

// Changed reports whether the content differs from what was loaded
func (d *Document) Changed() bool {
	return calculateChecksum(d.Content()) != d.checksum
}

// 💾 Save writes the document back atomically. Unchanged documents are not written.
func Save(ctx context.Context, d *Document) error {
	if !d.Changed() {
		zerolog.Ctx(ctx).Debug().Str("path", d.Path).Msg("document unchanged, skipping write")
		return nil
	}

	content := d.Content()
	if err := writeFileAtomic(d.Path, content, d.Mode); err != nil {
		return err
	}
	d.checksum = calculateChecksum(content)

	zerolog.Ctx(ctx).Debug().Str("path", d.Path).Int("bytes", len(content)).Msg("saved document")
	return nil
}

func writeFileAtomic(path string, content []byte, mode os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tempPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tempPath, mode); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("setting file mode: %w", err)
	}

	// Rename temp file to target (atomic operation)
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}
