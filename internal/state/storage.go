// SPDX-License-Identifier: MPL-2.0

package state

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/plugsmith/plugsmith/internal/fsutil"
)

const (
	// StorageKey names the persisted document.
	StorageKey = "plugsmith-state"
	// Filename is the file FileStorage keeps the document in.
	Filename = StorageKey + ".json"
)

// ErrNotFound is returned by Storage.Load when nothing has been saved yet.
var ErrNotFound = errors.New("state not found")

type (
	// Storage loads and saves the encoded model document.
	Storage interface {
		// Load returns the stored document, or an error wrapping ErrNotFound
		// when none exists.
		Load(ctx context.Context) ([]byte, error)
		// Save replaces the stored document.
		Save(ctx context.Context, data []byte) error
	}

	// FileStorage keeps the document in Dir/Filename.
	FileStorage struct {
		Dir string
	}
)

// NewFileStorage creates a FileStorage rooted at dir.
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{Dir: dir}
}

// Path returns the document path.
func (s *FileStorage) Path() string {
	return filepath.Join(s.Dir, Filename)
}

// Load reads the document.
func (s *FileStorage) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.Path())
		}
		return nil, fmt.Errorf("failed to read state: %w", err)
	}
	return data, nil
}

// Save writes the document atomically, creating Dir when missing.
func (s *FileStorage) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	if err := fsutil.WriteFileAtomic(s.Path(), data, 0o644); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}
