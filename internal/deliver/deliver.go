// SPDX-License-Identifier: MPL-2.0

// Package deliver hands rendered artifacts to the user.
package deliver

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/plugsmith/plugsmith/internal/fsutil"
	"github.com/plugsmith/plugsmith/pkg/render"
)

type (
	// Sink accepts one named file.
	Sink interface {
		Deliver(ctx context.Context, filename string, content []byte) error
	}

	// DirSink writes files into Dir, creating it when missing.
	DirSink struct {
		Dir string
	}

	// WriterSink writes every file to W behind a "==> filename <==" header.
	WriterSink struct {
		W io.Writer
	}
)

// Deliver writes content to Dir/filename atomically. Filenames that resolve
// outside Dir are rejected.
func (s DirSink) Deliver(ctx context.Context, filename string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := fsutil.JoinWithin(s.Dir, filename)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return fsutil.WriteFileAtomic(path, content, 0o644)
}

// Deliver writes the header line followed by content. A newline is added
// when content does not end with one.
func (s WriterSink) Deliver(ctx context.Context, filename string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.W, "==> %s <==\n", filename); err != nil {
		return err
	}
	if _, err := s.W.Write(content); err != nil {
		return err
	}
	if len(content) > 0 && content[len(content)-1] != '\n' {
		if _, err := io.WriteString(s.W, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// DeliverAll delivers artifacts in order and stops at the first failure.
func DeliverAll(ctx context.Context, sink Sink, artifacts []render.Artifact) error {
	for _, a := range artifacts {
		if err := sink.Deliver(ctx, a.Filename, []byte(a.Content)); err != nil {
			return fmt.Errorf("deliver %s: %w", a.Filename, err)
		}
	}
	return nil
}
