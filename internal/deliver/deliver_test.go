// SPDX-License-Identifier: MPL-2.0

package deliver

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/plugsmith/plugsmith/internal/fsutil"
	"github.com/plugsmith/plugsmith/pkg/render"
)

type recordingSink struct {
	names []string
	fail  string
}

func (s *recordingSink) Deliver(_ context.Context, filename string, _ []byte) error {
	if filename == s.fail {
		return errors.New("disk full")
	}
	s.names = append(s.names, filename)
	return nil
}

func TestDirSink(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out")
	sink := DirSink{Dir: dir}

	if err := sink.Deliver(t.Context(), "Plugin.h", []byte("#pragma once\n")); err != nil {
		t.Fatalf("Deliver() error: %v", err)
	}
	got, err := os.ReadFile(filepath.Join(dir, "Plugin.h"))
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(got) != "#pragma once\n" {
		t.Errorf("content = %q", got)
	}

	err = sink.Deliver(t.Context(), filepath.Join("..", "escape.h"), []byte("x"))
	if !errors.Is(err, fsutil.ErrEscapesDir) {
		t.Errorf("Deliver() outside dir error = %v, want ErrEscapesDir", err)
	}
	if _, statErr := os.Stat(filepath.Join(filepath.Dir(dir), "escape.h")); !os.IsNotExist(statErr) {
		t.Error("file outside the directory was written")
	}
}

func TestWriterSink(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sink := WriterSink{W: &buf}

	if err := sink.Deliver(t.Context(), "A.json", []byte("{}\n")); err != nil {
		t.Fatalf("Deliver() error: %v", err)
	}
	if err := sink.Deliver(t.Context(), "A.h", []byte("no newline")); err != nil {
		t.Fatalf("Deliver() error: %v", err)
	}

	want := "==> A.json <==\n{}\n==> A.h <==\nno newline\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestDeliverAll(t *testing.T) {
	t.Parallel()

	arts := []render.Artifact{
		{Kind: render.KindDescriptor, Filename: "P.uplugin"},
		{Kind: render.KindSpecification, Filename: "P.json"},
		{Kind: render.KindScaffold, Filename: "P.h"},
	}

	t.Run("delivers in order", func(t *testing.T) {
		t.Parallel()

		sink := &recordingSink{}
		if err := DeliverAll(t.Context(), sink, arts); err != nil {
			t.Fatalf("DeliverAll() error: %v", err)
		}
		if len(sink.names) != 3 || sink.names[0] != "P.uplugin" || sink.names[2] != "P.h" {
			t.Errorf("delivered %v", sink.names)
		}
	})

	t.Run("stops at first failure", func(t *testing.T) {
		t.Parallel()

		sink := &recordingSink{fail: "P.json"}
		err := DeliverAll(t.Context(), sink, arts)
		if err == nil {
			t.Fatal("DeliverAll() should fail")
		}
		if got := err.Error(); got != "deliver P.json: disk full" {
			t.Errorf("error = %q", got)
		}
		if len(sink.names) != 1 {
			t.Errorf("delivered %v after the failure", sink.names)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		err := DeliverAll(ctx, DirSink{Dir: t.TempDir()}, arts)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})
}
