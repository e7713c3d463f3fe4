// SPDX-License-Identifier: MPL-2.0

package ident

import (
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestUUID_NewID(t *testing.T) {
	t.Parallel()

	gen := Default()
	seen := make(map[string]bool)
	for range 1000 {
		id := gen.NewID()
		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("NewID() = %q is not a UUID: %v", id, err)
		}
		if seen[id] {
			t.Fatalf("NewID() returned duplicate %q", id)
		}
		seen[id] = true
	}
}

func TestSequence_NewID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		want   []string
	}{
		{"custom prefix", "node", []string{"node-1", "node-2", "node-3"}},
		{"empty prefix", "", []string{"id-1", "id-2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			seq := NewSequence(tt.prefix)
			for i, want := range tt.want {
				if got := seq.NewID(); got != want {
					t.Errorf("call %d: NewID() = %q, want %q", i+1, got, want)
				}
			}
		})
	}
}

func TestSequence_ConcurrentUnique(t *testing.T) {
	t.Parallel()

	seq := NewSequence("c")
	const workers, perWorker = 8, 250

	var (
		mu   sync.Mutex
		seen = make(map[string]bool, workers*perWorker)
		wg   sync.WaitGroup
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				id := seq.NewID()
				mu.Lock()
				if seen[id] {
					t.Errorf("duplicate id %q", id)
				}
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != workers*perWorker {
		t.Errorf("got %d unique ids, want %d", len(seen), workers*perWorker)
	}
}
