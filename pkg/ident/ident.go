// SPDX-License-Identifier: MPL-2.0

// Package ident produces opaque identifiers for plugin model entities.
//
// Identifiers are unique across the whole model for the lifetime of the
// process. Callers must not rely on any ordering between successive values.
package ident

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

type (
	// Generator produces a fresh identifier on every call.
	Generator interface {
		NewID() string
	}

	// UUID generates random (version 4) UUID strings. Collisions are treated
	// as statistically impossible and are not detected.
	UUID struct{}

	// Sequence generates deterministic identifiers of the form "<prefix>-<n>"
	// starting at 1. It is safe for concurrent use and is intended for tests
	// and reproducible fixtures.
	Sequence struct {
		prefix string
		next   atomic.Uint64
	}
)

// NewID returns a new random UUID string.
func (UUID) NewID() string {
	return uuid.NewString()
}

// NewSequence creates a Sequence generator. An empty prefix defaults to "id".
func NewSequence(prefix string) *Sequence {
	if prefix == "" {
		prefix = "id"
	}
	return &Sequence{prefix: prefix}
}

// NewID returns the next identifier in the sequence.
func (s *Sequence) NewID() string {
	n := s.next.Add(1)
	return s.prefix + "-" + strconv.FormatUint(n, 10)
}

// Default returns the production generator.
func Default() Generator {
	return UUID{}
}
