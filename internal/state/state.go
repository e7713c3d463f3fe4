// SPDX-License-Identifier: MPL-2.0

package state

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/plugsmith/plugsmith/pkg/cueutil"
	"github.com/plugsmith/plugsmith/pkg/ident"
	"github.com/plugsmith/plugsmith/pkg/plugin"
)

const (
	// RestoredSaved means the stored document was decoded.
	RestoredSaved RestoreStatus = iota
	// RestoredDefault means nothing was stored yet.
	RestoredDefault
	// RestoredFromCorrupt means the stored document was discarded.
	RestoredFromCorrupt
	// RestoredAfterError means storage could not be read.
	RestoredAfterError
)

//go:embed state_schema.cue
var stateSchema []byte

// ErrCorrupt is wrapped by Decode errors for documents that cannot be used.
var ErrCorrupt = errors.New("corrupt state document")

// RestoreStatus reports where a restored model came from.
type RestoreStatus int

// String returns a short description of the status.
func (s RestoreStatus) String() string {
	switch s {
	case RestoredSaved:
		return "saved"
	case RestoredDefault:
		return "default"
	case RestoredFromCorrupt:
		return "default (saved state was corrupt)"
	case RestoredAfterError:
		return "default (saved state could not be read)"
	default:
		return fmt.Sprintf("RestoreStatus(%d)", int(s))
	}
}

// Encode serializes the model as one indented JSON document.
func Encode(m plugin.Model) ([]byte, error) {
	data, err := json.MarshalIndent(m.Clone(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode state: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode validates data against the state schema, decodes it and checks
// model-wide invariants. A dangling selection is repaired rather than
// rejected. Every failure wraps ErrCorrupt.
func Decode(data []byte) (plugin.Model, error) {
	result, err := cueutil.ParseAndDecode[plugin.Model](stateSchema, data, "#State",
		cueutil.WithFilename(Filename))
	if err != nil {
		return plugin.Model{}, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	m := result.Value.Clone()
	if err := m.Validate(); err != nil {
		return plugin.Model{}, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	m.NormalizeSelection()
	return m, nil
}

// Restore loads the model from storage. It never fails: every problem falls
// back to plugin.DefaultModel and is reported through the status and the
// logger.
func Restore(ctx context.Context, storage Storage, ids ident.Generator, logger *log.Logger) (plugin.Model, RestoreStatus) {
	data, err := storage.Load(ctx)
	switch {
	case errors.Is(err, ErrNotFound):
		logger.Debug("no saved state, using defaults")
		return plugin.DefaultModel(ids), RestoredDefault
	case err != nil:
		logger.Warn("could not read saved state, using defaults", "err", err)
		return plugin.DefaultModel(ids), RestoredAfterError
	}

	m, err := Decode(data)
	if err != nil {
		logger.Warn("discarding corrupt saved state", "err", err)
		return plugin.DefaultModel(ids), RestoredFromCorrupt
	}
	logger.Debug("restored saved state", "modules", len(m.Modules))
	return m, RestoredSaved
}

// Persister returns a store observer that saves every snapshot. Errors are
// returned to the caller, which logs them.
func Persister(ctx context.Context, storage Storage) func(plugin.Model) error {
	return func(m plugin.Model) error {
		data, err := Encode(m)
		if err != nil {
			return err
		}
		return storage.Save(ctx, data)
	}
}
