// SPDX-License-Identifier: MPL-2.0

package plugin

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidModel is the sentinel error wrapped by InvalidModelError.
	ErrInvalidModel = errors.New("invalid model")
	// ErrDuplicateID is the sentinel error wrapped by DuplicateIDError.
	ErrDuplicateID = errors.New("duplicate id")
)

type (
	// InvalidModelError is returned when a Model breaks a structural invariant.
	// It wraps ErrInvalidModel for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidModelError struct {
		FieldErrors []error
	}

	// DuplicateIDError is returned when an id appears more than once.
	DuplicateIDError struct {
		ID string
	}
)

// Error implements the error interface for InvalidModelError.
func (e *InvalidModelError) Error() string {
	return fmt.Sprintf("invalid model: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidModel for errors.Is() compatibility.
func (e *InvalidModelError) Unwrap() error { return ErrInvalidModel }

// Error implements the error interface for DuplicateIDError.
func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate id %q", e.ID)
}

// Unwrap returns ErrDuplicateID for errors.Is() compatibility.
func (e *DuplicateIDError) Unwrap() error { return ErrDuplicateID }

// Validate checks enum fields and model-wide id uniqueness. Selection is not
// checked here; see SelectionConsistent.
func (m *Model) Validate() error {
	var errs []error
	if valid, fieldErrs := m.Meta.Category.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}

	seen := make(map[string]bool)
	for _, id := range m.AllIDs() {
		if id == "" {
			errs = append(errs, fmt.Errorf("%w: empty id", ErrInvalidModel))
			continue
		}
		if seen[id] {
			errs = append(errs, &DuplicateIDError{ID: id})
		}
		seen[id] = true
	}

	for mi := range m.Modules {
		mod := &m.Modules[mi]
		if valid, fieldErrs := mod.Target.IsValid(); !valid {
			errs = append(errs, fieldErrs...)
		}
		for _, n := range mod.Nodes {
			for _, p := range append(append([]Parameter(nil), n.Inputs...), n.Outputs...) {
				if valid, fieldErrs := p.Kind.IsValid(); !valid {
					errs = append(errs, fieldErrs...)
				}
			}
		}
	}

	if len(errs) > 0 {
		return &InvalidModelError{FieldErrors: errs}
	}
	return nil
}

// SelectionConsistent reports whether SelectedNodeID is nil or names a node
// in the module referenced by SelectedModuleID.
func (m *Model) SelectionConsistent() bool {
	if m.SelectedNodeID == nil {
		return true
	}
	mod := m.SelectedModule()
	if mod == nil {
		return false
	}
	return mod.FindNode(*m.SelectedNodeID) >= 0
}

// NormalizeSelection clears a dangling module selection and falls back to the
// selected module's first node when the node selection is inconsistent.
func (m *Model) NormalizeSelection() {
	if m.SelectedModuleID != nil && m.SelectedModule() == nil {
		m.SelectedModuleID = nil
	}
	if m.SelectionConsistent() {
		return
	}
	if mod := m.SelectedModule(); mod != nil {
		m.SelectedNodeID = mod.FirstNodeID()
		return
	}
	m.SelectedNodeID = nil
}
