// SPDX-License-Identifier: MPL-2.0

package render

import (
	"errors"
	"fmt"

	"github.com/plugsmith/plugsmith/pkg/plugin"
)

const (
	// KindDescriptor is the plugin descriptor artifact.
	KindDescriptor Kind = "descriptor"
	// KindSpecification is the structured specification artifact.
	KindSpecification Kind = "specification"
	// KindScaffold is the source scaffold artifact.
	KindScaffold Kind = "scaffold"

	// FallbackBaseName is used for filenames when the identifier is empty.
	FallbackBaseName = "Plugin"
)

// ErrInvalidKind is the sentinel error wrapped by InvalidKindError.
var ErrInvalidKind = errors.New("invalid artifact kind")

type (
	// Kind names one of the three artifacts.
	Kind string

	// InvalidKindError is returned when a Kind value is not recognized.
	InvalidKindError struct {
		Value Kind
	}

	// Artifact is one rendered file.
	Artifact struct {
		Kind     Kind
		Filename string
		Content  string
	}
)

// Error implements the error interface for InvalidKindError.
func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("invalid artifact kind %q (valid: descriptor, specification, scaffold)", e.Value)
}

// Unwrap returns ErrInvalidKind for errors.Is() compatibility.
func (e *InvalidKindError) Unwrap() error { return ErrInvalidKind }

// IsValid returns whether the Kind is one of the defined artifacts.
func (k Kind) IsValid() (bool, []error) {
	switch k {
	case KindDescriptor, KindSpecification, KindScaffold:
		return true, nil
	default:
		return false, []error{&InvalidKindError{Value: k}}
	}
}

// Kinds returns the artifact kinds in render order.
func Kinds() []Kind {
	return []Kind{KindDescriptor, KindSpecification, KindScaffold}
}

// ArtifactBaseName returns the identifier used in artifact filenames.
func ArtifactBaseName(m plugin.Model) string {
	if m.Meta.Identifier == "" {
		return FallbackBaseName
	}
	return m.Meta.Identifier
}

// Render produces the artifact of the given kind.
func Render(m plugin.Model, kind Kind, opts ScaffoldOptions) (Artifact, error) {
	base := ArtifactBaseName(m)
	switch kind {
	case KindDescriptor:
		return Artifact{Kind: kind, Filename: base + ".uplugin", Content: Descriptor(m)}, nil
	case KindSpecification:
		return Artifact{Kind: kind, Filename: base + ".json", Content: Specification(m)}, nil
	case KindScaffold:
		return Artifact{Kind: kind, Filename: base + ".h", Content: Scaffold(m, opts)}, nil
	default:
		return Artifact{}, &InvalidKindError{Value: kind}
	}
}

// All renders every artifact in Kinds order.
func All(m plugin.Model, opts ScaffoldOptions) []Artifact {
	out := make([]Artifact, 0, 3)
	for _, k := range Kinds() {
		a, _ := Render(m, k, opts)
		out = append(out, a)
	}
	return out
}
