// SPDX-License-Identifier: MPL-2.0

package plugin

import (
	"errors"
	"fmt"
)

const (
	// CategoryEditor groups editor tooling plugins.
	CategoryEditor Category = "Editor"
	// CategoryGameplay groups gameplay framework plugins.
	CategoryGameplay Category = "Gameplay"
	// CategoryRendering groups rendering plugins.
	CategoryRendering Category = "Rendering"
	// CategoryAnimation groups animation plugins.
	CategoryAnimation Category = "Animation"
	// CategoryAudio groups audio plugins.
	CategoryAudio Category = "Audio"
	// CategoryAI groups AI plugins.
	CategoryAI Category = "AI"
	// CategoryNetworking groups networking plugins.
	CategoryNetworking Category = "Networking"
	// CategoryOther is the catch-all category.
	CategoryOther Category = "Other"

	// KindBool is a boolean parameter.
	KindBool ParamKind = "bool"
	// KindInt is a 32-bit integer parameter.
	KindInt ParamKind = "int"
	// KindFloat is a floating point parameter.
	KindFloat ParamKind = "float"
	// KindString is a mutable string parameter.
	KindString ParamKind = "string"
	// KindName is an interned name parameter.
	KindName ParamKind = "name"
	// KindText is a localizable text parameter.
	KindText ParamKind = "text"
	// KindVector is a 3D vector parameter.
	KindVector ParamKind = "vector"
	// KindRotator is a rotation parameter.
	KindRotator ParamKind = "rotator"
	// KindTransform is a transform parameter.
	KindTransform ParamKind = "transform"
	// KindObject is an object reference parameter.
	KindObject ParamKind = "object"

	// TargetEditor modules are loaded by the editor only.
	TargetEditor ModuleTarget = "Editor"
	// TargetRuntime modules are loaded at runtime only.
	TargetRuntime ModuleTarget = "Runtime"
	// TargetEditorAndRuntime modules are loaded in both contexts.
	TargetEditorAndRuntime ModuleTarget = "EditorAndRuntime"

	// PlacementInputs addresses a node's input parameter list.
	PlacementInputs Placement = "inputs"
	// PlacementOutputs addresses a node's output parameter list.
	PlacementOutputs Placement = "outputs"

	// MetaTitle is the human-readable plugin title.
	MetaTitle MetaField = "title"
	// MetaIdentifier is the code-safe symbol prefix.
	MetaIdentifier MetaField = "identifier"
	// MetaAuthor is the plugin author.
	MetaAuthor MetaField = "author"
	// MetaVersion is the plugin version name.
	MetaVersion MetaField = "version"
	// MetaEngineVersion is the minimum supported engine version.
	MetaEngineVersion MetaField = "engineVersion"
	// MetaCategory is the plugin category.
	MetaCategory MetaField = "category"
	// MetaDescription is the free-text plugin description.
	MetaDescription MetaField = "description"
)

var (
	// ErrInvalidCategory is returned when a Category value is not recognized.
	ErrInvalidCategory = errors.New("invalid category")
	// ErrInvalidParamKind is returned when a ParamKind value is not recognized.
	ErrInvalidParamKind = errors.New("invalid parameter kind")
	// ErrInvalidModuleTarget is returned when a ModuleTarget value is not recognized.
	ErrInvalidModuleTarget = errors.New("invalid module target")
	// ErrInvalidPlacement is returned when a Placement value is not recognized.
	ErrInvalidPlacement = errors.New("invalid placement")
	// ErrInvalidMetaField is returned when a MetaField value is not recognized.
	ErrInvalidMetaField = errors.New("invalid meta field")

	allCategories = []Category{
		CategoryEditor, CategoryGameplay, CategoryRendering, CategoryAnimation,
		CategoryAudio, CategoryAI, CategoryNetworking, CategoryOther,
	}
	allParamKinds = []ParamKind{
		KindBool, KindInt, KindFloat, KindString, KindName,
		KindText, KindVector, KindRotator, KindTransform, KindObject,
	}
	allModuleTargets = []ModuleTarget{TargetEditor, TargetRuntime, TargetEditorAndRuntime}
	allMetaFields    = []MetaField{
		MetaTitle, MetaIdentifier, MetaAuthor, MetaVersion,
		MetaEngineVersion, MetaCategory, MetaDescription,
	}
)

type (
	// Category is the plugin category shown by the engine's plugin browser.
	Category string

	// InvalidCategoryError is returned when a Category value is not recognized.
	// It wraps ErrInvalidCategory for errors.Is() compatibility.
	InvalidCategoryError struct {
		Value Category
	}

	// ParamKind is the value kind of a node parameter.
	ParamKind string

	// InvalidParamKindError is returned when a ParamKind value is not recognized.
	// It wraps ErrInvalidParamKind for errors.Is() compatibility.
	InvalidParamKindError struct {
		Value ParamKind
	}

	// ModuleTarget selects where a module is loaded.
	ModuleTarget string

	// InvalidModuleTargetError is returned when a ModuleTarget value is not recognized.
	// It wraps ErrInvalidModuleTarget for errors.Is() compatibility.
	InvalidModuleTargetError struct {
		Value ModuleTarget
	}

	// Placement selects a node's input or output parameter list.
	Placement string

	// InvalidPlacementError is returned when a Placement value is not recognized.
	// It wraps ErrInvalidPlacement for errors.Is() compatibility.
	InvalidPlacementError struct {
		Value Placement
	}

	// MetaField names one field of the Meta singleton.
	MetaField string

	// InvalidMetaFieldError is returned when a MetaField value is not recognized.
	// It wraps ErrInvalidMetaField for errors.Is() compatibility.
	InvalidMetaFieldError struct {
		Value MetaField
	}
)

// Categories returns all valid categories in display order.
func Categories() []Category { return append([]Category(nil), allCategories...) }

// ParamKinds returns all valid parameter kinds in display order.
func ParamKinds() []ParamKind { return append([]ParamKind(nil), allParamKinds...) }

// ModuleTargets returns all valid module targets in display order.
func ModuleTargets() []ModuleTarget { return append([]ModuleTarget(nil), allModuleTargets...) }

// MetaFields returns all Meta field names in declaration order.
func MetaFields() []MetaField { return append([]MetaField(nil), allMetaFields...) }

// String returns the string representation of the Category.
func (c Category) String() string { return string(c) }

// IsValid returns whether the Category is one of the defined categories,
// and a list of validation errors if it is not.
func (c Category) IsValid() (bool, []error) {
	for _, known := range allCategories {
		if c == known {
			return true, nil
		}
	}
	return false, []error{&InvalidCategoryError{Value: c}}
}

// Error implements the error interface for InvalidCategoryError.
func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("invalid category %q (valid: %v)", e.Value, allCategories)
}

// Unwrap returns ErrInvalidCategory for errors.Is() compatibility.
func (e *InvalidCategoryError) Unwrap() error { return ErrInvalidCategory }

// String returns the string representation of the ParamKind.
func (k ParamKind) String() string { return string(k) }

// IsValid returns whether the ParamKind is one of the defined kinds,
// and a list of validation errors if it is not.
func (k ParamKind) IsValid() (bool, []error) {
	for _, known := range allParamKinds {
		if k == known {
			return true, nil
		}
	}
	return false, []error{&InvalidParamKindError{Value: k}}
}

// IsObject reports whether the kind is an object reference rather than a value type.
func (k ParamKind) IsObject() bool { return k == KindObject }

// Error implements the error interface for InvalidParamKindError.
func (e *InvalidParamKindError) Error() string {
	return fmt.Sprintf("invalid parameter kind %q (valid: %v)", e.Value, allParamKinds)
}

// Unwrap returns ErrInvalidParamKind for errors.Is() compatibility.
func (e *InvalidParamKindError) Unwrap() error { return ErrInvalidParamKind }

// String returns the string representation of the ModuleTarget.
func (t ModuleTarget) String() string { return string(t) }

// IsValid returns whether the ModuleTarget is one of the defined targets,
// and a list of validation errors if it is not.
func (t ModuleTarget) IsValid() (bool, []error) {
	switch t {
	case TargetEditor, TargetRuntime, TargetEditorAndRuntime:
		return true, nil
	default:
		return false, []error{&InvalidModuleTargetError{Value: t}}
	}
}

// Error implements the error interface for InvalidModuleTargetError.
func (e *InvalidModuleTargetError) Error() string {
	return fmt.Sprintf("invalid module target %q (valid: Editor, Runtime, EditorAndRuntime)", e.Value)
}

// Unwrap returns ErrInvalidModuleTarget for errors.Is() compatibility.
func (e *InvalidModuleTargetError) Unwrap() error { return ErrInvalidModuleTarget }

// String returns the string representation of the Placement.
func (p Placement) String() string { return string(p) }

// IsValid returns whether the Placement is inputs or outputs,
// and a list of validation errors if it is not.
func (p Placement) IsValid() (bool, []error) {
	switch p {
	case PlacementInputs, PlacementOutputs:
		return true, nil
	default:
		return false, []error{&InvalidPlacementError{Value: p}}
	}
}

// Error implements the error interface for InvalidPlacementError.
func (e *InvalidPlacementError) Error() string {
	return fmt.Sprintf("invalid placement %q (valid: inputs, outputs)", e.Value)
}

// Unwrap returns ErrInvalidPlacement for errors.Is() compatibility.
func (e *InvalidPlacementError) Unwrap() error { return ErrInvalidPlacement }

// String returns the string representation of the MetaField.
func (f MetaField) String() string { return string(f) }

// IsValid returns whether the MetaField names a declared Meta field,
// and a list of validation errors if it does not.
func (f MetaField) IsValid() (bool, []error) {
	for _, known := range allMetaFields {
		if f == known {
			return true, nil
		}
	}
	return false, []error{&InvalidMetaFieldError{Value: f}}
}

// Error implements the error interface for InvalidMetaFieldError.
func (e *InvalidMetaFieldError) Error() string {
	return fmt.Sprintf("invalid meta field %q (valid: %v)", e.Value, allMetaFields)
}

// Unwrap returns ErrInvalidMetaField for errors.Is() compatibility.
func (e *InvalidMetaFieldError) Unwrap() error { return ErrInvalidMetaField }

// ParseMetaField validates a field name taken from user input.
func ParseMetaField(name string) (MetaField, error) {
	f := MetaField(name)
	if valid, errs := f.IsValid(); !valid {
		return "", errs[0]
	}
	return f, nil
}

// ParsePlacement validates a placement name taken from user input.
func ParsePlacement(name string) (Placement, error) {
	p := Placement(name)
	if valid, errs := p.IsValid(); !valid {
		return "", errs[0]
	}
	return p, nil
}
