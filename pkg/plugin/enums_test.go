// SPDX-License-Identifier: MPL-2.0

package plugin

import (
	"errors"
	"testing"
)

func TestCategory_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		category Category
		want     bool
		wantErr  bool
	}{
		{CategoryEditor, true, false},
		{CategoryAI, true, false},
		{CategoryOther, true, false},
		{"", false, true},
		{"editor", false, true},
		{"Tools", false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			t.Parallel()
			isValid, errs := tt.category.IsValid()
			if isValid != tt.want {
				t.Errorf("Category(%q).IsValid() = %v, want %v", tt.category, isValid, tt.want)
			}
			if tt.wantErr {
				if len(errs) == 0 {
					t.Fatalf("Category(%q).IsValid() returned no errors, want error", tt.category)
				}
				if !errors.Is(errs[0], ErrInvalidCategory) {
					t.Errorf("error should wrap ErrInvalidCategory, got: %v", errs[0])
				}
			} else if len(errs) > 0 {
				t.Errorf("Category(%q).IsValid() returned unexpected errors: %v", tt.category, errs)
			}
		})
	}
}

func TestParamKind_IsValid(t *testing.T) {
	t.Parallel()

	for _, kind := range ParamKinds() {
		if valid, errs := kind.IsValid(); !valid {
			t.Errorf("ParamKind(%q).IsValid() = false, errs: %v", kind, errs)
		}
	}

	for _, bad := range []ParamKind{"", "Float", "double", "array"} {
		valid, errs := bad.IsValid()
		if valid {
			t.Errorf("ParamKind(%q).IsValid() = true, want false", bad)
			continue
		}
		if !errors.Is(errs[0], ErrInvalidParamKind) {
			t.Errorf("error should wrap ErrInvalidParamKind, got: %v", errs[0])
		}
	}

	if !KindObject.IsObject() {
		t.Error("KindObject.IsObject() = false, want true")
	}
	if KindVector.IsObject() {
		t.Error("KindVector.IsObject() = true, want false")
	}
}

func TestModuleTarget_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		target ModuleTarget
		want   bool
	}{
		{TargetEditor, true},
		{TargetRuntime, true},
		{TargetEditorAndRuntime, true},
		{"", false},
		{"Program", false},
		{"runtime", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.target), func(t *testing.T) {
			t.Parallel()
			isValid, errs := tt.target.IsValid()
			if isValid != tt.want {
				t.Errorf("ModuleTarget(%q).IsValid() = %v, want %v", tt.target, isValid, tt.want)
			}
			if !tt.want && !errors.Is(errs[0], ErrInvalidModuleTarget) {
				t.Errorf("error should wrap ErrInvalidModuleTarget, got: %v", errs[0])
			}
		})
	}
}

func TestParseMetaField(t *testing.T) {
	t.Parallel()

	for _, f := range MetaFields() {
		got, err := ParseMetaField(string(f))
		if err != nil {
			t.Errorf("ParseMetaField(%q) unexpected error: %v", f, err)
		}
		if got != f {
			t.Errorf("ParseMetaField(%q) = %q", f, got)
		}
	}

	_, err := ParseMetaField("homepage")
	if !errors.Is(err, ErrInvalidMetaField) {
		t.Errorf("ParseMetaField(homepage) error = %v, want ErrInvalidMetaField", err)
	}
}

func TestParsePlacement(t *testing.T) {
	t.Parallel()

	if p, err := ParsePlacement("inputs"); err != nil || p != PlacementInputs {
		t.Errorf("ParsePlacement(inputs) = %q, %v", p, err)
	}
	if p, err := ParsePlacement("outputs"); err != nil || p != PlacementOutputs {
		t.Errorf("ParsePlacement(outputs) = %q, %v", p, err)
	}
	if _, err := ParsePlacement("input"); !errors.Is(err, ErrInvalidPlacement) {
		t.Errorf("ParsePlacement(input) error = %v, want ErrInvalidPlacement", err)
	}
}
