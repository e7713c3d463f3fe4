// SPDX-License-Identifier: MPL-2.0

package plugin_test

import (
	"encoding/json"
	"errors"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/plugsmith/plugsmith/internal/testutil/modeltest"
	"github.com/plugsmith/plugsmith/pkg/ident"
	"github.com/plugsmith/plugsmith/pkg/plugin"

	"pgregory.net/rapid"
)

func TestDefaultModel(t *testing.T) {
	t.Parallel()

	m := plugin.DefaultModel(ident.NewSequence("t"))

	if err := m.Validate(); err != nil {
		t.Fatalf("DefaultModel().Validate() = %v", err)
	}
	if len(m.Modules) != 1 {
		t.Fatalf("len(Modules) = %d, want 1", len(m.Modules))
	}
	mod := m.Modules[0]
	if mod.Target != plugin.TargetEditor {
		t.Errorf("Target = %q, want Editor", mod.Target)
	}
	if len(mod.Nodes) != 1 || len(mod.Commands) != 1 {
		t.Fatalf("module holds %d nodes and %d commands, want 1 and 1", len(mod.Nodes), len(mod.Commands))
	}
	if plugin.Deref(m.SelectedModuleID) != mod.ID {
		t.Errorf("SelectedModuleID = %v, want %q", m.SelectedModuleID, mod.ID)
	}
	if plugin.Deref(m.SelectedNodeID) != mod.Nodes[0].ID {
		t.Errorf("SelectedNodeID = %v, want %q", m.SelectedNodeID, mod.Nodes[0].ID)
	}
}

func TestModel_Validate(t *testing.T) {
	t.Parallel()

	t.Run("duplicate id", func(t *testing.T) {
		t.Parallel()

		m := plugin.DefaultModel(ident.NewSequence("t"))
		m.Modules[0].Commands[0].ID = m.Modules[0].Nodes[0].ID

		err := m.Validate()
		if !errors.Is(err, plugin.ErrInvalidModel) {
			t.Fatalf("Validate() = %v, want ErrInvalidModel", err)
		}
		var modelErr *plugin.InvalidModelError
		if !errors.As(err, &modelErr) {
			t.Fatalf("Validate() error type = %T, want *InvalidModelError", err)
		}
		var dup *plugin.DuplicateIDError
		if !errors.As(modelErr.FieldErrors[0], &dup) {
			t.Fatalf("FieldErrors[0] = %v, want *DuplicateIDError", modelErr.FieldErrors[0])
		}
		if dup.ID != m.Modules[0].Nodes[0].ID {
			t.Errorf("DuplicateIDError.ID = %q, want %q", dup.ID, m.Modules[0].Nodes[0].ID)
		}
	})

	t.Run("bad enums", func(t *testing.T) {
		t.Parallel()

		m := plugin.DefaultModel(ident.NewSequence("t"))
		m.Meta.Category = "Tools"
		m.Modules[0].Target = "Server"
		m.Modules[0].Nodes[0].Inputs[0].Kind = "double"

		var modelErr *plugin.InvalidModelError
		if !errors.As(m.Validate(), &modelErr) {
			t.Fatal("Validate() should return *InvalidModelError")
		}
		if len(modelErr.FieldErrors) != 3 {
			t.Fatalf("len(FieldErrors) = %d, want 3: %v", len(modelErr.FieldErrors), modelErr.FieldErrors)
		}
		wants := []error{plugin.ErrInvalidCategory, plugin.ErrInvalidModuleTarget, plugin.ErrInvalidParamKind}
		for i, want := range wants {
			if !errors.Is(modelErr.FieldErrors[i], want) {
				t.Errorf("FieldErrors[%d] = %v, want %v", i, modelErr.FieldErrors[i], want)
			}
		}
	})

	t.Run("empty id", func(t *testing.T) {
		t.Parallel()

		m := plugin.DefaultModel(ident.NewSequence("t"))
		m.Modules[0].ID = ""
		if err := m.Validate(); !errors.Is(err, plugin.ErrInvalidModel) {
			t.Errorf("Validate() = %v, want ErrInvalidModel", err)
		}
	})
}

func TestModel_NormalizeSelection(t *testing.T) {
	t.Parallel()

	tools := modeltest.NewTestModule("Tools", modeltest.WithNode(modeltest.NewTestNode("A")))
	empty := modeltest.NewTestModule("Empty")

	tests := []struct {
		name       string
		moduleID   *string
		nodeID     *string
		wantModule *string
		wantNode   *string
	}{
		{"consistent", plugin.Ptr(tools.ID), plugin.Ptr(tools.Nodes[0].ID), plugin.Ptr(tools.ID), plugin.Ptr(tools.Nodes[0].ID)},
		{"nothing selected", nil, nil, nil, nil},
		{"dangling module", plugin.Ptr("gone"), plugin.Ptr(tools.Nodes[0].ID), nil, nil},
		{"node from other module", plugin.Ptr(empty.ID), plugin.Ptr(tools.Nodes[0].ID), plugin.Ptr(empty.ID), nil},
		{"dangling node", plugin.Ptr(tools.ID), plugin.Ptr("gone"), plugin.Ptr(tools.ID), plugin.Ptr(tools.Nodes[0].ID)},
		{"node without module", nil, plugin.Ptr(tools.Nodes[0].ID), nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := modeltest.NewTestModel(tools, empty)
			m.SelectedModuleID = tt.moduleID
			m.SelectedNodeID = tt.nodeID
			m.NormalizeSelection()

			if plugin.Deref(m.SelectedModuleID) != plugin.Deref(tt.wantModule) || (m.SelectedModuleID == nil) != (tt.wantModule == nil) {
				t.Errorf("SelectedModuleID = %v, want %v", m.SelectedModuleID, tt.wantModule)
			}
			if plugin.Deref(m.SelectedNodeID) != plugin.Deref(tt.wantNode) || (m.SelectedNodeID == nil) != (tt.wantNode == nil) {
				t.Errorf("SelectedNodeID = %v, want %v", m.SelectedNodeID, tt.wantNode)
			}
			if !m.SelectionConsistent() {
				t.Error("SelectionConsistent() = false after NormalizeSelection()")
			}
		})
	}
}

func TestModule_AllIDs(t *testing.T) {
	t.Parallel()

	m := plugin.DefaultModel(ident.NewSequence("t"))
	got := m.Modules[0].AllIDs()
	// Generation order: node, inputs, output, command, module.
	want := []string{"t-6", "t-1", "t-2", "t-3", "t-4", "t-5"}
	if !slices.Equal(got, want) {
		t.Errorf("AllIDs() = %v, want %v", got, want)
	}
}

func TestModel_CloneIsDeep(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		m := modeltest.ModelGen().Draw(t, "model")
		before, err := json.Marshal(m)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}

		c := m.Clone()
		for mi := range c.Modules {
			mod := &c.Modules[mi]
			mod.Name += "x"
			mod.Dependencies = append(mod.Dependencies, "Extra")
			for ni := range mod.Nodes {
				mod.Nodes[ni].Title += "x"
				for pi := range mod.Nodes[ni].Inputs {
					p := &mod.Nodes[ni].Inputs[pi]
					if p.DefaultValue != nil {
						*p.DefaultValue += "x"
					}
				}
			}
		}
		if c.SelectedModuleID != nil {
			*c.SelectedModuleID += "x"
		}

		after, err := json.Marshal(m)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if string(before) != string(after) {
			t.Fatalf("mutating the clone changed the original:\nbefore %s\nafter  %s", before, after)
		}
	})
}

func TestCloneModuleWithFreshIDs(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		ids := ident.NewSequence("src")
		mod := modeltest.ModuleGen(ids).Draw(t, "module")
		clone := plugin.CloneModuleWithFreshIDs(mod, ident.NewSequence("clone"))

		if clone.Name != mod.Name+plugin.CloneSuffix {
			t.Fatalf("Name = %q, want %q", clone.Name, mod.Name+plugin.CloneSuffix)
		}
		orig := mod.AllIDs()
		for _, id := range clone.AllIDs() {
			if slices.Contains(orig, id) {
				t.Fatalf("clone reuses id %q", id)
			}
		}
		if len(clone.AllIDs()) != len(orig) {
			t.Fatalf("clone has %d ids, original %d", len(clone.AllIDs()), len(orig))
		}

		got := modeltest.WithoutIDs(clone)
		got.Name = strings.TrimSuffix(got.Name, plugin.CloneSuffix)
		if want := modeltest.WithoutIDs(mod); !reflect.DeepEqual(got, want) {
			t.Fatalf("clone differs beyond ids and name:\ngot  %+v\nwant %+v", got, want)
		}
	})
}

func TestModelGen_IsValid(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		m := modeltest.ModelGen().Draw(t, "model")
		if err := m.Validate(); err != nil {
			t.Fatalf("Validate() = %v", err)
		}
		if !m.SelectionConsistent() {
			t.Fatal("generated selection is inconsistent")
		}
	})
}
