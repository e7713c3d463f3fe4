// SPDX-License-Identifier: MPL-2.0

package plugin

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// ErrUnknownField is the sentinel error wrapped by UnknownFieldError.
var ErrUnknownField = errors.New("unknown field")

type (
	// UnknownFieldError is returned when a string-keyed patch names a field
	// that is not declared (or not patchable) on the target entity.
	UnknownFieldError struct {
		Entity string
		Field  string
	}

	// ModulePatch is a shallow merge of named Module fields. Nil fields are
	// left unchanged.
	ModulePatch struct {
		Name         *string
		Target       *ModuleTarget
		Description  *string
		Dependencies *[]string
	}

	// NodePatch is a shallow merge of named Node fields.
	NodePatch struct {
		Title       *string
		Category    *string
		Description *string
		Body        *string
	}

	// ParameterPatch is a shallow merge of named Parameter fields.
	ParameterPatch struct {
		Name         *string
		Kind         *ParamKind
		DefaultValue *string
		Description  *string
		IsArray      *bool
	}

	// CommandPatch is a shallow merge of named Command fields.
	CommandPatch struct {
		Name        *string
		Context     *string
		Hotkey      *string
		Description *string
		Script      *string
	}
)

// Error implements the error interface for UnknownFieldError.
func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown %s field %q", e.Entity, e.Field)
}

// Unwrap returns ErrUnknownField for errors.Is() compatibility.
func (e *UnknownFieldError) Unwrap() error { return ErrUnknownField }

// Apply returns mod with the patched fields replaced.
func (p ModulePatch) Apply(mod Module) Module {
	out := mod.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Target != nil {
		out.Target = *p.Target
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Dependencies != nil {
		out.Dependencies = append(make([]string, 0, len(*p.Dependencies)), *p.Dependencies...)
	}
	return out
}

// Apply returns n with the patched fields replaced.
func (p NodePatch) Apply(n Node) Node {
	out := n.Clone()
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Category != nil {
		out.Category = *p.Category
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Body != nil {
		out.Body = *p.Body
	}
	return out
}

// Apply returns param with the patched fields replaced.
func (p ParameterPatch) Apply(param Parameter) Parameter {
	out := param.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Kind != nil {
		out.Kind = *p.Kind
	}
	if p.DefaultValue != nil {
		out.DefaultValue = Ptr(*p.DefaultValue)
	}
	if p.Description != nil {
		out.Description = Ptr(*p.Description)
	}
	if p.IsArray != nil {
		out.IsArray = Ptr(*p.IsArray)
	}
	return out
}

// Apply returns c with the patched fields replaced.
func (p CommandPatch) Apply(c Command) Command {
	out := c
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Context != nil {
		out.Context = *p.Context
	}
	if p.Hotkey != nil {
		out.Hotkey = *p.Hotkey
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Script != nil {
		out.Script = *p.Script
	}
	return out
}

// ParseModulePatch decodes a string-keyed module patch. Recognized keys are
// name, type, description and dependencies (comma separated).
func ParseModulePatch(fields map[string]string) (ModulePatch, error) {
	var p ModulePatch
	for _, key := range sortedKeys(fields) {
		value := fields[key]
		switch key {
		case "name":
			p.Name = Ptr(value)
		case "type":
			target := ModuleTarget(value)
			if valid, errs := target.IsValid(); !valid {
				return ModulePatch{}, errs[0]
			}
			p.Target = &target
		case "description":
			p.Description = Ptr(value)
		case "dependencies":
			p.Dependencies = Ptr(SplitList(value))
		default:
			return ModulePatch{}, &UnknownFieldError{Entity: "module", Field: key}
		}
	}
	return p, nil
}

// ParseNodePatch decodes a string-keyed node patch. Recognized keys are
// title, category, description and body.
func ParseNodePatch(fields map[string]string) (NodePatch, error) {
	var p NodePatch
	for _, key := range sortedKeys(fields) {
		value := fields[key]
		switch key {
		case "title":
			p.Title = Ptr(value)
		case "category":
			p.Category = Ptr(value)
		case "description":
			p.Description = Ptr(value)
		case "body":
			p.Body = Ptr(value)
		default:
			return NodePatch{}, &UnknownFieldError{Entity: "node", Field: key}
		}
	}
	return p, nil
}

// ParseParameterPatch decodes a string-keyed parameter patch. Recognized keys
// are name, type, defaultValue, description and isArray.
func ParseParameterPatch(fields map[string]string) (ParameterPatch, error) {
	var p ParameterPatch
	for _, key := range sortedKeys(fields) {
		value := fields[key]
		switch key {
		case "name":
			p.Name = Ptr(value)
		case "type":
			kind := ParamKind(value)
			if valid, errs := kind.IsValid(); !valid {
				return ParameterPatch{}, errs[0]
			}
			p.Kind = &kind
		case "defaultValue":
			p.DefaultValue = Ptr(value)
		case "description":
			p.Description = Ptr(value)
		case "isArray":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return ParameterPatch{}, fmt.Errorf("parameter field %q: %w", key, err)
			}
			p.IsArray = Ptr(b)
		default:
			return ParameterPatch{}, &UnknownFieldError{Entity: "parameter", Field: key}
		}
	}
	return p, nil
}

// ParseCommandPatch decodes a string-keyed command patch. Recognized keys are
// name, context, hotkey, description and script.
func ParseCommandPatch(fields map[string]string) (CommandPatch, error) {
	var p CommandPatch
	for _, key := range sortedKeys(fields) {
		value := fields[key]
		switch key {
		case "name":
			p.Name = Ptr(value)
		case "context":
			p.Context = Ptr(value)
		case "hotkey":
			p.Hotkey = Ptr(value)
		case "description":
			p.Description = Ptr(value)
		case "script":
			p.Script = Ptr(value)
		default:
			return CommandPatch{}, &UnknownFieldError{Entity: "command", Field: key}
		}
	}
	return p, nil
}

// SplitList splits a comma separated list, trimming entries and dropping
// empty ones. Duplicates are kept.
func SplitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func sortedKeys(fields map[string]string) []string {
	return slices.Sorted(maps.Keys(fields))
}
