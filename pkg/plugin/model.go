// SPDX-License-Identifier: MPL-2.0

package plugin

type (
	// Meta is the plugin-wide metadata singleton.
	Meta struct {
		// Title is the friendly plugin name.
		Title string `json:"title"`
		// Identifier is the code-safe symbol prefix, also used for artifact filenames.
		Identifier string `json:"identifier"`
		// Author is shown as the plugin creator.
		Author string `json:"author"`
		// Version is the plugin version name (e.g., "1.0").
		Version string `json:"version"`
		// EngineVersion is the minimum supported engine version.
		EngineVersion string `json:"engineVersion"`
		// Category is the plugin browser category.
		Category Category `json:"category"`
		// Description is free text.
		Description string `json:"description"`
	}

	// Parameter is a typed value slot on a node, owned by exactly one node
	// in either the input or the output role.
	Parameter struct {
		ID   string    `json:"id"`
		Name string    `json:"name"`
		Kind ParamKind `json:"type"`
		// DefaultValue is rendered verbatim; nil means no default.
		DefaultValue *string `json:"defaultValue,omitempty"`
		Description  *string `json:"description,omitempty"`
		// IsArray marks the parameter as a list of Kind; nil means false.
		IsArray *bool `json:"isArray,omitempty"`
	}

	// Node is a callable unit with ordered inputs and outputs and an opaque
	// body fragment.
	Node struct {
		ID          string      `json:"id"`
		Title       string      `json:"title"`
		Category    string      `json:"category"`
		Description string      `json:"description"`
		Inputs      []Parameter `json:"inputs"`
		Outputs     []Parameter `json:"outputs"`
		// Body is never parsed.
		Body string `json:"body"`
	}

	// Command is a hotkey-bound editor action.
	Command struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Context string `json:"context"`
		// Hotkey is a "+"-joined token sequence such as "Ctrl+Alt+P".
		Hotkey      string `json:"hotkey"`
		Description string `json:"description"`
		// Script is never parsed.
		Script string `json:"script"`
	}

	// Module groups nodes and commands under a deployment target.
	Module struct {
		ID          string       `json:"id"`
		Name        string       `json:"name"`
		Target      ModuleTarget `json:"type"`
		Description string       `json:"description"`
		// Dependencies keeps insertion order; duplicates are legal.
		Dependencies []string  `json:"dependencies"`
		Nodes        []Node    `json:"nodes"`
		Commands     []Command `json:"commands"`
	}

	// Model is the complete plugin design.
	Model struct {
		Meta             Meta     `json:"meta"`
		Modules          []Module `json:"modules"`
		SelectedModuleID *string  `json:"selectedModuleId"`
		SelectedNodeID   *string  `json:"selectedNodeId"`
	}
)

// Ptr returns a pointer to v. It keeps optional-field literals short.
func Ptr[T any](v T) *T {
	return &v
}

// Deref returns *p, or the zero value when p is nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Params returns the parameter list for the placement. Unknown placements
// return nil.
func (n *Node) Params(p Placement) []Parameter {
	switch p {
	case PlacementInputs:
		return n.Inputs
	case PlacementOutputs:
		return n.Outputs
	default:
		return nil
	}
}

// SetParams replaces the parameter list for the placement. Unknown
// placements are ignored.
func (n *Node) SetParams(p Placement, params []Parameter) {
	switch p {
	case PlacementInputs:
		n.Inputs = params
	case PlacementOutputs:
		n.Outputs = params
	}
}

// FindModule returns the index of the module with the given id, or -1.
func (m *Model) FindModule(id string) int {
	for i := range m.Modules {
		if m.Modules[i].ID == id {
			return i
		}
	}
	return -1
}

// SelectedModule returns the selected module, or nil when nothing is selected
// or the selection is dangling.
func (m *Model) SelectedModule() *Module {
	if m.SelectedModuleID == nil {
		return nil
	}
	if i := m.FindModule(*m.SelectedModuleID); i >= 0 {
		return &m.Modules[i]
	}
	return nil
}

// FindNode returns the index of the node with the given id, or -1.
func (mod *Module) FindNode(id string) int {
	for i := range mod.Nodes {
		if mod.Nodes[i].ID == id {
			return i
		}
	}
	return -1
}

// FindCommand returns the index of the command with the given id, or -1.
func (mod *Module) FindCommand(id string) int {
	for i := range mod.Commands {
		if mod.Commands[i].ID == id {
			return i
		}
	}
	return -1
}

// FirstNodeID returns the id of the module's first node, or nil.
func (mod *Module) FirstNodeID() *string {
	if len(mod.Nodes) == 0 {
		return nil
	}
	return Ptr(mod.Nodes[0].ID)
}

// FindParam returns the index of the parameter with the given id, or -1.
func FindParam(params []Parameter, id string) int {
	for i := range params {
		if params[i].ID == id {
			return i
		}
	}
	return -1
}

// AllIDs returns every id owned by the module, the module's own id first,
// in document order.
func (mod *Module) AllIDs() []string {
	ids := []string{mod.ID}
	for _, n := range mod.Nodes {
		ids = append(ids, n.ID)
		for _, p := range n.Inputs {
			ids = append(ids, p.ID)
		}
		for _, p := range n.Outputs {
			ids = append(ids, p.ID)
		}
	}
	for _, c := range mod.Commands {
		ids = append(ids, c.ID)
	}
	return ids
}

// AllIDs returns every entity id in the model in document order.
func (m *Model) AllIDs() []string {
	var ids []string
	for i := range m.Modules {
		ids = append(ids, m.Modules[i].AllIDs()...)
	}
	return ids
}

// Clone returns a deep copy of the parameter.
func (p Parameter) Clone() Parameter {
	out := p
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

func cloneParams(params []Parameter) []Parameter {
	out := make([]Parameter, len(params))
	for i, p := range params {
		out[i] = p.Clone()
	}
	return out
}

// Clone returns a deep copy of the node. Parameter lists are never nil.
func (n Node) Clone() Node {
	out := n
	out.Inputs = cloneParams(n.Inputs)
	out.Outputs = cloneParams(n.Outputs)
	return out
}

// Clone returns a deep copy of the module. Slices are never nil.
func (mod Module) Clone() Module {
	out := mod
	out.Dependencies = append(make([]string, 0, len(mod.Dependencies)), mod.Dependencies...)
	out.Nodes = make([]Node, len(mod.Nodes))
	for i, n := range mod.Nodes {
		out.Nodes[i] = n.Clone()
	}
	out.Commands = append(make([]Command, 0, len(mod.Commands)), mod.Commands...)
	return out
}

// Clone returns a deep copy of the model. Slices are never nil, so the copy
// encodes lists as [] rather than null.
func (m Model) Clone() Model {
	out := m
	out.Modules = make([]Module, len(m.Modules))
	for i, mod := range m.Modules {
		out.Modules[i] = mod.Clone()
	}
	if m.SelectedModuleID != nil {
		out.SelectedModuleID = Ptr(*m.SelectedModuleID)
	}
	if m.SelectedNodeID != nil {
		out.SelectedNodeID = Ptr(*m.SelectedNodeID)
	}
	return out
}
