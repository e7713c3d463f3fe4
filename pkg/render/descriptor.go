// SPDX-License-Identifier: MPL-2.0

package render

import "github.com/plugsmith/plugsmith/pkg/plugin"

const (
	// DescriptorFileVersion is the descriptor schema version.
	DescriptorFileVersion = 3
	// DescriptorVersion is the integer plugin version.
	DescriptorVersion = 1
	// DescriptorCategory is the category written to every descriptor.
	DescriptorCategory = "Editor"
	// CreatedByURL is written to every descriptor.
	CreatedByURL = "https://github.com/plugsmith/plugsmith"
	// LoadingPhase is the loading phase of every module entry.
	LoadingPhase = "Default"
)

type (
	// descriptorDoc mirrors the descriptor schema. Field order is the
	// serialized order.
	descriptorDoc struct {
		FileVersion   int                `json:"FileVersion"`
		Version       int                `json:"Version"`
		VersionName   string             `json:"VersionName"`
		FriendlyName  string             `json:"FriendlyName"`
		EngineVersion string             `json:"EngineVersion"`
		Description   string             `json:"Description"`
		Category      string             `json:"Category"`
		CreatedBy     string             `json:"CreatedBy"`
		CreatedByURL  string             `json:"CreatedByURL"`
		Modules       []descriptorModule `json:"Modules"`
	}

	descriptorModule struct {
		Name                   string   `json:"Name"`
		Type                   string   `json:"Type"`
		LoadingPhase           string   `json:"LoadingPhase"`
		AdditionalDependencies []string `json:"AdditionalDependencies"`
	}
)

// Descriptor renders the plugin descriptor document.
func Descriptor(m plugin.Model) string {
	doc := descriptorDoc{
		FileVersion:   DescriptorFileVersion,
		Version:       DescriptorVersion,
		VersionName:   m.Meta.Version,
		FriendlyName:  m.Meta.Title,
		EngineVersion: m.Meta.EngineVersion,
		Description:   m.Meta.Description,
		Category:      DescriptorCategory,
		CreatedBy:     m.Meta.Author,
		CreatedByURL:  CreatedByURL,
		Modules:       make([]descriptorModule, 0, len(m.Modules)),
	}
	for _, mod := range m.Modules {
		doc.Modules = append(doc.Modules, descriptorModule{
			Name:                   mod.Name,
			Type:                   string(mod.Target),
			LoadingPhase:           LoadingPhase,
			AdditionalDependencies: nonNil(mod.Dependencies),
		})
	}
	return encodeJSON(doc)
}
