package config

import "github.com/dshills/pathstorm/internal/ui"

// NodeTypeConfig styles one class of file system node. Meta carries
// free-form annotations (icons and the like) read by the renderer.
type NodeTypeConfig struct {
	Style ui.Style          `yaml:"style"`
	Meta  map[string]string `yaml:"meta"`
}

// Extend merges overlay onto n. Meta unions key-wise.
func (n NodeTypeConfig) Extend(overlay NodeTypeConfig) NodeTypeConfig {
	n.Style = n.Style.Extend(overlay.Style)
	n.Meta = mergeMap(n.Meta, overlay.Meta)
	return n
}

// NodeTypesConfig styles nodes by kind, with lookup refinements keyed by
// mime essence, extension, and exact (special) name.
type NodeTypesConfig struct {
	Directory   NodeTypeConfig            `yaml:"directory"`
	File        NodeTypeConfig            `yaml:"file"`
	Symlink     NodeTypeConfig            `yaml:"symlink"`
	MimeEssence map[string]NodeTypeConfig `yaml:"mime_essence"`
	Extension   map[string]NodeTypeConfig `yaml:"extension"`
	Special     map[string]NodeTypeConfig `yaml:"special"`
}

// Extend merges overlay onto n. An entry present in both sides of the
// keyed maps merges its sub-fields rather than being replaced, so an
// overlay can restyle an extension without losing the baseline's meta.
func (n NodeTypesConfig) Extend(overlay NodeTypesConfig) NodeTypesConfig {
	n.Directory = n.Directory.Extend(overlay.Directory)
	n.File = n.File.Extend(overlay.File)
	n.Symlink = n.Symlink.Extend(overlay.Symlink)
	n.MimeEssence = mergeMapWith(n.MimeEssence, overlay.MimeEssence, NodeTypeConfig.Extend)
	n.Extension = mergeMapWith(n.Extension, overlay.Extension, NodeTypeConfig.Extend)
	n.Special = mergeMapWith(n.Special, overlay.Special, NodeTypeConfig.Extend)
	return n
}
