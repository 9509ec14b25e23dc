package config

import (
	"sort"
	"strings"

	"github.com/dshills/pathstorm/internal/app"
)

// Mode is a named, switchable set of key bindings plus help text.
//
// Help, when set, replaces the whole derived help menu; ExtraHelp is
// prepended to the derived menu instead.
type Mode struct {
	Name        string      `yaml:"name"`
	Help        *string     `yaml:"help"`
	ExtraHelp   *string     `yaml:"extra_help"`
	KeyBindings KeyBindings `yaml:"key_bindings"`
}

// Sanitized returns the mode with its bindings filtered for the given
// session.
func (m Mode) Sanitized(readOnly bool) Mode {
	m.KeyBindings = m.KeyBindings.Sanitized(readOnly)
	return m
}

// Extend merges overlay onto m. Name is deliberately untouched: the
// base mode keeps its identity when an overlay only adds bindings.
func (m Mode) Extend(overlay Mode) Mode {
	if overlay.Help != nil {
		m.Help = overlay.Help
	}
	if overlay.ExtraHelp != nil {
		m.ExtraHelp = overlay.ExtraHelp
	}
	m.KeyBindings = m.KeyBindings.Extend(overlay.KeyBindings)
	return m
}

// HelpMenu derives the displayable help menu for the mode.
//
// When explicit Help text is set, its lines become the whole menu and
// bindings are ignored. Otherwise the menu is, in order: ExtraHelp
// lines, key bindings in ascending key order (skipping keys that are a
// remap target and actions without help text), then the alphabet,
// number, special-character and default class bindings under their
// fixed labels. The order is a contract with the renderer.
func (m Mode) HelpMenu() []app.HelpMenuLine {
	if m.Help != nil {
		var lines []app.HelpMenuLine
		for _, l := range splitLines(*m.Help) {
			lines = append(lines, app.HelpParagraph(l))
		}
		return lines
	}

	var lines []app.HelpMenuLine
	if m.ExtraHelp != nil {
		for _, l := range splitLines(*m.ExtraHelp) {
			lines = append(lines, app.HelpParagraph(l))
		}
	}

	remapped := make(map[string]bool, len(m.KeyBindings.Remaps))
	for _, target := range m.KeyBindings.Remaps {
		remapped[target] = true
	}

	keys := make([]string, 0, len(m.KeyBindings.OnKey))
	for k := range m.KeyBindings.OnKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if remapped[k] {
			continue
		}
		if a := m.KeyBindings.OnKey[k]; a.Help != nil {
			lines = append(lines, app.HelpKeyMap(k, *a.Help))
		}
	}

	classes := []struct {
		label  string
		action *Action
	}{
		{"[a-Z]", m.KeyBindings.OnAlphabet},
		{"[0-9]", m.KeyBindings.OnNumber},
		{"[spcl chars]", m.KeyBindings.OnSpecialCharacter},
		{"[default]", m.KeyBindings.Default},
	}
	for _, c := range classes {
		if c.action != nil && c.action.Help != nil {
			lines = append(lines, app.HelpKeyMap(c.label, *c.action.Help))
		}
	}

	return lines
}

// splitLines splits on newlines the way help text expects: a trailing
// newline yields no empty final line, and empty text yields no lines.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// BuiltinModesConfig is the fixed registry of modes every installation
// has. Slots are never removed; an overlay can only reshape them.
type BuiltinModesConfig struct {
	Default                    Mode `yaml:"default"`
	SelectionOps               Mode `yaml:"selection_ops"`
	Create                     Mode `yaml:"create"`
	CreateDirectory            Mode `yaml:"create_directory"`
	CreateFile                 Mode `yaml:"create_file"`
	Number                     Mode `yaml:"number"`
	GoTo                       Mode `yaml:"go_to"`
	Rename                     Mode `yaml:"rename"`
	Delete                     Mode `yaml:"delete"`
	Action                     Mode `yaml:"action"`
	Search                     Mode `yaml:"search"`
	Filter                     Mode `yaml:"filter"`
	RelativePathDoesContain    Mode `yaml:"relative_path_does_contain"`
	RelativePathDoesNotContain Mode `yaml:"relative_path_does_not_contain"`
	Sort                       Mode `yaml:"sort"`
}

// Extend merges overlay onto b, slot by slot.
func (b BuiltinModesConfig) Extend(overlay BuiltinModesConfig) BuiltinModesConfig {
	b.Default = b.Default.Extend(overlay.Default)
	b.SelectionOps = b.SelectionOps.Extend(overlay.SelectionOps)
	b.Create = b.Create.Extend(overlay.Create)
	b.CreateDirectory = b.CreateDirectory.Extend(overlay.CreateDirectory)
	b.CreateFile = b.CreateFile.Extend(overlay.CreateFile)
	b.Number = b.Number.Extend(overlay.Number)
	b.GoTo = b.GoTo.Extend(overlay.GoTo)
	b.Rename = b.Rename.Extend(overlay.Rename)
	b.Delete = b.Delete.Extend(overlay.Delete)
	b.Action = b.Action.Extend(overlay.Action)
	b.Search = b.Search.Extend(overlay.Search)
	b.Filter = b.Filter.Extend(overlay.Filter)
	b.RelativePathDoesContain = b.RelativePathDoesContain.Extend(overlay.RelativePathDoesContain)
	b.RelativePathDoesNotContain = b.RelativePathDoesNotContain.Extend(overlay.RelativePathDoesNotContain)
	b.Sort = b.Sort.Extend(overlay.Sort)
	return b
}

// Get resolves a builtin mode by canonical name or legacy
// space-separated spelling. Returns nil when the name is not a builtin.
func (b *BuiltinModesConfig) Get(name string) *Mode {
	switch name {
	case "default":
		return &b.Default
	case "selection ops", "selection_ops":
		return &b.SelectionOps
	case "create":
		return &b.Create
	case "create file", "create_file":
		return &b.CreateFile
	case "create directory", "create_directory":
		return &b.CreateDirectory
	case "number":
		return &b.Number
	case "go to", "go_to":
		return &b.GoTo
	case "rename":
		return &b.Rename
	case "delete":
		return &b.Delete
	case "action":
		return &b.Action
	case "search":
		return &b.Search
	case "filter":
		return &b.Filter
	case "relative path does contain", "relative_path_does_contain":
		return &b.RelativePathDoesContain
	case "relative path does not contain", "relative_path_does_not_contain":
		return &b.RelativePathDoesNotContain
	case "sort":
		return &b.Sort
	default:
		return nil
	}
}

// ModesConfig is the mode registry: the fixed builtin slots plus the
// user-extensible custom table.
type ModesConfig struct {
	Builtin BuiltinModesConfig `yaml:"builtin"`
	Custom  map[string]Mode    `yaml:"custom"`
}

// Get resolves a mode by name. Builtins (including their legacy
// spellings) always shadow a same-named custom entry; custom lookup is
// exact-match only. Returns nil when nothing resolves.
func (m *ModesConfig) Get(name string) *Mode {
	if mode := m.Builtin.Get(name); mode != nil {
		return mode
	}
	if mode, ok := m.Custom[name]; ok {
		return &mode
	}
	return nil
}

// Extend merges overlay onto m. Custom entries replace wholesale: a
// user redefining a custom mode means exactly what they wrote, with no
// leftovers from the baseline's version.
func (m ModesConfig) Extend(overlay ModesConfig) ModesConfig {
	m.Builtin = m.Builtin.Extend(overlay.Builtin)
	m.Custom = mergeMap(m.Custom, overlay.Custom)
	return m
}
