package config

import (
	"github.com/dshills/pathstorm/internal/app"
	"github.com/dshills/pathstorm/internal/ui"
)

// Version is the release this build ships as; a pristine default config
// declares it.
const Version = "v0.5.5"

// Default returns the built-in baseline configuration. It is a pure
// factory: every call produces a fresh, independently owned value, so
// merging an overlay onto one baseline never aliases another.
func Default() Config {
	return Config{
		Version:   Version,
		General:   defaultGeneral(),
		NodeTypes: defaultNodeTypes(),
		Modes:     defaultModes(),
	}
}

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }
func u16p(n uint16) *uint16 { return &n }

func fg(color string, mods ...ui.Modifier) ui.Style {
	return ui.Style{Fg: strp(color), AddModifiers: mods}
}

func el(format string, style ui.Style) UiElement {
	return UiElement{Format: strp(format), Style: style}
}

func action(help string, msgs ...app.ExternalMsg) Action {
	a := Action{Messages: msgs}
	if help != "" {
		a.Help = strp(help)
	}
	return a
}

func actionp(help string, msgs ...app.ExternalMsg) *Action {
	a := action(help, msgs...)
	return &a
}

func defaultGeneral() GeneralConfig {
	return GeneralConfig{
		ShowHidden: boolp(false),
		Cursor:     el("█", ui.Style{}),
		Prompt:     el("❯ ", fg("cyan")),
		Logs: LogsConfig{
			Info:    el("INFO   ", fg("cyan")),
			Success: el("SUCCESS", fg("green")),
			Error:   el("ERROR  ", fg("red")),
		},
		Table: TableConfig{
			Header: TableRowConfig{
				Cols: []UiElement{
					el(" index", ui.Style{}),
					el("╭─── path", ui.Style{}),
					el("size", ui.Style{}),
					el("type", ui.Style{}),
				},
				Height: u16p(1),
				Style:  ui.Style{AddModifiers: []ui.Modifier{ui.ModifierBold}},
			},
			Row: TableRowConfig{
				Cols: []UiElement{
					el("{{.Index}}", ui.Style{}),
					el("{{.Tree}}{{.Prefix}}{{.Meta.icon}} {{.RelativePath}}{{.Suffix}}", ui.Style{}),
					el("{{.HumanSize}}", ui.Style{}),
					el("{{.MimeEssence}}", ui.Style{}),
				},
			},
			Tree: &TreeGlyphs{
				Trunk: el("│", ui.Style{}),
				Fork:  el("├─", ui.Style{}),
				End:   el("╰─", ui.Style{}),
			},
			ColSpacing: u16p(1),
			ColWidths: []Constraint{
				{Kind: ConstraintPercentage, Value: 10},
				{Kind: ConstraintPercentage, Value: 50},
				{Kind: ConstraintPercentage, Value: 20},
				{Kind: ConstraintPercentage, Value: 20},
			},
		},
		DefaultUi: UiConfig{Prefix: strp("  "), Suffix: strp("")},
		FocusUi: UiConfig{
			Prefix: strp("▸["),
			Suffix: strp("]"),
			Style:  fg("blue", ui.ModifierBold),
		},
		SelectionUi: UiConfig{
			Prefix: strp(" {"),
			Suffix: strp("}"),
			Style:  fg("green", ui.ModifierBold),
		},
		SortAndFilterUi: SortAndFilterUi{
			Separator: el(" › ", fg("gray")),
			SortDirectionIdentifiers: SortDirectionIdentifiersUi{
				Forward: el("↓", ui.Style{}),
				Reverse: el("↑", ui.Style{}),
			},
			SorterIdentifiers: map[app.NodeSorter]UiElement{
				app.SortByRelativePath:  el("rel", ui.Style{}),
				app.SortByIRelativePath: el("[i]rel", ui.Style{}),
				app.SortByExtension:     el("ext", ui.Style{}),
				app.SortByIsDir:         el("dir", ui.Style{}),
				app.SortByIsFile:        el("file", ui.Style{}),
				app.SortByIsSymlink:     el("sym", ui.Style{}),
				app.SortByIsBroken:      el("⨯", ui.Style{}),
				app.SortByIsReadonly:    el("ro", ui.Style{}),
				app.SortByMimeEssence:   el("mime", ui.Style{}),
				app.SortBySize:          el("size", ui.Style{}),
			},
			FilterIdentifiers: map[app.NodeFilter]UiElement{
				app.FilterRelativePathIs:               el("rel==", ui.Style{}),
				app.FilterRelativePathIsNot:            el("rel!=", ui.Style{}),
				app.FilterIRelativePathIs:              el("[i]rel==", ui.Style{}),
				app.FilterIRelativePathIsNot:           el("[i]rel!=", ui.Style{}),
				app.FilterRelativePathDoesStartWith:    el("rel=^", ui.Style{}),
				app.FilterRelativePathDoesNotStartWith: el("rel!^", ui.Style{}),
				app.FilterRelativePathDoesContain:      el("rel=~", ui.Style{}),
				app.FilterRelativePathDoesNotContain:   el("rel!~", ui.Style{}),
				app.FilterRelativePathDoesEndWith:      el("rel=$", ui.Style{}),
				app.FilterRelativePathDoesNotEndWith:   el("rel!$", ui.Style{}),
			},
		},
		InitialSorting: SorterList{
			{Sorter: app.SortByIsDir, Reverse: true},
			{Sorter: app.SortByRelativePath},
		},
	}
}

func defaultNodeTypes() NodeTypesConfig {
	return NodeTypesConfig{
		Directory: NodeTypeConfig{
			Style: fg("blue", ui.ModifierBold),
			Meta:  map[string]string{"icon": "▸"},
		},
		File: NodeTypeConfig{
			Meta: map[string]string{"icon": " "},
		},
		Symlink: NodeTypeConfig{
			Style: fg("cyan", ui.ModifierItalic),
			Meta:  map[string]string{"icon": "↩"},
		},
		MimeEssence: map[string]NodeTypeConfig{
			"text/plain":      {Style: fg("silver")},
			"application/pdf": {Style: fg("red")},
		},
		Extension: map[string]NodeTypeConfig{
			"md": {Style: fg("yellow")},
			"go": {Style: fg("teal")},
		},
		Special: map[string]NodeTypeConfig{
			".git":   {Style: fg("maroon")},
			"go.mod": {Style: fg("teal", ui.ModifierBold)},
		},
	}
}

func defaultModes() ModesConfig {
	return ModesConfig{
		Builtin: BuiltinModesConfig{
			Default:                    defaultMode(),
			SelectionOps:               selectionOpsMode(),
			Create:                     createMode(),
			CreateDirectory:            createDirectoryMode(),
			CreateFile:                 createFileMode(),
			Number:                     numberMode(),
			GoTo:                       goToMode(),
			Rename:                     renameMode(),
			Delete:                     deleteMode(),
			Action:                     actionMode(),
			Search:                     searchMode(),
			Filter:                     filterMode(),
			RelativePathDoesContain:    filterInputMode("relative_path_does_contain", app.FilterRelativePathDoesContain),
			RelativePathDoesNotContain: filterInputMode("relative_path_does_not_contain", app.FilterRelativePathDoesNotContain),
			Sort:                       sortMode(),
		},
	}
}

func defaultMode() Mode {
	return Mode{
		Name: "default",
		KeyBindings: KeyBindings{
			OnKey: map[string]Action{
				"up":    action("up", app.NewMsg(app.MsgFocusPrevious)),
				"down":  action("down", app.NewMsg(app.MsgFocusNext)),
				"right": action("enter", app.NewMsg(app.MsgEnter)),
				"left":  action("back", app.NewMsg(app.MsgBack)),
				"k":     action("", app.NewMsg(app.MsgFocusPrevious)),
				"j":     action("", app.NewMsg(app.MsgFocusNext)),
				"l":     action("", app.NewMsg(app.MsgEnter)),
				"h":     action("", app.NewMsg(app.MsgBack)),
				"g":     action("go to", app.NewStrMsg(app.MsgSwitchMode, "go to")),
				"G": action("go to bottom",
					app.NewMsg(app.MsgFocusLast)),
				"s": action("sort", app.NewStrMsg(app.MsgSwitchMode, "sort")),
				"f": action("filter", app.NewStrMsg(app.MsgSwitchMode, "filter")),
				"/": action("search",
					app.NewStrMsg(app.MsgSetInputBuffer, ""),
					app.NewStrMsg(app.MsgSwitchMode, "search")),
				":": action("action", app.NewStrMsg(app.MsgSwitchMode, "action")),
				"c": action("create", app.NewStrMsg(app.MsgSwitchMode, "create")),
				"r": action("rename",
					app.NewStrMsg(app.MsgSetInputBuffer, ""),
					app.NewStrMsg(app.MsgSwitchMode, "rename")),
				"d": action("delete", app.NewStrMsg(app.MsgSwitchMode, "delete")),
				"space": action("toggle selection",
					app.NewMsg(app.MsgToggleSelection),
					app.NewMsg(app.MsgFocusNext)),
				".":      action("toggle hidden", app.NewMsg(app.MsgToggleShowHidden)),
				"ctrl-r": action("refresh", app.NewMsg(app.MsgRefresh)),
				"q":      action("quit", app.NewMsg(app.MsgQuit)),
				"ctrl-c": action("", app.NewMsg(app.MsgTerminate)),
			},
			OnNumber: actionp("input number",
				app.NewMsg(app.MsgBufferInputFromKey),
				app.NewStrMsg(app.MsgSwitchMode, "number")),
		},
	}
}

func selectionOpsMode() Mode {
	return Mode{
		Name: "selection_ops",
		KeyBindings: KeyBindings{
			OnKey: map[string]Action{
				"c": action("copy here",
					app.NewStrMsg(app.MsgBashExec, `while read -r f; do cp -v "$f" ./; done <<< "$PATHSTORM_SELECTION"`),
					app.NewStrMsg(app.MsgSwitchMode, "default")),
				"m": action("move here",
					app.NewStrMsg(app.MsgBashExec, `while read -r f; do mv -v "$f" ./; done <<< "$PATHSTORM_SELECTION"`),
					app.NewStrMsg(app.MsgSwitchMode, "default")),
				"u": action("clear selection",
					app.NewMsg(app.MsgClearSelection),
					app.NewStrMsg(app.MsgSwitchMode, "default")),
				"esc": action("cancel", app.NewStrMsg(app.MsgSwitchMode, "default")),
			},
		},
	}
}

func createMode() Mode {
	return Mode{
		Name: "create",
		KeyBindings: KeyBindings{
			OnKey: map[string]Action{
				"f": action("create file",
					app.NewStrMsg(app.MsgSetInputBuffer, ""),
					app.NewStrMsg(app.MsgSwitchMode, "create file")),
				"d": action("create directory",
					app.NewStrMsg(app.MsgSetInputBuffer, ""),
					app.NewStrMsg(app.MsgSwitchMode, "create directory")),
				"esc": action("cancel", app.NewStrMsg(app.MsgSwitchMode, "default")),
			},
		},
	}
}

func createFileMode() Mode {
	return inputMode("create_file", "create file", app.NewStrMsg(
		app.MsgBashExec, `touch -- "$PATHSTORM_INPUT_BUFFER"`))
}

func createDirectoryMode() Mode {
	return inputMode("create_directory", "create directory", app.NewStrMsg(
		app.MsgBashExec, `mkdir -p -- "$PATHSTORM_INPUT_BUFFER"`))
}

func renameMode() Mode {
	return inputMode("rename", "rename", app.NewStrMsg(
		app.MsgBashExec, `mv -- "$PATHSTORM_FOCUS_PATH" "./$PATHSTORM_INPUT_BUFFER"`))
}

// inputMode is the shared shape of the modes that buffer a name and
// commit it with a shell action on enter.
func inputMode(name, commitHelp string, commit app.ExternalMsg) Mode {
	return Mode{
		Name: name,
		KeyBindings: KeyBindings{
			OnKey: map[string]Action{
				"enter": action(commitHelp,
					commit,
					app.NewMsg(app.MsgResetInputBuffer),
					app.NewStrMsg(app.MsgSwitchMode, "default"),
					app.NewMsg(app.MsgExplore)),
				"backspace": action("", app.NewMsg(app.MsgRemoveInputBufferLastCharacter)),
				"esc": action("cancel",
					app.NewMsg(app.MsgResetInputBuffer),
					app.NewStrMsg(app.MsgSwitchMode, "default")),
				"ctrl-c": action("", app.NewMsg(app.MsgTerminate)),
			},
			Default: actionp("", app.NewMsg(app.MsgBufferInputFromKey)),
		},
	}
}

func numberMode() Mode {
	return Mode{
		Name: "number",
		KeyBindings: KeyBindings{
			OnKey: map[string]Action{
				"up": action("to up",
					app.NewMsg(app.MsgFocusPreviousByRelativeIndexFromInput),
					app.NewStrMsg(app.MsgSwitchMode, "default")),
				"down": action("to down",
					app.NewMsg(app.MsgFocusNextByRelativeIndexFromInput),
					app.NewStrMsg(app.MsgSwitchMode, "default")),
				"enter": action("to index",
					app.NewMsg(app.MsgFocusByIndexFromInput),
					app.NewStrMsg(app.MsgSwitchMode, "default")),
				"backspace": action("", app.NewMsg(app.MsgRemoveInputBufferLastCharacter)),
				"esc": action("cancel",
					app.NewMsg(app.MsgResetInputBuffer),
					app.NewStrMsg(app.MsgSwitchMode, "default")),
				"ctrl-c": action("", app.NewMsg(app.MsgTerminate)),
			},
			Remaps: map[string]string{
				"k": "up",
				"j": "down",
			},
			OnNumber: actionp("input number", app.NewMsg(app.MsgBufferInputFromKey)),
		},
	}
}

func goToMode() Mode {
	return Mode{
		Name: "go_to",
		KeyBindings: KeyBindings{
			OnKey: map[string]Action{
				"g": action("top",
					app.NewMsg(app.MsgFocusFirst),
					app.NewStrMsg(app.MsgSwitchMode, "default")),
				"f": action("follow symlink",
					app.NewMsg(app.MsgFollowSymlink),
					app.NewStrMsg(app.MsgSwitchMode, "default")),
				"~": action("home",
					app.NewStrMsg(app.MsgBashExecSilently, `echo "ChangeDirectory: $HOME" >> "$PATHSTORM_PIPE_MSG_IN"`),
					app.NewStrMsg(app.MsgSwitchMode, "default")),
				"x": action("open in gui",
					app.NewCallMsg(app.MsgCallSilently, app.Command{
						Command: "xdg-open",
						Args:    []string{"{{.FocusPath}}"},
					}),
					app.NewStrMsg(app.MsgSwitchMode, "default")),
				"esc": action("cancel", app.NewStrMsg(app.MsgSwitchMode, "default")),
			},
		},
	}
}

func deleteMode() Mode {
	return Mode{
		Name: "delete",
		KeyBindings: KeyBindings{
			OnKey: map[string]Action{
				"d": action("delete",
					app.NewStrMsg(app.MsgBashExec, `rm -ri -- "$PATHSTORM_FOCUS_PATH"`),
					app.NewStrMsg(app.MsgSwitchMode, "default"),
					app.NewMsg(app.MsgExplore)),
				"D": action("force delete",
					app.NewStrMsg(app.MsgBashExec, `rm -rf -- "$PATHSTORM_FOCUS_PATH"`),
					app.NewStrMsg(app.MsgSwitchMode, "default"),
					app.NewMsg(app.MsgExplore)),
				"esc": action("cancel", app.NewStrMsg(app.MsgSwitchMode, "default")),
			},
			Remaps: map[string]string{
				"x": "d",
			},
		},
	}
}

func actionMode() Mode {
	return Mode{
		Name: "action",
		KeyBindings: KeyBindings{
			OnKey: map[string]Action{
				"c": action("create", app.NewStrMsg(app.MsgSwitchMode, "create")),
				"d": action("delete", app.NewStrMsg(app.MsgSwitchMode, "delete")),
				"s": action("selection operations", app.NewStrMsg(app.MsgSwitchMode, "selection ops")),
				"!": action("shell",
					app.NewCallMsg(app.MsgCall, app.Command{Command: "bash"}),
					app.NewMsg(app.MsgExplore),
					app.NewStrMsg(app.MsgSwitchMode, "default")),
				"q":   action("quit", app.NewMsg(app.MsgQuit)),
				"esc": action("cancel", app.NewStrMsg(app.MsgSwitchMode, "default")),
			},
			OnNumber: actionp("go to index",
				app.NewMsg(app.MsgBufferInputFromKey),
				app.NewStrMsg(app.MsgSwitchMode, "number")),
		},
	}
}

func searchMode() Mode {
	return Mode{
		Name: "search",
		KeyBindings: KeyBindings{
			OnKey: map[string]Action{
				"enter": action("focus",
					app.NewMsg(app.MsgResetNodeFilters),
					app.NewMsg(app.MsgResetInputBuffer),
					app.NewStrMsg(app.MsgSwitchMode, "default")),
				"backspace": action("",
					app.NewMsg(app.MsgRemoveInputBufferLastCharacter),
					app.NewFilterKindMsg(app.MsgAddNodeFilterFromInput, app.FilterIRelativePathIs)),
				"esc": action("cancel",
					app.NewMsg(app.MsgResetNodeFilters),
					app.NewMsg(app.MsgResetInputBuffer),
					app.NewStrMsg(app.MsgSwitchMode, "default")),
				"ctrl-c": action("", app.NewMsg(app.MsgTerminate)),
			},
			Default: actionp("",
				app.NewMsg(app.MsgBufferInputFromKey),
				app.NewMsg(app.MsgRemoveLastNodeFilter),
				app.NewFilterKindMsg(app.MsgAddNodeFilterFromInput, app.FilterRelativePathDoesContain)),
		},
	}
}

func filterMode() Mode {
	return Mode{
		Name: "filter",
		KeyBindings: KeyBindings{
			OnKey: map[string]Action{
				"r": action("relative path does contain",
					app.NewStrMsg(app.MsgSetInputBuffer, ""),
					app.NewStrMsg(app.MsgSwitchMode, "relative path does contain")),
				"R": action("relative path does not contain",
					app.NewStrMsg(app.MsgSetInputBuffer, ""),
					app.NewStrMsg(app.MsgSwitchMode, "relative path does not contain")),
				"backspace": action("remove last filter", app.NewMsg(app.MsgRemoveLastNodeFilter)),
				"ctrl-r":    action("reset filters", app.NewMsg(app.MsgResetNodeFilters)),
				"enter":     action("done", app.NewStrMsg(app.MsgSwitchMode, "default")),
				"esc":       action("cancel", app.NewStrMsg(app.MsgSwitchMode, "default")),
			},
		},
	}
}

// filterInputMode is the shared shape of the two live filter input
// modes.
func filterInputMode(name string, filter app.NodeFilter) Mode {
	return Mode{
		Name: name,
		KeyBindings: KeyBindings{
			OnKey: map[string]Action{
				"enter": action("apply filter",
					app.NewMsg(app.MsgResetInputBuffer),
					app.NewStrMsg(app.MsgSwitchMode, "default")),
				"backspace": action("",
					app.NewMsg(app.MsgRemoveInputBufferLastCharacter),
					app.NewMsg(app.MsgRemoveLastNodeFilter),
					app.NewFilterKindMsg(app.MsgAddNodeFilterFromInput, filter)),
				"esc": action("cancel",
					app.NewMsg(app.MsgRemoveLastNodeFilter),
					app.NewMsg(app.MsgResetInputBuffer),
					app.NewStrMsg(app.MsgSwitchMode, "default")),
				"ctrl-c": action("", app.NewMsg(app.MsgTerminate)),
			},
			Default: actionp("",
				app.NewMsg(app.MsgBufferInputFromKey),
				app.NewMsg(app.MsgRemoveLastNodeFilter),
				app.NewFilterKindMsg(app.MsgAddNodeFilterFromInput, filter)),
		},
	}
}

func sortMode() Mode {
	sorter := func(s app.NodeSorter, reverse bool) []app.ExternalMsg {
		return []app.ExternalMsg{
			app.NewSorterMsg(app.MsgAddNodeSorter, app.NodeSorterApplicable{Sorter: s, Reverse: reverse}),
			app.NewStrMsg(app.MsgSwitchMode, "default"),
		}
	}
	return Mode{
		Name: "sort",
		KeyBindings: KeyBindings{
			OnKey: map[string]Action{
				"r": action("by relative path", sorter(app.SortByRelativePath, false)...),
				"R": action("by relative path reverse", sorter(app.SortByRelativePath, true)...),
				"e": action("by extension", sorter(app.SortByExtension, false)...),
				"E": action("by extension reverse", sorter(app.SortByExtension, true)...),
				"s": action("by size", sorter(app.SortBySize, false)...),
				"S": action("by size reverse", sorter(app.SortBySize, true)...),
				"m": action("by mime essence", sorter(app.SortByMimeEssence, false)...),
				"M": action("by mime essence reverse", sorter(app.SortByMimeEssence, true)...),
				"backspace": action("remove last sorter",
					app.NewMsg(app.MsgRemoveLastNodeSorter)),
				"!": action("reverse sorters",
					app.NewMsg(app.MsgReverseNodeSorters),
					app.NewStrMsg(app.MsgSwitchMode, "default")),
				"ctrl-r": action("reset sorters", app.NewMsg(app.MsgResetNodeSorters)),
				"enter":  action("done", app.NewStrMsg(app.MsgSwitchMode, "default")),
				"esc":    action("cancel", app.NewStrMsg(app.MsgSwitchMode, "default")),
			},
		},
	}
}
