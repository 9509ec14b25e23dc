package config

import (
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/dshills/pathstorm/internal/app"
	"github.com/dshills/pathstorm/internal/ui"
)

func TestExtendedEmptyOverlay(t *testing.T) {
	overlay := Config{Version: "v0.5.3"}
	got := overlay.Extended()

	want := Default()
	want.Version = "v0.5.3"
	if !reflect.DeepEqual(got, want) {
		t.Error("Extended() of an empty overlay should be the baseline with the overlay's version")
	}
}

func TestExtendedBaselineIdempotent(t *testing.T) {
	// Merging the baseline onto itself must reproduce the baseline
	// exactly: every merge rule is identity-preserving on equal inputs.
	got := Default().Extended()
	if !reflect.DeepEqual(got, Default()) {
		t.Error("Extended() of the baseline should reproduce the baseline")
	}
}

func TestExtendedScalarBias(t *testing.T) {
	overlay := Config{
		Version: Version,
		General: GeneralConfig{
			ShowHidden: boolp(true),
			FocusUi:    UiConfig{Prefix: strp("> ")},
		},
	}
	got := overlay.Extended()

	if got.General.ShowHidden == nil || !*got.General.ShowHidden {
		t.Error("overlay show_hidden should win")
	}
	if got.General.FocusUi.Prefix == nil || *got.General.FocusUi.Prefix != "> " {
		t.Error("overlay focus prefix should win")
	}
	// Untouched siblings keep baseline values.
	if got.General.FocusUi.Suffix == nil || *got.General.FocusUi.Suffix != *Default().General.FocusUi.Suffix {
		t.Error("focus suffix should come from the baseline")
	}
	if got.General.Table.Tree == nil {
		t.Error("tree glyphs should come from the baseline")
	}
}

func TestExtendedOrderedSequencesReplaceWholesale(t *testing.T) {
	overlay := Config{
		Version: Version,
		General: GeneralConfig{
			Table: TableConfig{
				ColWidths: []Constraint{{Kind: ConstraintPercentage, Value: 100}},
			},
			InitialSorting: SorterList{
				{Sorter: app.SortBySize, Reverse: true},
			},
		},
	}
	got := overlay.Extended()

	if len(got.General.Table.ColWidths) != 1 {
		t.Errorf("col_widths should replace wholesale, got %d entries", len(got.General.Table.ColWidths))
	}
	if len(got.General.InitialSorting) != 1 || got.General.InitialSorting[0].Sorter != app.SortBySize {
		t.Errorf("initial_sorting should replace wholesale, got %+v", got.General.InitialSorting)
	}
}

func TestExtendedNodeTypeEntriesMergeSubFields(t *testing.T) {
	overlay := Config{
		Version: Version,
		NodeTypes: NodeTypesConfig{
			Extension: map[string]NodeTypeConfig{
				// The baseline styles "go"; restyle it without meta.
				"go": {Style: ui.Style{Fg: strp("green")}},
				"rs": {Style: ui.Style{Fg: strp("orange")}},
			},
			Special: map[string]NodeTypeConfig{
				"go.mod": {Meta: map[string]string{"icon": "m"}},
			},
		},
	}
	got := overlay.Extended()

	goCfg := got.NodeTypes.Extension["go"]
	if goCfg.Style.Fg == nil || *goCfg.Style.Fg != "green" {
		t.Error("overlay style for extension go should win")
	}
	if _, ok := got.NodeTypes.Extension["rs"]; !ok {
		t.Error("overlay-only extension rs missing")
	}

	// An entry present on both sides merges sub-fields: the baseline's
	// style survives an overlay that only adds meta.
	gomod := got.NodeTypes.Special["go.mod"]
	if gomod.Style.Fg == nil || *gomod.Style.Fg != "teal" {
		t.Errorf("baseline style for go.mod lost in merge: %+v", gomod.Style)
	}
	if gomod.Meta["icon"] != "m" {
		t.Errorf("overlay meta for go.mod lost in merge: %+v", gomod.Meta)
	}
}

func TestExtendedDoesNotMutateInputs(t *testing.T) {
	overlay := Config{
		Version: Version,
		Modes: ModesConfig{
			Builtin: BuiltinModesConfig{
				Default: Mode{
					KeyBindings: KeyBindings{
						OnKey: map[string]Action{
							"Q": action("quit to cwd", app.NewMsg(app.MsgPrintResultAndQuit)),
						},
					},
				},
			},
		},
	}
	snapshot := Config{
		Version: Version,
		Modes: ModesConfig{
			Builtin: BuiltinModesConfig{
				Default: Mode{
					KeyBindings: KeyBindings{
						OnKey: map[string]Action{
							"Q": action("quit to cwd", app.NewMsg(app.MsgPrintResultAndQuit)),
						},
					},
				},
			},
		},
	}

	got := overlay.Extended()

	if !reflect.DeepEqual(overlay, snapshot) {
		t.Error("Extended() mutated the overlay")
	}
	if _, ok := got.Modes.Builtin.Default.KeyBindings.OnKey["Q"]; !ok {
		t.Error("overlay binding Q missing from extended config")
	}
	if _, ok := got.Modes.Builtin.Default.KeyBindings.OnKey["q"]; !ok {
		t.Error("baseline binding q missing from extended config")
	}
}

func TestConfigStrictDecode(t *testing.T) {
	doc := `
version: v0.5.4
general:
  show_hidden: true
`
	var cfg Config
	if err := yaml.Unmarshal([]byte(doc), &cfg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if cfg.Version != "v0.5.4" {
		t.Errorf("version = %q", cfg.Version)
	}
	if cfg.General.ShowHidden == nil || !*cfg.General.ShowHidden {
		t.Error("show_hidden not decoded")
	}
}

func TestDefaultIsFreshPerCall(t *testing.T) {
	a, b := Default(), Default()
	a.Modes.Builtin.Default.KeyBindings.OnKey["zz"] = action("test", app.NewMsg(app.MsgQuit))
	if _, ok := b.Modes.Builtin.Default.KeyBindings.OnKey["zz"]; ok {
		t.Error("Default() values share map storage")
	}
}
