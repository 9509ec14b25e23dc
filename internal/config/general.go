package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dshills/pathstorm/internal/app"
	"github.com/dshills/pathstorm/internal/ui"
)

// UiElement is a piece of renderable text: an optional format string
// plus its style.
type UiElement struct {
	Format *string  `yaml:"format"`
	Style  ui.Style `yaml:"style"`
}

// Extend merges overlay onto e.
func (e UiElement) Extend(overlay UiElement) UiElement {
	if overlay.Format != nil {
		e.Format = overlay.Format
	}
	e.Style = e.Style.Extend(overlay.Style)
	return e
}

// UiConfig decorates a table row state (default, focused, selected).
type UiConfig struct {
	Prefix *string  `yaml:"prefix"`
	Suffix *string  `yaml:"suffix"`
	Style  ui.Style `yaml:"style"`
}

// Extend merges overlay onto c.
func (c UiConfig) Extend(overlay UiConfig) UiConfig {
	if overlay.Prefix != nil {
		c.Prefix = overlay.Prefix
	}
	if overlay.Suffix != nil {
		c.Suffix = overlay.Suffix
	}
	c.Style = c.Style.Extend(overlay.Style)
	return c
}

// TableRowConfig describes one row (or the header) of the node table.
// Cols is ordered and replaces wholesale on merge.
type TableRowConfig struct {
	Cols   []UiElement `yaml:"cols"`
	Style  ui.Style    `yaml:"style"`
	Height *uint16     `yaml:"height"`
}

// Extend merges overlay onto r.
func (r TableRowConfig) Extend(overlay TableRowConfig) TableRowConfig {
	if overlay.Cols != nil {
		r.Cols = overlay.Cols
	}
	r.Style = r.Style.Extend(overlay.Style)
	if overlay.Height != nil {
		r.Height = overlay.Height
	}
	return r
}

// ConstraintKind selects how a column width constraint is interpreted.
type ConstraintKind string

const (
	ConstraintPercentage ConstraintKind = "percentage"
	ConstraintRatio      ConstraintKind = "ratio"
	ConstraintLength     ConstraintKind = "length"
	ConstraintMax        ConstraintKind = "max"
	ConstraintMin        ConstraintKind = "min"
)

// Constraint sizes one table column. Exactly one interpretation applies,
// selected by Kind: Value for percentage/length/max/min, Num/Den for
// ratio.
type Constraint struct {
	Kind  ConstraintKind
	Value uint16
	Num   uint32
	Den   uint32
}

// DefaultConstraint returns the constraint used when none is specified.
func DefaultConstraint() Constraint {
	return Constraint{Kind: ConstraintMin, Value: 1}
}

// UnmarshalYAML decodes the single-key mapping form: {percentage: 10},
// {ratio: [1, 2]}, {length: 5}, {max: 3} or {min: 1}.
func (c *Constraint) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return fmt.Errorf("line %d: constraint must be a single-key mapping", node.Line)
	}
	keyNode, valNode := node.Content[0], node.Content[1]
	kind := ConstraintKind(keyNode.Value)
	out := Constraint{Kind: kind}
	switch kind {
	case ConstraintPercentage, ConstraintLength, ConstraintMax, ConstraintMin:
		if err := valNode.Decode(&out.Value); err != nil {
			return fmt.Errorf("constraint %q: %w", keyNode.Value, err)
		}
	case ConstraintRatio:
		var pair [2]uint32
		if err := valNode.Decode(&pair); err != nil {
			return fmt.Errorf("constraint ratio: %w", err)
		}
		out.Num, out.Den = pair[0], pair[1]
	default:
		return fmt.Errorf("line %d: unknown constraint %q", keyNode.Line, keyNode.Value)
	}
	*c = out
	return nil
}

// MarshalYAML emits the same single-key mapping form.
func (c Constraint) MarshalYAML() (any, error) {
	switch c.Kind {
	case ConstraintPercentage, ConstraintLength, ConstraintMax, ConstraintMin:
		return map[string]uint16{string(c.Kind): c.Value}, nil
	case ConstraintRatio:
		return map[string][2]uint32{string(c.Kind): {c.Num, c.Den}}, nil
	}
	return nil, fmt.Errorf("unknown constraint %q", c.Kind)
}

// TreeGlyphs are the three branch-drawing glyphs of the node tree:
// the trunk continuation, a fork to a sibling, and the final branch.
type TreeGlyphs struct {
	Trunk UiElement
	Fork  UiElement
	End   UiElement
}

// UnmarshalYAML decodes the three-element sequence form.
func (t *TreeGlyphs) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode || len(node.Content) != 3 {
		return fmt.Errorf("line %d: tree must be a sequence of exactly 3 elements", node.Line)
	}
	parts := []*UiElement{&t.Trunk, &t.Fork, &t.End}
	for i, el := range node.Content {
		if err := decodeStrict(el, parts[i]); err != nil {
			return fmt.Errorf("tree element %d: %w", i, err)
		}
	}
	return nil
}

// MarshalYAML emits the sequence form.
func (t TreeGlyphs) MarshalYAML() (any, error) {
	return []UiElement{t.Trunk, t.Fork, t.End}, nil
}

// TableConfig describes the node table: header and row layout, branch
// glyphs, and column geometry. Tree and ColWidths replace wholesale on
// merge.
type TableConfig struct {
	Header     TableRowConfig `yaml:"header"`
	Row        TableRowConfig `yaml:"row"`
	Style      ui.Style       `yaml:"style"`
	Tree       *TreeGlyphs    `yaml:"tree"`
	ColSpacing *uint16        `yaml:"col_spacing"`
	ColWidths  []Constraint   `yaml:"col_widths"`
}

// UnmarshalYAML decodes the table, normalizing null col_widths entries
// to the default constraint. Null scalars never reach a value's own
// unmarshaler, so the fallback has to happen here.
func (t *TableConfig) UnmarshalYAML(node *yaml.Node) error {
	type plain TableConfig
	if err := decodeStrict(node, (*plain)(t)); err != nil {
		return err
	}
	for i, c := range t.ColWidths {
		if c.Kind == "" {
			t.ColWidths[i] = DefaultConstraint()
		}
	}
	return nil
}

// Extend merges overlay onto t.
func (t TableConfig) Extend(overlay TableConfig) TableConfig {
	t.Header = t.Header.Extend(overlay.Header)
	t.Row = t.Row.Extend(overlay.Row)
	t.Style = t.Style.Extend(overlay.Style)
	if overlay.Tree != nil {
		t.Tree = overlay.Tree
	}
	if overlay.ColSpacing != nil {
		t.ColSpacing = overlay.ColSpacing
	}
	if overlay.ColWidths != nil {
		t.ColWidths = overlay.ColWidths
	}
	return t
}

// LogsConfig styles the three log levels shown in the footer.
type LogsConfig struct {
	Info    UiElement `yaml:"info"`
	Success UiElement `yaml:"success"`
	Error   UiElement `yaml:"error"`
}

// Extend merges overlay onto l.
func (l LogsConfig) Extend(overlay LogsConfig) LogsConfig {
	l.Info = l.Info.Extend(overlay.Info)
	l.Success = l.Success.Extend(overlay.Success)
	l.Error = l.Error.Extend(overlay.Error)
	return l
}

// SortDirectionIdentifiersUi styles the forward and reverse direction
// markers of the sort-and-filter bar.
type SortDirectionIdentifiersUi struct {
	Forward UiElement `yaml:"forward"`
	Reverse UiElement `yaml:"reverse"`
}

// Extend merges overlay onto s.
func (s SortDirectionIdentifiersUi) Extend(overlay SortDirectionIdentifiersUi) SortDirectionIdentifiersUi {
	s.Forward = s.Forward.Extend(overlay.Forward)
	s.Reverse = s.Reverse.Extend(overlay.Reverse)
	return s
}

// SortAndFilterUi styles the sort-and-filter bar.
type SortAndFilterUi struct {
	Separator                UiElement                    `yaml:"separator"`
	SortDirectionIdentifiers SortDirectionIdentifiersUi   `yaml:"sort_direction_identifiers"`
	SorterIdentifiers        map[app.NodeSorter]UiElement `yaml:"sorter_identifiers"`
	FilterIdentifiers        map[app.NodeFilter]UiElement `yaml:"filter_identifiers"`
}

// Extend merges overlay onto s. Identifier maps union key-wise with
// overlay entries replacing wholesale.
func (s SortAndFilterUi) Extend(overlay SortAndFilterUi) SortAndFilterUi {
	s.Separator = s.Separator.Extend(overlay.Separator)
	s.SortDirectionIdentifiers = s.SortDirectionIdentifiers.Extend(overlay.SortDirectionIdentifiers)
	s.SorterIdentifiers = mergeMap(s.SorterIdentifiers, overlay.SorterIdentifiers)
	s.FilterIdentifiers = mergeMap(s.FilterIdentifiers, overlay.FilterIdentifiers)
	return s
}

// SorterList is an ordered, duplicate-free sequence of applicable
// sorters. Duplicates in a config document are dropped on decode, first
// occurrence winning.
type SorterList []app.NodeSorterApplicable

// UnmarshalYAML decodes and deduplicates the sequence.
func (sl *SorterList) UnmarshalYAML(node *yaml.Node) error {
	var raw []app.NodeSorterApplicable
	if err := decodeStrict(node, &raw); err != nil {
		return err
	}
	seen := make(map[app.NodeSorterApplicable]bool, len(raw))
	out := make(SorterList, 0, len(raw))
	for _, s := range raw {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	*sl = out
	return nil
}

// GeneralConfig holds behavior toggles and the display styling that is
// not node-type specific.
type GeneralConfig struct {
	ShowHidden      *bool           `yaml:"show_hidden"`
	ReadOnly        *bool           `yaml:"read_only"`
	Cursor          UiElement       `yaml:"cursor"`
	Prompt          UiElement       `yaml:"prompt"`
	Logs            LogsConfig      `yaml:"logs"`
	Table           TableConfig     `yaml:"table"`
	DefaultUi       UiConfig        `yaml:"default_ui"`
	FocusUi         UiConfig        `yaml:"focus_ui"`
	SelectionUi     UiConfig        `yaml:"selection_ui"`
	SortAndFilterUi SortAndFilterUi `yaml:"sort_and_filter_ui"`
	InitialSorting  SorterList      `yaml:"initial_sorting"`
}

// Extend merges overlay onto g. InitialSorting replaces wholesale.
func (g GeneralConfig) Extend(overlay GeneralConfig) GeneralConfig {
	if overlay.ShowHidden != nil {
		g.ShowHidden = overlay.ShowHidden
	}
	if overlay.ReadOnly != nil {
		g.ReadOnly = overlay.ReadOnly
	}
	g.Cursor = g.Cursor.Extend(overlay.Cursor)
	g.Prompt = g.Prompt.Extend(overlay.Prompt)
	g.Logs = g.Logs.Extend(overlay.Logs)
	g.Table = g.Table.Extend(overlay.Table)
	g.DefaultUi = g.DefaultUi.Extend(overlay.DefaultUi)
	g.FocusUi = g.FocusUi.Extend(overlay.FocusUi)
	g.SelectionUi = g.SelectionUi.Extend(overlay.SelectionUi)
	g.SortAndFilterUi = g.SortAndFilterUi.Extend(overlay.SortAndFilterUi)
	if overlay.InitialSorting != nil {
		g.InitialSorting = overlay.InitialSorting
	}
	return g
}

// decodeStrict decodes node into out, rejecting unknown fields.
// yaml.Node.Decode has no KnownFields switch, so the node is
// re-serialized through a strict decoder.
func decodeStrict(node *yaml.Node, out any) error {
	raw, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	return dec.Decode(out)
}
