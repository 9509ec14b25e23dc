package app

import "fmt"

// HelpMenuLineKind distinguishes the two help menu line forms.
type HelpMenuLineKind uint8

const (
	// HelpParagraphLine is free-form explanatory text.
	HelpParagraphLine HelpMenuLineKind = iota
	// HelpKeyMapLine is a key label with its description.
	HelpKeyMapLine
)

// HelpMenuLine is one line of a mode's help menu, consumed by the
// rendering layer.
type HelpMenuLine struct {
	Kind HelpMenuLineKind

	// Key is the key label for HelpKeyMapLine; empty for paragraphs.
	Key string

	// Text is the paragraph text or the key description.
	Text string
}

// HelpParagraph returns a paragraph line.
func HelpParagraph(text string) HelpMenuLine {
	return HelpMenuLine{Kind: HelpParagraphLine, Text: text}
}

// HelpKeyMap returns a key-map line.
func HelpKeyMap(key, text string) HelpMenuLine {
	return HelpMenuLine{Kind: HelpKeyMapLine, Key: key, Text: text}
}

// String renders the line for plain-text output.
func (l HelpMenuLine) String() string {
	if l.Kind == HelpKeyMapLine {
		return fmt.Sprintf(" %-14s %s", l.Key, l.Text)
	}
	return l.Text
}
