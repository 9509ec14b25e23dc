package app

import "testing"

func TestHelpMenuLineString(t *testing.T) {
	tests := []struct {
		name string
		line HelpMenuLine
		want string
	}{
		{"paragraph", HelpParagraph("### navigation"), "### navigation"},
		{"key map", HelpKeyMap("q", "quit"), " q              quit"},
		{"wide key label", HelpKeyMap("[spcl chars]", "go to index"), " [spcl chars]   go to index"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.line.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
