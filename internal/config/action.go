package config

import (
	"github.com/dshills/pathstorm/internal/app"
)

// Action is one bound action: optional help text plus the ordered list
// of messages the binding sends to the runtime.
type Action struct {
	Help     *string           `yaml:"help"`
	Messages []app.ExternalMsg `yaml:"messages"`
}

// Sanitized returns the action as usable in the given session. ok is
// false when the binding must be dropped: an action with no messages is
// void regardless of session, and in a read-only session an action
// survives only if every one of its messages is read-only safe. There is
// no partial message filtering.
func (a Action) Sanitized(readOnly bool) (Action, bool) {
	if len(a.Messages) == 0 {
		return Action{}, false
	}
	if !readOnly {
		return a, true
	}
	for _, m := range a.Messages {
		if !m.IsReadOnly() {
			return Action{}, false
		}
	}
	return a, true
}

// Extend merges overlay onto a. Help is overlay-biased; Messages are
// always replaced wholesale, never concatenated.
func (a Action) Extend(overlay Action) Action {
	if overlay.Help != nil {
		a.Help = overlay.Help
	}
	a.Messages = overlay.Messages
	return a
}
