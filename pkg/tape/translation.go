// Package tape renders stroke events as lines of a steno log and works out
// shorter outlines for what was just written.
//
// The host owns the translation stack; on every stroke the tape receives a
// read-only snapshot of it (a History) and never keeps it past the call.
package tape

import (
	"strings"
	"unicode"

	"github.com/bastiangx/tapeytape/pkg/steno"
)

// DefaultSpace separates words when an action does not set its own.
const DefaultSpace = " "

// Action is one formatting instruction produced for a translation.
type Action struct {
	// Text is nil for actions without visible output (pure commands).
	Text *string
	// DeleteCount is the number of trailing characters removed from the
	// output before Text is appended. It may reach into earlier translations.
	DeleteCount int
	PrevAttach  bool
	NextAttach  bool
	// Glue marks fingerspelled output.
	Glue bool
	// Space is the word separator; empty means DefaultSpace.
	Space string
}

func (a Action) separator() string {
	if a.Space == "" {
		return DefaultSpace
	}
	return a.Space
}

// Translation is one entry of the host's translation stack.
type Translation struct {
	// Strokes holds the RTF/CRE form of every stroke the entry consumed.
	Strokes []string
	// English is the dictionary definition, nil for untranslates.
	English *string
	Actions []Action
	// Replaced is set when creating this entry removed earlier output.
	Replaced bool
}

// History is a snapshot of the translation stack, oldest first.
type History []Translation

// Outline returns the strokes of the translation as an outline.
func (t Translation) Outline() steno.Outline {
	return steno.Outline(t.Strokes)
}

// StrokeCount is the number of strokes the translation consumed.
func (t Translation) StrokeCount() int {
	return len(t.Strokes)
}

// Definition returns the definition, or "" for untranslates.
func (t Translation) Definition() string {
	if t.English == nil {
		return ""
	}
	return *t.English
}

// IsFingerspelling reports whether any action was produced letter by letter.
func (t Translation) IsFingerspelling() bool {
	for _, action := range t.Actions {
		if action.Glue {
			return true
		}
	}
	return false
}

// IsWhitespace reports whether the translation produced nothing but
// whitespace. A translation without actions counts as whitespace.
func (t Translation) IsWhitespace() bool {
	for _, action := range t.Actions {
		if action.Text != nil && *action.Text != "" && !isSpace(*action.Text) {
			return false
		}
	}
	return true
}

// IsRetro reports whether the definition acts on previous output.
func (t Translation) IsRetro() bool {
	definition := t.Definition()
	for _, start := range []string{"{*", "{:retro_", "=retrospective"} {
		if strings.HasPrefix(definition, start) {
			return true
		}
	}
	return false
}

// startsLowercase reports whether the definition says the written form
// begins with a lowercase letter: "word", "{pro^}", "{^ing}" or "{^}ing".
func (t Translation) startsLowercase() bool {
	d := []rune(t.Definition())
	if len(d) == 0 {
		return false
	}
	if unicode.IsLower(d[0]) {
		return true
	}
	if d[0] != '{' {
		return false
	}
	s := string(d)
	switch {
	case len(d) > 1 && strings.HasSuffix(s, "^}") && unicode.IsLower(d[1]):
		return true
	case len(d) > 2 && strings.HasPrefix(s, "{^") && unicode.IsLower(d[2]):
		return true
	case len(d) > 3 && strings.HasPrefix(s, "{^}") && unicode.IsLower(d[3]):
		return true
	}
	return false
}

func isSpace(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
