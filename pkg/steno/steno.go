// Package steno holds the stroke-level vocabulary shared by the tape and the
// dictionaries: strokes as the host reports them, outlines, and the key
// system used to lay a stroke out at a fixed width.
package steno

import (
	"strings"
	"time"
)

// Stroke is one raw input event as reported by the host.
type Stroke struct {
	// Keys pressed, in system notation ("S-", "-T", "#", "1-", ...).
	Keys []string
	// RTFCRE is the host's textual rendering of the stroke ("KAT", "1-9").
	RTFCRE string
	// IsCorrection marks an explicit undo stroke.
	IsCorrection bool
	Time         time.Time
}

// Outline is a sequence of strokes, each in RTF/CRE notation.
type Outline []string

// ParseOutline splits "KAT/TKOG" into its strokes.
func ParseOutline(s string) Outline {
	if s == "" {
		return nil
	}
	return Outline(strings.Split(s, "/"))
}

// Len is the number of strokes in the outline.
func (o Outline) Len() int {
	return len(o)
}

func (o Outline) String() string {
	return strings.Join(o, "/")
}
