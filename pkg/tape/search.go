package tape

import (
	"strconv"
	"strings"

	"github.com/bastiangx/tapeytape/pkg/steno"
	"github.com/charmbracelet/log"
)

// DefaultWindows is how many tails are looked up per stroke by default.
const DefaultWindows = 10

// ReverseLookup finds the outlines that translate to a piece of text.
type ReverseLookup interface {
	ReverseLookup(text string) ([]steno.Outline, error)
}

// LookupFunc adapts an ordinary function to ReverseLookup.
type LookupFunc func(text string) ([]steno.Outline, error)

func (f LookupFunc) ReverseLookup(text string) ([]steno.Outline, error) {
	return f(text)
}

// Group holds the suggestions found for one window.
type Group struct {
	// Rank is the 1-based position of the window among the tails; 1 is
	// the window holding only the latest translation (or spelled word).
	Rank     int
	Outlines []steno.Outline
}

// Search looks up the tails of history, at most limit of them, and keeps
// the outlines with fewer strokes than the window actually took. Lookup
// errors count as no outlines.
func Search(history History, lookup ReverseLookup, limit int) []Group {
	if limit <= 0 {
		limit = DefaultWindows
	}

	var groups []Group
	rank := 0
	for window := range Tails(history) {
		rank++
		strokes := 0
		for _, t := range window {
			strokes += t.StrokeCount()
		}

		var outlines []steno.Outline
		for _, key := range SuggestionKeys(window) {
			found, err := lookup.ReverseLookup(key)
			if err != nil {
				log.Debugf("Reverse lookup of %q failed: %v", key, err)
				continue
			}
			for _, outline := range found {
				if outline.Len() < strokes {
					outlines = append(outlines, outline)
				}
			}
		}
		if len(outlines) > 0 {
			groups = append(groups, Group{Rank: rank, Outlines: outlines})
		}
		if rank == limit {
			break
		}
	}
	return groups
}

// FormatGroups renders groups for the suggestions field: each group is the
// marker followed by its outlines, prefixed by its rank unless it is the
// first window.
func FormatGroups(groups []Group, marker string) string {
	chunks := make([]string, 0, len(groups))
	for _, g := range groups {
		var b strings.Builder
		if g.Rank != 1 {
			b.WriteString(strconv.Itoa(g.Rank))
		}
		b.WriteString(marker)
		for i, outline := range g.Outlines {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(outline.String())
		}
		chunks = append(chunks, b.String())
	}
	return strings.Join(chunks, " ")
}
