package dictionary

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/bastiangx/tapeytape/pkg/steno"
	"github.com/charmbracelet/log"
)

// ErrNoDictionaries is returned by lookups on an empty stack.
var ErrNoDictionaries = errors.New("no dictionaries loaded")

// Stack is an ordered set of dictionaries, highest priority first. An
// outline defined by a higher dictionary shadows the same outline below it.
type Stack struct {
	dicts []*Dictionary
}

// Entry is one translation with the outlines that write it.
type Entry struct {
	Translation string
	Outlines    []steno.Outline
}

// NewStack creates a stack from dictionaries in priority order.
func NewStack(dicts ...*Dictionary) *Stack {
	return &Stack{dicts: dicts}
}

// LoadStack loads every path in priority order. Files that fail to load are
// skipped; their errors are joined into the returned error.
func LoadStack(paths []string) (*Stack, error) {
	var errs []error
	s := &Stack{}
	for _, path := range paths {
		d, err := Load(path)
		if err != nil {
			log.Warnf("Skipping dictionary %s: %v", path, err)
			errs = append(errs, fmt.Errorf("dictionary %s: %w", path, err))
			continue
		}
		s.dicts = append(s.dicts, d)
	}
	log.Debugf("Dictionary stack ready: %d of %d loaded", len(s.dicts), len(paths))
	return s, errors.Join(errs...)
}

// Dictionaries returns the dictionaries in priority order.
func (s *Stack) Dictionaries() []*Dictionary {
	return s.dicts
}

// Len returns the number of dictionaries in the stack.
func (s *Stack) Len() int {
	return len(s.dicts)
}

func (s *Stack) owner(outline string) *Dictionary {
	for _, d := range s.dicts {
		if d.Contains(outline) {
			return d
		}
	}
	return nil
}

// Lookup translates outline using the highest dictionary defining it.
func (s *Stack) Lookup(outline steno.Outline) (string, bool) {
	if d := s.owner(outline.String()); d != nil {
		return d.Lookup(outline.String())
	}
	return "", false
}

// Owner returns the path of the dictionary that translates outline, or ""
// if none does.
func (s *Stack) Owner(outline steno.Outline) string {
	if d := s.owner(outline.String()); d != nil {
		return d.Path
	}
	return ""
}

// ReverseLookup returns the outlines that currently write text, shortest
// first. Outlines shadowed by a higher dictionary are left out.
func (s *Stack) ReverseLookup(text string) ([]steno.Outline, error) {
	if len(s.dicts) == 0 {
		return nil, ErrNoDictionaries
	}

	var found []string
	for i, d := range s.dicts {
		for _, outline := range d.ReverseLookup(text) {
			if slices.Contains(found, outline) || s.shadowed(outline, i) {
				continue
			}
			found = append(found, outline)
		}
	}

	outlines := make([]steno.Outline, len(found))
	for i, raw := range found {
		outlines[i] = steno.ParseOutline(raw)
	}
	sort.SliceStable(outlines, func(i, j int) bool {
		return outlines[i].Len() < outlines[j].Len()
	})
	return outlines, nil
}

func (s *Stack) shadowed(outline string, level int) bool {
	for _, d := range s.dicts[:level] {
		if d.Contains(outline) {
			return true
		}
	}
	return false
}

// Browse returns up to limit translations starting with prefix, sorted,
// each with its outlines. A limit of zero or less means no limit.
func (s *Stack) Browse(prefix string, limit int) []Entry {
	seen := make(map[string]bool)
	var translations []string
	for _, d := range s.dicts {
		_ = d.VisitPrefix(prefix, func(translation string) error {
			if !seen[translation] {
				seen[translation] = true
				translations = append(translations, translation)
			}
			return nil
		})
	}
	sort.Strings(translations)

	var entries []Entry
	for _, translation := range translations {
		outlines, _ := s.ReverseLookup(translation)
		if len(outlines) == 0 {
			// every outline shadowed
			continue
		}
		entries = append(entries, Entry{Translation: translation, Outlines: outlines})
		if limit > 0 && len(entries) == limit {
			break
		}
	}
	return entries
}
