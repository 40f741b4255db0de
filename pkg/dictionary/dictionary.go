// Package dictionary loads steno dictionaries and answers the lookups the
// tape needs: which dictionary defines an outline, and which outlines
// produce a given text.
package dictionary

import (
	"fmt"
	"io"
	"slices"

	"github.com/tchap/go-patricia/v2/patricia"
	"github.com/vmihailenco/msgpack/v5"
)

// Dictionary maps outlines to translations. Outlines are kept in the order
// they were added, which is file order for loaded dictionaries.
type Dictionary struct {
	Path    string
	entries map[string]string
	order   []string
	// reverse maps a translation to its outlines ([]string).
	reverse *patricia.Trie
}

// New creates an empty dictionary.
func New(path string) *Dictionary {
	return &Dictionary{
		Path:    path,
		entries: make(map[string]string),
		reverse: patricia.NewTrie(),
	}
}

// Set defines outline as translation, replacing any previous definition.
func (d *Dictionary) Set(outline, translation string) {
	if old, exists := d.entries[outline]; exists {
		if old == translation {
			return
		}
		d.unindex(old, outline)
	} else {
		d.order = append(d.order, outline)
	}
	d.entries[outline] = translation
	d.index(translation, outline)
}

func (d *Dictionary) index(translation, outline string) {
	if translation == "" {
		return
	}
	key := patricia.Prefix(translation)
	var outlines []string
	if item := d.reverse.Get(key); item != nil {
		outlines = item.([]string)
	}
	d.reverse.Set(key, append(outlines, outline))
}

func (d *Dictionary) unindex(translation, outline string) {
	if translation == "" {
		return
	}
	key := patricia.Prefix(translation)
	item := d.reverse.Get(key)
	if item == nil {
		return
	}
	outlines := slices.DeleteFunc(slices.Clone(item.([]string)), func(o string) bool { return o == outline })
	if len(outlines) == 0 {
		d.reverse.Delete(key)
		return
	}
	d.reverse.Set(key, outlines)
}

// Lookup returns the translation of outline.
func (d *Dictionary) Lookup(outline string) (string, bool) {
	translation, ok := d.entries[outline]
	return translation, ok
}

// Contains reports whether outline is defined.
func (d *Dictionary) Contains(outline string) bool {
	_, ok := d.entries[outline]
	return ok
}

// ReverseLookup returns the outlines translating to translation, in the
// order they were defined.
func (d *Dictionary) ReverseLookup(translation string) []string {
	if translation == "" {
		return nil
	}
	if item := d.reverse.Get(patricia.Prefix(translation)); item != nil {
		return slices.Clone(item.([]string))
	}
	return nil
}

// VisitPrefix calls visit for every translation starting with prefix.
func (d *Dictionary) VisitPrefix(prefix string, visit func(translation string) error) error {
	return d.reverse.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, _ patricia.Item) error {
		return visit(string(p))
	})
}

// Len returns the number of outlines defined.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// WriteMsgpack writes the dictionary as a msgpack map in definition order.
func (d *Dictionary) WriteMsgpack(w io.Writer) error {
	enc := msgpack.NewEncoder(w)
	if err := enc.EncodeMapLen(len(d.order)); err != nil {
		return fmt.Errorf("failed to write map header: %w", err)
	}
	for _, outline := range d.order {
		if err := enc.EncodeString(outline); err != nil {
			return fmt.Errorf("failed to write outline %s: %w", outline, err)
		}
		if err := enc.EncodeString(d.entries[outline]); err != nil {
			return fmt.Errorf("failed to write translation of %s: %w", outline, err)
		}
	}
	return nil
}
