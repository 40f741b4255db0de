package dictionary

import (
	"errors"
	"testing"

	"github.com/bastiangx/tapeytape/pkg/steno"
)

func TestCacheHitsAndEviction(t *testing.T) {
	c := NewCache(NewStack(dict("main.json",
		"KAT", "cat",
		"TKOG", "dog",
		"PWEURD", "bird",
	)), 2)

	lookup := func(text string, want string) {
		t.Helper()
		got, err := c.ReverseLookup(text)
		if err != nil {
			t.Fatalf("ReverseLookup(%q) failed: %v", text, err)
		}
		if len(got) != 1 || got[0].String() != want {
			t.Errorf("ReverseLookup(%q) = %v, want %s", text, got, want)
		}
	}

	lookup("cat", "KAT")
	lookup("dog", "TKOG")
	lookup("cat", "KAT") // hit, dog is now the oldest
	lookup("bird", "PWEURD")

	stats := c.Stats()
	if stats["cachedTexts"] != 2 || stats["cacheHits"] != 1 {
		t.Errorf("Stats() = %v", stats)
	}
	if _, cached := c.outlines["dog"]; cached {
		t.Error("least recently used text should have been evicted")
	}
	if _, cached := c.outlines["cat"]; !cached {
		t.Error("recently used text should still be cached")
	}
}

func TestCacheReturnsCopies(t *testing.T) {
	c := NewCache(NewStack(dict("main.json", "KAT", "cat")), 0)
	first, _ := c.ReverseLookup("cat")
	first[0] = steno.ParseOutline("TKOG")

	second, _ := c.ReverseLookup("cat")
	if second[0].String() != "KAT" {
		t.Errorf("cached outlines were modified through a returned slice: %v", second)
	}
	if owner := c.Owner(steno.ParseOutline("KAT")); owner != "main.json" {
		t.Errorf("Owner(KAT) = %q", owner)
	}
}

func TestCacheDoesNotCacheErrors(t *testing.T) {
	c := NewCache(NewStack(), 0)
	if _, err := c.ReverseLookup("cat"); !errors.Is(err, ErrNoDictionaries) {
		t.Errorf("ReverseLookup error = %v", err)
	}
	if n := c.Stats()["cachedTexts"]; n != 0 {
		t.Errorf("cachedTexts = %d after an error", n)
	}
}
