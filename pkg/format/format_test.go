package format

import "testing"

func TestExpand(t *testing.T) {
	items := Items{
		Bar:         "  +++",
		Steno:       "KAT",
		Defined:     "cat",
		Suggestions: ">KAT",
		Percent:     "%",
	}

	testCases := []struct {
		format   string
		expected string
	}{
		{"%b |%S| %D  %s", "  +++ |KAT| cat  >KAT"},
		{"%5D|", "cat  |"},
		{"%2D|", "cat|"},
		{"%x|", "|"},
		{"%3x|", "   |"},
		{"100%%", "100%"},
		{"no placeholders", "no placeholders"},
		// a trailing width without an item names the digit as the item
		{"%5", ""},
	}

	for _, tc := range testCases {
		got := Expand(tc.format, items)
		if got != tc.expected {
			t.Errorf("Expand(%q) = %q, expected %q", tc.format, got, tc.expected)
		}
	}
}

func TestExpandCountsRunes(t *testing.T) {
	got := Expand("%4D|", Items{Defined: "é"})
	if got != "é   |" {
		t.Errorf("got %q", got)
	}
}

func TestSplit(t *testing.T) {
	testCases := []struct {
		format string
		left   string
		right  string
	}{
		{"%b |%S| %D  %s", "%b |%S| %D", "  %s"},
		{"%s first", "", "%s first"},
		{"%D %10s end", "%D", " %10s end"},
		{"%D only", "%D only", ""},
		// an escaped percent sign does not start a placeholder
		{"%D %%s %s", "%D %%s", " %s"},
	}

	for _, tc := range testCases {
		left, right := Split(tc.format)
		if left != tc.left || right != tc.right {
			t.Errorf("Split(%q) = (%q, %q), expected (%q, %q)", tc.format, left, right, tc.left, tc.right)
		}
	}
}

func TestShowWhitespace(t *testing.T) {
	got := ShowWhitespace("{^\n^}\t")
	if got != `{^\n^}\t` {
		t.Errorf("got %q", got)
	}
}
