package steno

import "testing"

func TestLayout(t *testing.T) {
	testCases := []struct {
		keys     []string
		expected string
	}{
		{[]string{"T-", "A-", "-E", "-U", "-P"}, "  T     A  EU  P       "},
		{[]string{"K-", "A-", "-T"}, "   K    A          T   "},
		{[]string{"*"}, "          *            "},
		{nil, "                       "},
		// number keys light up the letter and the number bar
		{[]string{"1-", "-9"}, "#S                 T   "},
		{[]string{"#", "S-"}, "#S                     "},
	}

	for _, tc := range testCases {
		got := English.Layout(tc.keys)
		if got != tc.expected {
			t.Errorf("Layout(%v) = %q, expected %q", tc.keys, got, tc.expected)
		}
	}
}

func TestParseOutline(t *testing.T) {
	outline := ParseOutline("KAT/TKOG")
	if outline.Len() != 2 {
		t.Fatalf("expected 2 strokes, got %d", outline.Len())
	}
	if outline.String() != "KAT/TKOG" {
		t.Errorf("String() = %q", outline.String())
	}
	if ParseOutline("") != nil {
		t.Errorf("empty outline should be nil")
	}
}
