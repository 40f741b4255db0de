package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMakeAbsolute(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	base := filepath.Join(string(filepath.Separator), "cfg")

	testCases := []struct {
		path string
		want string
	}{
		{"tape.txt", filepath.Join(base, "tape.txt")},
		{"dicts/../main.json", filepath.Join(base, "main.json")},
		{"~/steno/main.json", filepath.Join(home, "steno", "main.json")},
		{"~user/main.json", filepath.Join(base, "~user", "main.json")},
		{filepath.Join(base, "x", "y.json"), filepath.Join(base, "x", "y.json")},
	}

	for _, tc := range testCases {
		if got := MakeAbsolute(tc.path, base); got != tc.want {
			t.Errorf("MakeAbsolute(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestExtractValues(t *testing.T) {
	values, err := ParseTOML(`
width = 5
unit = 0.25
whole = 2
name = "tape"
list = ["a", "b"]
mixed = ["a", 1]

[names]
"main.json" = "M"
`)
	if err != nil {
		t.Fatalf("ParseTOML failed: %v", err)
	}

	if n, ok := ExtractInt64(values, "width"); !ok || n != 5 {
		t.Errorf("ExtractInt64(width) = %d, %v", n, ok)
	}
	if _, ok := ExtractInt64(values, "unit"); ok {
		t.Error("ExtractInt64 should reject floats")
	}
	if f, ok := ExtractFloat(values, "whole"); !ok || f != 2 {
		t.Errorf("ExtractFloat(whole) = %v, %v", f, ok)
	}
	if s, ok := ExtractString(values, "name"); !ok || s != "tape" {
		t.Errorf("ExtractString(name) = %q, %v", s, ok)
	}
	if l, ok := ExtractStringSlice(values, "list"); !ok || len(l) != 2 || l[1] != "b" {
		t.Errorf("ExtractStringSlice(list) = %v, %v", l, ok)
	}
	if _, ok := ExtractStringSlice(values, "mixed"); ok {
		t.Error("ExtractStringSlice should reject mixed arrays")
	}
	if m, ok := ExtractStringMap(values, "names"); !ok || m["main.json"] != "M" {
		t.Errorf("ExtractStringMap(names) = %v, %v", m, ok)
	}
}

func TestOpenAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tape.txt")
	for _, line := range []string{"one\n", "two\n"} {
		f, err := OpenAppend(path)
		if err != nil {
			t.Fatalf("OpenAppend failed: %v", err)
		}
		if _, err := f.WriteString(line); err != nil {
			t.Fatal(err)
		}
		f.Close()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "one\ntwo\n" {
		t.Errorf("file = %q", data)
	}
}
