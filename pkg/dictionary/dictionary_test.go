package dictionary

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestDictionarySet(t *testing.T) {
	d := New("main.json")
	d.Set("KAT", "cat")
	d.Set("KA*T", "cat")
	d.Set("TKOG", "dog")

	if got := d.ReverseLookup("cat"); !slices.Equal(got, []string{"KAT", "KA*T"}) {
		t.Errorf("ReverseLookup(cat) = %v", got)
	}

	// redefining an outline moves it out of the old translation
	d.Set("KA*T", "kitty")
	if got := d.ReverseLookup("cat"); !slices.Equal(got, []string{"KAT"}) {
		t.Errorf("ReverseLookup(cat) after redefine = %v", got)
	}
	if got := d.ReverseLookup("kitty"); !slices.Equal(got, []string{"KA*T"}) {
		t.Errorf("ReverseLookup(kitty) = %v", got)
	}

	d.Set("TKOG", "hound")
	if got := d.ReverseLookup("dog"); got != nil {
		t.Errorf("ReverseLookup(dog) = %v, want nil", got)
	}
	if d.Len() != 3 {
		t.Errorf("Len() = %d, want 3", d.Len())
	}
	if tr, ok := d.Lookup("TKOG"); !ok || tr != "hound" {
		t.Errorf("Lookup(TKOG) = %q, %v", tr, ok)
	}
}

func TestDictionaryEmptyTranslation(t *testing.T) {
	d := New("")
	d.Set("TK-LS", "")
	if !d.Contains("TK-LS") {
		t.Error("empty translation should still be defined")
	}
	if got := d.ReverseLookup(""); got != nil {
		t.Errorf("ReverseLookup(\"\") = %v, want nil", got)
	}
}

func TestDictionaryVisitPrefix(t *testing.T) {
	d := New("")
	d.Set("KAT", "cat")
	d.Set("KAT/-S", "cats")
	d.Set("KA*T/A*LG", "catalog")
	d.Set("TKOG", "dog")

	var got []string
	err := d.VisitPrefix("cat", func(translation string) error {
		got = append(got, translation)
		return nil
	})
	if err != nil {
		t.Fatalf("VisitPrefix failed: %v", err)
	}
	slices.Sort(got)
	if want := []string{"cat", "catalog", "cats"}; !slices.Equal(got, want) {
		t.Errorf("VisitPrefix(cat) = %v, want %v", got, want)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "main.json", `{
  "KAT": "cat",
  "KA*T": "cat",
  "TKOG": "dog",
  "TPH-P": 3,
  "KW-GS": "\"{^}"
}`)

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if d.Path != path {
		t.Errorf("Path = %q, want %q", d.Path, path)
	}
	if d.Len() != 4 {
		t.Errorf("Len() = %d, want 4 (non-string entry skipped)", d.Len())
	}
	if got := d.ReverseLookup("cat"); !slices.Equal(got, []string{"KAT", "KA*T"}) {
		t.Errorf("file order not kept: %v", got)
	}
	if tr, _ := d.Lookup("KW-GS"); tr != `"{^}` {
		t.Errorf("escaped translation = %q", tr)
	}
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		name    string
		file    string
		content string
	}{
		{"not an object", "list.json", `["KAT", "cat"]`},
		{"invalid json", "broken.json", `{"KAT": `},
		{"unknown extension", "main.rtf", `{\rtf1}`},
		{"too small", "tiny.json", `{`},
		{"not a map", "bad.msgpack", "\x92\xa3KAT\xa3cat"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, tc.file, tc.content)
			if _, err := Load(path); err == nil {
				t.Errorf("Load(%s) should fail", tc.file)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Load of a missing file should fail")
	}
}

func TestCompile(t *testing.T) {
	src := writeFile(t, "main.json", `{"KAT": "cat", "TKOG": "dog", "KA*T": "cat"}`)
	dst := filepath.Join(t.TempDir(), "main.msgpack")

	n, err := Compile(src, dst)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if n != 3 {
		t.Errorf("Compile wrote %d entries, want 3", n)
	}

	d, err := Load(dst)
	if err != nil {
		t.Fatalf("Load of compiled dictionary failed: %v", err)
	}
	if got := d.ReverseLookup("cat"); !slices.Equal(got, []string{"KAT", "KA*T"}) {
		t.Errorf("compiled order = %v", got)
	}
	if tr, ok := d.Lookup("TKOG"); !ok || tr != "dog" {
		t.Errorf("Lookup(TKOG) = %q, %v", tr, ok)
	}
}

func TestWriteMsgpackEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := New("").WriteMsgpack(&buf); err != nil {
		t.Fatalf("WriteMsgpack failed: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x80}) {
		t.Errorf("empty dictionary encoded as %x, want 80", buf.Bytes())
	}
}
