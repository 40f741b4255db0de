package tape

import (
	"slices"
	"testing"
)

func checkKeys(t *testing.T, window History, expected []string) {
	t.Helper()
	got := SuggestionKeys(window)
	if !slices.Equal(got, expected) {
		t.Errorf("SuggestionKeys = %q, expected %q", got, expected)
	}
}

func TestSuggestionKeysPlain(t *testing.T) {
	checkKeys(t, History{word("cat")}, []string{"cat"})
	checkKeys(t, History{word("the"), word("cat")}, []string{"the cat"})
	checkKeys(t, History{tr("{#Return}")}, nil)
	checkKeys(t, nil, nil)
}

func TestSuggestionKeysEmptyAttach(t *testing.T) {
	checkKeys(t, History{tr("{^}", Action{PrevAttach: true, NextAttach: true, Text: text("")})}, nil)
}

func TestSuggestionKeysAffixesInDefinition(t *testing.T) {
	h := History{
		tr("{pro^}", Action{NextAttach: true, Text: text("pro")}),
		tr("cure", Action{PrevAttach: true, Text: text("cure")}),
		tr("{^ment}", Action{PrevAttach: true, Text: text("ment")}),
	}
	checkKeys(t, h[:1], []string{"{pro^}", "pro{^}"})
	checkKeys(t, h[1:2], []string{"{^cure}", "{^}cure"})
	checkKeys(t, h[2:], []string{"{^ment}", "{^}ment"})
	checkKeys(t, h[:2], []string{"procure"})
	checkKeys(t, h[1:], []string{"{^curement}", "{^}curement"})
	checkKeys(t, h, []string{"procurement"})
}

func TestSuggestionKeysAffixesWithAttach(t *testing.T) {
	attach := tr("{^}", Action{PrevAttach: true, NextAttach: true, Text: text("")})
	h := History{
		word("mid"),
		attach,
		tr("ship", Action{PrevAttach: true, Text: text("ship")}),
		attach,
		tr("man", Action{PrevAttach: true, Text: text("man")}),
	}
	checkKeys(t, h[:2], []string{"{mid^}", "mid{^}"})
	checkKeys(t, h[1:4], []string{"{^ship^}", "{^}ship{^}"})
	checkKeys(t, h[3:], []string{"{^man}", "{^}man"})
	checkKeys(t, h[:4], []string{"{midship^}", "midship{^}"})
	checkKeys(t, h[1:], []string{"{^shipman}", "{^}shipman"})
	checkKeys(t, h[:1], []string{"mid"})
	checkKeys(t, h[:3], []string{"midship"})
	checkKeys(t, h, []string{"midshipman"})
}

func TestSuggestionKeysOverbackspacing(t *testing.T) {
	h := History{
		word("united"),
		word("states"),
		tr("{:retro_title:2}", Action{PrevAttach: true, DeleteCount: len("united states"), Text: text("United States")}),
	}
	checkKeys(t, h[2:], nil)
	checkKeys(t, h[1:], nil)
	checkKeys(t, h, []string{"United States"})
}

func TestSuggestionKeysSuffixDeletion(t *testing.T) {
	h := History{
		word("smoke"),
		tr("{^ing}", Action{PrevAttach: true, DeleteCount: 1, Text: text("ing")}),
	}
	// the suffix alone deletes output it does not contain
	checkKeys(t, h[1:], nil)
	checkKeys(t, h, []string{"smoking"})
}

func TestSuggestionKeysLowercasesCapitalizedStart(t *testing.T) {
	// "the" capitalized at the start of a sentence
	h := History{tr("the", Action{Text: text("The")}), word("cat")}
	checkKeys(t, h, []string{"the cat"})

	// a proper noun keeps its capital
	checkKeys(t, History{tr("London", Action{Text: text("London")})}, []string{"London"})

	// a suffix capitalized after a sentence end
	checkKeys(t, History{tr("{^ing}", Action{PrevAttach: true, Text: text("Ing")})}, []string{"{^ing}", "{^}ing"})
}
