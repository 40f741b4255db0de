package tape

// SuggestionKeys returns the dictionary forms a reverse lookup should try for
// the output of window: the plain text, or both affix notations ("{^ing}"
// and "{^}ing") when the window attaches to its neighbours.
//
// Windows whose deletions reach outside of them, and windows producing no
// text, have no keys.
func SuggestionKeys(window History) []string {
	var actions []Action
	for _, t := range window {
		actions = append(actions, t.Actions...)
	}
	if len(actions) == 0 {
		return nil
	}

	text, ok := Replay(actions, window[0].startsLowercase())
	if !ok || text == "" {
		return nil
	}

	leading := actions[0].PrevAttach
	trailing := actions[len(actions)-1].NextAttach
	switch {
	case leading && trailing:
		return []string{"{^" + text + "^}", "{^}" + text + "{^}"}
	case leading:
		return []string{"{^" + text + "}", "{^}" + text}
	case trailing:
		return []string{"{" + text + "^}", text + "{^}"}
	}
	return []string{text}
}
