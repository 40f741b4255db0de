package tape

func text(s string) *string {
	return &s
}

// tr builds a one-stroke translation.
func tr(english string, actions ...Action) Translation {
	return Translation{Strokes: []string{"X"}, English: text(english), Actions: actions}
}

// spell builds a fingerspelled letter continuing a word.
func spell(letter string) Translation {
	return tr("{>}{&"+letter+"}",
		Action{Glue: true},
		Action{Glue: true, PrevAttach: true, Text: text(letter)},
	)
}

func word(s string) Translation {
	return tr(s, Action{Text: text(s)})
}
