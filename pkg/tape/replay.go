package tape

import "unicode"

// Replay applies actions in order to an empty buffer and returns the text
// they produce. ok is false when an action deletes more than the buffer
// holds, i.e. the actions depend on output from outside the sequence.
//
// With lowerFirst set, an uppercase first character produced by the first
// action is lowercased, undoing sentence-initial capitalization.
func Replay(actions []Action, lowerFirst bool) (text string, ok bool) {
	return replay(actions, true, lowerFirst)
}

// Retroformat replays a single translation's actions. Deletions reaching
// past its own output clear the buffer instead of failing.
func Retroformat(t Translation) string {
	text, _ := replay(t.Actions, false, false)
	return text
}

func replay(actions []Action, strict, lowerFirst bool) (string, bool) {
	var out []rune
	for i, action := range actions {
		if n := action.DeleteCount; n > 0 {
			if n > len(out) {
				if strict {
					return "", false
				}
				n = len(out)
			}
			out = out[:len(out)-n]
		}
		if len(out) > 0 && i > 0 && action.Text != nil && !action.PrevAttach {
			out = append(out, []rune(action.separator())...)
		}
		if action.Text != nil {
			out = append(out, []rune(*action.Text)...)
		}
		if i == 0 && lowerFirst && len(out) > 0 && unicode.IsUpper(out[0]) {
			out[0] = unicode.ToLower(out[0])
		}
	}
	return string(out), true
}
