package tape

import "iter"

// Tails yields the suffixes of history worth looking up, shortest first.
// A run of fingerspelled translations is only ever added as a whole, so a
// spelled-out word costs one window instead of one per letter.
//
// Nothing is yielded when the last translation only produced whitespace,
// unless it is a retro command.
func Tails(history History) iter.Seq[History] {
	return func(yield func(History) bool) {
		if len(history) == 0 {
			return
		}
		if top := history[len(history)-1]; top.IsWhitespace() && !top.IsRetro() {
			return
		}

		// The window is history[start:]; spelled holds fingerspelled
		// translations seen but not yet part of it.
		start, spelled := len(history), 0
		for i := len(history) - 1; i >= 0; i-- {
			if history[i].IsFingerspelling() {
				spelled++
				continue
			}
			if spelled > 0 {
				start -= spelled
				spelled = 0
				if !yield(history[start:]) {
					return
				}
			}
			start--
			if !yield(history[start:]) {
				return
			}
		}
		if spelled > 0 {
			yield(history[start-spelled:])
		}
	}
}
