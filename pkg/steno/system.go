package steno

import "strings"

// System describes a steno key layout.
type System struct {
	Name string
	// Keys in steno order; the layout has one column per key.
	Keys []string
	// Numbers maps a letter key to its number-bar form, e.g. "S-" -> "1-".
	Numbers map[string]string
	// NumberKey is the key implied by any number-bar key.
	NumberKey string

	letters map[string]string
}

// English is the standard English Stenotype system.
var English = NewSystem("English Stenotype",
	[]string{
		"#",
		"S-", "T-", "K-", "P-", "W-", "H-", "R-",
		"A-", "O-",
		"*",
		"-E", "-U",
		"-F", "-R", "-P", "-B", "-L", "-G", "-T", "-S", "-D", "-Z",
	},
	map[string]string{
		"S-": "1-",
		"T-": "2-",
		"P-": "3-",
		"H-": "4-",
		"A-": "5-",
		"O-": "0-",
		"-F": "-6",
		"-P": "-7",
		"-L": "-8",
		"-T": "-9",
	},
	"#",
)

// NewSystem builds a System and its number-to-letter index.
func NewSystem(name string, keys []string, numbers map[string]string, numberKey string) *System {
	letters := make(map[string]string, len(numbers))
	for letter, number := range numbers {
		letters[number] = letter
	}
	return &System{
		Name:      name,
		Keys:      keys,
		Numbers:   numbers,
		NumberKey: numberKey,
		letters:   letters,
	}
}

// Layout renders a stroke as one column per system key: the key's label
// (hyphens stripped) when pressed, a blank otherwise. Number-bar keys light
// up their letter key plus the number key.
func (s *System) Layout(keys []string) string {
	pressed := make(map[string]bool, len(keys)+1)
	for _, key := range keys {
		if letter, ok := s.letters[key]; ok {
			pressed[letter] = true
			pressed[s.NumberKey] = true
			continue
		}
		pressed[key] = true
	}

	var b strings.Builder
	for _, key := range s.Keys {
		if pressed[key] {
			b.WriteString(strings.Trim(key, "-"))
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
