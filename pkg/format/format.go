// Package format expands the line template of the tape.
//
// A template is plain text with placeholders of the form %<width><item>,
// where item is a single character naming a field and width, when given,
// left-justifies the field to that many characters:
//
//	%b |%S| %D  %s
//
// expands the bar, the steno layout, the definition and the suggestions.
package format

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Field names understood by the tape.
const (
	Time        = 't'
	Bar         = 'b'
	Steno       = 'S'
	RawSteno    = 'r'
	Defined     = 'D'
	Translated  = 'T'
	Dictionary  = 'd'
	Suggestions = 's'
	Percent     = '%'
)

// TimeLayout is used for the Time field.
const TimeLayout = "2006-01-02 15:04:05.000"

// Items maps field names to their rendered values.
type Items map[rune]string

var placeholder = regexp.MustCompile(`%(\d*)(.)`)

// Expand replaces every placeholder in format with its item. Unknown items
// expand to the empty string, still padded to the requested width.
func Expand(format string, items Items) string {
	return placeholder.ReplaceAllStringFunc(format, func(match string) string {
		sub := placeholder.FindStringSubmatch(match)
		width, _ := strconv.Atoi(sub[1])
		name, _ := utf8.DecodeRuneInString(sub[2])
		return ljust(items[name], width)
	})
}

// Split cuts a line format before its suggestions placeholder, including
// any whitespace leading up to it. The left part is written as soon as a
// stroke comes in; the right part may have to wait for the next stroke.
// Without a suggestions placeholder the right part is empty.
func Split(lineFormat string) (left, right string) {
	for _, loc := range placeholder.FindAllStringSubmatchIndex(lineFormat, -1) {
		if lineFormat[loc[4]:loc[5]] != string(Suggestions) {
			continue
		}
		start := loc[0]
		for start > 0 {
			r, size := utf8.DecodeLastRuneInString(lineFormat[:start])
			if !unicode.IsSpace(r) {
				break
			}
			start -= size
		}
		return lineFormat[:start], lineFormat[start:]
	}
	return lineFormat, ""
}

var whitespace = strings.NewReplacer("\n", `\n`, "\r", `\r`, "\t", `\t`)

// ShowWhitespace escapes newlines, carriage returns and tabs.
func ShowWhitespace(s string) string {
	return whitespace.Replace(s)
}

// TrimRight strips trailing whitespace from an expanded line.
func TrimRight(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

func ljust(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
