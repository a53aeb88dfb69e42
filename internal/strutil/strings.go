package strutil

import (
	"regexp"
	"strings"
	"unicode"
)

var bracketsRe = regexp.MustCompile(`(\[(.*?)\]|\((.*?)\))`)

// RemoveContentIntoBrackets removes content inside brackets, including brackets
func RemoveContentIntoBrackets(s string) string {
	return bracketsRe.ReplaceAllString(s, "")
}

// RemoveExtraSpaces collapses whitespace runs to a single character and trims
// the ends. For example RemoveExtraSpaces(" US  Dollar ") return "US Dollar"
func RemoveExtraSpaces(s string) string {
	idx := 0

	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			idx++
			if idx > 1 {
				return -1
			}

			return ' '
		}

		idx = 0

		return r
	}, s))
}

// CamelCase returns a string that is a camel case
func CamelCase(s string) string {
	tokens := strings.Split(strings.ToLower(s), " ")
	for i := range tokens {
		tokens[i] = strings.Title(tokens[i])
	}

	return strings.Join(tokens, "")
}
