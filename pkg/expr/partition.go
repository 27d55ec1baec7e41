package expr

import (
	"unicode"
	"unicode/utf8"
)

// IsSeparator is the default partitioning predicate. Numeric characters
// (any Unicode number, including '²' and '½'), '.', spaces
// and parentheses stay inside a run; every other character stands alone.
func IsSeparator(r rune) bool {
	if unicode.IsNumber(r) {
		return false
	}
	switch r {
	case '.', ' ', '(', ')':
		return false
	}
	return true
}

// Qualified reports whether r may be typed into the input buffer.
func Qualified(r rune) bool {
	if unicode.IsNumber(r) || r == '.' {
		return true
	}
	_, ok := LookupOperator(string(r))
	return ok
}

// Partition splits text into maximal runs of non-separator characters and
// single separator characters, in source order. Empty runs are omitted.
func Partition(text string, isSeparator func(rune) bool) []string {
	var result []string
	last := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if isSeparator(r) {
			if last != i {
				result = append(result, text[last:i])
			}
			result = append(result, text[i:i+size])
			last = i + size
		}
		i += size
	}
	if last < len(text) {
		result = append(result, text[last:])
	}
	return result
}
