package parser

import "unicode/utf8"

// scanWhile returns the longest prefix of input whose runes all satisfy
// pred, and the rest of input. It never fails.
func scanWhile(input string, pred func(rune) bool) (string, string) {
	for i, r := range input {
		if !pred(r) {
			return input[:i], input[i:]
		}
	}
	return input, ""
}

// scanWhileNonEmpty is scanWhile that fails on an empty match.
func scanWhileNonEmpty(input string, pred func(rune) bool) (string, string, error) {
	matched, rest := scanWhile(input, pred)
	if matched == "" {
		return "", input, errNoMatch
	}
	return matched, rest, nil
}

// readOneChar returns the first rune of input and the rest.
func readOneChar(input string) (rune, string, error) {
	if input == "" {
		return 0, input, errNoMatch
	}
	r, size := utf8.DecodeRuneInString(input)
	return r, input[size:], nil
}
