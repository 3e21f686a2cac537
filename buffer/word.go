package buffer

import "unicode"

// IsWordRune reports whether r is part of a word for word movement,
// double-click selection, and whole-word matching: letters, digits,
// and underscore. Everything else is a separator.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
