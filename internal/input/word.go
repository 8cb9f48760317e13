package input

import "unicode"

// isWordRune reports whether r belongs to a word. Letters, digits and
// underscore count; everything else separates words.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// FindWordStart returns the offset of the word boundary left of pos:
// it skips back over any non-word runes, then over the word run before
// them. The result is clamped to 0 and is strictly less than pos unless
// pos is already at the start of the buffer.
func FindWordStart(text []rune, pos int) int {
	if pos > len(text) {
		pos = len(text)
	}
	if pos < 0 {
		pos = 0
	}
	for pos > 0 && !isWordRune(text[pos-1]) {
		pos--
	}
	for pos > 0 && isWordRune(text[pos-1]) {
		pos--
	}
	return pos
}

// FindWordEnd is the forward counterpart of FindWordStart, clamped to
// len(text).
func FindWordEnd(text []rune, pos int) int {
	if pos < 0 {
		pos = 0
	}
	if pos > len(text) {
		pos = len(text)
	}
	for pos < len(text) && !isWordRune(text[pos]) {
		pos++
	}
	for pos < len(text) && isWordRune(text[pos]) {
		pos++
	}
	return pos
}
