package input

import "strings"

// normalizeBreaks rewrites CRLF and lone CR line breaks to the single
// newline form the buffer uses.
func normalizeBreaks(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// deleteRange removes text[start:end) into a fresh slice and returns the
// removed span. Bounds are clamped; start > end deletes nothing.
func deleteRange(text []rune, start, end int) ([]rune, string) {
	start = clampCursor(start, len(text))
	end = clampCursor(end, len(text))
	if start >= end {
		return text, ""
	}
	deleted := string(text[start:end])
	out := make([]rune, 0, len(text)-(end-start))
	out = append(out, text[:start]...)
	out = append(out, text[end:]...)
	return out, deleted
}

// InsertText splices inserted at cursor, normalizing any line-break
// sequence it contains, and places the cursor after the inserted run.
func InsertText(text []rune, cursor int, inserted string) ([]rune, int) {
	cursor = clampCursor(cursor, len(text))
	if inserted == "" {
		return text, cursor
	}
	ins := []rune(normalizeBreaks(inserted))
	out := make([]rune, 0, len(text)+len(ins))
	out = append(out, text[:cursor]...)
	out = append(out, ins...)
	out = append(out, text[cursor:]...)
	return out, cursor + len(ins)
}

// DeleteCharLeft removes the code point before the cursor. At the start
// of the buffer it is a no-op.
func DeleteCharLeft(text []rune, cursor int) ([]rune, int) {
	cursor = clampCursor(cursor, len(text))
	if cursor == 0 {
		return text, cursor
	}
	out, _ := deleteRange(text, cursor-1, cursor)
	return out, cursor - 1
}

// DeleteCharRight removes the code point at the cursor. At the end of
// the buffer it is a no-op.
func DeleteCharRight(text []rune, cursor int) ([]rune, int) {
	cursor = clampCursor(cursor, len(text))
	out, _ := deleteRange(text, cursor, cursor+1)
	return out, cursor
}

// DeleteWordLeft removes [wordStart, cursor) and returns the removed
// span for the kill ring. The caller supplies wordStart, normally from
// FindWordStart.
func DeleteWordLeft(text []rune, cursor, wordStart int) ([]rune, int, string) {
	cursor = clampCursor(cursor, len(text))
	wordStart = clampCursor(wordStart, cursor)
	out, deleted := deleteRange(text, wordStart, cursor)
	return out, wordStart, deleted
}

// DeleteWordRight removes [cursor, wordEnd); the cursor stays put.
func DeleteWordRight(text []rune, cursor, wordEnd int) ([]rune, int, string) {
	cursor = clampCursor(cursor, len(text))
	if wordEnd < cursor {
		wordEnd = cursor
	}
	out, deleted := deleteRange(text, cursor, wordEnd)
	return out, cursor, deleted
}

// DeleteToStart removes everything before the cursor, across line breaks.
func DeleteToStart(text []rune, cursor int) ([]rune, int, string) {
	cursor = clampCursor(cursor, len(text))
	out, deleted := deleteRange(text, 0, cursor)
	return out, 0, deleted
}

// DeleteToEnd removes everything at and after the cursor, across line
// breaks.
func DeleteToEnd(text []rune, cursor int) ([]rune, int, string) {
	cursor = clampCursor(cursor, len(text))
	out, deleted := deleteRange(text, cursor, len(text))
	return out, cursor, deleted
}

// TransposeChars swaps the code point before the cursor with the one at
// the cursor and steps the cursor right, so repeated calls drag a
// character forward. At the end of the buffer the two preceding code
// points are swapped instead and the cursor stays. With fewer than two
// code points around the cursor it is a no-op.
func TransposeChars(text []rune, cursor int) ([]rune, int) {
	cursor = clampCursor(cursor, len(text))
	if len(text) < 2 || cursor == 0 {
		return text, cursor
	}
	out := make([]rune, len(text))
	copy(out, text)
	if cursor == len(text) {
		out[cursor-2], out[cursor-1] = out[cursor-1], out[cursor-2]
		return out, cursor
	}
	out[cursor-1], out[cursor] = out[cursor], out[cursor-1]
	return out, cursor + 1
}

// YankText reinserts the kill-ring contents at the cursor. An empty kill
// buffer is a no-op.
func YankText(text []rune, cursor int, killBuffer string) ([]rune, int) {
	if killBuffer == "" {
		return text, clampCursor(cursor, len(text))
	}
	return InsertText(text, cursor, killBuffer)
}
