package input

// clampCursor forces cursor into [0, length].
func clampCursor(cursor, length int) int {
	if cursor < 0 {
		return 0
	}
	if cursor > length {
		return length
	}
	return cursor
}

// MoveLeft steps the cursor one code point left, stopping at 0.
func MoveLeft(cursor, length int) int {
	cursor = clampCursor(cursor, length)
	if cursor > 0 {
		cursor--
	}
	return cursor
}

// MoveRight steps the cursor one code point right, stopping at length.
func MoveRight(cursor, length int) int {
	cursor = clampCursor(cursor, length)
	if cursor < length {
		cursor++
	}
	return cursor
}

// MoveToStart returns the buffer-start offset.
func MoveToStart() int {
	return 0
}

// MoveToEnd returns the buffer-end offset.
func MoveToEnd(length int) int {
	return length
}

// MoveUpPhysical moves the cursor one physical (wrapped) line up across
// the whole buffer, crossing logical-line boundaries transparently. The
// target column is the current physical column clamped to the destination
// segment's length. On the first physical line the cursor is unchanged.
func MoveUpPhysical(text []rune, cursor, width int) int {
	return movePhysical(text, cursor, width, -1)
}

// MoveDownPhysical is the downward counterpart of MoveUpPhysical.
func MoveDownPhysical(text []rune, cursor, width int) int {
	return movePhysical(text, cursor, width, +1)
}

func movePhysical(text []rune, cursor, width, delta int) int {
	cursor = clampCursor(cursor, len(text))
	segs := flatten(text, width)
	row, col := locateCursor(text, cursor, width)
	target := row + delta
	if target < 0 || target >= len(segs) {
		return cursor
	}
	if col > segs[target].length {
		col = segs[target].length
	}
	return segs[target].start + col
}
