package input

// WrapLine splits one logical line into physical segments of at most
// width code points, greedily: a segment closes only when the next code
// point would not fit. The concatenation of the segments is always the
// input line, and even an empty line yields one (empty) segment. A width
// below 1 is treated as 1.
//
// Each code point occupies one cell; combining marks and double-width
// glyphs are not special-cased.
func WrapLine(line []rune, width int) [][]rune {
	if width < 1 {
		width = 1
	}
	segs := make([][]rune, 0, len(line)/width+1)
	for len(line) > width {
		segs = append(segs, line[:width])
		line = line[width:]
	}
	return append(segs, line)
}

// PhysicalCursorPos maps a logical column within line to its wrapped
// (segment index, column) pair, replaying the same greedy rule as
// WrapLine. The returned index is always below len(WrapLine(line, width)),
// and the lengths of the segments before it plus the returned column add
// up to the clamped logical column.
func PhysicalCursorPos(line []rune, col, width int) (int, int) {
	if width < 1 {
		width = 1
	}
	if col < 0 {
		col = 0
	}
	if col > len(line) {
		col = len(line)
	}
	segs := WrapLine(line, width)
	consumed := 0
	for i, seg := range segs {
		if col < consumed+len(seg) || i == len(segs)-1 {
			return i, col - consumed
		}
		consumed += len(seg)
	}
	return 0, 0 // unreachable, WrapLine never returns zero segments
}

// logicalLines splits text on line breaks, reporting each logical line
// and its absolute start offset. Always returns at least one line, so an
// empty buffer still has a (single, empty) line.
func logicalLines(text []rune) ([][]rune, []int) {
	lines := [][]rune{}
	starts := []int{}
	start := 0
	for i, r := range text {
		if r == '\n' {
			lines = append(lines, text[start:i])
			starts = append(starts, start)
			start = i + 1
		}
	}
	lines = append(lines, text[start:])
	starts = append(starts, start)
	return lines, starts
}

// segment is one physical line of the flattened buffer: a slice of a
// single logical line, addressed by absolute buffer offset.
type segment struct {
	start   int // buffer offset of the segment's first rune
	length  int
	logical int // index of the owning logical line
}

// flatten wraps every logical line of text and concatenates the resulting
// segments in buffer order. Never empty.
func flatten(text []rune, width int) []segment {
	lines, starts := logicalLines(text)
	segs := make([]segment, 0, len(lines))
	for li, line := range lines {
		off := starts[li]
		for _, seg := range WrapLine(line, width) {
			segs = append(segs, segment{start: off, length: len(seg), logical: li})
			off += len(seg)
		}
	}
	return segs
}

// locateCursor finds the physical row of the flattened buffer holding
// cursor, and the column within that row.
func locateCursor(text []rune, cursor, width int) (row, col int) {
	cursor = clampCursor(cursor, len(text))
	lines, starts := logicalLines(text)
	for li, line := range lines {
		if cursor <= starts[li]+len(line) {
			pr, pc := PhysicalCursorPos(line, cursor-starts[li], width)
			return row + pr, pc
		}
		row += len(WrapLine(line, width))
	}
	// cursor == len(text) always matches the last logical line above
	return row - 1, 0
}
