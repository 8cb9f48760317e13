package input

// Window is the visible slice [Start, End) of the flattened physical
// lines, plus the counts of lines hidden outside it.
type Window struct {
	Start       int
	End         int
	HiddenAbove int
	HiddenBelow int
}

// Viewport picks a window of at most max physical lines around
// cursorLine. When everything fits the window covers all lines;
// otherwise the cursor line is kept near the middle and the window is
// re-clamped at the bottom so it never shrinks below max lines. The
// cursor line is always inside the returned window.
func Viewport(total, cursorLine, max int) Window {
	if max < 1 {
		max = 1
	}
	if total <= max {
		return Window{Start: 0, End: total}
	}
	if cursorLine < 0 {
		cursorLine = 0
	}
	if cursorLine >= total {
		cursorLine = total - 1
	}
	start := cursorLine - max/2
	if start < 0 {
		start = 0
	}
	end := start + max
	if end >= total {
		end = total
		start = total - max
	}
	return Window{
		Start:       start,
		End:         end,
		HiddenAbove: start,
		HiddenBelow: total - end,
	}
}
