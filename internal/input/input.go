// Package input implements the line-editing core of the chat input
// widget: a flat code-point buffer with a cursor, word-boundary motion,
// greedy wrapping to a display width, kill/yank editing and viewport
// windowing. All buffer math lives in pure package-level functions;
// Input glues them together behind a closed command set.
package input

// Line is one physical (wrapped) line of the rendered view.
type Line struct {
	Text        string
	LogicalLine int
	HasCursor   bool
	CursorCol   int
}

// View is the renderer-facing projection of the widget state: the
// visible physical lines plus how many are hidden outside the window.
type View struct {
	Lines       []Line
	CursorLine  int // index into Lines of the row holding the cursor
	HiddenAbove int
	HiddenBelow int
	TotalLines  int
}

// Input is a multi-line chat input. It owns the buffer, the cursor and
// the kill ring for one input session; both are discarded on submit.
// It is not safe for concurrent use and does not need to be: one event
// source applies one command at a time.
type Input struct {
	text     []rune
	cursor   int
	kill     KillRing
	width    int
	maxLines int

	// History recall over previously submitted inputs. history[len] is
	// conceptually the live draft, stashed in draft while browsing.
	history   []string
	histIndex int
	draft     string
}

// New returns an empty widget wrapping at width with at most maxLines
// visible physical lines.
func New(width, maxLines int) *Input {
	if width < 1 {
		width = 1
	}
	if maxLines < 1 {
		maxLines = 1
	}
	return &Input{width: width, maxLines: maxLines}
}

// SetWidth changes the wrap width, re-clamping below 1.
func (in *Input) SetWidth(w int) {
	if w < 1 {
		w = 1
	}
	in.width = w
}

// SetMaxLines changes the visible-line budget.
func (in *Input) SetMaxLines(n int) {
	if n < 1 {
		n = 1
	}
	in.maxLines = n
}

// Value returns the buffer contents.
func (in *Input) Value() string {
	return string(in.text)
}

// SetValue replaces the buffer and puts the cursor at the end.
func (in *Input) SetValue(s string) {
	in.text = []rune(normalizeBreaks(s))
	in.cursor = len(in.text)
}

// Cursor returns the buffer offset of the cursor.
func (in *Input) Cursor() int {
	return in.cursor
}

// Empty reports whether the buffer holds no text.
func (in *Input) Empty() bool {
	return len(in.text) == 0
}

// SetHistory seeds the recall list, oldest first.
func (in *Input) SetHistory(entries []string) {
	in.history = append([]string(nil), entries...)
	in.histIndex = len(in.history)
	in.draft = ""
}

// Reset clears the buffer, the kill ring and any in-flight history
// browsing, ready for the next input session.
func (in *Input) Reset() {
	in.text = nil
	in.cursor = 0
	in.kill.Reset()
	in.histIndex = len(in.history)
	in.draft = ""
}

// Apply executes one command against the current state. For CmdSubmit it
// returns the submitted text and true; every other command returns
// ("", false). Unknown kinds are ignored, matching the everything-is-
// total error model of the buffer functions.
func (in *Input) Apply(cmd Command) (string, bool) {
	switch cmd.Kind {
	case CmdMoveLeft:
		in.cursor = MoveLeft(in.cursor, len(in.text))
	case CmdMoveRight:
		in.cursor = MoveRight(in.cursor, len(in.text))
	case CmdMoveWordLeft:
		in.cursor = FindWordStart(in.text, in.cursor)
	case CmdMoveWordRight:
		in.cursor = FindWordEnd(in.text, in.cursor)
	case CmdMoveHome:
		in.cursor = MoveToStart()
	case CmdMoveEnd:
		in.cursor = MoveToEnd(len(in.text))
	case CmdMoveUp:
		if row, _ := locateCursor(in.text, in.cursor, in.width); row == 0 {
			in.historyPrev()
		} else {
			in.cursor = MoveUpPhysical(in.text, in.cursor, in.width)
		}
	case CmdMoveDown:
		segs := flatten(in.text, in.width)
		if row, _ := locateCursor(in.text, in.cursor, in.width); row == len(segs)-1 {
			in.historyNext()
		} else {
			in.cursor = MoveDownPhysical(in.text, in.cursor, in.width)
		}
	case CmdDeleteCharLeft:
		in.text, in.cursor = DeleteCharLeft(in.text, in.cursor)
	case CmdDeleteCharRight:
		in.text, in.cursor = DeleteCharRight(in.text, in.cursor)
	case CmdDeleteWordLeft:
		var killed string
		start := FindWordStart(in.text, in.cursor)
		in.text, in.cursor, killed = DeleteWordLeft(in.text, in.cursor, start)
		in.kill.Set(killed)
	case CmdDeleteWordRight:
		var killed string
		end := FindWordEnd(in.text, in.cursor)
		in.text, in.cursor, killed = DeleteWordRight(in.text, in.cursor, end)
		in.kill.Set(killed)
	case CmdDeleteToStart:
		var killed string
		in.text, in.cursor, killed = DeleteToStart(in.text, in.cursor)
		in.kill.Set(killed)
	case CmdDeleteToEnd:
		var killed string
		in.text, in.cursor, killed = DeleteToEnd(in.text, in.cursor)
		in.kill.Set(killed)
	case CmdTranspose:
		in.text, in.cursor = TransposeChars(in.text, in.cursor)
	case CmdYank:
		in.text, in.cursor = YankText(in.text, in.cursor, in.kill.Get())
	case CmdInsertText:
		in.text, in.cursor = InsertText(in.text, in.cursor, cmd.Text)
	case CmdInsertNewline:
		in.text, in.cursor = InsertText(in.text, in.cursor, "\n")
	case CmdHistoryPrev:
		in.historyPrev()
	case CmdHistoryNext:
		in.historyNext()
	case CmdSubmit:
		return in.submit()
	}
	return "", false
}

func (in *Input) submit() (string, bool) {
	value := string(in.text)
	if value == "" {
		return "", false
	}
	in.history = append(in.history, value)
	in.Reset()
	return value, true
}

// historyPrev recalls the previous submitted input, stashing the live
// draft the first time the user leaves it.
func (in *Input) historyPrev() {
	if in.histIndex == 0 || len(in.history) == 0 {
		return
	}
	if in.histIndex == len(in.history) {
		in.draft = string(in.text)
	}
	in.histIndex--
	in.SetValue(in.history[in.histIndex])
}

// historyNext walks back toward the live draft.
func (in *Input) historyNext() {
	if in.histIndex >= len(in.history) {
		return
	}
	in.histIndex++
	if in.histIndex == len(in.history) {
		in.SetValue(in.draft)
		return
	}
	in.SetValue(in.history[in.histIndex])
}

// View wraps the buffer, windows it around the cursor and returns the
// physical lines the renderer should paint.
func (in *Input) View() View {
	segs := flatten(in.text, in.width)
	row, col := locateCursor(in.text, in.cursor, in.width)
	win := Viewport(len(segs), row, in.maxLines)
	lines := make([]Line, 0, win.End-win.Start)
	for i := win.Start; i < win.End; i++ {
		seg := segs[i]
		ln := Line{
			Text:        string(in.text[seg.start : seg.start+seg.length]),
			LogicalLine: seg.logical,
		}
		if i == row {
			ln.HasCursor = true
			ln.CursorCol = col
		}
		lines = append(lines, ln)
	}
	return View{
		Lines:       lines,
		CursorLine:  row - win.Start,
		HiddenAbove: win.HiddenAbove,
		HiddenBelow: win.HiddenBelow,
		TotalLines:  len(segs),
	}
}
