package input

// CommandKind enumerates every operation the widget accepts. Mapping raw
// key chords to commands is the caller's job; the widget knows nothing
// about keyboards or terminals.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdMoveLeft
	CmdMoveRight
	CmdMoveWordLeft
	CmdMoveWordRight
	CmdMoveHome
	CmdMoveEnd
	CmdMoveUp   // one physical (wrapped) line up
	CmdMoveDown // one physical line down
	CmdDeleteCharLeft
	CmdDeleteCharRight
	CmdDeleteWordLeft
	CmdDeleteWordRight
	CmdDeleteToStart
	CmdDeleteToEnd
	CmdTranspose
	CmdYank
	CmdInsertText
	CmdInsertNewline
	CmdSubmit
	CmdHistoryPrev
	CmdHistoryNext
)

// Command is one edit or navigation request. Text carries the payload
// for CmdInsertText and is ignored otherwise.
type Command struct {
	Kind CommandKind
	Text string
}

// Insert builds an insertion command for typed or pasted text.
func Insert(s string) Command {
	return Command{Kind: CmdInsertText, Text: s}
}
