package app

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/qchat/internal/input"
)

// actionCommands maps the action names accepted in [keymap.input] to
// widget commands. "quit" is handled by the key handler itself.
var actionCommands = map[string]input.CommandKind{
	"move_left":         input.CmdMoveLeft,
	"move_right":        input.CmdMoveRight,
	"word_left":         input.CmdMoveWordLeft,
	"word_right":        input.CmdMoveWordRight,
	"move_home":         input.CmdMoveHome,
	"move_end":          input.CmdMoveEnd,
	"move_up":           input.CmdMoveUp,
	"move_down":         input.CmdMoveDown,
	"delete_char_left":  input.CmdDeleteCharLeft,
	"delete_char_right": input.CmdDeleteCharRight,
	"delete_word_left":  input.CmdDeleteWordLeft,
	"delete_word_right": input.CmdDeleteWordRight,
	"delete_to_start":   input.CmdDeleteToStart,
	"delete_to_end":     input.CmdDeleteToEnd,
	"transpose":         input.CmdTranspose,
	"yank":              input.CmdYank,
	"newline":           input.CmdInsertNewline,
	"submit":            input.CmdSubmit,
	"history_prev":      input.CmdHistoryPrev,
	"history_next":      input.CmdHistoryNext,
}

// keyString normalizes a key event into the chord grammar used by the
// [keymap.input] config table: "left", "ctrl+k", "alt+backspace", ...
// Plain printable runes return "" and are treated as text input.
func keyString(ev *tcell.EventKey) string {
	alt := ev.Modifiers()&tcell.ModAlt != 0

	name := ""
	switch ev.Key() {
	case tcell.KeyLeft:
		name = "left"
	case tcell.KeyRight:
		name = "right"
	case tcell.KeyUp:
		name = "up"
	case tcell.KeyDown:
		name = "down"
	case tcell.KeyHome:
		name = "home"
	case tcell.KeyEnd:
		name = "end"
	case tcell.KeyEnter:
		name = "enter"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		name = "backspace"
	case tcell.KeyDelete:
		name = "delete"
	case tcell.KeyTab:
		name = "tab"
	case tcell.KeyEscape:
		name = "esc"
	}
	if name != "" {
		if alt {
			return "alt+" + name
		}
		return name
	}

	// Control chords arrive as the corresponding control code.
	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+ev.Key()-tcell.KeyCtrlA))
	}

	if ev.Key() == tcell.KeyRune && alt {
		return "alt+" + strings.ToLower(string(ev.Rune()))
	}
	return ""
}

// commandFor resolves a key event against the keymap. The boolean is
// false when the event is neither bound nor insertable text.
func commandFor(ev *tcell.EventKey, keymap map[string]string) (input.Command, bool) {
	if chord := keyString(ev); chord != "" {
		action, ok := keymap[chord]
		if !ok {
			return input.Command{}, false
		}
		kind, ok := actionCommands[action]
		if !ok {
			return input.Command{}, false
		}
		return input.Command{Kind: kind}, true
	}
	if ev.Key() == tcell.KeyRune {
		return input.Insert(string(ev.Rune())), true
	}
	return input.Command{}, false
}
