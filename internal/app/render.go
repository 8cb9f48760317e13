package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/qchat/internal/chat"
	"github.com/kobzarvs/qchat/internal/config"
	"github.com/kobzarvs/qchat/internal/history"
	"github.com/kobzarvs/qchat/internal/input"
	"github.com/kobzarvs/qchat/internal/logger"
)

// UI owns the input widget and the transcript and paints both onto a
// tcell screen. One instance per session.
type UI struct {
	cfg        config.Config
	in         *input.Input
	transcript *chat.Transcript
	hist       *history.Store

	pasting bool
	pasted  strings.Builder

	styleMain        tcell.Style
	styleStatus      tcell.Style
	stylePrompt      tcell.Style
	stylePlaceholder tcell.Style
	styleUser        tcell.Style
	styleAssistant   tcell.Style
	styleIndicator   tcell.Style
	styleSeparator   tcell.Style
}

func NewUI(cfg config.Config, hist *history.Store) *UI {
	maxLines := cfg.Input.MaxVisibleLines
	if maxLines < 1 {
		maxLines = 1
	}
	mainFg := parseColor(cfg.Theme.Foreground, tcell.ColorWhite)
	mainBg := parseColor(cfg.Theme.Background, tcell.ColorBlack)
	statusFg := parseColor(cfg.Theme.StatuslineForeground, tcell.ColorBlack)
	statusBg := parseColor(cfg.Theme.StatuslineBackground, tcell.ColorGray)
	promptFg := parseColor(cfg.Theme.PromptForeground, mainFg)
	placeholderFg := parseColor(cfg.Theme.PlaceholderForeground, tcell.ColorGray)
	userFg := parseColor(cfg.Theme.UserForeground, mainFg)
	assistantFg := parseColor(cfg.Theme.AssistantForeground, mainFg)
	indicatorFg := parseColor(cfg.Theme.IndicatorForeground, tcell.ColorGray)
	separatorFg := parseColor(cfg.Theme.SeparatorForeground, tcell.ColorGray)

	u := &UI{
		cfg:              cfg,
		in:               input.New(80, maxLines),
		transcript:       &chat.Transcript{},
		hist:             hist,
		styleMain:        tcell.StyleDefault.Foreground(mainFg).Background(mainBg),
		styleStatus:      tcell.StyleDefault.Foreground(statusFg).Background(statusBg),
		stylePrompt:      tcell.StyleDefault.Foreground(promptFg).Background(mainBg),
		stylePlaceholder: tcell.StyleDefault.Foreground(placeholderFg).Background(mainBg),
		styleUser:        tcell.StyleDefault.Foreground(userFg).Background(mainBg),
		styleAssistant:   tcell.StyleDefault.Foreground(assistantFg).Background(mainBg),
		styleIndicator:   tcell.StyleDefault.Foreground(indicatorFg).Background(mainBg),
		styleSeparator:   tcell.StyleDefault.Foreground(separatorFg).Background(mainBg),
	}
	if hist != nil {
		u.in.SetHistory(hist.Entries())
	}
	return u
}

// HandleKey applies one key event. Returns true when the user asked to
// quit.
func (u *UI) HandleKey(ev *tcell.EventKey) bool {
	if u.pasting {
		u.collectPasted(ev)
		return false
	}
	if chord := keyString(ev); chord != "" && u.cfg.Keymap.Input[chord] == "quit" {
		return true
	}
	cmd, ok := commandFor(ev, u.cfg.Keymap.Input)
	if !ok {
		return false
	}
	if value, submitted := u.in.Apply(cmd); submitted {
		u.submit(value)
	}
	return false
}

// HandlePaste brackets a paste: runes between the start and end events
// are collected and inserted as one command, so a multi-line paste is a
// single InsertText with its line breaks normalized by the widget.
func (u *UI) HandlePaste(ev *tcell.EventPaste) {
	if ev.Start() {
		u.pasting = true
		u.pasted.Reset()
		return
	}
	u.pasting = false
	if u.pasted.Len() > 0 {
		u.in.Apply(input.Insert(u.pasted.String()))
	}
}

func (u *UI) collectPasted(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyRune:
		u.pasted.WriteRune(ev.Rune())
	case tcell.KeyEnter:
		u.pasted.WriteByte('\n')
	case tcell.KeyTab:
		u.pasted.WriteByte('\t')
	}
}

func (u *UI) submit(value string) {
	msg := u.transcript.Append(chat.RoleUser, value)
	logger.Debug("message submitted", "id", msg.ID, "runes", len([]rune(value)))
	// No provider is wired in, answer locally so the loop is visible.
	u.transcript.Append(chat.RoleAssistant, "echo: "+value)
	if u.hist != nil {
		u.hist.Append(value)
		if err := u.hist.Save(); err != nil {
			logger.Error("history save failed", "err", err)
		}
	}
}

// Render paints the transcript, the input widget and the status line.
func (u *UI) Render(s tcell.Screen) {
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}
	s.Fill(' ', u.styleMain)

	prompt := []rune(u.cfg.Input.Prompt)
	cont := []rune(u.cfg.Input.Continuation)
	gutter := len(prompt)
	if len(cont) > gutter {
		gutter = len(cont)
	}
	textWidth := w - gutter
	if textWidth < 1 {
		textWidth = 1
	}
	u.in.SetWidth(textWidth)

	maxLines := u.cfg.Input.MaxVisibleLines
	if maxLines > h-2 {
		maxLines = h - 2
	}
	if maxLines < 1 {
		maxLines = 1
	}
	u.in.SetMaxLines(maxLines)

	v := u.in.View()
	indicators := 0
	if v.HiddenAbove > 0 {
		indicators++
	}
	if v.HiddenBelow > 0 {
		indicators++
	}
	inputTop := h - 1 - len(v.Lines) - indicators
	if inputTop < 0 {
		inputTop = 0
	}

	u.renderTranscript(s, w, inputTop-1, textWidth)

	y := inputTop
	if v.HiddenAbove > 0 {
		u.drawText(s, 0, y, w, indicatorLabel("↑", v.HiddenAbove), u.styleIndicator)
		y++
	}
	for i, line := range v.Lines {
		prefix := cont
		if v.HiddenAbove == 0 && i == 0 {
			prefix = prompt
		}
		u.drawText(s, 0, y, w, string(prefix), u.stylePrompt)
		if u.in.Empty() && u.cfg.Input.Placeholder != "" {
			u.drawText(s, gutter, y, w, u.cfg.Input.Placeholder, u.stylePlaceholder)
		} else {
			u.drawText(s, gutter, y, w, line.Text, u.styleMain)
		}
		if line.HasCursor {
			s.ShowCursor(gutter+line.CursorCol, y)
		}
		y++
	}
	if v.HiddenBelow > 0 {
		u.drawText(s, 0, y, w, indicatorLabel("↓", v.HiddenBelow), u.styleIndicator)
	}

	u.renderStatus(s, w, h-1, v)
	s.Show()
}

// renderTranscript draws the newest messages bottom-up in rows [0, maxY].
func (u *UI) renderTranscript(s tcell.Screen, w, maxY, textWidth int) {
	if maxY < 0 {
		return
	}
	type row struct {
		text  string
		style tcell.Style
	}
	msgs := u.transcript.Messages()
	rows := []row{}
	for _, msg := range msgs {
		style := u.styleAssistant
		label := "bot"
		if msg.Role == chat.RoleUser {
			style = u.styleUser
			label = "you"
		}
		for li, line := range strings.Split(msg.Text, "\n") {
			for pi, seg := range input.WrapLine([]rune(line), textWidth) {
				prefix := "    "
				if li == 0 && pi == 0 {
					prefix = label + " "
				}
				rows = append(rows, row{text: prefix + string(seg), style: style})
			}
		}
	}
	start := 0
	if len(rows) > maxY+1 {
		start = len(rows) - (maxY + 1)
	}
	y := maxY - (len(rows) - start) + 1
	for i := start; i < len(rows); i++ {
		u.drawText(s, 0, y, w, rows[i].text, rows[i].style)
		y++
	}
}

func (u *UI) renderStatus(s tcell.Screen, w, y int, v input.View) {
	if y < 0 {
		return
	}
	for x := 0; x < w; x++ {
		s.SetContent(x, y, ' ', nil, u.styleStatus)
	}
	line := v.CursorLine + v.HiddenAbove + 1
	status := fmt.Sprintf(" %d messages · line %d/%d", u.transcript.Len(), line, v.TotalLines)
	u.drawText(s, 0, y, w, status, u.styleStatus)
}

func (u *UI) drawText(s tcell.Screen, x, y, w int, text string, style tcell.Style) {
	for _, r := range text {
		if x >= w {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func indicatorLabel(arrow string, n int) string {
	return arrow + " " + strconv.Itoa(n) + " more lines"
}

func parseColor(name string, fallback tcell.Color) tcell.Color {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	if strings.HasPrefix(name, "#") && len(name) == 7 {
		r, err1 := strconv.ParseInt(name[1:3], 16, 32)
		g, err2 := strconv.ParseInt(name[3:5], 16, 32)
		b, err3 := strconv.ParseInt(name[5:7], 16, 32)
		if err1 == nil && err2 == nil && err3 == nil {
			return tcell.NewRGBColor(int32(r), int32(g), int32(b))
		}
		return fallback
	}
	name = strings.ToLower(name)
	if name == "default" {
		return tcell.ColorDefault
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}
