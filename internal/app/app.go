package app

import (
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/qchat/internal/config"
	"github.com/kobzarvs/qchat/internal/history"
	"github.com/kobzarvs/qchat/internal/logger"
)

// App is the top-level runtime for qchat.
type App struct{}

func New() *App {
	return &App{}
}

func (a *App) Run() error {
	if err := logger.Init(os.Getenv("QCHAT_DEBUG") != ""); err != nil {
		return err
	}
	defer logger.Close()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	hist, err := history.Load()
	if err != nil {
		// History is a convenience, run without it.
		logger.Warn("history unavailable", "err", err)
		hist = nil
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	s.EnablePaste()
	defer s.Fini()

	ui := NewUI(cfg, hist)
	for {
		ui.Render(s)
		switch ev := s.PollEvent().(type) {
		case *tcell.EventKey:
			if ui.HandleKey(ev) {
				if hist != nil {
					_ = hist.Save()
				}
				return nil
			}
		case *tcell.EventPaste:
			ui.HandlePaste(ev)
		case *tcell.EventResize:
			s.Sync()
		}
	}
}
