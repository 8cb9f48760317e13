package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Keymap struct {
	Input map[string]string `toml:"input"`
}

type InputOptions struct {
	MaxVisibleLines int    `toml:"max-visible-lines"`
	Prompt          string `toml:"prompt"`
	Continuation    string `toml:"continuation"`
	Placeholder     string `toml:"placeholder"`
}

type Theme struct {
	Foreground            string `toml:"foreground"`
	Background            string `toml:"background"`
	PromptForeground      string `toml:"prompt-foreground"`
	PlaceholderForeground string `toml:"placeholder-foreground"`
	StatuslineForeground  string `toml:"statusline-foreground"`
	StatuslineBackground  string `toml:"statusline-background"`
	UserForeground        string `toml:"user-foreground"`
	AssistantForeground   string `toml:"assistant-foreground"`
	IndicatorForeground   string `toml:"indicator-foreground"`
	SeparatorForeground   string `toml:"separator-foreground"`
}

type Config struct {
	Input  InputOptions `toml:"input"`
	Theme  Theme        `toml:"theme"`
	Keymap Keymap       `toml:"keymap"`
}

func Default() Config {
	return Config{
		Input: InputOptions{
			MaxVisibleLines: 6,
			Prompt:          "> ",
			Continuation:    "  ",
			Placeholder:     "type a message",
		},
		Theme: Theme{
			Foreground:            "#B3B1AD",
			Background:            "#0A0E14",
			PromptForeground:      "#E6B450",
			PlaceholderForeground: "#3E4B59",
			StatuslineForeground:  "#B3B1AD",
			StatuslineBackground:  "#0F1419",
			UserForeground:        "#73D0FF",
			AssistantForeground:   "#BAE67E",
			IndicatorForeground:   "#5C6773",
			SeparatorForeground:   "#3E4B59",
		},
		Keymap: Keymap{
			Input: map[string]string{
				"left":          "move_left",
				"right":         "move_right",
				"alt+left":      "word_left",
				"alt+right":     "word_right",
				"alt+b":         "word_left",
				"alt+f":         "word_right",
				"home":          "move_home",
				"ctrl+a":        "move_home",
				"end":           "move_end",
				"ctrl+e":        "move_end",
				"up":            "move_up",
				"down":          "move_down",
				"backspace":     "delete_char_left",
				"delete":        "delete_char_right",
				"ctrl+d":        "delete_char_right",
				"ctrl+w":        "delete_word_left",
				"alt+backspace": "delete_word_left",
				"alt+d":         "delete_word_right",
				"ctrl+u":        "delete_to_start",
				"ctrl+k":        "delete_to_end",
				"ctrl+t":        "transpose",
				"ctrl+y":        "yank",
				"ctrl+j":        "newline",
				"alt+enter":     "newline",
				"enter":         "submit",
				"ctrl+p":        "history_prev",
				"ctrl+n":        "history_next",
				"ctrl+c":        "quit",
			},
		},
	}
}

func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	if _, err := toml.Decode(string(data), &userCfg); err != nil {
		return cfg, err
	}

	if userCfg.Input.MaxVisibleLines > 0 {
		cfg.Input.MaxVisibleLines = userCfg.Input.MaxVisibleLines
	}
	if userCfg.Input.Prompt != "" {
		cfg.Input.Prompt = userCfg.Input.Prompt
	}
	if userCfg.Input.Continuation != "" {
		cfg.Input.Continuation = userCfg.Input.Continuation
	}
	if userCfg.Input.Placeholder != "" {
		cfg.Input.Placeholder = userCfg.Input.Placeholder
	}
	mergeTheme(&cfg.Theme, userCfg.Theme)
	// User bindings override defaults chord by chord.
	for k, v := range userCfg.Keymap.Input {
		cfg.Keymap.Input[k] = v
	}
	return cfg, nil
}

func mergeTheme(dst *Theme, src Theme) {
	if src.Foreground != "" {
		dst.Foreground = src.Foreground
	}
	if src.Background != "" {
		dst.Background = src.Background
	}
	if src.PromptForeground != "" {
		dst.PromptForeground = src.PromptForeground
	}
	if src.PlaceholderForeground != "" {
		dst.PlaceholderForeground = src.PlaceholderForeground
	}
	if src.StatuslineForeground != "" {
		dst.StatuslineForeground = src.StatuslineForeground
	}
	if src.StatuslineBackground != "" {
		dst.StatuslineBackground = src.StatuslineBackground
	}
	if src.UserForeground != "" {
		dst.UserForeground = src.UserForeground
	}
	if src.AssistantForeground != "" {
		dst.AssistantForeground = src.AssistantForeground
	}
	if src.IndicatorForeground != "" {
		dst.IndicatorForeground = src.IndicatorForeground
	}
	if src.SeparatorForeground != "" {
		dst.SeparatorForeground = src.SeparatorForeground
	}
}

func ConfigDir() (string, error) {
	if v := os.Getenv("QCHAT_CONFIG_HOME"); v != "" {
		return filepath.Join(v), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "qchat"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "qchat"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
