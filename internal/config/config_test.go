package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestConfigDirEnv(t *testing.T) {
	t.Setenv("QCHAT_CONFIG_HOME", "/tmp/qchat-config")
	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir error: %v", err)
	}
	if dir != "/tmp/qchat-config" {
		t.Fatalf("ConfigDir = %q, want %q", dir, "/tmp/qchat-config")
	}

	t.Setenv("QCHAT_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err = ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir error: %v", err)
	}
	if dir != "/tmp/xdg/qchat" {
		t.Fatalf("ConfigDir = %q, want %q", dir, "/tmp/xdg/qchat")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("QCHAT_CONFIG_HOME", t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Input.MaxVisibleLines != 6 {
		t.Fatalf("MaxVisibleLines = %d, want 6", cfg.Input.MaxVisibleLines)
	}
	if cfg.Keymap.Input["ctrl+k"] != "delete_to_end" {
		t.Fatalf("ctrl+k = %q, want %q", cfg.Keymap.Input["ctrl+k"], "delete_to_end")
	}
}

func TestLoadWithOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QCHAT_CONFIG_HOME", dir)

	writeFile(t, filepath.Join(dir, "config.toml"), `
[input]
max-visible-lines = 10
prompt = ">> "

[theme]
foreground = "#111111"
user-foreground = "#222222"

[keymap.input]
"ctrl+g" = "delete_to_start"
"ctrl+k" = "yank"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Input.MaxVisibleLines != 10 {
		t.Fatalf("MaxVisibleLines = %d, want 10", cfg.Input.MaxVisibleLines)
	}
	if cfg.Input.Prompt != ">> " {
		t.Fatalf("Prompt = %q, want %q", cfg.Input.Prompt, ">> ")
	}
	if cfg.Input.Placeholder != "type a message" {
		t.Fatalf("Placeholder = %q, default not kept", cfg.Input.Placeholder)
	}
	if cfg.Theme.Foreground != "#111111" {
		t.Fatalf("Foreground = %q, want %q", cfg.Theme.Foreground, "#111111")
	}
	if cfg.Theme.UserForeground != "#222222" {
		t.Fatalf("UserForeground = %q, want %q", cfg.Theme.UserForeground, "#222222")
	}
	if cfg.Theme.Background != "#0A0E14" {
		t.Fatalf("Background = %q, default not kept", cfg.Theme.Background)
	}
	if cfg.Keymap.Input["ctrl+g"] != "delete_to_start" {
		t.Fatalf("ctrl+g = %q, want %q", cfg.Keymap.Input["ctrl+g"], "delete_to_start")
	}
	if cfg.Keymap.Input["ctrl+k"] != "yank" {
		t.Fatalf("ctrl+k = %q, override not applied", cfg.Keymap.Input["ctrl+k"])
	}
	if cfg.Keymap.Input["enter"] != "submit" {
		t.Fatalf("enter = %q, default binding lost", cfg.Keymap.Input["enter"])
	}
}

func TestLoadBadTomlReturnsError(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QCHAT_CONFIG_HOME", dir)
	writeFile(t, filepath.Join(dir, "config.toml"), "[input\n")
	if _, err := Load(); err == nil {
		t.Fatalf("Load accepted malformed toml")
	}
}
