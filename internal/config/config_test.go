package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("expected zero dimensions, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if cfg.App.ShowFooter {
		t.Fatalf("expected footer disabled by default")
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected trace disabled by default")
	}
	if len(cfg.Keymap) != 0 {
		t.Fatalf("expected empty keymap, got %v", cfg.Keymap)
	}
}

func TestLoadArgsFlags(t *testing.T) {
	cfg, err := LoadArgs([]string{"-width", "80", "-height", "24", "-footer", "-trace", "-log-file", "out.log"}, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Width != 80 || cfg.App.Height != 24 {
		t.Fatalf("expected 80x24, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer enabled")
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "out.log" {
		t.Fatalf("expected trace logging to out.log, got %+v", cfg.Logging)
	}
	if cfg.Flags["width"] != "80" || cfg.Flags["footer"] != "true" {
		t.Fatalf("expected flag snapshot, got %v", cfg.Flags)
	}
}

func TestLoadArgsEnvFallback(t *testing.T) {
	environ := []string{
		"OUTLINE_POPUP_CONTROL_WIDTH=100",
		"OUTLINE_POPUP_CONTROL_FOOTER=true",
		"OUTLINE_POPUP_CONTROL_TRACE=1",
	}
	cfg, err := LoadArgs(nil, environ)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Width != 100 {
		t.Fatalf("expected width 100 from env, got %d", cfg.App.Width)
	}
	if !cfg.App.ShowFooter || !cfg.Logging.Trace {
		t.Fatalf("expected footer and trace from env, got %+v", cfg)
	}
}

func TestFlagOverridesEnv(t *testing.T) {
	cfg, err := LoadArgs([]string{"-width", "42"}, []string{"OUTLINE_POPUP_CONTROL_WIDTH=100"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Width != 42 {
		t.Fatalf("expected flag to win over env, got %d", cfg.App.Width)
	}
}

func TestMalformedEnvFallsBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"OUTLINE_POPUP_CONTROL_WIDTH=wide", "OUTLINE_POPUP_CONTROL_TRACE=sure"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Width != 0 || cfg.Logging.Trace {
		t.Fatalf("expected malformed env ignored, got %+v", cfg)
	}
}

func TestNegativeDimensionsRejected(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"-height", "-5"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
}

func TestLoadKeymapFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keymap.yaml")
	content := "n: move-down\np: move-up\n\"+\": add-sibling\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write keymap: %v", err)
	}
	cfg, err := LoadArgs([]string{"-keymap-file", path}, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Keymap["n"] != "move-down" || cfg.Keymap["p"] != "move-up" || cfg.Keymap["+"] != "add-sibling" {
		t.Fatalf("expected keymap entries, got %v", cfg.Keymap)
	}
	if cfg.App.Keymap["n"] != "move-down" {
		t.Fatalf("expected keymap threaded into app config, got %v", cfg.App.Keymap)
	}
}

func TestLoadKeymapMissingFile(t *testing.T) {
	if _, err := LoadArgs([]string{"-keymap-file", filepath.Join(t.TempDir(), "absent.yaml")}, nil); err == nil {
		t.Fatalf("expected error for missing keymap file")
	}
}

func TestLoadKeymapBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keymap.yaml")
	if err := os.WriteFile(path, []byte("- not\n- a\n- mapping\n"), 0o644); err != nil {
		t.Fatalf("write keymap: %v", err)
	}
	if _, err := LoadArgs([]string{"-keymap-file", path}, nil); err == nil {
		t.Fatalf("expected error for malformed keymap file")
	}
}

func TestLoadKeymapUnknownAction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keymap.yaml")
	if err := os.WriteFile(path, []byte("n: fly\n"), 0o644); err != nil {
		t.Fatalf("write keymap: %v", err)
	}
	if _, err := LoadArgs([]string{"-keymap-file", path}, nil); err == nil {
		t.Fatalf("expected error for unknown action name")
	}
}

func TestKeymapEnvFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keymap.yaml")
	if err := os.WriteFile(path, []byte("q: remove\n"), 0o644); err != nil {
		t.Fatalf("write keymap: %v", err)
	}
	cfg, err := LoadArgs(nil, []string{"OUTLINE_POPUP_CONTROL_KEYMAP_FILE=" + path})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Keymap["q"] != "remove" {
		t.Fatalf("expected keymap from env path, got %v", cfg.Keymap)
	}
}
