package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ParsesEnvAndDefaults(t *testing.T) {
	t.Setenv("CHUCKLECHAIN_PREFS", "/tmp/cc/prefs.yaml")
	t.Setenv("CHUCKLECHAIN_DEBUG", "/tmp/cc/debug.log")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.PrefsPath != "/tmp/cc/prefs.yaml" || cfg.DebugLog != "/tmp/cc/debug.log" {
		t.Fatalf("unexpected config: %#v", cfg)
	}
}

func TestLoad_DefaultsPrefsPathUnderConfigDir(t *testing.T) {
	t.Setenv("CHUCKLECHAIN_PREFS", "")
	t.Setenv("CHUCKLECHAIN_DEBUG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if filepath.Base(cfg.PrefsPath) != "prefs.yaml" {
		t.Fatalf("unexpected default prefs path: %q", cfg.PrefsPath)
	}
	if cfg.DebugLog != "" {
		t.Fatalf("debug logging must default to disabled")
	}
}

func TestPrefs_LoadAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")

	p, err := LoadPrefs(path)
	if err != nil {
		t.Fatalf("missing prefs should not error: %v", err)
	}
	if p != (Prefs{}) {
		t.Fatalf("expected zero prefs for missing file")
	}

	want := Prefs{FontScale: "1.2", FeedSource: "trending"}
	if err := SavePrefs(path, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := LoadPrefs(path)
	if err != nil {
		t.Fatalf("load after save failed: %v", err)
	}
	if got != want {
		t.Fatalf("unexpected loaded prefs got=%#v want=%#v", got, want)
	}

	if err := os.WriteFile(path, []byte("\t: not yaml"), 0o600); err != nil {
		t.Fatalf("write corrupt prefs failed: %v", err)
	}
	if _, err := LoadPrefs(path); err == nil {
		t.Fatalf("expected parse error for invalid yaml")
	}
}

func TestPrefs_FontScaleRoundTrip(t *testing.T) {
	var p Prefs
	p.SetFontScale(1.2)
	if p.FontScale != "1.2" {
		t.Fatalf("expected string-encoded scale, got %q", p.FontScale)
	}
	if got := p.FontScaleValue(); got != 1.2 {
		t.Fatalf("round trip: got %v want 1.2", got)
	}
}

func TestPrefs_FontScaleClampAndFallback(t *testing.T) {
	tests := []struct {
		stored string
		want   float64
	}{
		{"", DefaultFontScale},
		{"banana", DefaultFontScale},
		{"0.1", MinFontScale},
		{"9", MaxFontScale},
		{"1", 1.0},
	}
	for _, tc := range tests {
		p := Prefs{FontScale: tc.stored}
		if got := p.FontScaleValue(); got != tc.want {
			t.Fatalf("FontScaleValue(%q) = %v, want %v", tc.stored, got, tc.want)
		}
	}
}
