package config

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.SoundEnabled || !cfg.FlashEnabled {
		t.Error("alerts should default to enabled")
	}
	if cfg.Muted {
		t.Error("should not default to muted")
	}
	if cfg.Volume != "loud" {
		t.Errorf("Volume = %q, want loud", cfg.Volume)
	}
	if !strings.HasSuffix(cfg.ClaudeDir, ".claude") {
		t.Errorf("ClaudeDir = %q, want ~/.claude", cfg.ClaudeDir)
	}
	if cfg.RefreshSecs != 30 {
		t.Errorf("RefreshSecs = %d, want 30", cfg.RefreshSecs)
	}
}

func TestVolumeLevel(t *testing.T) {
	tests := []struct {
		volume string
		want   float64
	}{
		{"loud", 1.0},
		{"medium", 0.5},
		{"low", 0.2},
		{"", 1.0},
		{"garbage", 1.0},
	}

	for _, tt := range tests {
		cfg := Config{Volume: tt.volume}
		if got := cfg.VolumeLevel(); got != tt.want {
			t.Errorf("VolumeLevel(%q) = %v, want %v", tt.volume, got, tt.want)
		}
	}
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.Volume != "loud" || !cfg.SoundEnabled {
		t.Errorf("expected defaults for missing config, got %+v", cfg)
	}
	if Exists() {
		t.Error("Exists() should be false before any Save")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.SoundEnabled = false
	cfg.Volume = "low"
	cfg.Muted = true
	cfg.RefreshSecs = 5

	if err := Save(cfg); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() should be true after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if got.SoundEnabled {
		t.Error("SoundEnabled should round-trip as false")
	}
	if got.Volume != "low" {
		t.Errorf("Volume = %q, want low", got.Volume)
	}
	if !got.Muted {
		t.Error("Muted should round-trip as true")
	}
	if got.RefreshSecs != 5 {
		t.Errorf("RefreshSecs = %d, want 5", got.RefreshSecs)
	}
}
