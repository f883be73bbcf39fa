package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blockfall.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	if cfg.WindowScale != 2 {
		t.Errorf("WindowScale = %d, want 2", cfg.WindowScale)
	}
	if cfg.AssetDir != "assets" {
		t.Errorf("AssetDir = %q, want %q", cfg.AssetDir, "assets")
	}
	if !cfg.Music || !cfg.Effects {
		t.Errorf("Music = %v, Effects = %v, want both true", cfg.Music, cfg.Effects)
	}
	if cfg.LoopDelayMS != 0 {
		t.Errorf("LoopDelayMS = %d, want 0", cfg.LoopDelayMS)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "window_scale: 3\nmusic: false\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.WindowScale != 3 {
		t.Errorf("WindowScale = %d, want 3", cfg.WindowScale)
	}
	if cfg.Music {
		t.Error("Music = true, want false")
	}
	if cfg.AssetDir != "assets" {
		t.Errorf("AssetDir = %q, want default %q", cfg.AssetDir, "assets")
	}
	if !cfg.Effects {
		t.Error("Effects = false, want default true")
	}
}

func TestLoadClampsWindowScale(t *testing.T) {
	path := writeConfig(t, "window_scale: 0\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.WindowScale != 1 {
		t.Errorf("WindowScale = %d, want clamped to 1", cfg.WindowScale)
	}
}

func TestLoadMissingExplicitPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() = nil error for a missing explicit path, want error")
	}
}

func TestLoadMalformedImplicitFileFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "blockfall.yaml"),
		[]byte("window_scale: [not a number\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") = %v with a corrupt implicit file, want fallback", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoadValidImplicitFileIsUsed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "blockfall.yaml"),
		[]byte("window_scale: 4\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.WindowScale != 4 {
		t.Errorf("WindowScale = %d, want 4", cfg.WindowScale)
	}
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := writeConfig(t, "window_scale: [not a number\n")

	if _, err := Load(path); err == nil {
		t.Error("Load() = nil error for malformed YAML, want error")
	}
}
