package platform

import (
	"errors"
	"path/filepath"
	"testing"

	"blockfall/pkg/game/config"
)

func TestInitMissingAssetsIsAssetLoadFailure(t *testing.T) {
	cfg := config.Default()
	cfg.AssetDir = filepath.Join(t.TempDir(), "missing")

	p := New(cfg)
	err := p.Init()
	if err == nil {
		t.Fatal("Init() = nil error with a missing asset dir, want error")
	}
	if !errors.Is(err, ErrAssetLoad) {
		t.Errorf("Init() = %v, want errors.Is(err, ErrAssetLoad)", err)
	}

	// A failed Init must keep the loop from ever starting.
	if err := p.Run(newFakeEngine(&frameRecorder{})); !errors.Is(err, ErrPlatformInit) {
		t.Errorf("Run() after failed Init = %v, want errors.Is(err, ErrPlatformInit)", err)
	}
}

func TestInitRejectsInvalidWindowScale(t *testing.T) {
	cfg := config.Default()
	cfg.WindowScale = 0

	err := New(cfg).Init()
	if !errors.Is(err, ErrVideoSurface) {
		t.Errorf("Init() = %v, want errors.Is(err, ErrVideoSurface)", err)
	}
}
