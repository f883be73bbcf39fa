// Package platform is the presentation-and-input adapter: it owns the
// video surface, the sprite atlases, the audio channels and the raw
// input queue, and translates between them and the rules engine. The
// engine pulls nothing; the adapter loop pushes intents in and pulls
// state out once per iteration.
package platform

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"blockfall/pkg/engine/input"
	"blockfall/pkg/game/assets"
	"blockfall/pkg/game/config"
)

// Platform owns every native handle for the process lifetime. Acquire
// with Init, release with End; no other code path releases anything.
type Platform struct {
	cfg config.Config

	images   *assets.Images
	frame    *Frame
	sprites  *Sprites
	composer *Composer
	audio    *Audio
	gate     *Gate

	inputCh chan input.RawKey
	quitCh  chan struct{}

	initialized bool
	closed      bool
}

// New creates an unopened platform. Nothing is acquired until Init.
func New(cfg config.Config) *Platform {
	return &Platform{
		cfg:     cfg,
		inputCh: make(chan input.RawKey, inputQueueSize),
		quitCh:  make(chan struct{}),
	}
}

// Init acquires, in order: the video surface and window, the three
// atlas images, and the audio mixer with its music and effect handles.
// The first failure aborts with a classified error and no rollback
// beyond End; the caller terminates without starting the loop.
func (p *Platform) Init() error {
	if p.cfg.WindowScale < 1 {
		return fmt.Errorf("%w: window scale %d", ErrVideoSurface, p.cfg.WindowScale)
	}

	frame, err := NewFrame(ScreenWidth, ScreenHeight)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrVideoSurface, err)
	}
	p.frame = frame

	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowSize(ScreenWidth*p.cfg.WindowScale, ScreenHeight*p.cfg.WindowScale)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(driverTPS)
	log.Info("video surface ready",
		"logical", fmt.Sprintf("%dx%d", ScreenWidth, ScreenHeight),
		"scale", p.cfg.WindowScale)

	images, err := assets.LoadImages(p.cfg.AssetDir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAssetLoad, err)
	}
	p.images = images
	p.sprites = NewSprites(images)
	p.composer = NewComposer(p.sprites, images.Background, p.frame)
	log.Info("atlases loaded", "dir", p.cfg.AssetDir)

	sounds, err := assets.LoadSounds(p.cfg.AssetDir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAssetLoad, err)
	}
	audio, err := newAudio(sharedAudioContext(), sounds, p.cfg.Music, p.cfg.Effects)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAssetLoad, err)
	}
	p.audio = audio
	log.Info("audio ready", "rate", sampleRate, "music", p.cfg.Music, "effects", p.cfg.Effects)

	p.gate = NewGate(time.Duration(p.cfg.LoopDelayMS) * time.Millisecond)

	p.initialized = true
	return nil
}

// Audio returns the cue dispatcher for wiring into the engine. Nil
// before a successful Init.
func (p *Platform) Audio() *Audio {
	return p.audio
}

// End releases everything Init acquired. Idempotent, and safe after a
// failed Init: every release is nil-guarded, so resources that were
// never acquired are skipped. The window itself is reclaimed when the
// driver returns.
func (p *Platform) End() {
	if p.closed {
		return
	}
	p.closed = true

	p.audio.Close()
	p.audio = nil
	p.composer = nil
	p.sprites = nil
	p.images = nil
	p.frame = nil
	log.Info("platform released")
}
