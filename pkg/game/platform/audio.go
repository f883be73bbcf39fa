package platform

import (
	"bytes"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"blockfall/pkg/game/assets"
)

// Mixer sample rate, matching the source material.
const sampleRate = 44100

// audioContext is process-wide: the underlying mixer can only be opened
// once per process.
var audioContext *audio.Context

func sharedAudioContext() *audio.Context {
	if audioContext == nil {
		audioContext = audio.NewContext(sampleRate)
	}
	return audioContext
}

// Audio owns the music stream and the decoded one-shot effects. Effect
// playback is fire-and-forget: each trigger spawns an independent
// player on a free channel, overlapping triggers play concurrently, and
// nothing tracks completion. Playback problems are cosmetic and are
// logged at warn, never propagated.
type Audio struct {
	ctx     *audio.Context
	music   *audio.Player
	line    []byte // decoded PCM
	drop    []byte // decoded PCM
	effects bool
}

// newAudio decodes the loaded sound assets and starts the music loop.
func newAudio(ctx *audio.Context, sounds *assets.Sounds, music, effects bool) (*Audio, error) {
	a := &Audio{ctx: ctx, effects: effects}

	line, err := decodeWAV(sounds.Line)
	if err != nil {
		return nil, fmt.Errorf("line effect: %w", err)
	}
	a.line = line

	drop, err := decodeWAV(sounds.Drop)
	if err != nil {
		return nil, fmt.Errorf("drop effect: %w", err)
	}
	a.drop = drop

	stream, err := vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(sounds.Music))
	if err != nil {
		return nil, fmt.Errorf("music: %w", err)
	}
	loop := audio.NewInfiniteLoop(stream, stream.Length())
	player, err := ctx.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("music player: %w", err)
	}
	a.music = player

	if music {
		a.music.Play()
	}
	return a, nil
}

// decodeWAV decodes a one-shot effect to raw PCM at the mixer rate, so
// triggers can build players without re-decoding and assets recorded at
// other rates still play at pitch.
func decodeWAV(data []byte) ([]byte, error) {
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(stream)
}

// OnLineCompleted plays the line-clear effect.
func (a *Audio) OnLineCompleted() {
	a.playEffect(a.line)
}

// OnPieceDrop plays the piece-drop effect.
func (a *Audio) OnPieceDrop() {
	a.playEffect(a.drop)
}

func (a *Audio) playEffect(pcm []byte) {
	if a == nil || !a.effects || len(pcm) == 0 {
		return
	}
	// The player is garbage-collected once playback finishes.
	a.ctx.NewPlayerFromBytes(pcm).Play()
}

// Close stops the music and releases its player. Safe to call on a
// partially constructed Audio and safe to call twice.
func (a *Audio) Close() {
	if a == nil || a.music == nil {
		return
	}
	if err := a.music.Close(); err != nil {
		log.Warn("closing music player", "err", err)
	}
	a.music = nil
}
