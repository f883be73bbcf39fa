// Package assets loads the fixed game assets: the three sprite atlases
// (tiles, background, digits) and the three audio files (music loop,
// line-clear effect, drop effect). Everything is loaded once at startup
// and held immutable for the process lifetime.
package assets

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"

	// The original atlas images are BMPs; PNG re-exports are accepted too.
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// Fixed asset base names. The loader probes the known image encodings
// for each atlas; audio file names are exact.
const (
	tileAtlasName       = "blocks"
	backgroundAtlasName = "back"
	digitAtlasName      = "numbers"

	musicName     = "music.ogg"
	lineSoundName = "fx_line.wav"
	dropSoundName = "fx_drop.wav"
)

var imageExtensions = []string{".bmp", ".png"}

// Images holds the three decoded atlases. They are referenced by every
// blit call and never copied.
type Images struct {
	Tiles      *image.RGBA
	Background *image.RGBA
	Numbers    *image.RGBA
}

// Sounds holds the raw (still encoded) audio file contents. Decoding is
// the audio subsystem's job; this package only does I/O.
type Sounds struct {
	Music []byte // Ogg Vorbis stream, looped forever
	Line  []byte // WAV one-shot
	Drop  []byte // WAV one-shot
}

// LoadImages decodes the three atlases from dir.
func LoadImages(dir string) (*Images, error) {
	tiles, err := loadImage(dir, tileAtlasName)
	if err != nil {
		return nil, err
	}
	back, err := loadImage(dir, backgroundAtlasName)
	if err != nil {
		return nil, err
	}
	numbers, err := loadImage(dir, digitAtlasName)
	if err != nil {
		return nil, err
	}
	return &Images{Tiles: tiles, Background: back, Numbers: numbers}, nil
}

// LoadSounds reads the three audio files from dir.
func LoadSounds(dir string) (*Sounds, error) {
	music, err := os.ReadFile(filepath.Join(dir, musicName))
	if err != nil {
		return nil, fmt.Errorf("failed to read music: %w", err)
	}
	line, err := os.ReadFile(filepath.Join(dir, lineSoundName))
	if err != nil {
		return nil, fmt.Errorf("failed to read line effect: %w", err)
	}
	drop, err := os.ReadFile(filepath.Join(dir, dropSoundName))
	if err != nil {
		return nil, fmt.Errorf("failed to read drop effect: %w", err)
	}
	return &Sounds{Music: music, Line: line, Drop: drop}, nil
}

// loadImage decodes one atlas, probing the accepted encodings, and
// normalizes it to RGBA so blits are a straight pixel copy.
func loadImage(dir, base string) (*image.RGBA, error) {
	var lastErr error
	for _, ext := range imageExtensions {
		path := filepath.Join(dir, base+ext)
		f, err := os.Open(path)
		if err != nil {
			lastErr = err
			continue
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
		return toRGBA(img), nil
	}
	return nil, fmt.Errorf("failed to load atlas %q from %s: %w", base, dir, lastErr)
}

// toRGBA converts a decoded image to RGBA without sharing pixels.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
