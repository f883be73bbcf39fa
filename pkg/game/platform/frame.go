package platform

import (
	"fmt"
	"image"
	"image/draw"
	"sync"
)

// Frame is the adapter-owned surface: a double-buffered RGBA pixel
// store. The loop goroutine composes into the back buffer and publishes
// it with Flip; the window driver reads the front buffer under the
// mutex. Composition never touches the GPU, which keeps every blit
// testable without a display.
type Frame struct {
	mu    sync.RWMutex
	back  *image.RGBA
	front *image.RGBA
}

// NewFrame creates a zeroed frame of the given size.
func NewFrame(width, height int) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid surface size %dx%d", width, height)
	}
	return &Frame{
		back:  image.NewRGBA(image.Rect(0, 0, width, height)),
		front: image.NewRGBA(image.Rect(0, 0, width, height)),
	}, nil
}

// Blit copies the source rectangle sr of src onto the back buffer at
// (x, y). Out-of-bounds regions are clipped.
func (f *Frame) Blit(src *image.RGBA, sr image.Rectangle, x, y int) {
	dr := image.Rect(x, y, x+sr.Dx(), y+sr.Dy())
	draw.Draw(f.back, dr, src, sr.Min, draw.Over)
}

// Flip publishes the back buffer as the new front buffer. The old front
// buffer becomes the next back buffer; the composer repaints it fully
// (background first), so its stale content never shows.
func (f *Frame) Flip() {
	f.mu.Lock()
	f.front, f.back = f.back, f.front
	f.mu.Unlock()
}

// WithFront runs fn with the current front buffer while holding the
// read lock. fn must not retain the image.
func (f *Frame) WithFront(fn func(*image.RGBA)) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	fn(f.front)
}
