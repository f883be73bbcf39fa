package platform

import (
	"fmt"
	"image"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"blockfall/pkg/engine/input"
)

// Run opens the window and drives the adapter until the engine observes
// a quit event. The loop itself runs on its own goroutine; the window
// driver only polls keys and presents the front buffer.
func (p *Platform) Run(eng Engine) error {
	if !p.initialized {
		return fmt.Errorf("%w: Run before Init", ErrPlatformInit)
	}

	go p.loop(eng)

	if err := ebiten.RunGame(&driver{platform: p}); err != nil {
		return fmt.Errorf("%w: %w", ErrVideoSurface, err)
	}
	return nil
}

// loop is the single thread of control: drain input, step the engine,
// render if dirty, rest. Nothing here blocks on another subsystem.
func (p *Platform) loop(eng Engine) {
	defer close(p.quitCh)
	log.Info("adapter loop started", "delay", p.gate.Delay())

	for {
		p.drainInput(eng)
		eng.Update()
		p.composer.Render(eng)
		if eng.Finished() {
			log.Info("quit observed, loop stopping")
			return
		}
		p.gate.Wait()
	}
}

// driver adapts the platform to the window library's callback loop. It
// runs on the render thread; all shared state crosses over through the
// input queue, the quit channel and the frame's front-buffer lock.
type driver struct {
	platform *Platform
}

// Update polls raw key transitions and forwards them to the loop. A
// window-close request is reported as a raw quit signal rather than
// terminating directly, so the engine gets to observe it like any other
// event.
func (d *driver) Update() error {
	select {
	case <-d.platform.quitCh:
		return ebiten.Termination
	default:
	}

	now := time.Now()
	if ebiten.IsWindowBeingClosed() {
		d.platform.pushRaw(input.RawKey{
			Device:    input.DeviceWindow,
			Code:      "window_close",
			Down:      true,
			Timestamp: now,
		})
	}
	for _, ev := range pollTransitions(now) {
		d.platform.pushRaw(ev)
	}
	return nil
}

// Draw uploads the front buffer. The composer already decided whether
// anything changed; presenting the same pixels again is harmless.
func (d *driver) Draw(screen *ebiten.Image) {
	d.platform.frame.WithFront(func(front *image.RGBA) {
		screen.WritePixels(front.Pix)
	})
}

// Layout pins the logical resolution; the window scale only affects the
// outside size.
func (d *driver) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
