package platform

import (
	"image"
	"testing"

	"blockfall/pkg/engine/game"
	"blockfall/pkg/game/assets"
)

// blitCall is one recorded Blit invocation.
type blitCall struct {
	src  *image.RGBA
	sr   image.Rectangle
	x, y int
}

// frameRecorder is a FrameBuffer that records instead of drawing. The
// shared log captures call ordering across the whole render pass.
type frameRecorder struct {
	calls []blitCall
	flips int
	log   []string
}

func (r *frameRecorder) Blit(src *image.RGBA, sr image.Rectangle, x, y int) {
	r.calls = append(r.calls, blitCall{src: src, sr: sr, x: x, y: y})
	r.log = append(r.log, "blit")
}

func (r *frameRecorder) Flip() {
	r.flips++
	r.log = append(r.log, "flip")
}

// testAtlases builds blank in-memory atlases sized like the real ones.
func testAtlases(t *testing.T) *assets.Images {
	t.Helper()
	return &assets.Images{
		Tiles:      image.NewRGBA(image.Rect(0, 0, TileSize*8+1, (TileSize+1)*2)),
		Numbers:    image.NewRGBA(image.Rect(0, 0, NumberWidth*10, NumberHeight*8)),
		Background: image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight)),
	}
}

func TestDrawNumberBlitsExactlyLengthGlyphs(t *testing.T) {
	rec := &frameRecorder{}
	s := NewSprites(testAtlases(t))

	s.DrawNumber(rec, 100, 50, 7, 3, game.ColorWhite)

	if len(rec.calls) != 3 {
		t.Fatalf("got %d blits, want 3", len(rec.calls))
	}

	// Least-significant digit first, walking leftward: 7, 0, 0.
	wantDigits := []int{7, 0, 0}
	for i, call := range rec.calls {
		wantX := 100 + NumberWidth*(3-i)
		if call.x != wantX {
			t.Errorf("blit %d at x=%d, want %d", i, call.x, wantX)
		}
		if call.y != 50 {
			t.Errorf("blit %d at y=%d, want 50", i, call.y)
		}
		wantSrcX := NumberWidth * wantDigits[i]
		if call.sr.Min.X != wantSrcX {
			t.Errorf("blit %d source x=%d, want digit %d at %d",
				i, call.sr.Min.X, wantDigits[i], wantSrcX)
		}
		if call.sr.Min.Y != NumberHeight*game.ColorWhite {
			t.Errorf("blit %d source y=%d, want white row %d",
				i, call.sr.Min.Y, NumberHeight*game.ColorWhite)
		}
	}
}

func TestDrawNumberTruncatesToLowDigits(t *testing.T) {
	rec := &frameRecorder{}
	s := NewSprites(testAtlases(t))

	s.DrawNumber(rec, 0, 0, 12345, 2, game.ColorWhite)

	if len(rec.calls) != 2 {
		t.Fatalf("got %d blits, want 2", len(rec.calls))
	}
	wantDigits := []int{5, 4}
	for i, call := range rec.calls {
		if call.sr.Min.X != NumberWidth*wantDigits[i] {
			t.Errorf("blit %d source x=%d, want digit %d", i, call.sr.Min.X, wantDigits[i])
		}
	}
}

func TestDrawNumberClampsNegativeToZero(t *testing.T) {
	rec := &frameRecorder{}
	s := NewSprites(testAtlases(t))

	s.DrawNumber(rec, 0, 0, -42, 3, game.ColorWhite)

	if len(rec.calls) != 3 {
		t.Fatalf("got %d blits, want 3", len(rec.calls))
	}
	for i, call := range rec.calls {
		if call.sr.Min.X != 0 {
			t.Errorf("blit %d source x=%d, want digit 0", i, call.sr.Min.X)
		}
	}
}

func TestDrawTileSourceRects(t *testing.T) {
	rec := &frameRecorder{}
	s := NewSprites(testAtlases(t))

	s.DrawTile(rec, 10, 20, 3, false)
	s.DrawTile(rec, 10, 20, 3, true)

	if len(rec.calls) != 2 {
		t.Fatalf("got %d blits, want 2", len(rec.calls))
	}

	normal := rec.calls[0].sr
	wantNormal := image.Rect(TileSize*3, 0, TileSize*3+TileSize+1, TileSize+1)
	if normal != wantNormal {
		t.Errorf("normal tile source = %v, want %v", normal, wantNormal)
	}

	shadow := rec.calls[1].sr
	wantShadow := image.Rect(TileSize*3, TileSize+1, TileSize*3+TileSize+1, 2*(TileSize+1))
	if shadow != wantShadow {
		t.Errorf("shadow tile source = %v, want %v", shadow, wantShadow)
	}
}
