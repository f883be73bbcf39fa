package platform

import (
	"image"

	"blockfall/pkg/game/assets"
)

// Blitter is the destination of sprite copies. *Frame implements it;
// tests use a recording fake.
type Blitter interface {
	Blit(src *image.RGBA, sr image.Rectangle, x, y int)
}

// FrameBuffer is a Blitter that can present what was blitted.
type FrameBuffer interface {
	Blitter
	Flip()
}

// Sprites maps logical tile indices and decimal digits to source
// rectangles inside the shared atlases. It is stateless; its only side
// effect is the blits it issues.
type Sprites struct {
	tiles   *image.RGBA
	numbers *image.RGBA
}

// NewSprites wraps the decoded atlases.
func NewSprites(images *assets.Images) *Sprites {
	return &Sprites{
		tiles:   images.Tiles,
		numbers: images.Numbers,
	}
}

// DrawTile blits one tile onto dst at (x, y). The source column is the
// tile index; shadow selects the second atlas row, where the ghost
// variants live. The copied square is TileSize+1 on a side: the shared
// padding pixel comes along, exactly as the atlas intends.
func (s *Sprites) DrawTile(dst Blitter, x, y, tile int, shadow bool) {
	srcX := TileSize * tile
	srcY := 0
	if shadow {
		srcY = TileSize + 1
	}
	sr := image.Rect(srcX, srcY, srcX+TileSize+1, srcY+TileSize+1)
	dst.Blit(s.tiles, sr, x, y)
}

// DrawNumber renders value right-aligned in a fixed-width field of
// length digits, least-significant digit first, walking leftward one
// glyph per digit. Exactly length glyphs are always blitted: leading
// positions render the zeros the repeated division produces, and values
// wider than the field are truncated to their low digits. color selects
// the digit atlas row.
func (s *Sprites) DrawNumber(dst Blitter, x, y int, value int64, length, color int) {
	if value < 0 {
		value = 0
	}
	srcY := NumberHeight * color
	pos := 0
	for {
		dstX := x + NumberWidth*(length-pos)
		srcX := NumberWidth * int(value%10)
		sr := image.Rect(srcX, srcY, srcX+NumberWidth, srcY+NumberHeight)
		dst.Blit(s.numbers, sr, dstX, y)
		value /= 10
		pos++
		if pos >= length {
			break
		}
	}
}
