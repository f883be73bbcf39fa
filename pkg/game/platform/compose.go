package platform

import (
	"image"

	"blockfall/pkg/engine/game"
	"blockfall/pkg/engine/input"
)

// Engine is the adapter's view of the rules engine: the event entry
// points, the per-iteration step, and the read-only queries the frame
// composer renders from.
type Engine interface {
	input.Sink

	// Update advances gravity and held-key auto-shift.
	Update()

	// Dirty flag protocol: render the full frame if and only if
	// HasChanged reports true, then acknowledge exactly once with
	// OnChangeProcessed before the next query.
	HasChanged() bool
	OnChangeProcessed()

	ShowPreview() bool
	ShowShadow() bool
	ShadowGap() int
	NextBlock() game.Block
	FallingBlock() game.Block
	Cell(col, row int) int
	Stats() game.Stats
	IsPaused() bool

	// Finished reports that a quit event was observed.
	Finished() bool
}

// Composer performs one presentation pass per loop iteration: if the
// engine reports a change it redraws the whole frame back-to-front,
// acknowledges consumption, and flips; otherwise it does nothing.
type Composer struct {
	sprites    *Sprites
	background *image.RGBA
	dst        FrameBuffer
}

// NewComposer wires the sprite renderer, background atlas and target
// frame buffer together.
func NewComposer(sprites *Sprites, background *image.RGBA, dst FrameBuffer) *Composer {
	return &Composer{
		sprites:    sprites,
		background: background,
		dst:        dst,
	}
}

// Render runs one pass and reports whether a frame was presented.
func (c *Composer) Render(eng Engine) bool {
	if !eng.HasChanged() {
		return false
	}

	// Background covers the whole frame, so no explicit clear.
	c.dst.Blit(c.background, c.background.Bounds(), 0, 0)

	if eng.ShowPreview() {
		c.drawBlockAt(eng.NextBlock(), PreviewX, PreviewY, false)
	}

	// Shadow first so the real piece and the board overdraw it.
	falling := eng.FallingBlock()
	if eng.ShowShadow() && eng.ShadowGap() > 0 {
		c.drawBoardBlock(falling, falling.Y+eng.ShadowGap(), true)
	}

	for i := 0; i < game.BoardWidth; i++ {
		for j := 0; j < game.BoardHeight; j++ {
			if cell := eng.Cell(i, j); cell != game.EmptyCell {
				c.sprites.DrawTile(c.dst,
					BoardX+TileSize*i,
					BoardY+TileSize*j,
					cell, false)
			}
		}
	}

	// Falling piece last so it overlaps the board correctly.
	c.drawBoardBlock(falling, falling.Y, false)

	if !eng.IsPaused() {
		c.drawHUD(eng.Stats())
	}

	eng.OnChangeProcessed()
	c.dst.Flip()
	return true
}

// drawBlockAt blits every non-empty cell of a block grid at a fixed
// screen anchor (used for the preview).
func (c *Composer) drawBlockAt(b game.Block, anchorX, anchorY int, shadow bool) {
	for i := 0; i < game.PieceSize; i++ {
		for j := 0; j < game.PieceSize; j++ {
			if b.Cells[i][j] == game.EmptyCell {
				continue
			}
			c.sprites.DrawTile(c.dst,
				anchorX+TileSize*i,
				anchorY+TileSize*j,
				b.Cells[i][j], shadow)
		}
	}
}

// drawBoardBlock blits a block grid at its board-relative position,
// with the row overridden (the shadow draws at Y+gap).
func (c *Composer) drawBoardBlock(b game.Block, row int, shadow bool) {
	for i := 0; i < game.PieceSize; i++ {
		for j := 0; j < game.PieceSize; j++ {
			if b.Cells[i][j] == game.EmptyCell {
				continue
			}
			c.sprites.DrawTile(c.dst,
				BoardX+TileSize*(b.X+i),
				BoardY+TileSize*(row+j),
				b.Cells[i][j], shadow)
		}
	}
}

// drawHUD renders every numeral field. Each tetromino counter is bound
// to its display color; the aggregate fields render white.
func (c *Composer) drawHUD(st game.Stats) {
	c.sprites.DrawNumber(c.dst, LevelX, LevelY, int64(st.Level), LevelDigits, game.ColorWhite)
	c.sprites.DrawNumber(c.dst, LinesX, LinesY, int64(st.Lines), LinesDigits, game.ColorWhite)
	c.sprites.DrawNumber(c.dst, ScoreX, ScoreY, st.Score, ScoreDigits, game.ColorWhite)

	c.sprites.DrawNumber(c.dst, TetrominoX, TetrominoLY, int64(st.Pieces[game.TetrominoL]), TetrominoDigits, game.ColorOrange)
	c.sprites.DrawNumber(c.dst, TetrominoX, TetrominoIY, int64(st.Pieces[game.TetrominoI]), TetrominoDigits, game.ColorCyan)
	c.sprites.DrawNumber(c.dst, TetrominoX, TetrominoTY, int64(st.Pieces[game.TetrominoT]), TetrominoDigits, game.ColorPurple)
	c.sprites.DrawNumber(c.dst, TetrominoX, TetrominoSY, int64(st.Pieces[game.TetrominoS]), TetrominoDigits, game.ColorGreen)
	c.sprites.DrawNumber(c.dst, TetrominoX, TetrominoZY, int64(st.Pieces[game.TetrominoZ]), TetrominoDigits, game.ColorRed)
	c.sprites.DrawNumber(c.dst, TetrominoX, TetrominoOY, int64(st.Pieces[game.TetrominoO]), TetrominoDigits, game.ColorYellow)
	c.sprites.DrawNumber(c.dst, TetrominoX, TetrominoJY, int64(st.Pieces[game.TetrominoJ]), TetrominoDigits, game.ColorBlue)

	c.sprites.DrawNumber(c.dst, PiecesX, PiecesY, int64(st.TotalPieces), PiecesDigits, game.ColorWhite)
}
