// Package game implements the falling-block rules engine. The platform
// adapter reads its state through a narrow query surface and pushes
// player intents in through the two event entry points; the engine owns
// the board, the scoring, the pause/game-over machine and the dirty flag
// the renderer keys off.
package game

import (
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"

	"blockfall/pkg/engine/input"
)

// Board and piece geometry.
const (
	BoardWidth  = 10
	BoardHeight = 22
	PieceSize   = 4
	EmptyCell   = -1
)

// Tetromino kinds. The order fixes the per-shape HUD counter layout.
const (
	TetrominoI = iota
	TetrominoO
	TetrominoT
	TetrominoS
	TetrominoZ
	TetrominoJ
	TetrominoL

	TetrominoTypes = 7
)

// Color identifiers. Cell values and HUD color bands share this order:
// the tile atlas has one column per color, the digit atlas one row.
const (
	ColorCyan = iota
	ColorRed
	ColorBlue
	ColorOrange
	ColorGreen
	ColorYellow
	ColorPurple
	ColorWhite
)

// Gravity and auto-shift tuning (milliseconds).
const (
	initialFallDelay = 1000
	minFallDelay     = 80
	autoShiftDelay   = 200 // held key: delay before the first repeat
	autoShiftRepeat  = 60  // held key: interval between repeats
)

// Scoring.
const (
	linesPerLevel  = 10
	softDropPoints = 1
	hardDropPoints = 2 // per row dropped
)

// scoreByRows is the award for clearing 1..4 rows at once.
var scoreByRows = [5]int64{0, 400, 1000, 3000, 12000}

// Stats is the HUD statistics block.
type Stats struct {
	Level       int
	Lines       int
	Score       int64
	TotalPieces int
	Pieces      [TetrominoTypes]int
}

// Cues receives game notifications that drive one-shot sound effects.
// Implementations must be fire-and-forget; the engine never waits.
type Cues interface {
	OnLineCompleted()
	OnPieceDrop()
}

// Game is the rules engine.
type Game struct {
	board   [BoardWidth][BoardHeight]int
	falling Block
	next    Block
	stats   Stats

	shadowGap int

	paused   bool
	over     bool
	finished bool
	preview  bool
	shadow   bool

	// changed is the dirty flag: set on every visible state mutation,
	// cleared only by OnChangeProcessed.
	changed bool

	fallDelay int64
	lastFall  int64

	held     mapset.Set[input.Event]
	repeatAt map[input.Event]int64

	rng   *rand.Rand
	clock func() int64
	cues  Cues
}

// New creates an engine with a fresh board. The seed drives piece
// selection; pass wall-clock time for play, a constant for tests.
func New(seed int64) *Game {
	g := &Game{
		preview:  true,
		shadow:   true,
		held:     mapset.New[input.Event](),
		repeatAt: make(map[input.Event]int64),
		rng:      rand.New(rand.NewSource(seed)),
		clock:    func() int64 { return time.Now().UnixMilli() },
	}
	g.reset()
	return g
}

// SetCues installs the audio notification receiver. A nil receiver is
// allowed and disables cues.
func (g *Game) SetCues(c Cues) {
	g.cues = c
}

// SetClock overrides the millisecond clock. Test hook.
func (g *Game) SetClock(clock func() int64) {
	g.clock = clock
}

// reset returns the engine to a fresh game.
func (g *Game) reset() {
	for i := range g.board {
		for j := range g.board[i] {
			g.board[i][j] = EmptyCell
		}
	}
	g.stats = Stats{Level: 1}
	g.fallDelay = initialFallDelay
	g.lastFall = g.clock()
	g.paused = false
	g.over = false
	g.held = mapset.New[input.Event]()
	g.repeatAt = make(map[input.Event]int64)
	g.next = newBlock(g.rng.Intn(TetrominoTypes))
	g.spawn()
	g.changed = true
}

// spawn promotes the preview block to falling and rolls a new preview.
// A spawn collision ends the game.
func (g *Game) spawn() {
	g.falling = g.next
	g.next = newBlock(g.rng.Intn(TetrominoTypes))
	g.stats.TotalPieces++
	g.stats.Pieces[g.falling.Kind]++
	if g.collides(g.falling) {
		g.over = true
	}
	g.updateShadowGap()
}

// collides reports whether the block overlaps the walls, the floor or a
// locked cell.
func (g *Game) collides(b Block) bool {
	for i := 0; i < PieceSize; i++ {
		for j := 0; j < PieceSize; j++ {
			if b.Cells[i][j] == EmptyCell {
				continue
			}
			x := b.X + i
			y := b.Y + j
			if x < 0 || x >= BoardWidth || y < 0 || y >= BoardHeight {
				return true
			}
			if g.board[x][y] != EmptyCell {
				return true
			}
		}
	}
	return false
}

// updateShadowGap recomputes the distance the falling block would drop.
func (g *Game) updateShadowGap() {
	probe := g.falling
	for !g.collides(probe) {
		probe.Y++
	}
	g.shadowGap = probe.Y - 1 - g.falling.Y
}

// move attempts a horizontal shift.
func (g *Game) move(dx int) {
	b := g.falling
	b.X += dx
	if g.collides(b) {
		return
	}
	g.falling = b
	g.updateShadowGap()
	g.changed = true
}

// rotate attempts a clockwise rotation. No wall kicks: a rotation that
// would collide is simply refused.
func (g *Game) rotate() {
	b := g.falling.rotated()
	if g.collides(b) {
		return
	}
	g.falling = b
	g.updateShadowGap()
	g.changed = true
}

// moveDown advances the falling block one row, locking it when blocked.
// Manual (player-held) descent scores; gravity does not.
func (g *Game) moveDown(manual bool) {
	b := g.falling
	b.Y++
	if g.collides(b) {
		g.lock()
		return
	}
	g.falling = b
	if manual {
		g.stats.Score += softDropPoints
	}
	g.shadowGap--
	g.changed = true
}

// hardDrop slams the falling block to its shadow position and locks it.
func (g *Game) hardDrop() {
	g.stats.Score += int64(hardDropPoints * g.shadowGap)
	g.falling.Y += g.shadowGap
	g.lock()
}

// lock writes the falling block into the board, clears filled rows,
// fires the audio cue and spawns the next block.
func (g *Game) lock() {
	for i := 0; i < PieceSize; i++ {
		for j := 0; j < PieceSize; j++ {
			if g.falling.Cells[i][j] == EmptyCell {
				continue
			}
			g.board[g.falling.X+i][g.falling.Y+j] = g.falling.Cells[i][j]
		}
	}

	cleared := g.clearFilledRows()
	if cleared > 0 {
		g.stats.Lines += cleared
		g.stats.Score += scoreByRows[cleared]
		g.maybeLevelUp()
		if g.cues != nil {
			g.cues.OnLineCompleted()
		}
	} else if g.cues != nil {
		g.cues.OnPieceDrop()
	}

	g.spawn()
	g.lastFall = g.clock()
	g.changed = true
}

// clearFilledRows removes every complete row and returns how many fell.
func (g *Game) clearFilledRows() int {
	cleared := 0
	for j := BoardHeight - 1; j >= 0; j-- {
		full := true
		for i := 0; i < BoardWidth; i++ {
			if g.board[i][j] == EmptyCell {
				full = false
				break
			}
		}
		if !full {
			continue
		}
		cleared++
		for jj := j; jj > 0; jj-- {
			for i := 0; i < BoardWidth; i++ {
				g.board[i][jj] = g.board[i][jj-1]
			}
		}
		for i := 0; i < BoardWidth; i++ {
			g.board[i][0] = EmptyCell
		}
		j++ // re-check the row that just fell into place
	}
	return cleared
}

// maybeLevelUp raises the level every linesPerLevel cleared lines and
// tightens the gravity delay.
func (g *Game) maybeLevelUp() {
	level := 1 + g.stats.Lines/linesPerLevel
	for g.stats.Level < level {
		g.stats.Level++
		g.fallDelay = g.fallDelay * 85 / 100
		if g.fallDelay < minFallDelay {
			g.fallDelay = minFallDelay
		}
	}
}

// OnEventStart delivers the press edge of a semantic event.
func (g *Game) OnEventStart(ev input.Event) {
	if ev == input.EventQuit {
		g.finished = true
		g.changed = true
		return
	}
	if ev == input.EventRestart {
		g.reset()
		return
	}
	if g.over {
		return
	}
	if ev == input.EventPause {
		g.paused = !g.paused
		if !g.paused {
			// Gravity resumes from now, not from before the pause.
			g.lastFall = g.clock()
		}
		g.changed = true
		return
	}
	if g.paused {
		return
	}

	switch ev {
	case input.EventMoveLeft:
		g.move(-1)
		g.beginHold(ev)
	case input.EventMoveRight:
		g.move(1)
		g.beginHold(ev)
	case input.EventMoveDown:
		g.moveDown(true)
		g.beginHold(ev)
	case input.EventRotateCW:
		g.rotate()
		g.beginHold(ev)
	case input.EventDrop:
		g.hardDrop()
	case input.EventShowNext:
		g.preview = !g.preview
		g.changed = true
	case input.EventShowShadow:
		g.shadow = !g.shadow
		g.changed = true
	}
}

// OnEventEnd delivers the release edge of a held event.
func (g *Game) OnEventEnd(ev input.Event) {
	g.held.Remove(ev)
	delete(g.repeatAt, ev)
}

// beginHold arms the auto-shift timer for a held event.
func (g *Game) beginHold(ev input.Event) {
	g.held.Put(ev)
	g.repeatAt[ev] = g.clock() + autoShiftDelay
}

// Update advances held-key auto-shift and gravity. Called once per loop
// iteration by the adapter.
func (g *Game) Update() {
	if g.over || g.paused || g.finished {
		return
	}
	now := g.clock()

	g.held.Each(func(ev input.Event) {
		at, ok := g.repeatAt[ev]
		if !ok || now < at {
			return
		}
		g.repeatAt[ev] = now + autoShiftRepeat
		switch ev {
		case input.EventMoveLeft:
			g.move(-1)
		case input.EventMoveRight:
			g.move(1)
		case input.EventMoveDown:
			g.moveDown(true)
		case input.EventRotateCW:
			g.rotate()
		}
	})

	if now-g.lastFall >= g.fallDelay {
		g.lastFall = now
		g.moveDown(false)
	}
}

// HasChanged reports unconsumed visible state change since the last
// acknowledged frame.
func (g *Game) HasChanged() bool {
	return g.changed
}

// OnChangeProcessed acknowledges that the current change was rendered.
func (g *Game) OnChangeProcessed() {
	g.changed = false
}

// ShowPreview reports whether the next-piece preview is enabled.
func (g *Game) ShowPreview() bool {
	return g.preview
}

// ShowShadow reports whether the shadow (ghost) piece is enabled.
func (g *Game) ShowShadow() bool {
	return g.shadow
}

// ShadowGap returns the rows between the falling block and its landing
// position.
func (g *Game) ShadowGap() int {
	return g.shadowGap
}

// NextBlock returns the preview block.
func (g *Game) NextBlock() Block {
	return g.next
}

// FallingBlock returns the falling block.
func (g *Game) FallingBlock() Block {
	return g.falling
}

// Cell returns the locked board cell at (col, row), EmptyCell if free.
func (g *Game) Cell(col, row int) int {
	return g.board[col][row]
}

// Stats returns the HUD statistics block.
func (g *Game) Stats() Stats {
	return g.stats
}

// IsPaused reports whether the game is paused.
func (g *Game) IsPaused() bool {
	return g.paused
}

// IsOver reports whether the game has topped out.
func (g *Game) IsOver() bool {
	return g.over
}

// Finished reports that a quit event was observed; the adapter loop
// stops when this becomes true.
func (g *Game) Finished() bool {
	return g.finished
}
