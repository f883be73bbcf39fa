package platform

import "time"

// Logical screen geometry in pixels, before window scaling.
const (
	ScreenWidth  = 480
	ScreenHeight = 272
)

// Tile atlas geometry. Tiles are TileSize square with one pixel of
// shared padding baked into the atlas stride; the shadow variants live
// on the second atlas row.
const (
	TileSize = 12

	NumberWidth  = 7
	NumberHeight = 9
)

// Board and preview anchors (top-left corner, screen pixels).
const (
	BoardX = 180
	BoardY = 4

	PreviewX = 112
	PreviewY = 210
)

// HUD numeral fields: anchor plus fixed digit count. Values are always
// rendered with exactly this many digits, leading zeros included.
const (
	LevelX      = 52
	LevelY      = 16
	LevelDigits = 2

	LinesX      = 52
	LinesY      = 34
	LinesDigits = 5

	ScoreX      = 27
	ScoreY      = 52
	ScoreDigits = 10

	// Per-shape placed counters, one row per tetromino.
	TetrominoX      = 425
	TetrominoDigits = 5
	TetrominoLY     = 53
	TetrominoIY     = 77
	TetrominoTY     = 101
	TetrominoSY     = 125
	TetrominoZY     = 149
	TetrominoOY     = 173
	TetrominoJY     = 197

	PiecesX      = 418
	PiecesY      = 221
	PiecesDigits = 5
)

// Loop pacing. The gate sleeps defaultLoopDelay per iteration whether or
// not a frame was rendered; the window driver polls input at driverTPS.
const (
	defaultLoopDelay = 40 * time.Millisecond
	driverTPS        = 60
)

const windowTitle = "Blockfall"

// inputQueueSize bounds the raw transition queue between the window
// driver and the loop. At driverTPS a full queue means the loop stalled
// for seconds; dropping is the lesser evil.
const inputQueueSize = 128
