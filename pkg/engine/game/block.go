package game

// Block is a tetromino: a square cell grid plus its board position.
// Cells hold EmptyCell or a color identifier; the color doubles as the
// tile index used by the renderer. Size is the side of the active
// sub-grid actually used by the shape (2 for O, 4 for I, 3 otherwise);
// rotation happens within that sub-grid.
type Block struct {
	Cells [PieceSize][PieceSize]int
	X, Y  int
	Size  int
	Kind  int
}

// shapeColors maps tetromino kind to its cell color identifier.
var shapeColors = [TetrominoTypes]int{
	TetrominoI: ColorCyan,
	TetrominoO: ColorYellow,
	TetrominoT: ColorPurple,
	TetrominoS: ColorGreen,
	TetrominoZ: ColorRed,
	TetrominoJ: ColorBlue,
	TetrominoL: ColorOrange,
}

// shapeCells lists the occupied (x, y) cells of each spawn orientation.
var shapeCells = [TetrominoTypes][4][2]int{
	TetrominoI: {{0, 1}, {1, 1}, {2, 1}, {3, 1}},
	TetrominoO: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	TetrominoT: {{1, 0}, {0, 1}, {1, 1}, {2, 1}},
	TetrominoS: {{1, 0}, {2, 0}, {0, 1}, {1, 1}},
	TetrominoZ: {{0, 0}, {1, 0}, {1, 1}, {2, 1}},
	TetrominoJ: {{0, 0}, {0, 1}, {1, 1}, {2, 1}},
	TetrominoL: {{2, 0}, {0, 1}, {1, 1}, {2, 1}},
}

// shapeSizes maps tetromino kind to its rotation sub-grid side.
var shapeSizes = [TetrominoTypes]int{
	TetrominoI: 4,
	TetrominoO: 2,
	TetrominoT: 3,
	TetrominoS: 3,
	TetrominoZ: 3,
	TetrominoJ: 3,
	TetrominoL: 3,
}

// newBlock builds a tetromino of the given kind in spawn orientation,
// positioned at the top center of the board.
func newBlock(kind int) Block {
	b := Block{
		Size: shapeSizes[kind],
		Kind: kind,
		X:    (BoardWidth - PieceSize) / 2,
		Y:    0,
	}
	for i := range b.Cells {
		for j := range b.Cells[i] {
			b.Cells[i][j] = EmptyCell
		}
	}
	for _, c := range shapeCells[kind] {
		b.Cells[c[0]][c[1]] = shapeColors[kind]
	}
	return b
}

// rotated returns a copy of the block rotated 90 degrees clockwise
// within its Size x Size sub-grid.
func (b Block) rotated() Block {
	r := b
	for i := 0; i < b.Size; i++ {
		for j := 0; j < b.Size; j++ {
			r.Cells[b.Size-1-j][i] = b.Cells[i][j]
		}
	}
	return r
}
