// Package threes implements a Threes!-like 4x4 tile-sliding puzzle engine.
//
// The package provides a flat, zero-allocation game state suitable for
// high-throughput self-play: boards are value types that can be copied
// with = and simulated on the stack. All randomness (tile draws, slide
// choices) lives in the agents that drive the game, not in the engine.
package threes

const (
	// BoardSize is the side length of the square board.
	BoardSize = 4
	// NumCells is the total number of cells.
	NumCells = BoardSize * BoardSize
	// MaxRank is the largest representable tile rank. Ranks are stored
	// in 4 bits, so merges stop producing new tiles at this rank.
	MaxRank uint8 = 15
)

// Slide direction constants.
const (
	SlideUp    uint8 = 0
	SlideRight uint8 = 1
	SlideDown  uint8 = 2
	SlideLeft  uint8 = 3
	// SlideNone marks a board that has not been slid yet. A placer
	// consults Board.Last to decide which edge receives the next tile;
	// SlideNone opens the whole board.
	SlideNone uint8 = 4
)

// Grid is the raw 4x4 cell matrix. Cells hold exponent-encoded tile
// ranks: 0 is empty, ranks 1-3 are the literal tiles 1, 2 and 3, and
// rank k >= 3 is the tile 3*2^(k-3).
type Grid [BoardSize][BoardSize]uint8

// Board holds the complete state of one game. It is a flat value type
// (no pointers, no slices) so simulated copies are a single assignment.
type Board struct {
	Cells Grid
	// Bag counts the basic tiles (ranks 1-3) remaining before the bag
	// refills. Index 0 is unused.
	Bag [4]uint8
	// Hint is the rank of the upcoming tile, announced one placement in
	// advance. 0 means no hint has been drawn yet.
	Hint uint8
	// Last is the direction of the most recent slide, or SlideNone.
	Last uint8
}

// NewBoard returns an empty board with a full bag and no slide history.
func NewBoard() Board {
	return Board{
		Bag:  [4]uint8{0, 1, 1, 1},
		Last: SlideNone,
	}
}

// Cell returns the rank at a flat position 0-15 (row-major).
func (b *Board) Cell(pos uint8) uint8 {
	return b.Cells[pos/BoardSize][pos%BoardSize]
}

// Empty reports whether the cell at a flat position holds no tile.
func (b *Board) Empty(pos uint8) bool { return b.Cell(pos) == 0 }

// MaxCellRank returns the largest tile rank present on the board.
func (b *Board) MaxCellRank() uint8 {
	var max uint8
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if b.Cells[r][c] > max {
				max = b.Cells[r][c]
			}
		}
	}
	return max
}

// bagTotal returns the number of tiles remaining in the bag.
func (b *Board) bagTotal() uint8 {
	return b.Bag[1] + b.Bag[2] + b.Bag[3]
}

// takeFromBag consumes one tile of the given rank, refilling the bag
// first if it is exhausted. Reports whether the rank was available.
func (b *Board) takeFromBag(rank uint8) bool {
	if rank < 1 || rank > 3 {
		return false
	}
	if b.bagTotal() == 0 {
		b.Bag = [4]uint8{0, 1, 1, 1}
	}
	if b.Bag[rank] == 0 {
		return false
	}
	b.Bag[rank]--
	return true
}
