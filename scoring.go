package threes

// rankScores[k] is the score contribution of one tile of rank k:
// 3^(k-2) for k >= 3, zero for the basic tiles 1 and 2.
var rankScores = [16]int{
	3: 3, 4: 9, 5: 27, 6: 81, 7: 243, 8: 729, 9: 2187, 10: 6561,
	11: 19683, 12: 59049, 13: 177147, 14: 531441, 15: 1594323,
}

// TileValue returns the face value of a tile of the given rank: 1, 2, 3
// and then doubling (6, 12, 24, ...). Rank 0 is the empty cell.
func TileValue(rank uint8) int {
	if rank == 0 {
		return 0
	}
	if rank <= 3 {
		return int(rank)
	}
	return 3 << (rank - 3)
}

// Score returns the game's intrinsic score for the current position:
// the sum of 3^(rank-2) over every tile of rank 3 or higher. This is
// the quantity a slide's immediate reward is measured against.
func (b *Board) Score() int {
	var sum int
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			sum += rankScores[b.Cells[r][c]]
		}
	}
	return sum
}
