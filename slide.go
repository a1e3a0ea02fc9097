package threes

// canMerge reports whether a tile of rank next can merge into a tile of
// rank dst when sliding, and returns the merged rank. Threes merges are
// 1+2 -> 3 and n+n -> n+1 for n >= 3, capped at MaxRank.
func canMerge(dst, next uint8) (uint8, bool) {
	if (dst == 1 && next == 2) || (dst == 2 && next == 1) {
		return 3, true
	}
	if dst >= 3 && dst == next && dst < MaxRank {
		return dst + 1, true
	}
	return 0, false
}

// slideLine applies one Threes slide step to a 4-cell line, with cells
// moving toward index 0. Unlike 2048, every tile moves at most one cell
// per slide, and at most one merge happens per destination.
func slideLine(line [4]uint8) [4]uint8 {
	for i := 0; i < 3; i++ {
		dst, next := line[i], line[i+1]
		if next == 0 {
			continue
		}
		if dst == 0 {
			line[i], line[i+1] = next, 0
			continue
		}
		if merged, ok := canMerge(dst, next); ok {
			line[i], line[i+1] = merged, 0
		}
	}
	return line
}

// Slide shifts the whole board in the given direction, merging where
// Threes rules allow. It returns the intrinsic score gained, or -1 if no
// cell moved (an illegal slide). A legal slide records the direction in
// Last so a placer knows which edge the next tile enters from.
func (b *Board) Slide(dir uint8) int {
	if dir > SlideLeft {
		return -1
	}
	before := b.Cells
	scoreBefore := b.Score()

	for i := 0; i < BoardSize; i++ {
		var line [4]uint8
		for j := 0; j < BoardSize; j++ {
			r, c := lineCell(dir, i, j)
			line[j] = b.Cells[r][c]
		}
		line = slideLine(line)
		for j := 0; j < BoardSize; j++ {
			r, c := lineCell(dir, i, j)
			b.Cells[r][c] = line[j]
		}
	}

	if b.Cells == before {
		return -1
	}
	b.Last = dir
	return b.Score() - scoreBefore
}

// lineCell maps (line, offset) to grid coordinates for a slide in dir.
// Offset 0 is the cell tiles move toward.
func lineCell(dir uint8, i, j int) (int, int) {
	switch dir {
	case SlideUp:
		return j, i
	case SlideDown:
		return BoardSize - 1 - j, i
	case SlideLeft:
		return i, j
	default: // SlideRight
		return i, BoardSize - 1 - j
	}
}

// AfterSlide returns the grid that results from sliding in dir, before
// any new tile is placed, and whether the slide is legal. The receiver
// is not modified.
func (b *Board) AfterSlide(dir uint8) (Grid, bool) {
	tmp := *b
	if tmp.Slide(dir) < 0 {
		return Grid{}, false
	}
	return tmp.Cells, true
}

// HasLegalSlide reports whether any of the four directions moves a cell.
func (b *Board) HasLegalSlide() bool {
	for dir := SlideUp; dir <= SlideLeft; dir++ {
		if _, ok := b.AfterSlide(dir); ok {
			return true
		}
	}
	return false
}
