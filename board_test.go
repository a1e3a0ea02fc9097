package threes

import "testing"

// TestSlideLineBasicPairMerge verifies 1+2 -> 3 in both orders.
func TestSlideLineBasicPairMerge(t *testing.T) {
	got := slideLine([4]uint8{1, 2, 0, 0})
	want := [4]uint8{3, 0, 0, 0}
	if got != want {
		t.Fatalf("slideLine(1,2,0,0) = %v, want %v", got, want)
	}
	got = slideLine([4]uint8{2, 1, 0, 0})
	if got != want {
		t.Fatalf("slideLine(2,1,0,0) = %v, want %v", got, want)
	}
}

// TestSlideLineNoBasicSelfMerge verifies 1+1 and 2+2 do not merge.
func TestSlideLineNoBasicSelfMerge(t *testing.T) {
	for _, rank := range []uint8{1, 2} {
		line := [4]uint8{rank, rank, 0, 0}
		if got := slideLine(line); got != line {
			t.Fatalf("slideLine(%v) = %v, want unchanged", line, got)
		}
	}
}

// TestSlideLineSingleStep verifies every tile moves at most one cell.
func TestSlideLineSingleStep(t *testing.T) {
	got := slideLine([4]uint8{0, 1, 0, 2})
	want := [4]uint8{1, 0, 2, 0}
	if got != want {
		t.Fatalf("slideLine(0,1,0,2) = %v, want %v", got, want)
	}
}

// TestSlideLineMergeShiftsTail verifies tiles behind a merge advance.
func TestSlideLineMergeShiftsTail(t *testing.T) {
	got := slideLine([4]uint8{3, 3, 3, 0})
	want := [4]uint8{4, 3, 0, 0}
	if got != want {
		t.Fatalf("slideLine(3,3,3,0) = %v, want %v", got, want)
	}
}

// TestSlideLineMaxRankCapped verifies rank-15 tiles never merge.
func TestSlideLineMaxRankCapped(t *testing.T) {
	line := [4]uint8{MaxRank, MaxRank, 0, 0}
	if got := slideLine(line); got != line {
		t.Fatalf("slideLine(%v) = %v, want unchanged", line, got)
	}
}

// TestSlideDirections verifies the coordinate mapping for all four dirs.
func TestSlideDirections(t *testing.T) {
	cases := []struct {
		dir   uint8
		wantR int
		wantC int
	}{
		{SlideUp, 0, 1},
		{SlideRight, 1, 3},
		{SlideDown, 3, 1},
		{SlideLeft, 1, 0},
	}
	for _, tc := range cases {
		b := NewBoard()
		b.Cells[1][1] = 3
		if r := b.Slide(tc.dir); r < 0 {
			t.Fatalf("dir %d: slide reported illegal", tc.dir)
		}
		if b.Cells[tc.wantR][tc.wantC] != 3 {
			t.Fatalf("dir %d: tile not at (%d,%d): %v", tc.dir, tc.wantR, tc.wantC, b.Cells)
		}
		if b.Last != tc.dir {
			t.Fatalf("dir %d: Last = %d", tc.dir, b.Last)
		}
	}
}

// TestSlideIllegal verifies an immovable position returns -1 and leaves
// the board untouched.
func TestSlideIllegal(t *testing.T) {
	b := NewBoard()
	b.Cells[0][0] = 3
	before := b
	if r := b.Slide(SlideUp); r != -1 {
		t.Fatalf("Slide(up) on pinned tile = %d, want -1", r)
	}
	if b != before {
		t.Fatalf("illegal slide mutated board")
	}
	if r := b.Slide(SlideLeft); r != -1 {
		t.Fatalf("Slide(left) on pinned tile = %d, want -1", r)
	}
}

// TestSlideRewardIsScoreDelta verifies the returned reward equals the
// intrinsic score difference across the slide.
func TestSlideRewardIsScoreDelta(t *testing.T) {
	b := NewBoard()
	b.Cells[0][0] = 1
	b.Cells[0][1] = 2
	before := b.Score()
	r := b.Slide(SlideLeft)
	if r != b.Score()-before {
		t.Fatalf("reward %d != score delta %d", r, b.Score()-before)
	}
	if r != 3 {
		t.Fatalf("merging 1+2 should score 3, got %d", r)
	}
}

// TestScore checks the 3^(rank-2) scoring table against known tiles.
func TestScore(t *testing.T) {
	b := NewBoard()
	if b.Score() != 0 {
		t.Fatalf("empty board score = %d", b.Score())
	}
	b.Cells[0][0] = 1 // tile 1: no score
	b.Cells[0][1] = 2 // tile 2: no score
	b.Cells[1][0] = 3 // tile 3: 3
	b.Cells[2][2] = 6 // tile 24: 81
	if got := b.Score(); got != 84 {
		t.Fatalf("score = %d, want 84", got)
	}
}

func TestTileValue(t *testing.T) {
	cases := map[uint8]int{0: 0, 1: 1, 2: 2, 3: 3, 4: 6, 5: 12, 6: 24, 15: 12288}
	for rank, want := range cases {
		if got := TileValue(rank); got != want {
			t.Fatalf("TileValue(%d) = %d, want %d", rank, got, want)
		}
	}
}

func TestMaxCellRank(t *testing.T) {
	b := NewBoard()
	if b.MaxCellRank() != 0 {
		t.Fatalf("empty board max rank = %d", b.MaxCellRank())
	}
	b.Cells[3][2] = 7
	b.Cells[1][1] = 4
	if b.MaxCellRank() != 7 {
		t.Fatalf("max rank = %d, want 7", b.MaxCellRank())
	}
}

// TestHasLegalSlide verifies the stuck-board predicate.
func TestHasLegalSlide(t *testing.T) {
	b := NewBoard()
	if b.HasLegalSlide() {
		t.Fatalf("empty board should have no legal slide")
	}
	b.Cells[1][1] = 1
	if !b.HasLegalSlide() {
		t.Fatalf("single tile should be slidable")
	}
	// A full board of 1s has no holes and no legal merge.
	stuck := NewBoard()
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			stuck.Cells[r][c] = 1
		}
	}
	if stuck.HasLegalSlide() {
		t.Fatalf("uniform full board of 1s should be stuck")
	}
}
