package trainer

import (
	"time"

	threes "github.com/lee81116/threes"
)

// BlockStats aggregates the results of one block of episodes.
type BlockStats struct {
	Block      int
	Episodes   int
	AvgScore   float64
	MaxScore   int
	TotalMoves int
	Elapsed    time.Duration

	// rankCounts[r] is the number of episodes whose highest tile was
	// exactly rank r.
	rankCounts [threes.MaxRank + 1]int
}

// ReachCount returns how many episodes in the block reached a highest
// tile of at least the given rank.
func (bs *BlockStats) ReachCount(rank uint8) int {
	var n int
	for r := int(rank); r <= int(threes.MaxRank); r++ {
		n += bs.rankCounts[r]
	}
	return n
}

type accumulator struct {
	episodes   int
	totalScore int
	maxScore   int
	totalMoves int
	rankCounts [threes.MaxRank + 1]int
}

func newAccumulator() *accumulator { return &accumulator{} }

func (a *accumulator) add(r EpisodeResult) {
	a.episodes++
	a.totalScore += r.Score
	if r.Score > a.maxScore {
		a.maxScore = r.Score
	}
	a.totalMoves += r.Moves
	a.rankCounts[r.MaxRank]++
}

// flush returns the block's statistics and resets the accumulator.
func (a *accumulator) flush(block int, elapsed time.Duration) BlockStats {
	bs := BlockStats{
		Block:      block,
		Episodes:   a.episodes,
		MaxScore:   a.maxScore,
		TotalMoves: a.totalMoves,
		Elapsed:    elapsed,
		rankCounts: a.rankCounts,
	}
	if a.episodes > 0 {
		bs.AvgScore = float64(a.totalScore) / float64(a.episodes)
	}
	*a = accumulator{}
	return bs
}
