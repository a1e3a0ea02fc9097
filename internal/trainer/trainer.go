// Package trainer drives self-play episodes between a sliding agent and
// a placing agent and aggregates per-block statistics.
package trainer

import (
	"time"

	"github.com/sirupsen/logrus"

	threes "github.com/lee81116/threes"
	"github.com/lee81116/threes/agent"
)

// initialPlacements is the number of tiles dealt before the first slide.
const initialPlacements = 9

// EpisodeResult summarizes one finished game.
type EpisodeResult struct {
	Score   int
	Moves   int
	MaxRank uint8
}

// Trainer runs episodes between a slider and a placer. The placer acts
// as the environment: it deals the opening tiles and answers every
// slide with a placement.
type Trainer struct {
	slider agent.Agent
	placer agent.Agent
	log    *logrus.Logger
}

// New returns a trainer over the given pair of agents.
func New(slider, placer agent.Agent, log *logrus.Logger) *Trainer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Trainer{slider: slider, placer: placer, log: log}
}

// PlayEpisode runs one full game and returns its result. The episode
// ends when either agent returns ActionNone or an action is rejected.
func (t *Trainer) PlayEpisode() EpisodeResult {
	b := threes.NewBoard()
	t.slider.OpenEpisode()
	t.placer.OpenEpisode()

	for i := 0; i < initialPlacements; i++ {
		a := t.placer.TakeAction(&b)
		if a == threes.ActionNone || b.ApplyAction(a) != nil {
			break
		}
	}

	var moves int
	for {
		a := t.slider.TakeAction(&b)
		if a == threes.ActionNone || b.ApplyAction(a) != nil {
			break
		}
		moves++

		a = t.placer.TakeAction(&b)
		if a == threes.ActionNone || b.ApplyAction(a) != nil {
			break
		}
	}

	t.slider.CloseEpisode()
	t.placer.CloseEpisode()

	return EpisodeResult{Score: b.Score(), Moves: moves, MaxRank: b.MaxCellRank()}
}

// Run plays total episodes, printing one summary line per block of
// blockSize episodes. onBlock, when non-nil, receives each block's
// statistics after it is logged.
func (t *Trainer) Run(total, blockSize int, onBlock func(BlockStats)) {
	if blockSize <= 0 {
		blockSize = total
	}
	acc := newAccumulator()
	start := time.Now()
	block := 0
	for i := 1; i <= total; i++ {
		acc.add(t.PlayEpisode())
		if i%blockSize != 0 && i != total {
			continue
		}
		block++
		bs := acc.flush(block, time.Since(start))
		t.logBlock(bs)
		if onBlock != nil {
			onBlock(bs)
		}
		start = time.Now()
	}
}

func (t *Trainer) logBlock(bs BlockStats) {
	t.log.WithFields(logrus.Fields{
		"block":    bs.Block,
		"episodes": bs.Episodes,
		"avg":      bs.AvgScore,
		"max":      bs.MaxScore,
		"moves":    bs.TotalMoves,
		"elapsed":  bs.Elapsed.Round(time.Millisecond),
	}).Info("block finished")
	for rank := uint8(6); rank <= threes.MaxRank; rank++ {
		reached := bs.ReachCount(rank)
		if reached == 0 {
			continue
		}
		t.log.WithFields(logrus.Fields{
			"tile":  threes.TileValue(rank),
			"reach": float64(reached) / float64(bs.Episodes),
		}).Info("tile reach rate")
	}
}
