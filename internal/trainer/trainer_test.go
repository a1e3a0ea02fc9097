package trainer

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lee81116/threes/agent"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestPlayEpisodeRandomAgents(t *testing.T) {
	tr := New(agent.NewRandomSlider(1), agent.NewRandomPlacer(2), quietLogger())

	r := tr.PlayEpisode()
	assert.Greater(t, r.Moves, 0)
	assert.Greater(t, r.Score, 0)
	assert.GreaterOrEqual(t, r.MaxRank, uint8(1))
}

func TestPlayEpisodeLearnerTrainsTable(t *testing.T) {
	l, err := agent.NewTDSlider(agent.Config{Alpha: agent.DefaultAlpha})
	require.NoError(t, err)
	tr := New(l, agent.NewRandomPlacer(7), quietLogger())

	for i := 0; i < 5; i++ {
		r := tr.PlayEpisode()
		assert.Greater(t, r.Moves, 0)
	}

	var touched bool
	for _, plane := range l.Table() {
		for _, w := range plane {
			if w != 0 {
				touched = true
				break
			}
		}
		if touched {
			break
		}
	}
	assert.True(t, touched, "training left every weight at zero")
}

func TestRunBlocks(t *testing.T) {
	tr := New(agent.NewRandomSlider(3), agent.NewRandomPlacer(4), quietLogger())

	var blocks []BlockStats
	tr.Run(10, 5, func(bs BlockStats) { blocks = append(blocks, bs) })

	require.Len(t, blocks, 2)
	assert.Equal(t, 1, blocks[0].Block)
	assert.Equal(t, 2, blocks[1].Block)
	for _, bs := range blocks {
		assert.Equal(t, 5, bs.Episodes)
		assert.Greater(t, bs.AvgScore, 0.0)
		assert.GreaterOrEqual(t, bs.MaxScore, int(bs.AvgScore))
	}
}

func TestAccumulatorFlush(t *testing.T) {
	acc := newAccumulator()
	acc.add(EpisodeResult{Score: 100, Moves: 10, MaxRank: 6})
	acc.add(EpisodeResult{Score: 300, Moves: 30, MaxRank: 8})
	acc.add(EpisodeResult{Score: 200, Moves: 20, MaxRank: 8})

	bs := acc.flush(1, 2*time.Second)
	assert.Equal(t, 3, bs.Episodes)
	assert.InDelta(t, 200.0, bs.AvgScore, 1e-9)
	assert.Equal(t, 300, bs.MaxScore)
	assert.Equal(t, 60, bs.TotalMoves)
	assert.Equal(t, 3, bs.ReachCount(6))
	assert.Equal(t, 2, bs.ReachCount(7))
	assert.Equal(t, 2, bs.ReachCount(8))
	assert.Equal(t, 0, bs.ReachCount(9))

	// flush resets the accumulator.
	empty := acc.flush(2, 0)
	assert.Zero(t, empty.Episodes)
	assert.Zero(t, empty.AvgScore)
}

func TestLoadConfigDefaultsAndOverrides(t *testing.T) {
	t.Setenv("THREES_EPISODES", "500")
	t.Setenv("THREES_ALPHA", "0.05")
	t.Setenv("THREES_RESET_TRACE", "true")
	t.Setenv("THREES_SAVE", "weights.bin")

	cfg := LoadConfig()
	assert.Equal(t, 500, cfg.TotalEpisodes)
	assert.Equal(t, 1000, cfg.BlockSize)
	assert.InDelta(t, 0.05, cfg.Alpha, 1e-9)
	assert.True(t, cfg.ResetTraceOnOpen)
	assert.Equal(t, "weights.bin", cfg.SavePath)
	assert.Empty(t, cfg.LoadPath)
}
