// Command threes-arena evaluates a trained weight table by playing many
// games concurrently with learning disabled. All workers share one
// read-only table.
package main

import (
	"context"
	"flag"
	"io"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	threes "github.com/lee81116/threes"
	"github.com/lee81116/threes/agent"
	"github.com/lee81116/threes/internal/trainer"
)

func main() {
	var (
		modelPath   = flag.String("model", "", "weight table file to evaluate (empty plays untrained)")
		games       = flag.Int("games", 1000, "number of evaluation games")
		concurrency = flag.Int("concurrency", runtime.NumCPU(), "number of concurrent workers")
		seed        = flag.Uint64("seed", 1, "base seed for the tile randomness")
	)
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	var table agent.Table
	if *modelPath != "" {
		t, err := agent.LoadTable(*modelPath)
		if err != nil {
			log.Fatalf("load model: %v", err)
		}
		table = t
		log.WithField("model", *modelPath).Info("model loaded")
	}

	log.WithFields(logrus.Fields{
		"games":       *games,
		"concurrency": *concurrency,
		"numcpu":      runtime.NumCPU(),
	}).Info("arena started")

	if err := run(context.Background(), log, table, *games, *concurrency, *seed); err != nil {
		log.Fatalf("arena: %v", err)
	}
	log.Info("arena finished")
}

func run(ctx context.Context, log *logrus.Logger, table agent.Table, games, concurrency int, seed uint64) error {
	g, ctx := errgroup.WithContext(ctx)

	jobs := make(chan int)
	results := make(chan trainer.EpisodeResult)

	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < games; i++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case jobs <- i:
			}
		}
		return nil
	})

	g.Go(func() error {
		return showResults(log, games, results)
	})

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		workerSeed := seed + uint64(i)*1000003
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return playGames(ctx, table, workerSeed, jobs, results)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(results)
		return nil
	})

	return g.Wait()
}

// playGames runs one worker. Alpha 0 guarantees the shared table is
// never written, so concurrent lookups need no locking.
func playGames(ctx context.Context, table agent.Table, seed uint64, jobs <-chan int, results chan<- trainer.EpisodeResult) error {
	slider, err := agent.NewTDSlider(agent.Config{Table: table, Alpha: 0})
	if err != nil {
		return err
	}
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	tr := trainer.New(slider, agent.NewRandomPlacer(seed), quiet)

	for range jobs {
		res := tr.PlayEpisode()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case results <- res:
		}
	}
	return nil
}

func showResults(log *logrus.Logger, total int, results <-chan trainer.EpisodeResult) error {
	var (
		games      int
		totalScore int
		maxScore   int
		reach      [int(threes.MaxRank) + 1]int
	)
	for res := range results {
		games++
		totalScore += res.Score
		if res.Score > maxScore {
			maxScore = res.Score
		}
		reach[res.MaxRank]++
		if games%100 == 0 || games == total {
			log.WithFields(logrus.Fields{
				"games": games,
				"avg":   float64(totalScore) / float64(games),
				"max":   maxScore,
			}).Info("progress")
		}
	}
	if games == 0 {
		return nil
	}
	for rank := uint8(6); rank <= threes.MaxRank; rank++ {
		var n int
		for r := int(rank); r <= int(threes.MaxRank); r++ {
			n += reach[r]
		}
		if n == 0 {
			continue
		}
		log.WithFields(logrus.Fields{
			"tile":  threes.TileValue(rank),
			"reach": float64(n) / float64(games),
		}).Info("tile reach rate")
	}
	return nil
}
