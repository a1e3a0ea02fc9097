// Command threes-train trains the tile-sliding agent by temporal
// difference self-play and periodically reports block statistics.
package main

import (
	"context"
	"flag"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lee81116/threes/agent"
	"github.com/lee81116/threes/internal/trainer"
)

func main() {
	cfg := trainer.LoadConfig()
	flag.IntVar(&cfg.TotalEpisodes, "total", cfg.TotalEpisodes, "number of training episodes")
	flag.IntVar(&cfg.BlockSize, "block", cfg.BlockSize, "episodes per statistics block")
	flag.Float64Var(&cfg.Alpha, "alpha", cfg.Alpha, "learning rate (0 disables learning)")
	flag.StringVar(&cfg.LoadPath, "load", cfg.LoadPath, "weight table to resume from")
	flag.StringVar(&cfg.SavePath, "save", cfg.SavePath, "weight table to write when done")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "seed for the tile randomness")
	flag.BoolVar(&cfg.ResetTraceOnOpen, "reset", cfg.ResetTraceOnOpen, "drop the learning trace at episode boundaries")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	runID := uuid.New()
	log.WithFields(logrus.Fields{
		"run":   runID,
		"total": cfg.TotalEpisodes,
		"block": cfg.BlockSize,
		"alpha": cfg.Alpha,
	}).Info("training started")

	slider, err := agent.NewTDSlider(agent.Config{
		Alpha:            float32(cfg.Alpha),
		LoadPath:         cfg.LoadPath,
		SavePath:         cfg.SavePath,
		ResetTraceOnOpen: cfg.ResetTraceOnOpen,
	})
	if err != nil {
		log.Fatalf("init slider: %v", err)
	}
	placer := agent.NewRandomPlacer(cfg.Seed)

	var onBlock func(trainer.BlockStats)
	if cfg.DatabaseURL != "" {
		ctx := context.Background()
		store, err := trainer.NewStore(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("init store: %v", err)
		}
		defer store.Close()
		onBlock = func(bs trainer.BlockStats) {
			if err := store.InsertBlock(ctx, runID, bs); err != nil {
				log.WithError(err).Warn("store block")
			}
		}
		log.Info("block statistics will be stored to Postgres")
	}

	tr := trainer.New(slider, placer, log)
	tr.Run(cfg.TotalEpisodes, cfg.BlockSize, onBlock)

	if err := slider.Close(); err != nil {
		log.Fatalf("save model: %v", err)
	}
	if cfg.SavePath != "" {
		log.WithField("save", cfg.SavePath).Info("model saved")
	}
	log.Info("training finished")
}
