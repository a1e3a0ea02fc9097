package trainer

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config collects the tunable parameters of a training run. Values come
// from the environment (optionally via a .env file); command line flags
// override them in cmd/threes-train.
type Config struct {
	// TotalEpisodes is the number of self-play games to run.
	TotalEpisodes int
	// BlockSize is the number of episodes per statistics block.
	BlockSize int
	// Alpha is the learning rate. 0 disables learning entirely.
	Alpha float64
	// LoadPath and SavePath name the weight table files. Empty means
	// start fresh / do not persist.
	LoadPath string
	SavePath string
	// Seed seeds the environment's tile randomness.
	Seed uint64
	// ResetTraceOnOpen drops the pending learning trace at episode
	// boundaries instead of carrying it across games.
	ResetTraceOnOpen bool
	// DatabaseURL, when set, enables persisting block statistics to
	// Postgres.
	DatabaseURL string
}

// LoadConfig reads configuration from a .env file (if present) and the
// process environment.
func LoadConfig() Config {
	_ = godotenv.Load()
	return Config{
		TotalEpisodes:    envInt("THREES_EPISODES", 100000),
		BlockSize:        envInt("THREES_BLOCK", 1000),
		Alpha:            envFloat("THREES_ALPHA", 0.0125),
		LoadPath:         os.Getenv("THREES_LOAD"),
		SavePath:         os.Getenv("THREES_SAVE"),
		Seed:             uint64(envInt("THREES_SEED", 0)),
		ResetTraceOnOpen: envBool("THREES_RESET_TRACE", false),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
	}
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
