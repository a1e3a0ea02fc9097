package trainer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createBlocksTable = `
CREATE TABLE IF NOT EXISTS training_blocks (
	id          BIGSERIAL PRIMARY KEY,
	run_id      UUID NOT NULL,
	block       INT NOT NULL,
	episodes    INT NOT NULL,
	avg_score   DOUBLE PRECISION NOT NULL,
	max_score   INT NOT NULL,
	total_moves INT NOT NULL,
	elapsed_ms  BIGINT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Store persists block statistics to Postgres so long training runs can
// be compared across restarts.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore connects to the database and ensures the schema exists.
func NewStore(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := pool.Exec(ctx, createBlocksTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create training_blocks table: %w", err)
	}
	return &Store{pool: pool}, nil
}

// InsertBlock records one block of statistics under a run identifier.
func (s *Store) InsertBlock(ctx context.Context, runID uuid.UUID, bs BlockStats) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO training_blocks
		 (run_id, block, episodes, avg_score, max_score, total_moves, elapsed_ms)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		runID, bs.Block, bs.Episodes, bs.AvgScore, bs.MaxScore, bs.TotalMoves,
		bs.Elapsed.Milliseconds())
	if err != nil {
		return fmt.Errorf("insert block %d: %w", bs.Block, err)
	}
	return nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}
