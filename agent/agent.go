package agent

import (
	threes "github.com/lee81116/threes"
)

// Agent is anything that can drive a Threes board: sliders pick a slide
// direction, placers drop the next tile. An agent returns
// threes.ActionNone when it has no legal move, which the episode driver
// reads as end of game.
type Agent interface {
	// Name identifies the agent in logs and statistics.
	Name() string
	// OpenEpisode is called once before each episode begins.
	OpenEpisode()
	// CloseEpisode is called once after each episode ends.
	CloseEpisode()
	// TakeAction picks the agent's move for the given position. The
	// board is read-only; the caller applies the returned action.
	TakeAction(b *threes.Board) threes.Action
}

// DefaultAlpha is the standard TD learning rate.
const DefaultAlpha float32 = 0.0125

// Config holds the construction-time options of a TDSlider. The zero
// value is a non-learning agent over a fresh zero table; start from
// DefaultConfig for a learner with the standard rate.
type Config struct {
	// Network defines the tuple shapes; nil means DefaultNetwork().
	Network Network
	// Table, when non-nil, is used directly instead of loading or
	// allocating one. Lets several evaluation agents share one frozen
	// table, and tests plant known weights.
	Table Table
	// Alpha is the TD learning rate. Zero disables learning entirely:
	// no weight is ever written, so the table may be shared read-only.
	Alpha float32
	// LoadPath, when set (and Table is nil), loads the table from disk.
	LoadPath string
	// SavePath, when set, makes Close write the table back to disk.
	SavePath string
	// ResetTraceOnOpen clears the pending learning state at every
	// OpenEpisode, so no update crosses an episode boundary. The default
	// (false) keeps the original continuous-trajectory behavior where
	// the last state of one episode is corrected by the first decision
	// of the next.
	ResetTraceOnOpen bool
}

// DefaultConfig returns a learning configuration with the standard
// network and learning rate.
func DefaultConfig() Config {
	return Config{Alpha: DefaultAlpha}
}
