package agent

import (
	"fmt"

	threes "github.com/lee81116/threes"
)

// Trace is the learning state carried from one decision to the next:
// the feature indices and estimated value of the previously chosen best
// successor. The next decision's candidate score becomes the TD target
// that corrects these exact weights.
type Trace struct {
	Indices []uint32
	Value   float32
}

// TDSlider is the greedy one-ply slider that learns an n-tuple value
// network online. For every position it simulates all four slides,
// scores each legal successor as intrinsic reward plus learned value,
// plays the maximum, and nudges the previous successor's weights toward
// the value the new choice implies (one-step TD(0)).
//
// A TDSlider owns its Table exclusively while Alpha is non-zero; see
// Table for the sharing rules.
type TDSlider struct {
	net   Network
	table Table
	alpha float32

	trace   Trace
	trained bool

	resetOnOpen bool
	savePath    string

	// scratch buffer for per-candidate feature extraction
	scratch []uint32
}

// NewTDSlider builds a slider from cfg. The table is taken from
// cfg.Table, loaded from cfg.LoadPath, or freshly zero-allocated, in
// that order of preference. A loaded table must have exactly one plane
// per network tuple.
func NewTDSlider(cfg Config) (*TDSlider, error) {
	net := cfg.Network
	if net == nil {
		net = DefaultNetwork()
	}

	table := cfg.Table
	if table == nil && cfg.LoadPath != "" {
		loaded, err := LoadTable(cfg.LoadPath)
		if err != nil {
			return nil, err
		}
		table = loaded
	}
	if table == nil {
		table = NewTable(net)
	}
	if len(table) != len(net) {
		return nil, fmt.Errorf("table has %d planes, network has %d tuples", len(table), len(net))
	}

	return &TDSlider{
		net:         net,
		table:       table,
		alpha:       cfg.Alpha,
		resetOnOpen: cfg.ResetTraceOnOpen,
		savePath:    cfg.SavePath,
		trace:       Trace{Indices: make([]uint32, len(net))},
		scratch:     make([]uint32, len(net)),
	}, nil
}

// Name implements Agent.
func (l *TDSlider) Name() string { return "td-slider" }

// Table returns the slider's weight table.
func (l *TDSlider) Table() Table { return l.table }

// OpenEpisode implements Agent. With ResetTraceOnOpen set, it drops any
// learning state left over from the previous episode.
func (l *TDSlider) OpenEpisode() {
	if l.resetOnOpen {
		l.trained = false
	}
}

// CloseEpisode implements Agent. It applies the terminal correction:
// the final stored successor is nudged toward zero, since no future
// value follows a terminal state.
func (l *TDSlider) CloseEpisode() {
	if l.trained && l.alpha != 0 {
		l.lastUpdate()
	}
}

// Close persists the table if a save path was configured.
func (l *TDSlider) Close() error {
	if l.savePath == "" {
		return nil
	}
	return l.table.Save(l.savePath)
}

// TakeAction implements Agent. Directions are scanned in the fixed
// order 0,1,2,3 and ties keep the first maximum, so play is fully
// deterministic for a given table.
func (l *TDSlider) TakeAction(b *threes.Board) threes.Action {
	baseScore := b.Score()

	bestDir := -1
	var bestScore float32
	var bestGrid threes.Grid

	for dir := threes.SlideUp; dir <= threes.SlideLeft; dir++ {
		tmp := *b
		if tmp.Slide(dir) < 0 {
			continue
		}
		// Intrinsic reward is the game's own score delta; the learned
		// value is evaluated on the post-slide, pre-placement grid.
		reward := float32(tmp.Score() - baseScore)
		l.net.Extract(tmp.Cells, l.scratch)
		candidate := reward + l.table.Value(l.scratch)
		if bestDir < 0 || candidate > bestScore {
			bestDir = int(dir)
			bestScore = candidate
			bestGrid = tmp.Cells
		}
	}

	if bestDir < 0 {
		// Stuck position. The terminal correction is CloseEpisode's job.
		return threes.ActionNone
	}

	// Correct the previous successor toward the value implied by this
	// decision, then remember the new one for the next call.
	if l.trained && l.alpha != 0 {
		l.update(bestScore)
	}
	l.net.Extract(bestGrid, l.trace.Indices)
	l.trace.Value = l.table.Value(l.trace.Indices)
	l.trained = true

	return threes.EncodeSlide(uint8(bestDir))
}

// update applies the one-step TD(0) correction to the weights selected
// by the stored trace: each touched weight moves by alpha * (target -
// stored value). No clipping or decay is applied; alpha alone bounds
// the step.
func (l *TDSlider) update(target float32) {
	delta := l.alpha * (target - l.trace.Value)
	for i, idx := range l.trace.Indices {
		l.table[i][idx] += delta
	}
}

// lastUpdate is the terminal variant of update: the target is zero.
func (l *TDSlider) lastUpdate() {
	l.update(0)
}
