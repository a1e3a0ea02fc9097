package agent

import (
	"math/rand/v2"

	threes "github.com/lee81116/threes"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomSlider picks a uniformly random legal slide direction.
type RandomSlider struct {
	rng *rand.Rand
}

// NewRandomSlider returns a random slider with a deterministic seed.
func NewRandomSlider(seed uint64) *RandomSlider {
	return &RandomSlider{rng: newRand(seed)}
}

func (s *RandomSlider) Name() string  { return "random-slider" }
func (s *RandomSlider) OpenEpisode()  {}
func (s *RandomSlider) CloseEpisode() {}

// TakeAction implements Agent: the four directions are tried in a
// random order and the first legal one is played.
func (s *RandomSlider) TakeAction(b *threes.Board) threes.Action {
	for _, d := range s.rng.Perm(4) {
		dir := uint8(d)
		if _, ok := b.AfterSlide(dir); ok {
			return threes.EncodeSlide(dir)
		}
	}
	return threes.ActionNone
}

// placeSpaces[last] lists the cells a new tile may enter after a slide
// in direction last: the edge opposite the slide. placeSpaces[SlideNone]
// opens the whole board for the initial placements.
var placeSpaces = [5][]uint8{
	threes.SlideUp:    {12, 13, 14, 15},
	threes.SlideRight: {0, 4, 8, 12},
	threes.SlideDown:  {0, 1, 2, 3},
	threes.SlideLeft:  {3, 7, 11, 15},
	threes.SlideNone:  {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
}

// RandomPlacer is the default environment: after every slide it drops
// the hinted tile on a random empty cell of the entering edge and draws
// the next hint from the bag.
type RandomPlacer struct {
	rng *rand.Rand
}

// NewRandomPlacer returns a random placer with a deterministic seed.
func NewRandomPlacer(seed uint64) *RandomPlacer {
	return &RandomPlacer{rng: newRand(seed)}
}

func (p *RandomPlacer) Name() string  { return "random-placer" }
func (p *RandomPlacer) OpenEpisode()  {}
func (p *RandomPlacer) CloseEpisode() {}

// TakeAction implements Agent. Returns ActionNone when every cell of the
// entering edge is occupied.
func (p *RandomPlacer) TakeAction(b *threes.Board) threes.Action {
	space := placeSpaces[b.Last]
	order := p.rng.Perm(len(space))
	for _, i := range order {
		pos := space[i]
		if !b.Empty(pos) {
			continue
		}
		// Simulate the bag locally so the hint draw sees the tile draw;
		// the board performs the same debits when the action applies.
		bag := b.Bag
		tile := b.Hint
		if tile == 0 {
			tile = p.drawFromBag(&bag)
		}
		hint := p.drawFromBag(&bag)
		return threes.EncodePlace(pos, tile, hint)
	}
	return threes.ActionNone
}

// drawFromBag removes a uniformly random tile from the bag counts,
// refilling first if the bag is exhausted, and returns its rank.
func (p *RandomPlacer) drawFromBag(bag *[4]uint8) uint8 {
	if bag[1]+bag[2]+bag[3] == 0 {
		*bag = [4]uint8{0, 1, 1, 1}
	}
	var pool []uint8
	for rank := uint8(1); rank <= 3; rank++ {
		for n := uint8(0); n < bag[rank]; n++ {
			pool = append(pool, rank)
		}
	}
	rank := pool[p.rng.IntN(len(pool))]
	bag[rank]--
	return rank
}
