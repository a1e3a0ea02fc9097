package threes

import "fmt"

// Action is a packed move index. Slide actions are the direction values
// 0-3. Place actions set bit 8 and pack position, tile and hint:
//
//	0x100 | pos<<4 | tile<<2 | hint
//
// with pos in 0-15 and tile/hint in 1-3.
type Action uint16

// ActionNone is the no-op action an agent returns when it has no legal
// move. Applying it is an error; callers treat it as end of episode.
const ActionNone Action = 0xFFFF

const actionBasePlace Action = 0x100

// EncodeSlide returns the action for sliding in dir (0-3).
func EncodeSlide(dir uint8) Action { return Action(dir) }

// EncodePlace returns the action that places a tile of the given rank at
// a flat position, announcing hint as the next tile.
func EncodePlace(pos, tile, hint uint8) Action {
	return actionBasePlace | Action(pos)<<4 | Action(tile)<<2 | Action(hint)
}

// ActionIsSlide decodes a slide action.
func ActionIsSlide(a Action) (dir uint8, ok bool) {
	if a <= Action(SlideLeft) {
		return uint8(a), true
	}
	return 0, false
}

// ActionIsPlace decodes a place action.
func ActionIsPlace(a Action) (pos, tile, hint uint8, ok bool) {
	if a&actionBasePlace == 0 || a == ActionNone {
		return 0, 0, 0, false
	}
	return uint8(a>>4) & 0x0F, uint8(a>>2) & 0x03, uint8(a) & 0x03, true
}

// ApplyAction applies an action to the board. Returns an error if the
// action is illegal in the current position.
func (b *Board) ApplyAction(a Action) error {
	if dir, ok := ActionIsSlide(a); ok {
		if b.Slide(dir) < 0 {
			return fmt.Errorf("illegal slide in direction %d", dir)
		}
		return nil
	}
	if pos, tile, hint, ok := ActionIsPlace(a); ok {
		return b.place(pos, tile, hint)
	}
	return fmt.Errorf("unhandled action index %d", a)
}

// place puts a tile at a flat position and records the announced hint.
// The bag is debited for every tile drawn: the placed tile when there
// was no prior hint (the hinted tile was debited when it was announced),
// and always the new hint.
func (b *Board) place(pos, tile, hint uint8) error {
	if pos >= NumCells {
		return fmt.Errorf("place position %d out of range", pos)
	}
	if !b.Empty(pos) {
		return fmt.Errorf("cell %d is occupied", pos)
	}
	if tile < 1 || tile > 3 || hint < 1 || hint > 3 {
		return fmt.Errorf("place tile %d hint %d outside bag range", tile, hint)
	}
	if b.Hint != 0 && tile != b.Hint {
		return fmt.Errorf("placed tile %d does not match hint %d", tile, b.Hint)
	}
	if b.Hint == 0 && !b.takeFromBag(tile) {
		return fmt.Errorf("tile %d not available in bag", tile)
	}
	if !b.takeFromBag(hint) {
		return fmt.Errorf("hint %d not available in bag", hint)
	}
	b.Cells[pos/BoardSize][pos%BoardSize] = tile
	b.Hint = hint
	return nil
}
