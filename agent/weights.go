package agent

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Plane is one weight plane of the n-tuple network: a dense array of
// float32 weights indexed by a tuple's packed feature index. The size is
// fixed at construction (or load) and never changes afterwards.
type Plane []float32

// NewPlane returns a zero-initialized plane of the given size.
func NewPlane(size int) Plane {
	return make(Plane, size)
}

// WriteTo serializes the plane: a little-endian uint64 entry count
// followed by the raw little-endian float32 weights. Implements
// io.WriterTo.
func (p Plane) WriteTo(w io.Writer) (int64, error) {
	if err := binary.Write(w, binary.LittleEndian, uint64(len(p))); err != nil {
		return 0, err
	}
	if err := binary.Write(w, binary.LittleEndian, []float32(p)); err != nil {
		return 8, err
	}
	return 8 + int64(4*len(p)), nil
}

// ReadPlane deserializes one plane from r in the WriteTo format.
func ReadPlane(r io.Reader) (Plane, error) {
	var size uint64
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return nil, fmt.Errorf("read plane size: %w", err)
	}
	if size > PlaneSize {
		return nil, fmt.Errorf("plane size %d exceeds maximum %d", size, PlaneSize)
	}
	p := make(Plane, size)
	if err := binary.Read(r, binary.LittleEndian, []float32(p)); err != nil {
		return nil, fmt.Errorf("read %d plane weights: %w", size, err)
	}
	return p, nil
}
