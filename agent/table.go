package agent

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
)

// Table is an ordered sequence of weight planes, one per network tuple.
// Plane i is always addressed by feature index i of Network.Extract;
// that correspondence is baked into the persisted format.
//
// A Table is mutated in place by TD updates and is not safe for
// concurrent use by multiple learning agents. Concurrent read-only
// sharing (evaluation with a zero learning rate) is fine.
type Table []Plane

// NewTable allocates a zeroed table with one PlaneSize plane per tuple.
func NewTable(net Network) Table {
	t := make(Table, len(net))
	for i := range t {
		t[i] = NewPlane(PlaneSize)
	}
	return t
}

// Value sums the weight selected from each plane: indices[i] addresses
// plane i. indices must have been produced by the same network the
// table was built for.
func (t Table) Value(indices []uint32) float32 {
	var sum float32
	for i, idx := range indices {
		sum += t[i][idx]
	}
	return sum
}

// Save writes the table to path, truncating any existing file: a
// little-endian uint32 plane count followed by each plane's own
// serialization.
func (t Table) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open weight file for save: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, uint32(len(t))); err != nil {
		return fmt.Errorf("write plane count: %w", err)
	}
	for i, p := range t {
		if _, err := p.WriteTo(w); err != nil {
			return fmt.Errorf("write plane %d: %w", i, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush weight file: %w", err)
	}
	return f.Close()
}

// LoadTable reads a table from path in the Save format. A missing or
// truncated file is returned as an error; the caller decides whether
// that is fatal (the training CLI treats it so, rather than silently
// training from empty weights).
func LoadTable(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open weight file for load: %w", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("read plane count: %w", err)
	}
	if count == 0 || count > 64 {
		return nil, fmt.Errorf("implausible plane count %d", count)
	}
	t := make(Table, count)
	for i := range t {
		p, err := ReadPlane(r)
		if err != nil {
			return nil, fmt.Errorf("load plane %d: %w", i, err)
		}
		t[i] = p
	}
	return t, nil
}
