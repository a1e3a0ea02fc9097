// Package agent implements the players and environments for the Threes
// engine: uniform-random slider and placer agents, and a slider that
// learns an n-tuple value network by one-step temporal-difference
// updates over its own greedy play.
package agent

import (
	threes "github.com/lee81116/threes"
)

const (
	// TupleLen is the number of cells sampled by one tuple.
	TupleLen = 4
	// PlaneSize is the number of weights in one plane: every TupleLen-cell
	// pattern of 4-bit ranks packs into [0, PlaneSize).
	PlaneSize = 1 << (4 * TupleLen) // 65536
)

// Tuple is one feature of the n-tuple network: an ordered set of flat
// cell positions (row-major 0-15) whose ranks are packed base-16 into a
// plane index. Using lines of adjacent cells keeps each plane small
// (PlaneSize entries) while still capturing local tile structure.
type Tuple [TupleLen]uint8

// Index packs the tuple's cell ranks into a plane index. Ranks are
// bounded to 4 bits, so the result is always below PlaneSize.
func (t Tuple) Index(g threes.Grid) uint32 {
	var idx uint32
	for _, pos := range t {
		idx = idx<<4 | uint32(g[pos/threes.BoardSize][pos%threes.BoardSize])
	}
	return idx
}

// Network is the ordered set of tuples. Plane i of a value table always
// corresponds to tuple i; this ordering is part of the persisted table
// format and must not change independently of it.
type Network []Tuple

// DefaultNetwork returns the standard 8-tuple network: the four rows
// left-to-right followed by the four columns top-to-bottom.
func DefaultNetwork() Network {
	net := make(Network, 0, 8)
	for r := uint8(0); r < threes.BoardSize; r++ {
		base := r * threes.BoardSize
		net = append(net, Tuple{base, base + 1, base + 2, base + 3})
	}
	for c := uint8(0); c < threes.BoardSize; c++ {
		net = append(net, Tuple{c, c + 4, c + 8, c + 12})
	}
	return net
}

// Extract writes one plane index per tuple into out, in network order.
// out must have len(n) entries.
func (n Network) Extract(g threes.Grid, out []uint32) {
	for i, t := range n {
		out[i] = t.Index(g)
	}
}
