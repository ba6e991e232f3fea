package voxelca

import "github.com/cespare/xxhash/v2"

// Digest fingerprints the committed grid. Two sims with equal digests hold
// the same materials in the same cells.
func (s *Sim) Digest() uint64 {
	cells := s.grid.Cells()
	if cap(s.scratch) < len(cells) {
		s.scratch = make([]byte, len(cells))
	}
	buf := s.scratch[:len(cells)]
	for i, m := range cells {
		buf[i] = byte(m)
	}
	return xxhash.Sum64(buf)
}
