package voxelca

import (
	"fmt"
	"strings"

	"voxel-ca/internal/voxel"
)

// View selects how the cube is projected onto the 2D display buffer.
type View int

const (
	// ViewSlice shows the x/y plane at z = layer, y increasing upwards.
	ViewSlice View = iota
	// ViewTop shows, for every column (x, z), its topmost occupied cell.
	ViewTop

	viewCount
)

func (v View) String() string {
	switch v {
	case ViewSlice:
		return "slice"
	case ViewTop:
		return "top"
	default:
		return fmt.Sprintf("view(%d)", int(v))
	}
}

// ParseView resolves "slice" or "top".
func ParseView(s string) (View, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "slice":
		return ViewSlice, nil
	case "top":
		return ViewTop, nil
	}
	return ViewSlice, fmt.Errorf("unknown view %q", s)
}

// rebuildDisplay projects the committed grid into the display buffer. Each
// display byte is a voxel.Material value.
func (s *Sim) rebuildDisplay() {
	n := s.grid.Size()
	switch s.view {
	case ViewTop:
		for z := 0; z < n; z++ {
			for x := 0; x < n; x++ {
				m := voxel.Empty
				if y, ok := s.grid.Column(x, z); ok {
					m = s.grid.Get(x, y, z)
				} else if x == 0 || x == n-1 || z == 0 || z == n-1 {
					m = voxel.Wall
				}
				s.display.Set(x, z, uint8(m))
			}
		}
	default:
		for y := 0; y < n; y++ {
			row := n - 1 - y
			for x := 0; x < n; x++ {
				s.display.Set(x, row, uint8(s.grid.Get(x, y, s.layer)))
			}
		}
	}
}

// displayToGrid maps a display coordinate to grid space. In the top view only
// x and z are meaningful.
func (s *Sim) displayToGrid(dx, dy int) (x, y, z int, ok bool) {
	n := s.grid.Size()
	if dx < 0 || dx >= n || dy < 0 || dy >= n {
		return 0, 0, 0, false
	}
	switch s.view {
	case ViewTop:
		return dx, 0, dy, true
	default:
		return dx, n - 1 - dy, s.layer, true
	}
}

// Describe names the grid cell behind a display coordinate. In the top view
// it reports the column's topmost occupied cell.
func (s *Sim) Describe(dx, dy int) (string, bool) {
	x, y, z, ok := s.displayToGrid(dx, dy)
	if !ok {
		return "", false
	}
	if s.view == ViewTop {
		top, found := s.grid.Column(x, z)
		if !found {
			return fmt.Sprintf("(%d, -, %d) open column", x, z), true
		}
		y = top
	}
	return fmt.Sprintf("(%d, %d, %d) %v", x, y, z, s.grid.Get(x, y, z)), true
}
