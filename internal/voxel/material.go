package voxel

import (
	"fmt"
	"strings"
)

// Material identifies the contents of a single cell.
type Material uint8

const (
	Empty Material = iota
	Sand
	Water
	Life
	Wall

	// MaterialCount is the number of defined materials.
	MaterialCount
)

// Info holds display metadata for a material. The rules never consult it.
type Info struct {
	Color   [3]float32
	Gravity bool
	Fluid   bool
}

var infos = [MaterialCount]Info{
	Empty: {Color: [3]float32{0, 0, 0}},
	Sand:  {Color: [3]float32{0.9, 0.8, 0.3}, Gravity: true},
	Water: {Color: [3]float32{0.2, 0.6, 1.0}, Gravity: true, Fluid: true},
	Life:  {Color: [3]float32{0, 1, 0}},
	Wall:  {Color: [3]float32{0.5, 0.5, 0.5}},
}

var names = [MaterialCount]string{
	Empty: "empty",
	Sand:  "sand",
	Water: "water",
	Life:  "life",
	Wall:  "wall",
}

// InfoFor returns the metadata for m. Unknown values report Empty's metadata.
func InfoFor(m Material) Info {
	if m >= MaterialCount {
		return infos[Empty]
	}
	return infos[m]
}

func (m Material) String() string {
	if m >= MaterialCount {
		return fmt.Sprintf("material(%d)", uint8(m))
	}
	return names[m]
}

// Valid reports whether m is one of the defined materials.
func (m Material) Valid() bool { return m < MaterialCount }

// ParseMaterial resolves a material by name, case-insensitively.
func ParseMaterial(name string) (Material, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range names {
		if n == key {
			return Material(i), nil
		}
	}
	return Empty, fmt.Errorf("unknown material %q", name)
}
