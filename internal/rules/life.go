package rules

import (
	"fmt"
	"strings"

	"voxel-ca/internal/voxel"
)

// LifeRule selects how Life cells are born and die.
type LifeRule uint8

const (
	// AxisOpen counts Empty cells among below, above, x-1 and x+1. Life
	// survives with 2 or 3 open neighbours; any other non-Life cell becomes
	// Life with exactly 3.
	AxisOpen LifeRule = iota
	// Moore counts Life cells among the 26 surrounding cells. Life survives
	// with 5 to 7 neighbours; Empty becomes Life with exactly 6.
	Moore
)

func (r LifeRule) String() string {
	switch r {
	case AxisOpen:
		return "axis"
	case Moore:
		return "moore"
	default:
		return fmt.Sprintf("liferule(%d)", uint8(r))
	}
}

// ParseLifeRule resolves "axis" or "moore".
func ParseLifeRule(s string) (LifeRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "axis":
		return AxisOpen, nil
	case "moore":
		return Moore, nil
	}
	return AxisOpen, fmt.Errorf("unknown life rule %q", s)
}

func (e *Engine) updateLife(g *voxel.Grid, m voxel.Material, x, y, z int) {
	if e.life == Moore {
		e.updateLifeMoore(g, m, x, y, z)
		return
	}

	open := 0
	for _, c := range [4][3]int{{x, y - 1, z}, {x, y + 1, z}, {x - 1, y, z}, {x + 1, y, z}} {
		if g.Get(c[0], c[1], c[2]) == voxel.Empty {
			open++
		}
	}

	idx := g.Index(x, y, z)
	if m == voxel.Life {
		if open < 2 || open > 3 {
			if e.write(g, idx, voxel.Empty, claimLife) {
				e.last.Deaths++
			}
		}
		return
	}
	if open == 3 && e.write(g, idx, voxel.Life, claimBirth) {
		e.last.Births++
	}
}

func (e *Engine) updateLifeMoore(g *voxel.Grid, m voxel.Material, x, y, z int) {
	if m != voxel.Life && m != voxel.Empty {
		return
	}
	count := 0
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				if g.Get(x+dx, y+dy, z+dz) == voxel.Life {
					count++
				}
			}
		}
	}

	idx := g.Index(x, y, z)
	if m == voxel.Life {
		if (count < 5 || count > 7) && e.write(g, idx, voxel.Empty, claimLife) {
			e.last.Deaths++
		}
		return
	}
	if count == 6 && e.write(g, idx, voxel.Life, claimBirth) {
		e.last.Births++
	}
}
