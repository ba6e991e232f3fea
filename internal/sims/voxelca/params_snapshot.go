package voxelca

import (
	"strconv"

	"voxel-ca/internal/core"
	"voxel-ca/internal/voxel"
)

func (s *Sim) Parameters() core.ParameterSnapshot {
	counts := s.grid.Count()
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("size", "Edge length", s.grid.Size()),
				int64Param("seed", "Seed", s.seed),
				stringParam("scene", "Scene", s.cfg.Scene),
				uint64Param("tick", "Tick", s.tick),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				stringParam("life_rule", "Life rule", s.engine.LifeRule().String()),
			},
		},
		{
			Name: "View",
			Params: []core.Parameter{
				stringParam("view", "Projection", s.view.String()),
				intParam("layer", "Slice layer", s.layer),
				stringParam("brush", "Brush", s.brush.String()),
			},
		},
		{
			Name: "Population",
			Params: []core.Parameter{
				intParam("sand", "Sand", counts[voxel.Sand]),
				intParam("water", "Water", counts[voxel.Water]),
				intParam("life", "Life", counts[voxel.Life]),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the HUD can step. Brush and view are
// stepped through their enum values.
func (s *Sim) ParameterControls() []core.ParameterControl {
	n := s.grid.Size()
	return []core.ParameterControl{
		{Key: "layer", Label: "Layer", Step: 1, Min: 0, Max: n - 1, HasMin: true, HasMax: true},
		{Key: "brush", Label: "Brush", Step: 1, Min: int(voxel.Sand), Max: int(voxel.Wall), HasMin: true, HasMax: true},
		{Key: "view", Label: "View", Step: 1, Min: 0, Max: int(viewCount) - 1, HasMin: true, HasMax: true},
	}
}

// IntParameter reports the current value of a stepped control.
func (s *Sim) IntParameter(key string) (int, bool) {
	switch key {
	case "layer":
		return s.layer, true
	case "brush":
		return int(s.brush), true
	case "view":
		return int(s.view), true
	}
	return 0, false
}

func (s *Sim) SetIntParameter(key string, value int) bool {
	switch key {
	case "layer":
		if value < 0 || value >= s.grid.Size() {
			return false
		}
		s.layer = value
	case "brush":
		m := voxel.Material(value)
		if value < 0 || !m.Valid() || m == voxel.Empty {
			return false
		}
		s.brush = m
	case "view":
		if value < 0 || value >= int(viewCount) {
			return false
		}
		s.view = View(value)
	default:
		return false
	}
	s.rebuildDisplay()
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func uint64Param(key, label string, value uint64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatUint(value, 10),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
