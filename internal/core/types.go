package core

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownSim is returned by Lookup for names that were never registered.
var ErrUnknownSim = errors.New("unknown sim")

// Size describes the dimensions of the 2D view a simulation exposes.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
// Cells returns the display buffer, Size().W*Size().H bytes in row-major
// order, which may be a projection of a higher-dimensional state.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists the registered simulations in lexical order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (registered: %v)", ErrUnknownSim, name, Names())
	}
	return f, nil
}
