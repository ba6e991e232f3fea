package core

import (
	"errors"
	"testing"
	"time"
)

type stubSim struct{}

func (stubSim) Name() string   { return "stub" }
func (stubSim) Size() Size     { return Size{W: 1, H: 1} }
func (stubSim) Reset(int64)    {}
func (stubSim) Step()          {}
func (stubSim) Cells() []uint8 { return []uint8{0} }

func TestRegistryLookup(t *testing.T) {
	Register("stub-test", func(map[string]string) Sim { return stubSim{} })
	Register("", func(map[string]string) Sim { return stubSim{} })
	Register("nil-factory", nil)

	f, err := Lookup("stub-test")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got := f(nil).Name(); got != "stub" {
		t.Fatalf("factory built %q", got)
	}

	if _, err := Lookup("missing"); !errors.Is(err, ErrUnknownSim) {
		t.Fatalf("Lookup(missing) error = %v, want ErrUnknownSim", err)
	}
	if _, ok := Sims()[""]; ok {
		t.Fatal("empty name must not register")
	}
	if _, ok := Sims()["nil-factory"]; ok {
		t.Fatal("nil factory must not register")
	}
}

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(20)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	if fs.ShouldStep() {
		t.Fatal("no time elapsed, should not step")
	}

	clock = clock.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("one full tick elapsed")
	}

	clock = clock.Add(10 * time.Second)
	ticks := 0
	for fs.ShouldStep() {
		ticks++
	}
	if want := int(MaxFrame / fs.Step()); ticks != want {
		t.Fatalf("stall produced %d ticks, want clamp to %d", ticks, want)
	}
}

func TestFixedStepDefaultRate(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Step() != 50*time.Millisecond {
		t.Fatalf("default step = %v, want 50ms", fs.Step())
	}
	fs.SetTPS(100)
	if fs.Step() != 10*time.Millisecond {
		t.Fatalf("step = %v after SetTPS(100)", fs.Step())
	}
}

func TestByteGrid(t *testing.T) {
	g := NewByteGrid(4, 3)
	g.Set(3, 2, 7)
	g.Set(4, 0, 9)
	g.Set(-1, 0, 9)
	if g.At(3, 2) != 7 || g.Cells()[g.Index(3, 2)] != 7 {
		t.Fatal("Set/At mismatch")
	}
	if g.At(4, 0) != 0 {
		t.Fatal("out-of-range read must be zero")
	}
	g.Clear()
	for i, v := range g.Cells() {
		if v != 0 {
			t.Fatalf("cell %d = %d after Clear", i, v)
		}
	}
	if s := NewByteGrid(0, -2).Size(); s.W != 1 || s.H != 1 {
		t.Fatalf("degenerate size = %+v", s)
	}
}

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "seed", Value: "42"}}},
		{Name: "B", Params: []Parameter{{Key: "layer", Value: "3"}}},
	}}
	p, ok := snap.Lookup("layer")
	if !ok || p.Value != "3" {
		t.Fatalf("Lookup(layer) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("nope"); ok {
		t.Fatal("unexpected hit")
	}
}
