package voxel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridBoundary(t *testing.T) {
	g := NewGrid()
	for z := 0; z < N; z++ {
		for y := 0; y < N; y++ {
			for x := 0; x < N; x++ {
				want := Empty
				if x == 0 || x == N-1 || y == 0 || y == N-1 || z == 0 || z == N-1 {
					want = Wall
				}
				if got := g.Get(x, y, z); got != want {
					t.Fatalf("cell (%d,%d,%d) = %v, want %v", x, y, z, got, want)
				}
			}
		}
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	g := NewGrid()
	coords := [][3]int{{1, 1, 1}, {10, 20, 30}, {N - 2, N - 2, N - 2}, {0, 5, 5}}
	for i, c := range coords {
		m := Material(i%int(MaterialCount-1) + 1)
		g.Set(c[0], c[1], c[2], m)
		assert.Equal(t, m, g.Get(c[0], c[1], c[2]), "coord %v", c)
	}
}

func TestOutOfBoundsReadsWall(t *testing.T) {
	g := NewGrid()
	g.Clear()

	outside := [][3]int{{-1, 0, 0}, {0, -1, 0}, {0, 0, -1}, {N, 0, 0}, {0, N, 0}, {0, 0, N}, {-50, 200, 3}}
	for _, c := range outside {
		g.Set(c[0], c[1], c[2], Sand)
		assert.Equal(t, Wall, g.Get(c[0], c[1], c[2]), "coord %v", c)
		assert.False(t, g.InBounds(c[0], c[1], c[2]))
	}
	assert.Equal(t, N*N*N, g.Count()[Empty], "out-of-range writes must not land anywhere")
}

func TestInBoundsIndependentOfContents(t *testing.T) {
	g := NewGrid()
	assert.True(t, g.InBounds(0, 0, 0))
	assert.True(t, g.InBounds(N-1, N-1, N-1))
	assert.Equal(t, Wall, g.Get(0, 0, 0))
	assert.False(t, g.InBounds(N, 0, 0))
}

func TestIndexLayout(t *testing.T) {
	g := NewGrid()
	assert.Equal(t, 0, g.Index(0, 0, 0))
	assert.Equal(t, 1, g.Index(1, 0, 0))
	assert.Equal(t, N, g.Index(0, 1, 0))
	assert.Equal(t, N*N, g.Index(0, 0, 1))
	assert.Equal(t, N*N*N-1, g.Index(N-1, N-1, N-1))
	assert.Panics(t, func() { g.Index(N, 0, 0) })
	assert.Panics(t, func() { g.Index(0, -1, 0) })
}

func TestClearIdempotent(t *testing.T) {
	g := NewGrid()
	g.Set(5, 5, 5, Sand)
	g.Next()[g.Index(6, 6, 6)] = Water

	g.Clear()
	once := append([]Material(nil), g.Cells()...)
	onceNext := append([]Material(nil), g.Next()...)
	g.Clear()

	require.Equal(t, once, g.Cells())
	require.Equal(t, onceNext, g.Next())
	assert.Equal(t, N*N*N, g.Count()[Empty])
	for _, m := range g.Next() {
		if m != Empty {
			t.Fatalf("next buffer holds %v after Clear", m)
		}
	}
}

func TestResetRestoresBoundary(t *testing.T) {
	g := NewGrid()
	g.Set(3, 3, 3, Life)
	g.Clear()
	require.Equal(t, Empty, g.Get(0, 0, 0))

	g.Reset()
	fresh := NewGrid()
	assert.Equal(t, fresh.Cells(), g.Cells())
	assert.Equal(t, fresh.Next(), g.Next())
}

func TestSwapBuffersInvolution(t *testing.T) {
	g := NewGrid()
	cur := &g.Cells()[0]
	nxt := &g.Next()[0]

	g.SwapBuffers()
	assert.Same(t, nxt, &g.Cells()[0])
	assert.Same(t, cur, &g.Next()[0])

	g.SwapBuffers()
	assert.Same(t, cur, &g.Cells()[0])
	assert.Same(t, nxt, &g.Next()[0])
}

func TestSwapBuffersCommitsNext(t *testing.T) {
	g := NewGrid()
	g.SeedNext()
	g.Next()[g.Index(4, 4, 4)] = Water
	assert.Equal(t, Empty, g.Get(4, 4, 4), "scratch writes must stay invisible until commit")

	g.SwapBuffers()
	assert.Equal(t, Water, g.Get(4, 4, 4))
}

func TestCountAndColumn(t *testing.T) {
	g := NewGrid()
	g.Set(10, 1, 10, Sand)
	g.Set(10, 2, 10, Sand)
	g.Set(10, 7, 10, Water)

	counts := g.Count()
	assert.Equal(t, 2, counts[Sand])
	assert.Equal(t, 1, counts[Water])

	y, ok := g.Column(10, 10)
	require.True(t, ok)
	assert.Equal(t, 7, y)

	_, ok = g.Column(20, 20)
	assert.False(t, ok)
	_, ok = g.Column(-1, 20)
	assert.False(t, ok)
}

func TestRaycastFindsFirstOccupied(t *testing.T) {
	g := NewGrid()
	g.Set(20, 10, 30, Sand)

	hit, ok := g.Raycast(Vec3{X: 20.5, Y: N - 1.5, Z: 30.5}, Vec3{Y: -1}, 0, 0)
	require.True(t, ok)
	assert.Equal(t, Hit{X: 20, Y: 10, Z: 30, Material: Sand}, hit)

	hit, ok = g.Raycast(Vec3{X: 21.5, Y: N - 1.5, Z: 30.5}, Vec3{Y: -1}, 0, 0)
	require.True(t, ok)
	assert.Equal(t, Hit{X: 21, Y: 0, Z: 30, Material: Wall}, hit, "empty column hits the floor")

	hit, ok = g.Raycast(Vec3{X: 20.5, Y: 80, Z: 30.5}, Vec3{Y: -1}, 0, 0)
	require.True(t, ok)
	assert.Equal(t, Hit{X: 20, Y: N - 1, Z: 30, Material: Wall}, hit, "rays from outside stop at the shell")

	_, ok = g.Raycast(Vec3{X: 20.5, Y: 80, Z: 30.5}, Vec3{Y: 1}, 0, 0)
	assert.False(t, ok, "ray pointing away from the grid hits nothing")

	_, ok = g.Raycast(Vec3{X: 20.5, Y: 30, Z: 30.5}, Vec3{}, 0, 0)
	assert.False(t, ok, "zero direction")
}

func TestParseMaterial(t *testing.T) {
	for m := Empty; m < MaterialCount; m++ {
		got, err := ParseMaterial(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := ParseMaterial(" Water ")
	require.NoError(t, err)
	assert.Equal(t, Water, got)

	_, err = ParseMaterial("lava")
	assert.Error(t, err)
	assert.Equal(t, "material(9)", Material(9).String())
}

func TestMaterialInfo(t *testing.T) {
	assert.True(t, InfoFor(Sand).Gravity)
	assert.False(t, InfoFor(Sand).Fluid)
	assert.True(t, InfoFor(Water).Fluid)
	assert.False(t, InfoFor(Wall).Gravity)
	assert.Equal(t, InfoFor(Empty), InfoFor(Material(200)))
}
