package bottomk_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/iwfg/bottomk"
	"github.com/katalvlaran/iwfg/front"
)

// slabSum resolves every slab of a fresh candidate and returns its value.
func slabSum(t *testing.T, f *front.Front, i int) float64 {
	t.Helper()
	c := bottomk.NewCandidate(i, f.Point(i), sortedRest(f, i))
	ws := bottomk.NewWorkspace(f.Len(), f.Dim()-1)
	for !c.Certified() {
		_, err := c.ResolveNext(ws)
		require.NoError(t, err)
	}

	return c.Value()
}

// TestDecompose_SlabShape verifies weight order, ownership and dimension of
// every slab.
func TestDecompose_SlabShape(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 1))
	f := mustFront(t, randomRows(rng, 7, 4, 0))

	for i := 0; i < f.Len(); i++ {
		slabs := bottomk.Decompose(f.Point(i), sortedRest(f, i))
		for s, slab := range slabs {
			assert.True(t, slab.Owned())
			assert.Greater(t, slab.Weight, 0.0)
			if s > 0 {
				assert.GreaterOrEqual(t, slabs[s-1].Weight, slab.Weight)
			}
			for _, p := range slab.Points() {
				assert.Len(t, p, 3)
			}
		}
	}
}

// TestDecompose_SumMatchesContribution checks Σ weight × sub-volume against
// inclusion–exclusion on random fronts, with and without ties.
func TestDecompose_SumMatchesContribution(t *testing.T) {
	rng := rand.New(rand.NewPCG(4, 9))
	for n := 2; n <= 4; n++ {
		for _, grid := range []int{0, 3} {
			rows := randomRows(rng, 7, n, grid)
			f := mustFront(t, rows)
			want := bruteContributions(rows)
			for i := range rows {
				assert.InDelta(t, want[i], slabSum(t, f, i), 1e-9, "n=%d grid=%d point %d", n, grid, i)
			}
		}
	}
}

// TestDecompose_Fixture reproduces the known contributions of the six-point
// front.
func TestDecompose_Fixture(t *testing.T) {
	f := mustFront(t, sixPoints)
	for i, want := range sixContrib {
		assert.InDelta(t, want, slabSum(t, f, i), 1e-7, "point %d", i)
	}
}

// TestDecompose_CoveredPointHasNoSlabs verifies that a point covered on every
// objective, duplicates included, yields no slab at all.
func TestDecompose_CoveredPointHasNoSlabs(t *testing.T) {
	cases := []struct {
		name string
		z    front.Point
		rest []front.Point
	}{
		{"duplicate", front.Point{1, 2}, []front.Point{{1, 2}, {2, 1}}},
		{"same level, better other", front.Point{1, 1}, []front.Point{{2, 1}}},
		{"strictly dominated", front.Point{1, 1, 1}, []front.Point{{2, 2, 2}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Empty(t, bottomk.Decompose(tc.z, tc.rest))
		})
	}
}

// TestDecompose_TiedLevelsCloseNoEmptySlab verifies that equal last
// objectives never produce a zero-thickness slab.
func TestDecompose_TiedLevelsCloseNoEmptySlab(t *testing.T) {
	z := front.Point{3, 2}
	rest := []front.Point{{2, 2}, {1, 2}, {4, 1}}
	slabs := bottomk.Decompose(z, rest)

	// (2,2) and (1,2) share z's level, so the only band runs from 2 down to
	// 1, where (4,1) covers z.
	require.Len(t, slabs, 1)
	assert.Equal(t, 1.0, slabs[0].Weight)
	assert.Equal(t, []front.Point{{2}, {1}}, slabs[0].Points())
}

// TestDecompose_SingleObjective exercises the zero-dimensional slabs of a
// one-objective front.
func TestDecompose_SingleObjective(t *testing.T) {
	slabs := bottomk.Decompose(front.Point{5}, []front.Point{{3}})
	require.Len(t, slabs, 2)
	assert.Equal(t, 3.0, slabs[0].Weight)
	assert.Equal(t, 1, slabs[0].Len())
	assert.Equal(t, 2.0, slabs[1].Weight)
	assert.Equal(t, 0, slabs[1].Len())

	c := bottomk.NewCandidate(0, front.Point{5}, []front.Point{{3}})
	ws := bottomk.NewWorkspace(2, 0)
	for !c.Certified() {
		_, err := c.ResolveNext(ws)
		require.NoError(t, err)
	}
	assert.Equal(t, 2.0, c.Value())

	assert.Empty(t, bottomk.Decompose(front.Point{3}, []front.Point{{5}}))
}

// TestDecompose_DoesNotModifyInput verifies z and rest are only read.
func TestDecompose_DoesNotModifyInput(t *testing.T) {
	rng := rand.New(rand.NewPCG(8, 8))
	f := mustFront(t, randomRows(rng, 6, 3, 2))
	before := f.Clone()

	for i := 0; i < f.Len(); i++ {
		rest := sortedRest(f, i)
		snapshot := make([]front.Point, len(rest))
		copy(snapshot, rest)

		_ = bottomk.Decompose(f.Point(i), rest)
		assert.Equal(t, snapshot, rest)
	}
	assert.Equal(t, before.Points(), f.Points())
}
