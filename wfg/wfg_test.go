package wfg_test

import (
	"math"
	"math/bits"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/iwfg/front"
	"github.com/katalvlaran/iwfg/wfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsVol = 1e-12

// bruteVolume is the inclusion–exclusion formula over every non-empty subset:
// Σ (−1)^(|S|+1) Π_j min_{p∈S} p_j. Independent of the engine; m ≤ 12.
func bruteVolume(rows [][]float64) float64 {
	if len(rows) == 0 {
		return 0
	}
	var (
		m   = len(rows)
		n   = len(rows[0])
		vol float64
	)
	for mask := 1; mask < 1<<m; mask++ {
		v := 1.0
		for j := 0; j < n; j++ {
			lo := math.Inf(1)
			for i := 0; i < m; i++ {
				if mask&(1<<i) != 0 {
					lo = math.Min(lo, rows[i][j])
				}
			}
			v *= lo
		}
		if bits.OnesCount(uint(mask))%2 == 1 {
			vol += v
		} else {
			vol -= v
		}
	}

	return vol
}

// randomRows draws m points uniformly from (0,1)^n.
func randomRows(r *rand.Rand, m, n int) [][]float64 {
	rows := make([][]float64, m)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = r.Float64()
		}
	}

	return rows
}

// without returns rows minus row i.
func without(rows [][]float64, i int) [][]float64 {
	out := make([][]float64, 0, len(rows)-1)
	out = append(out, rows[:i]...)

	return append(out, rows[i+1:]...)
}

func mustFront(t *testing.T, rows [][]float64) *front.Front {
	t.Helper()
	f, err := front.FromRows(rows)
	require.NoError(t, err)

	return f
}

// TestInclusive covers the single-box volume, including zero dimensions.
func TestInclusive(t *testing.T) {
	assert.Equal(t, 6.0, wfg.Inclusive(front.Point{1, 2, 3}))
	assert.Equal(t, 0.0, wfg.Inclusive(front.Point{1, 0, 3}))
	assert.Equal(t, 1.0, wfg.Inclusive(front.Point{}))
}

// TestVolume_KnownValues checks hand-computed unions.
func TestVolume_KnownValues(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"single point", [][]float64{{2, 3}}, 6},
		{"one objective", [][]float64{{0.5}, {2}, {1}}, 2},
		{"two overlapping boxes", [][]float64{{1, 2}, {2, 1}}, 3},
		{"dominated point ignored", [][]float64{{2, 2}, {1, 1}}, 4},
		{"three objectives", [][]float64{{1, 1, 1}, {2, 0.5, 0.5}}, 1.25},
		{"duplicates", [][]float64{{1, 1, 1}, {1, 1, 1}}, 1},
	}
	e := wfg.NewEngine(4, 3)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := mustFront(t, tc.rows)
			assert.InDelta(t, tc.want, e.Volume(f), epsVol)
		})
	}
}

// TestVolume_MatchesInclusionExclusion cross-checks random fronts in 1..5
// objectives against the brute-force formula.
func TestVolume_MatchesInclusionExclusion(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	e := &wfg.Engine{}
	for n := 1; n <= 5; n++ {
		for m := 1; m <= 8; m++ {
			for rep := 0; rep < 3; rep++ {
				rows := randomRows(r, m, n)
				f := mustFront(t, rows)
				assert.InDelta(t, bruteVolume(rows), e.Volume(f), 1e-10, "n=%d m=%d rep=%d", n, m, rep)
			}
		}
	}
}

// TestExclusive_MatchesDifference checks Exclusive(f, i) against
// V(front) − V(front without i) for every point.
func TestExclusive_MatchesDifference(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	e := wfg.NewEngine(8, 4)
	for n := 2; n <= 4; n++ {
		rows := randomRows(r, 7, n)
		f := mustFront(t, rows)
		total := bruteVolume(rows)
		for i := range rows {
			want := total - bruteVolume(without(rows, i))
			assert.InDelta(t, want, e.Exclusive(f, i), 1e-10, "n=%d i=%d", n, i)
		}
	}
}

// TestExclusive_DuplicatesAndDominated verifies that a duplicated or dominated
// point owns no volume, and that the dominating point's share is reduced by
// the weakly dominated one it overlaps.
func TestExclusive_DuplicatesAndDominated(t *testing.T) {
	e := &wfg.Engine{}

	f := mustFront(t, [][]float64{{1, 2, 3}, {1, 2, 3}, {0.5, 0.5, 0.5}})
	assert.Equal(t, 0.0, e.Exclusive(f, 0))
	assert.Equal(t, 0.0, e.Exclusive(f, 1))
	assert.Equal(t, 0.0, e.Exclusive(f, 2))

	g := mustFront(t, [][]float64{{2, 2}, {2, 1}})
	assert.InDelta(t, 2.0, e.Exclusive(g, 0), epsVol)
	assert.Equal(t, 0.0, e.Exclusive(g, 1))
}

// TestExclusive_LeavesFrontUnchanged ensures the point order is preserved.
func TestExclusive_LeavesFrontUnchanged(t *testing.T) {
	rows := [][]float64{{0.1, 0.9, 0.3}, {0.8, 0.2, 0.5}, {0.4, 0.4, 0.9}}
	f := mustFront(t, rows)
	e := &wfg.Engine{}
	for i := range rows {
		_ = e.Exclusive(f, i)
	}
	for i, row := range rows {
		assert.Equal(t, front.Point(row), f.Point(i))
	}
}

// TestEngine_ReuseAcrossShapes feeds one engine fronts of growing and
// shrinking shapes and compares with a fresh engine each time.
func TestEngine_ReuseAcrossShapes(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	shared := wfg.NewEngine(2, 2)
	shapes := [][2]int{{3, 3}, {9, 4}, {2, 2}, {6, 5}, {1, 3}}
	for _, sh := range shapes {
		rows := randomRows(r, sh[0], sh[1])
		a := mustFront(t, rows)
		b := mustFront(t, rows)
		assert.InDelta(t, (&wfg.Engine{}).Volume(a), shared.Volume(b), epsVol)
	}
}
