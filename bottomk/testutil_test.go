package bottomk_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/iwfg/front"
)

// sixPoints is a two-objective front whose two least contributors are
// points 0 and 4.
var sixPoints = [][]float64{
	{0.2871, 2.2881},
	{1.1197, 0.8820},
	{0.6056, 2.0164},
	{0.1974, 2.4512},
	{0.7370, 1.7071},
	{1.0760, 1.5108},
}

var sixContrib = []float64{0.02437149, 0.0385434, 0.09851205, 0.03219594, 0.02579382, 0.2131632}

// eightPoints contains two points (1 and 7) covered by point 4.
var eightPoints = [][]float64{
	{1.0915, 1.0945},
	{0.8615, 1.2125},
	{1.1357, 0.8069},
	{0.2163, 2.0744},
	{0.8615, 1.8341},
	{0.7525, 2.0353},
	{0.2000, 2.2195},
	{0.8615, 1.6057},
}

var eightContrib = []float64{0.066148, 0, 0.03566498, 0.00063733, 0.0248956, 0.10788344, 0.02902, 0}

func mustFront(t testing.TB, rows [][]float64) *front.Front {
	t.Helper()
	f, err := front.FromRows(rows)
	require.NoError(t, err)

	return f
}

// randomRows returns m points of n objectives in (0, 1]. With grid > 0 the
// values are snapped to multiples of 1/grid, which produces ties.
func randomRows(rng *rand.Rand, m, n, grid int) [][]float64 {
	rows := make([][]float64, m)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			if grid > 0 {
				rows[i][j] = float64(1+rng.IntN(grid)) / float64(grid)
			} else {
				rows[i][j] = 1 - rng.Float64()
			}
		}
	}

	return rows
}

// bruteVolume is the inclusion–exclusion hypervolume of rows.
func bruteVolume(rows [][]float64) float64 {
	var (
		m   = len(rows)
		vol float64
	)
	for mask := 1; mask < 1<<m; mask++ {
		var (
			prod = 1.0
			bits int
		)
		for j := range rows[0] {
			lo := -1.0
			for i := 0; i < m; i++ {
				if mask&(1<<i) == 0 {
					continue
				}
				if lo < 0 || rows[i][j] < lo {
					lo = rows[i][j]
				}
			}
			prod *= lo
		}
		for i := 0; i < m; i++ {
			if mask&(1<<i) != 0 {
				bits++
			}
		}
		if bits%2 == 1 {
			vol += prod
		} else {
			vol -= prod
		}
	}

	return vol
}

// bruteContributions returns every exclusive contribution by difference.
func bruteContributions(rows [][]float64) []float64 {
	total := bruteVolume(rows)
	out := make([]float64, len(rows))
	for i := range rows {
		rest := make([][]float64, 0, len(rows)-1)
		rest = append(rest, rows[:i]...)
		rest = append(rest, rows[i+1:]...)
		if len(rest) == 0 {
			out[i] = total

			continue
		}
		out[i] = max(total-bruteVolume(rest), 0)
	}

	return out
}

// sortedRest returns every point of f except i, worsening.
func sortedRest(f *front.Front, i int) []front.Point {
	rest := make([]front.Point, 0, f.Len()-1)
	for j, p := range f.Points() {
		if j != i {
			rest = append(rest, p)
		}
	}
	front.SortWorsening(rest)

	return rest
}
