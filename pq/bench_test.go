package pq_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/iwfg/pq"
)

func benchmarkPushPop(b *testing.B, m int) {
	rng := rand.New(rand.NewPCG(1, 2))
	keys := make([]float64, m)
	for i := range keys {
		keys[i] = rng.Float64()
	}
	b.ReportAllocs()
	b.ResetTimer()
	for it := 0; it < b.N; it++ {
		q := pq.New(m)
		for i, k := range keys {
			_ = q.Push(i, k)
		}
		for q.Len() > 0 {
			id, k, _ := q.Peek()
			if id%2 == 0 && k < 1 {
				_ = q.IncreaseKey(id, k+1)
				continue
			}
			q.Pop()
		}
	}
}

func BenchmarkQueue_100(b *testing.B)   { benchmarkPushPop(b, 100) }
func BenchmarkQueue_10000(b *testing.B) { benchmarkPushPop(b, 10000) }
