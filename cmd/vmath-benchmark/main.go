// Micro-benchmarks for the hot Vec2i paths: distance comparison with and
// without sqrt, and Vec2i-keyed map access against a packed-key map.
// Run directly; results print per benchmark.
package main

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/lixenwraith/gridmath/vmath"
)

const sampleCount = 10000

var (
	samplePoints []vmath.Vec2i
	sampleTarget = vmath.V2i(64, -32)
)

func init() {
	rng := rand.New(rand.NewSource(1))
	samplePoints = make([]vmath.Vec2i, sampleCount)
	for i := range samplePoints {
		samplePoints[i] = vmath.V2i(
			int32(rng.Intn(241)-120),
			int32(rng.Intn(81)-40),
		)
	}
}

// === DISTANCE: sqrt vs squared comparison ===

// radiusCheckFloat is the naive in-range test with a sqrt per point
func radiusCheckFloat(p vmath.Vec2i, radius float64) bool {
	return p.DistanceTo(sampleTarget) <= radius
}

// radiusCheckSquared compares in integer space, no sqrt
func radiusCheckSquared(p vmath.Vec2i, radiusSq int64) bool {
	return p.DistanceSquaredTo(sampleTarget) <= radiusSq
}

func BenchmarkDistanceTo(b *testing.B) {
	var sink bool
	for i := 0; i < b.N; i++ {
		sink = radiusCheckFloat(samplePoints[i%sampleCount], 30)
	}
	_ = sink
}

func BenchmarkDistanceSquaredTo(b *testing.B) {
	var sink bool
	for i := 0; i < b.N; i++ {
		sink = radiusCheckSquared(samplePoints[i%sampleCount], 900)
	}
	_ = sink
}

// === MAP KEYS: struct key vs packed uint64 key ===

func BenchmarkMapStructKey(b *testing.B) {
	m := make(map[vmath.Vec2i]int, sampleCount)
	for i, p := range samplePoints {
		m[p] = i
	}
	b.ResetTimer()
	var sink int
	for i := 0; i < b.N; i++ {
		sink = m[samplePoints[i%sampleCount]]
	}
	_ = sink
}

func BenchmarkMapPackedKey(b *testing.B) {
	m := make(map[uint64]int, sampleCount)
	for i, p := range samplePoints {
		m[p.Hash()] = i
	}
	b.ResetTimer()
	var sink int
	for i := 0; i < b.N; i++ {
		sink = m[samplePoints[i%sampleCount].Hash()]
	}
	_ = sink
}

func main() {
	benchmarks := []struct {
		name string
		fn   func(*testing.B)
	}{
		{"DistanceTo (sqrt)", BenchmarkDistanceTo},
		{"DistanceSquaredTo", BenchmarkDistanceSquaredTo},
		{"Map Vec2i key", BenchmarkMapStructKey},
		{"Map packed uint64 key", BenchmarkMapPackedKey},
	}

	fmt.Printf("%-25s %15s %12s\n", "Benchmark", "ns/op", "iterations")
	for _, bm := range benchmarks {
		r := testing.Benchmark(bm.fn)
		fmt.Printf("%-25s %15.2f %12d\n", bm.name, float64(r.T.Nanoseconds())/float64(r.N), r.N)
	}
}
