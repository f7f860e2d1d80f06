package benchmark_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/hupe1980/bitset"
	"github.com/hupe1980/bitset/binding"
	"github.com/hupe1980/bitset/interop"
	"github.com/hupe1980/bitset/testutil"
)

const universe = 1 << 18

var densities = []float64{0.001, 0.05, 0.5}

func pair(density float64) (*bitset.Bitset, *bitset.Bitset) {
	rng := testutil.NewRNG(1)
	return rng.Bitset(universe, density), rng.Bitset(universe, density)
}

func BenchmarkIntersectionCount(b *testing.B) {
	for _, d := range densities {
		x, y := pair(d)

		b.Run(fmt.Sprintf("bitset/d=%g", d), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = x.Intersection(y).Count()
			}
		})

		rx, err := interop.ToRoaring(x)
		if err != nil {
			b.Fatal(err)
		}
		ry, err := interop.ToRoaring(y)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("roaring/d=%g", d), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = rx.AndCardinality(ry)
			}
		})

		bx, by := interop.ToBitSet(x), interop.ToBitSet(y)
		b.Run(fmt.Sprintf("bits-and-blooms/d=%g", d), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = bx.IntersectionCardinality(by)
			}
		})
	}
}

func BenchmarkInPlaceUnion(b *testing.B) {
	for _, d := range densities {
		x, y := pair(d)
		b.Run(fmt.Sprintf("d=%g", d), func(b *testing.B) {
			acc := x.Clone()
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				acc.InPlaceUnion(y)
			}
		})
	}
}

func BenchmarkSetGrowth(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		bs := bitset.New()
		for j := 0; j < universe; j += 7 {
			_ = bs.Set(j)
		}
	}
}

func BenchmarkRegistryCall(b *testing.B) {
	ctx := context.Background()
	x, y := pair(0.05)

	for _, mc := range []struct {
		name string
		c    binding.MetricsCollector
	}{
		{"noop", nil},
		{"basic", &binding.BasicMetricsCollector{}},
	} {
		reg := binding.New(binding.WithMetricsCollector(mc.c))
		b.Run(mc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := reg.Call(ctx, "subset", x, y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkRegistryCallParallel(b *testing.B) {
	ctx := context.Background()
	x, y := pair(0.05)
	reg := binding.New(binding.WithMetricsCollector(&binding.BasicMetricsCollector{}))

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			// Read-only operations share operands safely.
			if _, err := reg.Call(ctx, "equals", x, y); err != nil {
				b.Error(err)
				return
			}
		}
	})
}
