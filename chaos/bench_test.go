package chaos_test

import (
	"testing"

	"github.com/katalvlaran/chaosgame/chaos"
	"github.com/katalvlaran/chaosgame/rule"
)

// BenchmarkRun_Pentagon measures the hot loop without retention overhead.
func BenchmarkRun_Pentagon(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := chaos.Run(5, 100_000, chaos.WithSeed(1), chaos.WithoutPoints()); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRun_NoAdjacentWithHistory exercises the exclusion-set path plus
// history bookkeeping.
func BenchmarkRun_NoAdjacentWithHistory(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := chaos.Run(7, 100_000,
			chaos.WithSeed(1),
			chaos.WithPreset(rule.NoAdjacent),
			chaos.WithHistoryLen(8),
			chaos.WithoutPoints(),
		)
		if err != nil {
			b.Fatal(err)
		}
	}
}
