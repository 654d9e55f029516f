package poker

import (
	rand "math/rand/v2"
	"testing"
)

func benchmarkHands(n int) []Hand {
	rng := rand.New(rand.NewPCG(1, 2))
	hands := make([]Hand, 1024)
	for i := range hands {
		for _, c := range rng.Perm(NumberOfCards)[:n] {
			hands[i].AddCard(Card(c))
		}
	}
	return hands
}

func BenchmarkEvaluate7(b *testing.B) {
	hands := benchmarkHands(7)
	b.ResetTimer()
	var sink HandValue
	for i := 0; i < b.N; i++ {
		sink += EvaluateUnchecked(hands[i&1023], 7)
	}
	_ = sink
}

func BenchmarkEvaluateType7(b *testing.B) {
	hands := benchmarkHands(7)
	b.ResetTimer()
	var sink HandType
	for i := 0; i < b.N; i++ {
		sink ^= EvaluateTypeUnchecked(hands[i&1023], 7)
	}
	_ = sink
}

func BenchmarkEvaluate5(b *testing.B) {
	hands := benchmarkHands(5)
	b.ResetTimer()
	var sink HandValue
	for i := 0; i < b.N; i++ {
		sink += EvaluateUnchecked(hands[i&1023], 5)
	}
	_ = sink
}
