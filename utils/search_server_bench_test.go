package utils

import (
	"fmt"
	"testing"
)

func buildBenchEngine(n int) *SearchEngine {
	e, _ := NewSearchEngineFromText("and with")
	texts := []string{
		"funny pet and nasty rat",
		"funny pet with curly hair",
		"funny pet and not very nasty rat",
		"pet with rat and rat and rat",
		"nasty rat with curly hair",
	}
	for i := 0; i < n; i++ {
		_ = e.AddDocument(i, fmt.Sprintf("%s extra%d", texts[i%len(texts)], i%37), StatusActual, []int{i % 5})
	}
	return e
}

func BenchmarkFindTopDocuments(b *testing.B) {
	e := buildBenchEngine(2000)

	b.Run("Sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = e.FindTopDocuments("funny nasty rat curly", nil, Sequential)
		}
	})

	b.Run("Parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = e.FindTopDocuments("funny nasty rat curly", nil, Parallel)
		}
	})
}

func BenchmarkRemoveDocument(b *testing.B) {
	b.Run("Sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			e := buildBenchEngine(500)
			b.StartTimer()
			e.RemoveDocument(10, Sequential)
		}
	})

	b.Run("Parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			e := buildBenchEngine(500)
			b.StartTimer()
			e.RemoveDocument(10, Parallel)
		}
	})
}
