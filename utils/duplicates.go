package utils

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// termSetKey canonicalizes a document's distinct indexed terms into a
// single comparable string, independent of iteration order.
func termSetKey(wordFreqs map[string]float64) string {
	terms := make([]string, 0, len(wordFreqs))
	for term := range wordFreqs {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return strings.Join(terms, "\x00")
}

// RemoveDuplicates scans engine's documents in insertion order and removes
// every document whose set of distinct indexed terms equals that of an
// earlier-added document, writing "Found duplicate document id <id>" to w
// for each one removed.
func RemoveDuplicates(engine *SearchEngine, w io.Writer) {
	seen := make(map[string]struct{})
	var duplicateIDs []int

	for _, id := range engine.DocumentIDs() {
		key := termSetKey(engine.GetWordFrequencies(id))
		if _, ok := seen[key]; ok {
			duplicateIDs = append(duplicateIDs, id)
			continue
		}
		seen[key] = struct{}{}
	}

	for _, id := range duplicateIDs {
		fmt.Fprintf(w, "Found duplicate document id %d\n", id)
		engine.RemoveDocument(id)
	}
}
