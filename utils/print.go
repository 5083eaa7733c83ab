package utils

import (
	"fmt"
	"io"
)

// PrintDocument writes a single-line formatted rendering of a search
// result: id, relevance, and rating.
func PrintDocument(w io.Writer, doc Document) {
	fmt.Fprintf(w, "{ document_id = %d, relevance = %.6f, rating = %d }\n", doc.ID, doc.Relevance, doc.Rating)
}

// PrintMatchResult writes a single-line formatted rendering of a
// MatchDocument outcome: id, status, and matched words.
func PrintMatchResult(w io.Writer, documentID int, words []string, status DocumentStatus) {
	fmt.Fprintf(w, "{ document_id = %d, status = %s, words =", documentID, status)
	for _, word := range words {
		fmt.Fprintf(w, " %s", word)
	}
	fmt.Fprint(w, " }\n")
}
