package utils

import "strings"

// splitWords partitions text on single ASCII space characters (0x20).
// Unlike strings.Fields, runs of spaces and leading/trailing spaces produce
// empty elements rather than being collapsed — callers that don't want
// empty words (ParseQuery) reject them explicitly.
func splitWords(text string) []string {
	return strings.Split(text, " ")
}

// isValidWord reports whether word contains no control byte (< 0x20).
func isValidWord(word string) bool {
	for i := 0; i < len(word); i++ {
		if word[i] < 0x20 {
			return false
		}
	}
	return true
}
