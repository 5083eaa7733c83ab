package utils

import "fmt"

// parsedQuery is the result of classifying a raw query string into
// deduplicated plus-terms and minus-terms, stop words already discarded.
type parsedQuery struct {
	plusWords  []string // insertion order, deduplicated
	minusWords []string // insertion order, deduplicated
}

type queryWord struct {
	text    string
	isMinus bool
	isStop  bool
}

// parseQueryWord classifies a single raw query token.
func (e *SearchEngine) parseQueryWord(text string) (queryWord, error) {
	if text == "" {
		return queryWord{}, fmt.Errorf("%w: query word is empty", ErrInvalidArgument)
	}

	isMinus := false
	if text[0] == '-' {
		isMinus = true
		text = text[1:]
	}

	if text == "" || text[0] == '-' || !isValidWord(text) {
		return queryWord{}, fmt.Errorf("%w: query word %q is invalid", ErrInvalidArgument, text)
	}

	return queryWord{text: text, isMinus: isMinus, isStop: e.isStopWord(text)}, nil
}

// parseQuery splits a raw query on spaces and classifies each resulting
// token into plus/minus terms, dropping stop words and collapsing
// duplicates while preserving first-seen order.
func (e *SearchEngine) parseQuery(rawQuery string) (parsedQuery, error) {
	var result parsedQuery
	seenPlus := make(map[string]struct{})
	seenMinus := make(map[string]struct{})

	for _, token := range splitWords(rawQuery) {
		qw, err := e.parseQueryWord(token)
		if err != nil {
			return parsedQuery{}, err
		}
		if qw.isStop {
			continue
		}
		if qw.isMinus {
			if _, ok := seenMinus[qw.text]; !ok {
				seenMinus[qw.text] = struct{}{}
				result.minusWords = append(result.minusWords, qw.text)
			}
		} else {
			if _, ok := seenPlus[qw.text]; !ok {
				seenPlus[qw.text] = struct{}{}
				result.plusWords = append(result.plusWords, qw.text)
			}
		}
	}

	return result, nil
}
