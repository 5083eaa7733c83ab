package utils

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

const (
	// maxResultDocumentCount truncates FindTopDocuments results.
	maxResultDocumentCount = 5
	// relevanceEpsilon is the tie-break threshold for equal relevance.
	relevanceEpsilon = 1e-6
)

// Policy selects sequential or parallel execution for an operation.
type Policy int

const (
	Sequential Policy = iota
	Parallel
)

func resolvePolicy(policy []Policy) Policy {
	if len(policy) > 0 {
		return policy[0]
	}
	return Sequential
}

// Selector decides whether a document, given its id/status/rating, belongs
// in a FindTopDocuments/MatchDocument result set.
type Selector func(id int, status DocumentStatus, rating int) bool

// ByStatus returns a Selector matching documents with the given status.
func ByStatus(status DocumentStatus) Selector {
	return func(_ int, docStatus DocumentStatus, _ int) bool {
		return docStatus == status
	}
}

// ActualOnly is the default selector: only DocumentStatus == StatusActual.
func ActualOnly() Selector {
	return ByStatus(StatusActual)
}

// DocumentInfo is the stored record for a document, as returned by
// GetDocumentByID.
type DocumentInfo struct {
	ID            int
	AverageRating int
	Status        DocumentStatus
	Text          string
}

// SearchEngine owns the inverted index, forward index, document table and
// stop-word set, and exposes sequential and parallel retrieval operations.
// A SearchEngine is safe for concurrent read-only operations
// (FindTopDocuments, MatchDocument, GetDocumentCount, GetWordFrequencies,
// DocumentIDs); mutating operations (AddDocument, RemoveDocument) must not
// run concurrently with any other operation on the same engine — the
// engine does not enforce this itself, callers own the discipline.
type SearchEngine struct {
	stopWords map[string]struct{}
	termPool  map[string]string

	inverted  map[string]map[int]float64 // term -> docID -> tf
	forward   map[int]map[string]float64 // docID -> term -> tf
	documents map[int]*documentRecord
	docIDList []int // insertion order of live ids
}

func newSearchEngine() *SearchEngine {
	return &SearchEngine{
		stopWords: make(map[string]struct{}),
		termPool:  make(map[string]string),
		inverted:  make(map[string]map[int]float64),
		forward:   make(map[int]map[string]float64),
		documents: make(map[int]*documentRecord),
	}
}

// NewSearchEngine constructs an engine whose stop words are the given,
// already-split terms. Empty strings are discarded; the rest are
// deduplicated. Fails with ErrInvalidArgument if any stop word contains a
// byte < 0x20.
func NewSearchEngine(stopWords ...string) (*SearchEngine, error) {
	e := newSearchEngine()
	for _, w := range stopWords {
		if w == "" {
			continue
		}
		if !isValidWord(w) {
			return nil, fmt.Errorf("%w: stop word %q is invalid", ErrInvalidArgument, w)
		}
		e.stopWords[w] = struct{}{}
	}
	return e, nil
}

// NewSearchEngineFromText constructs an engine whose stop words are parsed
// from a single space-separated string.
func NewSearchEngineFromText(stopWordsText string) (*SearchEngine, error) {
	var words []string
	for _, w := range splitWords(stopWordsText) {
		if w != "" {
			words = append(words, w)
		}
	}
	return NewSearchEngine(words...)
}

func (e *SearchEngine) isStopWord(word string) bool {
	_, ok := e.stopWords[word]
	return ok
}

// intern returns the pool's owned copy of term, inserting it on first use.
// The pool is never shrunk, giving stable backing storage for the lifetime
// of the engine even across document removals.
func (e *SearchEngine) intern(term string) string {
	if s, ok := e.termPool[term]; ok {
		return s
	}
	e.termPool[term] = term
	return term
}

// AddDocument tokenizes text, strips stop words, and indexes the
// remaining terms against id. Fails with ErrInvalidArgument if id < 0, id
// is already present, text contains a control byte, or text has no
// indexable (non-stop) terms.
func (e *SearchEngine) AddDocument(id int, text string, status DocumentStatus, ratings []int) error {
	if id < 0 {
		return fmt.Errorf("%w: document id %d must be >= 0", ErrInvalidArgument, id)
	}
	if _, exists := e.documents[id]; exists {
		return fmt.Errorf("%w: document id %d already exists", ErrInvalidArgument, id)
	}
	if !isValidWord(text) {
		return fmt.Errorf("%w: document %d text contains a control byte", ErrInvalidArgument, id)
	}

	var terms []string
	for _, tok := range splitWords(text) {
		if tok == "" || e.isStopWord(tok) {
			continue
		}
		terms = append(terms, tok)
	}
	if len(terms) == 0 {
		return fmt.Errorf("%w: document %d has no indexable terms", ErrInvalidArgument, id)
	}

	inv := 1.0 / float64(len(terms))
	forwardRow := make(map[string]float64, len(terms))
	for _, term := range terms {
		interned := e.intern(term)
		posting := e.inverted[interned]
		if posting == nil {
			posting = make(map[int]float64)
			e.inverted[interned] = posting
		}
		posting[id] += inv
		forwardRow[interned] += inv
	}

	e.forward[id] = forwardRow
	e.documents[id] = &documentRecord{
		averageRating: computeAverageRating(ratings),
		status:        status,
		text:          text,
	}
	e.docIDList = append(e.docIDList, id)
	return nil
}

// FindTopDocuments parses rawQuery, scores matching documents under
// selector (ActualOnly() if nil), and returns at most
// maxResultDocumentCount results sorted by descending relevance, then
// descending rating, then ascending id.
func (e *SearchEngine) FindTopDocuments(rawQuery string, selector Selector, policy ...Policy) ([]Document, error) {
	if selector == nil {
		selector = ActualOnly()
	}

	query, err := e.parseQuery(rawQuery)
	if err != nil {
		return nil, err
	}

	var scores map[int]float64
	if resolvePolicy(policy) == Parallel {
		scores = e.findAllDocumentsParallel(query, selector)
	} else {
		scores = e.findAllDocumentsSequential(query, selector)
	}

	results := make([]Document, 0, len(scores))
	for docID, relevance := range scores {
		rec := e.documents[docID]
		results = append(results, Document{ID: docID, Relevance: relevance, Rating: rec.averageRating})
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if math.Abs(a.Relevance-b.Relevance) >= relevanceEpsilon {
			return a.Relevance > b.Relevance
		}
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		return a.ID < b.ID
	})

	if len(results) > maxResultDocumentCount {
		results = results[:maxResultDocumentCount]
	}
	return results, nil
}

func (e *SearchEngine) findAllDocumentsSequential(query parsedQuery, selector Selector) map[int]float64 {
	scores := make(map[int]float64)
	docCount := len(e.docIDList)

	for _, term := range query.plusWords {
		posting, ok := e.inverted[term]
		if !ok {
			continue
		}
		idf := math.Log(float64(docCount) / float64(len(posting)))
		for docID, tf := range posting {
			rec := e.documents[docID]
			if selector(docID, rec.status, rec.averageRating) {
				scores[docID] += tf * idf
			}
		}
	}

	e.applyMinusWords(query, scores)
	return scores
}

func (e *SearchEngine) findAllDocumentsParallel(query parsedQuery, selector Selector) map[int]float64 {
	docCount := len(e.docIDList)
	accumulator, _ := NewShardedMap(defaultShardCount) // defaultShardCount is a positive constant

	var g errgroup.Group
	for _, term := range query.plusWords {
		term := term
		g.Go(func() error {
			posting, ok := e.inverted[term]
			if !ok {
				return nil
			}
			idf := math.Log(float64(docCount) / float64(len(posting)))
			for docID, tf := range posting {
				rec := e.documents[docID]
				if selector(docID, rec.status, rec.averageRating) {
					guard := accumulator.Acquire(docID)
					guard.Add(tf * idf)
					guard.Release()
				}
			}
			return nil
		})
	}
	_ = g.Wait() // scoring never errors; Wait() always returns nil here

	scores := accumulator.Drain()
	e.applyMinusWords(query, scores)
	return scores
}

// applyMinusWords erases every document id reachable through a minus-term
// from scores, in place.
func (e *SearchEngine) applyMinusWords(query parsedQuery, scores map[int]float64) {
	for _, term := range query.minusWords {
		posting, ok := e.inverted[term]
		if !ok {
			continue
		}
		for docID := range posting {
			delete(scores, docID)
		}
	}
}

// MatchDocument parses rawQuery and reports, for the document id, which
// plus-terms occur in it (nil if any minus-term does), along with its
// status. Fails with ErrNotFound if id is unknown.
func (e *SearchEngine) MatchDocument(rawQuery string, id int, policy ...Policy) ([]string, DocumentStatus, error) {
	rec, ok := e.documents[id]
	if !ok {
		return nil, 0, fmt.Errorf("%w: document id %d", ErrNotFound, id)
	}

	query, err := e.parseQuery(rawQuery)
	if err != nil {
		return nil, 0, err
	}

	forwardRow := e.forward[id]
	for _, term := range query.minusWords {
		if _, present := forwardRow[term]; present {
			return nil, rec.status, nil
		}
	}

	if resolvePolicy(policy) == Parallel {
		return e.matchPlusWordsParallel(query.plusWords, forwardRow), rec.status, nil
	}

	var matched []string
	for _, term := range query.plusWords {
		if _, present := forwardRow[term]; present {
			matched = append(matched, term)
		}
	}
	return matched, rec.status, nil
}

// matchPlusWordsParallel checks plus-term membership concurrently. The
// reference's parallel path has no ordering guarantee, so the result is
// sorted lexicographically to stay deterministic across runs.
func (e *SearchEngine) matchPlusWordsParallel(plusWords []string, forwardRow map[string]float64) []string {
	var mu sync.Mutex
	var matched []string
	var wg sync.WaitGroup

	for _, term := range plusWords {
		term := term
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, present := forwardRow[term]; present {
				mu.Lock()
				matched = append(matched, term)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	sort.Strings(matched)
	return matched
}

// RemoveDocument removes id from the document-id list, document table,
// forward index, and every inverted-index posting list, purging any
// posting list that becomes empty. A no-op if id is not present.
func (e *SearchEngine) RemoveDocument(id int, policy ...Policy) {
	idx := -1
	for i, docID := range e.docIDList {
		if docID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}

	e.docIDList = append(e.docIDList[:idx], e.docIDList[idx+1:]...)
	delete(e.documents, id)
	delete(e.forward, id)

	if resolvePolicy(policy) == Parallel {
		e.removeFromInvertedParallel(id)
	} else {
		e.removeFromInvertedSequential(id)
	}
}

func (e *SearchEngine) removeFromInvertedSequential(id int) {
	var emptied []string
	for term, posting := range e.inverted {
		delete(posting, id)
		if len(posting) == 0 {
			emptied = append(emptied, term)
		}
	}
	for _, term := range emptied {
		delete(e.inverted, term)
	}
}

func (e *SearchEngine) removeFromInvertedParallel(id int) {
	terms := make([]string, 0, len(e.inverted))
	for term := range e.inverted {
		terms = append(terms, term)
	}

	var mu sync.Mutex
	var emptied []string
	var g errgroup.Group
	for _, term := range terms {
		term := term
		g.Go(func() error {
			posting := e.inverted[term]
			delete(posting, id)
			if len(posting) == 0 {
				mu.Lock()
				emptied = append(emptied, term)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	for _, term := range emptied {
		delete(e.inverted, term)
	}
}

// GetDocumentCount returns the number of live documents.
func (e *SearchEngine) GetDocumentCount() int {
	return len(e.docIDList)
}

// GetDocumentByID returns the stored record for id, or ErrNotFound.
func (e *SearchEngine) GetDocumentByID(id int) (DocumentInfo, error) {
	rec, ok := e.documents[id]
	if !ok {
		return DocumentInfo{}, fmt.Errorf("%w: document id %d", ErrNotFound, id)
	}
	return DocumentInfo{
		ID:            id,
		AverageRating: rec.averageRating,
		Status:        rec.status,
		Text:          rec.text,
	}, nil
}

// GetWordFrequencies returns a copy of the forward-index row for id, or an
// empty map if id is unknown.
func (e *SearchEngine) GetWordFrequencies(id int) map[string]float64 {
	row, ok := e.forward[id]
	if !ok {
		return map[string]float64{}
	}
	out := make(map[string]float64, len(row))
	for term, tf := range row {
		out[term] = tf
	}
	return out
}

// DocumentIDs returns the ids of all live documents in insertion order.
func (e *SearchEngine) DocumentIDs() []int {
	out := make([]int, len(e.docIDList))
	copy(out, e.docIDList)
	return out
}
