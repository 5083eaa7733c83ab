package utils

import "container/list"

// requestWindowSize is the fixed number of most-recent queries tracked by
// RequestWindow (one simulated day, one query per simulated minute).
const requestWindowSize = 1440

type requestWindowSlot struct {
	empty bool
}

// RequestWindow is a fixed-length sliding window over the most recent
// requestWindowSize queries issued through AddFindRequest, reporting how
// many of them returned no results.
type RequestWindow struct {
	engine            *SearchEngine
	slots             *list.List // of *requestWindowSlot, oldest at Front
	emptyResultsCount int
}

// NewRequestWindow wraps engine with a RequestWindow over the given
// SearchEngine.
func NewRequestWindow(engine *SearchEngine) *RequestWindow {
	return &RequestWindow{
		engine: engine,
		slots:  list.New(),
	}
}

// AddFindRequest delegates to engine.FindTopDocuments(rawQuery, selector),
// records whether the result was empty, evicting the oldest slot once the
// window is full, and returns the engine's result unchanged.
func (w *RequestWindow) AddFindRequest(rawQuery string, selector Selector) ([]Document, error) {
	results, err := w.engine.FindTopDocuments(rawQuery, selector)
	if err != nil {
		return nil, err
	}

	if w.slots.Len() >= requestWindowSize {
		front := w.slots.Front()
		if front.Value.(*requestWindowSlot).empty {
			w.emptyResultsCount--
		}
		w.slots.Remove(front)
	}

	slot := &requestWindowSlot{empty: len(results) == 0}
	w.slots.PushBack(slot)
	if slot.empty {
		w.emptyResultsCount++
	}

	return results, nil
}

// GetNoResultRequests returns the current count of empty-result slots in
// the window.
func (w *RequestWindow) GetNoResultRequests() int {
	return w.emptyResultsCount
}
