package utils

// Page is one page of a paginated sequence.
type Page[T any] struct {
	items []T
}

// Items returns the elements on this page.
func (p Page[T]) Items() []T {
	return p.items
}

// Len returns the number of elements on this page.
func (p Page[T]) Len() int {
	return len(p.items)
}

// Paginate splits sequence into consecutive pages of at most pageSize
// elements each (the final page may be shorter). pageSize <= 0 yields a
// single page containing the whole sequence.
func Paginate[T any](sequence []T, pageSize int) []Page[T] {
	if pageSize <= 0 {
		return []Page[T]{{items: sequence}}
	}

	var pages []Page[T]
	for start := 0; start < len(sequence); start += pageSize {
		end := start + pageSize
		if end > len(sequence) {
			end = len(sequence)
		}
		pages = append(pages, Page[T]{items: sequence[start:end]})
	}
	return pages
}
