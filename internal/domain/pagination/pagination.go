package pagination

// PaginatedResult wraps a page of items with the totals the transport echoes.
type PaginatedResult[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// NewPaginatedResult builds a PaginatedResult.
func NewPaginatedResult[T any](items []T, total int64, page, limit int) PaginatedResult[T] {
	return PaginatedResult[T]{Items: items, Total: total, Page: page, Limit: limit}
}

// PageFromOffset converts a zero-based item offset into a zero-based page
// index. Callers must supply size >= 1; the HTTP layer rejects anything else
// before it reaches here.
func PageFromOffset(from, size int) int {
	if from > 0 {
		return from / size
	}
	return 0
}
