package domain

// Paged is the response envelope for offset-paginated listings. It is
// never persisted.
type Paged[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// NewPaged assembles a page envelope. TotalPages is ceil(total/pageSize),
// or 0 when nothing matched.
func NewPaged[T any](items []T, total int64, page, pageSize int) *Paged[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return &Paged[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// PageFilter holds the optional predicates for listing entity pages. Zero
// values mean "not set"; Name and Industry match case-insensitively as
// substrings, the follower bounds are inclusive.
type PageFilter struct {
	Name             string
	Industry         string
	FollowerCountMin *int
	FollowerCountMax *int
}
