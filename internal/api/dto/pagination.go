package dto

// Page wraps any paginated list response.
type Page[T any] struct {
	Count    int64 `json:"count"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Results  []T   `json:"results"`
}

func NewPage[T any](results []T, count int64, page, pageSize int) Page[T] {
	if results == nil {
		results = []T{}
	}
	return Page[T]{
		Count:    count,
		Page:     page,
		PageSize: pageSize,
		Results:  results,
	}
}
