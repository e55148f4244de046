package utils

import "github.com/AlenaMolokova/checks/internal/constants"

type Page[T any] struct {
	Items []T   `json:"items"`
	Total int   `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
}

// Paginate slices an already materialized collection. Page numbers start at 1,
// out-of-range pages return an empty item list with the real total.
func Paginate[T any](items []T, page, size int) Page[T] {
	if page < 1 {
		page = constants.DefaultPage
	}
	if size < 1 {
		size = constants.DefaultPageSize
	}

	start := (page - 1) * size
	end := start + size
	total := len(items)

	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Items: items[start:end],
		Total: total,
		Page:  page,
		Size:  size,
	}
}
