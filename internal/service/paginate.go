package service

import "valia_backend/internal/model"

// DefaultPageSize matches the public listing grid.
const DefaultPageSize = 12

func paginate[T any](items []T, page, pageSize int) model.Page[T] {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return model.Page[T]{
		Items:    items[start:end],
		Total:    len(items),
		Page:     page,
		PageSize: pageSize,
	}
}
