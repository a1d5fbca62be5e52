// Package paging slices in-memory listings into pages and describes the
// result for clients.
package paging

import (
	"net/http"

	"go-sportstore/internal/pkg/apperror"
	"go-sportstore/internal/pkg/response"
)

var (
	ErrInvalidPageSize = apperror.New(
		apperror.CodeInvalidInput,
		"Items per page must be positive",
		http.StatusBadRequest,
	)

	ErrInvalidPage = apperror.New(
		apperror.CodeInvalidInput,
		"Page must be 1 or greater",
		http.StatusBadRequest,
	)
)

// Info describes one page of a listing. TotalItems counts the listing after
// filtering, not the whole catalog.
type Info struct {
	CurrentPage  int `json:"currentPage"`
	ItemsPerPage int `json:"itemsPerPage"`
	TotalItems   int `json:"totalItems"`
}

func (i Info) TotalPages() int {
	if i.ItemsPerPage <= 0 || i.TotalItems <= 0 {
		return 0
	}
	return (i.TotalItems-1)/i.ItemsPerPage + 1
}

func (i Info) HasNextPage() bool {
	return i.CurrentPage < i.TotalPages()
}

func (i Info) HasPreviousPage() bool {
	return i.CurrentPage > 1
}

// Meta converts Info into the envelope's pagination block.
func (i Info) Meta() *response.PaginationMeta {
	return &response.PaginationMeta{
		Page:            i.CurrentPage,
		PageSize:        i.ItemsPerPage,
		Total:           int64(i.TotalItems),
		TotalPages:      i.TotalPages(),
		HasNextPage:     i.HasNextPage(),
		HasPreviousPage: i.HasPreviousPage(),
	}
}

// ValidateSize reports ErrInvalidPageSize for a non-positive page size.
func ValidateSize(itemsPerPage int) error {
	if itemsPerPage <= 0 {
		return ErrInvalidPageSize
	}
	return nil
}

// Paginate returns items[(page-1)*size : page*size] clipped to the slice
// bounds. A page past the end yields an empty, non-nil slice.
func Paginate[T any](items []T, currentPage, itemsPerPage int) ([]T, Info, error) {
	if err := ValidateSize(itemsPerPage); err != nil {
		return nil, Info{}, err
	}
	if currentPage < 1 {
		return nil, Info{}, ErrInvalidPage
	}

	info := Info{
		CurrentPage:  currentPage,
		ItemsPerPage: itemsPerPage,
		TotalItems:   len(items),
	}

	// compare in pages first so the offset below cannot overflow
	if currentPage > info.TotalPages() {
		return []T{}, info, nil
	}
	start := (currentPage - 1) * itemsPerPage
	end := start + min(itemsPerPage, len(items)-start)

	page := make([]T, end-start)
	copy(page, items[start:end])
	return page, info, nil
}
