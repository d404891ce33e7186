package query

import "modcms/internal/shared/constants"

// PageFilter is a 1-based page request.
type PageFilter struct {
	Page     int
	PageSize int
}

// Normalize clamps the filter into [1, maxPageSize], substituting
// defaultPageSize for a missing size.
func (f PageFilter) Normalize(defaultPageSize, maxPageSize int) PageFilter {
	if defaultPageSize <= 0 {
		defaultPageSize = constants.DefaultPageSize
	}
	if maxPageSize <= 0 {
		maxPageSize = constants.MaxPageSize
	}
	if f.Page < 1 {
		f.Page = constants.DefaultPage
	}
	if f.PageSize < 1 {
		f.PageSize = defaultPageSize
	}
	if f.PageSize > maxPageSize {
		f.PageSize = maxPageSize
	}
	return f
}

func (f PageFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}

// TotalPages calculates total pages for a given total count.
func (f PageFilter) TotalPages(total int64) int {
	if total == 0 || f.PageSize <= 0 {
		return 1
	}
	return int((total + int64(f.PageSize) - 1) / int64(f.PageSize))
}
