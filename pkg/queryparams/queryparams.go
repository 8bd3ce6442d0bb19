// Package queryparams carries list-endpoint query parameters and pagination
// metadata.
package queryparams

import "strings"

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
	DefaultOrderBy = "asc"
)

// ListParams is parsed from the query string of list endpoints.
type ListParams struct {
	Page    int    `query:"page"`
	PerPage int    `query:"perPage"`
	SortBy  string `query:"sortBy"`
	OrderBy string `query:"orderBy"`
	Name    string `query:"name"`
	Status  string `query:"status"`
}

// Validate clamps paging values into their allowed ranges.
func (p *ListParams) Validate() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	o := strings.ToLower(p.OrderBy)
	if o != "asc" && o != "desc" {
		o = DefaultOrderBy
	}
	p.OrderBy = o
}

// CalculateOffset converts page/perPage into a row offset.
func (p ListParams) CalculateOffset() int {
	return (p.Page - 1) * p.PerPage
}

// PaginationMeta describes the page a result set came from.
type PaginationMeta struct {
	CurrentPage int   `json:"currentPage"`
	PerPage     int   `json:"perPage"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
}

// PaginatedResult wraps one page of data with its metadata.
type PaginatedResult struct {
	Data any            `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// CalculateTotalPages is ceil(total/perPage), never below 1.
func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 {
		return 1
	}
	pages := int((total + int64(perPage) - 1) / int64(perPage))
	if pages < 1 {
		pages = 1
	}
	return pages
}
