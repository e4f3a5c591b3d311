package pagination

import "math"

// Request describes a 1-indexed page of an ordered collection
type Request struct {
	Page    int
	PerPage int
}

// Offset returns the number of rows to skip for this page
func (r Request) Offset() int {
	return (r.Page - 1) * r.PerPage
}

// Limit returns the maximum number of rows for this page
func (r Request) Limit() int {
	return r.PerPage
}

// Normalize builds a Request from raw client input.
// page < 1 becomes 1; perPage <= 0 becomes defaultPerPage; perPage is capped at maxPerPage
// when maxPerPage > 0. page is capped so Offset()+PerPage cannot overflow; a capped
// page is still past the end of any real collection.
func Normalize(page, perPage, defaultPerPage, maxPerPage int) Request {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if maxPerPage > 0 && perPage > maxPerPage {
		perPage = maxPerPage
	}
	if perPage <= 0 {
		perPage = 1
	}
	if maxPage := math.MaxInt / perPage; page > maxPage {
		page = maxPage
	}
	return Request{Page: page, PerPage: perPage}
}

// Page is a bounded slice of an ordered collection plus navigation state.
// Total is the full match count, not the length of Items.
type Page[T any] struct {
	Items   []T
	Total   int
	Request Request
	HasPrev bool
	HasNext bool
}

// NewPage assembles a Page from a slice already cut at req.Offset()/req.Limit().
// Out-of-range pages are valid and simply carry no items.
func NewPage[T any](items []T, total int, req Request) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{
		Items:   items,
		Total:   total,
		Request: req,
		HasPrev: req.Page > 1,
		HasNext: req.Offset()+req.PerPage < total,
	}
}

// PrevPage returns the previous page number, or 0 when there is none
func (p *Page[T]) PrevPage() int {
	if !p.HasPrev {
		return 0
	}
	return p.Request.Page - 1
}

// NextPage returns the next page number, or 0 when there is none
func (p *Page[T]) NextPage() int {
	if !p.HasNext {
		return 0
	}
	return p.Request.Page + 1
}
