package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		page    int
		perPage int
		want    Request
	}{
		{name: "defaults", page: 0, perPage: 0, want: Request{Page: 1, PerPage: 20}},
		{name: "negative page", page: -3, perPage: 5, want: Request{Page: 1, PerPage: 5}},
		{name: "capped", page: 2, perPage: 500, want: Request{Page: 2, PerPage: 100}},
		{name: "as given", page: 4, perPage: 10, want: Request{Page: 4, PerPage: 10}},
		{name: "huge page", page: math.MaxInt / 10, perPage: 20, want: Request{Page: math.MaxInt / 20, PerPage: 20}},
		{name: "max int page", page: math.MaxInt, perPage: 1, want: Request{Page: math.MaxInt, PerPage: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.page, tt.perPage, 20, 100))
		})
	}
}

func TestRequest_Offset(t *testing.T) {
	assert.Equal(t, 0, Request{Page: 1, PerPage: 10}.Offset())
	assert.Equal(t, 10, Request{Page: 2, PerPage: 10}.Offset())
	assert.Equal(t, 140, Request{Page: 8, PerPage: 20}.Offset())
}

func TestNewPage_HasNextMatchesTotal(t *testing.T) {
	for total := 0; total <= 60; total++ {
		for perPage := 1; perPage <= 12; perPage++ {
			for page := 1; page <= 8; page++ {
				req := Request{Page: page, PerPage: perPage}
				p := NewPage([]int{}, total, req)
				assert.Equal(t, page*perPage < total, p.HasNext,
					"total=%d perPage=%d page=%d", total, perPage, page)
				assert.Equal(t, page > 1, p.HasPrev)
				assert.Equal(t, total, p.Total)
			}
		}
	}
}

func TestNormalize_HugePageIsAnEmptyTrailingPage(t *testing.T) {
	for _, page := range []int{math.MaxInt / 10, math.MaxInt / 20, math.MaxInt - 1, math.MaxInt} {
		req := Normalize(page, 20, 20, 100)

		assert.GreaterOrEqual(t, req.Offset(), 0, "page=%d", page)
		p := NewPage([]int{}, 25, req)
		assert.True(t, p.HasPrev)
		assert.False(t, p.HasNext, "page=%d", page)
		assert.Equal(t, 0, p.NextPage())
	}
}

func TestNewPage_MiddlePage(t *testing.T) {
	p := NewPage([]int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}, 25, Request{Page: 2, PerPage: 10})

	require.Len(t, p.Items, 10)
	assert.Equal(t, 25, p.Total)
	assert.True(t, p.HasPrev)
	assert.True(t, p.HasNext)
	assert.Equal(t, 1, p.PrevPage())
	assert.Equal(t, 3, p.NextPage())
}

func TestNewPage_BeyondLastPage(t *testing.T) {
	p := NewPage[string](nil, 3, Request{Page: 5, PerPage: 2})

	assert.Empty(t, p.Items)
	assert.NotNil(t, p.Items)
	assert.Equal(t, 3, p.Total)
	assert.True(t, p.HasPrev)
	assert.False(t, p.HasNext)
	assert.Equal(t, 0, p.NextPage())
}

func TestNewPage_LastPartialPage(t *testing.T) {
	p := NewPage([]int{5}, 5, Request{Page: 3, PerPage: 2})

	assert.Equal(t, []int{5}, p.Items)
	assert.False(t, p.HasNext)
	assert.Equal(t, 2, p.PrevPage())
}
