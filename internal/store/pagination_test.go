package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationParams_Normalization(t *testing.T) {
	cases := []struct {
		name        string
		page, limit string
		wantPage    int
		wantLimit   int
	}{
		{"defaults", "", "", 1, 10},
		{"valores válidos", "3", "25", 3, 25},
		{"no numérico", "abc", "xyz", 1, 10},
		{"page cero", "0", "10", 1, 10},
		{"page negativa", "-5", "10", 1, 10},
		{"limit cero", "1", "0", 1, 1},
		{"limit negativo", "1", "-20", 1, 1},
		{"limit sobre el tope", "1", "500", 1, 100},
		{"limit en el tope", "1", "100", 1, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := PaginationParams(tc.page, tc.limit)

			assert.Equal(t, tc.wantPage, p.Page)
			assert.Equal(t, tc.wantLimit, p.Limit)
			assert.Equal(t, (p.Page-1)*p.Limit, p.Offset())
			// Invariantes: nunca fuera de rango, pase lo que pase.
			assert.GreaterOrEqual(t, p.Page, 1)
			assert.GreaterOrEqual(t, p.Limit, 1)
			assert.LessOrEqual(t, p.Limit, 100)
		})
	}
}

func TestNewPagination_Metadata(t *testing.T) {
	cases := []struct {
		name           string
		page, limit    int
		total          int64
		wantTotalPages int
		wantNext       bool
		wantPrev       bool
	}{
		{"página única", 1, 10, 7, 1, false, false},
		{"primera de varias", 1, 10, 25, 3, true, false},
		{"intermedia", 2, 10, 25, 3, true, true},
		{"última", 3, 10, 25, 3, false, true},
		{"sin resultados", 1, 10, 0, 0, false, false},
		{"total exacto", 2, 10, 20, 2, false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(PageParams{Page: tc.page, Limit: tc.limit}, tc.total)

			assert.Equal(t, tc.wantTotalPages, p.TotalPages)
			assert.Equal(t, tc.wantNext, p.HasNext)
			assert.Equal(t, tc.wantPrev, p.HasPrev)
			assert.Equal(t, tc.total, p.Total)
		})
	}
}

func TestNewPagination_NormalizesParams(t *testing.T) {
	p := NewPagination(PageParams{Page: 0, Limit: 0}, 5)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 1, p.TotalPages)
}
