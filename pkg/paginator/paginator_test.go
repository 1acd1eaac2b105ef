package paginator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjust(t *testing.T) {
	tests := []struct {
		name string
		in   PaginateQuery
		want PaginateQuery
	}{
		{"defaults", PaginateQuery{}, PaginateQuery{Page: 1, Limit: DefaultLimit}},
		{"caps limit", PaginateQuery{Page: 3, Limit: 1000}, PaginateQuery{Page: 3, Limit: MaxLimit}},
		{"keeps valid", PaginateQuery{Page: 2, Limit: 5}, PaginateQuery{Page: 2, Limit: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.in
			q.Adjust()
			assert.Equal(t, tt.want, q)
		})
	}
}

func TestToResponse(t *testing.T) {
	q := PaginateQuery{Page: 2, Limit: 10}
	assert.Equal(t, int64(10), q.Offset())

	resp := New(q, 25, 10).ToResponse()
	assert.Equal(t, 3, resp.TotalPages)
	assert.True(t, resp.HasNext)
	assert.True(t, resp.HasPrev)

	last := New(PaginateQuery{Page: 3, Limit: 10}, 25, 5).ToResponse()
	assert.False(t, last.HasNext)
}
