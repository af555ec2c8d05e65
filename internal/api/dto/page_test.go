package dto

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListQuery_Normalize(t *testing.T) {
	q := ListQuery{Page: -3, PerPage: 500}
	q.Normalize()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, MaxPerPage, q.PerPage)
	assert.Equal(t, 0, q.Offset())

	q = ListQuery{}
	q.Normalize()
	assert.Equal(t, DefaultPerPage, q.PerPage)
}

func TestListQuery_OffsetNeverWraps(t *testing.T) {
	for _, page := range []int{1 << 62, math.MaxInt, math.MaxInt / 20} {
		q := ListQuery{Page: page, PerPage: 20}
		q.Normalize()
		assert.Positive(t, q.Offset(), "page %d", page)
	}
}

func TestNewPage_TotalPages(t *testing.T) {
	p := NewPage[int](nil, 41, ListQuery{Page: 3, PerPage: 20})
	assert.EqualValues(t, 3, p.TotalPages)
	assert.NotNil(t, p.Items)
	assert.Empty(t, p.Items)
}
