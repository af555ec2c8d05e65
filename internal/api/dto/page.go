package dto

import "math"

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// ListQuery 列表查询参数，status / category 为精确匹配，search 为多字段模糊匹配
type ListQuery struct {
	Page     int    `form:"page" json:"page"`
	PerPage  int    `form:"per_page" json:"per_page"`
	Search   string `form:"search" json:"search"`
	Status   string `form:"status" json:"status"`
	Category string `form:"category" json:"category"`
}

// Normalize 补齐默认值并限制单页条数，页码上限保证偏移量不溢出
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage <= 0 {
		q.PerPage = DefaultPerPage
	}
	if q.PerPage > MaxPerPage {
		q.PerPage = MaxPerPage
	}
	if maxPage := math.MaxInt / q.PerPage; q.Page > maxPage {
		q.Page = maxPage
	}
}

func (q *ListQuery) Offset() int {
	return (q.Page - 1) * q.PerPage
}

type PageDTO[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int64 `json:"total_pages"`
}

// NewPage 计算总页数，items 为 nil 时输出空数组
func NewPage[T any](items []T, total int64, q ListQuery) *PageDTO[T] {
	if items == nil {
		items = make([]T, 0)
	}
	var pages int64
	if q.PerPage > 0 {
		pages = (total + int64(q.PerPage) - 1) / int64(q.PerPage)
	}
	return &PageDTO[T]{
		Items:      items,
		Total:      total,
		Page:       q.Page,
		PerPage:    q.PerPage,
		TotalPages: pages,
	}
}
