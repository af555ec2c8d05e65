package repository

import (
	"Ronghua/internal/api/dto"
	"Ronghua/internal/pkg/util"
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ListSpec 描述实体的可检索列，列名只来自代码常量
type ListSpec struct {
	// SearchFields search 关键字按 OR 匹配这些列
	SearchFields []string
	// StatusField / CategoryField 为空表示不支持该过滤
	StatusField   string
	CategoryField string
	// StatusFilter 自定义 status 过滤，优先于 StatusField
	StatusFilter func(tx *gorm.DB, status string) *gorm.DB
	Preloads     []string
}

// CrudRepo 所有实体共享的读写能力
type CrudRepo[T any] interface {
	GetByID(ctx context.Context, id uint64) (*T, error)
	Create(ctx context.Context, m *T) error
	Save(ctx context.Context, m *T) error
	List(ctx context.Context, q dto.ListQuery) ([]*T, int64, error)
	Latest(ctx context.Context, limit int) ([]*T, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}

type baseRepo[T any] struct {
	db   *gorm.DB
	spec ListSpec
}

func newBaseRepo[T any](db *gorm.DB, spec ListSpec) baseRepo[T] {
	return baseRepo[T]{db: db, spec: spec}
}

func (s *baseRepo[T]) GetByID(ctx context.Context, id uint64) (*T, error) {
	m := new(T)
	tx := s.db.WithContext(ctx)
	for _, p := range s.spec.Preloads {
		tx = tx.Preload(p)
	}
	result := tx.First(m, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(result.Error, "get by id")
	}
	return m, nil
}

func (s *baseRepo[T]) Create(ctx context.Context, m *T) error {
	return s.db.WithContext(ctx).Create(m).Error
}

// Save 覆盖全部字段
func (s *baseRepo[T]) Save(ctx context.Context, m *T) error {
	return s.db.WithContext(ctx).Omit(s.spec.Preloads...).Save(m).Error
}

func (s *baseRepo[T]) List(ctx context.Context, q dto.ListQuery) ([]*T, int64, error) {
	return list[T](ctx, s.db, s.spec, q)
}

func (s *baseRepo[T]) Latest(ctx context.Context, limit int) ([]*T, error) {
	items, _, err := list[T](ctx, s.db, s.spec, dto.ListQuery{Page: 1, PerPage: limit})
	return items, err
}

func (s *baseRepo[T]) Count(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(new(T)).Count(&total).Error
	return total, errors.Wrap(err, "count")
}

func (s *baseRepo[T]) CountByStatus(ctx context.Context, status string) (int64, error) {
	var total int64
	tx := s.db.WithContext(ctx).Model(new(T))
	tx = filterStatus(tx, s.spec, status)
	err := tx.Count(&total).Error
	return total, errors.Wrap(err, "count by status")
}

// CountCreatedBetween 统计 [from, to) 内创建的记录
func (s *baseRepo[T]) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(new(T)).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&total).Error
	return total, errors.Wrap(err, "count created between")
}

// list 过滤、计数、按创建时间倒序分页；页码越界返回空列表
func list[T any](ctx context.Context, db *gorm.DB, spec ListSpec, q dto.ListQuery) ([]*T, int64, error) {
	q.Normalize()
	scope := func(tx *gorm.DB) *gorm.DB {
		return applyFilters(tx, spec, q)
	}

	var total int64
	if err := db.WithContext(ctx).Model(new(T)).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "list count")
	}

	items := make([]*T, 0)
	if total == 0 || int64(q.Offset()) >= total {
		return items, total, nil
	}

	tx := db.WithContext(ctx).Model(new(T)).Scopes(scope)
	for _, p := range spec.Preloads {
		tx = tx.Preload(p)
	}
	err := tx.Order("created_at DESC").Order("id DESC").
		Offset(q.Offset()).
		Limit(q.PerPage).
		Find(&items).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "list find")
	}
	return items, total, nil
}

func applyFilters(tx *gorm.DB, spec ListSpec, q dto.ListQuery) *gorm.DB {
	if term := strings.TrimSpace(q.Search); term != "" && len(spec.SearchFields) > 0 {
		pattern := "%" + util.EscapeLike(strings.ToLower(term)) + "%"
		conds := make([]string, 0, len(spec.SearchFields))
		args := make([]any, 0, len(spec.SearchFields))
		for _, f := range spec.SearchFields {
			conds = append(conds, "LOWER("+f+") LIKE ? ESCAPE '!'")
			args = append(args, pattern)
		}
		tx = tx.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
	if q.Status != "" {
		tx = filterStatus(tx, spec, q.Status)
	}
	if q.Category != "" && spec.CategoryField != "" {
		tx = tx.Where(spec.CategoryField+" = ?", q.Category)
	}
	return tx
}

func filterStatus(tx *gorm.DB, spec ListSpec, status string) *gorm.DB {
	switch {
	case spec.StatusFilter != nil:
		return spec.StatusFilter(tx, status)
	case spec.StatusField != "":
		return tx.Where(spec.StatusField+" = ?", status)
	}
	return tx
}
