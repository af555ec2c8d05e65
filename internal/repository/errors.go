package repository

import "errors"

var (
	// ErrReferenced 记录仍被其他数据引用，不能删除
	ErrReferenced = errors.New("record still referenced")
)
