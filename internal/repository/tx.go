package repository

import (
	"context"

	"gorm.io/gorm"
)

// TxRepos 绑定在同一事务上的仓储
type TxRepos struct {
	Users    UserRepo
	Posts    PostRepo
	Comments CommentRepo
	Products ProductRepo
	Orders   OrderRepo
	Carts    CartRepo
	Content  EncyclopediaRepo
	Tutorial TutorialRepo
}

type TxManager interface {
	// Execute fn 返回错误时整体回滚
	Execute(ctx context.Context, fn func(repos *TxRepos) error) error
}

type txManagerImpl struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return &txManagerImpl{db: db}
}

func (s *txManagerImpl) Execute(ctx context.Context, fn func(repos *TxRepos) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&TxRepos{
			Users:    NewUserRepo(tx),
			Posts:    NewPostRepo(tx),
			Comments: NewCommentRepo(tx),
			Products: NewProductRepo(tx),
			Orders:   NewOrderRepo(tx),
			Carts:    NewCartRepo(tx),
			Content:  NewEncyclopediaRepo(tx),
			Tutorial: NewTutorialRepo(tx),
		})
	})
}
