package service

import (
	"Ronghua/internal/api/config"
	"Ronghua/internal/model"
	"Ronghua/internal/pkg/consts"
	"Ronghua/internal/pkg/database"
	"Ronghua/internal/pkg/security"
	"Ronghua/internal/repository"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var base = time.Date(2024, 6, 1, 10, 0, 0, 0, time.Local)

type testEnv struct {
	db       *gorm.DB
	tokens   *security.TokenManager
	users    repository.UserRepo
	posts    repository.PostRepo
	comments repository.CommentRepo
	ency     repository.EncyclopediaRepo
	tutorial repository.TutorialRepo
	products repository.ProductRepo
	orders   repository.OrderRepo
	carts    repository.CartRepo
	games    repository.GameRepo
	tx       repository.TxManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := database.NewTestDB(t)
	return &testEnv{
		db:       db,
		tokens:   security.NewTokenManager(config.JWTConfig{Secret: "test-secret", Issuer: "ronghua-test", ExpireMinutes: 60}),
		users:    repository.NewUserRepo(db),
		posts:    repository.NewPostRepo(db),
		comments: repository.NewCommentRepo(db),
		ency:     repository.NewEncyclopediaRepo(db),
		tutorial: repository.NewTutorialRepo(db),
		products: repository.NewProductRepo(db),
		orders:   repository.NewOrderRepo(db),
		carts:    repository.NewCartRepo(db),
		games:    repository.NewGameRepo(db),
		tx:       repository.NewTxManager(db),
	}
}

func (e *testEnv) userService() UserService {
	return NewUserService(e.users, e.posts, e.comments, e.orders, e.tokens)
}

func (e *testEnv) seedUser(t *testing.T, name string, created time.Time) *model.User {
	t.Helper()
	u := &model.User{Username: name, PasswordHash: "x", Nickname: name, IsActive: true, Level: 1, CreatedAt: created}
	require.NoError(t, e.db.Create(u).Error)
	return u
}

func (e *testEnv) seedPost(t *testing.T, author *model.User, title, status string) *model.Post {
	t.Helper()
	p := &model.Post{Title: title, Content: title, Category: "交流", AuthorID: author.ID, Status: status}
	require.NoError(t, e.db.Create(p).Error)
	return p
}

func (e *testEnv) seedProduct(t *testing.T, name string, price float64, stock int) *model.Product {
	t.Helper()
	p := &model.Product{Name: name, Category: "绒花", Price: price, Stock: stock, Status: consts.ProductStatusActive}
	require.NoError(t, e.db.Create(p).Error)
	return p
}

func assertKind(t *testing.T, want ErrorKind, err error) {
	t.Helper()
	require.Error(t, err)
	kind, _ := Classify(err)
	assert.Equal(t, want, kind, "err: %v", err)
}
