package middleware

import (
	"Ronghua/internal/pkg/mongo"
	"Ronghua/internal/pkg/session"
	"Ronghua/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memOpLogRepo struct {
	mu      sync.Mutex
	entries []*mongo.OpLog
}

func (s *memOpLogRepo) Insert(_ context.Context, entry *mongo.OpLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

func (s *memOpLogRepo) List(_ context.Context, _, _ int64) ([]*mongo.OpLog, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries, int64(len(s.entries)), nil
}

func newOpLogRouter(repo mongo.OpLogRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(AdminKey, &session.Session{Username: "keeper"})
		c.Next()
	})
	r.Use(OpLogMiddleware(service.NewOpLogService(repo)))
	r.Any("/admin/api/products/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.POST("/admin/api/products", func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return r
}

func TestOpLogMiddleware_RecordsWrites(t *testing.T) {
	repo := &memOpLogRepo{}
	r := newOpLogRouter(repo)

	requests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/admin/api/products/1"},
		{http.MethodHead, "/admin/api/products/1"},
		{http.MethodPost, "/admin/api/products"},
		{http.MethodPut, "/admin/api/products/1"},
		{http.MethodDelete, "/admin/api/products/1"},
	}
	for _, rq := range requests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(rq.method, rq.path, nil))
	}

	require.Len(t, repo.entries, 3)
	methods := make([]string, 0, len(repo.entries))
	for _, e := range repo.entries {
		methods = append(methods, e.Method)
		assert.Equal(t, "keeper", e.Admin)
		assert.False(t, e.CreatedAt.IsZero())
	}
	assert.Equal(t, []string{http.MethodPost, http.MethodPut, http.MethodDelete}, methods)
	assert.Equal(t, "/admin/api/products", repo.entries[0].Path)
	assert.Equal(t, http.StatusCreated, repo.entries[0].Status)
}

func TestOpLogMiddleware_DisabledPassesThrough(t *testing.T) {
	r := newOpLogRouter(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/api/products", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
}
