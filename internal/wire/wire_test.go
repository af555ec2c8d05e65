package wire

import (
	"Ronghua/internal/api/config"
	"Ronghua/internal/model"
	"Ronghua/internal/pkg/database"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	ErrorCode string          `json:"error_code"`
}

type testApp struct {
	t      *testing.T
	db     *gorm.DB
	router http.Handler
	cookie *http.Cookie
	bearer string
}

func testConfig(mode string) *config.Config {
	return &config.Config{
		App:     config.AppConfig{Name: "绒花非遗传承平台", Version: "test"},
		DB:      config.DBConfig{Driver: "sqlite"},
		Session: config.SessionConfig{Store: "memory", CookieName: "admin_session", TTLMinutes: 60},
		Admin:   config.AdminConfig{Username: "admin", Password: "admin123"},
		JWT:     config.JWTConfig{Secret: "test-secret", Issuer: "ronghua-test", ExpireMinutes: 60},
		CORS:    config.CORSConfig{AllowedOrigins: []string{"*"}},
		Upload:  config.UploadConfig{MaxFileSize: 1024, AllowedExtensions: []string{".png"}},
		PublicAPI: config.PublicAPIConfig{
			Mode: mode,
		},
	}
}

func newTestApp(t *testing.T, mode string) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := database.NewTestDB(t)
	app, err := BuildApplication(db, testConfig(mode), Infra{})
	require.NoError(t, err)
	return &testApp{t: t, db: db, router: app.Router}
}

func (a *testApp) do(method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	a.t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if a.cookie != nil {
		req.AddCookie(a.cookie)
	}
	if a.bearer != "" {
		req.Header.Set("Authorization", "Bearer "+a.bearer)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) json(method, path string, payload any) (*httptest.ResponseRecorder, envelope) {
	a.t.Helper()
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(a.t, err)
		body = strings.NewReader(string(data))
	}
	w := a.do(method, path, body, "application/json")
	var env envelope
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func (a *testApp) login() {
	a.t.Helper()
	form := url.Values{"username": {"admin"}, "password": {"admin123"}}
	w := a.do(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	require.Equal(a.t, http.StatusFound, w.Code)
	for _, c := range w.Result().Cookies() {
		if c.Name == "admin_session" {
			a.cookie = c
		}
	}
	require.NotNil(a.t, a.cookie)
}

func TestAdminSessionFlow(t *testing.T) {
	app := newTestApp(t, config.PublicAPIFixture)

	w, env := app.json(http.MethodGet, "/admin/dashboard", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "UNAUTHORIZED", env.ErrorCode)

	w, env = app.json(http.MethodPost, "/admin/login", map[string]string{"username": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", env.ErrorCode)

	app.login()
	assert.True(t, app.cookie.HttpOnly)

	w, env = app.json(http.MethodGet, "/admin/dashboard", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var profile map[string]any
	_, env = app.json(http.MethodGet, "/admin/api/profile", nil)
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, "admin", profile["username"])

	w = app.do(http.MethodGet, "/admin/logout", nil, "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))

	w, _ = app.json(http.MethodGet, "/admin/dashboard", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminIndexRedirects(t *testing.T) {
	app := newTestApp(t, config.PublicAPIFixture)
	w := app.do(http.MethodGet, "/admin/", nil, "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
}

func TestAdminUserCRUD(t *testing.T) {
	app := newTestApp(t, config.PublicAPIFixture)
	app.login()

	_, env := app.json(http.MethodPost, "/admin/users", map[string]any{"username": "alice", "password": "secret1"})
	require.True(t, env.Success, env.Message)
	var created struct {
		ID uint64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotZero(t, created.ID)

	w, env := app.json(http.MethodPost, "/admin/users", map[string]any{"username": "alice", "password": "secret1"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CONFLICT", env.ErrorCode)

	_, env = app.json(http.MethodGet, "/admin/users?search=ALI&per_page=5", nil)
	var page struct {
		Items   []map[string]any `json:"items"`
		Total   int64            `json:"total"`
		PerPage int              `json:"per_page"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.EqualValues(t, 1, page.Total)
	assert.Equal(t, 5, page.PerPage)

	path := "/admin/users/" + jsonNumber(created.ID)
	_, env = app.json(http.MethodPost, path+"/status", nil)
	var toggled map[string]bool
	require.NoError(t, json.Unmarshal(env.Data, &toggled))
	assert.False(t, toggled["is_active"])

	_, env = app.json(http.MethodDelete, path, nil)
	assert.True(t, env.Success)

	w, env = app.json(http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", env.ErrorCode)

	w, env = app.json(http.MethodGet, "/admin/users/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.ErrorCode)
}

func TestAdminStatsAndDisabledFeatures(t *testing.T) {
	app := newTestApp(t, config.PublicAPIFixture)
	app.login()

	_, env := app.json(http.MethodGet, "/admin/api/stats", nil)
	var stats struct {
		Trends struct {
			WeekLabels []string `json:"week_labels"`
			WeekUsers  []int64  `json:"week_users"`
		} `json:"trends"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Len(t, stats.Trends.WeekLabels, 7)
	assert.Len(t, stats.Trends.WeekUsers, 7)

	_, env = app.json(http.MethodGet, "/admin/settings", nil)
	var settings map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &settings))
	assert.Equal(t, "fixture", settings["public_api_mode"])
	assert.Equal(t, false, settings["media_enabled"])

	w, env := app.json(http.MethodGet, "/admin/api/op-logs", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
}

func TestPublicFixtureMode(t *testing.T) {
	app := newTestApp(t, config.PublicAPIFixture)

	_, env := app.json(http.MethodGet, "/api/shop/products", nil)
	assert.True(t, env.Success)
	var products []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &products))
	require.Len(t, products, 1)
	assert.Equal(t, "手工绒花发簪", products[0]["name"])

	_, env = app.json(http.MethodPost, "/api/game/challenges/5/complete", nil)
	var done map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &done))
	assert.EqualValues(t, 5, done["challenge_id"])
	assert.Equal(t, "挑战完成", env.Message)

	w, env := app.json(http.MethodGet, "/api/auth/profile", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	_, env = app.json(http.MethodPost, "/api/game/ai/chat", map[string]string{"message": "绒花的历史"})
	var reply map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &reply))
	assert.Contains(t, reply["reply"], "唐代")
}

func TestPublicStoreMode(t *testing.T) {
	app := newTestApp(t, config.PublicAPIStore)

	_, env := app.json(http.MethodPost, "/api/auth/register", map[string]string{"username": "bob", "password": "secret1"})
	require.True(t, env.Success, env.Message)

	w, _ := app.json(http.MethodGet, "/api/auth/profile", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	_, env = app.json(http.MethodPost, "/api/auth/login", map[string]string{"username": "bob", "password": "secret1"})
	require.True(t, env.Success, env.Message)
	var token struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &token))
	app.bearer = token.AccessToken

	_, env = app.json(http.MethodGet, "/api/auth/profile", nil)
	var profile map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, "bob", profile["username"])

	_, env = app.json(http.MethodPost, "/api/community/posts", map[string]any{"title": "作品", "content": "内容", "category": "showcase"})
	require.True(t, env.Success, env.Message)
	require.NoError(t, app.db.Model(&model.Post{}).Where("1 = 1").Update("status", "draft").Error)

	_, env = app.json(http.MethodGet, "/api/community/posts", nil)
	var page struct {
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.EqualValues(t, 0, page.Total)
}

func TestHealthAndPing(t *testing.T) {
	app := newTestApp(t, config.PublicAPIFixture)

	_, env := app.json(http.MethodGet, "/health", nil)
	assert.True(t, env.Success)

	w, env := app.json(http.MethodGet, "/api/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", env.Message)
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
}

func jsonNumber(id uint64) string {
	data, _ := json.Marshal(id)
	return string(data)
}
