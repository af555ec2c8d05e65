package service

import (
	"Ronghua/internal/model"
	"Ronghua/internal/pkg/consts"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) statsService(now time.Time) *StatsServiceImpl {
	svc := NewStatsService(e.users, e.posts, e.comments, e.ency, e.tutorial, e.products, e.orders).(*StatsServiceImpl)
	svc.now = func() time.Time { return now }
	return svc
}

func TestStatsService_WeekHistogram(t *testing.T) {
	env := newTestEnv(t)
	now := time.Date(2024, 6, 10, 15, 30, 0, 0, time.Local)
	today := time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)

	env.seedUser(t, "today1", today.Add(time.Minute))
	env.seedUser(t, "today2", today.Add(23*time.Hour+59*time.Minute))
	env.seedUser(t, "yesterday", today.Add(-time.Second))
	env.seedUser(t, "sixdays", today.AddDate(0, 0, -6))
	env.seedUser(t, "sevendays", today.AddDate(0, 0, -6).Add(-time.Second))
	inactive := env.seedUser(t, "inactive", today.AddDate(0, 0, -3).Add(time.Hour))
	require.NoError(t, env.db.Model(inactive).Update("is_active", false).Error)

	stats, err := env.statsService(now).Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(6), stats.Users.Total)
	assert.Equal(t, int64(5), stats.Users.Active)
	assert.Equal(t, int64(2), stats.Users.Today)
	assert.Equal(t, []int64{1, 0, 0, 1, 0, 1, 2}, stats.Trends.WeekUsers)
	assert.Equal(t, []string{"06-04", "06-05", "06-06", "06-07", "06-08", "06-09", "06-10"}, stats.Trends.WeekLabels)
}

func TestStatsService_CountsAndDashboard(t *testing.T) {
	env := newTestEnv(t)
	now := time.Date(2024, 6, 10, 15, 30, 0, 0, time.Local)
	ctx := context.Background()

	u := env.seedUser(t, "author", now.Add(-time.Hour))
	env.seedPost(t, u, "已发布", consts.PostStatusPublished)
	env.seedPost(t, u, "待审核", consts.PostStatusDraft)
	env.seedPost(t, u, "已隐藏", consts.PostStatusHidden)
	require.NoError(t, env.db.Create(&model.EncyclopediaContent{Title: "起源", Content: "唐代", Category: "history", Status: consts.ContentStatusPublished}).Error)
	require.NoError(t, env.db.Create(&model.EncyclopediaContent{Title: "工艺", Content: "染色", Category: "craft", Status: consts.ContentStatusPublished}).Error)
	require.NoError(t, env.db.Create(&model.EncyclopediaContent{Title: "工具", Content: "剪刀", Category: "craft", Status: consts.ContentStatusDraft}).Error)
	env.seedProduct(t, "绒花", 10, 1)
	require.NoError(t, env.db.Create(&model.Order{OrderNo: "RH1", UserID: u.ID, TotalAmount: 10, Status: consts.OrderStatusPending, PaymentStatus: consts.PaymentStatusUnpaid}).Error)

	svc := env.statsService(now)
	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Community.Posts)
	assert.Equal(t, int64(1), stats.Community.PendingPosts)
	assert.Equal(t, int64(3), stats.Content.Encyclopedia)
	assert.Equal(t, int64(1), stats.Shop.Products)
	assert.Equal(t, int64(1), stats.Shop.Orders)
	assert.Equal(t, int64(1), stats.Shop.PendingOrders)

	dashboard, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Len(t, dashboard.RecentUsers, 1)
	assert.Len(t, dashboard.RecentPosts, 3)
	require.Len(t, dashboard.EncyclopediaCategory, 2)
	assert.Equal(t, "craft", dashboard.EncyclopediaCategory[0].Category)
	assert.Equal(t, int64(2), dashboard.EncyclopediaCategory[0].Count)

	community, err := svc.CommunityStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), community.PublishedPosts)
	assert.Equal(t, int64(1), community.HiddenPosts)
}

func TestStatsService_FailsWhenStoreFails(t *testing.T) {
	env := newTestEnv(t)
	sqlDB, err := env.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = env.statsService(time.Now()).Stats(context.Background())
	require.Error(t, err)
	kind, _ := Classify(err)
	assert.Equal(t, KindInternal, kind)
}
