package service

import (
	"Ronghua/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameService_LeaderboardProfileStats(t *testing.T) {
	env := newTestEnv(t)
	svc := NewGameService(env.games, env.users)
	ctx := context.Background()

	for name, points := range map[string]int{"a": 50, "b": 300, "c": 120} {
		u := env.seedUser(t, name, base)
		require.NoError(t, env.db.Model(u).Update("points", points).Error)
	}
	require.NoError(t, env.db.Create(&model.Challenge{Title: "学习达人", Type: "weekly", RewardPoints: 50, IsActive: true}).Error)
	require.NoError(t, env.db.Create(&model.Challenge{Title: "过期挑战", Type: "daily", RewardPoints: 10}).Error)
	require.NoError(t, env.db.Create(&model.Achievement{Name: "初学者"}).Error)

	board, err := svc.Leaderboard(ctx, 0)
	require.NoError(t, err)
	require.Len(t, board, 3)
	assert.Equal(t, "b", board[0].Username)
	assert.Equal(t, 1, board[0].Rank)
	assert.Equal(t, "a", board[2].Username)

	c, err := env.users.GetByUsername(ctx, "c")
	require.NoError(t, err)
	profile, err := svc.Profile(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), profile.Rank)
	_, err = svc.Profile(ctx, 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)

	challenges, err := svc.ActiveChallenges(ctx)
	require.NoError(t, err)
	require.Len(t, challenges, 1)
	assert.Equal(t, "学习达人", challenges[0].Title)

	stats, err := svc.GameStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalChallenges)
	assert.Equal(t, int64(1), stats.ActiveChallenges)
	assert.Equal(t, int64(1), stats.Achievements)
	assert.Equal(t, int64(470), stats.TotalPoints)
	assert.Len(t, stats.TopPlayers, 3)
}
