package service

import (
	"Ronghua/internal/api/dto"
	"Ronghua/internal/repository"
	"context"
)

// LeaderboardSize 排行榜展示人数
const LeaderboardSize = 10

type GameService interface {
	ActiveChallenges(ctx context.Context) ([]dto.ChallengeDTO, error)
	Leaderboard(ctx context.Context, limit int) ([]dto.LeaderboardDTO, error)
	// Profile 名次为积分严格高于自己的活跃用户数加一
	Profile(ctx context.Context, userID uint64) (*dto.GameProfileDTO, error)
	GameStats(ctx context.Context) (*dto.GameStatsDTO, error)
}

type GameServiceImpl struct {
	gameRepo repository.GameRepo
	userRepo repository.UserRepo
}

func NewGameService(gameRepo repository.GameRepo, userRepo repository.UserRepo) GameService {
	return &GameServiceImpl{
		gameRepo: gameRepo,
		userRepo: userRepo,
	}
}

func (s *GameServiceImpl) ActiveChallenges(ctx context.Context) ([]dto.ChallengeDTO, error) {
	challenges, err := s.gameRepo.ListActiveChallenges(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ChallengeDTO, 0, len(challenges))
	for _, c := range challenges {
		out = append(out, dto.ChallengeDTO{
			ID:           c.ID,
			Title:        c.Title,
			Description:  c.Description,
			Type:         c.Type,
			RewardPoints: c.RewardPoints,
		})
	}
	return out, nil
}

func (s *GameServiceImpl) Leaderboard(ctx context.Context, limit int) ([]dto.LeaderboardDTO, error) {
	if limit <= 0 || limit > 100 {
		limit = LeaderboardSize
	}
	users, err := s.userRepo.TopByPoints(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LeaderboardDTO, 0, len(users))
	for i, u := range users {
		out = append(out, dto.LeaderboardDTO{
			Rank:     i + 1,
			UserID:   u.ID,
			Username: u.Username,
			Nickname: u.Nickname,
			Points:   u.Points,
			Level:    u.Level,
		})
	}
	return out, nil
}

func (s *GameServiceImpl) Profile(ctx context.Context, userID uint64) (*dto.GameProfileDTO, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	above, err := s.userRepo.CountPointsAbove(ctx, user.Points)
	if err != nil {
		return nil, err
	}
	return &dto.GameProfileDTO{
		UserID:   user.ID,
		Username: user.Username,
		Points:   user.Points,
		Level:    user.Level,
		Rank:     above + 1,
	}, nil
}

func (s *GameServiceImpl) GameStats(ctx context.Context) (*dto.GameStatsDTO, error) {
	total, active, err := s.gameRepo.CountChallenges(ctx)
	if err != nil {
		return nil, err
	}
	achievements, err := s.gameRepo.CountAchievements(ctx)
	if err != nil {
		return nil, err
	}
	points, err := s.userRepo.SumPoints(ctx)
	if err != nil {
		return nil, err
	}
	top, err := s.Leaderboard(ctx, 5)
	if err != nil {
		return nil, err
	}
	return &dto.GameStatsDTO{
		TotalChallenges:  total,
		ActiveChallenges: active,
		Achievements:     achievements,
		TotalPoints:      points,
		TopPlayers:       top,
	}, nil
}
