package service

import (
	"Ronghua/internal/api/dto"
	"Ronghua/internal/pkg/consts"
	"Ronghua/internal/pkg/util"
	"Ronghua/internal/repository"
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// WeekDays 注册趋势覆盖的天数
const WeekDays = 7

type StatsService interface {
	// Stats 每次请求实时计算，任一子项失败则整体失败
	Stats(ctx context.Context) (*dto.StatsDTO, error)
	Dashboard(ctx context.Context) (*dto.DashboardDTO, error)
	CommunityStats(ctx context.Context) (*dto.CommunityStatsDTO, error)
}

type StatsServiceImpl struct {
	userRepo         repository.UserRepo
	postRepo         repository.PostRepo
	commentRepo      repository.CommentRepo
	encyclopediaRepo repository.EncyclopediaRepo
	tutorialRepo     repository.TutorialRepo
	productRepo      repository.ProductRepo
	orderRepo        repository.OrderRepo
	now              func() time.Time
}

func NewStatsService(
	userRepo repository.UserRepo,
	postRepo repository.PostRepo,
	commentRepo repository.CommentRepo,
	encyclopediaRepo repository.EncyclopediaRepo,
	tutorialRepo repository.TutorialRepo,
	productRepo repository.ProductRepo,
	orderRepo repository.OrderRepo,
) StatsService {
	return &StatsServiceImpl{
		userRepo:         userRepo,
		postRepo:         postRepo,
		commentRepo:      commentRepo,
		encyclopediaRepo: encyclopediaRepo,
		tutorialRepo:     tutorialRepo,
		productRepo:      productRepo,
		orderRepo:        orderRepo,
		now:              time.Now,
	}
}

func (s *StatsServiceImpl) Stats(ctx context.Context) (*dto.StatsDTO, error) {
	out := &dto.StatsDTO{}
	today := util.StartOfDay(s.now())
	tomorrow := today.AddDate(0, 0, 1)

	g, gctx := errgroup.WithContext(ctx)
	count := func(dst *int64, fn func(context.Context) (int64, error)) {
		g.Go(func() error {
			n, err := fn(gctx)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}
	byStatus := func(fn func(context.Context, string) (int64, error), status string) func(context.Context) (int64, error) {
		return func(ctx context.Context) (int64, error) { return fn(ctx, status) }
	}

	count(&out.Users.Total, s.userRepo.Count)
	count(&out.Users.Active, byStatus(s.userRepo.CountByStatus, consts.UserStatusActive))
	count(&out.Users.Today, func(ctx context.Context) (int64, error) {
		return s.userRepo.CountCreatedBetween(ctx, today, tomorrow)
	})
	count(&out.Content.Encyclopedia, s.encyclopediaRepo.Count)
	count(&out.Content.Tutorials, s.tutorialRepo.Count)
	count(&out.Community.Posts, s.postRepo.Count)
	count(&out.Community.Comments, s.commentRepo.Count)
	count(&out.Community.PendingPosts, byStatus(s.postRepo.CountByStatus, consts.PostStatusDraft))
	count(&out.Shop.Products, s.productRepo.Count)
	count(&out.Shop.Orders, s.orderRepo.Count)
	count(&out.Shop.PendingOrders, byStatus(s.orderRepo.CountByStatus, consts.OrderStatusPending))

	labels := make([]string, WeekDays)
	users := make([]int64, WeekDays)
	for i := 0; i < WeekDays; i++ {
		day := today.AddDate(0, 0, i-(WeekDays-1))
		labels[i] = day.Format("01-02")
		count(&users[i], func(ctx context.Context) (int64, error) {
			return s.userRepo.CountCreatedBetween(ctx, day, day.AddDate(0, 0, 1))
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	out.Trends = dto.TrendsDTO{WeekLabels: labels, WeekUsers: users}
	return out, nil
}

func (s *StatsServiceImpl) Dashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	const recent = 5
	stats, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.Latest(ctx, recent)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.Latest(ctx, recent)
	if err != nil {
		return nil, err
	}
	categories, err := s.encyclopediaRepo.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}

	out := &dto.DashboardDTO{
		Stats:                *stats,
		RecentUsers:          make([]dto.UserRowDTO, 0, len(users)),
		RecentPosts:          make([]dto.PostRowDTO, 0, len(posts)),
		EncyclopediaCategory: make([]dto.CategoryCountDTO, 0, len(categories)),
	}
	for _, u := range users {
		out.RecentUsers = append(out.RecentUsers, toUserRow(u))
	}
	for _, p := range posts {
		out.RecentPosts = append(out.RecentPosts, toPostRow(p))
	}
	for _, c := range categories {
		out.EncyclopediaCategory = append(out.EncyclopediaCategory, dto.CategoryCountDTO{Category: c.Category, Count: c.Count})
	}
	return out, nil
}

func (s *StatsServiceImpl) CommunityStats(ctx context.Context) (*dto.CommunityStatsDTO, error) {
	var (
		out   = &dto.CommunityStatsDTO{}
		today = util.StartOfDay(s.now())
		err   error
	)
	if out.TotalPosts, err = s.postRepo.Count(ctx); err != nil {
		return nil, err
	}
	if out.PublishedPosts, err = s.postRepo.CountByStatus(ctx, consts.PostStatusPublished); err != nil {
		return nil, err
	}
	if out.PendingPosts, err = s.postRepo.CountByStatus(ctx, consts.PostStatusDraft); err != nil {
		return nil, err
	}
	if out.HiddenPosts, err = s.postRepo.CountByStatus(ctx, consts.PostStatusHidden); err != nil {
		return nil, err
	}
	if out.TotalComments, err = s.commentRepo.Count(ctx); err != nil {
		return nil, err
	}
	if out.TodayPosts, err = s.postRepo.CountCreatedBetween(ctx, today, today.AddDate(0, 0, 1)); err != nil {
		return nil, err
	}
	return out, nil
}
