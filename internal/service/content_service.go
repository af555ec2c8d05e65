package service

import (
	"Ronghua/internal/api/dto"
	"Ronghua/internal/model"
	"Ronghua/internal/pkg/consts"
	"Ronghua/internal/pkg/util"
	"Ronghua/internal/repository"
	"context"
	log "log/slog"
	"time"
)

// 公开百科的三个固定分类
const (
	CategoryHistory = "history"
	CategoryCraft   = "craft"
	CategoryMaster  = "master"
)

type ContentService interface {
	ListEncyclopedia(ctx context.Context, q dto.ListQuery) (*dto.PageDTO[dto.EncyclopediaRowDTO], error)
	GetEncyclopedia(ctx context.Context, id uint64) (*model.EncyclopediaContent, error)
	// ViewEncyclopedia 仅对已发布内容可见，并累加浏览数
	ViewEncyclopedia(ctx context.Context, id uint64) (*model.EncyclopediaContent, error)
	CreateEncyclopedia(ctx context.Context, d *dto.EncyclopediaDTO) (uint64, error)
	UpdateEncyclopedia(ctx context.Context, id uint64, d *dto.EncyclopediaDTO) error
	DeleteEncyclopedia(ctx context.Context, id uint64) error
	// PublishedByCategory 公开接口按分类列出已发布内容
	PublishedByCategory(ctx context.Context, category string, q dto.ListQuery) (*dto.PageDTO[dto.EncyclopediaRowDTO], error)

	ListTutorials(ctx context.Context, q dto.ListQuery) (*dto.PageDTO[dto.TutorialRowDTO], error)
	GetTutorial(ctx context.Context, id uint64) (*model.Tutorial, error)
	ViewTutorial(ctx context.Context, id uint64) (*model.Tutorial, error)
	CreateTutorial(ctx context.Context, d *dto.TutorialDTO) (uint64, error)
	UpdateTutorial(ctx context.Context, id uint64, d *dto.TutorialDTO) error
	DeleteTutorial(ctx context.Context, id uint64) error
	SaveProgress(ctx context.Context, userID, tutorialID uint64, d *dto.ProgressDTO) (*model.LearningProgress, error)

	Overview(ctx context.Context) (*dto.ContentOverviewDTO, error)
}

type ContentServiceImpl struct {
	encyclopediaRepo repository.EncyclopediaRepo
	tutorialRepo     repository.TutorialRepo
	now              func() time.Time
}

func NewContentService(encyclopediaRepo repository.EncyclopediaRepo, tutorialRepo repository.TutorialRepo) ContentService {
	return &ContentServiceImpl{
		encyclopediaRepo: encyclopediaRepo,
		tutorialRepo:     tutorialRepo,
		now:              time.Now,
	}
}

func (s *ContentServiceImpl) ListEncyclopedia(ctx context.Context, q dto.ListQuery) (*dto.PageDTO[dto.EncyclopediaRowDTO], error) {
	if q.Status != "" && !consts.IsContentStatus(q.Status) {
		return nil, ErrStatusInvalid
	}
	items, total, err := s.encyclopediaRepo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return toPage(items, total, q, toEncyclopediaRow), nil
}

func (s *ContentServiceImpl) GetEncyclopedia(ctx context.Context, id uint64) (*model.EncyclopediaContent, error) {
	item, err := s.encyclopediaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrContentNotFound
	}
	return item, nil
}

func (s *ContentServiceImpl) ViewEncyclopedia(ctx context.Context, id uint64) (*model.EncyclopediaContent, error) {
	item, err := s.GetEncyclopedia(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.Status != consts.ContentStatusPublished {
		return nil, ErrContentNotFound
	}
	if err = s.encyclopediaRepo.IncrView(ctx, id); err != nil {
		log.WarnContext(ctx, "incr encyclopedia view failed", "id", id, "err", err)
	} else {
		item.ViewCount++
	}
	return item, nil
}

func (s *ContentServiceImpl) CreateEncyclopedia(ctx context.Context, d *dto.EncyclopediaDTO) (uint64, error) {
	if err := util.ValidateDTO(d); err != nil {
		return 0, err
	}
	status, err := contentStatus(d.Status)
	if err != nil {
		return 0, err
	}
	item := &model.EncyclopediaContent{
		Title:    d.Title,
		Content:  d.Content,
		Category: d.Category,
		Images:   d.Images,
		Tags:     d.Tags,
		Status:   status,
	}
	if err = s.encyclopediaRepo.Create(ctx, item); err != nil {
		return 0, writeErr(err)
	}
	return item.ID, nil
}

func (s *ContentServiceImpl) UpdateEncyclopedia(ctx context.Context, id uint64, d *dto.EncyclopediaDTO) error {
	if err := util.ValidateDTO(d); err != nil {
		return err
	}
	item, err := s.GetEncyclopedia(ctx, id)
	if err != nil {
		return err
	}
	if d.Status != "" {
		if !consts.IsContentStatus(d.Status) {
			return ErrStatusInvalid
		}
		item.Status = d.Status
	}
	item.Title = d.Title
	item.Content = d.Content
	item.Category = d.Category
	item.Images = d.Images
	item.Tags = d.Tags
	item.UpdatedAt = s.now()
	return writeErr(s.encyclopediaRepo.Save(ctx, item))
}

func (s *ContentServiceImpl) DeleteEncyclopedia(ctx context.Context, id uint64) error {
	affected, err := s.encyclopediaRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrContentNotFound
	}
	return nil
}

func (s *ContentServiceImpl) PublishedByCategory(ctx context.Context, category string, q dto.ListQuery) (*dto.PageDTO[dto.EncyclopediaRowDTO], error) {
	q.Category = category
	q.Status = consts.ContentStatusPublished
	return s.ListEncyclopedia(ctx, q)
}

func (s *ContentServiceImpl) ListTutorials(ctx context.Context, q dto.ListQuery) (*dto.PageDTO[dto.TutorialRowDTO], error) {
	if q.Status != "" && !consts.IsContentStatus(q.Status) {
		return nil, ErrStatusInvalid
	}
	items, total, err := s.tutorialRepo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return toPage(items, total, q, toTutorialRow), nil
}

func (s *ContentServiceImpl) GetTutorial(ctx context.Context, id uint64) (*model.Tutorial, error) {
	item, err := s.tutorialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrTutorialNotFound
	}
	return item, nil
}

func (s *ContentServiceImpl) ViewTutorial(ctx context.Context, id uint64) (*model.Tutorial, error) {
	item, err := s.GetTutorial(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.Status != consts.ContentStatusPublished {
		return nil, ErrTutorialNotFound
	}
	if err = s.tutorialRepo.IncrView(ctx, id); err != nil {
		log.WarnContext(ctx, "incr tutorial view failed", "id", id, "err", err)
	} else {
		item.ViewCount++
	}
	return item, nil
}

func (s *ContentServiceImpl) CreateTutorial(ctx context.Context, d *dto.TutorialDTO) (uint64, error) {
	if err := util.ValidateDTO(d); err != nil {
		return 0, err
	}
	status, err := contentStatus(d.Status)
	if err != nil {
		return 0, err
	}
	item := &model.Tutorial{
		Title:           d.Title,
		Description:     d.Description,
		VideoURL:        d.VideoURL,
		ThumbnailURL:    d.ThumbnailURL,
		Category:        d.Category,
		Duration:        d.Duration,
		DifficultyLevel: difficulty(d.DifficultyLevel),
		Status:          status,
	}
	if err = s.tutorialRepo.Create(ctx, item); err != nil {
		return 0, writeErr(err)
	}
	return item.ID, nil
}

func (s *ContentServiceImpl) UpdateTutorial(ctx context.Context, id uint64, d *dto.TutorialDTO) error {
	if err := util.ValidateDTO(d); err != nil {
		return err
	}
	item, err := s.GetTutorial(ctx, id)
	if err != nil {
		return err
	}
	if d.Status != "" {
		if !consts.IsContentStatus(d.Status) {
			return ErrStatusInvalid
		}
		item.Status = d.Status
	}
	item.Title = d.Title
	item.Description = d.Description
	item.VideoURL = d.VideoURL
	item.ThumbnailURL = d.ThumbnailURL
	item.Category = d.Category
	item.Duration = d.Duration
	item.DifficultyLevel = difficulty(d.DifficultyLevel)
	item.UpdatedAt = s.now()
	return writeErr(s.tutorialRepo.Save(ctx, item))
}

func (s *ContentServiceImpl) DeleteTutorial(ctx context.Context, id uint64) error {
	affected, err := s.tutorialRepo.DeleteCascade(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTutorialNotFound
	}
	return nil
}

func (s *ContentServiceImpl) SaveProgress(ctx context.Context, userID, tutorialID uint64, d *dto.ProgressDTO) (*model.LearningProgress, error) {
	if err := util.ValidateDTO(d); err != nil {
		return nil, err
	}
	if _, err := s.GetTutorial(ctx, tutorialID); err != nil {
		return nil, err
	}
	p := &model.LearningProgress{
		UserID:          userID,
		TutorialID:      tutorialID,
		ProgressPercent: d.ProgressPercent,
		LastPosition:    d.LastPosition,
	}
	if d.ProgressPercent >= 100 {
		now := s.now()
		p.IsCompleted = true
		p.CompletedAt = &now
	}
	if err := s.tutorialRepo.UpsertProgress(ctx, p); err != nil {
		return nil, err
	}
	return s.tutorialRepo.GetProgress(ctx, userID, tutorialID)
}

func (s *ContentServiceImpl) Overview(ctx context.Context) (*dto.ContentOverviewDTO, error) {
	const latest = 10
	encyclopedia, err := s.encyclopediaRepo.Latest(ctx, latest)
	if err != nil {
		return nil, err
	}
	tutorials, err := s.tutorialRepo.Latest(ctx, latest)
	if err != nil {
		return nil, err
	}
	encyclopediaTotal, err := s.encyclopediaRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	tutorialTotal, err := s.tutorialRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	out := &dto.ContentOverviewDTO{
		Encyclopedia:      make([]dto.EncyclopediaRowDTO, 0, len(encyclopedia)),
		Tutorials:         make([]dto.TutorialRowDTO, 0, len(tutorials)),
		EncyclopediaTotal: encyclopediaTotal,
		TutorialTotal:     tutorialTotal,
	}
	for _, e := range encyclopedia {
		out.Encyclopedia = append(out.Encyclopedia, toEncyclopediaRow(e))
	}
	for _, t := range tutorials {
		out.Tutorials = append(out.Tutorials, toTutorialRow(t))
	}
	return out, nil
}

// contentStatus 未指定时默认为已发布
func contentStatus(status string) (string, error) {
	if status == "" {
		return consts.ContentStatusPublished, nil
	}
	if !consts.IsContentStatus(status) {
		return "", ErrStatusInvalid
	}
	return status, nil
}

func difficulty(level int) int {
	if level == 0 {
		return 1
	}
	return level
}
