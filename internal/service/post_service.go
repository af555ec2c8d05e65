package service

import (
	"Ronghua/internal/api/dto"
	"Ronghua/internal/model"
	"Ronghua/internal/pkg/consts"
	"Ronghua/internal/pkg/util"
	"Ronghua/internal/repository"
	"context"
	log "log/slog"
)

type PostService interface {
	ListPosts(ctx context.Context, q dto.ListQuery) (*dto.PageDTO[dto.PostRowDTO], error)
	GetPost(ctx context.Context, id uint64) (*dto.PostDetailDTO, error)
	// ViewPost 读取详情并累加浏览数
	ViewPost(ctx context.Context, id uint64) (*dto.PostDetailDTO, error)
	CreatePost(ctx context.Context, authorID uint64, d *dto.CreatePostDTO) (uint64, error)
	UpdateStatus(ctx context.Context, id uint64, status string) error
	DeletePost(ctx context.Context, id uint64) error
}

type PostServiceImpl struct {
	postRepo repository.PostRepo
	userRepo repository.UserRepo
}

func NewPostService(postRepo repository.PostRepo, userRepo repository.UserRepo) PostService {
	return &PostServiceImpl{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

func (s *PostServiceImpl) ListPosts(ctx context.Context, q dto.ListQuery) (*dto.PageDTO[dto.PostRowDTO], error) {
	if q.Status != "" && !consts.IsPostStatus(q.Status) {
		return nil, ErrStatusInvalid
	}
	items, total, err := s.postRepo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return toPage(items, total, q, toPostRow), nil
}

func (s *PostServiceImpl) GetPost(ctx context.Context, id uint64) (*dto.PostDetailDTO, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return toPostDetail(post), nil
}

func (s *PostServiceImpl) ViewPost(ctx context.Context, id uint64) (*dto.PostDetailDTO, error) {
	detail, err := s.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail.Status != consts.PostStatusPublished {
		return nil, ErrPostNotFound
	}
	if err = s.postRepo.IncrView(ctx, id); err != nil {
		log.WarnContext(ctx, "incr post view failed", "post_id", id, "err", err)
	} else {
		detail.ViewCount++
	}
	return detail, nil
}

func (s *PostServiceImpl) CreatePost(ctx context.Context, authorID uint64, d *dto.CreatePostDTO) (uint64, error) {
	if err := util.ValidateDTO(d); err != nil {
		return 0, err
	}
	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return 0, err
	}
	if author == nil {
		return 0, ErrUserNotFound
	}

	tags := d.Tags
	if len(tags) == 0 {
		tags = util.ExtractTags(d.Content)
	}
	post := &model.Post{
		Title:    d.Title,
		Content:  d.Content,
		Category: d.Category,
		AuthorID: authorID,
		Images:   d.Images,
		Tags:     tags,
		Status:   consts.PostStatusPublished,
	}
	if err = s.postRepo.Create(ctx, post); err != nil {
		return 0, err
	}
	return post.ID, nil
}

func (s *PostServiceImpl) UpdateStatus(ctx context.Context, id uint64, status string) error {
	if !consts.IsPostStatus(status) {
		return ErrStatusInvalid
	}
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	_, err = s.postRepo.UpdateStatus(ctx, id, status)
	return err
}

func (s *PostServiceImpl) DeletePost(ctx context.Context, id uint64) error {
	affected, err := s.postRepo.DeleteCascade(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPostNotFound
	}
	return nil
}

func toPostDetail(p *model.Post) *dto.PostDetailDTO {
	images, tags := p.Images, p.Tags
	if images == nil {
		images = []string{}
	}
	if tags == nil {
		tags = []string{}
	}
	return &dto.PostDetailDTO{
		PostRowDTO: toPostRow(p),
		Content:    p.Content,
		Images:     images,
		Tags:       tags,
	}
}
