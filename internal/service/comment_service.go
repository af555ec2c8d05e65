package service

import (
	"Ronghua/internal/api/dto"
	"Ronghua/internal/model"
	"Ronghua/internal/pkg/consts"
	"Ronghua/internal/pkg/util"
	"Ronghua/internal/repository"
	"context"
)

type CommentService interface {
	// ListTree 返回帖子的评论树，顶层与回复均按时间正序
	ListTree(ctx context.Context, postID uint64) ([]*dto.CommentNodeDTO, error)
	AddComment(ctx context.Context, postID, authorID uint64, d *dto.CreateCommentDTO) (uint64, error)
	// DeleteComment 连同全部下级回复一起删除，返回删除条数
	DeleteComment(ctx context.Context, id uint64) (int64, error)
}

type CommentServiceImpl struct {
	commentRepo repository.CommentRepo
	postRepo    repository.PostRepo
	userRepo    repository.UserRepo
}

func NewCommentService(commentRepo repository.CommentRepo, postRepo repository.PostRepo, userRepo repository.UserRepo) CommentService {
	return &CommentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// commentArena 评论平铺存放，回复关系由 parent -> children 索引表达
type commentArena struct {
	nodes    map[uint64]*model.Comment
	children map[uint64][]uint64
	roots    []uint64
}

func newCommentArena(comments []*model.Comment) *commentArena {
	a := &commentArena{
		nodes:    make(map[uint64]*model.Comment, len(comments)),
		children: make(map[uint64][]uint64),
	}
	for _, c := range comments {
		a.nodes[c.ID] = c
	}
	for _, c := range comments {
		if c.ParentID != nil {
			if _, ok := a.nodes[*c.ParentID]; ok {
				a.children[*c.ParentID] = append(a.children[*c.ParentID], c.ID)
				continue
			}
		}
		// 父评论缺失时挂到顶层
		a.roots = append(a.roots, c.ID)
	}
	return a
}

// subtree 返回 id 及其所有后代
func (a *commentArena) subtree(id uint64) []uint64 {
	if _, ok := a.nodes[id]; !ok {
		return nil
	}
	out := []uint64{}
	seen := make(map[uint64]struct{})
	stack := []uint64{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := seen[cur]; ok {
			continue
		}
		seen[cur] = struct{}{}
		out = append(out, cur)
		stack = append(stack, a.children[cur]...)
	}
	return out
}

func (a *commentArena) tree() []*dto.CommentNodeDTO {
	var build func(id uint64, depth int) *dto.CommentNodeDTO
	build = func(id uint64, depth int) *dto.CommentNodeDTO {
		c := a.nodes[id]
		node := &dto.CommentNodeDTO{
			ID:        c.ID,
			ParentID:  c.ParentID,
			Author:    authorName(c.Author),
			Content:   c.Content,
			LikeCount: c.LikeCount,
			Status:    c.Status,
			CreatedAt: util.FormatTime(c.CreatedAt, consts.TimeLayout),
			Replies:   make([]*dto.CommentNodeDTO, 0, len(a.children[id])),
		}
		if depth > len(a.nodes) {
			return node
		}
		for _, child := range a.children[id] {
			node.Replies = append(node.Replies, build(child, depth+1))
		}
		return node
	}

	out := make([]*dto.CommentNodeDTO, 0, len(a.roots))
	for _, id := range a.roots {
		out = append(out, build(id, 0))
	}
	return out
}

func (s *CommentServiceImpl) ListTree(ctx context.Context, postID uint64) ([]*dto.CommentNodeDTO, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return newCommentArena(comments).tree(), nil
}

func (s *CommentServiceImpl) AddComment(ctx context.Context, postID, authorID uint64, d *dto.CreateCommentDTO) (uint64, error) {
	if err := util.ValidateDTO(d); err != nil {
		return 0, err
	}
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return 0, err
	}
	// 未发布的帖子对外不可见
	if post == nil || post.Status != consts.PostStatusPublished {
		return 0, ErrPostNotFound
	}
	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return 0, err
	}
	if author == nil {
		return 0, ErrUserNotFound
	}
	if d.ParentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *d.ParentID)
		if err != nil {
			return 0, err
		}
		if parent == nil || parent.PostID != postID {
			return 0, ErrCommentParent
		}
	}

	comment := &model.Comment{
		PostID:   postID,
		AuthorID: authorID,
		ParentID: d.ParentID,
		Content:  d.Content,
		Status:   consts.CommentStatusPublished,
	}
	if err = s.commentRepo.CreateAndCount(ctx, comment); err != nil {
		return 0, err
	}
	return comment.ID, nil
}

func (s *CommentServiceImpl) DeleteComment(ctx context.Context, id uint64) (int64, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if comment == nil {
		return 0, ErrCommentNotFound
	}
	siblings, err := s.commentRepo.ListByPost(ctx, comment.PostID)
	if err != nil {
		return 0, err
	}
	ids := newCommentArena(siblings).subtree(id)
	if len(ids) == 0 {
		return 0, ErrCommentNotFound
	}
	return s.commentRepo.DeleteIDs(ctx, comment.PostID, ids)
}
