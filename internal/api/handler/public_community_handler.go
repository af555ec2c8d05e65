package handler

import (
	"Ronghua/internal/api/dto"
	"Ronghua/internal/api/fixture"
	"Ronghua/internal/api/middleware"
	"Ronghua/internal/pkg/consts"
	"Ronghua/internal/pkg/response"
	"Ronghua/internal/service"

	"github.com/gin-gonic/gin"
)

type CommunityHandler struct {
	postSvc    service.PostService
	commentSvc service.CommentService
	useStore   bool
}

func NewCommunityHandler(postSvc service.PostService, commentSvc service.CommentService, useStore bool) *CommunityHandler {
	return &CommunityHandler{
		postSvc:    postSvc,
		commentSvc: commentSvc,
		useStore:   useStore,
	}
}

func (s *CommunityHandler) Posts(c *gin.Context) {
	if !s.useStore {
		replyFixture(c, fixture.CommunityPosts)
		return
	}
	q, ok := bindQuery(c)
	if !ok {
		return
	}
	q.Status = consts.PostStatusPublished
	page, err := s.postSvc.ListPosts(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

func (s *CommunityHandler) CreatePost(c *gin.Context) {
	if !s.useStore {
		replyFixture(c, fixture.CommunityPostCreate)
		return
	}
	var req dto.CreatePostDTO
	if !bindJSON(c, &req) {
		return
	}
	id, err := s.postSvc.CreatePost(c.Request.Context(), middleware.CurrentUserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "帖子发布成功", id)
}

func (s *CommunityHandler) PostDetail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !s.useStore {
		replyFixtureWith(c, fixture.CommunityPostDetail, "id", id)
		return
	}
	post, err := s.postSvc.ViewPost(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *CommunityHandler) Comments(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !s.useStore {
		replyFixture(c, fixture.CommunityComments)
		return
	}
	tree, err := s.commentSvc.ListTree(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tree)
}

func (s *CommunityHandler) CreateComment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !s.useStore {
		replyFixture(c, fixture.CommunityCommentCreate)
		return
	}
	var req dto.CreateCommentDTO
	if !bindJSON(c, &req) {
		return
	}
	commentID, err := s.commentSvc.AddComment(c.Request.Context(), id, middleware.CurrentUserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "评论发表成功", commentID)
}
