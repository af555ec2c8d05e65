package handler

import (
	"Ronghua/internal/api/dto"
	"Ronghua/internal/pkg/response"
	"Ronghua/internal/service"

	"github.com/gin-gonic/gin"
)

// PostHandler 后台帖子审核与评论管理
type PostHandler struct {
	postSvc    service.PostService
	commentSvc service.CommentService
}

func NewPostHandler(postSvc service.PostService, commentSvc service.CommentService) *PostHandler {
	return &PostHandler{
		postSvc:    postSvc,
		commentSvc: commentSvc,
	}
}

func (s *PostHandler) List(c *gin.Context) {
	q, ok := bindQuery(c)
	if !ok {
		return
	}
	page, err := s.postSvc.ListPosts(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

func (s *PostHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	post, err := s.postSvc.GetPost(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.StatusDTO
	if !bindJSON(c, &req) {
		return
	}
	if err := s.postSvc.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, "帖子状态已更新", nil)
}

func (s *PostHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.postSvc.DeletePost(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, "帖子删除成功", nil)
}

func (s *PostHandler) Comments(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	tree, err := s.commentSvc.ListTree(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tree)
}

func (s *PostHandler) DeleteComment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	n, err := s.commentSvc.DeleteComment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, "评论删除成功", gin.H{"deleted": n})
}
