package handler

import (
	"Ronghua/internal/api/dto"
	"Ronghua/internal/pkg/response"
	"Ronghua/internal/service"

	"github.com/gin-gonic/gin"
)

// ContentHandler 后台百科与教程管理
type ContentHandler struct {
	contentSvc service.ContentService
}

func NewContentHandler(contentSvc service.ContentService) *ContentHandler {
	return &ContentHandler{
		contentSvc: contentSvc,
	}
}

func (s *ContentHandler) ListEncyclopedia(c *gin.Context) {
	q, ok := bindQuery(c)
	if !ok {
		return
	}
	page, err := s.contentSvc.ListEncyclopedia(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

func (s *ContentHandler) GetEncyclopedia(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	item, err := s.contentSvc.GetEncyclopedia(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, item)
}

func (s *ContentHandler) CreateEncyclopedia(c *gin.Context) {
	var req dto.EncyclopediaDTO
	if !bindJSON(c, &req) {
		return
	}
	id, err := s.contentSvc.CreateEncyclopedia(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "百科内容创建成功", id)
}

func (s *ContentHandler) UpdateEncyclopedia(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.EncyclopediaDTO
	if !bindJSON(c, &req) {
		return
	}
	if err := s.contentSvc.UpdateEncyclopedia(c.Request.Context(), id, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, "百科内容更新成功", nil)
}

func (s *ContentHandler) DeleteEncyclopedia(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.contentSvc.DeleteEncyclopedia(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, "百科内容删除成功", nil)
}

func (s *ContentHandler) ListTutorials(c *gin.Context) {
	q, ok := bindQuery(c)
	if !ok {
		return
	}
	page, err := s.contentSvc.ListTutorials(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

func (s *ContentHandler) GetTutorial(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	item, err := s.contentSvc.GetTutorial(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, item)
}

func (s *ContentHandler) CreateTutorial(c *gin.Context) {
	var req dto.TutorialDTO
	if !bindJSON(c, &req) {
		return
	}
	id, err := s.contentSvc.CreateTutorial(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "教程创建成功", id)
}

func (s *ContentHandler) UpdateTutorial(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.TutorialDTO
	if !bindJSON(c, &req) {
		return
	}
	if err := s.contentSvc.UpdateTutorial(c.Request.Context(), id, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, "教程更新成功", nil)
}

func (s *ContentHandler) DeleteTutorial(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.contentSvc.DeleteTutorial(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, "教程删除成功", nil)
}
