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

// EncyclopediaHandler 前台百科，只展示已发布内容
type EncyclopediaHandler struct {
	contentSvc service.ContentService
	useStore   bool
}

func NewEncyclopediaHandler(contentSvc service.ContentService, useStore bool) *EncyclopediaHandler {
	return &EncyclopediaHandler{
		contentSvc: contentSvc,
		useStore:   useStore,
	}
}

func (s *EncyclopediaHandler) byCategory(c *gin.Context, category, fixtureName string) {
	if !s.useStore {
		replyFixture(c, fixtureName)
		return
	}
	q, ok := bindQuery(c)
	if !ok {
		return
	}
	page, err := s.contentSvc.PublishedByCategory(c.Request.Context(), category, q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

func (s *EncyclopediaHandler) History(c *gin.Context) {
	s.byCategory(c, service.CategoryHistory, fixture.EncyclopediaHistory)
}

func (s *EncyclopediaHandler) Crafts(c *gin.Context) {
	s.byCategory(c, service.CategoryCraft, fixture.EncyclopediaCrafts)
}

func (s *EncyclopediaHandler) Masters(c *gin.Context) {
	s.byCategory(c, service.CategoryMaster, fixture.EncyclopediaMasters)
}

// List 演示模式下返回历史分类的数据
func (s *EncyclopediaHandler) List(c *gin.Context) {
	if !s.useStore {
		replyFixture(c, fixture.EncyclopediaHistory)
		return
	}
	q, ok := bindQuery(c)
	if !ok {
		return
	}
	page, err := s.contentSvc.PublishedByCategory(c.Request.Context(), q.Category, q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

func (s *EncyclopediaHandler) Detail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !s.useStore {
		replyFixture(c, fixture.EncyclopediaHistory)
		return
	}
	item, err := s.contentSvc.ViewEncyclopedia(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, item)
}

type TutorialHandler struct {
	contentSvc service.ContentService
	useStore   bool
}

func NewTutorialHandler(contentSvc service.ContentService, useStore bool) *TutorialHandler {
	return &TutorialHandler{
		contentSvc: contentSvc,
		useStore:   useStore,
	}
}

func (s *TutorialHandler) List(c *gin.Context) {
	if !s.useStore {
		replyFixture(c, fixture.TutorialList)
		return
	}
	q, ok := bindQuery(c)
	if !ok {
		return
	}
	q.Status = consts.ContentStatusPublished
	page, err := s.contentSvc.ListTutorials(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

func (s *TutorialHandler) Detail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !s.useStore {
		replyFixtureWith(c, fixture.TutorialDetail, "id", id)
		return
	}
	item, err := s.contentSvc.ViewTutorial(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, item)
}

func (s *TutorialHandler) Progress(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !s.useStore {
		replyFixture(c, fixture.TutorialProgress)
		return
	}
	var req dto.ProgressDTO
	if !bindJSON(c, &req) {
		return
	}
	progress, err := s.contentSvc.SaveProgress(c.Request.Context(), middleware.CurrentUserID(c), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, "学习进度已更新", progress)
}
