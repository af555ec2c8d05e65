package handler

import (
	"Ronghua/internal/api/dto"
	"Ronghua/internal/pkg/response"
	"Ronghua/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{
		userSvc: userSvc,
	}
}

func (s *UserHandler) List(c *gin.Context) {
	q, ok := bindQuery(c)
	if !ok {
		return
	}
	page, err := s.userSvc.ListUsers(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

func (s *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user, err := s.userSvc.GetUser(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserDTO
	if !bindJSON(c, &req) {
		return
	}
	id, err := s.userSvc.CreateUser(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "用户创建成功", id)
}

func (s *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateUserDTO
	if !bindJSON(c, &req) {
		return
	}
	if err := s.userSvc.UpdateUser(c.Request.Context(), id, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, "用户更新成功", nil)
}

func (s *UserHandler) ToggleStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	active, err := s.userSvc.ToggleStatus(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	msg := "用户已禁用"
	if active {
		msg = "用户已启用"
	}
	response.SuccessMsg(c, msg, gin.H{"is_active": active})
}

func (s *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.userSvc.DeleteUser(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, "用户删除成功", nil)
}
