package handler

import (
	"Ronghua/internal/api/dto"
	"Ronghua/internal/api/fixture"
	"Ronghua/internal/api/middleware"
	"Ronghua/internal/pkg/response"
	"Ronghua/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler 前台用户注册登录，useStore 为 false 时返回演示数据
type AuthHandler struct {
	userSvc  service.UserService
	useStore bool
}

func NewAuthHandler(userSvc service.UserService, useStore bool) *AuthHandler {
	return &AuthHandler{
		userSvc:  userSvc,
		useStore: useStore,
	}
}

func (s *AuthHandler) Register(c *gin.Context) {
	if !s.useStore {
		replyFixture(c, fixture.AuthRegister)
		return
	}
	var req dto.RegisterDTO
	if !bindJSON(c, &req) {
		return
	}
	id, err := s.userSvc.Register(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, "注册成功", gin.H{"user_id": id})
}

func (s *AuthHandler) Login(c *gin.Context) {
	if !s.useStore {
		replyFixture(c, fixture.AuthLogin)
		return
	}
	var req dto.CredentialDTO
	if !bindJSON(c, &req) {
		return
	}
	token, err := s.userSvc.Login(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, "登录成功", token)
}

// SendCode 没有接入短信服务，两种模式都只回执
func (s *AuthHandler) SendCode(c *gin.Context) {
	replyFixture(c, fixture.AuthSendCode)
}

func (s *AuthHandler) Profile(c *gin.Context) {
	if !s.useStore {
		replyFixture(c, fixture.AuthProfile)
		return
	}
	profile, err := s.userSvc.GetProfile(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

func (s *AuthHandler) UpdateProfile(c *gin.Context) {
	if !s.useStore {
		replyFixture(c, fixture.AuthProfileUpdate)
		return
	}
	var req dto.UpdateProfileDTO
	if !bindJSON(c, &req) {
		return
	}
	if err := s.userSvc.UpdateProfile(c.Request.Context(), middleware.CurrentUserID(c), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, "用户信息更新成功", nil)
}
