package handler

import (
	"Ronghua/internal/api/config"
	"Ronghua/internal/api/dto"
	"Ronghua/internal/api/middleware"
	"Ronghua/internal/pkg/consts"
	"Ronghua/internal/pkg/response"
	"Ronghua/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	AdminLoginPath     = "/admin/login"
	AdminDashboardPath = "/admin/dashboard"
)

type AdminAuthHandler struct {
	authSvc service.AdminAuthService
	cookie  config.SessionConfig
}

func NewAdminAuthHandler(authSvc service.AdminAuthService, cookie config.SessionConfig) *AdminAuthHandler {
	return &AdminAuthHandler{
		authSvc: authSvc,
		cookie:  cookie,
	}
}

func (s *AdminAuthHandler) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, AdminLoginPath)
}

// LoginPage 没有模板渲染，只描述登录表单
func (s *AdminAuthHandler) LoginPage(c *gin.Context) {
	response.SuccessMsg(c, "请登录管理后台", gin.H{
		"action": AdminLoginPath,
		"method": http.MethodPost,
		"fields": []string{"username", "password"},
	})
}

func (s *AdminAuthHandler) Login(c *gin.Context) {
	var req dto.AdminLoginDTO
	if err := c.ShouldBind(&req); err != nil {
		response.BindError(c, err)
		return
	}

	sess, err := s.authSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cookie.CookieName, sess.Token, s.cookie.TTLMinutes*60, "/", "", s.cookie.Secure, true)
	c.Redirect(http.StatusFound, AdminDashboardPath)
}

func (s *AdminAuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(s.cookie.CookieName)
	if err := s.authSvc.Logout(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}
	c.SetCookie(s.cookie.CookieName, "", -1, "/", "", s.cookie.Secure, true)
	c.Redirect(http.StatusFound, AdminLoginPath)
}

// Profile 当前登录的管理员
func (s *AdminAuthHandler) Profile(c *gin.Context) {
	sess := middleware.CurrentAdmin(c)
	if sess == nil {
		response.Fail(c, response.Unauthorized, service.KindUnauthorized.Code, service.ErrUnauthorized.Error())
		return
	}
	response.Success(c, dto.AdminProfileDTO{
		Username: sess.Username,
		Role:     sess.Role,
		LoginAt:  sess.LoginAt.Format(consts.TimeLayout),
	})
}
