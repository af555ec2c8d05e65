package middleware

import (
	"Ronghua/internal/pkg/response"
	"Ronghua/internal/pkg/session"
	"Ronghua/internal/service"
	"errors"

	"github.com/gin-gonic/gin"
)

// AdminKey gin 上下文中当前管理员会话的 key
const AdminKey = "admin"

// AdminAuthMiddleware 校验管理员会话 Cookie，失败统一返回 401
func AdminAuthMiddleware(auth service.AdminAuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(cookieName)
		sess, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrUnauthorized) {
				response.Abort(c, service.KindUnauthorized, service.ErrUnauthorized.Error())
				return
			}
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(AdminKey, sess)
		c.Next()
	}
}

// CurrentAdmin 取出当前会话，未经过 AdminAuthMiddleware 时返回 nil
func CurrentAdmin(c *gin.Context) *session.Session {
	v, ok := c.Get(AdminKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*session.Session)
	return sess
}
