package middleware

import (
	"Ronghua/internal/pkg/response"
	"Ronghua/internal/pkg/security"
	"Ronghua/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

const UserIDKey = "user_id"

// AuthMiddleware 负责验证 JWT 并将用户身份信息注入 Context
func AuthMiddleware(tokens *security.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			response.Abort(c, service.KindUnauthorized, "Token 缺失或格式错误")
			return
		}

		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			response.Abort(c, service.KindUnauthorized, "Token 无效或已过期")
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	return token, token != ""
}

// CurrentUserID 未登录时为 0
func CurrentUserID(c *gin.Context) uint64 {
	return c.GetUint64(UserIDKey)
}
