package security

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims 前台用户 Token 携带的身份信息
type UserClaims struct {
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
