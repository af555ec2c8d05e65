package api

import (
	"Ronghua/internal/api/handler"
	"Ronghua/internal/pkg/security"
	"Ronghua/internal/service"
)

// HandlersGroup 封装了所有已初始化的 Handler 实例及路由所需的中间件依赖
type HandlersGroup struct {
	AdminAuthHandler *handler.AdminAuthHandler
	AdminHandler     *handler.AdminHandler
	UserHandler      *handler.UserHandler
	ContentHandler   *handler.ContentHandler
	PostHandler      *handler.PostHandler
	ShopHandler      *handler.ShopHandler
	MediaHandler     *handler.MediaHandler
	OpLogHandler     *handler.OpLogHandler

	AuthHandler         *handler.AuthHandler
	EncyclopediaHandler *handler.EncyclopediaHandler
	TutorialHandler     *handler.TutorialHandler
	CommunityHandler    *handler.CommunityHandler
	StoreHandler        *handler.StoreHandler
	GameHandler         *handler.GameHandler

	AdminAuthService service.AdminAuthService
	OpLogService     service.OpLogService
	Tokens           *security.TokenManager
}
