package api

import (
	"Ronghua/internal/api/config"
	"Ronghua/internal/api/middleware"
	"Ronghua/internal/pkg/logger"
	"Ronghua/internal/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg *config.Config, group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(response.Recovery())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	logger.SetupGin(r, cfg.Logger)

	r.GET("/health", func(c *gin.Context) {
		response.Success(c, gin.H{
			"status":  "healthy",
			"app":     cfg.App.Name,
			"version": cfg.App.Version,
		})
	})

	setupAdmin(r, cfg, group)
	setupPublic(r, cfg, group)

	return r
}

func setupAdmin(r *gin.Engine, cfg *config.Config, group *HandlersGroup) {
	adminGroup := r.Group("/admin")
	{
		// 无需登录
		adminGroup.GET("/", group.AdminAuthHandler.Index)
		adminGroup.GET("/login", group.AdminAuthHandler.LoginPage)
		adminGroup.POST("/login", group.AdminAuthHandler.Login)
		adminGroup.GET("/logout", group.AdminAuthHandler.Logout)

		authGroup := adminGroup.Group("")
		authGroup.Use(middleware.AdminAuthMiddleware(group.AdminAuthService, cfg.Session.CookieName))
		authGroup.Use(middleware.OpLogMiddleware(group.OpLogService))
		{
			authGroup.GET("/dashboard", group.AdminHandler.Dashboard)
			authGroup.GET("/content", group.AdminHandler.Content)
			authGroup.GET("/shop", group.AdminHandler.Shop)
			authGroup.GET("/community", group.AdminHandler.Community)
			authGroup.GET("/games", group.AdminHandler.Games)
			authGroup.GET("/settings", group.AdminHandler.Settings)
			authGroup.GET("/stats", group.AdminHandler.Stats)

			authGroup.GET("/users", group.UserHandler.List)
			authGroup.POST("/users", group.UserHandler.Create)
			authGroup.GET("/users/:id", group.UserHandler.Get)
			authGroup.PUT("/users/:id", group.UserHandler.Update)
			authGroup.POST("/users/:id/status", group.UserHandler.ToggleStatus)
			authGroup.DELETE("/users/:id", group.UserHandler.Delete)
		}

		apiGroup := authGroup.Group("/api")
		{
			apiGroup.GET("/profile", group.AdminAuthHandler.Profile)
			apiGroup.GET("/stats", group.AdminHandler.Stats)

			apiGroup.GET("/encyclopedia", group.ContentHandler.ListEncyclopedia)
			apiGroup.POST("/encyclopedia", group.ContentHandler.CreateEncyclopedia)
			apiGroup.GET("/encyclopedia/:id", group.ContentHandler.GetEncyclopedia)
			apiGroup.PUT("/encyclopedia/:id", group.ContentHandler.UpdateEncyclopedia)
			apiGroup.DELETE("/encyclopedia/:id", group.ContentHandler.DeleteEncyclopedia)

			apiGroup.GET("/tutorials", group.ContentHandler.ListTutorials)
			apiGroup.POST("/tutorials", group.ContentHandler.CreateTutorial)
			apiGroup.GET("/tutorials/:id", group.ContentHandler.GetTutorial)
			apiGroup.PUT("/tutorials/:id", group.ContentHandler.UpdateTutorial)
			apiGroup.DELETE("/tutorials/:id", group.ContentHandler.DeleteTutorial)

			apiGroup.GET("/posts", group.PostHandler.List)
			apiGroup.GET("/posts/:id", group.PostHandler.Get)
			apiGroup.PUT("/posts/:id/status", group.PostHandler.UpdateStatus)
			apiGroup.DELETE("/posts/:id", group.PostHandler.Delete)
			apiGroup.GET("/posts/:id/comments", group.PostHandler.Comments)
			apiGroup.DELETE("/comments/:id", group.PostHandler.DeleteComment)

			apiGroup.GET("/products", group.ShopHandler.ListProducts)
			apiGroup.POST("/products", group.ShopHandler.CreateProduct)
			apiGroup.GET("/products/:id", group.ShopHandler.GetProduct)
			apiGroup.PUT("/products/:id", group.ShopHandler.UpdateProduct)
			apiGroup.DELETE("/products/:id", group.ShopHandler.DeleteProduct)

			apiGroup.GET("/orders", group.ShopHandler.ListOrders)
			apiGroup.POST("/orders", group.ShopHandler.CreateOrder)
			apiGroup.GET("/orders/:id", group.ShopHandler.GetOrder)
			apiGroup.PUT("/orders/:id/status", group.ShopHandler.UpdateOrderStatus)
			apiGroup.DELETE("/orders/:id", group.ShopHandler.DeleteOrder)

			apiGroup.POST("/media/upload", group.MediaHandler.Upload)
			apiGroup.GET("/op-logs", group.OpLogHandler.List)
		}
	}
}

func setupPublic(r *gin.Engine, cfg *config.Config, group *HandlersGroup) {
	// 演示模式下的令牌是固定字符串，不做校验
	var requireUser gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	if cfg.PublicAPI.UseStore() {
		requireUser = middleware.AuthMiddleware(group.Tokens)
	}

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"message": "pong",
				"data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", group.AuthHandler.Register)
			authGroup.POST("/login", group.AuthHandler.Login)
			authGroup.POST("/send-code", group.AuthHandler.SendCode)
			authGroup.GET("/profile", requireUser, group.AuthHandler.Profile)
			authGroup.PUT("/profile", requireUser, group.AuthHandler.UpdateProfile)
		}

		encyclopediaGroup := apiGroup.Group("/encyclopedia")
		{
			encyclopediaGroup.GET("/history", group.EncyclopediaHandler.History)
			encyclopediaGroup.GET("/crafts", group.EncyclopediaHandler.Crafts)
			encyclopediaGroup.GET("/masters", group.EncyclopediaHandler.Masters)
			encyclopediaGroup.GET("/list", group.EncyclopediaHandler.List)
			encyclopediaGroup.GET("/:id", group.EncyclopediaHandler.Detail)
		}

		tutorialGroup := apiGroup.Group("/tutorial")
		{
			tutorialGroup.GET("/list", group.TutorialHandler.List)
			tutorialGroup.GET("/:id", group.TutorialHandler.Detail)
			tutorialGroup.POST("/:id/progress", requireUser, group.TutorialHandler.Progress)
		}

		communityGroup := apiGroup.Group("/community")
		{
			communityGroup.GET("/posts", group.CommunityHandler.Posts)
			communityGroup.POST("/posts", requireUser, group.CommunityHandler.CreatePost)
			communityGroup.GET("/posts/:id", group.CommunityHandler.PostDetail)
			communityGroup.GET("/posts/:id/comments", group.CommunityHandler.Comments)
			communityGroup.POST("/posts/:id/comments", requireUser, group.CommunityHandler.CreateComment)
		}

		shopGroup := apiGroup.Group("/shop")
		{
			shopGroup.GET("/products", group.StoreHandler.Products)
			shopGroup.GET("/products/:id", group.StoreHandler.ProductDetail)
			shopGroup.GET("/categories", group.StoreHandler.Categories)

			userGroup := shopGroup.Group("")
			userGroup.Use(requireUser)
			{
				userGroup.POST("/cart", group.StoreHandler.AddToCart)
				userGroup.GET("/cart", group.StoreHandler.Cart)
				userGroup.POST("/orders", group.StoreHandler.CreateOrder)
				userGroup.GET("/orders", group.StoreHandler.Orders)
			}
		}

		gameGroup := apiGroup.Group("/game")
		{
			gameGroup.GET("/user/profile", requireUser, group.GameHandler.Profile)
			gameGroup.POST("/checkin", group.GameHandler.Checkin)
			gameGroup.GET("/challenges", group.GameHandler.Challenges)
			gameGroup.POST("/challenges/:id/complete", group.GameHandler.CompleteChallenge)
			gameGroup.GET("/leaderboard", group.GameHandler.Leaderboard)
			gameGroup.POST("/ai/chat", group.GameHandler.Chat)
		}
	}
}
