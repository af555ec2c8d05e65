package wire

import (
	"Ronghua/internal/api"
	"Ronghua/internal/api/config"
	"Ronghua/internal/api/handler"
	"Ronghua/internal/job"
	"Ronghua/internal/pkg/cron"
	"Ronghua/internal/pkg/llm"
	"Ronghua/internal/pkg/minio"
	"Ronghua/internal/pkg/mongo"
	"Ronghua/internal/pkg/security"
	"Ronghua/internal/pkg/session"
	"Ronghua/internal/repository"
	"Ronghua/internal/service"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// Infra 可选的外部依赖，未启用的保持 nil
type Infra struct {
	Redis   *redis.Client
	Mongo   *mongodrv.Database
	Storage *minio.Storage
	LLM     *llm.Client
}

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config, infra Infra) (*ApplicationContainer, error) {
	// 会话存储
	var (
		store    session.Store
		sweepJob *job.SessionSweepJob
	)
	switch cfg.Session.Store {
	case "redis":
		if infra.Redis == nil {
			return nil, errors.New("session.store is redis but redis client is not initialized")
		}
		store = session.NewRedisStore(infra.Redis)
	default:
		memory := session.NewMemoryStore()
		store = memory
		sweepJob = job.NewSessionSweepJob(memory)
	}

	// 可选组件，接口变量必须保持无类型 nil
	var chatter service.Chatter
	if infra.LLM != nil {
		chatter = infra.LLM
	}
	var objectStore service.ObjectStore
	if infra.Storage != nil {
		objectStore = infra.Storage
	}
	var opLogRepo mongo.OpLogRepo
	if infra.Mongo != nil {
		opLogRepo = mongo.NewOpLogRepo(infra.Mongo)
	}

	tokens := security.NewTokenManager(cfg.JWT)

	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	encyclopediaRepo := repository.NewEncyclopediaRepo(db)
	tutorialRepo := repository.NewTutorialRepo(db)
	productRepo := repository.NewProductRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	cartRepo := repository.NewCartRepo(db)
	gameRepo := repository.NewGameRepo(db)
	txManager := repository.NewTxManager(db)

	adminAuthService := service.NewAdminAuthService(store, cfg.Admin, cfg.Session)
	userService := service.NewUserService(userRepo, postRepo, commentRepo, orderRepo, tokens)
	postService := service.NewPostService(postRepo, userRepo)
	commentService := service.NewCommentService(commentRepo, postRepo, userRepo)
	contentService := service.NewContentService(encyclopediaRepo, tutorialRepo)
	productService := service.NewProductService(productRepo, orderRepo)
	orderService := service.NewOrderService(orderRepo, txManager)
	cartService := service.NewCartService(cartRepo, productRepo)
	gameService := service.NewGameService(gameRepo, userRepo)
	statsService := service.NewStatsService(userRepo, postRepo, commentRepo, encyclopediaRepo, tutorialRepo, productRepo, orderRepo)
	chatService := service.NewChatService(chatter)
	mediaService := service.NewMediaService(objectStore, cfg.Upload, cfg.MinIO.ThumbnailWidth)
	opLogService := service.NewOpLogService(opLogRepo)

	useStore := cfg.PublicAPI.UseStore()
	handlers := &api.HandlersGroup{
		AdminAuthHandler: handler.NewAdminAuthHandler(adminAuthService, cfg.Session),
		AdminHandler:     handler.NewAdminHandler(statsService, contentService, productService, gameService, handler.NewSettings(cfg)),
		UserHandler:      handler.NewUserHandler(userService),
		ContentHandler:   handler.NewContentHandler(contentService),
		PostHandler:      handler.NewPostHandler(postService, commentService),
		ShopHandler:      handler.NewShopHandler(productService, orderService),
		MediaHandler:     handler.NewMediaHandler(mediaService),
		OpLogHandler:     handler.NewOpLogHandler(opLogService),

		AuthHandler:         handler.NewAuthHandler(userService, useStore),
		EncyclopediaHandler: handler.NewEncyclopediaHandler(contentService, useStore),
		TutorialHandler:     handler.NewTutorialHandler(contentService, useStore),
		CommunityHandler:    handler.NewCommunityHandler(postService, commentService, useStore),
		StoreHandler:        handler.NewStoreHandler(productService, cartService, orderService, useStore),
		GameHandler:         handler.NewGameHandler(gameService, chatService, useStore),

		AdminAuthService: adminAuthService,
		OpLogService:     opLogService,
		Tokens:           tokens,
	}

	router := api.SetupRouter(cfg, handlers)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cron.NewCronManager(sweepJob),
	}, nil
}
