package handler

import (
	"Ronghua/internal/api/config"
	"Ronghua/internal/api/dto"
	"Ronghua/internal/pkg/response"
	"Ronghua/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// AdminHandler 后台各页面的聚合数据
type AdminHandler struct {
	statsSvc   service.StatsService
	contentSvc service.ContentService
	productSvc service.ProductService
	gameSvc    service.GameService
	settings   dto.SettingsDTO
}

func NewAdminHandler(statsSvc service.StatsService, contentSvc service.ContentService, productSvc service.ProductService,
	gameSvc service.GameService, settings dto.SettingsDTO) *AdminHandler {
	return &AdminHandler{
		statsSvc:   statsSvc,
		contentSvc: contentSvc,
		productSvc: productSvc,
		gameSvc:    gameSvc,
		settings:   settings,
	}
}

// NewSettings 系统设置页只展示配置，不含任何密钥
func NewSettings(cfg *config.Config) dto.SettingsDTO {
	return dto.SettingsDTO{
		AppName:           cfg.App.Name,
		Version:           cfg.App.Version,
		DatabaseDriver:    cfg.DB.Driver,
		SessionStore:      cfg.Session.Store,
		SessionTTLMinutes: cfg.Session.TTLMinutes,
		PublicAPIMode:     cfg.PublicAPI.Mode,
		AllowedOrigins:    cfg.CORS.AllowedOrigins,
		MaxFileSize:       cfg.Upload.MaxFileSize,
		AllowedExtensions: cfg.Upload.AllowedExtensions,
		AIEnabled:         cfg.LLM.Enabled,
		MediaEnabled:      cfg.MinIO.Enabled,
		OpLogEnabled:      cfg.Mongo.Enabled,
	}
}

func (s *AdminHandler) Dashboard(c *gin.Context) {
	data, err := s.statsSvc.Dashboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, data)
}

func (s *AdminHandler) Stats(c *gin.Context) {
	data, err := s.statsSvc.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, data)
}

func (s *AdminHandler) Content(c *gin.Context) {
	data, err := s.contentSvc.Overview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, data)
}

func (s *AdminHandler) Shop(c *gin.Context) {
	data, err := s.productSvc.Overview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, data)
}

func (s *AdminHandler) Community(c *gin.Context) {
	data, err := s.statsSvc.CommunityStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, data)
}

func (s *AdminHandler) Games(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		stats      *dto.GameStatsDTO
		challenges []dto.ChallengeDTO
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats, err = s.gameSvc.GameStats(gctx)
		return
	})
	g.Go(func() (err error) {
		challenges, err = s.gameSvc.ActiveChallenges(gctx)
		return
	})
	if err := g.Wait(); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{
		"stats":      stats,
		"challenges": challenges,
	})
}

func (s *AdminHandler) Settings(c *gin.Context) {
	response.Success(c, s.settings)
}
