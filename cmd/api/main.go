package main

import (
	"Ronghua/internal/api/config"
	"Ronghua/internal/pkg/cron"
	"Ronghua/internal/pkg/database"
	"Ronghua/internal/pkg/llm"
	"Ronghua/internal/pkg/logger"
	"Ronghua/internal/pkg/minio"
	"Ronghua/internal/pkg/mongo"
	"Ronghua/internal/pkg/redis"
	"Ronghua/internal/wire"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

func main() {
	// 加载配置
	if err := config.LoadConfig(); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		panic(err)
	}
	cfg := config.Cfg

	// 初始化日志
	logger.InitLogger(cfg.Logger)
	gin.SetMode(cfg.Server.Mode)

	// 数据库连接
	dbCfg := cfg.DB
	db, err := database.NewGormDB(&dbCfg)
	if err != nil {
		log.Error("Fatal error: failed to create database connection", "err", err)
		panic(err)
	}

	var infra wire.Infra

	// Redis 连接，仅在会话存放于 redis 时需要
	if cfg.Session.Store == "redis" {
		infra.Redis, err = redis.InitRedis(cfg.Redis)
		if err != nil {
			log.Error("Fatal error: failed to create redis connection", "err", err)
			panic(err)
		}
		defer func() { _ = infra.Redis.Close() }()
	}

	// Mongo 连接，操作日志
	if cfg.Mongo.Enabled {
		infra.Mongo, err = mongo.InitMongo(cfg.Mongo)
		if err != nil {
			log.Error("Fatal error: failed to create mongo connection", "err", err)
			panic(err)
		}
		defer func() { _ = infra.Mongo.Client().Disconnect(context.Background()) }()
	}

	// MinIO 连接
	if cfg.MinIO.Enabled {
		infra.Storage, err = minio.NewStorage(cfg.MinIO)
		if err != nil {
			log.Error("Fatal error: failed to initialize MinIO", "err", err)
			panic(err)
		}
	}

	// llm 模型初始化
	if cfg.LLM.Enabled {
		infra.LLM, err = llm.NewClient(cfg.LLM)
		if err != nil {
			log.Error("Fatal error: failed to initialize llm model", "err", err)
			panic(err)
		}
	}

	// 依赖注入
	app, err := wire.BuildApplication(db, cfg, infra)
	if err != nil {
		log.Error("Fatal error: failed to create application", "err", err)
		panic(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	// 定时任务
	err = cron.InitCron(app.CronMgr)
	if err != nil {
		log.Error("Fatal error: failed to start cron jobs", "err", err)
		panic(err)
	}
	g.Go(func() error {
		<-ctx.Done()
		log.Info("Cron Jobs stopping...")
		app.CronMgr.Stop()
		return nil
	})

	// HTTP 服务器
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	g.Go(func() error {
		log.Info("HTTP Server starting...", "addr", srv.Addr, "public_api_mode", cfg.PublicAPI.Mode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// 优雅退出
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case <-ctx.Done():
		case sig := <-quit:
			log.Info("Received signal, shutting down...", "signal", sig)
			cancel()
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP Server shutdown failed", "err", err)
		}
		return nil
	})

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("App exited with error", "err", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("App exited successfully.")
}
