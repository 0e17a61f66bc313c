// Package main 小说创作助手 API 服务入口
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"novel-maker-api/internal/application/story"
	"novel-maker-api/internal/config"
	"novel-maker-api/internal/infrastructure/llm"
	"novel-maker-api/internal/infrastructure/persistence/sqlite"
	"novel-maker-api/internal/interfaces/http/router"
	obseino "novel-maker-api/internal/observability/eino"
	"novel-maker-api/internal/store"
	"novel-maker-api/pkg/logger"
)

// Version 版本信息，构建时注入
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// 加载 .env 文件（如果存在）
	_ = godotenv.Load()

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化日志
	logger.Init(
		cfg.Observability.Logging.Level,
		cfg.Observability.Logging.Format,
	)

	ctx := context.Background()
	log := logger.FromContext(ctx)
	log.Info("starting api-server",
		"version", Version,
		"build_time", BuildTime,
		"env", cfg.App.Env,
	)

	// 初始化 SQLite 快照存储
	dbClient, err := sqlite.NewClient(&cfg.Storage.SQLite)
	if err != nil {
		logger.Fatal(ctx, "failed to open sqlite database", err)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			log.Error("failed to close database", "error", err)
		}
	}()

	// 水合项目存储
	projectStore := store.New(sqlite.NewSnapshotRepo(dbClient))
	if err := projectStore.Load(ctx); err != nil {
		logger.Fatal(ctx, "failed to load project store", err)
	}

	// 组装生成链路
	obseino.Init()
	factory := llm.NewEinoFactory(cfg)
	gateway := llm.NewGateway(cfg, factory, projectStore)
	storyService := story.NewService(projectStore, gateway)

	// 路由
	r := router.New(cfg, projectStore, storyService, dbClient)

	// 创建 HTTP 服务器
	addr := fmt.Sprintf("%s:%d", cfg.Server.HTTP.Host, cfg.Server.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.HTTP.ReadTimeout,
		WriteTimeout: cfg.Server.HTTP.WriteTimeout,
		IdleTimeout:  cfg.Server.HTTP.IdleTimeout,
	}

	// 启动服务器
	go func() {
		log.Info("http server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", "error", err)
			os.Exit(1)
		}
	}()

	// 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// 优雅关闭
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}

	// 退出前把内存状态落盘一次
	if err := projectStore.Flush(shutdownCtx); err != nil {
		log.Error("failed to flush project store", "error", err)
	}

	log.Info("server exited")
}
