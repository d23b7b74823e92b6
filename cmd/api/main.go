package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recipe-quantity/internal/api"
	"recipe-quantity/internal/core/cache"
	"recipe-quantity/internal/infrastructure/config"
	"recipe-quantity/internal/pkg/common"

	"go.uber.org/zap"
)

func main() {
	// 載入設定（含 .env）
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化 logger（需在載入 config 後）
	if err := common.InitLogger(cfg.LogLevel, cfg.LogFile); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("載入設定",
		zap.Int("port", cfg.Server.Port),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.String("redis_addr", cfg.Cache.Redis.Addr),
		zap.Float64("max_multiplier", cfg.Scaling.MaxMultiplier),
	)

	// 初始化快取
	cacheManager := newCacheManager(cfg)
	defer cacheManager.Close()

	router := api.SetupRouter(cfg, cacheManager)

	// 設置 HTTP 服務器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 啟動服務器
	go func() {
		common.LogInfo("啟動應用",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Bool("debug", cfg.App.Debug),
			zap.String("addr", srv.Addr),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			common.LogFatal("Failed to start server", zap.Error(err))
		}
	}()

	// 等待中斷信號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	// 設置關閉超時
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown", zap.Error(err))
	}

	common.LogInfo("Server exited")
}

// newCacheManager 建立快取；Redis 連線失敗時退回只用記憶體層
func newCacheManager(cfg *config.Config) *cache.CacheManager {
	if !cfg.Cache.Enabled {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var shared cache.Store
	store, err := cache.NewRedisStore(ctx, &cfg.Cache.Redis)
	switch {
	case err != nil:
		common.LogWarn("Redis 無法連線，只使用記憶體快取",
			zap.String("addr", cfg.Cache.Redis.Addr),
			zap.Error(err),
		)
	case store != nil:
		shared = store
	}

	return cache.NewManager(&cfg.Cache, shared)
}
