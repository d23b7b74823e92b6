package recipe

import (
	"context"
	"errors"
	"fmt"

	"recipe-quantity/internal/core/cache"
	"recipe-quantity/internal/pkg/common"

	"go.uber.org/zap"
)

// Service 食材服務基礎結構，負責結果快取
type Service struct {
	cacheManager *cache.CacheManager
}

// NewService 創建新的基礎服務
func NewService(cacheManager *cache.CacheManager) *Service {
	return &Service{
		cacheManager: cacheManager,
	}
}

// getCacheKey 生成緩存鍵
func (s *Service) getCacheKey(v interface{}) (string, error) {
	key, err := common.ToJSON(v)
	if err != nil {
		return "", fmt.Errorf("failed to build cache key: %w", err)
	}
	return key, nil
}

// getFromCache 從緩存取出並解析結果，未命中返回 false
func (s *Service) getFromCache(ctx context.Context, namespace, key string, out interface{}) bool {
	if s.cacheManager == nil {
		return false
	}
	cached, err := s.cacheManager.Get(ctx, namespace, key)
	if err != nil {
		return false
	}
	if err := common.ParseJSON(cached, out); err != nil {
		common.LogWarn("快取內容無法解析，忽略", zap.String("namespace", namespace), zap.Error(err))
		return false
	}
	return true
}

// setToCache 將結果存入緩存，失敗只記錄
func (s *Service) setToCache(ctx context.Context, namespace, key string, v interface{}) {
	if s.cacheManager == nil {
		return
	}
	value, err := common.ToJSON(v)
	if err != nil {
		common.LogWarn("快取內容序列化失敗", zap.String("namespace", namespace), zap.Error(err))
		return
	}
	if err := s.cacheManager.Set(ctx, namespace, key, value); err != nil && !errors.Is(err, context.Canceled) {
		common.LogWarn("寫入快取失敗", zap.String("namespace", namespace), zap.Error(err))
	}
}
