package cache

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"recipe-quantity/internal/infrastructure/config"
	"recipe-quantity/internal/pkg/common"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// CacheManager 兩層快取：程序內記憶體 + 可選的共用 Store。
// nil 的 *CacheManager 視為已停用，所有方法都可安全呼叫。
type CacheManager struct {
	ttl    time.Duration
	memory *gocache.Cache
	shared Store
	stats  cacheStats
}

// cacheStats 緩存統計
type cacheStats struct {
	hits       atomic.Int64
	sharedHits atomic.Int64
	misses     atomic.Int64
	errors     atomic.Int64
}

// Stats 緩存統計快照
type Stats struct {
	Size       int     `json:"size"`
	Hits       int64   `json:"hits"`
	SharedHits int64   `json:"shared_hits"`
	Misses     int64   `json:"misses"`
	Errors     int64   `json:"errors"`
	HitRatio   float64 `json:"hit_ratio"`
	Shared     bool    `json:"shared"`
}

// NewManager 創建新的緩存管理器，快取停用時返回 nil
func NewManager(cfg *config.CacheConfig, shared Store) *CacheManager {
	if cfg == nil || !cfg.Enabled {
		common.LogInfo("Cache disabled")
		return nil
	}

	m := &CacheManager{
		ttl:    cfg.TTL,
		memory: gocache.New(cfg.TTL, cfg.CleanupInterval),
		shared: shared,
	}

	common.LogInfo("快取管理員已初始化",
		zap.Duration("ttl", cfg.TTL),
		zap.Duration("cleanup_interval", cfg.CleanupInterval),
		zap.Bool("shared_layer", shared != nil),
	)

	return m
}

// Get 依序查詢記憶體與共用層，共用層命中時回填記憶體
func (m *CacheManager) Get(ctx context.Context, namespace, key string) (string, error) {
	if m == nil {
		return "", common.ErrCacheDisabled
	}

	k := generateKey(namespace, key)
	if val, found := m.memory.Get(k); found {
		m.stats.hits.Add(1)
		common.LogCacheHit(namespace, "memory")
		return val.(string), nil
	}

	if m.shared != nil {
		val, err := m.shared.Get(ctx, k)
		switch {
		case err == nil:
			m.stats.hits.Add(1)
			m.stats.sharedHits.Add(1)
			m.memory.Set(k, val, gocache.DefaultExpiration)
			common.LogCacheHit(namespace, "shared")
			return val, nil
		case !errors.Is(err, common.ErrCacheMiss):
			m.stats.errors.Add(1)
			common.LogWarn("共用快取讀取失敗", zap.String("namespace", namespace), zap.Error(err))
		}
	}

	m.stats.misses.Add(1)
	common.LogCacheMiss(namespace)
	return "", common.ErrCacheMiss
}

// Set 設置緩存值，共用層失敗只記錄不影響記憶體層
func (m *CacheManager) Set(ctx context.Context, namespace, key, value string) error {
	if m == nil {
		return nil
	}

	k := generateKey(namespace, key)
	m.memory.Set(k, value, gocache.DefaultExpiration)

	if m.shared != nil {
		if err := m.shared.Set(ctx, k, value, m.ttl); err != nil {
			m.stats.errors.Add(1)
			common.LogWarn("共用快取寫入失敗", zap.String("namespace", namespace), zap.Error(err))
			return err
		}
	}
	return nil
}

// Delete 刪除緩存
func (m *CacheManager) Delete(ctx context.Context, namespace, key string) error {
	if m == nil {
		return nil
	}
	k := generateKey(namespace, key)
	m.memory.Delete(k)
	if m.shared != nil {
		return m.shared.Delete(ctx, k)
	}
	return nil
}

// Clear 清空記憶體層
func (m *CacheManager) Clear() {
	if m == nil {
		return
	}
	m.memory.Flush()
}

// generateKey 生成緩存鍵
func generateKey(namespace, key string) string {
	return namespace + ":" + common.HashString(key)
}

// GetStats 獲取緩存統計信息
func (m *CacheManager) GetStats() Stats {
	if m == nil {
		return Stats{}
	}
	hits := m.stats.hits.Load()
	misses := m.stats.misses.Load()
	s := Stats{
		Size:       m.memory.ItemCount(),
		Hits:       hits,
		SharedHits: m.stats.sharedHits.Load(),
		Misses:     misses,
		Errors:     m.stats.errors.Load(),
		Shared:     m.shared != nil,
	}
	if total := hits + misses; total > 0 {
		s.HitRatio = float64(hits) / float64(total)
	}
	return s
}

// Close 關閉緩存管理器
func (m *CacheManager) Close() error {
	if m == nil {
		return nil
	}
	m.memory.Flush()
	common.LogInfo("快取管理員已關閉",
		zap.Int64("hits", m.stats.hits.Load()),
		zap.Int64("misses", m.stats.misses.Load()),
	)
	if m.shared != nil {
		return m.shared.Close()
	}
	return nil
}
