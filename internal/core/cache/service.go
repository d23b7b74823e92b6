package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"recipe-quantity/internal/infrastructure/config"
	"recipe-quantity/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"github.com/vmihailenco/msgpack/v5"
)

// Store 共用快取層
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// entry Redis 中儲存的快取條目
type entry struct {
	Value     string `msgpack:"v"`
	CreatedAt int64  `msgpack:"t"`
}

func encodeEntry(value string, now time.Time) ([]byte, error) {
	return msgpack.Marshal(&entry{Value: value, CreatedAt: now.UnixMilli()})
}

func decodeEntry(data []byte) (*entry, error) {
	var e entry
	if err := msgpack.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// RedisStore 以 Redis 實作的共用快取層，條目以 msgpack 編碼
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore 建立 Redis 快取層。未設定位址時返回 nil, nil。
func NewRedisStore(ctx context.Context, cfg *config.RedisConfig) (*RedisStore, error) {
	if cfg == nil || cfg.Addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// 測試連接
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{client: client, prefix: cfg.Prefix}, nil
}

// Get 獲取緩存
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", common.ErrCacheMiss
		}
		return "", fmt.Errorf("failed to get cache: %w", err)
	}

	e, err := decodeEntry(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode cache entry: %w", err)
	}
	return e.Value, nil
}

// Set 設置緩存
func (s *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	data, err := encodeEntry(value, time.Now())
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Delete 刪除緩存
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}

// Close 關閉連接
func (s *RedisStore) Close() error {
	return s.client.Close()
}
