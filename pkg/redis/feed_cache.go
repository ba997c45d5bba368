package redis

import (
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 信息流缓存key
const FeedCacheKey = "rvconnect:feed"

// 缓存TTL（从配置注入，见SetFeedCacheTTL）
var feedCacheTTL = 30 * time.Second

// SetFeedCacheTTL 设置信息流缓存TTL
func SetFeedCacheTTL(ttl time.Duration) {
	if ttl > 0 {
		feedCacheTTL = ttl
	}
}

// CacheFeed 缓存渲染好的信息流JSON
// 缓存是尽力而为的：调用方忽略返回的错误
func CacheFeed(payload []byte) error {
	if client == nil {
		return fmt.Errorf("redis客户端未初始化")
	}
	return client.Set(ctx, FeedCacheKey, payload, feedCacheTTL).Err()
}

// GetCachedFeed 获取缓存的信息流JSON
// 缓存未命中返回(nil, nil)
func GetCachedFeed() ([]byte, error) {
	if client == nil {
		return nil, fmt.Errorf("redis客户端未初始化")
	}
	data, err := client.Get(ctx, FeedCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// InvalidateFeed 帖子发生变更后使信息流缓存失效
func InvalidateFeed() error {
	if client == nil {
		return fmt.Errorf("redis客户端未初始化")
	}
	return client.Del(ctx, FeedCacheKey).Err()
}
