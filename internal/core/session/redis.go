package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func redisKey(sid, key string) string { return "sess:" + sid + ":" + key }

func (s *RedisStore) Get(ctx context.Context, sid, key string, dest any) (bool, error) {
	val, err := s.rdb.Get(ctx, redisKey(sid, key)).Result()
	if err == redis.Nil {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(val), dest)
}

// Put 写入并刷新会话 TTL
func (s *RedisStore) Put(ctx context.Context, sid, key string, val any) error {
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, redisKey(sid, key), b, s.ttl).Err()
}

func (s *RedisStore) Forget(ctx context.Context, sid, key string) error {
	return s.rdb.Del(ctx, redisKey(sid, key)).Err()
}
