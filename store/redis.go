// Package store provides persistent MemoryStore backends for the echoai
// engine.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	echoai "github.com/echoai-project/echoai-sdk-go"
)

// RedisStore implements echoai.MemoryStore on Redis. Keys are namespaced as
// "{prefix}:{namespace}:{key}" for KV entries and
// "{prefix}:{namespace}:list:{key}" for lists.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
	ctx    context.Context
}

var _ echoai.MemoryStore = (*RedisStore)(nil)

// Config configures the Redis store.
type Config struct {
	Prefix string        // key prefix, default "echoai"
	TTL    time.Duration // TTL for KV entries, 0 = no expiry
}

// NewRedisStore creates a MemoryStore backed by an existing Redis client.
func NewRedisStore(client redis.UniversalClient, config ...Config) *RedisStore {
	cfg := Config{Prefix: "echoai"}
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "echoai"
	}
	return &RedisStore{
		client: client,
		prefix: cfg.Prefix,
		ttl:    cfg.TTL,
		ctx:    context.Background(),
	}
}

func (r *RedisStore) kvKey(namespace, key string) string {
	return fmt.Sprintf("%s:%s:%s", r.prefix, namespace, key)
}

func (r *RedisStore) listKey(namespace, key string) string {
	return fmt.Sprintf("%s:%s:list:%s", r.prefix, namespace, key)
}

func (r *RedisStore) Get(namespace, key string) (string, error) {
	val, err := r.client.Get(r.ctx, r.kvKey(namespace, key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return val, nil
}

func (r *RedisStore) Set(namespace, key, value string) error {
	return r.client.Set(r.ctx, r.kvKey(namespace, key), value, r.ttl).Err()
}

func (r *RedisStore) Delete(namespace, key string) error {
	return r.client.Del(r.ctx, r.kvKey(namespace, key)).Err()
}

func (r *RedisStore) Append(namespace, key, value string) error {
	return r.client.RPush(r.ctx, r.listKey(namespace, key), value).Err()
}

func (r *RedisStore) GetList(namespace, key string, limit int) ([]string, error) {
	var start int64
	if limit > 0 {
		start = int64(-limit)
	}
	return r.client.LRange(r.ctx, r.listKey(namespace, key), start, -1).Result()
}

func (r *RedisStore) TrimList(namespace, key string, maxSize int) error {
	return r.client.LTrim(r.ctx, r.listKey(namespace, key), int64(-maxSize), -1).Err()
}

func (r *RedisStore) ListLength(namespace, key string) (int, error) {
	n, err := r.client.LLen(r.ctx, r.listKey(namespace, key)).Result()
	return int(n), err
}
