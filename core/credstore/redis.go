package credstore

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/redis/go-redis/v9"
)

// defaultRedisPrefix namespaces store keys within a shared Redis instance.
const defaultRedisPrefix = "credstore:"

// RedisStore implements Store on top of Redis. Expiry uses Redis native
// TTLs alongside the envelope timestamp, so entries vanish server-side
// even if never read again. Suitable when several tools on one machine
// share a credential cache.
type RedisStore struct {
	settings

	client redis.UniversalClient
	prefix string
}

// RedisOption configures a RedisStore beyond the shared store options.
type RedisOption func(*RedisStore)

// WithRedisPrefix overrides the key prefix. Default is "credstore:".
func WithRedisPrefix(prefix string) RedisOption {
	return func(rs *RedisStore) {
		if prefix != "" {
			rs.prefix = prefix
		}
	}
}

// NewRedisStore creates a Redis-backed store using the given client.
func NewRedisStore(client redis.UniversalClient, opts []Option, redisOpts ...RedisOption) *RedisStore {
	rs := &RedisStore{
		settings: newSettings(opts),
		client:   client,
		prefix:   defaultRedisPrefix,
	}
	for _, opt := range redisOpts {
		opt(rs)
	}
	return rs
}

func (rs *RedisStore) Put(ctx context.Context, key string, value any, opts ...PutOption) {
	var po putOptions
	for _, opt := range opts {
		opt(&po)
	}

	env, err := rs.seal(value, opts)
	if err != nil {
		rs.fail(ctx, "put", key, err)
		return
	}

	data, err := json.Marshal(env)
	if err != nil {
		rs.fail(ctx, "put", key, err)
		return
	}

	if err := rs.client.Set(ctx, rs.prefix+key, data, po.ttl).Err(); err != nil {
		rs.fail(ctx, "put", key, err)
	}
}

func (rs *RedisStore) Get(ctx context.Context, key string, dest any) bool {
	data, err := rs.client.Get(ctx, rs.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			rs.fail(ctx, "get", key, err)
		}
		return false
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		rs.fail(ctx, "get", key, err)
		return false
	}

	// The envelope expiry matters when the store runs with an injected
	// clock; Redis TTLs only follow wall time.
	if env.expired(rs.clock()) {
		rs.Remove(ctx, key)
		return false
	}

	if err := json.Unmarshal(env.Value, dest); err != nil {
		rs.fail(ctx, "get", key, err)
		return false
	}
	return true
}

func (rs *RedisStore) Remove(ctx context.Context, key string) {
	if err := rs.client.Del(ctx, rs.prefix+key).Err(); err != nil {
		rs.fail(ctx, "remove", key, err)
	}
}

func (rs *RedisStore) Keys(ctx context.Context) []string {
	var keys []string
	iter := rs.client.Scan(ctx, 0, rs.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), rs.prefix))
	}
	if err := iter.Err(); err != nil {
		rs.fail(ctx, "keys", "", err)
	}
	return keys
}
