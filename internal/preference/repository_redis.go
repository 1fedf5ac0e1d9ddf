package preference

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "storefront:prefs:"

// incrementScript bumps a hash field, restarting anything that is not a
// non-negative integer at 0 first. HINCRBY alone rejects such values.
var incrementScript = redis.NewScript(`
local v = tonumber(redis.call("HGET", KEYS[1], ARGV[1]))
if not v or v < 0 or v ~= math.floor(v) then v = 0 end
v = v + 1
redis.call("HSET", KEYS[1], ARGV[1], tostring(v))
return v
`)

// RedisStore keeps one hash per visitor.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// NewRedisClient builds a client for addr. The caller owns Close.
func NewRedisClient(addr, password string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:       addr,
		Password:   password,
		DB:         0,
		MaxRetries: 1,
	})
}

func redisKey(visitorID string) string {
	return redisKeyPrefix + visitorID
}

func (s *RedisStore) Get(ctx context.Context, visitorID, key string) (string, bool, error) {
	v, err := s.client.HGet(ctx, redisKey(visitorID), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *RedisStore) GetMany(ctx context.Context, visitorID string, keys []string) (map[string]string, error) {
	out := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return out, nil
	}
	vals, err := s.client.HMGet(ctx, redisKey(visitorID), keys...).Result()
	if err != nil {
		return nil, err
	}
	for i, raw := range vals {
		if s, ok := raw.(string); ok {
			out[keys[i]] = s
		}
	}
	return out, nil
}

func (s *RedisStore) Set(ctx context.Context, visitorID, key, value string) error {
	return s.client.HSet(ctx, redisKey(visitorID), key, value).Err()
}

func (s *RedisStore) Increment(ctx context.Context, visitorID, key string) (int, error) {
	return incrementScript.Run(ctx, s.client, []string{redisKey(visitorID)}, key).Int()
}
