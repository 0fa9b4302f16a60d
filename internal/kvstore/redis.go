package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultKeyPrefix = "gymquest||"
	keysSetSuffix    = "keys"
)

var _ Store = (*RedisStore)(nil)

// RedisStore keeps every key under a prefix and tracks the written keys in a set,
// so Clear only removes what this store wrote.
type RedisStore struct {
	redisClient *redis.Client
	prefix      string
}

func NewRedisStore(redisClient *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &RedisStore{
		redisClient: redisClient,
		prefix:      prefix,
	}
}

func (s *RedisStore) keysSetKey() string {
	return s.prefix + keysSetSuffix
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	cmd := s.redisClient.Get(ctx, s.prefix+key)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis get [%s]: %w", key, err)
	}
	return cmd.Val(), true, nil
}

// Set writes the value and tracks the key in one MULTI/EXEC, so Clear never misses a written key.
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	_, err := s.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.prefix+key, value, 0)
		pipe.SAdd(ctx, s.keysSetKey(), key)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis set [%s]: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	cmd := s.redisClient.SMembers(ctx, s.keysSetKey())
	if err := cmd.Err(); err != nil {
		return fmt.Errorf("redis list keys: %w", err)
	}

	keys := cmd.Val()
	if len(keys) == 0 {
		log.Debugln("kvstore: clear, no keys stored")
		return nil
	}

	toDelete := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		toDelete = append(toDelete, s.prefix+k)
	}
	toDelete = append(toDelete, s.keysSetKey())

	cmdDel := s.redisClient.Del(ctx, toDelete...)
	if err := cmdDel.Err(); err != nil {
		return fmt.Errorf("redis delete keys: %w", err)
	}

	log.Debugf("kvstore: cleared %d keys", len(keys))
	return nil
}
