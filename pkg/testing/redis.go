package testing

import (
	"context"
	"net"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
)

// RedisClient returns a client for integration tests, closed on cleanup.
// GYMQUEST_TEST_REDIS_ADDR points it at a running redis; without it a
// throwaway redis container is started.
func RedisClient(t *testing.T) (context.Context, *redis.Client) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	t.Cleanup(cancel)

	addr := os.Getenv("GYMQUEST_TEST_REDIS_ADDR")
	if addr == "" {
		addr = startRedisContainer(t)
	}
	t.Logf("using redis at [%s]", addr)

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("GYMQUEST_TEST_REDIS_PASS"),
	})
	t.Cleanup(func() {
		_ = rdb.Close()
	})

	require.NoError(t, retry(ctx, func() error {
		return rdb.Ping(ctx).Err()
	}))
	return ctx, rdb
}

func startRedisContainer(t *testing.T) string {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)
	require.NoError(t, pool.Client.Ping())

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("purge redis container: %s", err)
		}
	})

	return net.JoinHostPort("localhost", resource.GetPort("6379/tcp"))
}

func retry(ctx context.Context, op func() error) error {
	for {
		err := op()
		if err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return err
		case <-time.After(250 * time.Millisecond):
		}
	}
}
