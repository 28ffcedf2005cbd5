// Package redis opens the go-redis client shared by the session store, the
// rate limiter and the readiness probe.
package redis

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yalgashev/survey/config"
)

var ErrNoAddr = errors.New("redis addr is empty")

func seconds(n, fallback int) time.Duration {
	if n <= 0 {
		n = fallback
	}
	return time.Duration(n) * time.Second
}

// Options maps the central config onto go-redis options, filling pool and
// timeout defaults for zero values.
func Options(cfg config.RedisConfig) *goredis.Options {
	return &goredis.Options{
		Addr:         cfg.Addr,
		Username:     cfg.Username,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cmp.Or(cfg.PoolSize, 10),
		MinIdleConns: cmp.Or(cfg.MinIdleConns, 2),
		DialTimeout:  seconds(cfg.DialTimeoutSeconds, 5),
		ReadTimeout:  seconds(cfg.ReadTimeoutSeconds, 3),
		WriteTimeout: seconds(cfg.WriteTimeoutSeconds, 3),
	}
}

// Open connects and pings once so a bad address fails at startup.
func Open(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	if cfg.Addr == "" {
		return nil, ErrNoAddr
	}

	rdb := goredis.NewClient(Options(cfg))
	if err := Ping(ctx, rdb); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

// Ping is used by Open and by the readiness probe.
func Ping(ctx context.Context, rdb goredis.UniversalClient) error {
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}
