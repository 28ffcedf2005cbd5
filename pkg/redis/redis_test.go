package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yalgashev/survey/config"
)

func TestOptions(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.RedisConfig
		pool     int
		idle     int
		dial     time.Duration
		readWait time.Duration
	}{
		{"defaults", config.RedisConfig{Addr: "localhost:6379"}, 10, 2, 5 * time.Second, 3 * time.Second},
		{"explicit", config.RedisConfig{Addr: "cache:6379", PoolSize: 40, MinIdleConns: 8, DialTimeoutSeconds: 1, ReadTimeoutSeconds: 9}, 40, 8, time.Second, 9 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Options(tt.cfg)
			if o.Addr != tt.cfg.Addr {
				t.Errorf("Addr = %q", o.Addr)
			}
			if o.PoolSize != tt.pool || o.MinIdleConns != tt.idle {
				t.Errorf("pool = %d/%d, want %d/%d", o.PoolSize, o.MinIdleConns, tt.pool, tt.idle)
			}
			if o.DialTimeout != tt.dial || o.ReadTimeout != tt.readWait {
				t.Errorf("timeouts = %v/%v", o.DialTimeout, o.ReadTimeout)
			}
		})
	}
}

func TestOpenRequiresAddr(t *testing.T) {
	if _, err := Open(context.Background(), config.RedisConfig{}); !errors.Is(err, ErrNoAddr) {
		t.Fatalf("err = %v, want ErrNoAddr", err)
	}
}
