package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/yalgashev/survey/internal/evaluation"
)

func newRedisStore(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *RedisStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, NewRedisStore(client, ttl)
}

func TestRedisStore_Defaults(t *testing.T) {
	s := NewRedisStore(nil, 0)
	if s.ttl != DefaultTTL {
		t.Errorf("ttl = %v, want %v", s.ttl, DefaultTTL)
	}

	s = NewRedisStore(nil, 15*time.Minute)
	if s.ttl != 15*time.Minute {
		t.Errorf("ttl = %v, want 15m", s.ttl)
	}

	if got := key("42"); got != "evaluation:session:42" {
		t.Errorf("key() = %q", got)
	}
}

func TestRedisStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	mr, store := newRedisStore(t, 20*time.Minute)

	p := evaluation.NewProgress(uuid.New(), evaluation.Uzbek)
	p.ProfessorIndex = 3
	p.Stage = evaluation.StageInternship
	if err := store.Save(ctx, "abc", p); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if !mr.Exists("evaluation:session:abc") {
		t.Fatal("expected the session under its prefixed key")
	}
	if ttl := mr.TTL("evaluation:session:abc"); ttl != 20*time.Minute {
		t.Errorf("TTL = %v, want 20m", ttl)
	}

	got, err := store.Load(ctx, "abc")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *got != *p {
		t.Errorf("Load() = %+v, want %+v", got, p)
	}

	if err := store.Delete(ctx, "abc"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if mr.Exists("evaluation:session:abc") {
		t.Error("session still present after Delete")
	}
	if _, err := store.Load(ctx, "abc"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load after Delete = %v, want ErrNotFound", err)
	}
}

func TestRedisStore_SaveRestartsTTL(t *testing.T) {
	ctx := context.Background()
	mr, store := newRedisStore(t, time.Minute)

	p := evaluation.NewProgress(uuid.New(), evaluation.English)
	if err := store.Save(ctx, "idle", p); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	mr.FastForward(40 * time.Second)
	p.ProfessorIndex = 1
	if err := store.Save(ctx, "idle", p); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	mr.FastForward(40 * time.Second)

	if _, err := store.Load(ctx, "idle"); err != nil {
		t.Fatalf("session expired despite the second Save: %v", err)
	}

	mr.FastForward(time.Minute)
	if _, err := store.Load(ctx, "idle"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load after expiry = %v, want ErrNotFound", err)
	}
}

func TestRedisStore_Load(t *testing.T) {
	ctx := context.Background()
	mr, store := newRedisStore(t, time.Minute)

	if err := mr.Set("evaluation:session:corrupt", "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{"missing", "nobody", ErrNotFound},
		{"corrupt payload", "corrupt", ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.Load(ctx, tt.id)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Load() error = %v, want %v", err, tt.wantErr)
			}
			if got != nil {
				t.Errorf("Load() = %+v, want nil", got)
			}
		})
	}

	if mr.Exists("evaluation:session:corrupt") {
		t.Error("corrupt session should be removed on Load")
	}
}

func TestRedisStore_Unavailable(t *testing.T) {
	ctx := context.Background()
	mr, store := newRedisStore(t, time.Minute)
	mr.Close()

	if _, err := store.Load(ctx, "abc"); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("Load() error = %v, want a connection error", err)
	}
	if err := store.Save(ctx, "abc", evaluation.NewProgress(uuid.New(), evaluation.English)); err == nil {
		t.Error("Save() should fail when Redis is down")
	}
}
