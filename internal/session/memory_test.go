package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yalgashev/survey/internal/evaluation"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)

	p := evaluation.NewProgress(uuid.New(), evaluation.Russian)
	p.ProfessorIndex = 2
	if err := store.Save(ctx, "abc", p); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Load(ctx, "abc")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *got != *p {
		t.Errorf("Load() = %+v, want %+v", got, p)
	}

	// Mutating the loaded copy must not leak into the store.
	got.ProfessorIndex = 9
	again, _ := store.Load(ctx, "abc")
	if again.ProfessorIndex != 2 {
		t.Errorf("ProfessorIndex = %d, want 2", again.ProfessorIndex)
	}

	if err := store.Delete(ctx, "abc"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Load(ctx, "abc"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	if err := store.Save(ctx, "abc", evaluation.NewProgress(uuid.New(), evaluation.English)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	now = now.Add(2 * time.Minute)
	if _, err := store.Load(ctx, "abc"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for expired session, got %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("Len() = %d, want 0", store.Len())
	}
}

func TestMemoryStore_Missing(t *testing.T) {
	store := NewMemoryStore(0)
	if _, err := store.Load(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if store.ttl != DefaultTTL {
		t.Errorf("ttl = %v, want %v", store.ttl, DefaultTTL)
	}
}
