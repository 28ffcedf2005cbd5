// Package session keeps the per-browser wizard state between requests.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/yalgashev/survey/internal/evaluation"
)

var ErrNotFound = errors.New("session not found")

const DefaultTTL = 2 * time.Hour

type Store interface {
	Load(ctx context.Context, id string) (*evaluation.Progress, error)
	Save(ctx context.Context, id string, p *evaluation.Progress) error
	Delete(ctx context.Context, id string) error
}
