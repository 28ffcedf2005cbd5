package database

import (
	"context"
	"fmt"

	"github.com/yalgashev/survey/internal/repo"
)

// WithTx runs fn inside a transaction. fn's error rolls the transaction back
// and is returned unchanged, so callers can still match sentinel errors.
func WithTx(ctx context.Context, client *repo.Client, fn func(tx *repo.Tx) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			tx.Rollback()
			panic(v)
		}
	}()

	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w: rolling back transaction: %v", err, rerr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Ping runs a trivial query through the ent driver; used by the readiness
// probe.
func Ping(ctx context.Context, client *repo.Client) error {
	if _, err := client.School.Query().Limit(1).IDs(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}
