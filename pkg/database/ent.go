package database

import (
	"context"
	"fmt"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/yalgashev/survey/config"
	"github.com/yalgashev/survey/internal/repo"
	"github.com/yalgashev/survey/internal/repo/migrate"
)

// NewEntClient creates a new Ent client from central config
func NewEntClient(ctx context.Context, cfg config.DatabaseConfig) (*repo.Client, error) {
	return NewEntClientFromConfig(ctx, FromCentralConfig(cfg))
}

func NewEntClientFromConfig(ctx context.Context, cfg Config) (*repo.Client, error) {
	db, err := openSQLDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var drv dialect.Driver = entsql.OpenDB(dialect.Postgres, db)
	if cfg.EnableLogging {
		drv = dialect.DebugWithContext(drv, func(ctx context.Context, v ...any) {
			slog.DebugContext(ctx, "sql", "query", fmt.Sprint(v...))
		})
	}

	client := repo.NewClient(repo.Driver(drv))

	if cfg.AutoMigrate {
		if err := MigrateEnt(ctx, client, cfg.SafeMode); err != nil {
			client.Close()
			return nil, err
		}
	}

	return client, nil
}

// MigrateEnt applies the schema. Outside safe mode, columns and indexes that
// no longer exist in the schema are dropped.
func MigrateEnt(ctx context.Context, client *repo.Client, safe bool) error {
	if err := client.Schema.Create(ctx,
		migrate.WithDropColumn(!safe),
		migrate.WithDropIndex(!safe),
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
