package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/yalgashev/survey/config"
	"github.com/yalgashev/survey/internal/repo"
	"github.com/yalgashev/survey/internal/session"
	"github.com/yalgashev/survey/pkg/database"
	"github.com/yalgashev/survey/pkg/email"
	"github.com/yalgashev/survey/pkg/observability"
	redispkg "github.com/yalgashev/survey/pkg/redis"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideEntClient),
	fx.Provide(ProvideRedis),
	fx.Provide(ProvideSessionStore),
	fx.Provide(ProvideEmailClient),
	fx.Provide(ProvideOTel),
	fx.Provide(ProvideEvaluationMetrics),
)

func ProvideEntClient(lc fx.Lifecycle, cfg *config.Config) (*repo.Client, error) {
	client, err := database.NewEntClient(context.Background(), cfg.Database)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing database connection")
			return client.Close()
		},
	})
	return client, nil
}

func ProvideRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	rdb, err := redispkg.Open(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing Redis connection")
			return rdb.Close()
		},
	})
	return rdb, nil
}

func ProvideSessionStore(rdb *redis.Client, cfg *config.Config) session.Store {
	ttl := session.DefaultTTL
	if cfg.Evaluation.SessionTTLMinutes > 0 {
		ttl = time.Duration(cfg.Evaluation.SessionTTLMinutes) * time.Minute
	}
	return session.NewRedisStore(rdb, ttl)
}

func ProvideEmailClient(cfg *config.Config) email.Sender {
	return email.NewFromCentral(cfg.Email)
}

// ProvideOTel returns a nil provider when observability is disabled; the
// global otel providers then stay no-ops.
func ProvideOTel(lc fx.Lifecycle, cfg *config.Config) (*observability.Provider, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}
	provider, err := observability.InitTelemetry(context.Background(), observability.FromCentralConfig(cfg))
	if err != nil {
		return nil, err
	}
	slog.Info("observability initialized",
		"tracing", cfg.Observability.Tracing.Enabled,
		"metrics", cfg.Observability.Metrics.Enabled,
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("shutting down observability providers")
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}

// ProvideEvaluationMetrics depends on the provider so the counters bind to
// the installed meter provider rather than the no-op default.
func ProvideEvaluationMetrics(_ *observability.Provider) (*observability.EvaluationMetrics, error) {
	return observability.NewEvaluationMetrics()
}
