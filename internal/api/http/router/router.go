package router

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/yalgashev/survey/config"
	"github.com/yalgashev/survey/internal/api/http/handler"
	"github.com/yalgashev/survey/internal/api/http/middleware"
	"github.com/yalgashev/survey/internal/repo"
	"github.com/yalgashev/survey/internal/service/directory"
	"github.com/yalgashev/survey/internal/service/question"
	"github.com/yalgashev/survey/internal/service/report"
	"github.com/yalgashev/survey/internal/service/survey"
	"github.com/yalgashev/survey/pkg/database"
	redispkg "github.com/yalgashev/survey/pkg/redis"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg          *config.Config
	DB           *repo.Client
	Redis        *redis.Client `optional:"true"`
	DirectorySvc directory.Service
	QuestionSvc  question.Service
	SurveySvc    survey.Service
	ReportSvc    report.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	evaluationH := handler.NewEvaluationHandler(r.p.SurveySvc, r.p.DirectorySvc, r.p.Cfg.Evaluation.DefaultLanguage)
	directoryH := handler.NewDirectoryHandler(r.p.DirectorySvc)
	questionH := handler.NewQuestionHandler(r.p.QuestionSvc, question.CatalogProfessor)
	internshipQuestionH := handler.NewQuestionHandler(r.p.QuestionSvc, question.CatalogInternship)
	surveyH := handler.NewSurveyHandler(r.p.SurveySvc)
	reportH := handler.NewReportHandler(r.p.ReportSvc)

	api := app.Group("/api/v1")

	r.registerEvaluationRoutes(api, evaluationH, middleware.EvaluationSession(r.p.Cfg.Evaluation))

	// Reports go first so /professors/summary wins over /professors/:id.
	admin := api.Group("/admin")
	r.registerReportRoutes(admin, reportH)
	r.registerDirectoryRoutes(admin, directoryH)
	r.registerQuestionRoutes(admin.Group("/questions"), questionH)
	r.registerQuestionRoutes(admin.Group("/internship-questions"), internshipQuestionH)
	r.registerSurveyRoutes(admin, surveyH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return r.ready(c.Context()) },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		app.Get(metricsPath(r.p.Cfg), adaptor.HTTPHandler(promhttp.Handler()))
	}
}

// ready checks the database and, when configured, Redis.
func (r *Router) ready(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := database.Ping(ctx, r.p.DB); err != nil {
		slog.WarnContext(ctx, "readiness probe failed", "component", "database", "error", err)
		return false
	}
	if r.p.Redis != nil {
		if err := redispkg.Ping(ctx, r.p.Redis); err != nil {
			slog.WarnContext(ctx, "readiness probe failed", "component", "redis", "error", err)
			return false
		}
	}
	return true
}

func metricsPath(cfg *config.Config) string {
	if cfg.Observability.Metrics.Path == "" {
		return "/metrics"
	}
	return cfg.Observability.Metrics.Path
}
