package app

import (
	"go.uber.org/fx"

	"github.com/yalgashev/survey/config"
	"github.com/yalgashev/survey/internal/repo"
	"github.com/yalgashev/survey/internal/service/directory"
	"github.com/yalgashev/survey/internal/service/question"
	"github.com/yalgashev/survey/internal/service/report"
	"github.com/yalgashev/survey/internal/service/survey"
	"github.com/yalgashev/survey/internal/session"
	"github.com/yalgashev/survey/pkg/email"
	"github.com/yalgashev/survey/pkg/observability"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideDirectoryService,
		ProvideQuestionService,
		ProvideSurveyService,
		ProvideReportService,
	),
)

func ProvideDirectoryService(db *repo.Client) directory.Service {
	return directory.New(db)
}

func ProvideQuestionService(db *repo.Client) question.Service {
	return question.New(db)
}

func ProvideSurveyService(db *repo.Client, sessions session.Store, metrics *observability.EvaluationMetrics) survey.Service {
	return survey.New(db, sessions, metrics)
}

func ProvideReportService(db *repo.Client, mailer email.Sender, cfg *config.Config) report.Service {
	return report.New(db, mailer, cfg.Reports)
}
