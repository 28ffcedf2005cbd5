package report

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/yalgashev/survey/config"
	"github.com/yalgashev/survey/internal/repo"
	"github.com/yalgashev/survey/pkg/email"
)

// ---------------------------------------------------------------------------
// Views
// ---------------------------------------------------------------------------

type ProfessorRef struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
}

type GroupParticipation struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Semester     int       `json:"semester"`
	Participated int       `json:"participated_students"`
	Total        int       `json:"total_students"`
	Rate         float64   `json:"participation_rate"`
}

type RankedProfessor struct {
	Rank        int          `json:"rank"`
	Professor   ProfessorRef `json:"professor"`
	Average     float64      `json:"average"`
	SurveyCount int          `json:"survey_count"`
}

type Activity struct {
	SurveyID  uuid.UUID `json:"survey_id"`
	Group     string    `json:"group"`
	Professor string    `json:"professor"`
	Average   float64   `json:"average"`
	CreatedAt time.Time `json:"created_at"`
}

type Dashboard struct {
	Groups               int                  `json:"total_groups"`
	Professors           int                  `json:"total_professors"`
	Surveys              int                  `json:"total_surveys"`
	InternshipSurveys    int                  `json:"total_internship_surveys"`
	TotalStudents        int                  `json:"total_students"`
	ParticipatedStudents int                  `json:"participated_students"`
	ParticipationRate    float64              `json:"participation_rate"`
	RecentSurveys        int                  `json:"recent_surveys"`
	TopProfessors        []RankedProfessor    `json:"top_professors"`
	RecentActivity       []Activity           `json:"recent_activity"`
	GroupStats           []GroupParticipation `json:"group_stats"`
}

type ParticipationReport struct {
	Groups        []GroupParticipation `json:"groups"`
	TotalStudents int                  `json:"total_students"`
	Participated  int                  `json:"participated_students"`
	Rate          float64              `json:"participation_rate"`
}

type QuestionColumn struct {
	ID        uuid.UUID `json:"id"`
	SortOrder int       `json:"sort_order"`
	Text      string    `json:"text"`
}

// RatingRow holds one professor's figures. Averages lines up with the
// report's Questions; nil means no eligible rating.
type RatingRow struct {
	Professor   ProfessorRef `json:"professor"`
	SurveyCount int          `json:"survey_count"`
	Averages    []*float64   `json:"averages"`
	Overall     *float64     `json:"overall"`
	Comments    []string     `json:"comments"`
}

type RatingReport struct {
	Questions []QuestionColumn `json:"questions"`
	Rows      []RatingRow      `json:"rows"`
}

type GroupAnalytics struct {
	Group       GroupParticipation `json:"group"`
	SurveyCount int                `json:"survey_count"`
	Averages    []*float64         `json:"averages"`
	Overall     *float64           `json:"overall"`
	Comments    []string           `json:"comments"`
}

type ProfessorAnalytics struct {
	Professor   ProfessorRef     `json:"professor"`
	Questions   []QuestionColumn `json:"questions"`
	Groups      []GroupAnalytics `json:"groups"`
	SurveyCount int              `json:"survey_count"`
	Overall     *float64         `json:"overall"`
}

type ProfessorSummary struct {
	Professor    ProfessorRef `json:"professor"`
	GroupCount   int          `json:"group_count"`
	SurveyCount  int          `json:"survey_count"`
	Average      *float64     `json:"average"`
	NaiveAverage *float64     `json:"naive_average"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
	Participation(ctx context.Context) (*ParticipationReport, error)
	ProfessorsRating(ctx context.Context) (*RatingReport, error)
	ProfessorAnalytics(ctx context.Context, professorID uuid.UUID) (*ProfessorAnalytics, error)
	ProfessorSummaries(ctx context.Context) ([]ProfessorSummary, error)

	// SendDigest mails the professor's rating row to their address.
	SendDigest(ctx context.Context, professorID uuid.UUID) error
}

type reportService struct {
	db     *repo.Client
	mailer email.Sender
	cfg    config.ReportsConfig
	now    func() time.Time
}

func New(db *repo.Client, mailer email.Sender, cfg config.ReportsConfig) Service {
	if cfg.TopProfessors <= 0 {
		cfg.TopProfessors = 5
	}
	if cfg.RecentDays <= 0 {
		cfg.RecentDays = 7
	}
	if cfg.RecentActivity <= 0 {
		cfg.RecentActivity = 10
	}
	if cfg.DashboardGroups <= 0 {
		cfg.DashboardGroups = 5
	}
	return &reportService{db: db, mailer: mailer, cfg: cfg, now: time.Now}
}
