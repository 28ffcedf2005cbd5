package survey

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/yalgashev/survey/internal/evaluation"
	"github.com/yalgashev/survey/internal/repo"
	entgp "github.com/yalgashev/survey/internal/repo/groupprofessor"
	"github.com/yalgashev/survey/internal/session"
	"github.com/yalgashev/survey/pkg/observability"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListSurveysRequest struct {
	GroupID     *uuid.UUID
	ProfessorID *uuid.UUID
	Page        int
	PerPage     int
}

// Responses maps question ids to what the student sent.
type Responses = map[uuid.UUID]evaluation.Response

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Wizard. sessionID identifies the browser session; a missing or stale
	// session yields the start step rather than an error.
	Start(ctx context.Context, sessionID string, groupID uuid.UUID, lang evaluation.Language) (*Step, error)
	CurrentStep(ctx context.Context, sessionID string) (*Step, error)
	Skip(ctx context.Context, sessionID string) (*Step, error)
	Submit(ctx context.Context, sessionID string, responses Responses) (*Step, error)
	InternshipStep(ctx context.Context, sessionID string) (*Step, error)
	SubmitInternship(ctx context.Context, sessionID string, responses Responses) (*Step, error)
	Finish(ctx context.Context, sessionID string) error

	// Administration
	ListSurveys(ctx context.Context, req ListSurveysRequest) (*PaginatedResult[SurveySummary], error)
	GetSurvey(ctx context.Context, id uuid.UUID) (*SurveyDetail, error)
	DeleteSurvey(ctx context.Context, id uuid.UUID) error
	ListInternshipSurveys(ctx context.Context, req ListSurveysRequest) (*PaginatedResult[SurveySummary], error)
	GetInternshipSurvey(ctx context.Context, id uuid.UUID) (*SurveyDetail, error)
	DeleteInternshipSurvey(ctx context.Context, id uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type surveyService struct {
	db       *repo.Client
	sessions session.Store
	metrics  *observability.EvaluationMetrics
}

func New(db *repo.Client, sessions session.Store, metrics *observability.EvaluationMetrics) Service {
	return &surveyService{db: db, sessions: sessions, metrics: metrics}
}

// wizard is a resumed session with everything the current screen needs.
type wizard struct {
	progress   *evaluation.Progress
	group      *repo.Group
	professors []*repo.Professor
}

func (w *wizard) groupView() *GroupView {
	return &GroupView{ID: w.group.ID, Name: w.group.Name, Semester: w.group.Semester}
}

func (w *wizard) current() *repo.Professor {
	return w.professors[w.progress.ProfessorIndex]
}

// resume loads the session and its group. It returns a start step instead of
// a wizard when there is nothing to resume. Professors are only loaded while
// the session is still in the professor stage.
func (s *surveyService) resume(ctx context.Context, sessionID string) (*wizard, *Step, error) {
	p, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, startStep(""), nil
		}
		return nil, nil, err
	}

	g, err := s.db.Group.Get(ctx, p.GroupID)
	if err != nil {
		if repo.IsNotFound(err) {
			slog.InfoContext(ctx, "evaluation group vanished, restarting wizard", "group_id", p.GroupID)
			return nil, startStep(""), s.clear(ctx, sessionID)
		}
		return nil, nil, fmt.Errorf("get group: %w", err)
	}

	w := &wizard{progress: p, group: g}
	if p.Stage != evaluation.StageProfessors {
		return w, nil, nil
	}

	if w.professors, err = assignedProfessors(ctx, s.db, g.ID); err != nil {
		return nil, nil, err
	}
	if len(w.professors) == 0 {
		if err := s.clear(ctx, sessionID); err != nil {
			return nil, nil, err
		}
		return nil, nil, ErrNoProfessors
	}
	return w, nil, nil
}

// assignedProfessors returns the group's professors in assignment order.
func assignedProfessors(ctx context.Context, db *repo.Client, groupID uuid.UUID) ([]*repo.Professor, error) {
	assignments, err := db.GroupProfessor.Query().
		Where(entgp.GroupID(groupID)).
		WithProfessor().
		Order(entgp.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load assignments: %w", err)
	}
	return lo.Map(assignments, func(a *repo.GroupProfessor, _ int) *repo.Professor {
		return a.Edges.Professor
	}), nil
}

func (s *surveyService) clear(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// incrementParticipation counts one completed pass with a single
// UPDATE ... SET participated_students = participated_students + 1.
func incrementParticipation(ctx context.Context, db *repo.Client, groupID uuid.UUID) error {
	if err := db.Group.UpdateOneID(groupID).AddParticipatedStudents(1).Exec(ctx); err != nil {
		return fmt.Errorf("count participation: %w", err)
	}
	return nil
}
