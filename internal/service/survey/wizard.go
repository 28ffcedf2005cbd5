package survey

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/yalgashev/survey/internal/evaluation"
	"github.com/yalgashev/survey/internal/repo"
	"github.com/yalgashev/survey/internal/service/question"
	"github.com/yalgashev/survey/pkg/database"
)

func (s *surveyService) Start(ctx context.Context, sessionID string, groupID uuid.UUID, lang evaluation.Language) (*Step, error) {
	if !lang.Valid() {
		return nil, evaluation.ErrUnsupportedLanguage
	}

	g, err := s.db.Group.Get(ctx, groupID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("get group: %w", err)
	}

	professors, err := assignedProfessors(ctx, s.db, g.ID)
	if err != nil {
		return nil, err
	}
	if len(professors) == 0 {
		if err := s.clear(ctx, sessionID); err != nil {
			return nil, err
		}
		return nil, ErrNoProfessors
	}

	w := &wizard{
		progress:   evaluation.NewProgress(g.ID, lang),
		group:      g,
		professors: professors,
	}
	if err := s.sessions.Save(ctx, sessionID, w.progress); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	slog.InfoContext(ctx, "evaluation started", "group", g.Name, "language", lang, "professors", len(professors))
	return s.professorStep(ctx, w)
}

func (s *surveyService) CurrentStep(ctx context.Context, sessionID string) (*Step, error) {
	w, step, err := s.resume(ctx, sessionID)
	if err != nil || step != nil {
		return step, err
	}

	if w.progress.Stage == evaluation.StageInternship {
		return internshipPointer(w), nil
	}
	if w.progress.Exhausted(len(w.professors)) {
		// Reads never count participation; the next skip or submit does.
		return completePointer(w), nil
	}
	return s.professorStep(ctx, w)
}

// Skip moves past a professor the student was not taught by. Nothing is
// persisted except the cursor.
func (s *surveyService) Skip(ctx context.Context, sessionID string) (*Step, error) {
	w, step, err := s.resume(ctx, sessionID)
	if err != nil || step != nil {
		return step, err
	}

	if w.progress.Stage == evaluation.StageInternship {
		return internshipPointer(w), nil
	}
	if w.progress.Exhausted(len(w.professors)) {
		return s.conclude(ctx, sessionID, w)
	}

	s.metrics.ProfessorSkipped(ctx, w.group.Name)

	t := w.progress.Advance(len(w.professors), w.group.Semester)
	if t == evaluation.Complete {
		if err := incrementParticipation(ctx, s.db, w.group.ID); err != nil {
			return nil, err
		}
	}
	return s.settle(ctx, sessionID, w, t)
}

// Submit persists one survey with one answer per active question and moves
// on. When this was the last professor of a first-semester group the
// participation increment is written in the same transaction.
func (s *surveyService) Submit(ctx context.Context, sessionID string, responses Responses) (*Step, error) {
	w, step, err := s.resume(ctx, sessionID)
	if err != nil || step != nil {
		return step, err
	}

	if w.progress.Stage == evaluation.StageInternship {
		return internshipPointer(w), nil
	}
	if w.progress.Exhausted(len(w.professors)) {
		return s.conclude(ctx, sessionID, w)
	}

	questions, err := question.LoadActive(ctx, s.db, question.CatalogProfessor)
	if err != nil {
		return nil, err
	}
	answers, err := evaluation.CollectAnswers(questions, responses)
	if err != nil {
		return nil, err
	}

	professor := w.current()
	var t evaluation.Transition

	err = database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		sv, err := tx.Survey.Create().
			SetGroupID(w.group.ID).
			SetProfessorID(professor.ID).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create survey: %w", err)
		}

		if len(answers) > 0 {
			builders := make([]*repo.AnswerCreate, len(answers))
			for i, a := range answers {
				b := tx.Answer.Create().
					SetSurveyID(sv.ID).
					SetQuestionID(a.QuestionID)
				if a.Rating != nil {
					b.SetRatingValue(int(*a.Rating))
				} else {
					b.SetNillableTextValue(a.Text)
				}
				builders[i] = b
			}
			if _, err := tx.Answer.CreateBulk(builders...).Save(ctx); err != nil {
				return fmt.Errorf("create answers: %w", err)
			}
		}

		t = w.progress.Advance(len(w.professors), w.group.Semester)
		if t == evaluation.Complete {
			return incrementParticipation(ctx, tx.Client(), w.group.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.SurveySubmitted(ctx, w.group.Name)
	slog.InfoContext(ctx, "evaluation submitted",
		"group", w.group.Name,
		"professor_id", professor.ID,
		"answers", len(answers),
	)

	return s.settle(ctx, sessionID, w, t)
}

func (s *surveyService) InternshipStep(ctx context.Context, sessionID string) (*Step, error) {
	w, step, err := s.resume(ctx, sessionID)
	if err != nil || step != nil {
		return step, err
	}
	if err := s.checkInternship(ctx, sessionID, w); err != nil {
		return nil, err
	}

	questions, err := question.LoadActive(ctx, s.db, question.CatalogInternship)
	if err != nil {
		return nil, err
	}

	step = internshipPointer(w)
	step.Questions = localize(questions, w.progress.Language)
	return step, nil
}

// SubmitInternship persists the internship survey and counts the pass in one
// transaction, then ends the session.
func (s *surveyService) SubmitInternship(ctx context.Context, sessionID string, responses Responses) (*Step, error) {
	w, step, err := s.resume(ctx, sessionID)
	if err != nil || step != nil {
		return step, err
	}
	if err := s.checkInternship(ctx, sessionID, w); err != nil {
		return nil, err
	}

	questions, err := question.LoadActive(ctx, s.db, question.CatalogInternship)
	if err != nil {
		return nil, err
	}
	answers, err := evaluation.CollectAnswers(questions, responses)
	if err != nil {
		return nil, err
	}

	err = database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		sv, err := tx.InternshipSurvey.Create().
			SetGroupID(w.group.ID).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create internship survey: %w", err)
		}

		if len(answers) > 0 {
			builders := make([]*repo.InternshipAnswerCreate, len(answers))
			for i, a := range answers {
				b := tx.InternshipAnswer.Create().
					SetSurveyID(sv.ID).
					SetQuestionID(a.QuestionID)
				if a.Rating != nil {
					b.SetRatingValue(int(*a.Rating))
				} else {
					b.SetNillableTextValue(a.Text)
				}
				builders[i] = b
			}
			if _, err := tx.InternshipAnswer.CreateBulk(builders...).Save(ctx); err != nil {
				return fmt.Errorf("create internship answers: %w", err)
			}
		}

		return incrementParticipation(ctx, tx.Client(), w.group.ID)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.InternshipSubmitted(ctx, w.group.Name)
	slog.InfoContext(ctx, "internship evaluation submitted", "group", w.group.Name, "answers", len(answers))

	return s.settle(ctx, sessionID, w, evaluation.Complete)
}

func (s *surveyService) Finish(ctx context.Context, sessionID string) error {
	return s.clear(ctx, sessionID)
}

// checkInternship guards both internship operations. A first-semester group
// never gets one: its session ends without being counted.
func (s *surveyService) checkInternship(ctx context.Context, sessionID string, w *wizard) error {
	if !evaluation.HasInternship(w.group.Semester) {
		if err := s.clear(ctx, sessionID); err != nil {
			return err
		}
		return ErrInternshipUnavailable
	}
	if w.progress.Stage != evaluation.StageInternship {
		return ErrInternshipNotReached
	}
	return nil
}

// conclude runs the completion branch for a session whose cursor already sits
// past the last professor.
func (s *surveyService) conclude(ctx context.Context, sessionID string, w *wizard) (*Step, error) {
	t := w.progress.Conclude(w.group.Semester)
	if t == evaluation.Complete {
		if err := incrementParticipation(ctx, s.db, w.group.ID); err != nil {
			return nil, err
		}
	}
	return s.settle(ctx, sessionID, w, t)
}

// settle stores or ends the session after a transition and renders the next
// screen. Participation must already be counted for Complete.
func (s *surveyService) settle(ctx context.Context, sessionID string, w *wizard, t evaluation.Transition) (*Step, error) {
	if t == evaluation.Complete {
		s.metrics.PassCompleted(ctx, w.group.Name, w.group.Semester)
		if err := s.clear(ctx, sessionID); err != nil {
			return nil, err
		}
		return doneStep(), nil
	}

	if err := s.sessions.Save(ctx, sessionID, w.progress); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	if t == evaluation.EnterInternship {
		return internshipPointer(w), nil
	}
	return s.professorStep(ctx, w)
}

func (s *surveyService) professorStep(ctx context.Context, w *wizard) (*Step, error) {
	questions, err := question.LoadActive(ctx, s.db, question.CatalogProfessor)
	if err != nil {
		return nil, err
	}

	p := w.current()
	idx, total := w.progress.ProfessorIndex, len(w.professors)
	return &Step{
		Stage:     StageProfessor,
		Language:  w.progress.Language,
		Group:     w.groupView(),
		Professor: &ProfessorView{ID: p.ID, FullName: p.FullName},
		Position:  idx + 1,
		Total:     total,
		Progress:  evaluation.Round2(evaluation.Percent(idx, total)),
		Questions: localize(questions, w.progress.Language),
	}, nil
}

// completePointer is shown when every professor is handled but the pass is
// not closed yet. The next Skip or Submit closes it.
func completePointer(w *wizard) *Step {
	total := len(w.professors)
	return &Step{
		Stage:    StageComplete,
		Language: w.progress.Language,
		Group:    w.groupView(),
		Position: total,
		Total:    total,
		Progress: 100,
	}
}

func internshipPointer(w *wizard) *Step {
	return &Step{
		Stage:    StageInternship,
		Language: w.progress.Language,
		Group:    w.groupView(),
	}
}
