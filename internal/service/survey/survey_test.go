package survey

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/yalgashev/survey/internal/evaluation"
	"github.com/yalgashev/survey/internal/repo"
	"github.com/yalgashev/survey/internal/repo/enttest"
	"github.com/yalgashev/survey/internal/session"
)

const sid = "session-1"

type testEnv struct {
	ctx      context.Context
	client   *repo.Client
	sessions *session.MemoryStore
	svc      Service

	department *repo.Department
	school     *repo.School
	rating1    *repo.Question
	rating2    *repo.Question
	comment    *repo.Question
	internQ    *repo.InternshipQuestion
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", uuid.NewString())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })

	sessions := session.NewMemoryStore(0)
	env := &testEnv{
		ctx:      ctx,
		client:   client,
		sessions: sessions,
		svc:      New(client, sessions, nil),
	}

	env.school = client.School.Create().SetName("Medicine").SetCode("MED").SaveX(ctx)
	env.department = client.Department.Create().SetSchoolID(env.school.ID).SetName("Therapy").SetCode("THR").SaveX(ctx)

	env.rating1 = client.Question.Create().
		SetTextEn("Explains clearly").SetTextUz("Aniq tushuntiradi").SetTextRu("Объясняет понятно").
		SetSortOrder(1).SaveX(ctx)
	env.rating2 = client.Question.Create().
		SetTextEn("Is punctual").SetTextUz("Vaqtga rioya qiladi").SetTextRu("Пунктуален").
		SetSortOrder(2).SaveX(ctx)
	env.comment = client.Question.Create().
		SetTextEn("Comments").SetTextUz("Izohlar").SetTextRu("Комментарии").
		SetQuestionType("text").SetSortOrder(3).SaveX(ctx)
	env.internQ = client.InternshipQuestion.Create().
		SetTextEn("Mentor support").SetTextUz("Murabbiy yordami").SetTextRu("Поддержка наставника").
		SaveX(ctx)

	return env
}

// group creates a group with n assigned professors.
func (e *testEnv) group(t *testing.T, name string, semester, n int) *repo.Group {
	t.Helper()
	g := e.client.Group.Create().
		SetName(name).
		SetDepartmentID(e.department.ID).
		SetSemester(semester).
		SetTotalStudents(25).
		SaveX(e.ctx)
	for i := 0; i < n; i++ {
		p := e.client.Professor.Create().
			SetFullName(fmt.Sprintf("%s professor %d", name, i+1)).
			SetSchoolID(e.school.ID).
			SaveX(e.ctx)
		e.client.GroupProfessor.Create().SetGroupID(g.ID).SetProfessorID(p.ID).SaveX(e.ctx)
	}
	return g
}

func (e *testEnv) participated(t *testing.T, groupID uuid.UUID) int {
	t.Helper()
	return e.client.Group.GetX(e.ctx, groupID).ParticipatedStudents
}

func (e *testEnv) fullAnswers() Responses {
	r1, r2, text := 1, 6, "Very helpful"
	return Responses{
		e.rating1.ID: {Rating: &r1},
		e.rating2.ID: {Rating: &r2},
		e.comment.ID: {Text: &text},
	}
}

func TestStart_NoProfessors(t *testing.T) {
	env := newTestEnv(t)
	g := env.group(t, "MED-100", 1, 0)

	_, err := env.svc.Start(env.ctx, sid, g.ID, evaluation.English)
	if !errors.Is(err, ErrNoProfessors) {
		t.Fatalf("Expected ErrNoProfessors, got %v", err)
	}
	if env.sessions.Len() != 0 {
		t.Error("No session may be stored")
	}
	if n := env.client.Survey.Query().CountX(env.ctx); n != 0 {
		t.Errorf("surveys = %d, want 0", n)
	}
}

func TestStart_Validation(t *testing.T) {
	env := newTestEnv(t)
	g := env.group(t, "MED-101", 1, 1)

	if _, err := env.svc.Start(env.ctx, sid, g.ID, evaluation.Language("de")); !errors.Is(err, evaluation.ErrUnsupportedLanguage) {
		t.Errorf("Expected ErrUnsupportedLanguage, got %v", err)
	}
	if _, err := env.svc.Start(env.ctx, sid, uuid.New(), evaluation.English); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("Expected ErrGroupNotFound, got %v", err)
	}
}

func TestStart_FirstStep(t *testing.T) {
	env := newTestEnv(t)
	g := env.group(t, "MED-102", 1, 4)

	step, err := env.svc.Start(env.ctx, sid, g.ID, evaluation.Russian)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if step.Stage != StageProfessor {
		t.Fatalf("Stage = %q, want professor", step.Stage)
	}
	if step.Position != 1 || step.Total != 4 || step.Progress != 25 {
		t.Errorf("got position=%d total=%d progress=%v", step.Position, step.Total, step.Progress)
	}
	if step.Professor.FullName != "MED-102 professor 1" {
		t.Errorf("Professor = %q, want assignment order", step.Professor.FullName)
	}
	if len(step.Questions) != 3 || step.Questions[0].Text != "Объясняет понятно" {
		t.Errorf("unexpected questions: %+v", step.Questions)
	}
}

func TestSubmit_FirstSemesterCompletes(t *testing.T) {
	env := newTestEnv(t)
	g := env.group(t, "MED-103", 1, 2)

	if _, err := env.svc.Start(env.ctx, sid, g.ID, evaluation.English); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	step, err := env.svc.Submit(env.ctx, sid, env.fullAnswers())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if step.Stage != StageProfessor || step.Position != 2 {
		t.Fatalf("got %q position %d, want second professor", step.Stage, step.Position)
	}
	if got := env.participated(t, g.ID); got != 0 {
		t.Errorf("participated = %d before the pass ends", got)
	}

	step, err = env.svc.Submit(env.ctx, sid, env.fullAnswers())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if step.Stage != StageDone {
		t.Errorf("Stage = %q, want done", step.Stage)
	}

	if got := env.participated(t, g.ID); got != 1 {
		t.Errorf("participated = %d, want 1", got)
	}
	if n := env.client.Survey.Query().CountX(env.ctx); n != 2 {
		t.Errorf("surveys = %d, want 2", n)
	}
	if n := env.client.Answer.Query().CountX(env.ctx); n != 6 {
		t.Errorf("answers = %d, want one per active question", n)
	}
	if n := env.client.InternshipSurvey.Query().CountX(env.ctx); n != 0 {
		t.Errorf("semester 1 produced %d internship surveys", n)
	}
	if env.sessions.Len() != 0 {
		t.Error("session must be cleared")
	}

	// A fresh request after completion starts over.
	step, _ = env.svc.CurrentStep(env.ctx, sid)
	if step.Stage != StageStart {
		t.Errorf("Stage = %q, want start", step.Stage)
	}
}

func TestSubmit_LaterSemesterReachesInternship(t *testing.T) {
	env := newTestEnv(t)
	g := env.group(t, "MED-301", 3, 2)

	env.svc.Start(env.ctx, sid, g.ID, evaluation.Uzbek)
	if _, err := env.svc.Skip(env.ctx, sid); err != nil {
		t.Fatalf("Skip failed: %v", err)
	}

	if _, err := env.svc.InternshipStep(env.ctx, sid); !errors.Is(err, ErrInternshipNotReached) {
		t.Errorf("Expected ErrInternshipNotReached, got %v", err)
	}

	step, err := env.svc.Submit(env.ctx, sid, env.fullAnswers())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if step.Stage != StageInternship {
		t.Fatalf("Stage = %q, want internship", step.Stage)
	}
	if got := env.participated(t, g.ID); got != 0 {
		t.Errorf("participated = %d before the internship step", got)
	}

	p, err := env.sessions.Load(env.ctx, sid)
	if err != nil {
		t.Fatalf("session lost: %v", err)
	}
	if p.GroupID != g.ID || p.Language != evaluation.Uzbek || p.ProfessorIndex != 0 {
		t.Errorf("unexpected session after completion branch: %+v", p)
	}

	step, err = env.svc.InternshipStep(env.ctx, sid)
	if err != nil {
		t.Fatalf("InternshipStep failed: %v", err)
	}
	if len(step.Questions) != 1 || step.Questions[0].Text != "Murabbiy yordami" {
		t.Errorf("unexpected internship questions: %+v", step.Questions)
	}

	// Submitting professor answers again must not create surveys.
	step, _ = env.svc.Submit(env.ctx, sid, env.fullAnswers())
	if step.Stage != StageInternship {
		t.Errorf("Stage = %q, want internship", step.Stage)
	}

	r := 2
	step, err = env.svc.SubmitInternship(env.ctx, sid, Responses{env.internQ.ID: {Rating: &r}})
	if err != nil {
		t.Fatalf("SubmitInternship failed: %v", err)
	}
	if step.Stage != StageDone {
		t.Errorf("Stage = %q, want done", step.Stage)
	}
	if got := env.participated(t, g.ID); got != 1 {
		t.Errorf("participated = %d, want 1", got)
	}
	if n := env.client.Survey.Query().CountX(env.ctx); n != 1 {
		t.Errorf("surveys = %d, want 1", n)
	}
	if n := env.client.InternshipAnswer.Query().CountX(env.ctx); n != 1 {
		t.Errorf("internship answers = %d, want 1", n)
	}
}

func TestSkipAll(t *testing.T) {
	tests := []struct {
		name             string
		semester         int
		wantStage        Stage
		wantParticipated int
	}{
		{"first semester completes", 1, StageDone, 1},
		{"later semester goes to internship", 2, StageInternship, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			g := env.group(t, "GRP", tt.semester, 3)

			env.svc.Start(env.ctx, sid, g.ID, evaluation.English)
			var step *Step
			var err error
			for i := 0; i < 3; i++ {
				if step, err = env.svc.Skip(env.ctx, sid); err != nil {
					t.Fatalf("Skip failed: %v", err)
				}
			}

			if step.Stage != tt.wantStage {
				t.Errorf("Stage = %q, want %q", step.Stage, tt.wantStage)
			}
			if got := env.participated(t, g.ID); got != tt.wantParticipated {
				t.Errorf("participated = %d, want %d", got, tt.wantParticipated)
			}
			if n := env.client.Survey.Query().CountX(env.ctx); n != 0 {
				t.Errorf("surveys = %d, want 0", n)
			}
		})
	}
}

func TestSubmit_MissingRating(t *testing.T) {
	env := newTestEnv(t)
	g := env.group(t, "MED-104", 1, 2)
	env.svc.Start(env.ctx, sid, g.ID, evaluation.English)

	r := 3
	_, err := env.svc.Submit(env.ctx, sid, Responses{env.rating1.ID: {Rating: &r}})

	var verr *evaluation.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected *evaluation.ValidationError, got %v", err)
	}
	if _, ok := verr.Fields[env.rating2.ID.String()]; !ok || len(verr.Fields) != 1 {
		t.Errorf("unexpected field errors: %v", verr.Fields)
	}
	if n := env.client.Survey.Query().CountX(env.ctx); n != 0 {
		t.Errorf("surveys = %d, want 0", n)
	}

	p, _ := env.sessions.Load(env.ctx, sid)
	if p.ProfessorIndex != 0 {
		t.Errorf("cursor moved to %d on failed submit", p.ProfessorIndex)
	}
}

func TestSubmit_OnlyActiveQuestions(t *testing.T) {
	env := newTestEnv(t)
	g := env.group(t, "MED-105", 1, 1)
	env.svc.Start(env.ctx, sid, g.ID, evaluation.English)

	env.client.Question.UpdateOneID(env.rating2.ID).SetIsActive(false).ExecX(env.ctx)

	r := 4
	if _, err := env.svc.Submit(env.ctx, sid, Responses{env.rating1.ID: {Rating: &r}}); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if n := env.client.Answer.Query().CountX(env.ctx); n != 2 {
		t.Errorf("answers = %d, want 2 (active rating plus empty comment)", n)
	}
}

func TestInternship_FirstSemester(t *testing.T) {
	env := newTestEnv(t)
	g := env.group(t, "MED-106", 1, 1)
	env.svc.Start(env.ctx, sid, g.ID, evaluation.English)

	if _, err := env.svc.InternshipStep(env.ctx, sid); !errors.Is(err, ErrInternshipUnavailable) {
		t.Fatalf("Expected ErrInternshipUnavailable, got %v", err)
	}
	if env.sessions.Len() != 0 {
		t.Error("session must be cleared")
	}
	if got := env.participated(t, g.ID); got != 0 {
		t.Errorf("participated = %d, want 0", got)
	}
	if n := env.client.InternshipSurvey.Query().CountX(env.ctx); n != 0 {
		t.Errorf("internship surveys = %d, want 0", n)
	}
}

func TestCurrentStep_StaleSession(t *testing.T) {
	env := newTestEnv(t)

	step, err := env.svc.CurrentStep(env.ctx, "unknown")
	if err != nil || step.Stage != StageStart {
		t.Fatalf("got (%v, %v), want start step", step, err)
	}

	g := env.group(t, "MED-107", 1, 2)
	env.svc.Start(env.ctx, sid, g.ID, evaluation.English)
	env.client.GroupProfessor.Delete().ExecX(env.ctx)
	env.client.Group.DeleteOneID(g.ID).ExecX(env.ctx)

	step, err = env.svc.CurrentStep(env.ctx, sid)
	if err != nil || step.Stage != StageStart {
		t.Fatalf("got (%v, %v), want start step", step, err)
	}
	if env.sessions.Len() != 0 {
		t.Error("stale session must be cleared")
	}
}

func TestFinish(t *testing.T) {
	env := newTestEnv(t)
	g := env.group(t, "MED-108", 1, 1)
	env.svc.Start(env.ctx, sid, g.ID, evaluation.English)

	if err := env.svc.Finish(env.ctx, sid); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	if env.sessions.Len() != 0 {
		t.Error("session must be cleared")
	}
}

func TestSurveyAdmin(t *testing.T) {
	env := newTestEnv(t)
	g := env.group(t, "MED-109", 1, 1)
	env.svc.Start(env.ctx, sid, g.ID, evaluation.English)
	if _, err := env.svc.Submit(env.ctx, sid, env.fullAnswers()); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	list, err := env.svc.ListSurveys(env.ctx, ListSurveysRequest{GroupID: &g.ID})
	if err != nil {
		t.Fatalf("ListSurveys failed: %v", err)
	}
	if list.Total != 1 || len(list.Data) != 1 || list.Page != 1 || list.PerPage != 20 {
		t.Fatalf("unexpected page: %+v", list)
	}
	if list.Data[0].Average != 1 {
		t.Errorf("Average = %v, want 1 (N/A excluded)", list.Data[0].Average)
	}

	detail, err := env.svc.GetSurvey(env.ctx, list.Data[0].ID)
	if err != nil {
		t.Fatalf("GetSurvey failed: %v", err)
	}
	if len(detail.Answers) != 3 {
		t.Fatalf("answers = %d, want 3", len(detail.Answers))
	}
	if detail.Answers[0].QuestionID != env.rating1.ID || detail.Answers[0].RatingLabel != "Strongly Agree" {
		t.Errorf("first answer = %+v", detail.Answers[0])
	}
	if detail.Answers[1].RatingLabel != "Not Applicable" {
		t.Errorf("second answer label = %q", detail.Answers[1].RatingLabel)
	}
	if detail.Answers[2].Text == nil || *detail.Answers[2].Text != "Very helpful" {
		t.Errorf("comment = %v", detail.Answers[2].Text)
	}

	if err := env.svc.DeleteSurvey(env.ctx, detail.ID); err != nil {
		t.Fatalf("DeleteSurvey failed: %v", err)
	}
	if n := env.client.Answer.Query().CountX(env.ctx); n != 0 {
		t.Errorf("answers = %d after delete", n)
	}
	if got := env.participated(t, g.ID); got != 1 {
		t.Errorf("participated = %d, deleting surveys must not change it", got)
	}
	if _, err := env.svc.GetSurvey(env.ctx, detail.ID); !errors.Is(err, ErrSurveyNotFound) {
		t.Errorf("Expected ErrSurveyNotFound, got %v", err)
	}
}

func TestCurrentStep_ShrunkAssignmentsDoNotCount(t *testing.T) {
	env := newTestEnv(t)
	g := env.group(t, "MED-110", 1, 2)

	if _, err := env.svc.Start(env.ctx, sid, g.ID, evaluation.English); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if _, err := env.svc.Submit(env.ctx, sid, env.fullAnswers()); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	// The remaining professor is unassigned mid-wizard.
	env.client.GroupProfessor.Delete().ExecX(env.ctx)
	env.client.GroupProfessor.Create().
		SetGroupID(g.ID).
		SetProfessorID(env.client.Survey.Query().FirstX(env.ctx).ProfessorID).
		SaveX(env.ctx)

	for i := 0; i < 2; i++ {
		step, err := env.svc.CurrentStep(env.ctx, sid)
		if err != nil {
			t.Fatalf("CurrentStep failed: %v", err)
		}
		if step.Stage != StageComplete || step.Position != 1 || step.Total != 1 {
			t.Fatalf("got %q %d/%d, want complete 1/1", step.Stage, step.Position, step.Total)
		}
	}
	if n := env.participated(t, g.ID); n != 0 {
		t.Fatalf("participated = %d after reads, want 0", n)
	}

	step, err := env.svc.Skip(env.ctx, sid)
	if err != nil {
		t.Fatalf("Skip failed: %v", err)
	}
	if step.Stage != StageDone {
		t.Errorf("Stage = %q, want done", step.Stage)
	}
	if n := env.participated(t, g.ID); n != 1 {
		t.Errorf("participated = %d, want 1", n)
	}
}
