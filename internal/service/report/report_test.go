package report

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/yalgashev/survey/config"
	"github.com/yalgashev/survey/internal/repo"
	"github.com/yalgashev/survey/internal/repo/enttest"
	entq "github.com/yalgashev/survey/internal/repo/question"
	"github.com/yalgashev/survey/pkg/email"
)

type fakeMailer struct {
	enabled bool
	sent    []email.Message
}

func (f *fakeMailer) Enabled() bool   { return f.enabled }
func (f *fakeMailer) AppName() string { return "Evals" }

func (f *fakeMailer) Send(_ context.Context, m email.Message) error {
	f.sent = append(f.sent, m)
	return nil
}

type fixture struct {
	ctx    context.Context
	client *repo.Client
	mailer *fakeMailer
	svc    *reportService

	school  *repo.School
	dept    *repo.Department
	q1, q2  *repo.Question
	comment *repo.Question
	hidden  *repo.Question
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", uuid.NewString())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })

	mailer := &fakeMailer{enabled: true}
	f := &fixture{
		ctx:    ctx,
		client: client,
		mailer: mailer,
		svc:    New(client, mailer, config.ReportsConfig{}).(*reportService),
	}

	f.school = client.School.Create().SetName("Medicine").SetCode("MED").SaveX(ctx)
	f.dept = client.Department.Create().SetSchoolID(f.school.ID).SetName("Therapy").SetCode("THR").SaveX(ctx)
	f.q1 = f.question(t, "Explains clearly", "rating", 1, true)
	f.q2 = f.question(t, "Is punctual", "rating", 2, true)
	f.comment = f.question(t, "Comments", "text", 3, true)
	f.hidden = f.question(t, "Retired question", "rating", 4, false)
	return f
}

func (f *fixture) question(t *testing.T, text, kind string, order int, active bool) *repo.Question {
	t.Helper()
	return f.client.Question.Create().
		SetTextEn(text).SetTextUz(text).SetTextRu(text).
		SetQuestionType(entq.QuestionType(kind)).
		SetSortOrder(order).
		SetIsActive(active).
		SaveX(f.ctx)
}

func (f *fixture) group(t *testing.T, name string, total, participated int) *repo.Group {
	t.Helper()
	return f.client.Group.Create().
		SetName(name).
		SetDepartmentID(f.dept.ID).
		SetSemester(2).
		SetTotalStudents(total).
		SetParticipatedStudents(participated).
		SaveX(f.ctx)
}

func (f *fixture) professor(t *testing.T, name string, mail *string, groups ...*repo.Group) *repo.Professor {
	t.Helper()
	p := f.client.Professor.Create().
		SetFullName(name).
		SetSchoolID(f.school.ID).
		SetNillableEmail(mail).
		SaveX(f.ctx)
	for _, g := range groups {
		f.client.GroupProfessor.Create().SetGroupID(g.ID).SetProfessorID(p.ID).SaveX(f.ctx)
	}
	return p
}

// survey stores one submission with the given q1/q2 ratings and an optional
// comment.
func (f *fixture) survey(t *testing.T, g *repo.Group, p *repo.Professor, r1, r2 int, comment string, at time.Time) {
	t.Helper()
	sv := f.client.Survey.Create().
		SetGroupID(g.ID).
		SetProfessorID(p.ID).
		SetCreatedAt(at).
		SaveX(f.ctx)
	f.client.Answer.Create().SetSurveyID(sv.ID).SetQuestionID(f.q1.ID).SetRatingValue(r1).SaveX(f.ctx)
	f.client.Answer.Create().SetSurveyID(sv.ID).SetQuestionID(f.q2.ID).SetRatingValue(r2).SaveX(f.ctx)
	if comment != "" {
		f.client.Answer.Create().SetSurveyID(sv.ID).SetQuestionID(f.comment.ID).SetTextValue(comment).SaveX(f.ctx)
	}
}

func deref(v *float64) float64 {
	if v == nil {
		return -1
	}
	return *v
}

// seed builds: Bobur (1,1) best, Aziza (1,2)+(3,6), Camila only N/A, Dilnoza
// without surveys.
func (f *fixture) seed(t *testing.T) (a, b, c, d *repo.Professor, g1, g2 *repo.Group) {
	t.Helper()
	g1 = f.group(t, "MED-201", 20, 5)
	g2 = f.group(t, "MED-202", 10, 5)

	mail := "aziza@example.edu"
	a = f.professor(t, "Aziza", &mail, g1, g2)
	b = f.professor(t, "Bobur", nil, g1)
	c = f.professor(t, "Camila", nil, g2)
	d = f.professor(t, "Dilnoza", nil, g2)

	now := time.Now()
	f.survey(t, g1, a, 1, 2, "Great", now)
	f.survey(t, g2, a, 3, 6, "  ", now.AddDate(0, 0, -30))
	f.survey(t, g1, b, 1, 1, "", now)
	f.survey(t, g2, c, 6, 6, "", now)
	return a, b, c, d, g1, g2
}

func TestProfessorsRating(t *testing.T) {
	f := newFixture(t)
	a, b, c, _, _, _ := f.seed(t)

	rep, err := f.svc.ProfessorsRating(f.ctx)
	if err != nil {
		t.Fatalf("ProfessorsRating: %v", err)
	}

	if len(rep.Questions) != 2 || rep.Questions[0].ID != f.q1.ID || rep.Questions[1].ID != f.q2.ID {
		t.Fatalf("questions = %+v, want the two active rating questions", rep.Questions)
	}

	want := []uuid.UUID{b.ID, a.ID, c.ID}
	if len(rep.Rows) != len(want) {
		t.Fatalf("rows = %d, want %d", len(rep.Rows), len(want))
	}
	for i, id := range want {
		if rep.Rows[i].Professor.ID != id {
			t.Errorf("row %d = %s, want %s", i, rep.Rows[i].Professor.FullName, id)
		}
	}

	aziza := rep.Rows[1]
	if got := deref(aziza.Averages[0]); got != 2 {
		t.Errorf("Aziza q1 average = %v, want 2", got)
	}
	if got := deref(aziza.Averages[1]); got != 2 {
		t.Errorf("Aziza q2 average = %v, want 2 (N/A excluded)", got)
	}
	if got := deref(aziza.Overall); got != 2 {
		t.Errorf("Aziza overall = %v, want 2", got)
	}
	if len(aziza.Comments) != 1 || aziza.Comments[0] != "Great" {
		t.Errorf("Aziza comments = %q, want [Great]", aziza.Comments)
	}

	camila := rep.Rows[2]
	if camila.Overall != nil || camila.Averages[0] != nil {
		t.Errorf("Camila should have no data, got overall %v", deref(camila.Overall))
	}
}

func TestDashboard(t *testing.T) {
	f := newFixture(t)
	_, b, _, _, g1, _ := f.seed(t)

	dash, err := f.svc.Dashboard(f.ctx)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}

	if dash.Groups != 2 || dash.Professors != 4 || dash.Surveys != 4 || dash.InternshipSurveys != 0 {
		t.Errorf("counts = %d/%d/%d/%d", dash.Groups, dash.Professors, dash.Surveys, dash.InternshipSurveys)
	}
	if dash.TotalStudents != 30 || dash.ParticipatedStudents != 10 {
		t.Errorf("students = %d/%d, want 10/30", dash.ParticipatedStudents, dash.TotalStudents)
	}
	if dash.ParticipationRate != 33.33 {
		t.Errorf("rate = %v, want 33.33", dash.ParticipationRate)
	}
	if dash.RecentSurveys != 3 {
		t.Errorf("recent surveys = %d, want 3", dash.RecentSurveys)
	}

	if len(dash.TopProfessors) != 2 {
		t.Fatalf("top professors = %d, want 2 (no-data professors excluded)", len(dash.TopProfessors))
	}
	top := dash.TopProfessors[0]
	if top.Rank != 1 || top.Professor.ID != b.ID || top.Average != 1 {
		t.Errorf("top = %+v, want Bobur rank 1 average 1", top)
	}
	if dash.TopProfessors[1].Average != 2.25 {
		t.Errorf("second average = %v, want 2.25", dash.TopProfessors[1].Average)
	}

	if len(dash.RecentActivity) != 4 {
		t.Errorf("recent activity = %d, want 4", len(dash.RecentActivity))
	}
	if len(dash.GroupStats) != 2 || dash.GroupStats[0].ID != g1.ID || dash.GroupStats[0].Rate != 25 {
		t.Errorf("group stats = %+v", dash.GroupStats)
	}
}

func TestParticipation(t *testing.T) {
	f := newFixture(t)
	f.group(t, "EMPTY", 0, 0)
	f.group(t, "FULL", 12, 12)

	rep, err := f.svc.Participation(f.ctx)
	if err != nil {
		t.Fatalf("Participation: %v", err)
	}
	if rep.Groups[0].Rate != 0 {
		t.Errorf("empty group rate = %v, want 0", rep.Groups[0].Rate)
	}
	if rep.Groups[1].Rate != 100 || rep.Rate != 100 {
		t.Errorf("rates = %v / %v, want 100", rep.Groups[1].Rate, rep.Rate)
	}
}

func TestProfessorSummaries(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	rows, err := f.svc.ProfessorSummaries(f.ctx)
	if err != nil {
		t.Fatalf("ProfessorSummaries: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want 4", len(rows))
	}

	tests := []struct {
		name          string
		groups        int
		surveys       int
		strict, naive float64
	}{
		{"Aziza", 2, 2, 2.25, 2.25},
		{"Bobur", 1, 1, 1, 1},
		{"Camila", 1, 1, -1, 0},
		{"Dilnoza", 1, 0, -1, -1},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := rows[i]
			if r.Professor.FullName != tt.name {
				t.Fatalf("row %d = %s", i, r.Professor.FullName)
			}
			if r.GroupCount != tt.groups || r.SurveyCount != tt.surveys {
				t.Errorf("groups/surveys = %d/%d, want %d/%d", r.GroupCount, r.SurveyCount, tt.groups, tt.surveys)
			}
			if got := deref(r.Average); got != tt.strict {
				t.Errorf("strict = %v, want %v", got, tt.strict)
			}
			if got := deref(r.NaiveAverage); got != tt.naive {
				t.Errorf("naive = %v, want %v", got, tt.naive)
			}
		})
	}
}

func TestProfessorAnalytics(t *testing.T) {
	f := newFixture(t)
	a, _, _, _, g1, g2 := f.seed(t)

	if _, err := f.svc.ProfessorAnalytics(f.ctx, uuid.New()); !errors.Is(err, ErrProfessorNotFound) {
		t.Fatalf("err = %v, want ErrProfessorNotFound", err)
	}

	got, err := f.svc.ProfessorAnalytics(f.ctx, a.ID)
	if err != nil {
		t.Fatalf("ProfessorAnalytics: %v", err)
	}
	if len(got.Groups) != 2 || got.Groups[0].Group.ID != g1.ID || got.Groups[1].Group.ID != g2.ID {
		t.Fatalf("groups = %+v", got.Groups)
	}
	if got.SurveyCount != 2 || deref(got.Overall) != 2.25 {
		t.Errorf("totals = %d / %v, want 2 / 2.25", got.SurveyCount, deref(got.Overall))
	}
	if deref(got.Groups[0].Overall) != 1.5 || deref(got.Groups[1].Overall) != 3 {
		t.Errorf("group overalls = %v / %v, want 1.5 / 3", deref(got.Groups[0].Overall), deref(got.Groups[1].Overall))
	}
	if got.Groups[1].Averages[1] != nil {
		t.Errorf("q2 in %s only has N/A, want nil average", g2.Name)
	}
}

func TestSendDigest(t *testing.T) {
	f := newFixture(t)
	a, b, _, _, _, _ := f.seed(t)

	t.Run("no email", func(t *testing.T) {
		if err := f.svc.SendDigest(f.ctx, b.ID); !errors.Is(err, ErrNoEmail) {
			t.Fatalf("err = %v, want ErrNoEmail", err)
		}
	})

	t.Run("unknown professor", func(t *testing.T) {
		if err := f.svc.SendDigest(f.ctx, uuid.New()); !errors.Is(err, ErrProfessorNotFound) {
			t.Fatalf("err = %v, want ErrProfessorNotFound", err)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		f.mailer.enabled = false
		defer func() { f.mailer.enabled = true }()
		if err := f.svc.SendDigest(f.ctx, a.ID); !errors.Is(err, email.ErrDisabled) {
			t.Fatalf("err = %v, want email.ErrDisabled", err)
		}
	})

	t.Run("sent", func(t *testing.T) {
		if err := f.svc.SendDigest(f.ctx, a.ID); err != nil {
			t.Fatalf("SendDigest: %v", err)
		}
		if len(f.mailer.sent) != 1 {
			t.Fatalf("sent = %d, want 1", len(f.mailer.sent))
		}
		msg := f.mailer.sent[0]
		if msg.To[0] != "aziza@example.edu" || msg.Subject != "Evals: your evaluation summary" {
			t.Errorf("message = %v / %q", msg.To, msg.Subject)
		}
	})
}
