package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/yalgashev/survey/config"
	"github.com/yalgashev/survey/internal/api/http/middleware"
	"github.com/yalgashev/survey/internal/evaluation"
	"github.com/yalgashev/survey/internal/service/directory"
	"github.com/yalgashev/survey/internal/service/report"
	"github.com/yalgashev/survey/internal/service/survey"
	"github.com/yalgashev/survey/pkg/email"
)

// ---------------------------------------------------------------------------
// Fakes
// ---------------------------------------------------------------------------

type startCall struct {
	session string
	group   uuid.UUID
	lang    evaluation.Language
}

type fakeSurveys struct {
	survey.Service

	startErr  error
	submitErr error
	started   startCall
	submitted survey.Responses
}

func (f *fakeSurveys) Start(_ context.Context, sid string, groupID uuid.UUID, lang evaluation.Language) (*survey.Step, error) {
	f.started = startCall{session: sid, group: groupID, lang: lang}
	if f.startErr != nil {
		return nil, f.startErr
	}
	return &survey.Step{Stage: survey.StageProfessor, Position: 1, Total: 2}, nil
}

func (f *fakeSurveys) Submit(_ context.Context, _ string, r survey.Responses) (*survey.Step, error) {
	f.submitted = r
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return &survey.Step{Stage: survey.StageInternship}, nil
}

func (f *fakeSurveys) SubmitInternship(context.Context, string, survey.Responses) (*survey.Step, error) {
	return nil, survey.ErrInternshipUnavailable
}

type fakeDirectory struct {
	directory.Service
	deleteErr error
}

func (f *fakeDirectory) DeleteSchool(context.Context, uuid.UUID) error { return f.deleteErr }

type fakeReports struct {
	report.Service
	digestErr error
}

func (f *fakeReports) SendDigest(context.Context, uuid.UUID) error { return f.digestErr }

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{StructValidator: NewStructValidator()})
}

func do(t *testing.T, app *fiber.App, method, path, body string, cookies ...*http.Cookie) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var out map[string]any
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatalf("decode %q: %v", raw, err)
		}
	}
	return resp.StatusCode, out
}

func evaluationApp(svc *fakeSurveys) *fiber.App {
	app := newTestApp()
	app.Use(middleware.EvaluationSession(config.EvaluationConfig{}))
	h := NewEvaluationHandler(svc, &fakeDirectory{}, "uz")
	app.Post("/evaluation/start", h.Start)
	app.Post("/evaluation/submit", h.Submit)
	app.Post("/evaluation/internship", h.SubmitInternship)
	return app
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestEvaluationStart(t *testing.T) {
	groupID := uuid.New()
	sid := uuid.NewString()
	cookie := &http.Cookie{Name: middleware.DefaultSessionCookie, Value: sid}

	tests := []struct {
		name      string
		body      string
		startErr  error
		status    int
		stage     string
		wantLang  evaluation.Language
		wantField string
	}{
		{
			name:     "default language",
			body:     fmt.Sprintf(`{"group_id":%q}`, groupID),
			status:   fiber.StatusOK,
			stage:    "professor",
			wantLang: evaluation.Uzbek,
		},
		{
			name:     "explicit language",
			body:     fmt.Sprintf(`{"group_id":%q,"language":"RU"}`, groupID),
			status:   fiber.StatusOK,
			stage:    "professor",
			wantLang: evaluation.Russian,
		},
		{
			name:   "unsupported language",
			body:   fmt.Sprintf(`{"group_id":%q,"language":"de"}`, groupID),
			status: fiber.StatusBadRequest,
		},
		{
			name:      "missing group",
			body:      `{"language":"en"}`,
			status:    fiber.StatusBadRequest,
			wantField: "group_id",
		},
		{
			name:     "no professors",
			body:     fmt.Sprintf(`{"group_id":%q}`, groupID),
			startErr: survey.ErrNoProfessors,
			status:   fiber.StatusOK,
			stage:    "start",
		},
		{
			name:     "unknown group",
			body:     fmt.Sprintf(`{"group_id":%q}`, groupID),
			startErr: survey.ErrGroupNotFound,
			status:   fiber.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeSurveys{startErr: tt.startErr}
			status, body := do(t, evaluationApp(svc), http.MethodPost, "/evaluation/start", tt.body, cookie)

			if status != tt.status {
				t.Fatalf("status = %d, want %d (%v)", status, tt.status, body)
			}
			if tt.stage != "" {
				data, _ := body["data"].(map[string]any)
				if data["stage"] != tt.stage {
					t.Errorf("stage = %v, want %s", data["stage"], tt.stage)
				}
			}
			if tt.wantLang != "" {
				if svc.started.lang != tt.wantLang {
					t.Errorf("language = %q, want %q", svc.started.lang, tt.wantLang)
				}
				if svc.started.session != sid {
					t.Errorf("session = %q, want cookie value", svc.started.session)
				}
				if svc.started.group != groupID {
					t.Errorf("group = %s, want %s", svc.started.group, groupID)
				}
			}
			if tt.wantField != "" {
				fields, _ := body["fields"].(map[string]any)
				if fields[tt.wantField] != "required" {
					t.Errorf("fields = %v, want %s required", fields, tt.wantField)
				}
			}
		})
	}
}

func TestEvaluationSubmit(t *testing.T) {
	q1, q2 := uuid.New(), uuid.New()

	t.Run("passes answers through", func(t *testing.T) {
		svc := &fakeSurveys{}
		payload := fmt.Sprintf(`{"answers":{%q:{"rating":2},%q:{"text":"clear"}}}`, q1, q2)
		status, _ := do(t, evaluationApp(svc), http.MethodPost, "/evaluation/submit", payload)
		if status != fiber.StatusOK {
			t.Fatalf("status = %d", status)
		}
		if r := svc.submitted[q1].Rating; r == nil || *r != 2 {
			t.Errorf("q1 rating = %v, want 2", r)
		}
		if txt := svc.submitted[q2].Text; txt == nil || *txt != "clear" {
			t.Errorf("q2 text = %v, want clear", txt)
		}
	})

	t.Run("missing ratings", func(t *testing.T) {
		svc := &fakeSurveys{submitErr: &evaluation.ValidationError{Fields: map[string]string{q1.String(): "rating is required"}}}
		status, body := do(t, evaluationApp(svc), http.MethodPost, "/evaluation/submit", `{"answers":{}}`)
		if status != fiber.StatusUnprocessableEntity {
			t.Fatalf("status = %d, want 422", status)
		}
		fields, _ := body["fields"].(map[string]any)
		if _, ok := fields[q1.String()]; !ok {
			t.Errorf("fields = %v, want %s", fields, q1)
		}
	})

	t.Run("internship unavailable", func(t *testing.T) {
		status, body := do(t, evaluationApp(&fakeSurveys{}), http.MethodPost, "/evaluation/internship", `{"answers":{}}`)
		if status != fiber.StatusOK {
			t.Fatalf("status = %d, want 200", status)
		}
		data, _ := body["data"].(map[string]any)
		if data["stage"] != "done" || data["warning"] == "" {
			t.Errorf("data = %v, want done with warning", data)
		}
	})
}

func TestDeleteSchoolInUse(t *testing.T) {
	app := newTestApp()
	h := NewDirectoryHandler(&fakeDirectory{deleteErr: directory.ErrSchoolInUse})
	app.Delete("/schools/:id", h.DeleteSchool)

	status, body := do(t, app, http.MethodDelete, "/schools/"+uuid.NewString(), "")
	if status != fiber.StatusConflict {
		t.Fatalf("status = %d, want 409", status)
	}
	if body["error"] != directory.ErrSchoolInUse.Error() {
		t.Errorf("error = %v", body["error"])
	}

	status, _ = do(t, app, http.MethodDelete, "/schools/not-a-uuid", "")
	if status != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400 for malformed id", status)
	}
}

func TestSendDigest(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"sent", nil, fiber.StatusAccepted},
		{"no email", report.ErrNoEmail, fiber.StatusUnprocessableEntity},
		{"email disabled", email.ErrDisabled, fiber.StatusServiceUnavailable},
		{"unknown professor", report.ErrProfessorNotFound, fiber.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp()
			app.Post("/professors/:id/digest", NewReportHandler(&fakeReports{digestErr: tt.err}).SendDigest)

			status, _ := do(t, app, http.MethodPost, "/professors/"+uuid.NewString()+"/digest", "")
			if status != tt.status {
				t.Errorf("status = %d, want %d", status, tt.status)
			}
		})
	}
}
