package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/yalgashev/survey/config"
	"github.com/yalgashev/survey/pkg/reqctx"
)

func newApp(cfg config.EvaluationConfig) *fiber.App {
	app := fiber.New()
	app.Use(RequestID())
	app.Use(EvaluationSession(cfg))
	app.Get("/", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"request_id": reqctx.RequestIDFromContext(c.Context()),
			"session_id": reqctx.SessionIDFromContext(c.Context()),
		})
	})
	return app
}

func sessionCookie(resp *http.Response, name string) *http.Cookie {
	for _, ck := range resp.Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

func TestRequestIDPreserved(t *testing.T) {
	app := newApp(config.EvaluationConfig{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if got := resp.Header.Get(HeaderRequestID); got != "abc-123" {
		t.Errorf("X-Request-Id = %q, want abc-123", got)
	}
}

func TestEvaluationSession(t *testing.T) {
	cfg := config.EvaluationConfig{CookieName: "wizard", SessionTTLMinutes: 30}
	app := newApp(cfg)

	tests := []struct {
		name   string
		cookie string
		keep   bool
	}{
		{"issues new id", "", false},
		{"replaces malformed id", "not-a-uuid", false},
		{"keeps valid id", uuid.NewString(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "wizard", Value: tt.cookie})
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}

			ck := sessionCookie(resp, "wizard")
			if ck == nil {
				t.Fatal("session cookie not set")
			}
			if !ck.HttpOnly {
				t.Error("session cookie must be HTTP-only")
			}
			if _, err := uuid.Parse(ck.Value); err != nil {
				t.Errorf("cookie value %q is not a uuid", ck.Value)
			}
			if tt.keep && ck.Value != tt.cookie {
				t.Errorf("cookie = %q, want %q", ck.Value, tt.cookie)
			}
			if !tt.keep && ck.Value == tt.cookie {
				t.Error("malformed cookie must be replaced")
			}
		})
	}
}
