package logs

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/yalgashev/survey/config"
	"github.com/yalgashev/survey/pkg/reqctx"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRequestContextAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(withRequestContext(slog.NewJSONHandler(&buf, nil)))

	ctx := reqctx.WithRequestMeta(context.Background(), &reqctx.RequestMeta{RequestID: "req-42"})
	log.InfoContext(ctx, "submitted")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if rec["request_id"] != "req-42" {
		t.Errorf("request_id = %v, want req-42", rec["request_id"])
	}
}

func TestFanoutRespectsLevels(t *testing.T) {
	var debug, warn bytes.Buffer
	h := fanout{
		slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&warn, &slog.HandlerOptions{Level: slog.LevelWarn}),
	}
	log := slog.New(h).With("component", "test")

	log.Info("hello")

	if !strings.Contains(debug.String(), "component=test") {
		t.Errorf("debug handler missed record: %q", debug.String())
	}
	if warn.Len() != 0 {
		t.Errorf("warn handler got info record: %q", warn.String())
	}
}

func TestLokiWriter(t *testing.T) {
	var got lokiPush
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/loki/api/v1/push" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	cfg := &config.Config{}
	cfg.Logging.Output.Loki.Endpoint = srv.URL + "/"
	cfg.Observability.ServiceName = "evaluations"
	cfg.Server.Environment = "test"

	slog.New(newLokiHandler(cfg, slog.LevelInfo)).Info("pushed")

	if len(got.Streams) != 1 {
		t.Fatalf("streams = %d, want 1", len(got.Streams))
	}
	s := got.Streams[0]
	if s.Stream["service"] != "evaluations" || s.Stream["env"] != "test" {
		t.Errorf("labels = %v", s.Stream)
	}
	if len(s.Values) != 1 || !strings.Contains(s.Values[0][1], `"msg":"pushed"`) {
		t.Errorf("values = %v", s.Values)
	}
}
