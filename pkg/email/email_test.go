package email

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func ptr(v float64) *float64 { return &v }

func TestBuildProfessorDigest(t *testing.T) {
	msg, err := BuildProfessorDigest("ada@example.edu", DigestData{
		ProfessorName: "Ada <Lovelace>",
		Overall:       ptr(1.755),
		SurveyCount:   4,
		CommentCount:  2,
		Lines: []DigestLine{
			{Question: "Explains clearly", Average: ptr(1.5)},
			{Question: "Is on time", Average: nil},
		},
	})
	if err != nil {
		t.Fatalf("BuildProfessorDigest: %v", err)
	}

	if got := msg.To; len(got) != 1 || got[0] != "ada@example.edu" {
		t.Fatalf("To = %v", got)
	}
	if !strings.HasPrefix(msg.Subject, "Course Evaluation:") {
		t.Errorf("Subject = %q, want default app name prefix", msg.Subject)
	}

	for _, want := range []string{"Surveys received: 4", "Explains clearly: 1.50", "Is on time: N/A", "Ada <Lovelace>"} {
		if !strings.Contains(msg.TextBody, want) {
			t.Errorf("text body missing %q", want)
		}
	}
	if strings.Contains(msg.HTMLBody, "<Lovelace>") {
		t.Error("html body must escape professor name")
	}
	if !strings.Contains(msg.HTMLBody, "Ada &lt;Lovelace&gt;") {
		t.Error("html body missing escaped professor name")
	}
}

func TestBuildMessageValidation(t *testing.T) {
	tests := []struct {
		name string
		from string
		msg  Message
		ok   bool
	}{
		{"missing from", "", Message{To: []string{"a@b.c"}, Subject: "s", TextBody: "t"}, false},
		{"blank recipients", "x@y.z", Message{To: []string{" ", ""}, Subject: "s", TextBody: "t"}, false},
		{"missing subject", "x@y.z", Message{To: []string{"a@b.c"}, TextBody: "t"}, false},
		{"missing body", "x@y.z", Message{To: []string{"a@b.c"}, Subject: "s"}, false},
		{"text only", "x@y.z", Message{To: []string{"a@b.c"}, Subject: "s", TextBody: "t"}, true},
		{"both bodies", "x@y.z", Message{To: []string{"a@b.c"}, Subject: "s", TextBody: "t", HTMLBody: "<p>t</p>"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildMessage(tt.from, tt.msg)
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok {
				var invalid ErrInvalidMessage
				if !errors.As(err, &invalid) {
					t.Fatalf("err = %v, want ErrInvalidMessage", err)
				}
			}
		})
	}
}

func TestSendDisabled(t *testing.T) {
	c := New(Config{Enabled: false, From: "x@y.z"})
	err := c.Send(context.Background(), Message{To: []string{"a@b.c"}, Subject: "s", TextBody: "t"})
	if !errors.Is(err, ErrDisabled) {
		t.Fatalf("err = %v, want ErrDisabled", err)
	}
	if c.Enabled() {
		t.Error("Enabled() = true")
	}
}
