package question

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
)

func newTestService(t *testing.T) (*repo.Client, Service) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", uuid.NewString())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client, New(client)
}

func text(en string) evaluation.LocalizedText {
	return evaluation.LocalizedText{EN: en, UZ: en + " (uz)", RU: en + " (ru)"}
}

func TestLoadActive_OrderAndFilter(t *testing.T) {
	ctx := context.Background()
	client, svc := newTestService(t)

	inactive := false
	for _, req := range []CreateQuestionRequest{
		{Text: text("third"), SortOrder: 3},
		{Text: text("first"), SortOrder: 1},
		{Text: text("hidden"), SortOrder: 0, IsActive: &inactive},
		{Text: text("second"), SortOrder: 1, Type: evaluation.KindText},
	} {
		if _, err := svc.Create(ctx, CatalogProfessor, req); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	active, err := LoadActive(ctx, client, CatalogProfessor)
	if err != nil {
		t.Fatalf("LoadActive failed: %v", err)
	}

	want := []string{"first", "second", "third"}
	if len(active) != len(want) {
		t.Fatalf("got %d questions, want %d", len(active), len(want))
	}
	for i, q := range active {
		if q.Text.EN != want[i] {
			t.Errorf("question %d = %q, want %q", i, q.Text.EN, want[i])
		}
	}
	if active[1].Kind != evaluation.KindText {
		t.Errorf("Kind = %q, want text", active[1].Kind)
	}

	all, _ := svc.List(ctx, CatalogProfessor, false)
	if len(all) != 4 {
		t.Errorf("List(all) = %d, want 4", len(all))
	}

	internship, _ := LoadActive(ctx, client, CatalogInternship)
	if len(internship) != 0 {
		t.Errorf("catalogs must be independent, got %d internship questions", len(internship))
	}
}

func TestCreate_Validation(t *testing.T) {
	ctx := context.Background()
	_, svc := newTestService(t)

	tests := []struct {
		name    string
		catalog Catalog
		req     CreateQuestionRequest
		wantErr error
	}{
		{"missing translation", CatalogProfessor, CreateQuestionRequest{Text: evaluation.LocalizedText{EN: "a", UZ: "b"}}, ErrTextRequired},
		{"bad type", CatalogInternship, CreateQuestionRequest{Text: text("a"), Type: "choice"}, ErrInvalidType},
		{"negative order", CatalogProfessor, CreateQuestionRequest{Text: text("a"), SortOrder: -1}, ErrInvalidSortOrder},
		{"unknown catalog", Catalog("other"), CreateQuestionRequest{Text: text("a")}, ErrUnknownCatalog},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tt.catalog, tt.req); !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	_, svc := newTestService(t)

	q, err := svc.Create(ctx, CatalogInternship, CreateQuestionRequest{Text: text("Mentor support")})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	ru, off, kind := "Поддержка наставника", false, evaluation.KindText
	got, err := svc.Update(ctx, CatalogInternship, q.ID, UpdateQuestionRequest{TextRU: &ru, IsActive: &off, Type: &kind})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got.Text.RU != ru || got.IsActive || got.Type != evaluation.KindText {
		t.Errorf("unexpected question after update: %+v", got)
	}
	if got.Text.EN != "Mentor support" {
		t.Errorf("untouched text changed: %q", got.Text.EN)
	}

	if _, err := svc.Update(ctx, CatalogProfessor, q.ID, UpdateQuestionRequest{IsActive: &off}); !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("Expected ErrQuestionNotFound across catalogs, got %v", err)
	}
	blank := " "
	if _, err := svc.Update(ctx, CatalogInternship, q.ID, UpdateQuestionRequest{TextEN: &blank}); !errors.Is(err, ErrTextRequired) {
		t.Errorf("Expected ErrTextRequired, got %v", err)
	}
}

func TestDelete_InUse(t *testing.T) {
	ctx := context.Background()
	client, svc := newTestService(t)

	q, _ := svc.Create(ctx, CatalogProfessor, CreateQuestionRequest{Text: text("Punctual")})
	unused, _ := svc.Create(ctx, CatalogProfessor, CreateQuestionRequest{Text: text("Fair grading")})

	school := client.School.Create().SetName("Medicine").SetCode("MED").SaveX(ctx)
	dept := client.Department.Create().SetSchoolID(school.ID).SetName("Surgery").SetCode("SUR").SaveX(ctx)
	group := client.Group.Create().SetName("MED-101").SetDepartmentID(dept.ID).SaveX(ctx)
	prof := client.Professor.Create().SetFullName("Aziz Rahimov").SetSchoolID(school.ID).SaveX(ctx)
	sv := client.Survey.Create().SetGroupID(group.ID).SetProfessorID(prof.ID).SaveX(ctx)
	client.Answer.Create().SetSurveyID(sv.ID).SetQuestionID(q.ID).SetRatingValue(1).SaveX(ctx)

	if err := svc.Delete(ctx, CatalogProfessor, q.ID); !errors.Is(err, ErrQuestionInUse) {
		t.Errorf("Expected ErrQuestionInUse, got %v", err)
	}
	if _, err := svc.Get(ctx, CatalogProfessor, q.ID); err != nil {
		t.Errorf("question must remain: %v", err)
	}

	if err := svc.Delete(ctx, CatalogProfessor, unused.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := svc.Delete(ctx, CatalogProfessor, uuid.New()); !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("Expected ErrQuestionNotFound, got %v", err)
	}
}

func TestUpdate_TypeLockedOnceAnswered(t *testing.T) {
	ctx := context.Background()
	client, svc := newTestService(t)

	rated, _ := svc.Create(ctx, CatalogProfessor, CreateQuestionRequest{Text: text("Explains clearly")})
	fresh, _ := svc.Create(ctx, CatalogProfessor, CreateQuestionRequest{Text: text("Uses examples")})

	school := client.School.Create().SetName("Medicine").SetCode("MED").SaveX(ctx)
	dept := client.Department.Create().SetSchoolID(school.ID).SetName("Surgery").SetCode("SUR").SaveX(ctx)
	group := client.Group.Create().SetName("MED-101").SetDepartmentID(dept.ID).SaveX(ctx)
	prof := client.Professor.Create().SetFullName("Aziz Rahimov").SetSchoolID(school.ID).SaveX(ctx)
	sv := client.Survey.Create().SetGroupID(group.ID).SetProfessorID(prof.ID).SaveX(ctx)
	client.Answer.Create().SetSurveyID(sv.ID).SetQuestionID(rated.ID).SetRatingValue(3).SaveX(ctx)

	toText, toRating := evaluation.KindText, evaluation.KindRating
	order := 4

	tests := []struct {
		name    string
		id      uuid.UUID
		req     UpdateQuestionRequest
		wantErr error
	}{
		{"answered type change", rated.ID, UpdateQuestionRequest{Type: &toText}, ErrTypeLocked},
		{"answered same type", rated.ID, UpdateQuestionRequest{Type: &toRating, SortOrder: &order}, nil},
		{"answered other fields", rated.ID, UpdateQuestionRequest{SortOrder: &order}, nil},
		{"unanswered type change", fresh.ID, UpdateQuestionRequest{Type: &toText}, nil},
		{"unknown question", uuid.New(), UpdateQuestionRequest{Type: &toText}, ErrQuestionNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(ctx, CatalogProfessor, tt.id, tt.req)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}

	got, err := svc.Get(ctx, CatalogProfessor, rated.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Type != evaluation.KindRating {
		t.Errorf("Type = %q, answered question must stay rating", got.Type)
	}
}

func TestLocalizedFallback(t *testing.T) {
	q := Question{Text: evaluation.LocalizedText{EN: "Clear", UZ: "Aniq", RU: "Ясно"}}
	if got := q.Localized().Text.In(evaluation.Language("fr")); got != "Clear" {
		t.Errorf("In(fr) = %q, want English fallback", got)
	}
}
