package evaluation

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestCollectAnswers(t *testing.T) {
	r1 := Question{ID: uuid.New(), Kind: KindRating, SortOrder: 1}
	r2 := Question{ID: uuid.New(), Kind: KindRating, SortOrder: 2}
	txt := Question{ID: uuid.New(), Kind: KindText, SortOrder: 3}
	questions := []Question{r1, r2, txt}

	t.Run("one answer per question", func(t *testing.T) {
		answers, err := CollectAnswers(questions, map[uuid.UUID]Response{
			r1.ID:  {Rating: intPtr(1)},
			r2.ID:  {Rating: intPtr(6)},
			txt.ID: {Text: strPtr("  great lectures ")},
		})
		if err != nil {
			t.Fatalf("CollectAnswers failed: %v", err)
		}
		if len(answers) != len(questions) {
			t.Fatalf("got %d answers, want %d", len(answers), len(questions))
		}
		if *answers[1].Rating != NotApplicable {
			t.Errorf("rating = %v, want %v", *answers[1].Rating, NotApplicable)
		}
		if answers[2].Rating != nil || *answers[2].Text != "great lectures" {
			t.Errorf("text answer = %+v", answers[2])
		}
	})

	t.Run("missing text becomes empty", func(t *testing.T) {
		answers, err := CollectAnswers(questions, map[uuid.UUID]Response{
			r1.ID: {Rating: intPtr(2)},
			r2.ID: {Rating: intPtr(3)},
		})
		if err != nil {
			t.Fatalf("CollectAnswers failed: %v", err)
		}
		if answers[2].Text == nil || *answers[2].Text != "" {
			t.Errorf("Expected empty text answer, got %+v", answers[2])
		}
	})

	t.Run("missing and out of range ratings", func(t *testing.T) {
		_, err := CollectAnswers(questions, map[uuid.UUID]Response{
			r2.ID: {Rating: intPtr(7)},
		})
		if !errors.Is(err, ErrInvalidAnswers) {
			t.Fatalf("Expected ErrInvalidAnswers, got %v", err)
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Expected *ValidationError, got %T", err)
		}
		if len(verr.Fields) != 2 {
			t.Errorf("got %d field errors, want 2", len(verr.Fields))
		}
		if _, ok := verr.Fields[txt.ID.String()]; ok {
			t.Error("text question must not be reported")
		}
	})

	t.Run("unknown questions ignored", func(t *testing.T) {
		answers, err := CollectAnswers([]Question{r1}, map[uuid.UUID]Response{
			r1.ID:      {Rating: intPtr(5)},
			uuid.New(): {Rating: intPtr(1)},
		})
		if err != nil {
			t.Fatalf("CollectAnswers failed: %v", err)
		}
		if len(answers) != 1 {
			t.Errorf("got %d answers, want 1", len(answers))
		}
	})
}
