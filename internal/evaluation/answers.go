package evaluation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidAnswers = errors.New("invalid answers")

// Question is an active catalog entry as the wizard sees it.
type Question struct {
	ID        uuid.UUID
	Kind      Kind
	SortOrder int
	Text      LocalizedText
}

// Response is the raw value a student sent for one question.
type Response struct {
	Rating *int
	Text   *string
}

// Answer is a validated value ready to be persisted. Exactly one of Rating and
// Text is set, matching the question kind.
type Answer struct {
	QuestionID uuid.UUID
	Rating     *Rating
	Text       *string
}

// ValidationError lists the offending questions by id.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%d answer(s) invalid", len(e.Fields))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidAnswers
}

// QuestionIDs returns the offending ids in a stable order.
func (e *ValidationError) QuestionIDs() []string {
	ids := make([]string, 0, len(e.Fields))
	for id := range e.Fields {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// CollectAnswers checks responses against the active question set and returns
// one Answer per question, in question order. Responses for questions outside
// the set are ignored. Missing text answers become empty strings.
func CollectAnswers(questions []Question, responses map[uuid.UUID]Response) ([]Answer, error) {
	answers := make([]Answer, 0, len(questions))
	fields := map[string]string{}

	for _, q := range questions {
		resp := responses[q.ID]

		switch q.Kind {
		case KindRating:
			if resp.Rating == nil {
				fields[q.ID.String()] = "rating is required"
				continue
			}
			r := Rating(*resp.Rating)
			if !r.Valid() {
				fields[q.ID.String()] = fmt.Sprintf("rating must be between %d and %d", StronglyAgree, NotApplicable)
				continue
			}
			answers = append(answers, Answer{QuestionID: q.ID, Rating: &r})

		case KindText:
			text := ""
			if resp.Text != nil {
				text = strings.TrimSpace(*resp.Text)
			}
			answers = append(answers, Answer{QuestionID: q.ID, Text: &text})

		default:
			fields[q.ID.String()] = fmt.Sprintf("unknown question type %q", q.Kind)
		}
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	return answers, nil
}
