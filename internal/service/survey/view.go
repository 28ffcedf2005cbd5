package survey

import (
	"time"

	"github.com/google/uuid"

	"github.com/yalgashev/survey/internal/evaluation"
)

// Stage tells the client which screen to show next.
type Stage string

const (
	StageStart      Stage = "start"
	StageProfessor  Stage = "professor"
	StageInternship Stage = "internship"
	StageComplete   Stage = "complete"
	StageDone       Stage = "done"
)

type GroupView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Semester int       `json:"semester"`
}

type ProfessorView struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
}

type QuestionView struct {
	ID        uuid.UUID       `json:"id"`
	Type      evaluation.Kind `json:"question_type"`
	SortOrder int             `json:"sort_order"`
	Text      string          `json:"text"`
}

// Step is the wizard screen for the current session.
type Step struct {
	Stage     Stage               `json:"stage"`
	Warning   string              `json:"warning,omitempty"`
	Language  evaluation.Language `json:"language,omitempty"`
	Group     *GroupView          `json:"group,omitempty"`
	Professor *ProfessorView      `json:"professor,omitempty"`
	Position  int                 `json:"current_number,omitempty"`
	Total     int                 `json:"total_professors,omitempty"`
	Progress  float64             `json:"progress_percentage,omitempty"`
	Questions []QuestionView      `json:"questions,omitempty"`
}

func startStep(warning string) *Step {
	return &Step{Stage: StageStart, Warning: warning}
}

func doneStep() *Step {
	return &Step{Stage: StageDone}
}

func localize(questions []evaluation.Question, lang evaluation.Language) []QuestionView {
	out := make([]QuestionView, len(questions))
	for i, q := range questions {
		out[i] = QuestionView{
			ID:        q.ID,
			Type:      q.Kind,
			SortOrder: q.SortOrder,
			Text:      q.Text.In(lang),
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Admin views
// ---------------------------------------------------------------------------

type Kind string

const (
	KindProfessor  Kind = "professor"
	KindInternship Kind = "internship"
)

type SurveySummary struct {
	ID        uuid.UUID      `json:"id"`
	Kind      Kind           `json:"kind"`
	CreatedAt time.Time      `json:"created_at"`
	Group     *GroupView     `json:"group,omitempty"`
	Professor *ProfessorView `json:"professor,omitempty"`
	Average   float64        `json:"average"`
}

type AnswerView struct {
	QuestionID  uuid.UUID       `json:"question_id"`
	Question    string          `json:"question"`
	Type        evaluation.Kind `json:"question_type"`
	SortOrder   int             `json:"sort_order"`
	Rating      *int            `json:"rating_value,omitempty"`
	RatingLabel string          `json:"rating_label,omitempty"`
	Text        *string         `json:"text_value,omitempty"`
}

type SurveyDetail struct {
	SurveySummary
	Answers []AnswerView `json:"answers"`
}

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}
