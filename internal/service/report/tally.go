package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yalgashev/survey/internal/evaluation"
	"github.com/yalgashev/survey/internal/repo"
	entq "github.com/yalgashev/survey/internal/repo/question"
)

// catalog is the active professor question set a report is built against.
type catalog struct {
	rating []*repo.Question
	text   map[uuid.UUID]bool
}

func (s *reportService) activeQuestions(ctx context.Context) (*catalog, error) {
	rows, err := s.db.Question.Query().
		Where(entq.IsActive(true)).
		Order(entq.BySortOrder(), entq.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active questions: %w", err)
	}

	c := &catalog{text: make(map[uuid.UUID]bool)}
	for _, q := range rows {
		switch q.QuestionType {
		case entq.QuestionTypeRating:
			c.rating = append(c.rating, q)
		case entq.QuestionTypeText:
			c.text[q.ID] = true
		}
	}
	return c, nil
}

func (c *catalog) columns() []QuestionColumn {
	out := make([]QuestionColumn, len(c.rating))
	for i, q := range c.rating {
		out[i] = QuestionColumn{ID: q.ID, SortOrder: q.SortOrder, Text: q.TextEn}
	}
	return out
}

// tally accumulates the answers of a set of surveys. Surveys must be loaded
// with their answers.
type tally struct {
	surveys    int
	byQuestion map[uuid.UUID][]evaluation.Rating
	averages   []float64
	comments   []string
}

func tallySurveys(surveys []*repo.Survey, c *catalog) *tally {
	t := &tally{byQuestion: make(map[uuid.UUID][]evaluation.Rating)}
	for _, sv := range surveys {
		t.surveys++
		ratings := make([]evaluation.Rating, 0, len(sv.Edges.Answers))
		for _, a := range sv.Edges.Answers {
			if a.RatingValue != nil {
				r := evaluation.Rating(*a.RatingValue)
				ratings = append(ratings, r)
				t.byQuestion[a.QuestionID] = append(t.byQuestion[a.QuestionID], r)
			}
			if a.TextValue != nil && c.text[a.QuestionID] {
				if txt := strings.TrimSpace(*a.TextValue); txt != "" {
					t.comments = append(t.comments, txt)
				}
			}
		}
		t.averages = append(t.averages, evaluation.SurveyAverage(ratings))
	}
	return t
}

// questionAverages returns the pooled average of each active rating question
// (rounded, nil without data) and the unrounded mean of those that have data.
func (t *tally) questionAverages(c *catalog) (avgs []*float64, overall float64, ok bool) {
	avgs = make([]*float64, len(c.rating))
	var present []float64
	for i, q := range c.rating {
		avg, has := evaluation.PooledAverage(t.byQuestion[q.ID])
		if !has {
			continue
		}
		present = append(present, avg)
		avgs[i] = rounded(avg)
	}
	overall, ok = evaluation.MeanOf(present)
	return avgs, overall, ok
}

func (t *tally) strict() (float64, bool) {
	return evaluation.StrictAverage(t.averages)
}

func (t *tally) commentList() []string {
	if t.comments == nil {
		return []string{}
	}
	return t.comments
}

func rounded(v float64) *float64 {
	r := evaluation.Round2(v)
	return &r
}

func roundedIf(v float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return rounded(v)
}

func participation(g *repo.Group) GroupParticipation {
	return GroupParticipation{
		ID:           g.ID,
		Name:         g.Name,
		Semester:     g.Semester,
		Participated: g.ParticipatedStudents,
		Total:        g.TotalStudents,
		Rate:         evaluation.Round2(evaluation.ParticipationRate(g.ParticipatedStudents, g.TotalStudents)),
	}
}
