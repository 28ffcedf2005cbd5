package survey

import (
	"context"
	"fmt"
	"sort"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/yalgashev/survey/internal/evaluation"
	"github.com/yalgashev/survey/internal/repo"
	entanswer "github.com/yalgashev/survey/internal/repo/answer"
	entianswer "github.com/yalgashev/survey/internal/repo/internshipanswer"
	entisurvey "github.com/yalgashev/survey/internal/repo/internshipsurvey"
	entsurvey "github.com/yalgashev/survey/internal/repo/survey"
	"github.com/yalgashev/survey/pkg/database"
)

func normalizePage(req *ListSurveysRequest) int {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	return (req.Page - 1) * req.PerPage
}

func paginate[T any](data []T, total int, req ListSurveysRequest) *PaginatedResult[T] {
	return &PaginatedResult[T]{
		Data:       data,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: (total + req.PerPage - 1) / req.PerPage,
	}
}

// ---------------------------------------------------------------------------
// Professor surveys
// ---------------------------------------------------------------------------

func (s *surveyService) ListSurveys(ctx context.Context, req ListSurveysRequest) (*PaginatedResult[SurveySummary], error) {
	offset := normalizePage(&req)

	q := s.db.Survey.Query()
	if req.GroupID != nil {
		q = q.Where(entsurvey.GroupID(*req.GroupID))
	}
	if req.ProfessorID != nil {
		q = q.Where(entsurvey.ProfessorID(*req.ProfessorID))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count surveys: %w", err)
	}

	rows, err := q.
		WithGroup().
		WithProfessor().
		WithAnswers().
		Order(entsurvey.ByCreatedAt(sql.OrderDesc()), entsurvey.ByID(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list surveys: %w", err)
	}

	out := make([]SurveySummary, len(rows))
	for i, sv := range rows {
		out[i] = summarizeSurvey(sv)
	}
	return paginate(out, total, req), nil
}

func (s *surveyService) GetSurvey(ctx context.Context, id uuid.UUID) (*SurveyDetail, error) {
	sv, err := s.db.Survey.Query().
		Where(entsurvey.ID(id)).
		WithGroup().
		WithProfessor().
		WithAnswers(func(q *repo.AnswerQuery) { q.WithQuestion() }).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrSurveyNotFound
		}
		return nil, fmt.Errorf("get survey: %w", err)
	}

	detail := &SurveyDetail{SurveySummary: summarizeSurvey(sv)}
	for _, a := range sv.Edges.Answers {
		v := AnswerView{QuestionID: a.QuestionID, Rating: a.RatingValue, Text: a.TextValue}
		if q := a.Edges.Question; q != nil {
			v.Question = q.TextEn
			v.Type = evaluation.Kind(q.QuestionType)
			v.SortOrder = q.SortOrder
		}
		detail.Answers = append(detail.Answers, labelled(v))
	}
	sortAnswers(detail.Answers)
	return detail, nil
}

// DeleteSurvey removes a survey and its answers. Participation counts are
// left untouched.
func (s *surveyService) DeleteSurvey(ctx context.Context, id uuid.UUID) error {
	return database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		if _, err := tx.Answer.Delete().Where(entanswer.SurveyID(id)).Exec(ctx); err != nil {
			return fmt.Errorf("delete answers: %w", err)
		}
		if err := tx.Survey.DeleteOneID(id).Exec(ctx); err != nil {
			if repo.IsNotFound(err) {
				return ErrSurveyNotFound
			}
			return fmt.Errorf("delete survey: %w", err)
		}
		return nil
	})
}

// ---------------------------------------------------------------------------
// Internship surveys
// ---------------------------------------------------------------------------

func (s *surveyService) ListInternshipSurveys(ctx context.Context, req ListSurveysRequest) (*PaginatedResult[SurveySummary], error) {
	offset := normalizePage(&req)

	q := s.db.InternshipSurvey.Query()
	if req.GroupID != nil {
		q = q.Where(entisurvey.GroupID(*req.GroupID))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count internship surveys: %w", err)
	}

	rows, err := q.
		WithGroup().
		WithAnswers().
		Order(entisurvey.ByCreatedAt(sql.OrderDesc()), entisurvey.ByID(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list internship surveys: %w", err)
	}

	out := make([]SurveySummary, len(rows))
	for i, sv := range rows {
		out[i] = summarizeInternship(sv)
	}
	return paginate(out, total, req), nil
}

func (s *surveyService) GetInternshipSurvey(ctx context.Context, id uuid.UUID) (*SurveyDetail, error) {
	sv, err := s.db.InternshipSurvey.Query().
		Where(entisurvey.ID(id)).
		WithGroup().
		WithAnswers(func(q *repo.InternshipAnswerQuery) { q.WithQuestion() }).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrSurveyNotFound
		}
		return nil, fmt.Errorf("get internship survey: %w", err)
	}

	detail := &SurveyDetail{SurveySummary: summarizeInternship(sv)}
	for _, a := range sv.Edges.Answers {
		v := AnswerView{QuestionID: a.QuestionID, Rating: a.RatingValue, Text: a.TextValue}
		if q := a.Edges.Question; q != nil {
			v.Question = q.TextEn
			v.Type = evaluation.Kind(q.QuestionType)
			v.SortOrder = q.SortOrder
		}
		detail.Answers = append(detail.Answers, labelled(v))
	}
	sortAnswers(detail.Answers)
	return detail, nil
}

func (s *surveyService) DeleteInternshipSurvey(ctx context.Context, id uuid.UUID) error {
	return database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		if _, err := tx.InternshipAnswer.Delete().Where(entianswer.SurveyID(id)).Exec(ctx); err != nil {
			return fmt.Errorf("delete internship answers: %w", err)
		}
		if err := tx.InternshipSurvey.DeleteOneID(id).Exec(ctx); err != nil {
			if repo.IsNotFound(err) {
				return ErrSurveyNotFound
			}
			return fmt.Errorf("delete internship survey: %w", err)
		}
		return nil
	})
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func summarizeSurvey(sv *repo.Survey) SurveySummary {
	ratings := make([]evaluation.Rating, 0, len(sv.Edges.Answers))
	for _, a := range sv.Edges.Answers {
		if a.RatingValue != nil {
			ratings = append(ratings, evaluation.Rating(*a.RatingValue))
		}
	}

	out := SurveySummary{
		ID:        sv.ID,
		Kind:      KindProfessor,
		CreatedAt: sv.CreatedAt,
		Average:   evaluation.Round2(evaluation.SurveyAverage(ratings)),
	}
	if g := sv.Edges.Group; g != nil {
		out.Group = &GroupView{ID: g.ID, Name: g.Name, Semester: g.Semester}
	}
	if p := sv.Edges.Professor; p != nil {
		out.Professor = &ProfessorView{ID: p.ID, FullName: p.FullName}
	}
	return out
}

func summarizeInternship(sv *repo.InternshipSurvey) SurveySummary {
	ratings := make([]evaluation.Rating, 0, len(sv.Edges.Answers))
	for _, a := range sv.Edges.Answers {
		if a.RatingValue != nil {
			ratings = append(ratings, evaluation.Rating(*a.RatingValue))
		}
	}

	out := SurveySummary{
		ID:        sv.ID,
		Kind:      KindInternship,
		CreatedAt: sv.CreatedAt,
		Average:   evaluation.Round2(evaluation.SurveyAverage(ratings)),
	}
	if g := sv.Edges.Group; g != nil {
		out.Group = &GroupView{ID: g.ID, Name: g.Name, Semester: g.Semester}
	}
	return out
}

func labelled(v AnswerView) AnswerView {
	if v.Rating != nil {
		v.RatingLabel = evaluation.Rating(*v.Rating).Label()
	}
	return v
}

func sortAnswers(answers []AnswerView) {
	sort.SliceStable(answers, func(i, j int) bool {
		if answers[i].SortOrder != answers[j].SortOrder {
			return answers[i].SortOrder < answers[j].SortOrder
		}
		return answers[i].QuestionID.String() < answers[j].QuestionID.String()
	})
}
