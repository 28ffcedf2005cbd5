package report

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/yalgashev/survey/internal/evaluation"
	"github.com/yalgashev/survey/internal/repo"
	entgroup "github.com/yalgashev/survey/internal/repo/group"
	entprof "github.com/yalgashev/survey/internal/repo/professor"
	entsurvey "github.com/yalgashev/survey/internal/repo/survey"
	"github.com/yalgashev/survey/pkg/email"
)

func professorRef(p *repo.Professor) ProfessorRef {
	return ProfessorRef{ID: p.ID, FullName: p.FullName}
}

func withAnswersNewestFirst(q *repo.SurveyQuery) {
	q.WithAnswers().Order(entsurvey.ByCreatedAt(sql.OrderDesc()), entsurvey.ByID(sql.OrderDesc()))
}

// ProfessorsRating lists every professor with at least one survey, best
// overall average first. Professors whose ratings are all Not Applicable come
// last.
func (s *reportService) ProfessorsRating(ctx context.Context) (*RatingReport, error) {
	cat, err := s.activeQuestions(ctx)
	if err != nil {
		return nil, err
	}

	profs, err := s.db.Professor.Query().
		Where(entprof.HasSurveys()).
		WithSurveys(withAnswersNewestFirst).
		Order(entprof.ByFullName(), entprof.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load professor surveys: %w", err)
	}

	type keyed struct {
		row     RatingRow
		overall float64
		ok      bool
	}
	rows := make([]keyed, len(profs))
	for i, p := range profs {
		row, overall, ok := ratingRow(p, cat)
		rows[i] = keyed{row: row, overall: overall, ok: ok}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ok != rows[j].ok {
			return rows[i].ok
		}
		return rows[i].overall < rows[j].overall
	})

	return &RatingReport{
		Questions: cat.columns(),
		Rows:      lo.Map(rows, func(k keyed, _ int) RatingRow { return k.row }),
	}, nil
}

// ratingRow also returns the unrounded overall used for ordering.
func ratingRow(p *repo.Professor, cat *catalog) (RatingRow, float64, bool) {
	t := tallySurveys(p.Edges.Surveys, cat)
	avgs, overall, ok := t.questionAverages(cat)
	return RatingRow{
		Professor:   professorRef(p),
		SurveyCount: t.surveys,
		Averages:    avgs,
		Overall:     roundedIf(overall, ok),
		Comments:    t.commentList(),
	}, overall, ok
}

func (s *reportService) ProfessorAnalytics(ctx context.Context, professorID uuid.UUID) (*ProfessorAnalytics, error) {
	p, err := s.db.Professor.Query().
		Where(entprof.ID(professorID)).
		WithAssignments().
		WithSurveys(withAnswersNewestFirst).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrProfessorNotFound
		}
		return nil, fmt.Errorf("get professor: %w", err)
	}

	cat, err := s.activeQuestions(ctx)
	if err != nil {
		return nil, err
	}

	// Groups the professor no longer teaches still show their surveys.
	groupIDs := lo.Uniq(append(
		lo.Map(p.Edges.Assignments, func(a *repo.GroupProfessor, _ int) uuid.UUID { return a.GroupID }),
		lo.Map(p.Edges.Surveys, func(sv *repo.Survey, _ int) uuid.UUID { return sv.GroupID })...,
	))
	groups, err := s.db.Group.Query().
		Where(entgroup.IDIn(groupIDs...)).
		Order(entgroup.ByName(), entgroup.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list professor groups: %w", err)
	}

	byGroup := lo.GroupBy(p.Edges.Surveys, func(sv *repo.Survey) uuid.UUID { return sv.GroupID })

	out := &ProfessorAnalytics{
		Professor: professorRef(p),
		Questions: cat.columns(),
		Groups:    make([]GroupAnalytics, 0, len(groups)),
	}
	for _, g := range groups {
		t := tallySurveys(byGroup[g.ID], cat)
		avgs, _, _ := t.questionAverages(cat)
		out.Groups = append(out.Groups, GroupAnalytics{
			Group:       participation(g),
			SurveyCount: t.surveys,
			Averages:    avgs,
			Overall:     roundedIf(t.strict()),
			Comments:    t.commentList(),
		})
	}

	all := tallySurveys(p.Edges.Surveys, cat)
	out.SurveyCount = all.surveys
	out.Overall = roundedIf(all.strict())
	return out, nil
}

func (s *reportService) ProfessorSummaries(ctx context.Context) ([]ProfessorSummary, error) {
	profs, err := s.db.Professor.Query().
		WithAssignments().
		WithSurveys(func(q *repo.SurveyQuery) { q.WithAnswers() }).
		Order(entprof.ByFullName(), entprof.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load professors: %w", err)
	}

	return lo.Map(profs, func(p *repo.Professor, _ int) ProfessorSummary {
		t := tallySurveys(p.Edges.Surveys, &catalog{})
		return ProfessorSummary{
			Professor:    professorRef(p),
			GroupCount:   len(p.Edges.Assignments),
			SurveyCount:  t.surveys,
			Average:      roundedIf(t.strict()),
			NaiveAverage: roundedIf(evaluation.NaiveAverage(t.averages)),
		}
	}), nil
}

func (s *reportService) SendDigest(ctx context.Context, professorID uuid.UUID) error {
	p, err := s.db.Professor.Query().
		Where(entprof.ID(professorID)).
		WithSurveys(withAnswersNewestFirst).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrProfessorNotFound
		}
		return fmt.Errorf("get professor: %w", err)
	}
	if p.Email == nil || strings.TrimSpace(*p.Email) == "" {
		return ErrNoEmail
	}
	if s.mailer == nil || !s.mailer.Enabled() {
		return email.ErrDisabled
	}

	cat, err := s.activeQuestions(ctx)
	if err != nil {
		return err
	}
	row, _, _ := ratingRow(p, cat)

	lines := make([]email.DigestLine, len(cat.rating))
	for i, q := range cat.rating {
		lines[i] = email.DigestLine{Question: q.TextEn, Average: row.Averages[i]}
	}

	msg, err := email.BuildProfessorDigest(strings.TrimSpace(*p.Email), email.DigestData{
		AppName:       s.mailer.AppName(),
		ProfessorName: p.FullName,
		Overall:       row.Overall,
		SurveyCount:   row.SurveyCount,
		CommentCount:  len(row.Comments),
		Lines:         lines,
	})
	if err != nil {
		return err
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}
	return nil
}
