package report

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/yalgashev/survey/internal/evaluation"
	"github.com/yalgashev/survey/internal/repo"
	entgroup "github.com/yalgashev/survey/internal/repo/group"
	entprof "github.com/yalgashev/survey/internal/repo/professor"
	entsurvey "github.com/yalgashev/survey/internal/repo/survey"
)

func (s *reportService) Dashboard(ctx context.Context) (*Dashboard, error) {
	out := &Dashboard{}
	var err error

	if out.Professors, err = s.db.Professor.Query().Count(ctx); err != nil {
		return nil, fmt.Errorf("count professors: %w", err)
	}
	if out.Surveys, err = s.db.Survey.Query().Count(ctx); err != nil {
		return nil, fmt.Errorf("count surveys: %w", err)
	}
	if out.InternshipSurveys, err = s.db.InternshipSurvey.Query().Count(ctx); err != nil {
		return nil, fmt.Errorf("count internship surveys: %w", err)
	}

	since := s.now().AddDate(0, 0, -s.cfg.RecentDays)
	if out.RecentSurveys, err = s.db.Survey.Query().Where(entsurvey.CreatedAtGTE(since)).Count(ctx); err != nil {
		return nil, fmt.Errorf("count recent surveys: %w", err)
	}

	groups, err := s.db.Group.Query().Order(entgroup.ByName(), entgroup.ByID()).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	out.Groups = len(groups)
	out.TotalStudents = lo.SumBy(groups, func(g *repo.Group) int { return g.TotalStudents })
	out.ParticipatedStudents = lo.SumBy(groups, func(g *repo.Group) int { return g.ParticipatedStudents })
	out.ParticipationRate = evaluation.Round2(evaluation.ParticipationRate(out.ParticipatedStudents, out.TotalStudents))
	out.GroupStats = lo.Map(lo.Slice(groups, 0, s.cfg.DashboardGroups), func(g *repo.Group, _ int) GroupParticipation {
		return participation(g)
	})

	if out.TopProfessors, err = s.topProfessors(ctx); err != nil {
		return nil, err
	}
	if out.RecentActivity, err = s.recentActivity(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

// topProfessors ranks professors by the strict average of their surveys.
// Professors without a rated survey are left out.
func (s *reportService) topProfessors(ctx context.Context) ([]RankedProfessor, error) {
	profs, err := s.db.Professor.Query().
		WithSurveys(func(q *repo.SurveyQuery) { q.WithAnswers() }).
		Order(entprof.ByFullName(), entprof.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load professor surveys: %w", err)
	}

	byID := make(map[uuid.UUID]*repo.Professor, len(profs))
	var scores []evaluation.Score
	for _, p := range profs {
		byID[p.ID] = p
		avg, ok := tallySurveys(p.Edges.Surveys, &catalog{}).strict()
		if !ok {
			continue
		}
		scores = append(scores, evaluation.Score{ProfessorID: p.ID, Average: avg})
	}

	ranked := lo.Slice(evaluation.RankAscending(scores), 0, s.cfg.TopProfessors)
	return lo.Map(ranked, func(r evaluation.RankedScore, _ int) RankedProfessor {
		p := byID[r.ProfessorID]
		return RankedProfessor{
			Rank:        r.Rank,
			Professor:   ProfessorRef{ID: p.ID, FullName: p.FullName},
			Average:     evaluation.Round2(r.Average),
			SurveyCount: len(p.Edges.Surveys),
		}
	}), nil
}

func (s *reportService) recentActivity(ctx context.Context) ([]Activity, error) {
	rows, err := s.db.Survey.Query().
		WithGroup().
		WithProfessor().
		WithAnswers().
		Order(entsurvey.ByCreatedAt(sql.OrderDesc()), entsurvey.ByID(sql.OrderDesc())).
		Limit(s.cfg.RecentActivity).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recent surveys: %w", err)
	}

	out := make([]Activity, len(rows))
	for i, sv := range rows {
		a := Activity{
			SurveyID:  sv.ID,
			CreatedAt: sv.CreatedAt,
			Average:   evaluation.Round2(tallySurveys([]*repo.Survey{sv}, &catalog{}).averages[0]),
		}
		if g := sv.Edges.Group; g != nil {
			a.Group = g.Name
		}
		if p := sv.Edges.Professor; p != nil {
			a.Professor = p.FullName
		}
		out[i] = a
	}
	return out, nil
}

func (s *reportService) Participation(ctx context.Context) (*ParticipationReport, error) {
	groups, err := s.db.Group.Query().Order(entgroup.ByName(), entgroup.ByID()).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}

	out := &ParticipationReport{
		Groups:        lo.Map(groups, func(g *repo.Group, _ int) GroupParticipation { return participation(g) }),
		TotalStudents: lo.SumBy(groups, func(g *repo.Group) int { return g.TotalStudents }),
		Participated:  lo.SumBy(groups, func(g *repo.Group) int { return g.ParticipatedStudents }),
	}
	out.Rate = evaluation.Round2(evaluation.ParticipationRate(out.Participated, out.TotalStudents))
	return out, nil
}
