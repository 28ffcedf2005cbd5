package directory

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yalgashev/survey/internal/repo"
	entanswer "github.com/yalgashev/survey/internal/repo/answer"
	entgp "github.com/yalgashev/survey/internal/repo/groupprofessor"
	entprof "github.com/yalgashev/survey/internal/repo/professor"
	entsurvey "github.com/yalgashev/survey/internal/repo/survey"
	"github.com/yalgashev/survey/pkg/database"
)

func (s *directoryService) ListProfessors(ctx context.Context, req ListProfessorsRequest) ([]*repo.Professor, error) {
	q := s.db.Professor.Query().WithSchool()
	if req.SchoolID != nil {
		q = q.Where(entprof.SchoolID(*req.SchoolID))
	}
	if search := strings.TrimSpace(req.Search); search != "" {
		q = q.Where(entprof.FullNameContainsFold(search))
	}

	professors, err := q.Order(entprof.ByFullName()).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list professors: %w", err)
	}
	return professors, nil
}

func (s *directoryService) GetProfessor(ctx context.Context, id uuid.UUID) (*repo.Professor, error) {
	p, err := s.db.Professor.Query().
		Where(entprof.ID(id)).
		WithSchool().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrProfessorNotFound
		}
		return nil, fmt.Errorf("get professor: %w", err)
	}
	return p, nil
}

func (s *directoryService) CreateProfessor(ctx context.Context, req CreateProfessorRequest) (*repo.Professor, error) {
	name := strings.TrimSpace(req.FullName)
	if name == "" {
		return nil, ErrNameRequired
	}
	if _, err := s.GetSchool(ctx, req.SchoolID); err != nil {
		return nil, err
	}

	p, err := s.db.Professor.Create().
		SetFullName(name).
		SetSchoolID(req.SchoolID).
		SetNillableEmail(nilIfEmpty(strings.ToLower(req.Email))).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create professor: %w", err)
	}
	return p, nil
}

func (s *directoryService) UpdateProfessor(ctx context.Context, id uuid.UUID, req UpdateProfessorRequest) (*repo.Professor, error) {
	upd := s.db.Professor.UpdateOneID(id)
	if v := trimmed(req.FullName); v != nil {
		if *v == "" {
			return nil, ErrNameRequired
		}
		upd = upd.SetFullName(*v)
	}
	if req.SchoolID != nil {
		if _, err := s.GetSchool(ctx, *req.SchoolID); err != nil {
			return nil, err
		}
		upd = upd.SetSchoolID(*req.SchoolID)
	}
	if req.Email != nil {
		if e := nilIfEmpty(strings.ToLower(*req.Email)); e != nil {
			upd = upd.SetEmail(*e)
		} else {
			upd = upd.ClearEmail()
		}
	}

	p, err := upd.Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrProfessorNotFound
		}
		return nil, fmt.Errorf("update professor: %w", err)
	}
	return p, nil
}

// DeleteProfessor removes the professor together with their assignments and
// the surveys that evaluated them.
func (s *directoryService) DeleteProfessor(ctx context.Context, id uuid.UUID) error {
	return database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		if _, err := tx.Answer.Delete().
			Where(entanswer.HasSurveyWith(entsurvey.ProfessorID(id))).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete answers: %w", err)
		}
		if _, err := tx.Survey.Delete().Where(entsurvey.ProfessorID(id)).Exec(ctx); err != nil {
			return fmt.Errorf("delete surveys: %w", err)
		}
		if _, err := tx.GroupProfessor.Delete().Where(entgp.ProfessorID(id)).Exec(ctx); err != nil {
			return fmt.Errorf("delete assignments: %w", err)
		}

		if err := tx.Professor.DeleteOneID(id).Exec(ctx); err != nil {
			if repo.IsNotFound(err) {
				return ErrProfessorNotFound
			}
			return fmt.Errorf("delete professor: %w", err)
		}
		return nil
	})
}
