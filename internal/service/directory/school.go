package directory

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yalgashev/survey/internal/repo"
	entdept "github.com/yalgashev/survey/internal/repo/department"
	entprof "github.com/yalgashev/survey/internal/repo/professor"
	entschool "github.com/yalgashev/survey/internal/repo/school"
)

func (s *directoryService) ListSchools(ctx context.Context) ([]*repo.School, error) {
	schools, err := s.db.School.Query().
		Order(entschool.ByName()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schools: %w", err)
	}
	return schools, nil
}

func (s *directoryService) GetSchool(ctx context.Context, id uuid.UUID) (*repo.School, error) {
	sc, err := s.db.School.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrSchoolNotFound
		}
		return nil, fmt.Errorf("get school: %w", err)
	}
	return sc, nil
}

func (s *directoryService) CreateSchool(ctx context.Context, req CreateSchoolRequest) (*repo.School, error) {
	name, code := strings.TrimSpace(req.Name), strings.TrimSpace(req.Code)
	if name == "" {
		return nil, ErrNameRequired
	}
	if code == "" {
		return nil, ErrCodeRequired
	}

	sc, err := s.db.School.Create().
		SetName(name).
		SetCode(code).
		SetNillableDescription(nilIfEmpty(req.Description)).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("create school: %w", err)
	}
	return sc, nil
}

func (s *directoryService) UpdateSchool(ctx context.Context, id uuid.UUID, req UpdateSchoolRequest) (*repo.School, error) {
	upd := s.db.School.UpdateOneID(id)
	if v := trimmed(req.Name); v != nil {
		if *v == "" {
			return nil, ErrNameRequired
		}
		upd = upd.SetName(*v)
	}
	if v := trimmed(req.Code); v != nil {
		if *v == "" {
			return nil, ErrCodeRequired
		}
		upd = upd.SetCode(*v)
	}
	if req.Description != nil {
		if d := nilIfEmpty(*req.Description); d != nil {
			upd = upd.SetDescription(*d)
		} else {
			upd = upd.ClearDescription()
		}
	}

	sc, err := upd.Save(ctx)
	if err != nil {
		switch {
		case repo.IsNotFound(err):
			return nil, ErrSchoolNotFound
		case repo.IsConstraintError(err):
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("update school: %w", err)
	}
	return sc, nil
}

// DeleteSchool refuses while departments or professors reference the school.
func (s *directoryService) DeleteSchool(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetSchool(ctx, id); err != nil {
		return err
	}

	hasDepartments, err := s.db.Department.Query().Where(entdept.SchoolID(id)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("check departments: %w", err)
	}
	hasProfessors, err := s.db.Professor.Query().Where(entprof.SchoolID(id)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("check professors: %w", err)
	}
	if hasDepartments || hasProfessors {
		return ErrSchoolInUse
	}

	if err := s.db.School.DeleteOneID(id).Exec(ctx); err != nil {
		switch {
		case repo.IsNotFound(err):
			return ErrSchoolNotFound
		case repo.IsConstraintError(err):
			return ErrSchoolInUse
		}
		return fmt.Errorf("delete school: %w", err)
	}
	return nil
}
