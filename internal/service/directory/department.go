package directory

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yalgashev/survey/internal/repo"
	entdept "github.com/yalgashev/survey/internal/repo/department"
	entgroup "github.com/yalgashev/survey/internal/repo/group"
)

func (s *directoryService) ListDepartments(ctx context.Context, schoolID *uuid.UUID) ([]*repo.Department, error) {
	q := s.db.Department.Query().WithSchool()
	if schoolID != nil {
		q = q.Where(entdept.SchoolID(*schoolID))
	}

	departments, err := q.Order(entdept.ByName()).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return departments, nil
}

func (s *directoryService) GetDepartment(ctx context.Context, id uuid.UUID) (*repo.Department, error) {
	d, err := s.db.Department.Query().
		Where(entdept.ID(id)).
		WithSchool().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("get department: %w", err)
	}
	return d, nil
}

func (s *directoryService) CreateDepartment(ctx context.Context, req CreateDepartmentRequest) (*repo.Department, error) {
	name, code := strings.TrimSpace(req.Name), strings.TrimSpace(req.Code)
	if name == "" {
		return nil, ErrNameRequired
	}
	if code == "" {
		return nil, ErrCodeRequired
	}
	if _, err := s.GetSchool(ctx, req.SchoolID); err != nil {
		return nil, err
	}

	d, err := s.db.Department.Create().
		SetSchoolID(req.SchoolID).
		SetName(name).
		SetCode(code).
		SetNillableDescription(nilIfEmpty(req.Description)).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("create department: %w", err)
	}
	return d, nil
}

func (s *directoryService) UpdateDepartment(ctx context.Context, id uuid.UUID, req UpdateDepartmentRequest) (*repo.Department, error) {
	upd := s.db.Department.UpdateOneID(id)
	if req.SchoolID != nil {
		if _, err := s.GetSchool(ctx, *req.SchoolID); err != nil {
			return nil, err
		}
		upd = upd.SetSchoolID(*req.SchoolID)
	}
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

	d, err := upd.Save(ctx)
	if err != nil {
		switch {
		case repo.IsNotFound(err):
			return nil, ErrDepartmentNotFound
		case repo.IsConstraintError(err):
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("update department: %w", err)
	}
	return d, nil
}

// DeleteDepartment refuses while groups belong to the department.
func (s *directoryService) DeleteDepartment(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetDepartment(ctx, id); err != nil {
		return err
	}

	hasGroups, err := s.db.Group.Query().Where(entgroup.DepartmentID(id)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("check groups: %w", err)
	}
	if hasGroups {
		return ErrDepartmentInUse
	}

	if err := s.db.Department.DeleteOneID(id).Exec(ctx); err != nil {
		switch {
		case repo.IsNotFound(err):
			return ErrDepartmentNotFound
		case repo.IsConstraintError(err):
			return ErrDepartmentInUse
		}
		return fmt.Errorf("delete department: %w", err)
	}
	return nil
}
