package directory

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yalgashev/survey/internal/repo"
	entanswer "github.com/yalgashev/survey/internal/repo/answer"
	entgroup "github.com/yalgashev/survey/internal/repo/group"
	entgp "github.com/yalgashev/survey/internal/repo/groupprofessor"
	entianswer "github.com/yalgashev/survey/internal/repo/internshipanswer"
	entisurvey "github.com/yalgashev/survey/internal/repo/internshipsurvey"
	entsurvey "github.com/yalgashev/survey/internal/repo/survey"
	"github.com/yalgashev/survey/pkg/database"
)

const (
	minSemester = 1
	maxSemester = 8
)

func (s *directoryService) ListGroups(ctx context.Context, req ListGroupsRequest) ([]*repo.Group, error) {
	q := s.db.Group.Query().WithDepartment()
	if req.DepartmentID != nil {
		q = q.Where(entgroup.DepartmentID(*req.DepartmentID))
	}
	if req.Semester != nil {
		q = q.Where(entgroup.Semester(*req.Semester))
	}

	groups, err := q.Order(entgroup.ByName()).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}

func (s *directoryService) GetGroup(ctx context.Context, id uuid.UUID) (*repo.Group, error) {
	g, err := s.db.Group.Query().
		Where(entgroup.ID(id)).
		WithDepartment().
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("get group: %w", err)
	}
	return g, nil
}

func (s *directoryService) CreateGroup(ctx context.Context, req CreateGroupRequest) (*repo.Group, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if req.Semester == 0 {
		req.Semester = minSemester
	}
	if req.Semester < minSemester || req.Semester > maxSemester {
		return nil, ErrInvalidSemester
	}
	if req.TotalStudents < 0 {
		return nil, ErrInvalidStudentCount
	}
	if _, err := s.GetDepartment(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	g, err := s.db.Group.Create().
		SetName(name).
		SetDepartmentID(req.DepartmentID).
		SetSemester(req.Semester).
		SetTotalStudents(req.TotalStudents).
		SetParticipatedStudents(0).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("create group: %w", err)
	}
	return g, nil
}

func (s *directoryService) UpdateGroup(ctx context.Context, id uuid.UUID, req UpdateGroupRequest) (*repo.Group, error) {
	upd := s.db.Group.UpdateOneID(id)
	if v := trimmed(req.Name); v != nil {
		if *v == "" {
			return nil, ErrNameRequired
		}
		upd = upd.SetName(*v)
	}
	if req.DepartmentID != nil {
		if _, err := s.GetDepartment(ctx, *req.DepartmentID); err != nil {
			return nil, err
		}
		upd = upd.SetDepartmentID(*req.DepartmentID)
	}
	if req.Semester != nil {
		if *req.Semester < minSemester || *req.Semester > maxSemester {
			return nil, ErrInvalidSemester
		}
		upd = upd.SetSemester(*req.Semester)
	}
	if req.TotalStudents != nil {
		if *req.TotalStudents < 0 {
			return nil, ErrInvalidStudentCount
		}
		upd = upd.SetTotalStudents(*req.TotalStudents)
	}

	g, err := upd.Save(ctx)
	if err != nil {
		switch {
		case repo.IsNotFound(err):
			return nil, ErrGroupNotFound
		case repo.IsConstraintError(err):
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("update group: %w", err)
	}
	return g, nil
}

// DeleteGroup removes the group together with its assignments and every
// survey submitted by it.
func (s *directoryService) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	return database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		if _, err := tx.Answer.Delete().
			Where(entanswer.HasSurveyWith(entsurvey.GroupID(id))).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete answers: %w", err)
		}
		if _, err := tx.Survey.Delete().Where(entsurvey.GroupID(id)).Exec(ctx); err != nil {
			return fmt.Errorf("delete surveys: %w", err)
		}
		if _, err := tx.InternshipAnswer.Delete().
			Where(entianswer.HasSurveyWith(entisurvey.GroupID(id))).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete internship answers: %w", err)
		}
		if _, err := tx.InternshipSurvey.Delete().Where(entisurvey.GroupID(id)).Exec(ctx); err != nil {
			return fmt.Errorf("delete internship surveys: %w", err)
		}
		if _, err := tx.GroupProfessor.Delete().Where(entgp.GroupID(id)).Exec(ctx); err != nil {
			return fmt.Errorf("delete assignments: %w", err)
		}

		if err := tx.Group.DeleteOneID(id).Exec(ctx); err != nil {
			if repo.IsNotFound(err) {
				return ErrGroupNotFound
			}
			return fmt.Errorf("delete group: %w", err)
		}
		return nil
	})
}
