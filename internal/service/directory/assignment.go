package directory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/yalgashev/survey/internal/repo"
	entgroup "github.com/yalgashev/survey/internal/repo/group"
	entgp "github.com/yalgashev/survey/internal/repo/groupprofessor"
	"github.com/yalgashev/survey/pkg/database"
)

func (s *directoryService) ListAssignments(ctx context.Context, req ListAssignmentsRequest) ([]*repo.GroupProfessor, error) {
	q := s.db.GroupProfessor.Query().
		WithGroup().
		WithProfessor()
	if req.GroupID != nil {
		q = q.Where(entgp.GroupID(*req.GroupID))
	}
	if req.ProfessorID != nil {
		q = q.Where(entgp.ProfessorID(*req.ProfessorID))
	}

	assignments, err := q.
		Order(entgp.ByGroupField(entgroup.FieldName), entgp.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return assignments, nil
}

func (s *directoryService) AssignProfessor(ctx context.Context, groupID, professorID uuid.UUID) (*repo.GroupProfessor, error) {
	if _, err := s.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	if _, err := s.GetProfessor(ctx, professorID); err != nil {
		return nil, err
	}

	a, err := s.db.GroupProfessor.Create().
		SetGroupID(groupID).
		SetProfessorID(professorID).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrAssignmentExists
		}
		return nil, fmt.Errorf("assign professor: %w", err)
	}
	return a, nil
}

func (s *directoryService) DeleteAssignment(ctx context.Context, id uuid.UUID) error {
	if err := s.db.GroupProfessor.DeleteOneID(id).Exec(ctx); err != nil {
		if repo.IsNotFound(err) {
			return ErrAssignmentNotFound
		}
		return fmt.Errorf("delete assignment: %w", err)
	}
	return nil
}

// SyncProfessorGroups makes groupIDs the exact set of groups the professor
// teaches. Existing assignments that stay keep their position.
func (s *directoryService) SyncProfessorGroups(ctx context.Context, professorID uuid.UUID, groupIDs []uuid.UUID) (*SyncResult, error) {
	if _, err := s.GetProfessor(ctx, professorID); err != nil {
		return nil, err
	}

	wanted := lo.Uniq(groupIDs)
	var result SyncResult

	err := database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		if len(wanted) > 0 {
			found, err := tx.Group.Query().Where(entgroup.IDIn(wanted...)).Count(ctx)
			if err != nil {
				return fmt.Errorf("check groups: %w", err)
			}
			if found != len(wanted) {
				return ErrGroupNotFound
			}
		}

		current, err := tx.GroupProfessor.Query().
			Where(entgp.ProfessorID(professorID)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("load assignments: %w", err)
		}
		currentIDs := lo.Map(current, func(a *repo.GroupProfessor, _ int) uuid.UUID {
			return a.GroupID
		})

		add, remove := lo.Difference(wanted, currentIDs)

		if len(remove) > 0 {
			n, err := tx.GroupProfessor.Delete().
				Where(entgp.ProfessorID(professorID), entgp.GroupIDIn(remove...)).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("remove assignments: %w", err)
			}
			result.Removed = n
		}

		if len(add) > 0 {
			builders := lo.Map(add, func(groupID uuid.UUID, _ int) *repo.GroupProfessorCreate {
				return tx.GroupProfessor.Create().
					SetGroupID(groupID).
					SetProfessorID(professorID)
			})
			created, err := tx.GroupProfessor.CreateBulk(builders...).Save(ctx)
			if err != nil {
				return fmt.Errorf("add assignments: %w", err)
			}
			result.Added = len(created)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
