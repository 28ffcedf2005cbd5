package directory

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/yalgashev/survey/internal/repo"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateSchoolRequest struct {
	Name        string
	Code        string
	Description string
}

type UpdateSchoolRequest struct {
	Name        *string
	Code        *string
	Description *string
}

type CreateDepartmentRequest struct {
	SchoolID    uuid.UUID
	Name        string
	Code        string
	Description string
}

type UpdateDepartmentRequest struct {
	SchoolID    *uuid.UUID
	Name        *string
	Code        *string
	Description *string
}

type ListGroupsRequest struct {
	DepartmentID *uuid.UUID
	Semester     *int
}

type CreateGroupRequest struct {
	Name          string
	DepartmentID  uuid.UUID
	Semester      int
	TotalStudents int
}

// UpdateGroupRequest never touches participated_students; only completed
// evaluation passes change it.
type UpdateGroupRequest struct {
	Name          *string
	DepartmentID  *uuid.UUID
	Semester      *int
	TotalStudents *int
}

type ListProfessorsRequest struct {
	SchoolID *uuid.UUID
	Search   string
}

type CreateProfessorRequest struct {
	FullName string
	SchoolID uuid.UUID
	Email    string
}

type UpdateProfessorRequest struct {
	FullName *string
	SchoolID *uuid.UUID
	Email    *string
}

type ListAssignmentsRequest struct {
	GroupID     *uuid.UUID
	ProfessorID *uuid.UUID
}

// SyncResult reports what SyncProfessorGroups changed.
type SyncResult struct {
	Added   int `json:"added"`
	Removed int `json:"removed"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	ListSchools(ctx context.Context) ([]*repo.School, error)
	GetSchool(ctx context.Context, id uuid.UUID) (*repo.School, error)
	CreateSchool(ctx context.Context, req CreateSchoolRequest) (*repo.School, error)
	UpdateSchool(ctx context.Context, id uuid.UUID, req UpdateSchoolRequest) (*repo.School, error)
	DeleteSchool(ctx context.Context, id uuid.UUID) error

	ListDepartments(ctx context.Context, schoolID *uuid.UUID) ([]*repo.Department, error)
	GetDepartment(ctx context.Context, id uuid.UUID) (*repo.Department, error)
	CreateDepartment(ctx context.Context, req CreateDepartmentRequest) (*repo.Department, error)
	UpdateDepartment(ctx context.Context, id uuid.UUID, req UpdateDepartmentRequest) (*repo.Department, error)
	DeleteDepartment(ctx context.Context, id uuid.UUID) error

	ListGroups(ctx context.Context, req ListGroupsRequest) ([]*repo.Group, error)
	GetGroup(ctx context.Context, id uuid.UUID) (*repo.Group, error)
	CreateGroup(ctx context.Context, req CreateGroupRequest) (*repo.Group, error)
	UpdateGroup(ctx context.Context, id uuid.UUID, req UpdateGroupRequest) (*repo.Group, error)
	DeleteGroup(ctx context.Context, id uuid.UUID) error

	ListProfessors(ctx context.Context, req ListProfessorsRequest) ([]*repo.Professor, error)
	GetProfessor(ctx context.Context, id uuid.UUID) (*repo.Professor, error)
	CreateProfessor(ctx context.Context, req CreateProfessorRequest) (*repo.Professor, error)
	UpdateProfessor(ctx context.Context, id uuid.UUID, req UpdateProfessorRequest) (*repo.Professor, error)
	DeleteProfessor(ctx context.Context, id uuid.UUID) error

	ListAssignments(ctx context.Context, req ListAssignmentsRequest) ([]*repo.GroupProfessor, error)
	AssignProfessor(ctx context.Context, groupID, professorID uuid.UUID) (*repo.GroupProfessor, error)
	DeleteAssignment(ctx context.Context, id uuid.UUID) error
	SyncProfessorGroups(ctx context.Context, professorID uuid.UUID, groupIDs []uuid.UUID) (*SyncResult, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type directoryService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &directoryService{db: db}
}

func nilIfEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
