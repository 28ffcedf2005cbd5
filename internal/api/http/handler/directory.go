package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/yalgashev/survey/internal/service/directory"
)

type DirectoryHandler struct {
	svc directory.Service
}

func NewDirectoryHandler(svc directory.Service) *DirectoryHandler {
	return &DirectoryHandler{svc: svc}
}

// ---------------------------------------------------------------------------
// Schools
// ---------------------------------------------------------------------------

// GET /api/v1/admin/schools
func (h *DirectoryHandler) ListSchools(c fiber.Ctx) error {
	schools, err := h.svc.ListSchools(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return ok(c, schools)
}

// GET /api/v1/admin/schools/:id
func (h *DirectoryHandler) GetSchool(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "invalid school id")
	}
	s, err := h.svc.GetSchool(c.Context(), id)
	if err != nil {
		return mapDirectoryError(c, err)
	}
	return ok(c, s)
}

// POST /api/v1/admin/schools
func (h *DirectoryHandler) CreateSchool(c fiber.Ctx) error {
	var body struct {
		Name        string `json:"name" validate:"required,max=200"`
		Code        string `json:"code" validate:"required,max=20"`
		Description string `json:"description"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return bindError(c, err)
	}

	s, err := h.svc.CreateSchool(c.Context(), directory.CreateSchoolRequest{
		Name:        body.Name,
		Code:        body.Code,
		Description: body.Description,
	})
	if err != nil {
		return mapDirectoryError(c, err)
	}
	return created(c, s)
}

// PATCH /api/v1/admin/schools/:id
func (h *DirectoryHandler) UpdateSchool(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "invalid school id")
	}

	var body struct {
		Name        *string `json:"name" validate:"omitempty,max=200"`
		Code        *string `json:"code" validate:"omitempty,max=20"`
		Description *string `json:"description"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return bindError(c, err)
	}

	s, err := h.svc.UpdateSchool(c.Context(), id, directory.UpdateSchoolRequest{
		Name:        body.Name,
		Code:        body.Code,
		Description: body.Description,
	})
	if err != nil {
		return mapDirectoryError(c, err)
	}
	return ok(c, s)
}

// DELETE /api/v1/admin/schools/:id
func (h *DirectoryHandler) DeleteSchool(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "invalid school id")
	}
	if err := h.svc.DeleteSchool(c.Context(), id); err != nil {
		return mapDirectoryError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Departments
// ---------------------------------------------------------------------------

// GET /api/v1/admin/departments?school_id=
func (h *DirectoryHandler) ListDepartments(c fiber.Ctx) error {
	schoolID, err := optionalID(c, "school_id")
	if err != nil {
		return badRequest(c, "invalid school id")
	}
	depts, err := h.svc.ListDepartments(c.Context(), schoolID)
	if err != nil {
		return internalError(c, err)
	}
	return ok(c, depts)
}

// GET /api/v1/admin/departments/:id
func (h *DirectoryHandler) GetDepartment(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "invalid department id")
	}
	d, err := h.svc.GetDepartment(c.Context(), id)
	if err != nil {
		return mapDirectoryError(c, err)
	}
	return ok(c, d)
}

// POST /api/v1/admin/departments
func (h *DirectoryHandler) CreateDepartment(c fiber.Ctx) error {
	var body struct {
		SchoolID    uuid.UUID `json:"school_id" validate:"required"`
		Name        string    `json:"name" validate:"required,max=200"`
		Code        string    `json:"code" validate:"required,max=20"`
		Description string    `json:"description"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return bindError(c, err)
	}

	d, err := h.svc.CreateDepartment(c.Context(), directory.CreateDepartmentRequest{
		SchoolID:    body.SchoolID,
		Name:        body.Name,
		Code:        body.Code,
		Description: body.Description,
	})
	if err != nil {
		return mapDirectoryError(c, err)
	}
	return created(c, d)
}

// PATCH /api/v1/admin/departments/:id
func (h *DirectoryHandler) UpdateDepartment(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "invalid department id")
	}

	var body struct {
		SchoolID    *uuid.UUID `json:"school_id"`
		Name        *string    `json:"name" validate:"omitempty,max=200"`
		Code        *string    `json:"code" validate:"omitempty,max=20"`
		Description *string    `json:"description"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return bindError(c, err)
	}

	d, err := h.svc.UpdateDepartment(c.Context(), id, directory.UpdateDepartmentRequest{
		SchoolID:    body.SchoolID,
		Name:        body.Name,
		Code:        body.Code,
		Description: body.Description,
	})
	if err != nil {
		return mapDirectoryError(c, err)
	}
	return ok(c, d)
}

// DELETE /api/v1/admin/departments/:id
func (h *DirectoryHandler) DeleteDepartment(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "invalid department id")
	}
	if err := h.svc.DeleteDepartment(c.Context(), id); err != nil {
		return mapDirectoryError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Groups
// ---------------------------------------------------------------------------

// GET /api/v1/admin/groups?department_id=&semester=
func (h *DirectoryHandler) ListGroups(c fiber.Ctx) error {
	var q struct {
		Semester int `query:"semester"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query")
	}
	deptID, err := optionalID(c, "department_id")
	if err != nil {
		return badRequest(c, "invalid department id")
	}

	req := directory.ListGroupsRequest{DepartmentID: deptID}
	if q.Semester > 0 {
		req.Semester = &q.Semester
	}

	groups, err := h.svc.ListGroups(c.Context(), req)
	if err != nil {
		return internalError(c, err)
	}
	return ok(c, groups)
}

// GET /api/v1/admin/groups/:id
func (h *DirectoryHandler) GetGroup(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "invalid group id")
	}
	g, err := h.svc.GetGroup(c.Context(), id)
	if err != nil {
		return mapDirectoryError(c, err)
	}
	return ok(c, g)
}

// POST /api/v1/admin/groups
func (h *DirectoryHandler) CreateGroup(c fiber.Ctx) error {
	var body struct {
		Name          string    `json:"name" validate:"required,max=50"`
		DepartmentID  uuid.UUID `json:"department_id" validate:"required"`
		Semester      int       `json:"semester" validate:"required"`
		TotalStudents int       `json:"total_students"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return bindError(c, err)
	}

	g, err := h.svc.CreateGroup(c.Context(), directory.CreateGroupRequest{
		Name:          body.Name,
		DepartmentID:  body.DepartmentID,
		Semester:      body.Semester,
		TotalStudents: body.TotalStudents,
	})
	if err != nil {
		return mapDirectoryError(c, err)
	}
	return created(c, g)
}

// PATCH /api/v1/admin/groups/:id
func (h *DirectoryHandler) UpdateGroup(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "invalid group id")
	}

	var body struct {
		Name          *string    `json:"name" validate:"omitempty,max=50"`
		DepartmentID  *uuid.UUID `json:"department_id"`
		Semester      *int       `json:"semester"`
		TotalStudents *int       `json:"total_students"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return bindError(c, err)
	}

	g, err := h.svc.UpdateGroup(c.Context(), id, directory.UpdateGroupRequest{
		Name:          body.Name,
		DepartmentID:  body.DepartmentID,
		Semester:      body.Semester,
		TotalStudents: body.TotalStudents,
	})
	if err != nil {
		return mapDirectoryError(c, err)
	}
	return ok(c, g)
}

// DELETE /api/v1/admin/groups/:id
func (h *DirectoryHandler) DeleteGroup(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "invalid group id")
	}
	if err := h.svc.DeleteGroup(c.Context(), id); err != nil {
		return mapDirectoryError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Professors
// ---------------------------------------------------------------------------

// GET /api/v1/admin/professors?school_id=&search=
func (h *DirectoryHandler) ListProfessors(c fiber.Ctx) error {
	schoolID, err := optionalID(c, "school_id")
	if err != nil {
		return badRequest(c, "invalid school id")
	}

	profs, err := h.svc.ListProfessors(c.Context(), directory.ListProfessorsRequest{
		SchoolID: schoolID,
		Search:   c.Query("search"),
	})
	if err != nil {
		return internalError(c, err)
	}
	return ok(c, profs)
}

// GET /api/v1/admin/professors/:id
func (h *DirectoryHandler) GetProfessor(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "invalid professor id")
	}
	p, err := h.svc.GetProfessor(c.Context(), id)
	if err != nil {
		return mapDirectoryError(c, err)
	}
	return ok(c, p)
}

// POST /api/v1/admin/professors
func (h *DirectoryHandler) CreateProfessor(c fiber.Ctx) error {
	var body struct {
		FullName string    `json:"full_name" validate:"required,max=200"`
		SchoolID uuid.UUID `json:"school_id" validate:"required"`
		Email    string    `json:"email" validate:"omitempty,email"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return bindError(c, err)
	}

	p, err := h.svc.CreateProfessor(c.Context(), directory.CreateProfessorRequest{
		FullName: body.FullName,
		SchoolID: body.SchoolID,
		Email:    body.Email,
	})
	if err != nil {
		return mapDirectoryError(c, err)
	}
	return created(c, p)
}

// PATCH /api/v1/admin/professors/:id
func (h *DirectoryHandler) UpdateProfessor(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "invalid professor id")
	}

	var body struct {
		FullName *string    `json:"full_name" validate:"omitempty,max=200"`
		SchoolID *uuid.UUID `json:"school_id"`
		Email    *string    `json:"email" validate:"omitempty,email"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return bindError(c, err)
	}

	p, err := h.svc.UpdateProfessor(c.Context(), id, directory.UpdateProfessorRequest{
		FullName: body.FullName,
		SchoolID: body.SchoolID,
		Email:    body.Email,
	})
	if err != nil {
		return mapDirectoryError(c, err)
	}
	return ok(c, p)
}

// DELETE /api/v1/admin/professors/:id
func (h *DirectoryHandler) DeleteProfessor(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "invalid professor id")
	}
	if err := h.svc.DeleteProfessor(c.Context(), id); err != nil {
		return mapDirectoryError(c, err)
	}
	return noContent(c)
}

// PUT /api/v1/admin/professors/:id/groups
func (h *DirectoryHandler) SyncProfessorGroups(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "invalid professor id")
	}

	var body struct {
		GroupIDs []uuid.UUID `json:"group_ids"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return bindError(c, err)
	}

	res, err := h.svc.SyncProfessorGroups(c.Context(), id, body.GroupIDs)
	if err != nil {
		return mapDirectoryError(c, err)
	}
	return ok(c, res)
}

// ---------------------------------------------------------------------------
// Assignments
// ---------------------------------------------------------------------------

// GET /api/v1/admin/assignments?group_id=&professor_id=
func (h *DirectoryHandler) ListAssignments(c fiber.Ctx) error {
	groupID, err := optionalID(c, "group_id")
	if err != nil {
		return badRequest(c, "invalid group id")
	}
	profID, err := optionalID(c, "professor_id")
	if err != nil {
		return badRequest(c, "invalid professor id")
	}

	rows, err := h.svc.ListAssignments(c.Context(), directory.ListAssignmentsRequest{
		GroupID:     groupID,
		ProfessorID: profID,
	})
	if err != nil {
		return internalError(c, err)
	}
	return ok(c, rows)
}

// POST /api/v1/admin/assignments
func (h *DirectoryHandler) CreateAssignment(c fiber.Ctx) error {
	var body struct {
		GroupID     uuid.UUID `json:"group_id" validate:"required"`
		ProfessorID uuid.UUID `json:"professor_id" validate:"required"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return bindError(c, err)
	}

	a, err := h.svc.AssignProfessor(c.Context(), body.GroupID, body.ProfessorID)
	if err != nil {
		return mapDirectoryError(c, err)
	}
	return created(c, a)
}

// DELETE /api/v1/admin/assignments/:id
func (h *DirectoryHandler) DeleteAssignment(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "invalid assignment id")
	}
	if err := h.svc.DeleteAssignment(c.Context(), id); err != nil {
		return mapDirectoryError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func mapDirectoryError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, directory.ErrSchoolNotFound),
		errors.Is(err, directory.ErrDepartmentNotFound),
		errors.Is(err, directory.ErrGroupNotFound),
		errors.Is(err, directory.ErrProfessorNotFound),
		errors.Is(err, directory.ErrAssignmentNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, directory.ErrSchoolInUse),
		errors.Is(err, directory.ErrDepartmentInUse),
		errors.Is(err, directory.ErrDuplicate),
		errors.Is(err, directory.ErrAssignmentExists):
		return conflict(c, err.Error())
	case errors.Is(err, directory.ErrInvalidSemester),
		errors.Is(err, directory.ErrInvalidStudentCount),
		errors.Is(err, directory.ErrNameRequired),
		errors.Is(err, directory.ErrCodeRequired):
		return badRequest(c, err.Error())
	default:
		return internalError(c, err)
	}
}
