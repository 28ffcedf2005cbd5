package directory

import "errors"

var (
	ErrSchoolNotFound     = errors.New("school not found")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrGroupNotFound      = errors.New("group not found")
	ErrProfessorNotFound  = errors.New("professor not found")
	ErrAssignmentNotFound = errors.New("assignment not found")

	ErrSchoolInUse      = errors.New("school still has departments or professors")
	ErrDepartmentInUse  = errors.New("department still has groups")
	ErrDuplicate        = errors.New("an entry with the same name or code already exists")
	ErrAssignmentExists = errors.New("professor is already assigned to this group")

	ErrInvalidSemester     = errors.New("semester must be between 1 and 8")
	ErrInvalidStudentCount = errors.New("total students must not be negative")
	ErrNameRequired        = errors.New("name is required")
	ErrCodeRequired        = errors.New("code is required")
)
