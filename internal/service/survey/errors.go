package survey

import "errors"

var (
	ErrGroupNotFound  = errors.New("group not found")
	ErrSurveyNotFound = errors.New("survey not found")

	ErrNoProfessors          = errors.New("no professors assigned to this group")
	ErrInternshipUnavailable = errors.New("internship evaluation is only available after the first semester")
	ErrInternshipNotReached  = errors.New("finish the professor evaluations before the internship step")
)
