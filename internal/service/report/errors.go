package report

import "errors"

var (
	ErrProfessorNotFound = errors.New("professor not found")
	ErrNoEmail           = errors.New("professor has no email address")
)
