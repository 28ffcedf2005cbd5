package question

import "errors"

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrQuestionInUse    = errors.New("question has answers and cannot be deleted")
	ErrTypeLocked       = errors.New("question has answers and its type cannot change")
	ErrUnknownCatalog   = errors.New("unknown question catalog")
	ErrTextRequired     = errors.New("question text is required in every language")
	ErrInvalidType      = errors.New("question type must be rating or text")
	ErrInvalidSortOrder = errors.New("sort order must not be negative")
)
