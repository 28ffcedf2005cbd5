// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Answer is the predicate function for answer builders.
type Answer func(*sql.Selector)

// Department is the predicate function for department builders.
type Department func(*sql.Selector)

// Group is the predicate function for group builders.
type Group func(*sql.Selector)

// GroupProfessor is the predicate function for groupprofessor builders.
type GroupProfessor func(*sql.Selector)

// InternshipAnswer is the predicate function for internshipanswer builders.
type InternshipAnswer func(*sql.Selector)

// InternshipQuestion is the predicate function for internshipquestion builders.
type InternshipQuestion func(*sql.Selector)

// InternshipSurvey is the predicate function for internshipsurvey builders.
type InternshipSurvey func(*sql.Selector)

// Professor is the predicate function for professor builders.
type Professor func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// School is the predicate function for school builders.
type School func(*sql.Selector)

// Survey is the predicate function for survey builders.
type Survey func(*sql.Selector)
