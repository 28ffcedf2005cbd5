// Code generated by ent, DO NOT EDIT.

package group

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the group type in the database.
	Label = "group"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDepartmentID holds the string denoting the department_id field in the database.
	FieldDepartmentID = "department_id"
	// FieldSemester holds the string denoting the semester field in the database.
	FieldSemester = "semester"
	// FieldTotalStudents holds the string denoting the total_students field in the database.
	FieldTotalStudents = "total_students"
	// FieldParticipatedStudents holds the string denoting the participated_students field in the database.
	FieldParticipatedStudents = "participated_students"
	// EdgeDepartment holds the string denoting the department edge name in mutations.
	EdgeDepartment = "department"
	// EdgeAssignments holds the string denoting the assignments edge name in mutations.
	EdgeAssignments = "assignments"
	// EdgeSurveys holds the string denoting the surveys edge name in mutations.
	EdgeSurveys = "surveys"
	// EdgeInternshipSurveys holds the string denoting the internship_surveys edge name in mutations.
	EdgeInternshipSurveys = "internship_surveys"
	// Table holds the table name of the group in the database.
	Table = "groups"
	// DepartmentTable is the table that holds the department relation/edge.
	DepartmentTable = "groups"
	// DepartmentInverseTable is the table name for the Department entity.
	// It exists in this package in order to avoid circular dependency with the "department" package.
	DepartmentInverseTable = "departments"
	// DepartmentColumn is the table column denoting the department relation/edge.
	DepartmentColumn = "department_id"
	// AssignmentsTable is the table that holds the assignments relation/edge.
	AssignmentsTable = "group_professors"
	// AssignmentsInverseTable is the table name for the GroupProfessor entity.
	// It exists in this package in order to avoid circular dependency with the "groupprofessor" package.
	AssignmentsInverseTable = "group_professors"
	// AssignmentsColumn is the table column denoting the assignments relation/edge.
	AssignmentsColumn = "group_id"
	// SurveysTable is the table that holds the surveys relation/edge.
	SurveysTable = "surveys"
	// SurveysInverseTable is the table name for the Survey entity.
	// It exists in this package in order to avoid circular dependency with the "survey" package.
	SurveysInverseTable = "surveys"
	// SurveysColumn is the table column denoting the surveys relation/edge.
	SurveysColumn = "group_id"
	// InternshipSurveysTable is the table that holds the internship_surveys relation/edge.
	InternshipSurveysTable = "internship_surveys"
	// InternshipSurveysInverseTable is the table name for the InternshipSurvey entity.
	// It exists in this package in order to avoid circular dependency with the "internshipsurvey" package.
	InternshipSurveysInverseTable = "internship_surveys"
	// InternshipSurveysColumn is the table column denoting the internship_surveys relation/edge.
	InternshipSurveysColumn = "group_id"
)

// Columns holds all SQL columns for group fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldName,
	FieldDepartmentID,
	FieldSemester,
	FieldTotalStudents,
	FieldParticipatedStudents,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultSemester holds the default value on creation for the "semester" field.
	DefaultSemester int
	// SemesterValidator is a validator for the "semester" field. It is called by the builders before save.
	SemesterValidator func(int) error
	// DefaultTotalStudents holds the default value on creation for the "total_students" field.
	DefaultTotalStudents int
	// TotalStudentsValidator is a validator for the "total_students" field. It is called by the builders before save.
	TotalStudentsValidator func(int) error
	// DefaultParticipatedStudents holds the default value on creation for the "participated_students" field.
	DefaultParticipatedStudents int
	// ParticipatedStudentsValidator is a validator for the "participated_students" field. It is called by the builders before save.
	ParticipatedStudentsValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Group queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDepartmentID orders the results by the department_id field.
func ByDepartmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepartmentID, opts...).ToFunc()
}

// BySemester orders the results by the semester field.
func BySemester(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSemester, opts...).ToFunc()
}

// ByTotalStudents orders the results by the total_students field.
func ByTotalStudents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalStudents, opts...).ToFunc()
}

// ByParticipatedStudents orders the results by the participated_students field.
func ByParticipatedStudents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParticipatedStudents, opts...).ToFunc()
}

// ByDepartmentField orders the results by department field.
func ByDepartmentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDepartmentStep(), sql.OrderByField(field, opts...))
	}
}

// ByAssignmentsCount orders the results by assignments count.
func ByAssignmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAssignmentsStep(), opts...)
	}
}

// ByAssignments orders the results by assignments terms.
func ByAssignments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAssignmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySurveysCount orders the results by surveys count.
func BySurveysCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSurveysStep(), opts...)
	}
}

// BySurveys orders the results by surveys terms.
func BySurveys(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSurveysStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByInternshipSurveysCount orders the results by internship_surveys count.
func ByInternshipSurveysCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newInternshipSurveysStep(), opts...)
	}
}

// ByInternshipSurveys orders the results by internship_surveys terms.
func ByInternshipSurveys(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInternshipSurveysStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDepartmentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DepartmentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DepartmentTable, DepartmentColumn),
	)
}
func newAssignmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AssignmentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AssignmentsTable, AssignmentsColumn),
	)
}
func newSurveysStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SurveysInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SurveysTable, SurveysColumn),
	)
}
func newInternshipSurveysStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InternshipSurveysInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, InternshipSurveysTable, InternshipSurveysColumn),
	)
}
