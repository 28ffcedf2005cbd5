// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswersColumns holds the columns for the "answers" table.
	AnswersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "rating_value", Type: field.TypeInt, Nullable: true},
		{Name: "text_value", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "question_id", Type: field.TypeUUID},
		{Name: "survey_id", Type: field.TypeUUID},
	}
	// AnswersTable holds the schema information for the "answers" table.
	AnswersTable = &schema.Table{
		Name:       "answers",
		Columns:    AnswersColumns,
		PrimaryKey: []*schema.Column{AnswersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "answers_questions_answers",
				Columns:    []*schema.Column{AnswersColumns[3]},
				RefColumns: []*schema.Column{QuestionsColumns[0]},
				OnDelete:   schema.Restrict,
			},
			{
				Symbol:     "answers_surveys_answers",
				Columns:    []*schema.Column{AnswersColumns[4]},
				RefColumns: []*schema.Column{SurveysColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "answer_survey_id_question_id",
				Unique:  true,
				Columns: []*schema.Column{AnswersColumns[4], AnswersColumns[3]},
			},
			{
				Name:    "answer_question_id",
				Unique:  false,
				Columns: []*schema.Column{AnswersColumns[3]},
			},
		},
	}
	// DepartmentsColumns holds the columns for the "departments" table.
	DepartmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 200},
		{Name: "code", Type: field.TypeString, Size: 20},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "school_id", Type: field.TypeUUID},
	}
	// DepartmentsTable holds the schema information for the "departments" table.
	DepartmentsTable = &schema.Table{
		Name:       "departments",
		Columns:    DepartmentsColumns,
		PrimaryKey: []*schema.Column{DepartmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "departments_schools_departments",
				Columns:    []*schema.Column{DepartmentsColumns[6]},
				RefColumns: []*schema.Column{SchoolsColumns[0]},
				OnDelete:   schema.Restrict,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "department_school_id_name",
				Unique:  true,
				Columns: []*schema.Column{DepartmentsColumns[6], DepartmentsColumns[3]},
			},
			{
				Name:    "department_school_id_code",
				Unique:  true,
				Columns: []*schema.Column{DepartmentsColumns[6], DepartmentsColumns[4]},
			},
		},
	}
	// GroupsColumns holds the columns for the "groups" table.
	GroupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 50},
		{Name: "semester", Type: field.TypeInt, Default: 1},
		{Name: "total_students", Type: field.TypeInt, Default: 0},
		{Name: "participated_students", Type: field.TypeInt, Default: 0},
		{Name: "department_id", Type: field.TypeUUID},
	}
	// GroupsTable holds the schema information for the "groups" table.
	GroupsTable = &schema.Table{
		Name:       "groups",
		Columns:    GroupsColumns,
		PrimaryKey: []*schema.Column{GroupsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "groups_departments_groups",
				Columns:    []*schema.Column{GroupsColumns[7]},
				RefColumns: []*schema.Column{DepartmentsColumns[0]},
				OnDelete:   schema.Restrict,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "group_department_id",
				Unique:  false,
				Columns: []*schema.Column{GroupsColumns[7]},
			},
		},
	}
	// GroupProfessorsColumns holds the columns for the "group_professors" table.
	GroupProfessorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "group_id", Type: field.TypeUUID},
		{Name: "professor_id", Type: field.TypeUUID},
	}
	// GroupProfessorsTable holds the schema information for the "group_professors" table.
	GroupProfessorsTable = &schema.Table{
		Name:       "group_professors",
		Columns:    GroupProfessorsColumns,
		PrimaryKey: []*schema.Column{GroupProfessorsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "group_professors_groups_assignments",
				Columns:    []*schema.Column{GroupProfessorsColumns[2]},
				RefColumns: []*schema.Column{GroupsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "group_professors_professors_assignments",
				Columns:    []*schema.Column{GroupProfessorsColumns[3]},
				RefColumns: []*schema.Column{ProfessorsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "groupprofessor_group_id_professor_id",
				Unique:  true,
				Columns: []*schema.Column{GroupProfessorsColumns[2], GroupProfessorsColumns[3]},
			},
			{
				Name:    "groupprofessor_professor_id",
				Unique:  false,
				Columns: []*schema.Column{GroupProfessorsColumns[3]},
			},
		},
	}
	// InternshipAnswersColumns holds the columns for the "internship_answers" table.
	InternshipAnswersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "rating_value", Type: field.TypeInt, Nullable: true},
		{Name: "text_value", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "question_id", Type: field.TypeUUID},
		{Name: "survey_id", Type: field.TypeUUID},
	}
	// InternshipAnswersTable holds the schema information for the "internship_answers" table.
	InternshipAnswersTable = &schema.Table{
		Name:       "internship_answers",
		Columns:    InternshipAnswersColumns,
		PrimaryKey: []*schema.Column{InternshipAnswersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "internship_answers_internship_questions_answers",
				Columns:    []*schema.Column{InternshipAnswersColumns[3]},
				RefColumns: []*schema.Column{InternshipQuestionsColumns[0]},
				OnDelete:   schema.Restrict,
			},
			{
				Symbol:     "internship_answers_internship_surveys_answers",
				Columns:    []*schema.Column{InternshipAnswersColumns[4]},
				RefColumns: []*schema.Column{InternshipSurveysColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "internshipanswer_survey_id_question_id",
				Unique:  true,
				Columns: []*schema.Column{InternshipAnswersColumns[4], InternshipAnswersColumns[3]},
			},
			{
				Name:    "internshipanswer_question_id",
				Unique:  false,
				Columns: []*schema.Column{InternshipAnswersColumns[3]},
			},
		},
	}
	// InternshipQuestionsColumns holds the columns for the "internship_questions" table.
	InternshipQuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "text_en", Type: field.TypeString, Size: 2147483647},
		{Name: "text_uz", Type: field.TypeString, Size: 2147483647},
		{Name: "text_ru", Type: field.TypeString, Size: 2147483647},
		{Name: "question_type", Type: field.TypeEnum, Enums: []string{"rating", "text"}, Default: "rating"},
		{Name: "sort_order", Type: field.TypeInt, Default: 0},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// InternshipQuestionsTable holds the schema information for the "internship_questions" table.
	InternshipQuestionsTable = &schema.Table{
		Name:       "internship_questions",
		Columns:    InternshipQuestionsColumns,
		PrimaryKey: []*schema.Column{InternshipQuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "internshipquestion_is_active_sort_order",
				Unique:  false,
				Columns: []*schema.Column{InternshipQuestionsColumns[8], InternshipQuestionsColumns[7]},
			},
		},
	}
	// InternshipSurveysColumns holds the columns for the "internship_surveys" table.
	InternshipSurveysColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "group_id", Type: field.TypeUUID},
	}
	// InternshipSurveysTable holds the schema information for the "internship_surveys" table.
	InternshipSurveysTable = &schema.Table{
		Name:       "internship_surveys",
		Columns:    InternshipSurveysColumns,
		PrimaryKey: []*schema.Column{InternshipSurveysColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "internship_surveys_groups_internship_surveys",
				Columns:    []*schema.Column{InternshipSurveysColumns[2]},
				RefColumns: []*schema.Column{GroupsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "internshipsurvey_group_id",
				Unique:  false,
				Columns: []*schema.Column{InternshipSurveysColumns[2]},
			},
			{
				Name:    "internshipsurvey_created_at",
				Unique:  false,
				Columns: []*schema.Column{InternshipSurveysColumns[1]},
			},
		},
	}
	// ProfessorsColumns holds the columns for the "professors" table.
	ProfessorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "full_name", Type: field.TypeString, Size: 200},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "school_id", Type: field.TypeUUID},
	}
	// ProfessorsTable holds the schema information for the "professors" table.
	ProfessorsTable = &schema.Table{
		Name:       "professors",
		Columns:    ProfessorsColumns,
		PrimaryKey: []*schema.Column{ProfessorsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "professors_schools_professors",
				Columns:    []*schema.Column{ProfessorsColumns[5]},
				RefColumns: []*schema.Column{SchoolsColumns[0]},
				OnDelete:   schema.Restrict,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "professor_school_id",
				Unique:  false,
				Columns: []*schema.Column{ProfessorsColumns[5]},
			},
			{
				Name:    "professor_full_name",
				Unique:  false,
				Columns: []*schema.Column{ProfessorsColumns[3]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "text_en", Type: field.TypeString, Size: 2147483647},
		{Name: "text_uz", Type: field.TypeString, Size: 2147483647},
		{Name: "text_ru", Type: field.TypeString, Size: 2147483647},
		{Name: "question_type", Type: field.TypeEnum, Enums: []string{"rating", "text"}, Default: "rating"},
		{Name: "sort_order", Type: field.TypeInt, Default: 0},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_is_active_sort_order",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[8], QuestionsColumns[7]},
			},
		},
	}
	// SchoolsColumns holds the columns for the "schools" table.
	SchoolsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true, Size: 200},
		{Name: "code", Type: field.TypeString, Unique: true, Size: 20},
		{Name: "description", Type: field.TypeString, Nullable: true},
	}
	// SchoolsTable holds the schema information for the "schools" table.
	SchoolsTable = &schema.Table{
		Name:       "schools",
		Columns:    SchoolsColumns,
		PrimaryKey: []*schema.Column{SchoolsColumns[0]},
	}
	// SurveysColumns holds the columns for the "surveys" table.
	SurveysColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "group_id", Type: field.TypeUUID},
		{Name: "professor_id", Type: field.TypeUUID},
	}
	// SurveysTable holds the schema information for the "surveys" table.
	SurveysTable = &schema.Table{
		Name:       "surveys",
		Columns:    SurveysColumns,
		PrimaryKey: []*schema.Column{SurveysColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "surveys_groups_surveys",
				Columns:    []*schema.Column{SurveysColumns[2]},
				RefColumns: []*schema.Column{GroupsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "surveys_professors_surveys",
				Columns:    []*schema.Column{SurveysColumns[3]},
				RefColumns: []*schema.Column{ProfessorsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "survey_professor_id_group_id",
				Unique:  false,
				Columns: []*schema.Column{SurveysColumns[3], SurveysColumns[2]},
			},
			{
				Name:    "survey_created_at",
				Unique:  false,
				Columns: []*schema.Column{SurveysColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswersTable,
		DepartmentsTable,
		GroupsTable,
		GroupProfessorsTable,
		InternshipAnswersTable,
		InternshipQuestionsTable,
		InternshipSurveysTable,
		ProfessorsTable,
		QuestionsTable,
		SchoolsTable,
		SurveysTable,
	}
)

func init() {
	AnswersTable.ForeignKeys[0].RefTable = QuestionsTable
	AnswersTable.ForeignKeys[1].RefTable = SurveysTable
	DepartmentsTable.ForeignKeys[0].RefTable = SchoolsTable
	GroupsTable.ForeignKeys[0].RefTable = DepartmentsTable
	GroupProfessorsTable.ForeignKeys[0].RefTable = GroupsTable
	GroupProfessorsTable.ForeignKeys[1].RefTable = ProfessorsTable
	InternshipAnswersTable.ForeignKeys[0].RefTable = InternshipQuestionsTable
	InternshipAnswersTable.ForeignKeys[1].RefTable = InternshipSurveysTable
	InternshipSurveysTable.ForeignKeys[0].RefTable = GroupsTable
	ProfessorsTable.ForeignKeys[0].RefTable = SchoolsTable
	SurveysTable.ForeignKeys[0].RefTable = GroupsTable
	SurveysTable.ForeignKeys[1].RefTable = ProfessorsTable
}
