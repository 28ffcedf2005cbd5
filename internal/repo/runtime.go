// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/yalgashev/survey/internal/repo/answer"
	"github.com/yalgashev/survey/internal/repo/department"
	"github.com/yalgashev/survey/internal/repo/group"
	"github.com/yalgashev/survey/internal/repo/groupprofessor"
	"github.com/yalgashev/survey/internal/repo/internshipanswer"
	"github.com/yalgashev/survey/internal/repo/internshipquestion"
	"github.com/yalgashev/survey/internal/repo/internshipsurvey"
	"github.com/yalgashev/survey/internal/repo/professor"
	"github.com/yalgashev/survey/internal/repo/question"
	"github.com/yalgashev/survey/internal/repo/school"
	"github.com/yalgashev/survey/internal/repo/survey"
	"github.com/yalgashev/survey/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answerMixin := schema.Answer{}.Mixin()
	answerMixinFields0 := answerMixin[0].Fields()
	_ = answerMixinFields0
	answerMixinFields1 := answerMixin[1].Fields()
	_ = answerMixinFields1
	answerFields := schema.Answer{}.Fields()
	_ = answerFields
	// answerDescRatingValue is the schema descriptor for rating_value field.
	answerDescRatingValue := answerMixinFields1[2].Descriptor()
	// answer.RatingValueValidator is a validator for the "rating_value" field. It is called by the builders before save.
	answer.RatingValueValidator = answerDescRatingValue.Validators[0].(func(int) error)
	// answerDescID is the schema descriptor for id field.
	answerDescID := answerMixinFields0[0].Descriptor()
	// answer.DefaultID holds the default value on creation for the id field.
	answer.DefaultID = answerDescID.Default.(func() uuid.UUID)
	departmentMixin := schema.Department{}.Mixin()
	departmentMixinFields0 := departmentMixin[0].Fields()
	_ = departmentMixinFields0
	departmentMixinFields1 := departmentMixin[1].Fields()
	_ = departmentMixinFields1
	departmentFields := schema.Department{}.Fields()
	_ = departmentFields
	// departmentDescCreatedAt is the schema descriptor for created_at field.
	departmentDescCreatedAt := departmentMixinFields1[0].Descriptor()
	// department.DefaultCreatedAt holds the default value on creation for the created_at field.
	department.DefaultCreatedAt = departmentDescCreatedAt.Default.(func() time.Time)
	// departmentDescUpdatedAt is the schema descriptor for updated_at field.
	departmentDescUpdatedAt := departmentMixinFields1[1].Descriptor()
	// department.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	department.DefaultUpdatedAt = departmentDescUpdatedAt.Default.(func() time.Time)
	// department.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	department.UpdateDefaultUpdatedAt = departmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// departmentDescName is the schema descriptor for name field.
	departmentDescName := departmentFields[1].Descriptor()
	// department.NameValidator is a validator for the "name" field. It is called by the builders before save.
	department.NameValidator = func() func(string) error {
		validators := departmentDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// departmentDescCode is the schema descriptor for code field.
	departmentDescCode := departmentFields[2].Descriptor()
	// department.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	department.CodeValidator = func() func(string) error {
		validators := departmentDescCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(code string) error {
			for _, fn := range fns {
				if err := fn(code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// departmentDescID is the schema descriptor for id field.
	departmentDescID := departmentMixinFields0[0].Descriptor()
	// department.DefaultID holds the default value on creation for the id field.
	department.DefaultID = departmentDescID.Default.(func() uuid.UUID)
	groupMixin := schema.Group{}.Mixin()
	groupMixinFields0 := groupMixin[0].Fields()
	_ = groupMixinFields0
	groupMixinFields1 := groupMixin[1].Fields()
	_ = groupMixinFields1
	groupFields := schema.Group{}.Fields()
	_ = groupFields
	// groupDescCreatedAt is the schema descriptor for created_at field.
	groupDescCreatedAt := groupMixinFields1[0].Descriptor()
	// group.DefaultCreatedAt holds the default value on creation for the created_at field.
	group.DefaultCreatedAt = groupDescCreatedAt.Default.(func() time.Time)
	// groupDescUpdatedAt is the schema descriptor for updated_at field.
	groupDescUpdatedAt := groupMixinFields1[1].Descriptor()
	// group.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	group.DefaultUpdatedAt = groupDescUpdatedAt.Default.(func() time.Time)
	// group.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	group.UpdateDefaultUpdatedAt = groupDescUpdatedAt.UpdateDefault.(func() time.Time)
	// groupDescName is the schema descriptor for name field.
	groupDescName := groupFields[0].Descriptor()
	// group.NameValidator is a validator for the "name" field. It is called by the builders before save.
	group.NameValidator = func() func(string) error {
		validators := groupDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// groupDescSemester is the schema descriptor for semester field.
	groupDescSemester := groupFields[2].Descriptor()
	// group.DefaultSemester holds the default value on creation for the semester field.
	group.DefaultSemester = groupDescSemester.Default.(int)
	// group.SemesterValidator is a validator for the "semester" field. It is called by the builders before save.
	group.SemesterValidator = groupDescSemester.Validators[0].(func(int) error)
	// groupDescTotalStudents is the schema descriptor for total_students field.
	groupDescTotalStudents := groupFields[3].Descriptor()
	// group.DefaultTotalStudents holds the default value on creation for the total_students field.
	group.DefaultTotalStudents = groupDescTotalStudents.Default.(int)
	// group.TotalStudentsValidator is a validator for the "total_students" field. It is called by the builders before save.
	group.TotalStudentsValidator = groupDescTotalStudents.Validators[0].(func(int) error)
	// groupDescParticipatedStudents is the schema descriptor for participated_students field.
	groupDescParticipatedStudents := groupFields[4].Descriptor()
	// group.DefaultParticipatedStudents holds the default value on creation for the participated_students field.
	group.DefaultParticipatedStudents = groupDescParticipatedStudents.Default.(int)
	// group.ParticipatedStudentsValidator is a validator for the "participated_students" field. It is called by the builders before save.
	group.ParticipatedStudentsValidator = groupDescParticipatedStudents.Validators[0].(func(int) error)
	// groupDescID is the schema descriptor for id field.
	groupDescID := groupMixinFields0[0].Descriptor()
	// group.DefaultID holds the default value on creation for the id field.
	group.DefaultID = groupDescID.Default.(func() uuid.UUID)
	groupprofessorMixin := schema.GroupProfessor{}.Mixin()
	groupprofessorMixinFields0 := groupprofessorMixin[0].Fields()
	_ = groupprofessorMixinFields0
	groupprofessorMixinFields1 := groupprofessorMixin[1].Fields()
	_ = groupprofessorMixinFields1
	groupprofessorFields := schema.GroupProfessor{}.Fields()
	_ = groupprofessorFields
	// groupprofessorDescCreatedAt is the schema descriptor for created_at field.
	groupprofessorDescCreatedAt := groupprofessorMixinFields1[0].Descriptor()
	// groupprofessor.DefaultCreatedAt holds the default value on creation for the created_at field.
	groupprofessor.DefaultCreatedAt = groupprofessorDescCreatedAt.Default.(func() time.Time)
	// groupprofessorDescID is the schema descriptor for id field.
	groupprofessorDescID := groupprofessorMixinFields0[0].Descriptor()
	// groupprofessor.DefaultID holds the default value on creation for the id field.
	groupprofessor.DefaultID = groupprofessorDescID.Default.(func() uuid.UUID)
	internshipanswerMixin := schema.InternshipAnswer{}.Mixin()
	internshipanswerMixinFields0 := internshipanswerMixin[0].Fields()
	_ = internshipanswerMixinFields0
	internshipanswerMixinFields1 := internshipanswerMixin[1].Fields()
	_ = internshipanswerMixinFields1
	internshipanswerFields := schema.InternshipAnswer{}.Fields()
	_ = internshipanswerFields
	// internshipanswerDescRatingValue is the schema descriptor for rating_value field.
	internshipanswerDescRatingValue := internshipanswerMixinFields1[2].Descriptor()
	// internshipanswer.RatingValueValidator is a validator for the "rating_value" field. It is called by the builders before save.
	internshipanswer.RatingValueValidator = internshipanswerDescRatingValue.Validators[0].(func(int) error)
	// internshipanswerDescID is the schema descriptor for id field.
	internshipanswerDescID := internshipanswerMixinFields0[0].Descriptor()
	// internshipanswer.DefaultID holds the default value on creation for the id field.
	internshipanswer.DefaultID = internshipanswerDescID.Default.(func() uuid.UUID)
	internshipquestionMixin := schema.InternshipQuestion{}.Mixin()
	internshipquestionMixinFields0 := internshipquestionMixin[0].Fields()
	_ = internshipquestionMixinFields0
	internshipquestionMixinFields1 := internshipquestionMixin[1].Fields()
	_ = internshipquestionMixinFields1
	internshipquestionMixinFields2 := internshipquestionMixin[2].Fields()
	_ = internshipquestionMixinFields2
	internshipquestionFields := schema.InternshipQuestion{}.Fields()
	_ = internshipquestionFields
	// internshipquestionDescCreatedAt is the schema descriptor for created_at field.
	internshipquestionDescCreatedAt := internshipquestionMixinFields1[0].Descriptor()
	// internshipquestion.DefaultCreatedAt holds the default value on creation for the created_at field.
	internshipquestion.DefaultCreatedAt = internshipquestionDescCreatedAt.Default.(func() time.Time)
	// internshipquestionDescUpdatedAt is the schema descriptor for updated_at field.
	internshipquestionDescUpdatedAt := internshipquestionMixinFields1[1].Descriptor()
	// internshipquestion.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	internshipquestion.DefaultUpdatedAt = internshipquestionDescUpdatedAt.Default.(func() time.Time)
	// internshipquestion.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	internshipquestion.UpdateDefaultUpdatedAt = internshipquestionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// internshipquestionDescTextEn is the schema descriptor for text_en field.
	internshipquestionDescTextEn := internshipquestionMixinFields2[0].Descriptor()
	// internshipquestion.TextEnValidator is a validator for the "text_en" field. It is called by the builders before save.
	internshipquestion.TextEnValidator = internshipquestionDescTextEn.Validators[0].(func(string) error)
	// internshipquestionDescTextUz is the schema descriptor for text_uz field.
	internshipquestionDescTextUz := internshipquestionMixinFields2[1].Descriptor()
	// internshipquestion.TextUzValidator is a validator for the "text_uz" field. It is called by the builders before save.
	internshipquestion.TextUzValidator = internshipquestionDescTextUz.Validators[0].(func(string) error)
	// internshipquestionDescTextRu is the schema descriptor for text_ru field.
	internshipquestionDescTextRu := internshipquestionMixinFields2[2].Descriptor()
	// internshipquestion.TextRuValidator is a validator for the "text_ru" field. It is called by the builders before save.
	internshipquestion.TextRuValidator = internshipquestionDescTextRu.Validators[0].(func(string) error)
	// internshipquestionDescSortOrder is the schema descriptor for sort_order field.
	internshipquestionDescSortOrder := internshipquestionMixinFields2[4].Descriptor()
	// internshipquestion.DefaultSortOrder holds the default value on creation for the sort_order field.
	internshipquestion.DefaultSortOrder = internshipquestionDescSortOrder.Default.(int)
	// internshipquestion.SortOrderValidator is a validator for the "sort_order" field. It is called by the builders before save.
	internshipquestion.SortOrderValidator = internshipquestionDescSortOrder.Validators[0].(func(int) error)
	// internshipquestionDescIsActive is the schema descriptor for is_active field.
	internshipquestionDescIsActive := internshipquestionMixinFields2[5].Descriptor()
	// internshipquestion.DefaultIsActive holds the default value on creation for the is_active field.
	internshipquestion.DefaultIsActive = internshipquestionDescIsActive.Default.(bool)
	// internshipquestionDescID is the schema descriptor for id field.
	internshipquestionDescID := internshipquestionMixinFields0[0].Descriptor()
	// internshipquestion.DefaultID holds the default value on creation for the id field.
	internshipquestion.DefaultID = internshipquestionDescID.Default.(func() uuid.UUID)
	internshipsurveyMixin := schema.InternshipSurvey{}.Mixin()
	internshipsurveyMixinFields0 := internshipsurveyMixin[0].Fields()
	_ = internshipsurveyMixinFields0
	internshipsurveyMixinFields1 := internshipsurveyMixin[1].Fields()
	_ = internshipsurveyMixinFields1
	internshipsurveyFields := schema.InternshipSurvey{}.Fields()
	_ = internshipsurveyFields
	// internshipsurveyDescCreatedAt is the schema descriptor for created_at field.
	internshipsurveyDescCreatedAt := internshipsurveyMixinFields1[0].Descriptor()
	// internshipsurvey.DefaultCreatedAt holds the default value on creation for the created_at field.
	internshipsurvey.DefaultCreatedAt = internshipsurveyDescCreatedAt.Default.(func() time.Time)
	// internshipsurveyDescID is the schema descriptor for id field.
	internshipsurveyDescID := internshipsurveyMixinFields0[0].Descriptor()
	// internshipsurvey.DefaultID holds the default value on creation for the id field.
	internshipsurvey.DefaultID = internshipsurveyDescID.Default.(func() uuid.UUID)
	professorMixin := schema.Professor{}.Mixin()
	professorMixinFields0 := professorMixin[0].Fields()
	_ = professorMixinFields0
	professorMixinFields1 := professorMixin[1].Fields()
	_ = professorMixinFields1
	professorFields := schema.Professor{}.Fields()
	_ = professorFields
	// professorDescCreatedAt is the schema descriptor for created_at field.
	professorDescCreatedAt := professorMixinFields1[0].Descriptor()
	// professor.DefaultCreatedAt holds the default value on creation for the created_at field.
	professor.DefaultCreatedAt = professorDescCreatedAt.Default.(func() time.Time)
	// professorDescUpdatedAt is the schema descriptor for updated_at field.
	professorDescUpdatedAt := professorMixinFields1[1].Descriptor()
	// professor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	professor.DefaultUpdatedAt = professorDescUpdatedAt.Default.(func() time.Time)
	// professor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	professor.UpdateDefaultUpdatedAt = professorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// professorDescFullName is the schema descriptor for full_name field.
	professorDescFullName := professorFields[0].Descriptor()
	// professor.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	professor.FullNameValidator = func() func(string) error {
		validators := professorDescFullName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(full_name string) error {
			for _, fn := range fns {
				if err := fn(full_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// professorDescEmail is the schema descriptor for email field.
	professorDescEmail := professorFields[2].Descriptor()
	// professor.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	professor.EmailValidator = professorDescEmail.Validators[0].(func(string) error)
	// professorDescID is the schema descriptor for id field.
	professorDescID := professorMixinFields0[0].Descriptor()
	// professor.DefaultID holds the default value on creation for the id field.
	professor.DefaultID = professorDescID.Default.(func() uuid.UUID)
	questionMixin := schema.Question{}.Mixin()
	questionMixinFields0 := questionMixin[0].Fields()
	_ = questionMixinFields0
	questionMixinFields1 := questionMixin[1].Fields()
	_ = questionMixinFields1
	questionMixinFields2 := questionMixin[2].Fields()
	_ = questionMixinFields2
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionMixinFields1[0].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	// questionDescUpdatedAt is the schema descriptor for updated_at field.
	questionDescUpdatedAt := questionMixinFields1[1].Descriptor()
	// question.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	question.DefaultUpdatedAt = questionDescUpdatedAt.Default.(func() time.Time)
	// question.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	question.UpdateDefaultUpdatedAt = questionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// questionDescTextEn is the schema descriptor for text_en field.
	questionDescTextEn := questionMixinFields2[0].Descriptor()
	// question.TextEnValidator is a validator for the "text_en" field. It is called by the builders before save.
	question.TextEnValidator = questionDescTextEn.Validators[0].(func(string) error)
	// questionDescTextUz is the schema descriptor for text_uz field.
	questionDescTextUz := questionMixinFields2[1].Descriptor()
	// question.TextUzValidator is a validator for the "text_uz" field. It is called by the builders before save.
	question.TextUzValidator = questionDescTextUz.Validators[0].(func(string) error)
	// questionDescTextRu is the schema descriptor for text_ru field.
	questionDescTextRu := questionMixinFields2[2].Descriptor()
	// question.TextRuValidator is a validator for the "text_ru" field. It is called by the builders before save.
	question.TextRuValidator = questionDescTextRu.Validators[0].(func(string) error)
	// questionDescSortOrder is the schema descriptor for sort_order field.
	questionDescSortOrder := questionMixinFields2[4].Descriptor()
	// question.DefaultSortOrder holds the default value on creation for the sort_order field.
	question.DefaultSortOrder = questionDescSortOrder.Default.(int)
	// question.SortOrderValidator is a validator for the "sort_order" field. It is called by the builders before save.
	question.SortOrderValidator = questionDescSortOrder.Validators[0].(func(int) error)
	// questionDescIsActive is the schema descriptor for is_active field.
	questionDescIsActive := questionMixinFields2[5].Descriptor()
	// question.DefaultIsActive holds the default value on creation for the is_active field.
	question.DefaultIsActive = questionDescIsActive.Default.(bool)
	// questionDescID is the schema descriptor for id field.
	questionDescID := questionMixinFields0[0].Descriptor()
	// question.DefaultID holds the default value on creation for the id field.
	question.DefaultID = questionDescID.Default.(func() uuid.UUID)
	schoolMixin := schema.School{}.Mixin()
	schoolMixinFields0 := schoolMixin[0].Fields()
	_ = schoolMixinFields0
	schoolMixinFields1 := schoolMixin[1].Fields()
	_ = schoolMixinFields1
	schoolFields := schema.School{}.Fields()
	_ = schoolFields
	// schoolDescCreatedAt is the schema descriptor for created_at field.
	schoolDescCreatedAt := schoolMixinFields1[0].Descriptor()
	// school.DefaultCreatedAt holds the default value on creation for the created_at field.
	school.DefaultCreatedAt = schoolDescCreatedAt.Default.(func() time.Time)
	// schoolDescUpdatedAt is the schema descriptor for updated_at field.
	schoolDescUpdatedAt := schoolMixinFields1[1].Descriptor()
	// school.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	school.DefaultUpdatedAt = schoolDescUpdatedAt.Default.(func() time.Time)
	// school.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	school.UpdateDefaultUpdatedAt = schoolDescUpdatedAt.UpdateDefault.(func() time.Time)
	// schoolDescName is the schema descriptor for name field.
	schoolDescName := schoolFields[0].Descriptor()
	// school.NameValidator is a validator for the "name" field. It is called by the builders before save.
	school.NameValidator = func() func(string) error {
		validators := schoolDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// schoolDescCode is the schema descriptor for code field.
	schoolDescCode := schoolFields[1].Descriptor()
	// school.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	school.CodeValidator = func() func(string) error {
		validators := schoolDescCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(code string) error {
			for _, fn := range fns {
				if err := fn(code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// schoolDescID is the schema descriptor for id field.
	schoolDescID := schoolMixinFields0[0].Descriptor()
	// school.DefaultID holds the default value on creation for the id field.
	school.DefaultID = schoolDescID.Default.(func() uuid.UUID)
	surveyMixin := schema.Survey{}.Mixin()
	surveyMixinFields0 := surveyMixin[0].Fields()
	_ = surveyMixinFields0
	surveyMixinFields1 := surveyMixin[1].Fields()
	_ = surveyMixinFields1
	surveyFields := schema.Survey{}.Fields()
	_ = surveyFields
	// surveyDescCreatedAt is the schema descriptor for created_at field.
	surveyDescCreatedAt := surveyMixinFields1[0].Descriptor()
	// survey.DefaultCreatedAt holds the default value on creation for the created_at field.
	survey.DefaultCreatedAt = surveyDescCreatedAt.Default.(func() time.Time)
	// surveyDescID is the schema descriptor for id field.
	surveyDescID := surveyMixinFields0[0].Descriptor()
	// survey.DefaultID holds the default value on creation for the id field.
	survey.DefaultID = surveyDescID.Default.(func() uuid.UUID)
}
