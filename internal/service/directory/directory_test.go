package directory

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/yalgashev/survey/internal/repo"
	"github.com/yalgashev/survey/internal/repo/enttest"
)

func newTestService(t *testing.T) (*repo.Client, Service) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", uuid.NewString())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client, New(client)
}

type fixture struct {
	school     *repo.School
	department *repo.Department
	group      *repo.Group
	professor  *repo.Professor
}

func seed(t *testing.T, svc Service) fixture {
	t.Helper()
	ctx := context.Background()

	school, err := svc.CreateSchool(ctx, CreateSchoolRequest{Name: "School of Medicine", Code: "MED"})
	if err != nil {
		t.Fatalf("CreateSchool failed: %v", err)
	}
	dept, err := svc.CreateDepartment(ctx, CreateDepartmentRequest{SchoolID: school.ID, Name: "Surgery", Code: "SUR"})
	if err != nil {
		t.Fatalf("CreateDepartment failed: %v", err)
	}
	group, err := svc.CreateGroup(ctx, CreateGroupRequest{Name: "MED-101", DepartmentID: dept.ID, Semester: 2, TotalStudents: 30})
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	prof, err := svc.CreateProfessor(ctx, CreateProfessorRequest{FullName: "Dilnoza Karimova", SchoolID: school.ID, Email: "D.Karimova@Example.com"})
	if err != nil {
		t.Fatalf("CreateProfessor failed: %v", err)
	}

	return fixture{school: school, department: dept, group: group, professor: prof}
}

// submitSurvey writes one survey with a single rating answer.
func submitSurvey(t *testing.T, client *repo.Client, groupID, professorID uuid.UUID) *repo.Survey {
	t.Helper()
	ctx := context.Background()

	q, err := client.Question.Query().First(ctx)
	if repo.IsNotFound(err) {
		q, err = client.Question.Create().
			SetTextEn("Explains clearly").
			SetTextUz("Aniq tushuntiradi").
			SetTextRu("Объясняет понятно").
			Save(ctx)
	}
	if err != nil {
		t.Fatalf("question: %v", err)
	}

	sv, err := client.Survey.Create().SetGroupID(groupID).SetProfessorID(professorID).Save(ctx)
	if err != nil {
		t.Fatalf("create survey: %v", err)
	}
	if _, err := client.Answer.Create().SetSurveyID(sv.ID).SetQuestionID(q.ID).SetRatingValue(2).Save(ctx); err != nil {
		t.Fatalf("create answer: %v", err)
	}
	return sv
}

func TestDeleteSchool_InUse(t *testing.T) {
	ctx := context.Background()
	_, svc := newTestService(t)
	f := seed(t, svc)

	if err := svc.DeleteSchool(ctx, f.school.ID); !errors.Is(err, ErrSchoolInUse) {
		t.Fatalf("Expected ErrSchoolInUse, got %v", err)
	}
	if _, err := svc.GetSchool(ctx, f.school.ID); err != nil {
		t.Errorf("School must remain queryable: %v", err)
	}
}

func TestDeleteSchool_ProfessorsOnly(t *testing.T) {
	ctx := context.Background()
	_, svc := newTestService(t)

	school, _ := svc.CreateSchool(ctx, CreateSchoolRequest{Name: "School of Law", Code: "LAW"})
	if _, err := svc.CreateProfessor(ctx, CreateProfessorRequest{FullName: "Aziz Rahimov", SchoolID: school.ID}); err != nil {
		t.Fatalf("CreateProfessor failed: %v", err)
	}

	if err := svc.DeleteSchool(ctx, school.ID); !errors.Is(err, ErrSchoolInUse) {
		t.Errorf("Expected ErrSchoolInUse, got %v", err)
	}
}

func TestDeleteSchool_Empty(t *testing.T) {
	ctx := context.Background()
	_, svc := newTestService(t)

	school, _ := svc.CreateSchool(ctx, CreateSchoolRequest{Name: "School of Arts", Code: "ART"})
	if err := svc.DeleteSchool(ctx, school.ID); err != nil {
		t.Fatalf("DeleteSchool failed: %v", err)
	}
	if _, err := svc.GetSchool(ctx, school.ID); !errors.Is(err, ErrSchoolNotFound) {
		t.Errorf("Expected ErrSchoolNotFound, got %v", err)
	}
	if err := svc.DeleteSchool(ctx, school.ID); !errors.Is(err, ErrSchoolNotFound) {
		t.Errorf("Expected ErrSchoolNotFound on second delete, got %v", err)
	}
}

func TestDeleteDepartment_InUse(t *testing.T) {
	ctx := context.Background()
	_, svc := newTestService(t)
	f := seed(t, svc)

	if err := svc.DeleteDepartment(ctx, f.department.ID); !errors.Is(err, ErrDepartmentInUse) {
		t.Errorf("Expected ErrDepartmentInUse, got %v", err)
	}
}

func TestCreate_Validation(t *testing.T) {
	ctx := context.Background()
	_, svc := newTestService(t)
	f := seed(t, svc)

	tests := []struct {
		name    string
		run     func() error
		wantErr error
	}{
		{
			name: "duplicate school name",
			run: func() error {
				_, err := svc.CreateSchool(ctx, CreateSchoolRequest{Name: "School of Medicine", Code: "MED2"})
				return err
			},
			wantErr: ErrDuplicate,
		},
		{
			name: "duplicate department code in school",
			run: func() error {
				_, err := svc.CreateDepartment(ctx, CreateDepartmentRequest{SchoolID: f.school.ID, Name: "Other", Code: "SUR"})
				return err
			},
			wantErr: ErrDuplicate,
		},
		{
			name: "department for unknown school",
			run: func() error {
				_, err := svc.CreateDepartment(ctx, CreateDepartmentRequest{SchoolID: uuid.New(), Name: "X", Code: "X"})
				return err
			},
			wantErr: ErrSchoolNotFound,
		},
		{
			name: "semester out of range",
			run: func() error {
				_, err := svc.CreateGroup(ctx, CreateGroupRequest{Name: "MED-900", DepartmentID: f.department.ID, Semester: 9})
				return err
			},
			wantErr: ErrInvalidSemester,
		},
		{
			name: "negative students",
			run: func() error {
				_, err := svc.CreateGroup(ctx, CreateGroupRequest{Name: "MED-901", DepartmentID: f.department.ID, Semester: 1, TotalStudents: -1})
				return err
			},
			wantErr: ErrInvalidStudentCount,
		},
		{
			name: "duplicate group name",
			run: func() error {
				_, err := svc.CreateGroup(ctx, CreateGroupRequest{Name: "MED-101", DepartmentID: f.department.ID})
				return err
			},
			wantErr: ErrDuplicate,
		},
		{
			name: "blank school code",
			run: func() error {
				_, err := svc.CreateSchool(ctx, CreateSchoolRequest{Name: "Pharmacy", Code: "  "})
				return err
			},
			wantErr: ErrCodeRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.run(); !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateGroup_Defaults(t *testing.T) {
	ctx := context.Background()
	_, svc := newTestService(t)
	f := seed(t, svc)

	g, err := svc.CreateGroup(ctx, CreateGroupRequest{Name: "MED-102", DepartmentID: f.department.ID})
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	if g.Semester != 1 || g.ParticipatedStudents != 0 {
		t.Errorf("got semester=%d participated=%d, want 1 and 0", g.Semester, g.ParticipatedStudents)
	}
	if f.professor.Email == nil || *f.professor.Email != "d.karimova@example.com" {
		t.Errorf("Expected lower-cased email, got %v", f.professor.Email)
	}
}

func TestDeleteGroup_Cascades(t *testing.T) {
	ctx := context.Background()
	client, svc := newTestService(t)
	f := seed(t, svc)

	if _, err := svc.AssignProfessor(ctx, f.group.ID, f.professor.ID); err != nil {
		t.Fatalf("AssignProfessor failed: %v", err)
	}
	submitSurvey(t, client, f.group.ID, f.professor.ID)
	if _, err := client.InternshipSurvey.Create().SetGroupID(f.group.ID).Save(ctx); err != nil {
		t.Fatalf("create internship survey: %v", err)
	}

	if err := svc.DeleteGroup(ctx, f.group.ID); err != nil {
		t.Fatalf("DeleteGroup failed: %v", err)
	}

	if n := client.Survey.Query().CountX(ctx); n != 0 {
		t.Errorf("surveys = %d, want 0", n)
	}
	if n := client.Answer.Query().CountX(ctx); n != 0 {
		t.Errorf("answers = %d, want 0", n)
	}
	if n := client.InternshipSurvey.Query().CountX(ctx); n != 0 {
		t.Errorf("internship surveys = %d, want 0", n)
	}
	if n := client.GroupProfessor.Query().CountX(ctx); n != 0 {
		t.Errorf("assignments = %d, want 0", n)
	}
	if _, err := svc.GetProfessor(ctx, f.professor.ID); err != nil {
		t.Errorf("Professor must survive group deletion: %v", err)
	}
}

func TestDeleteProfessor_Cascades(t *testing.T) {
	ctx := context.Background()
	client, svc := newTestService(t)
	f := seed(t, svc)

	other, _ := svc.CreateProfessor(ctx, CreateProfessorRequest{FullName: "Bekzod Tursunov", SchoolID: f.school.ID})
	svc.AssignProfessor(ctx, f.group.ID, f.professor.ID)
	svc.AssignProfessor(ctx, f.group.ID, other.ID)
	submitSurvey(t, client, f.group.ID, f.professor.ID)
	kept := submitSurvey(t, client, f.group.ID, other.ID)

	if err := svc.DeleteProfessor(ctx, f.professor.ID); err != nil {
		t.Fatalf("DeleteProfessor failed: %v", err)
	}

	surveys := client.Survey.Query().AllX(ctx)
	if len(surveys) != 1 || surveys[0].ID != kept.ID {
		t.Errorf("Expected only the other professor's survey to remain, got %d", len(surveys))
	}
	if n := client.Answer.Query().CountX(ctx); n != 1 {
		t.Errorf("answers = %d, want 1", n)
	}
	if n := client.GroupProfessor.Query().CountX(ctx); n != 1 {
		t.Errorf("assignments = %d, want 1", n)
	}
	if err := svc.DeleteProfessor(ctx, f.professor.ID); !errors.Is(err, ErrProfessorNotFound) {
		t.Errorf("Expected ErrProfessorNotFound, got %v", err)
	}
}

func TestAssignProfessor_Duplicate(t *testing.T) {
	ctx := context.Background()
	_, svc := newTestService(t)
	f := seed(t, svc)

	if _, err := svc.AssignProfessor(ctx, f.group.ID, f.professor.ID); err != nil {
		t.Fatalf("AssignProfessor failed: %v", err)
	}
	if _, err := svc.AssignProfessor(ctx, f.group.ID, f.professor.ID); !errors.Is(err, ErrAssignmentExists) {
		t.Errorf("Expected ErrAssignmentExists, got %v", err)
	}
	if _, err := svc.AssignProfessor(ctx, uuid.New(), f.professor.ID); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("Expected ErrGroupNotFound, got %v", err)
	}
}

func TestListAssignments_OrderedByGroupName(t *testing.T) {
	ctx := context.Background()
	_, svc := newTestService(t)
	f := seed(t, svc)

	zeta, _ := svc.CreateGroup(ctx, CreateGroupRequest{Name: "ZZ-1", DepartmentID: f.department.ID})
	alpha, _ := svc.CreateGroup(ctx, CreateGroupRequest{Name: "AA-1", DepartmentID: f.department.ID})
	for _, g := range []*repo.Group{zeta, f.group, alpha} {
		if _, err := svc.AssignProfessor(ctx, g.ID, f.professor.ID); err != nil {
			t.Fatalf("AssignProfessor failed: %v", err)
		}
	}

	list, err := svc.ListAssignments(ctx, ListAssignmentsRequest{ProfessorID: &f.professor.ID})
	if err != nil {
		t.Fatalf("ListAssignments failed: %v", err)
	}

	want := []string{"AA-1", "MED-101", "ZZ-1"}
	if len(list) != len(want) {
		t.Fatalf("got %d assignments, want %d", len(list), len(want))
	}
	for i, a := range list {
		if a.Edges.Group == nil || a.Edges.Group.Name != want[i] {
			t.Errorf("assignment %d group = %v, want %s", i, a.Edges.Group, want[i])
		}
	}
}

func TestSyncProfessorGroups(t *testing.T) {
	ctx := context.Background()
	client, svc := newTestService(t)
	f := seed(t, svc)

	g2, _ := svc.CreateGroup(ctx, CreateGroupRequest{Name: "MED-201", DepartmentID: f.department.ID})
	g3, _ := svc.CreateGroup(ctx, CreateGroupRequest{Name: "MED-301", DepartmentID: f.department.ID})
	svc.AssignProfessor(ctx, f.group.ID, f.professor.ID)
	svc.AssignProfessor(ctx, g2.ID, f.professor.ID)

	res, err := svc.SyncProfessorGroups(ctx, f.professor.ID, []uuid.UUID{g2.ID, g3.ID, g3.ID})
	if err != nil {
		t.Fatalf("SyncProfessorGroups failed: %v", err)
	}
	if res.Added != 1 || res.Removed != 1 {
		t.Errorf("got %+v, want 1 added and 1 removed", res)
	}

	list, _ := svc.ListAssignments(ctx, ListAssignmentsRequest{ProfessorID: &f.professor.ID})
	if len(list) != 2 || list[0].GroupID != g2.ID || list[1].GroupID != g3.ID {
		t.Errorf("unexpected assignments after sync: %d", len(list))
	}

	if _, err := svc.SyncProfessorGroups(ctx, f.professor.ID, []uuid.UUID{uuid.New()}); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("Expected ErrGroupNotFound, got %v", err)
	}
	if n := client.GroupProfessor.Query().CountX(ctx); n != 2 {
		t.Errorf("failed sync must not change assignments, got %d", n)
	}

	res, err = svc.SyncProfessorGroups(ctx, f.professor.ID, nil)
	if err != nil {
		t.Fatalf("SyncProfessorGroups failed: %v", err)
	}
	if res.Removed != 2 || client.GroupProfessor.Query().CountX(ctx) != 0 {
		t.Errorf("Expected all assignments removed, got %+v", res)
	}
}

func TestUpdateGroup(t *testing.T) {
	ctx := context.Background()
	_, svc := newTestService(t)
	f := seed(t, svc)

	semester, total := 5, 42
	g, err := svc.UpdateGroup(ctx, f.group.ID, UpdateGroupRequest{Semester: &semester, TotalStudents: &total})
	if err != nil {
		t.Fatalf("UpdateGroup failed: %v", err)
	}
	if g.Semester != 5 || g.TotalStudents != 42 {
		t.Errorf("got semester=%d total=%d", g.Semester, g.TotalStudents)
	}

	bad := 0
	if _, err := svc.UpdateGroup(ctx, f.group.ID, UpdateGroupRequest{Semester: &bad}); !errors.Is(err, ErrInvalidSemester) {
		t.Errorf("Expected ErrInvalidSemester, got %v", err)
	}
	if _, err := svc.UpdateGroup(ctx, uuid.New(), UpdateGroupRequest{TotalStudents: &total}); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("Expected ErrGroupNotFound, got %v", err)
	}
}
