package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/yalgashev/survey/internal/api/http/handler"
)

func (r *Router) registerDirectoryRoutes(admin fiber.Router, h *handler.DirectoryHandler) {
	schools := admin.Group("/schools")
	schools.Get("/", h.ListSchools)
	schools.Post("/", h.CreateSchool)
	schools.Get("/:id", h.GetSchool)
	schools.Patch("/:id", h.UpdateSchool)
	schools.Delete("/:id", h.DeleteSchool)

	departments := admin.Group("/departments")
	departments.Get("/", h.ListDepartments)
	departments.Post("/", h.CreateDepartment)
	departments.Get("/:id", h.GetDepartment)
	departments.Patch("/:id", h.UpdateDepartment)
	departments.Delete("/:id", h.DeleteDepartment)

	groups := admin.Group("/groups")
	groups.Get("/", h.ListGroups)
	groups.Post("/", h.CreateGroup)
	groups.Get("/:id", h.GetGroup)
	groups.Patch("/:id", h.UpdateGroup)
	groups.Delete("/:id", h.DeleteGroup)

	professors := admin.Group("/professors")
	professors.Get("/", h.ListProfessors)
	professors.Post("/", h.CreateProfessor)
	professors.Get("/:id", h.GetProfessor)
	professors.Patch("/:id", h.UpdateProfessor)
	professors.Delete("/:id", h.DeleteProfessor)
	professors.Put("/:id/groups", h.SyncProfessorGroups)

	assignments := admin.Group("/assignments")
	assignments.Get("/", h.ListAssignments)
	assignments.Post("/", h.CreateAssignment)
	assignments.Delete("/:id", h.DeleteAssignment)
}

func (r *Router) registerQuestionRoutes(questions fiber.Router, h *handler.QuestionHandler) {
	questions.Get("/", h.List)
	questions.Post("/", h.Create)
	questions.Get("/:id", h.Get)
	questions.Patch("/:id", h.Update)
	questions.Delete("/:id", h.Delete)
}

func (r *Router) registerSurveyRoutes(admin fiber.Router, h *handler.SurveyHandler) {
	surveys := admin.Group("/surveys")
	surveys.Get("/", h.List)
	surveys.Get("/:id", h.Get)
	surveys.Delete("/:id", h.Delete)

	internship := admin.Group("/internship-surveys")
	internship.Get("/", h.ListInternship)
	internship.Get("/:id", h.GetInternship)
	internship.Delete("/:id", h.DeleteInternship)

	admin.Get("/professors/:id/surveys", h.ListForProfessor)
}

func (r *Router) registerReportRoutes(admin fiber.Router, h *handler.ReportHandler) {
	admin.Get("/dashboard", h.Dashboard)
	admin.Get("/reports/participation", h.Participation)
	admin.Get("/reports/professors-rating", h.ProfessorsRating)

	admin.Get("/professors/summary", h.ProfessorSummaries)
	admin.Get("/professors/:id/analytics", h.ProfessorAnalytics)
	admin.Post("/professors/:id/digest", h.SendDigest)
}
