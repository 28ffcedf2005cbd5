package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/yalgashev/survey/internal/service/survey"
)

// SurveyHandler lists, shows and deletes submitted surveys of both kinds.
type SurveyHandler struct {
	svc survey.Service
}

func NewSurveyHandler(svc survey.Service) *SurveyHandler {
	return &SurveyHandler{svc: svc}
}

// GET /api/v1/admin/surveys?group_id=&professor_id=&page=&per_page=
func (h *SurveyHandler) List(c fiber.Ctx) error {
	req, err := listSurveysRequest(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	result, err := h.svc.ListSurveys(c.Context(), req)
	if err != nil {
		return internalError(c, err)
	}
	return paginated(c, result)
}

// GET /api/v1/admin/surveys/:id
func (h *SurveyHandler) Get(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "invalid survey id")
	}
	detail, err := h.svc.GetSurvey(c.Context(), id)
	if err != nil {
		return mapSurveyError(c, err)
	}
	return ok(c, detail)
}

// DELETE /api/v1/admin/surveys/:id
func (h *SurveyHandler) Delete(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "invalid survey id")
	}
	if err := h.svc.DeleteSurvey(c.Context(), id); err != nil {
		return mapSurveyError(c, err)
	}
	return noContent(c)
}

// GET /api/v1/admin/professors/:id/surveys
func (h *SurveyHandler) ListForProfessor(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "invalid professor id")
	}
	req, err := listSurveysRequest(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	req.ProfessorID = &id

	result, err := h.svc.ListSurveys(c.Context(), req)
	if err != nil {
		return internalError(c, err)
	}
	return paginated(c, result)
}

// GET /api/v1/admin/internship-surveys?group_id=&page=&per_page=
func (h *SurveyHandler) ListInternship(c fiber.Ctx) error {
	req, err := listSurveysRequest(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	result, err := h.svc.ListInternshipSurveys(c.Context(), req)
	if err != nil {
		return internalError(c, err)
	}
	return paginated(c, result)
}

// GET /api/v1/admin/internship-surveys/:id
func (h *SurveyHandler) GetInternship(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "invalid survey id")
	}
	detail, err := h.svc.GetInternshipSurvey(c.Context(), id)
	if err != nil {
		return mapSurveyError(c, err)
	}
	return ok(c, detail)
}

// DELETE /api/v1/admin/internship-surveys/:id
func (h *SurveyHandler) DeleteInternship(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "invalid survey id")
	}
	if err := h.svc.DeleteInternshipSurvey(c.Context(), id); err != nil {
		return mapSurveyError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var errInvalidFilter = errors.New("invalid group or professor id")

func listSurveysRequest(c fiber.Ctx) (survey.ListSurveysRequest, error) {
	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	if err := c.Bind().Query(&q); err != nil || q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = 20
	}

	var groupID, profID *uuid.UUID
	var err error
	if groupID, err = optionalID(c, "group_id"); err != nil {
		return survey.ListSurveysRequest{}, errInvalidFilter
	}
	if profID, err = optionalID(c, "professor_id"); err != nil {
		return survey.ListSurveysRequest{}, errInvalidFilter
	}

	return survey.ListSurveysRequest{
		GroupID:     groupID,
		ProfessorID: profID,
		Page:        q.Page,
		PerPage:     q.PerPage,
	}, nil
}

func paginated(c fiber.Ctx, result *survey.PaginatedResult[survey.SurveySummary]) error {
	return ok(c, fiber.Map{
		"surveys":     result.Data,
		"total":       result.Total,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
	})
}

func mapSurveyError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, survey.ErrSurveyNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c, err)
	}
}
