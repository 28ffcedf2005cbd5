package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/yalgashev/survey/internal/service/report"
	"github.com/yalgashev/survey/pkg/email"
)

type ReportHandler struct {
	svc report.Service
}

func NewReportHandler(svc report.Service) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// GET /api/v1/admin/dashboard
func (h *ReportHandler) Dashboard(c fiber.Ctx) error {
	d, err := h.svc.Dashboard(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return ok(c, d)
}

// GET /api/v1/admin/reports/participation
func (h *ReportHandler) Participation(c fiber.Ctx) error {
	r, err := h.svc.Participation(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return ok(c, r)
}

// GET /api/v1/admin/reports/professors-rating
func (h *ReportHandler) ProfessorsRating(c fiber.Ctx) error {
	r, err := h.svc.ProfessorsRating(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return ok(c, r)
}

// GET /api/v1/admin/professors/summary
func (h *ReportHandler) ProfessorSummaries(c fiber.Ctx) error {
	rows, err := h.svc.ProfessorSummaries(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return ok(c, rows)
}

// GET /api/v1/admin/professors/:id/analytics
func (h *ReportHandler) ProfessorAnalytics(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "invalid professor id")
	}
	a, err := h.svc.ProfessorAnalytics(c.Context(), id)
	if err != nil {
		return mapReportError(c, err)
	}
	return ok(c, a)
}

// POST /api/v1/admin/professors/:id/digest
func (h *ReportHandler) SendDigest(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "invalid professor id")
	}
	if err := h.svc.SendDigest(c.Context(), id); err != nil {
		return mapReportError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"data": fiber.Map{"sent": true}})
}

func mapReportError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, report.ErrProfessorNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, report.ErrNoEmail):
		return unprocessable(c, err.Error(), map[string]string{"email": "required"})
	case errors.Is(err, email.ErrDisabled):
		return serviceUnavailable(c, err.Error())
	default:
		return internalError(c, err)
	}
}
