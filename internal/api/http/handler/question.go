package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/yalgashev/survey/internal/evaluation"
	"github.com/yalgashev/survey/internal/service/question"
)

// QuestionHandler manages one question catalog; the router mounts one
// instance per catalog.
type QuestionHandler struct {
	svc     question.Service
	catalog question.Catalog
}

func NewQuestionHandler(svc question.Service, catalog question.Catalog) *QuestionHandler {
	return &QuestionHandler{svc: svc, catalog: catalog}
}

// GET /api/v1/admin/{questions,internship-questions}?active=true
func (h *QuestionHandler) List(c fiber.Ctx) error {
	var q struct {
		Active bool `query:"active"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query")
	}

	qs, err := h.svc.List(c.Context(), h.catalog, q.Active)
	if err != nil {
		return mapQuestionError(c, err)
	}
	return ok(c, qs)
}

// GET /api/v1/admin/{questions,internship-questions}/:id
func (h *QuestionHandler) Get(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "invalid question id")
	}
	q, err := h.svc.Get(c.Context(), h.catalog, id)
	if err != nil {
		return mapQuestionError(c, err)
	}
	return ok(c, q)
}

// POST /api/v1/admin/{questions,internship-questions}
func (h *QuestionHandler) Create(c fiber.Ctx) error {
	var body struct {
		TextEN    string `json:"text_en" validate:"required"`
		TextUZ    string `json:"text_uz" validate:"required"`
		TextRU    string `json:"text_ru" validate:"required"`
		Type      string `json:"question_type" validate:"omitempty,oneof=rating text"`
		SortOrder int    `json:"sort_order" validate:"gte=0"`
		IsActive  *bool  `json:"is_active"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return bindError(c, err)
	}

	kind := evaluation.KindRating
	if body.Type != "" {
		kind = evaluation.Kind(body.Type)
	}

	q, err := h.svc.Create(c.Context(), h.catalog, question.CreateQuestionRequest{
		Text:      evaluation.LocalizedText{EN: body.TextEN, UZ: body.TextUZ, RU: body.TextRU},
		Type:      kind,
		SortOrder: body.SortOrder,
		IsActive:  body.IsActive,
	})
	if err != nil {
		return mapQuestionError(c, err)
	}
	return created(c, q)
}

// PATCH /api/v1/admin/{questions,internship-questions}/:id
func (h *QuestionHandler) Update(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "invalid question id")
	}

	var body struct {
		TextEN    *string `json:"text_en"`
		TextUZ    *string `json:"text_uz"`
		TextRU    *string `json:"text_ru"`
		Type      *string `json:"question_type" validate:"omitempty,oneof=rating text"`
		SortOrder *int    `json:"sort_order" validate:"omitempty,gte=0"`
		IsActive  *bool   `json:"is_active"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return bindError(c, err)
	}

	req := question.UpdateQuestionRequest{
		TextEN:    body.TextEN,
		TextUZ:    body.TextUZ,
		TextRU:    body.TextRU,
		SortOrder: body.SortOrder,
		IsActive:  body.IsActive,
	}
	if body.Type != nil {
		kind := evaluation.Kind(*body.Type)
		req.Type = &kind
	}

	q, err := h.svc.Update(c.Context(), h.catalog, id, req)
	if err != nil {
		return mapQuestionError(c, err)
	}
	return ok(c, q)
}

// DELETE /api/v1/admin/{questions,internship-questions}/:id
func (h *QuestionHandler) Delete(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "invalid question id")
	}
	if err := h.svc.Delete(c.Context(), h.catalog, id); err != nil {
		return mapQuestionError(c, err)
	}
	return noContent(c)
}

func mapQuestionError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, question.ErrQuestionNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, question.ErrQuestionInUse),
		errors.Is(err, question.ErrTypeLocked):
		return conflict(c, err.Error())
	case errors.Is(err, question.ErrTextRequired),
		errors.Is(err, question.ErrInvalidType),
		errors.Is(err, question.ErrInvalidSortOrder),
		errors.Is(err, question.ErrUnknownCatalog):
		return badRequest(c, err.Error())
	default:
		return internalError(c, err)
	}
}
