package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/yalgashev/survey/internal/evaluation"
	"github.com/yalgashev/survey/internal/service/directory"
	"github.com/yalgashev/survey/internal/service/survey"
	"github.com/yalgashev/survey/pkg/reqctx"
)

// EvaluationHandler serves the anonymous student wizard. The session id comes
// from the session cookie middleware.
type EvaluationHandler struct {
	svc         survey.Service
	dir         directory.Service
	defaultLang evaluation.Language
}

func NewEvaluationHandler(svc survey.Service, dir directory.Service, defaultLang string) *EvaluationHandler {
	lang, err := evaluation.ParseLanguage(defaultLang)
	if err != nil {
		lang = evaluation.English
	}
	return &EvaluationHandler{svc: svc, dir: dir, defaultLang: lang}
}

type answerBody struct {
	Rating *int    `json:"rating"`
	Text   *string `json:"text"`
}

type answersBody struct {
	Answers map[uuid.UUID]answerBody `json:"answers" validate:"required"`
}

func (b answersBody) responses() survey.Responses {
	out := make(survey.Responses, len(b.Answers))
	for id, a := range b.Answers {
		out[id] = evaluation.Response{Rating: a.Rating, Text: a.Text}
	}
	return out
}

// GET /api/v1/groups
func (h *EvaluationHandler) Groups(c fiber.Ctx) error {
	groups, err := h.dir.ListGroups(c.Context(), directory.ListGroupsRequest{})
	if err != nil {
		return internalError(c, err)
	}
	return ok(c, groups)
}

// POST /api/v1/evaluation/start
func (h *EvaluationHandler) Start(c fiber.Ctx) error {
	var body struct {
		GroupID  uuid.UUID `json:"group_id" validate:"required"`
		Language string    `json:"language"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return bindError(c, err)
	}

	lang := h.defaultLang
	if body.Language != "" {
		parsed, err := evaluation.ParseLanguage(body.Language)
		if err != nil {
			return badRequest(c, err.Error())
		}
		lang = parsed
	}

	step, err := h.svc.Start(c.Context(), sessionID(c), body.GroupID, lang)
	if err != nil {
		return mapEvaluationError(c, err)
	}
	return ok(c, step)
}

// GET /api/v1/evaluation/step
func (h *EvaluationHandler) Step(c fiber.Ctx) error {
	step, err := h.svc.CurrentStep(c.Context(), sessionID(c))
	if err != nil {
		return mapEvaluationError(c, err)
	}
	return ok(c, step)
}

// POST /api/v1/evaluation/skip
func (h *EvaluationHandler) Skip(c fiber.Ctx) error {
	step, err := h.svc.Skip(c.Context(), sessionID(c))
	if err != nil {
		return mapEvaluationError(c, err)
	}
	return ok(c, step)
}

// POST /api/v1/evaluation/submit
func (h *EvaluationHandler) Submit(c fiber.Ctx) error {
	var body answersBody
	if err := c.Bind().JSON(&body); err != nil {
		return bindError(c, err)
	}

	step, err := h.svc.Submit(c.Context(), sessionID(c), body.responses())
	if err != nil {
		return mapEvaluationError(c, err)
	}
	return ok(c, step)
}

// GET /api/v1/evaluation/internship
func (h *EvaluationHandler) Internship(c fiber.Ctx) error {
	step, err := h.svc.InternshipStep(c.Context(), sessionID(c))
	if err != nil {
		return mapEvaluationError(c, err)
	}
	return ok(c, step)
}

// POST /api/v1/evaluation/internship
func (h *EvaluationHandler) SubmitInternship(c fiber.Ctx) error {
	var body answersBody
	if err := c.Bind().JSON(&body); err != nil {
		return bindError(c, err)
	}

	step, err := h.svc.SubmitInternship(c.Context(), sessionID(c), body.responses())
	if err != nil {
		return mapEvaluationError(c, err)
	}
	return ok(c, step)
}

// DELETE /api/v1/evaluation
func (h *EvaluationHandler) Finish(c fiber.Ctx) error {
	if err := h.svc.Finish(c.Context(), sessionID(c)); err != nil {
		return mapEvaluationError(c, err)
	}
	return noContent(c)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func sessionID(c fiber.Ctx) string {
	return reqctx.SessionIDFromContext(c.Context())
}

func mapEvaluationError(c fiber.Ctx, err error) error {
	var invalid *evaluation.ValidationError
	switch {
	case errors.As(err, &invalid):
		return unprocessable(c, "please answer every rating question", invalid.Fields)
	case errors.Is(err, survey.ErrNoProfessors):
		return ok(c, survey.Step{Stage: survey.StageStart, Warning: err.Error()})
	case errors.Is(err, survey.ErrInternshipUnavailable):
		return ok(c, survey.Step{Stage: survey.StageDone, Warning: err.Error()})
	case errors.Is(err, survey.ErrInternshipNotReached):
		return conflict(c, err.Error())
	case errors.Is(err, survey.ErrGroupNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, evaluation.ErrUnsupportedLanguage):
		return badRequest(c, err.Error())
	default:
		return internalError(c, err)
	}
}
