package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/yalgashev/survey/internal/api/http/handler"
)

func (r *Router) registerEvaluationRoutes(api fiber.Router, h *handler.EvaluationHandler, session fiber.Handler) {
	api.Get("/groups", h.Groups)

	ev := api.Group("/evaluation", session)
	ev.Post("/start", h.Start)
	ev.Get("/step", h.Step)
	ev.Post("/skip", h.Skip)
	ev.Post("/submit", h.Submit)
	ev.Get("/internship", h.Internship)
	ev.Post("/internship", h.SubmitInternship)
	ev.Delete("/", h.Finish)
}
