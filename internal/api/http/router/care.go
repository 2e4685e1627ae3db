package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Warinthorn/carelink_backend/internal/api/http/handler"
)

func (r *Router) registerCareRoutes(api fiber.Router, h *handler.CareHandler, authRequired fiber.Handler) {
	group := api.Group("/care/links", authRequired)
	group.Post("/", h.Link)
	group.Get("/", h.List)
	group.Delete("/:patientId", h.Unlink)
}
