package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Warinthorn/carelink_backend/internal/api/http/handler"
)

func (r *Router) registerUserRoutes(api fiber.Router, h *handler.UserHandler, authRequired fiber.Handler) {
	group := api.Group("/users", authRequired)
	group.Get("/me", h.Me)
	group.Put("/me/role", h.SelectRole)
}
