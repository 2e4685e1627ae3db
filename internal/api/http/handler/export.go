package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Warinthorn/carelink_backend/internal/api/http/middleware"
	"github.com/Warinthorn/carelink_backend/internal/service/export"
)

type ExportHandler struct {
	svc export.Service
}

func NewExportHandler(svc export.Service) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// GET /patients/:pid/export
func (h *ExportHandler) Build(c fiber.Ctx) error {
	pid, valid := middleware.PatientIDFromFiber(c)
	if !valid {
		return badRequest(c, "missing patient scope")
	}

	doc, err := h.svc.Build(c.Context(), pid)
	if err != nil {
		return internalError(c)
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename="carelink-export.json"`)
	return ok(c, doc)
}
