package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Warinthorn/carelink_backend/internal/api/http/middleware"
	"github.com/Warinthorn/carelink_backend/internal/service/adherence"
)

type AdherenceHandler struct {
	svc adherence.Service
}

func NewAdherenceHandler(svc adherence.Service) *AdherenceHandler {
	return &AdherenceHandler{svc: svc}
}

func mapAdherenceError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, adherence.ErrInvalidDate):
		return badRequest(c, err.Error())
	case errors.Is(err, adherence.ErrMedRequired):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /patients/:pid/daily-logs
func (h *AdherenceHandler) List(c fiber.Ctx) error {
	pid, valid := middleware.PatientIDFromFiber(c)
	if !valid {
		return badRequest(c, "missing patient scope")
	}

	logs, err := h.svc.List(c.Context(), pid)
	if err != nil {
		return mapAdherenceError(c, err)
	}
	return ok(c, logs)
}

// GET /patients/:pid/daily-logs/:date
func (h *AdherenceHandler) Get(c fiber.Ctx) error {
	pid, valid := middleware.PatientIDFromFiber(c)
	if !valid {
		return badRequest(c, "missing patient scope")
	}

	l, err := h.svc.Get(c.Context(), pid, c.Params("date"))
	if err != nil {
		return mapAdherenceError(c, err)
	}
	return ok(c, l)
}

// POST /patients/:pid/daily-logs/:date/toggle
func (h *AdherenceHandler) Toggle(c fiber.Ctx) error {
	pid, valid := middleware.PatientIDFromFiber(c)
	if !valid {
		return badRequest(c, "missing patient scope")
	}

	var body struct {
		MedicationID string `json:"medicationId"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	l, err := h.svc.Toggle(c.Context(), pid, c.Params("date"), body.MedicationID)
	if err != nil {
		return mapAdherenceError(c, err)
	}
	return ok(c, l)
}
