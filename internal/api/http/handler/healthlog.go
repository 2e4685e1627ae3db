package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Warinthorn/carelink_backend/internal/api/http/middleware"
	"github.com/Warinthorn/carelink_backend/internal/service/healthlog"
)

type HealthLogHandler struct {
	svc healthlog.Service
}

func NewHealthLogHandler(svc healthlog.Service) *HealthLogHandler {
	return &HealthLogHandler{svc: svc}
}

func mapHealthLogError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, healthlog.ErrInvalidType):
		return badRequest(c, err.Error())
	case errors.Is(err, healthlog.ErrMissingReadings):
		return badRequest(c, err.Error())
	case errors.Is(err, healthlog.ErrDateRequired):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /patients/:pid/health-logs
func (h *HealthLogHandler) List(c fiber.Ctx) error {
	pid, valid := middleware.PatientIDFromFiber(c)
	if !valid {
		return badRequest(c, "missing patient scope")
	}

	logs, err := h.svc.List(c.Context(), pid)
	if err != nil {
		return mapHealthLogError(c, err)
	}
	return ok(c, logs)
}

// GET /patients/:pid/health-logs/recent/:type
func (h *HealthLogHandler) Recent(c fiber.Ctx) error {
	pid, valid := middleware.PatientIDFromFiber(c)
	if !valid {
		return badRequest(c, "missing patient scope")
	}

	logs, err := h.svc.Recent(c.Context(), pid, c.Params("type"))
	if err != nil {
		return mapHealthLogError(c, err)
	}
	return ok(c, logs)
}

// POST /patients/:pid/health-logs
func (h *HealthLogHandler) Add(c fiber.Ctx) error {
	pid, valid := middleware.PatientIDFromFiber(c)
	if !valid {
		return badRequest(c, "missing patient scope")
	}

	var body struct {
		Type   string   `json:"type"`
		Date   string   `json:"date"`
		Sys    *float64 `json:"sys"`
		Dia    *float64 `json:"dia"`
		Sugar  *float64 `json:"sugar"`
		Weight *float64 `json:"weight"`
		HbA1c  *float64 `json:"hba1c"`
		Lipid  *float64 `json:"lipid"`
		EGFR   *float64 `json:"egfr"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	l, err := h.svc.Add(c.Context(), pid, healthlog.AddRequest{
		Type:   body.Type,
		Date:   body.Date,
		Sys:    body.Sys,
		Dia:    body.Dia,
		Sugar:  body.Sugar,
		Weight: body.Weight,
		HbA1c:  body.HbA1c,
		Lipid:  body.Lipid,
		EGFR:   body.EGFR,
	})
	if err != nil {
		return mapHealthLogError(c, err)
	}
	return created(c, l)
}
