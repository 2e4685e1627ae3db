package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Warinthorn/carelink_backend/internal/api/http/middleware"
	"github.com/Warinthorn/carelink_backend/internal/service/appointment"
)

type AppointmentHandler struct {
	svc appointment.Service
}

func NewAppointmentHandler(svc appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

func mapAppointmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, appointment.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrInvalidDate):
		return badRequest(c, err.Error())
	case errors.Is(err, appointment.ErrInvalidTime):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /patients/:pid/appointments
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	pid, valid := middleware.PatientIDFromFiber(c)
	if !valid {
		return badRequest(c, "missing patient scope")
	}

	appts, err := h.svc.List(c.Context(), pid)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appts)
}

// POST /patients/:pid/appointments
func (h *AppointmentHandler) Create(c fiber.Ctx) error {
	pid, valid := middleware.PatientIDFromFiber(c)
	if !valid {
		return badRequest(c, "missing patient scope")
	}

	var body struct {
		Date       string `json:"date"`
		Time       string `json:"time"`
		Location   string `json:"location"`
		Department string `json:"department"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	a, err := h.svc.Create(c.Context(), pid, appointment.CreateRequest{
		Date:       body.Date,
		Time:       body.Time,
		Location:   body.Location,
		Department: body.Department,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return created(c, a)
}

// PATCH /patients/:pid/appointments/:id
func (h *AppointmentHandler) Update(c fiber.Ctx) error {
	pid, valid := middleware.PatientIDFromFiber(c)
	if !valid {
		return badRequest(c, "missing patient scope")
	}
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		Date       *string `json:"date"`
		Time       *string `json:"time"`
		Location   *string `json:"location"`
		Department *string `json:"department"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	a, err := h.svc.Update(c.Context(), pid, apptID, appointment.UpdateRequest{
		Date:       body.Date,
		Time:       body.Time,
		Location:   body.Location,
		Department: body.Department,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, a)
}

// DELETE /patients/:pid/appointments/:id
func (h *AppointmentHandler) Delete(c fiber.Ctx) error {
	pid, valid := middleware.PatientIDFromFiber(c)
	if !valid {
		return badRequest(c, "missing patient scope")
	}
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	if err := h.svc.Delete(c.Context(), pid, apptID); err != nil {
		return mapAppointmentError(c, err)
	}
	return noContent(c)
}
