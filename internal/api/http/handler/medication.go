package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Warinthorn/carelink_backend/internal/api/http/middleware"
	"github.com/Warinthorn/carelink_backend/internal/service/medication"
)

type MedicationHandler struct {
	svc medication.Service
}

func NewMedicationHandler(svc medication.Service) *MedicationHandler {
	return &MedicationHandler{svc: svc}
}

func mapMedicationError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, medication.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, medication.ErrNameMissing):
		return badRequest(c, err.Error())
	case errors.Is(err, medication.ErrInvalidTime):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /patients/:pid/medications
func (h *MedicationHandler) List(c fiber.Ctx) error {
	pid, valid := middleware.PatientIDFromFiber(c)
	if !valid {
		return badRequest(c, "missing patient scope")
	}

	meds, err := h.svc.List(c.Context(), pid)
	if err != nil {
		return mapMedicationError(c, err)
	}
	return ok(c, meds)
}

// POST /patients/:pid/medications
func (h *MedicationHandler) Create(c fiber.Ctx) error {
	pid, valid := middleware.PatientIDFromFiber(c)
	if !valid {
		return badRequest(c, "missing patient scope")
	}

	var body struct {
		Name string `json:"name"`
		Dose string `json:"dose"`
		Time string `json:"time"`
		Note string `json:"note"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	m, err := h.svc.Create(c.Context(), pid, medication.CreateRequest{
		Name: body.Name,
		Dose: body.Dose,
		Time: body.Time,
		Note: body.Note,
	})
	if err != nil {
		return mapMedicationError(c, err)
	}
	return created(c, m)
}

// PATCH /patients/:pid/medications/:id
func (h *MedicationHandler) Update(c fiber.Ctx) error {
	pid, valid := middleware.PatientIDFromFiber(c)
	if !valid {
		return badRequest(c, "missing patient scope")
	}
	medID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid medication id")
	}

	var body struct {
		Name *string `json:"name"`
		Dose *string `json:"dose"`
		Time *string `json:"time"`
		Note *string `json:"note"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	m, err := h.svc.Update(c.Context(), pid, medID, medication.UpdateRequest{
		Name: body.Name,
		Dose: body.Dose,
		Time: body.Time,
		Note: body.Note,
	})
	if err != nil {
		return mapMedicationError(c, err)
	}
	return ok(c, m)
}

// DELETE /patients/:pid/medications/:id
func (h *MedicationHandler) Delete(c fiber.Ctx) error {
	pid, valid := middleware.PatientIDFromFiber(c)
	if !valid {
		return badRequest(c, "missing patient scope")
	}
	medID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid medication id")
	}

	if err := h.svc.Delete(c.Context(), pid, medID); err != nil {
		return mapMedicationError(c, err)
	}
	return noContent(c)
}
