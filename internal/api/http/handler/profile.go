package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Warinthorn/carelink_backend/internal/api/http/middleware"
	"github.com/Warinthorn/carelink_backend/internal/service/profile"
)

type ProfileHandler struct {
	svc profile.Service
}

func NewProfileHandler(svc profile.Service) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

func mapProfileError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, profile.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, profile.ErrInvalidAge):
		return badRequest(c, err.Error())
	case errors.Is(err, profile.ErrInvalidName):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /patients/:pid/profile
func (h *ProfileHandler) Get(c fiber.Ctx) error {
	pid, valid := middleware.PatientIDFromFiber(c)
	if !valid {
		return badRequest(c, "missing patient scope")
	}

	v, err := h.svc.Get(c.Context(), pid)
	if err != nil {
		return mapProfileError(c, err)
	}
	return ok(c, v)
}

// PATCH /patients/:pid/profile
func (h *ProfileHandler) Update(c fiber.Ctx) error {
	pid, valid := middleware.PatientIDFromFiber(c)
	if !valid {
		return badRequest(c, "missing patient scope")
	}

	var body struct {
		Name      *string   `json:"name"`
		Age       *int      `json:"age"`
		Diseases  *[]string `json:"diseases"`
		Allergies *[]string `json:"allergies"`
		BloodType *string   `json:"bloodType"`
		CitizenID *string   `json:"citizenId"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	v, err := h.svc.Update(c.Context(), pid, profile.UpdateRequest{
		Name:      body.Name,
		Age:       body.Age,
		Diseases:  body.Diseases,
		Allergies: body.Allergies,
		BloodType: body.BloodType,
		CitizenID: body.CitizenID,
	})
	if err != nil {
		return mapProfileError(c, err)
	}
	return ok(c, v)
}
