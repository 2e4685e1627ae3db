package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Warinthorn/carelink_backend/internal/api/http/middleware"
	"github.com/Warinthorn/carelink_backend/internal/service/family"
)

type FamilyHandler struct {
	svc family.Service
}

func NewFamilyHandler(svc family.Service) *FamilyHandler {
	return &FamilyHandler{svc: svc}
}

func mapFamilyError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, family.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, family.ErrNameMissing):
		return badRequest(c, err.Error())
	case errors.Is(err, family.ErrInvalidRelation):
		return badRequest(c, err.Error())
	case errors.Is(err, family.ErrInvalidPhone):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /patients/:pid/family-members
func (h *FamilyHandler) List(c fiber.Ctx) error {
	pid, valid := middleware.PatientIDFromFiber(c)
	if !valid {
		return badRequest(c, "missing patient scope")
	}

	members, err := h.svc.List(c.Context(), pid)
	if err != nil {
		return mapFamilyError(c, err)
	}
	return ok(c, members)
}

// POST /patients/:pid/family-members
func (h *FamilyHandler) Create(c fiber.Ctx) error {
	pid, valid := middleware.PatientIDFromFiber(c)
	if !valid {
		return badRequest(c, "missing patient scope")
	}

	var body struct {
		Name     string `json:"name"`
		Phone    string `json:"phone"`
		Relation string `json:"relation"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	m, err := h.svc.Create(c.Context(), pid, family.CreateRequest{
		Name:     body.Name,
		Phone:    body.Phone,
		Relation: body.Relation,
	})
	if err != nil {
		return mapFamilyError(c, err)
	}
	return created(c, m)
}

// PATCH /patients/:pid/family-members/:id
func (h *FamilyHandler) Update(c fiber.Ctx) error {
	pid, valid := middleware.PatientIDFromFiber(c)
	if !valid {
		return badRequest(c, "missing patient scope")
	}
	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid family member id")
	}

	var body struct {
		Name     *string `json:"name"`
		Phone    *string `json:"phone"`
		Relation *string `json:"relation"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	m, err := h.svc.Update(c.Context(), pid, memberID, family.UpdateRequest{
		Name:     body.Name,
		Phone:    body.Phone,
		Relation: body.Relation,
	})
	if err != nil {
		return mapFamilyError(c, err)
	}
	return ok(c, m)
}

// DELETE /patients/:pid/family-members/:id
func (h *FamilyHandler) Delete(c fiber.Ctx) error {
	pid, valid := middleware.PatientIDFromFiber(c)
	if !valid {
		return badRequest(c, "missing patient scope")
	}
	memberID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid family member id")
	}

	if err := h.svc.Delete(c.Context(), pid, memberID); err != nil {
		return mapFamilyError(c, err)
	}
	return noContent(c)
}
