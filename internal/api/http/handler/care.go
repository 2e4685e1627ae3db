package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Warinthorn/carelink_backend/internal/repo"
	"github.com/Warinthorn/carelink_backend/internal/service/care"
	"github.com/Warinthorn/carelink_backend/internal/service/smartid"
	pasetotoken "github.com/Warinthorn/carelink_backend/pkg/paseto"
)

type CareHandler struct {
	svc care.Service
}

func NewCareHandler(svc care.Service) *CareHandler {
	return &CareHandler{svc: svc}
}

func mapCareError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, smartid.ErrInvalidCode):
		return badRequest(c, err.Error())
	case errors.Is(err, smartid.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, care.ErrCannotWatchSelf):
		return badRequest(c, err.Error())
	case errors.Is(err, care.ErrNotLinked):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /api/v1/care/links
func (h *CareHandler) Link(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		SmartID string `json:"smartId"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	w, err := h.svc.Link(c.Context(), claims.UserID, body.SmartID)
	if err != nil {
		return mapCareError(c, err)
	}
	return created(c, watchView(w))
}

// GET /api/v1/care/links
func (h *CareHandler) List(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	watched, err := h.svc.ListWatched(c.Context(), claims.UserID)
	if err != nil {
		return mapCareError(c, err)
	}

	out := make([]fiber.Map, 0, len(watched))
	for _, w := range watched {
		out = append(out, watchView(w))
	}
	return ok(c, out)
}

// DELETE /api/v1/care/links/:patientId
func (h *CareHandler) Unlink(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	patientID, err := uuid.Parse(c.Params("patientId"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	if err := h.svc.Unlink(c.Context(), claims.UserID, patientID); err != nil {
		return mapCareError(c, err)
	}
	return noContent(c)
}

func watchView(w *repo.WatchRelationship) fiber.Map {
	return fiber.Map{
		"patientId":   w.PatientID,
		"patientName": w.PatientName,
		"smartId":     w.SmartID,
		"linkedAt":    w.CreatedAt,
	}
}
