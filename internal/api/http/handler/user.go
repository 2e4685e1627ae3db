package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Warinthorn/carelink_backend/internal/repo"
	"github.com/Warinthorn/carelink_backend/internal/service/user"
	pasetotoken "github.com/Warinthorn/carelink_backend/pkg/paseto"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func mapUserError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrInvalidRole):
		return badRequest(c, err.Error())
	case errors.Is(err, user.ErrRoleAlreadySet):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /api/v1/users/me
func (h *UserHandler) Me(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	u, err := h.svc.GetByID(c.Context(), claims.UserID)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, userView(u))
}

// PUT /api/v1/users/me/role
func (h *UserHandler) SelectRole(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Role string `json:"role"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.SelectRole(c.Context(), claims.UserID, body.Role)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, userView(u))
}

func userView(u *repo.User) fiber.Map {
	v := fiber.Map{
		"id":             u.ID,
		"email":          u.Email,
		"email_verified": u.EmailVerified,
		"created_at":     u.CreatedAt,
	}
	if u.Name != nil {
		v["name"] = *u.Name
	}
	if u.Role != nil {
		v["role"] = *u.Role
	}
	return v
}
