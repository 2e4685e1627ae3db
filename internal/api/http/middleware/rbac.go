package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Warinthorn/carelink_backend/pkg/authorize"
	pasetotoken "github.com/Warinthorn/carelink_backend/pkg/paseto"
)

// RequirePermission checks the authenticated user's grant for the resource
// in the current patient's domain (set by PatientScope), or the sys domain
// on routes with no patient in scope.
func RequirePermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		var domain authorize.Domain
		if pid, ok := PatientIDFromFiber(c); ok {
			domain = authorize.UserDomain(pid.String())
		} else {
			domain = authorize.DomainSys
		}

		subject := authorize.GroupSubject(claims.UserID.String())
		if err := auth.MustEnforce(c.Context(), subject, domain, resource, action); err != nil {
			if err == authorize.ErrForbidden {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}
