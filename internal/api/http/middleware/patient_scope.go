package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	pasetotoken "github.com/Warinthorn/carelink_backend/pkg/paseto"
)

const LocalsPatientID = "patient_id"

// PatientScope resolves the :pid route param into the patient whose records
// the request addresses. "me" aliases the caller's own ID so the patient app
// never has to know its UUID.
func PatientScope() fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		raw := c.Params("pid")
		if raw == "" {
			return fiber.ErrBadRequest
		}

		var pid uuid.UUID
		if raw == "me" {
			pid = claims.UserID
		} else {
			var err error
			pid, err = uuid.Parse(raw)
			if err != nil {
				return fiber.ErrBadRequest
			}
		}

		c.Locals(LocalsPatientID, pid)
		return c.Next()
	}
}

// PatientIDFromFiber retrieves the patient in scope, when PatientScope ran.
func PatientIDFromFiber(c fiber.Ctx) (uuid.UUID, bool) {
	v := c.Locals(LocalsPatientID)
	id, ok := v.(uuid.UUID)
	return id, ok && id != uuid.Nil
}
