package handler

import (
	"bufio"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/Warinthorn/carelink_backend/internal/api/http/middleware"
	syncsvc "github.com/Warinthorn/carelink_backend/internal/service/sync"
	pasetotoken "github.com/Warinthorn/carelink_backend/pkg/paseto"
)

const keepaliveInterval = 25 * time.Second

// StreamHandler serves the live snapshot feed over server-sent events. Each
// event carries one collection's full current state; clients replace, never
// merge.
type StreamHandler struct {
	svc syncsvc.Service
}

func NewStreamHandler(svc syncsvc.Service) *StreamHandler {
	return &StreamHandler{svc: svc}
}

// GET /patients/:pid/stream
func (h *StreamHandler) Stream(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	pid, hasPID := middleware.PatientIDFromFiber(c)
	if !hasPID {
		return badRequest(c, "missing patient scope")
	}

	sess, err := h.svc.Attach(c.Context(), claims.UserID, pid)
	if err != nil {
		return internalError(c)
	}

	viewerID := claims.UserID

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	return c.SendStreamWriter(func(w *bufio.Writer) {
		defer h.svc.Detach(viewerID)

		keepalive := time.NewTicker(keepaliveInterval)
		defer keepalive.Stop()

		for {
			select {
			case snap := <-sess.Snapshots():
				payload, err := json.Marshal(snap)
				if err != nil {
					continue
				}
				if _, err := fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", payload); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}

			case <-keepalive.C:
				if _, err := fmt.Fprint(w, ": keepalive\n\n"); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}

			case <-sess.Done():
				return
			}
		}
	})
}
