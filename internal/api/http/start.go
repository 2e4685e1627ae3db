package http

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/Warinthorn/carelink_backend/config"
	"github.com/Warinthorn/carelink_backend/internal/api/http/router"
	"github.com/Warinthorn/carelink_backend/internal/app"
)

// Start composes the application graph and runs the HTTP server until
// shutdown. Invoking *fiber.App forces server construction so the fx
// lifecycle OnStart hook fires.
func Start(cfg *config.Config, shutdownTimeout time.Duration) {
	fx.New(
		fx.Supply(cfg),
		app.InfraModule,
		app.ServiceModule,
		app.WorkerModule,
		router.Module,
		Module,
		fx.Invoke(func(*fiber.App) {}),
		fx.StopTimeout(shutdownTimeout),
		fx.WithLogger(func() fxevent.Logger { return fxevent.NopLogger }),
	).Run()
}
