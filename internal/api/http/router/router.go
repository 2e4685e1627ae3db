package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/Warinthorn/carelink_backend/config"
	"github.com/Warinthorn/carelink_backend/internal/api/http/handler"
	"github.com/Warinthorn/carelink_backend/internal/api/http/middleware"
	"github.com/Warinthorn/carelink_backend/internal/service/adherence"
	"github.com/Warinthorn/carelink_backend/internal/service/appointment"
	"github.com/Warinthorn/carelink_backend/internal/service/auth"
	"github.com/Warinthorn/carelink_backend/internal/service/care"
	"github.com/Warinthorn/carelink_backend/internal/service/export"
	"github.com/Warinthorn/carelink_backend/internal/service/family"
	"github.com/Warinthorn/carelink_backend/internal/service/healthlog"
	"github.com/Warinthorn/carelink_backend/internal/service/medication"
	"github.com/Warinthorn/carelink_backend/internal/service/profile"
	syncsvc "github.com/Warinthorn/carelink_backend/internal/service/sync"
	"github.com/Warinthorn/carelink_backend/internal/service/user"
	"github.com/Warinthorn/carelink_backend/pkg/authorize"
	pasetotoken "github.com/Warinthorn/carelink_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg            *config.Config
	Redis          *redis.Client
	Auth           authorize.IAuthorization
	UserSvc        user.Service
	AuthSvc        auth.Service
	ProfileSvc     profile.Service
	MedicationSvc  medication.Service
	AdherenceSvc   adherence.Service
	HealthLogSvc   healthlog.Service
	AppointmentSvc appointment.Service
	FamilySvc      family.Service
	CareSvc        care.Service
	SyncSvc        syncsvc.Service
	ExportSvc      export.Service
	PasetoMgr      *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)
	patientScope := middleware.PatientScope()

	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	userH := handler.NewUserHandler(r.p.UserSvc)
	profileH := handler.NewProfileHandler(r.p.ProfileSvc)
	medicationH := handler.NewMedicationHandler(r.p.MedicationSvc)
	adherenceH := handler.NewAdherenceHandler(r.p.AdherenceSvc)
	healthLogH := handler.NewHealthLogHandler(r.p.HealthLogSvc)
	appointmentH := handler.NewAppointmentHandler(r.p.AppointmentSvc)
	familyH := handler.NewFamilyHandler(r.p.FamilySvc)
	careH := handler.NewCareHandler(r.p.CareSvc)
	streamH := handler.NewStreamHandler(r.p.SyncSvc)
	exportH := handler.NewExportHandler(r.p.ExportSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerUserRoutes(api, userH, authRequired)
	r.registerCareRoutes(api, careH, authRequired)
	r.registerPatientRoutes(api, patientRouteHandlers{
		profile:     profileH,
		medication:  medicationH,
		adherence:   adherenceH,
		healthLog:   healthLogH,
		appointment: appointmentH,
		family:      familyH,
		stream:      streamH,
		export:      exportH,
	}, authRequired, patientScope, requirePerm)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
