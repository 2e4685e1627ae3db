package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Warinthorn/carelink_backend/internal/api/http/handler"
	"github.com/Warinthorn/carelink_backend/pkg/authorize"
)

type patientRouteHandlers struct {
	profile     *handler.ProfileHandler
	medication  *handler.MedicationHandler
	adherence   *handler.AdherenceHandler
	healthLog   *handler.HealthLogHandler
	appointment *handler.AppointmentHandler
	family      *handler.FamilyHandler
	stream      *handler.StreamHandler
	export      *handler.ExportHandler
}

// Patient-scoped routes. Every route resolves :pid first, then enforces the
// caller's grant in that patient's domain, so owners write and caregivers
// only read.
func (r *Router) registerPatientRoutes(
	api fiber.Router,
	h patientRouteHandlers,
	authRequired fiber.Handler,
	patientScope fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	p := api.Group("/patients/:pid", authRequired, patientScope)

	// Profile
	p.Get("/profile", requirePerm(authorize.ResourceProfile, authorize.ActionRead), h.profile.Get)
	p.Patch("/profile", requirePerm(authorize.ResourceProfile, authorize.ActionUpdate), h.profile.Update)

	// Medications
	meds := p.Group("/medications")
	meds.Get("/", requirePerm(authorize.ResourceMedication, authorize.ActionList), h.medication.List)
	meds.Post("/", requirePerm(authorize.ResourceMedication, authorize.ActionCreate), h.medication.Create)
	meds.Patch("/:id", requirePerm(authorize.ResourceMedication, authorize.ActionUpdate), h.medication.Update)
	meds.Delete("/:id", requirePerm(authorize.ResourceMedication, authorize.ActionDelete), h.medication.Delete)

	// Daily medication logs
	daily := p.Group("/daily-logs")
	daily.Get("/", requirePerm(authorize.ResourceDailyLog, authorize.ActionList), h.adherence.List)
	daily.Get("/:date", requirePerm(authorize.ResourceDailyLog, authorize.ActionRead), h.adherence.Get)
	daily.Post("/:date/toggle", requirePerm(authorize.ResourceDailyLog, authorize.ActionUpdate), h.adherence.Toggle)

	// Health measurement logs (append-only)
	logs := p.Group("/health-logs")
	logs.Get("/", requirePerm(authorize.ResourceHealthLog, authorize.ActionList), h.healthLog.List)
	logs.Get("/recent/:type", requirePerm(authorize.ResourceHealthLog, authorize.ActionRead), h.healthLog.Recent)
	logs.Post("/", requirePerm(authorize.ResourceHealthLog, authorize.ActionCreate), h.healthLog.Add)

	// Appointments
	appts := p.Group("/appointments")
	appts.Get("/", requirePerm(authorize.ResourceAppointment, authorize.ActionList), h.appointment.List)
	appts.Post("/", requirePerm(authorize.ResourceAppointment, authorize.ActionCreate), h.appointment.Create)
	appts.Patch("/:id", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), h.appointment.Update)
	appts.Delete("/:id", requirePerm(authorize.ResourceAppointment, authorize.ActionDelete), h.appointment.Delete)

	// Family members
	fam := p.Group("/family-members")
	fam.Get("/", requirePerm(authorize.ResourceFamilyMember, authorize.ActionList), h.family.List)
	fam.Post("/", requirePerm(authorize.ResourceFamilyMember, authorize.ActionCreate), h.family.Create)
	fam.Patch("/:id", requirePerm(authorize.ResourceFamilyMember, authorize.ActionUpdate), h.family.Update)
	fam.Delete("/:id", requirePerm(authorize.ResourceFamilyMember, authorize.ActionDelete), h.family.Delete)

	// Live snapshot stream
	p.Get("/stream", requirePerm(authorize.ResourceStream, authorize.ActionRead), h.stream.Stream)

	// JSON export — owner only, viewers have no export grant
	p.Get("/export", requirePerm(authorize.ResourceExport, authorize.ActionRead), h.export.Build)
}
