package app

import (
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/Warinthorn/carelink_backend/config"
	"github.com/Warinthorn/carelink_backend/internal/events"
	"github.com/Warinthorn/carelink_backend/internal/repo"
	"github.com/Warinthorn/carelink_backend/internal/service/adherence"
	"github.com/Warinthorn/carelink_backend/internal/service/appointment"
	"github.com/Warinthorn/carelink_backend/internal/service/auth"
	"github.com/Warinthorn/carelink_backend/internal/service/care"
	"github.com/Warinthorn/carelink_backend/internal/service/export"
	"github.com/Warinthorn/carelink_backend/internal/service/family"
	"github.com/Warinthorn/carelink_backend/internal/service/healthlog"
	"github.com/Warinthorn/carelink_backend/internal/service/medication"
	"github.com/Warinthorn/carelink_backend/internal/service/profile"
	"github.com/Warinthorn/carelink_backend/internal/service/smartid"
	syncsvc "github.com/Warinthorn/carelink_backend/internal/service/sync"
	"github.com/Warinthorn/carelink_backend/internal/service/user"
	"github.com/Warinthorn/carelink_backend/pkg/authorize"
	"github.com/Warinthorn/carelink_backend/pkg/email"
	pasetotoken "github.com/Warinthorn/carelink_backend/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuthService,
		ProvideUserService,
		ProvideSmartIDService,
		ProvideProfileService,
		ProvideMedicationService,
		ProvideAdherenceService,
		ProvideHealthLogService,
		ProvideAppointmentService,
		ProvideFamilyService,
		ProvideCareService,
		ProvideSyncService,
		ProvideExportService,
		ProvidePasetoManager,
	),
)

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	mailer *email.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, mailer, paseto, cfg)
}

func ProvideUserService(db *repo.Client, authz authorize.IAuthorization, pub *events.Publisher) user.Service {
	return user.New(db, authz, pub)
}

func ProvideSmartIDService(db *repo.Client, cfg *config.Config, pub *events.Publisher) smartid.Service {
	return smartid.New(db, cfg, pub)
}

func ProvideProfileService(db *repo.Client, cfg *config.Config, smartIDSvc smartid.Service, pub *events.Publisher) (profile.Service, error) {
	return profile.New(db, cfg, smartIDSvc, pub)
}

func ProvideMedicationService(db *repo.Client, pub *events.Publisher) medication.Service {
	return medication.New(db, pub)
}

func ProvideAdherenceService(db *repo.Client, pub *events.Publisher) adherence.Service {
	return adherence.New(db, pub)
}

func ProvideHealthLogService(db *repo.Client, cfg *config.Config, pub *events.Publisher) healthlog.Service {
	return healthlog.New(db, cfg, pub)
}

func ProvideAppointmentService(db *repo.Client, pub *events.Publisher) appointment.Service {
	return appointment.New(db, pub)
}

func ProvideFamilyService(db *repo.Client, pub *events.Publisher) family.Service {
	return family.New(db, pub)
}

func ProvideCareService(db *repo.Client, smartIDSvc smartid.Service, authz authorize.IAuthorization, pub *events.Publisher) care.Service {
	return care.New(db, smartIDSvc, authz, pub)
}

func ProvideSyncService(
	cfg *config.Config,
	nc *nats.Conn,
	profileSvc profile.Service,
	medicationSvc medication.Service,
	adherenceSvc adherence.Service,
	healthLogSvc healthlog.Service,
	appointmentSvc appointment.Service,
	familySvc family.Service,
) syncsvc.Service {
	return syncsvc.New(cfg, syncsvc.NewNatsBus(nc),
		profileSvc, medicationSvc, adherenceSvc,
		healthLogSvc, appointmentSvc, familySvc)
}

func ProvideExportService(
	profileSvc profile.Service,
	medicationSvc medication.Service,
	appointmentSvc appointment.Service,
	healthLogSvc healthlog.Service,
	adherenceSvc adherence.Service,
) export.Service {
	return export.New(profileSvc, medicationSvc, appointmentSvc, healthLogSvc, adherenceSvc)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
