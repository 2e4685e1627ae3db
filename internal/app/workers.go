package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/Warinthorn/carelink_backend/config"
	"github.com/Warinthorn/carelink_backend/internal/repo"
	entprofile "github.com/Warinthorn/carelink_backend/internal/repo/profile"
	"github.com/Warinthorn/carelink_backend/internal/service/smartid"
	"github.com/Warinthorn/carelink_backend/pkg/docpath"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc      fx.Lifecycle
	NC      *nats.Conn
	DB      *repo.Client
	Cfg     *config.Config
	SmartID smartid.Service
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startIndexRepairWorker(p.NC, p.DB, p.Cfg, p.SmartID)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// index_repair_worker
// ---------------------------------------------------------------------------

// startIndexRepairWorker re-checks the public smart-ID index whenever a
// profile changes. Profile writes already maintain the index inline; this
// worker catches drift from partial failures, so a patient never stays
// unreachable by code.
func startIndexRepairWorker(nc *nats.Conn, db *repo.Client, cfg *config.Config, smartIDSvc smartid.Service) {
	subject := docpath.CollectionSubject(cfg.Sync.PartitionName(), "*", docpath.CollectionProfile)

	_, err := nc.Subscribe(subject, func(msg *nats.Msg) {
		// {partition}.users.{patientID}.profile
		parts := strings.Split(msg.Subject, ".")
		if len(parts) < 4 {
			return
		}
		patientID, err := uuid.Parse(parts[2])
		if err != nil {
			return
		}

		ctx := context.Background()
		p, err := db.Profile.Query().
			Where(entprofile.PatientID(patientID)).
			Only(ctx)
		if err != nil {
			if !repo.IsNotFound(err) {
				slog.Error("index repair: profile query failed", "patient_id", patientID, "error", err)
			}
			return
		}

		if err := smartIDSvc.Ensure(ctx, patientID, p.SmartID); err != nil {
			slog.Error("index repair: ensure failed", "patient_id", patientID, "error", err)
		}
	})
	if err != nil {
		slog.Error("failed to subscribe index repair worker", "error", err)
		return
	}

	slog.Info("index repair worker started", "subject", subject)
}
