package scheduler

import (
	"context"
	"log/slog"
	"time"

	"fogexplore/pkg/config"
	"fogexplore/pkg/database"
	"fogexplore/pkg/module"

	"github.com/go-chi/chi/v5"
	"github.com/robfig/cron/v3"
)

// Module runs the periodic maintenance sweeps over the users collection:
// expired power-ups are pulled and abandoned online flags are cleared.
type Module struct {
	*module.BaseModule
	repository *Repository
	cron       *cron.Cron
}

// New creates a new scheduler module instance
func New(mongodb *database.MongoDB, redis *database.Redis) *Module {
	return &Module{
		BaseModule: module.NewBaseModule("scheduler", mongodb, redis),
		repository: NewRepository(mongodb),
		cron:       cron.New(),
	}
}

// Routes registers the module's health route on a chi router
func (m *Module) Routes(r chi.Router) {
	m.RegisterHealthRoute(r)
}

// StartBackgroundTasks wires the sweep jobs into the cron runner and blocks
// until shutdown
func (m *Module) StartBackgroundTasks(ctx context.Context) {
	slog.Info("Starting scheduler background tasks", "module", m.Name())

	powerUpSchedule := config.GetEnv("POWERUP_SWEEP_SCHEDULE", "@every 1h")
	if _, err := m.cron.AddFunc(powerUpSchedule, func() {
		m.sweepPowerUps(ctx)
	}); err != nil {
		slog.Error("Failed to schedule power-up sweep", "schedule", powerUpSchedule, "error", err)
	}

	presenceSchedule := config.GetEnv("PRESENCE_SWEEP_SCHEDULE", "@every 1h")
	if _, err := m.cron.AddFunc(presenceSchedule, func() {
		m.sweepStalePresence(ctx)
	}); err != nil {
		slog.Error("Failed to schedule presence sweep", "schedule", presenceSchedule, "error", err)
	}

	m.cron.Start()

	select {
	case <-ctx.Done():
		slog.Info("Scheduler stopped due to context cancellation")
	case <-m.StopChannel():
		slog.Info("Scheduler stopped")
	}

	stopCtx := m.cron.Stop()
	<-stopCtx.Done()
}

func (m *Module) sweepPowerUps(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	modified, err := m.repository.ExpirePowerUps(sweepCtx, time.Now())
	if err != nil {
		slog.Error("Power-up sweep failed", "error", err)
		return
	}
	if modified > 0 {
		slog.Info("Expired power-ups removed", "players", modified)
	}
}

func (m *Module) sweepStalePresence(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-config.GetPresenceStaleAfter())
	modified, err := m.repository.MarkStalePresence(sweepCtx, cutoff)
	if err != nil {
		slog.Error("Presence sweep failed", "error", err)
		return
	}
	if modified > 0 {
		slog.Info("Stale presence cleared", "players", modified)
	}
}
