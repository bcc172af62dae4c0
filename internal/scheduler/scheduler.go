package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/tanvirdev/officebook/internal/config"
	"github.com/tanvirdev/officebook/internal/domain/models"
	"github.com/tanvirdev/officebook/internal/service/reporting"
)

// Scheduler runs the nightly daily-summary snapshot.
type Scheduler struct {
	cron         *cron.Cron
	reportingSvc *reporting.Service
	location     *time.Location
	schedule     string
	logger       *zap.Logger
}

// New creates a scheduler honoring the configured timezone; an unknown
// timezone falls back to the host's local time.
func New(cfg config.ReportingConfig, reportingSvc *reporting.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("unknown timezone, using local time", zap.String("timezone", cfg.Timezone), zap.Error(err))
		location = time.Local
	}

	return &Scheduler{
		cron:         cron.New(cron.WithLocation(location)),
		reportingSvc: reportingSvc,
		location:     location,
		schedule:     cfg.CronSchedule,
		logger:       logger,
	}
}

// Start registers the snapshot job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.schedule))

	if _, err := s.cron.AddFunc(s.schedule, s.snapshotToday); err != nil {
		s.logger.Error("failed to schedule daily snapshot", zap.Error(err))
		return
	}

	s.cron.Start()
}

// Stop stops the cron loop.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) snapshotToday() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	date := time.Now().In(s.location).Format(models.DateLayout)
	s.logger.Info("running daily summary snapshot", zap.String("date", date))

	if err := s.reportingSvc.SnapshotDaily(ctx, date); err != nil {
		s.logger.Error("daily summary snapshot failed", zap.String("date", date), zap.Error(err))
	}
}
