package reporting

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/tanvirdev/officebook/internal/domain/models"
	"github.com/tanvirdev/officebook/internal/repository/mongodb"
	"github.com/tanvirdev/officebook/internal/repository/sheets"
	"github.com/tanvirdev/officebook/pkg/clients/notify"
)

// Service computes derived reports: the per-employee monthly salary view and
// the per-day operations summary. Notifier and exporter are optional; when
// nil the corresponding delivery step is skipped.
type Service struct {
	store    mongodb.Store
	notifier notify.Notifier
	exporter sheets.Exporter
	logger   *zap.Logger
}

// NewService wires a new reporting service instance.
func NewService(store mongodb.Store, notifier notify.Notifier, exporter sheets.Exporter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, notifier: notifier, exporter: exporter, logger: logger}
}

// SalaryReport recomputes the monthly payroll view for one employee:
// presentDays x dailySalary minus the month's advances.
func (s *Service) SalaryReport(ctx context.Context, employeeID primitive.ObjectID, month string) (*models.SalaryReport, error) {
	employee, err := s.store.FindEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	presentDays, err := s.store.CountPresentDays(ctx, employeeID, month)
	if err != nil {
		return nil, err
	}

	totalAdvance, err := s.store.SumAdvancesForMonth(ctx, employeeID, month)
	if err != nil {
		return nil, err
	}

	totalSalary := float64(presentDays) * employee.DailySalary

	return &models.SalaryReport{
		EmployeeName: employee.Name,
		PresentDays:  presentDays,
		DailySalary:  employee.DailySalary,
		TotalSalary:  totalSalary,
		TotalAdvance: totalAdvance,
		Payable:      totalSalary - totalAdvance,
	}, nil
}

// ComputeDailySummary aggregates one day of shop activity live.
func (s *Service) ComputeDailySummary(ctx context.Context, date string) (*models.DailySummary, error) {
	totalAdvance, advanceCount, err := s.store.SumAdvancesForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	present, err := s.store.CountAttendanceStatus(ctx, date, models.AttendancePresent)
	if err != nil {
		return nil, err
	}

	absent, err := s.store.CountAttendanceStatus(ctx, date, models.AttendanceAbsent)
	if err != nil {
		return nil, err
	}

	rates, err := s.store.RatesForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return &models.DailySummary{
		Date:           date,
		TotalAdvance:   totalAdvance,
		AdvanceCount:   advanceCount,
		PresentCount:   present,
		AbsentCount:    absent,
		RateEntryCount: len(rates),
		CreatedAt:      time.Now(),
	}, nil
}

// SnapshotDaily computes and persists the summary for one date, then hands
// it to the webhook notifier and sheet exporter when configured. Delivery
// failures are logged, never fatal.
func (s *Service) SnapshotDaily(ctx context.Context, date string) error {
	summary, err := s.ComputeDailySummary(ctx, date)
	if err != nil {
		return fmt.Errorf("compute daily summary: %w", err)
	}

	if err := s.store.InsertDailySummary(ctx, *summary); err != nil {
		return fmt.Errorf("persist daily summary: %w", err)
	}

	if s.notifier != nil {
		if err := s.notifier.SendDailySummary(ctx, *summary); err != nil {
			s.logger.Error("failed to deliver daily summary webhook", zap.String("date", date), zap.Error(err))
		}
	}

	if s.exporter != nil {
		if err := s.exporter.AppendDailySummary(ctx, *summary); err != nil {
			s.logger.Error("failed to export daily summary row", zap.String("date", date), zap.Error(err))
		}
	}

	s.logger.Info("daily summary snapshot stored", zap.String("date", date))
	return nil
}
