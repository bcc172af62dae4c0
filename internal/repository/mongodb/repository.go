package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/tanvirdev/officebook/internal/domain/models"
)

// Collection names.
const (
	collEmployees    = "employees"
	collAttendance   = "attendance"
	collAdvances     = "advances"
	collCustomers    = "customers"
	collSellingRate  = "sellingRate"
	collDailyReports = "daily_reports"
)

// EmployeeStore is the employee collection surface.
type EmployeeStore interface {
	InsertEmployee(ctx context.Context, employee models.Employee) (models.Employee, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	FindEmployee(ctx context.Context, id primitive.ObjectID) (*models.Employee, error)
	UpdateEmployee(ctx context.Context, id primitive.ObjectID, update models.EmployeeUpdate) error
	DeleteEmployeeCascade(ctx context.Context, id primitive.ObjectID) error
}

// AttendanceStore is the attendance collection surface.
type AttendanceStore interface {
	MarkAttendance(ctx context.Context, employeeID primitive.ObjectID, date, status string) (updated bool, err error)
	ListAttendanceByDate(ctx context.Context, date string) ([]models.Attendance, error)
	CountPresentDays(ctx context.Context, employeeID primitive.ObjectID, month string) (int64, error)
	CountAttendanceStatus(ctx context.Context, date, status string) (int64, error)
}

// AdvanceStore is the advances collection surface.
type AdvanceStore interface {
	ListAdvancesByDate(ctx context.Context, date string) ([]models.Advance, error)
	MonthlyAdvanceSummary(ctx context.Context, employeeID primitive.ObjectID, month string) ([]models.AdvanceDay, error)
	CreateAdvance(ctx context.Context, employeeID primitive.ObjectID, date string, amount float64) error
	UpdateAdvance(ctx context.Context, employeeID primitive.ObjectID, date string, amount float64) error
	SumAdvancesForMonth(ctx context.Context, employeeID primitive.ObjectID, month string) (float64, error)
	SumAdvancesForDate(ctx context.Context, date string) (total float64, count int64, err error)
}

// CustomerStore is the customer collection surface.
type CustomerStore interface {
	CreateCustomer(ctx context.Context, name string) (models.Customer, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	DeleteCustomerCascade(ctx context.Context, id primitive.ObjectID) error
}

// SellingRateStore is the per-date rate ledger surface.
type SellingRateStore interface {
	AppendRates(ctx context.Context, date, createdAt string, rates []models.RateEntry) error
	RatesForDate(ctx context.Context, date string) ([]models.RateEntry, error)
	PatchRate(ctx context.Context, req models.PatchRateRequest) (matched, modified int64, err error)
	PullCustomerRates(ctx context.Context, date, customerName string) (modified int64, err error)
	DeleteDate(ctx context.Context, date string) (deleted int64, err error)
}

// ReportStore persists nightly daily summaries.
type ReportStore interface {
	InsertDailySummary(ctx context.Context, summary models.DailySummary) error
}

// Store is the combined persistence surface consumed by the reporting service.
type Store interface {
	EmployeeStore
	AttendanceStore
	AdvanceStore
	CustomerStore
	SellingRateStore
	ReportStore
}

// Repository implements Store on top of a shared MongoDB database handle.
type Repository struct {
	client *mongo.Client
	db     *mongo.Database
	logger *zap.Logger
}

// New connects to MongoDB, verifies the connection and returns a Repository.
func New(ctx context.Context, uri, dbName string, logger *zap.Logger) (*Repository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Repository{
		client: client,
		db:     client.Database(dbName),
		logger: logger,
	}, nil
}

// NewWithDatabase wraps an already-connected database handle.
func NewWithDatabase(db *mongo.Database, logger *zap.Logger) *Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repository{client: db.Client(), db: db, logger: logger}
}

// Close closes the MongoDB connection.
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

// withTransaction runs fn inside a session transaction. Used by the cascade
// deletes so the paired writes commit or abort together.
func (r *Repository) withTransaction(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
