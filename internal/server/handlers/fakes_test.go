package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tanvirdev/officebook/internal/domain/models"
)

// Hand-written fakes for the store interfaces. Each records the arguments it
// saw and replays canned results.

type fakeEmployeeStore struct {
	inserted  *models.Employee
	insertErr error
	list      []models.Employee
	updateErr error
	updatedID primitive.ObjectID
	deleteErr error
	deletedID primitive.ObjectID
}

func (f *fakeEmployeeStore) InsertEmployee(_ context.Context, e models.Employee) (models.Employee, error) {
	f.inserted = &e
	if f.insertErr != nil {
		return models.Employee{}, f.insertErr
	}
	e.ID = primitive.NewObjectID()
	return e, nil
}

func (f *fakeEmployeeStore) ListEmployees(context.Context) ([]models.Employee, error) {
	return f.list, nil
}

func (f *fakeEmployeeStore) FindEmployee(context.Context, primitive.ObjectID) (*models.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeStore) UpdateEmployee(_ context.Context, id primitive.ObjectID, _ models.EmployeeUpdate) error {
	f.updatedID = id
	return f.updateErr
}

func (f *fakeEmployeeStore) DeleteEmployeeCascade(_ context.Context, id primitive.ObjectID) error {
	f.deletedID = id
	return f.deleteErr
}

type fakeAttendanceStore struct {
	markedEmployee primitive.ObjectID
	markedDate     string
	markedStatus   string
	markUpdated    bool
	markErr        error
	byDate         []models.Attendance
}

func (f *fakeAttendanceStore) MarkAttendance(_ context.Context, employeeID primitive.ObjectID, date, status string) (bool, error) {
	f.markedEmployee = employeeID
	f.markedDate = date
	f.markedStatus = status
	return f.markUpdated, f.markErr
}

func (f *fakeAttendanceStore) ListAttendanceByDate(context.Context, string) ([]models.Attendance, error) {
	return f.byDate, nil
}

func (f *fakeAttendanceStore) CountPresentDays(context.Context, primitive.ObjectID, string) (int64, error) {
	return 0, nil
}

func (f *fakeAttendanceStore) CountAttendanceStatus(context.Context, string, string) (int64, error) {
	return 0, nil
}

type fakeAdvanceStore struct {
	byDate     []models.Advance
	listedDate string
	summary    []models.AdvanceDay
	createErr  error
	created    *models.Advance
	updateErr  error
	updated    *models.Advance
}

func (f *fakeAdvanceStore) ListAdvancesByDate(_ context.Context, date string) ([]models.Advance, error) {
	f.listedDate = date
	return f.byDate, nil
}

func (f *fakeAdvanceStore) MonthlyAdvanceSummary(context.Context, primitive.ObjectID, string) ([]models.AdvanceDay, error) {
	return f.summary, nil
}

func (f *fakeAdvanceStore) CreateAdvance(_ context.Context, employeeID primitive.ObjectID, date string, amount float64) error {
	f.created = &models.Advance{EmployeeID: employeeID, Date: date, Amount: amount}
	return f.createErr
}

func (f *fakeAdvanceStore) UpdateAdvance(_ context.Context, employeeID primitive.ObjectID, date string, amount float64) error {
	f.updated = &models.Advance{EmployeeID: employeeID, Date: date, Amount: amount}
	return f.updateErr
}

func (f *fakeAdvanceStore) SumAdvancesForMonth(context.Context, primitive.ObjectID, string) (float64, error) {
	return 0, nil
}

func (f *fakeAdvanceStore) SumAdvancesForDate(context.Context, string) (float64, int64, error) {
	return 0, 0, nil
}

type fakeCustomerStore struct {
	created   *models.Customer
	createErr error
	list      []models.Customer
	deletedID primitive.ObjectID
	deleteErr error
}

func (f *fakeCustomerStore) CreateCustomer(_ context.Context, name string) (models.Customer, error) {
	if f.createErr != nil {
		return models.Customer{}, f.createErr
	}
	c := models.Customer{ID: primitive.NewObjectID(), Name: name}
	f.created = &c
	return c, nil
}

func (f *fakeCustomerStore) ListCustomers(context.Context) ([]models.Customer, error) {
	return f.list, nil
}

func (f *fakeCustomerStore) DeleteCustomerCascade(_ context.Context, id primitive.ObjectID) error {
	f.deletedID = id
	return f.deleteErr
}

// fakeSellingRateStore keeps an in-memory per-date ledger so append/read
// ordering can be asserted end to end.
type fakeSellingRateStore struct {
	ledger       map[string][]models.RateEntry
	patched      *models.PatchRateRequest
	patchMatched int64
	pulled       []string
}

func newFakeSellingRateStore() *fakeSellingRateStore {
	return &fakeSellingRateStore{ledger: map[string][]models.RateEntry{}}
}

func (f *fakeSellingRateStore) AppendRates(_ context.Context, date, _ string, rates []models.RateEntry) error {
	f.ledger[date] = append(f.ledger[date], rates...)
	return nil
}

func (f *fakeSellingRateStore) RatesForDate(_ context.Context, date string) ([]models.RateEntry, error) {
	if rates, ok := f.ledger[date]; ok {
		return rates, nil
	}
	return []models.RateEntry{}, nil
}

func (f *fakeSellingRateStore) PatchRate(_ context.Context, req models.PatchRateRequest) (int64, int64, error) {
	f.patched = &req
	return f.patchMatched, f.patchMatched, nil
}

func (f *fakeSellingRateStore) PullCustomerRates(_ context.Context, date, customerName string) (int64, error) {
	f.pulled = append(f.pulled, customerName)
	var kept []models.RateEntry
	var removed int64
	for _, entry := range f.ledger[date] {
		if entry.CustomerName == customerName {
			removed++
			continue
		}
		kept = append(kept, entry)
	}
	f.ledger[date] = kept
	if removed > 0 {
		return 1, nil
	}
	return 0, nil
}

func (f *fakeSellingRateStore) DeleteDate(_ context.Context, date string) (int64, error) {
	if _, ok := f.ledger[date]; !ok {
		return 0, nil
	}
	delete(f.ledger, date)
	return 1, nil
}
