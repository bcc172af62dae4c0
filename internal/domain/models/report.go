package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SalaryReport is the derived monthly payroll view for one employee.
// It is recomputed on every request and never persisted.
type SalaryReport struct {
	EmployeeName string  `json:"employeeName"`
	PresentDays  int64   `json:"presentDays"`
	DailySalary  float64 `json:"dailySalary"`
	TotalSalary  float64 `json:"totalSalary"`
	TotalAdvance float64 `json:"totalAdvance"`
	Payable      float64 `json:"payable"`
}

// DailySummary aggregates one day of shop activity. The nightly job persists
// it to the daily_reports collection; the same shape is served live on demand.
type DailySummary struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Date           string             `bson:"date" json:"date"`
	TotalAdvance   float64            `bson:"totalAdvance" json:"totalAdvance"`
	AdvanceCount   int64              `bson:"advanceCount" json:"advanceCount"`
	PresentCount   int64              `bson:"presentCount" json:"presentCount"`
	AbsentCount    int64              `bson:"absentCount" json:"absentCount"`
	RateEntryCount int                `bson:"rateEntryCount" json:"rateEntryCount"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}
