package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Advance is a cash disbursement to an employee, tracked per date so it can
// be reconciled against the monthly salary. At most one document exists per
// (employeeId, date) pair.
type Advance struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EmployeeID primitive.ObjectID `bson:"employeeId" json:"employeeId"`
	Amount     float64            `bson:"amount" json:"amount"`
	Date       string             `bson:"date" json:"date"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// AdvanceRequest covers both create and update; the two operations are
// deliberately disjoint (create refuses an existing key, update requires one).
type AdvanceRequest struct {
	EmployeeID string  `json:"employeeId"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date"`
}

// AdvanceDay is one row of the monthly per-date advance summary.
type AdvanceDay struct {
	Date   string  `bson:"_id" json:"date"`
	Amount float64 `bson:"totalAmount" json:"amount"`
}
