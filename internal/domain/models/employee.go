package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee status values.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Employee is a worker on the shop payroll.
type Employee struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	DailySalary float64            `bson:"dailySalary" json:"dailySalary"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// CreateEmployeeRequest is the payload for registering a new employee.
type CreateEmployeeRequest struct {
	Name        string  `json:"name"`
	DailySalary float64 `json:"dailySalary"`
}

// EmployeeUpdate carries the optional fields of a partial employee update.
// Nil fields are left untouched.
type EmployeeUpdate struct {
	Name        *string  `json:"name"`
	DailySalary *float64 `json:"dailySalary"`
	Status      *string  `json:"status"`
}

// Empty reports whether the update would touch no fields at all.
func (u EmployeeUpdate) Empty() bool {
	return u.Name == nil && u.DailySalary == nil && u.Status == nil
}
