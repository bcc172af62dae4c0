package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Attendance statuses persisted as-is; anything else the caller sends is
// stored untouched, "present" is the only value salary computation counts.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

// Attendance records one employee's status for one calendar date.
// At most one document exists per (employeeId, date) pair.
type Attendance struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EmployeeID primitive.ObjectID `bson:"employeeId" json:"employeeId"`
	Date       string             `bson:"date" json:"date"`
	Status     string             `bson:"status" json:"status"`
}

// MarkAttendanceRequest is the payload for recording attendance.
type MarkAttendanceRequest struct {
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}
