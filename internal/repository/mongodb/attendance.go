package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tanvirdev/officebook/internal/domain/apperrors"
	"github.com/tanvirdev/officebook/internal/domain/models"
)

// MarkAttendance sets the status for one (employeeId, date) pair in a single
// upsert, so concurrent marks for the same key cannot produce duplicates.
// The returned flag is true when an existing record was overwritten.
func (r *Repository) MarkAttendance(ctx context.Context, employeeID primitive.ObjectID, date, status string) (bool, error) {
	filter := bson.M{"employeeId": employeeID, "date": date}
	update := bson.M{"$set": bson.M{"status": status}}

	res, err := r.db.Collection(collAttendance).UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, apperrors.Internal("failed to mark attendance", err)
	}
	return res.MatchedCount > 0, nil
}

// ListAttendanceByDate returns every attendance row for a calendar date.
func (r *Repository) ListAttendanceByDate(ctx context.Context, date string) ([]models.Attendance, error) {
	cursor, err := r.db.Collection(collAttendance).Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, apperrors.Internal("failed to load attendance", err)
	}

	records := []models.Attendance{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, apperrors.Internal("failed to decode attendance", err)
	}
	return records, nil
}

// CountPresentDays counts "present" rows for one employee within a month.
func (r *Repository) CountPresentDays(ctx context.Context, employeeID primitive.ObjectID, month string) (int64, error) {
	filter := bson.M{
		"employeeId": employeeID,
		"status":     models.AttendancePresent,
		"date":       primitive.Regex{Pattern: "^" + month},
	}

	count, err := r.db.Collection(collAttendance).CountDocuments(ctx, filter)
	if err != nil {
		return 0, apperrors.Internal("failed to count present days", err)
	}
	return count, nil
}

// CountAttendanceStatus counts rows with the given status on one date.
func (r *Repository) CountAttendanceStatus(ctx context.Context, date, status string) (int64, error) {
	count, err := r.db.Collection(collAttendance).CountDocuments(ctx, bson.M{"date": date, "status": status})
	if err != nil {
		return 0, apperrors.Internal("failed to count attendance", err)
	}
	return count, nil
}
