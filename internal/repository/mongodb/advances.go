package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tanvirdev/officebook/internal/domain/apperrors"
	"github.com/tanvirdev/officebook/internal/domain/models"
)

// ListAdvancesByDate returns every advance disbursed on one date.
func (r *Repository) ListAdvancesByDate(ctx context.Context, date string) ([]models.Advance, error) {
	cursor, err := r.db.Collection(collAdvances).Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, apperrors.Internal("failed to load daily advance", err)
	}

	advances := []models.Advance{}
	if err := cursor.All(ctx, &advances); err != nil {
		return nil, apperrors.Internal("failed to decode advances", err)
	}
	return advances, nil
}

// MonthlyAdvanceSummary groups one employee's advances by exact date within
// the month, summing amounts, sorted by date ascending.
func (r *Repository) MonthlyAdvanceSummary(ctx context.Context, employeeID primitive.ObjectID, month string) ([]models.AdvanceDay, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"employeeId": employeeID,
			"date":       primitive.Regex{Pattern: "^" + month},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":         "$date",
			"totalAmount": bson.M{"$sum": "$amount"},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := r.db.Collection(collAdvances).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, apperrors.Internal("failed to aggregate advances", err)
	}

	days := []models.AdvanceDay{}
	if err := cursor.All(ctx, &days); err != nil {
		return nil, apperrors.Internal("failed to decode advance summary", err)
	}
	return days, nil
}

// CreateAdvance inserts an advance for (employeeId, date) in one atomic
// upsert; a matched document means the advance already exists and the call
// fails with a conflict instead of touching it.
func (r *Repository) CreateAdvance(ctx context.Context, employeeID primitive.ObjectID, date string, amount float64) error {
	filter := bson.M{"employeeId": employeeID, "date": date}
	update := bson.M{"$setOnInsert": bson.M{
		"amount":    amount,
		"createdAt": time.Now(),
	}}

	res, err := r.db.Collection(collAdvances).UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return apperrors.Internal("failed to create advance", err)
	}
	if res.MatchedCount > 0 {
		return apperrors.Conflict("Advance already exists for this date")
	}
	return nil
}

// UpdateAdvance sets the amount for an existing (employeeId, date) advance.
func (r *Repository) UpdateAdvance(ctx context.Context, employeeID primitive.ObjectID, date string, amount float64) error {
	filter := bson.M{"employeeId": employeeID, "date": date}
	update := bson.M{"$set": bson.M{
		"amount":    amount,
		"updatedAt": time.Now(),
	}}

	res, err := r.db.Collection(collAdvances).UpdateOne(ctx, filter, update)
	if err != nil {
		return apperrors.Internal("failed to update advance", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.NotFound("Advance")
	}
	return nil
}

// SumAdvancesForMonth totals one employee's advances within a month.
func (r *Repository) SumAdvancesForMonth(ctx context.Context, employeeID primitive.ObjectID, month string) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"employeeId": employeeID,
			"date":       primitive.Regex{Pattern: "^" + month},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":         nil,
			"totalAmount": bson.M{"$sum": "$amount"},
		}}},
	}

	total, _, err := r.sumAdvances(ctx, pipeline)
	return total, err
}

// SumAdvancesForDate totals all advances disbursed on one date.
func (r *Repository) SumAdvancesForDate(ctx context.Context, date string) (float64, int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"date": date}}},
		{{Key: "$group", Value: bson.M{
			"_id":         nil,
			"totalAmount": bson.M{"$sum": "$amount"},
			"count":       bson.M{"$sum": 1},
		}}},
	}

	return r.sumAdvances(ctx, pipeline)
}

func (r *Repository) sumAdvances(ctx context.Context, pipeline mongo.Pipeline) (float64, int64, error) {
	cursor, err := r.db.Collection(collAdvances).Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, apperrors.Internal("failed to sum advances", err)
	}

	var rows []struct {
		TotalAmount float64 `bson:"totalAmount"`
		Count       int64   `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, 0, apperrors.Internal("failed to decode advance totals", err)
	}
	if len(rows) == 0 {
		return 0, 0, nil
	}
	return rows[0].TotalAmount, rows[0].Count, nil
}
