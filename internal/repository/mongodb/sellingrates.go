package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tanvirdev/officebook/internal/domain/apperrors"
	"github.com/tanvirdev/officebook/internal/domain/models"
)

// AppendRates upserts the date document and appends all given entries to its
// rate list in order. Entries are not deduplicated.
func (r *Repository) AppendRates(ctx context.Context, date, createdAt string, rates []models.RateEntry) error {
	update := bson.M{
		"$set":  bson.M{"date": date, "createdAt": createdAt},
		"$push": bson.M{"rates": bson.M{"$each": rates}},
	}

	_, err := r.db.Collection(collSellingRate).UpdateOne(ctx, bson.M{"date": date}, update, options.Update().SetUpsert(true))
	if err != nil {
		return apperrors.Internal("failed to append rates", err)
	}
	return nil
}

// RatesForDate returns the rate list for a date, empty when no document exists.
func (r *Repository) RatesForDate(ctx context.Context, date string) ([]models.RateEntry, error) {
	var doc models.SellingRate
	err := r.db.Collection(collSellingRate).FindOne(ctx, bson.M{"date": date}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return []models.RateEntry{}, nil
	}
	if err != nil {
		return nil, apperrors.Internal("failed to load rates", err)
	}
	if doc.Rates == nil {
		return []models.RateEntry{}, nil
	}
	return doc.Rates, nil
}

// PatchRate updates the first rate entry matching the customer name within
// the date document. Only entirely absent documents or entries show up as a
// zero matched count; that is not an error. Note the asymmetry with
// PullCustomerRates: the positional operator touches the first match only.
func (r *Repository) PatchRate(ctx context.Context, req models.PatchRateRequest) (int64, int64, error) {
	set := bson.M{}
	if req.ProposalPrice != nil {
		set["rates.$.proposalPrice"] = *req.ProposalPrice
	}
	if req.ActualSellingPrice != nil {
		set["rates.$.actualSellingPrice"] = *req.ActualSellingPrice
	}
	if req.Piece != nil {
		set["rates.$.piece"] = req.Piece.Clamp()
	}

	filter := bson.M{"date": req.Date, "rates.customerName": req.CustomerName}
	res, err := r.db.Collection(collSellingRate).UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return 0, 0, apperrors.Internal("failed to patch rate", err)
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

// PullCustomerRates removes every rate entry matching the customer name from
// the date document.
func (r *Repository) PullCustomerRates(ctx context.Context, date, customerName string) (int64, error) {
	res, err := r.db.Collection(collSellingRate).UpdateOne(ctx,
		bson.M{"date": date},
		bson.M{"$pull": bson.M{"rates": bson.M{"customerName": customerName}}},
	)
	if err != nil {
		return 0, apperrors.Internal("failed to remove customer rates", err)
	}
	return res.ModifiedCount, nil
}

// DeleteDate removes the entire per-date ledger document.
func (r *Repository) DeleteDate(ctx context.Context, date string) (int64, error) {
	res, err := r.db.Collection(collSellingRate).DeleteOne(ctx, bson.M{"date": date})
	if err != nil {
		return 0, apperrors.Internal("failed to delete date", err)
	}
	return res.DeletedCount, nil
}
