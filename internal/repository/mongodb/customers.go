package mongodb

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/tanvirdev/officebook/internal/domain/apperrors"
	"github.com/tanvirdev/officebook/internal/domain/models"
)

// CreateCustomer inserts a customer unless a case-insensitive name match
// already exists.
func (r *Repository) CreateCustomer(ctx context.Context, name string) (models.Customer, error) {
	nameFilter := bson.M{"name": primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(name) + "$",
		Options: "i",
	}}

	err := r.db.Collection(collCustomers).FindOne(ctx, nameFilter).Err()
	if err == nil {
		return models.Customer{}, apperrors.Conflict("Customer already exists")
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.Customer{}, apperrors.Internal("failed to check customer", err)
	}

	customer := models.Customer{Name: name, CreatedAt: time.Now()}
	res, err := r.db.Collection(collCustomers).InsertOne(ctx, customer)
	if err != nil {
		return models.Customer{}, apperrors.Internal("failed to create customer", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		customer.ID = oid
	}
	return customer, nil
}

// ListCustomers returns all customers, newest first.
func (r *Repository) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.db.Collection(collCustomers).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, apperrors.Internal("failed to list customers", err)
	}

	customers := []models.Customer{}
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, apperrors.Internal("failed to decode customers", err)
	}
	return customers, nil
}

// DeleteCustomerCascade removes the customer and pulls every rate-list entry
// carrying its name from all selling-rate dates, inside one transaction.
func (r *Repository) DeleteCustomerCascade(ctx context.Context, id primitive.ObjectID) error {
	err := r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		var customer models.Customer
		err := r.db.Collection(collCustomers).FindOne(sc, bson.M{"_id": id}).Decode(&customer)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NotFound("Customer")
		}
		if err != nil {
			return err
		}

		if _, err := r.db.Collection(collCustomers).DeleteOne(sc, bson.M{"_id": id}); err != nil {
			return err
		}

		_, err = r.db.Collection(collSellingRate).UpdateMany(sc,
			bson.M{},
			bson.M{"$pull": bson.M{"rates": bson.M{"customerName": customer.Name}}},
		)
		return err
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return apperrors.Internal("failed to delete customer", err)
	}

	r.logger.Info("customer deleted with ledger entries", zap.String("customerId", id.Hex()))
	return nil
}
