package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/tanvirdev/officebook/internal/domain/apperrors"
	"github.com/tanvirdev/officebook/internal/domain/models"
)

// InsertEmployee stores a new employee and returns it with its assigned id.
func (r *Repository) InsertEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	res, err := r.db.Collection(collEmployees).InsertOne(ctx, employee)
	if err != nil {
		return models.Employee{}, apperrors.Internal("failed to create employee", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		employee.ID = oid
	}
	return employee, nil
}

// ListEmployees returns all employees, newest first.
func (r *Repository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.db.Collection(collEmployees).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, apperrors.Internal("failed to list employees", err)
	}

	employees := []models.Employee{}
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, apperrors.Internal("failed to decode employees", err)
	}
	return employees, nil
}

// FindEmployee loads one employee by id.
func (r *Repository) FindEmployee(ctx context.Context, id primitive.ObjectID) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.Collection(collEmployees).FindOne(ctx, bson.M{"_id": id}).Decode(&employee)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFound("Employee")
	}
	if err != nil {
		return nil, apperrors.Internal("failed to load employee", err)
	}
	return &employee, nil
}

// UpdateEmployee applies the non-nil fields of update to one employee.
func (r *Repository) UpdateEmployee(ctx context.Context, id primitive.ObjectID, update models.EmployeeUpdate) error {
	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.DailySalary != nil {
		set["dailySalary"] = *update.DailySalary
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}

	res, err := r.db.Collection(collEmployees).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return apperrors.Internal("failed to update employee", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.NotFound("Employee")
	}
	return nil
}

// DeleteEmployeeCascade removes the employee together with every attendance
// and advance document referencing it, inside one transaction.
func (r *Repository) DeleteEmployeeCascade(ctx context.Context, id primitive.ObjectID) error {
	err := r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		res, err := r.db.Collection(collEmployees).DeleteOne(sc, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if res.DeletedCount == 0 {
			return apperrors.NotFound("Employee")
		}

		if _, err := r.db.Collection(collAttendance).DeleteMany(sc, bson.M{"employeeId": id}); err != nil {
			return err
		}
		if _, err := r.db.Collection(collAdvances).DeleteMany(sc, bson.M{"employeeId": id}); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return apperrors.Internal("failed to delete employee", err)
	}

	r.logger.Info("employee deleted with attendance and advances", zap.String("employeeId", id.Hex()))
	return nil
}
