package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer is a buyer in the registry. Names are unique case-insensitively;
// rate ledger entries reference customers by name, not id.
type Customer struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// CreateCustomerRequest is the payload for adding a customer.
type CreateCustomerRequest struct {
	Name string `json:"name"`
}
