package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlanDay is one entry of a package's multi-day itinerary.
type PlanDay struct {
	Day        int    `bson:"day" json:"day" validate:"required,min=1"`
	Title      string `bson:"title" json:"title" validate:"required"`
	Activities string `bson:"activities" json:"activities"`
}

// TourPackage is a purchasable multi-day tour offering with a fixed price.
type TourPackage struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name" validate:"required,min=3"`
	Description string             `bson:"description" json:"description" validate:"required"`
	Price       float64            `bson:"price" json:"price" validate:"required,gt=0"`
	Location    string             `bson:"location" json:"location" validate:"required"`
	Images      []string           `bson:"images" json:"images"`
	Plan        []PlanDay          `bson:"plan" json:"plan" validate:"dive"`
	CreatedBy   string             `bson:"created_by" json:"created_by"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
