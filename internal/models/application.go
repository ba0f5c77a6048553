package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GuideApplication is a traveler's request to become a tour guide. Accepting
// one promotes the applicant's role and removes the application; rejecting
// just removes it.
type GuideApplication struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ApplicantName  string             `bson:"applicant_name" json:"applicant_name" validate:"required"`
	ApplicantEmail string             `bson:"applicant_email" json:"applicant_email" validate:"required,email"`
	Title          string             `bson:"title" json:"title" validate:"required"`
	Reason         string             `bson:"reason" json:"reason" validate:"required"`
	CVLink         string             `bson:"cv_link" json:"cv_link" validate:"omitempty,url"`
	AppliedAt      time.Time          `bson:"applied_at" json:"applied_at"`
}
