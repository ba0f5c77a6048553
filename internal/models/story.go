package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Comment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AuthorName  string             `bson:"author_name" json:"author_name"`
	AuthorEmail string             `bson:"author_email" json:"author_email" validate:"required,email"`
	Text        string             `bson:"text" json:"text" validate:"required"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// Story is user-generated travel narrative content with a small gallery.
type Story struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title" validate:"required,min=3"`
	Content     string             `bson:"content" json:"content" validate:"required"`
	AuthorName  string             `bson:"author_name" json:"author_name"`
	AuthorEmail string             `bson:"author_email" json:"author_email" validate:"required,email"`
	Images      []string           `bson:"images" json:"images"`
	Comments    []Comment          `bson:"comments" json:"comments"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
