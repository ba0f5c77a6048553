package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleGuide = "guide"
	RoleAdmin = "admin"
)

type User struct {
	ID          uuid.UUID `db:"id" json:"id"`
	FullName    string    `db:"fullname" json:"fullname"`
	Email       string    `db:"email" json:"email"`
	Password    string    `db:"password" json:"password,omitempty"`
	Role        string    `db:"role" json:"role"`
	Bio         string    `db:"bio" json:"bio"`
	PhoneNumber string    `db:"phone_number" json:"phone_number"`
	PhotoURL    string    `db:"photo_url" json:"photo_url"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// SafeRole maps a missing profile role onto the lowest tier.
func (u *User) SafeRole() string {
	if u.Role == "" {
		return RoleUser
	}
	return u.Role
}
