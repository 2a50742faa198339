package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleAdmin = "admin"
	RoleGuest = "guest"

	StatusActive    = "active"
	StatusSuspended = "suspended"
	StatusRemoved   = "removed"
)

// User holds the bcrypt password hash; the json:"-" tag keeps it out of
// every response body.
type User struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email    string             `json:"email" bson:"email"`
	Password string             `json:"-" bson:"password"`
	Role     string             `json:"role" bson:"role"`
	Status   string             `json:"status" bson:"status"`
	Info     UserInfo           `json:"info" bson:"info"`
	Contact  UserContact        `json:"contact" bson:"contact"`
}

type UserInfo struct {
	FirstName string `json:"first_name" bson:"first_name" validate:"required"`
	LastName  string `json:"last_name" bson:"last_name" validate:"required"`
}

type UserContact struct {
	Phone   string `json:"phone" bson:"phone" validate:"omitempty,e164"`
	Address string `json:"address" bson:"address"`
}

type CreateUserInput struct {
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=8"`
	Role     string      `json:"role" validate:"required,oneof=admin guest"`
	Info     UserInfo    `json:"info" validate:"required"`
	Contact  UserContact `json:"contact"`
}

type UpdateUserInput struct {
	Role    *string      `json:"role" validate:"omitempty,oneof=admin guest"`
	Status  *string      `json:"status" validate:"omitempty,oneof=active suspended removed"`
	Info    *UserInfo    `json:"info"`
	Contact *UserContact `json:"contact"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

type UserStats struct {
	Total     int64 `json:"total"`
	Active    int64 `json:"active"`
	Suspended int64 `json:"suspended"`
	Removed   int64 `json:"removed"`
	Admins    int64 `json:"admin"`
	Guests    int64 `json:"guests"`
}
