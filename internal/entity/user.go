package entity

import (
	"github.com/google/uuid"
)

// db model
type User struct {
	Id           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    string    `json:"createdAt" db:"created_at"`
}

// service + repo input model
type CreateUserInput struct {
	Name         string // given
	Email        string // given
	PasswordHash string // set by the auth service, never the plaintext
	Role         string // given, BUYER or SELLER
	// Id UUID sets automatically
	// CreatedAt sets automatically
}

// controller model, safe to return to clients
type UserOutputModel struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// identity attached to projects and bids
type UserRef struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoginOutputModel struct {
	Token string          `json:"token"`
	User  UserOutputModel `json:"user"`
}
