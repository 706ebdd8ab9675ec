package domain

import (
	"errors"
	"time"
)

const (
	RoleCustomer     = "CUSTOMER"
	RoleHotelManager = "HOTEL_MANAGER"
	RoleAdmin        = "ADMIN"
)

const (
	StatusActive    = "ACTIVE"
	StatusSuspended = "SUSPENDED"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")
var ErrAccountSuspended = errors.New("account suspended")

// User models an account held by the credential store.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone,omitempty"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Active reports whether the account may authenticate.
func (u *User) Active() bool {
	return u.Status == StatusActive
}

// ValidRole reports whether r is one of the known account roles.
func ValidRole(r string) bool {
	return r == RoleCustomer || r == RoleHotelManager || r == RoleAdmin
}
