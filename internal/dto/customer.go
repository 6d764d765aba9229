package dto

import (
	"time"

	"github.com/Additional-Code/storehouse/pkg/optional"
)

// CreateCustomerRequest is the payload accepted when registering a customer.
type CreateCustomerRequest struct {
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Address   string `json:"address" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
}

// UpdateCustomerRequest is a partial profile update. Username and password are
// not accepted here.
type UpdateCustomerRequest struct {
	Email     optional.Value[string] `json:"email"`
	FirstName optional.Value[string] `json:"first_name"`
	LastName  optional.Value[string] `json:"last_name"`
	Address   optional.Value[string] `json:"address"`
	Phone     optional.Value[string] `json:"phone"`
}

// CustomerResponse represents a customer as exposed via transport layers. The
// password digest is never serialized.
type CustomerResponse struct {
	ID         int64      `json:"id"`
	Username   string     `json:"username"`
	Email      string     `json:"email"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Address    string     `json:"address"`
	Phone      string     `json:"phone"`
	IsActive   bool       `json:"is_active"`
	DateJoined time.Time  `json:"date_joined"`
	LastLogin  *time.Time `json:"last_login"`
}
