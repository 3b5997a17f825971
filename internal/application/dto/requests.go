// Package dto defines the request and response shapes of the HTTP API.
package dto

import (
	"github.com/go-playground/validator/v10"

	"github.com/diegosantosouza/projeto-teste-truther/internal/domain/entities"
)

var validate = validator.New()

// UserCreateRequest is the payload for registering a user.
type UserCreateRequest struct {
	Name     string          `json:"name" validate:"required,min=3"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=6"`
	Roles    []entities.Role `json:"roles,omitempty" validate:"omitempty,dive,oneof=admin client"`
}

// Validate checks the payload against its constraints.
func (r *UserCreateRequest) Validate() error {
	return validate.Struct(r)
}

// UserUpdateRequest is the payload for a partial user update; absent fields
// are left unchanged.
type UserUpdateRequest struct {
	Name     *string         `json:"name,omitempty" validate:"omitempty,min=3"`
	Email    *string         `json:"email,omitempty" validate:"omitempty,email"`
	Password *string         `json:"password,omitempty" validate:"omitempty,min=6"`
	Roles    []entities.Role `json:"roles,omitempty" validate:"omitempty,dive,oneof=admin client"`
}

// Validate checks the payload against its constraints.
func (r *UserUpdateRequest) Validate() error {
	return validate.Struct(r)
}
