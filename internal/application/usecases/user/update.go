package user

import (
	"context"
	"fmt"

	"github.com/diegosantosouza/projeto-teste-truther/internal/application/services"
	"github.com/diegosantosouza/projeto-teste-truther/internal/domain/entities"
	"github.com/diegosantosouza/projeto-teste-truther/internal/domain/interfaces"
	"github.com/diegosantosouza/projeto-teste-truther/internal/shared/apperrors"
)

// UpdateInput carries the target id plus the fields to change; nil fields
// are left untouched.
type UpdateInput struct {
	ID       string
	Name     *string
	Email    *string
	Password *string
	Roles    []entities.Role
}

type UpdateUseCase struct {
	users     interfaces.UserRepository
	passwords *services.PasswordService
}

func NewUpdateUseCase(users interfaces.UserRepository, passwords *services.PasswordService) *UpdateUseCase {
	return &UpdateUseCase{users: users, passwords: passwords}
}

// Execute applies a partial update. A changed password is re-hashed before
// it reaches the store.
func (uc *UpdateUseCase) Execute(ctx context.Context, input UpdateInput) (*entities.User, error) {
	existing, err := uc.users.FindByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read user %s: %w", input.ID, err)
	}
	if existing == nil {
		return nil, apperrors.NewNotFound("user not found")
	}

	partial := map[string]any{}
	if input.Name != nil {
		partial["name"] = *input.Name
	}
	if input.Email != nil {
		partial["email"] = *input.Email
	}
	if input.Password != nil {
		hashed, err := uc.passwords.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		partial["password"] = hashed
	}
	if len(input.Roles) > 0 {
		partial["roles"] = input.Roles
	}

	updated, err := uc.users.Update(ctx, input.ID, partial)
	if err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", input.ID, err)
	}
	if updated == nil {
		return nil, apperrors.NewServerError("failed to update user")
	}
	return updated, nil
}
