// Package user holds the account CRUD use cases.
package user

import (
	"context"
	"fmt"

	"github.com/diegosantosouza/projeto-teste-truther/internal/application/services"
	"github.com/diegosantosouza/projeto-teste-truther/internal/domain/entities"
	"github.com/diegosantosouza/projeto-teste-truther/internal/domain/interfaces"
	"github.com/diegosantosouza/projeto-teste-truther/internal/shared/apperrors"
)

// CreateInput carries a validated registration request.
type CreateInput struct {
	Name     string
	Email    string
	Password string
	Roles    []entities.Role
}

type CreateUseCase struct {
	users     interfaces.UserRepository
	passwords *services.PasswordService
}

func NewCreateUseCase(users interfaces.UserRepository, passwords *services.PasswordService) *CreateUseCase {
	return &CreateUseCase{users: users, passwords: passwords}
}

// Execute registers a new user. The email must be unused; the password is
// stored only as a bcrypt hash.
func (uc *CreateUseCase) Execute(ctx context.Context, input CreateInput) (*entities.User, error) {
	existing, err := uc.users.FindOne(ctx, map[string]any{"email": input.Email})
	if err != nil {
		return nil, fmt.Errorf("failed to check email availability: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewEmailInUse()
	}

	hashed, err := uc.passwords.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	roles := input.Roles
	if len(roles) == 0 {
		roles = []entities.Role{entities.RoleClient}
	}

	created, err := uc.users.Create(ctx, entities.UserInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Roles:    roles,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}
