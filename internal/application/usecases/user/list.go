package user

import (
	"context"
	"fmt"

	"github.com/diegosantosouza/projeto-teste-truther/internal/domain/entities"
	"github.com/diegosantosouza/projeto-teste-truther/internal/domain/interfaces"
)

// ListInput carries optional filters; empty fields are not filtered on.
type ListInput struct {
	Name  string
	Email string
	Role  entities.Role
}

type ListUseCase struct {
	users interfaces.UserRepository
}

func NewListUseCase(users interfaces.UserRepository) *ListUseCase {
	return &ListUseCase{users: users}
}

// Execute lists users. Name and email filter by case-insensitive substring
// match, role by membership.
func (uc *ListUseCase) Execute(ctx context.Context, input ListInput) ([]*entities.User, error) {
	criteria := map[string]any{}
	if input.Name != "" {
		criteria["name"] = map[string]any{"$regex": input.Name, "$options": "i"}
	}
	if input.Email != "" {
		criteria["email"] = map[string]any{"$regex": input.Email, "$options": "i"}
	}
	if input.Role != "" {
		criteria["roles"] = map[string]any{"$in": []entities.Role{input.Role}}
	}

	users, err := uc.users.Find(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
