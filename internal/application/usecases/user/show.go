package user

import (
	"context"
	"fmt"

	"github.com/diegosantosouza/projeto-teste-truther/internal/domain/entities"
	"github.com/diegosantosouza/projeto-teste-truther/internal/domain/interfaces"
	"github.com/diegosantosouza/projeto-teste-truther/internal/shared/apperrors"
)

type ShowUseCase struct {
	users interfaces.UserRepository
}

func NewShowUseCase(users interfaces.UserRepository) *ShowUseCase {
	return &ShowUseCase{users: users}
}

func (uc *ShowUseCase) Execute(ctx context.Context, id string) (*entities.User, error) {
	user, err := uc.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read user %s: %w", id, err)
	}
	if user == nil {
		return nil, apperrors.NewNotFound("user not found")
	}
	return user, nil
}
