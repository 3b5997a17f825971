package user

import (
	"context"
	"fmt"

	"github.com/diegosantosouza/projeto-teste-truther/internal/domain/interfaces"
	"github.com/diegosantosouza/projeto-teste-truther/internal/shared/apperrors"
)

type DeleteUseCase struct {
	users interfaces.UserRepository
}

func NewDeleteUseCase(users interfaces.UserRepository) *DeleteUseCase {
	return &DeleteUseCase{users: users}
}

func (uc *DeleteUseCase) Execute(ctx context.Context, id string) error {
	deleted, err := uc.users.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	if !deleted {
		return apperrors.NewNotFound("user not found")
	}
	return nil
}
