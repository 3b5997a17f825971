package user

import (
	"context"

	"github.com/diegosantosouza/projeto-teste-truther/internal/domain/entities"
)

// userRepoStub implements interfaces.UserRepository with overridable
// behavior per test. Methods a test does not stub must not be reached.
type userRepoStub struct {
	createFn   func(ctx context.Context, data entities.UserInput) (*entities.User, error)
	findOneFn  func(ctx context.Context, filter map[string]any) (*entities.User, error)
	findByIDFn func(ctx context.Context, id string) (*entities.User, error)
	findFn     func(ctx context.Context, filter map[string]any) ([]*entities.User, error)
	updateFn   func(ctx context.Context, id string, partial map[string]any) (*entities.User, error)
	deleteFn   func(ctx context.Context, id string) (bool, error)
	upsertFn   func(ctx context.Context, filter map[string]any, data entities.UserInput) (*entities.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, data entities.UserInput) (*entities.User, error) {
	if s.createFn == nil {
		panic("unexpected Create call")
	}
	return s.createFn(ctx, data)
}

func (s *userRepoStub) FindOne(ctx context.Context, filter map[string]any) (*entities.User, error) {
	if s.findOneFn == nil {
		panic("unexpected FindOne call")
	}
	return s.findOneFn(ctx, filter)
}

func (s *userRepoStub) FindByID(ctx context.Context, id string) (*entities.User, error) {
	if s.findByIDFn == nil {
		panic("unexpected FindByID call")
	}
	return s.findByIDFn(ctx, id)
}

func (s *userRepoStub) Find(ctx context.Context, filter map[string]any) ([]*entities.User, error) {
	if s.findFn == nil {
		panic("unexpected Find call")
	}
	return s.findFn(ctx, filter)
}

func (s *userRepoStub) Update(ctx context.Context, id string, partial map[string]any) (*entities.User, error) {
	if s.updateFn == nil {
		panic("unexpected Update call")
	}
	return s.updateFn(ctx, id, partial)
}

func (s *userRepoStub) Delete(ctx context.Context, id string) (bool, error) {
	if s.deleteFn == nil {
		panic("unexpected Delete call")
	}
	return s.deleteFn(ctx, id)
}

func (s *userRepoStub) Upsert(ctx context.Context, filter map[string]any, data entities.UserInput) (*entities.User, error) {
	if s.upsertFn == nil {
		panic("unexpected Upsert call")
	}
	return s.upsertFn(ctx, filter, data)
}
