package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/diegosantosouza/projeto-teste-truther/internal/application/dto"
	"github.com/diegosantosouza/projeto-teste-truther/internal/application/usecases/user"
	"github.com/diegosantosouza/projeto-teste-truther/internal/domain/entities"
)

// UserCreator registers a new account.
type UserCreator interface {
	Execute(ctx context.Context, input user.CreateInput) (*entities.User, error)
}

// UserShower reads one account by id.
type UserShower interface {
	Execute(ctx context.Context, id string) (*entities.User, error)
}

// UserLister lists accounts matching optional filters.
type UserLister interface {
	Execute(ctx context.Context, input user.ListInput) ([]*entities.User, error)
}

// UserUpdater applies a partial account update.
type UserUpdater interface {
	Execute(ctx context.Context, input user.UpdateInput) (*entities.User, error)
}

// UserDeleter removes an account by id.
type UserDeleter interface {
	Execute(ctx context.Context, id string) error
}

// UserHandler handles the account CRUD endpoints.
type UserHandler struct {
	create UserCreator
	show   UserShower
	list   UserLister
	update UserUpdater
	delete UserDeleter
}

func NewUserHandler(create UserCreator, show UserShower, list UserLister, update UserUpdater, delete UserDeleter) *UserHandler {
	return &UserHandler{
		create: create,
		show:   show,
		list:   list,
		update: update,
		delete: delete,
	}
}

// Create handles POST /user.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dto.UserCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(ctx, w, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeBadRequest(ctx, w, err.Error())
		return
	}

	created, err := h.create.Execute(ctx, user.CreateInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Roles:    req.Roles,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, created)
}

// Show handles GET /user/{id}.
func (h *UserHandler) Show(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	found, err := h.show.Execute(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, found)
}

// List handles GET /user with optional name, email and role filters.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	users, err := h.list.Execute(ctx, user.ListInput{
		Name:  query.Get("name"),
		Email: query.Get("email"),
		Role:  entities.Role(query.Get("role")),
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if users == nil {
		users = []*entities.User{}
	}

	writeJSON(ctx, w, http.StatusOK, users)
}

// Update handles PATCH /user/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dto.UserUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(ctx, w, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeBadRequest(ctx, w, err.Error())
		return
	}

	updated, err := h.update.Execute(ctx, user.UpdateInput{
		ID:       mux.Vars(r)["id"],
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Roles:    req.Roles,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, updated)
}

// Delete handles DELETE /user/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.delete.Execute(ctx, mux.Vars(r)["id"]); err != nil {
		writeError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
