package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"user-service/application/dto"
	pkgerrors "user-service/pkg/errors"
	"user-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InvalidUUIDMessage is reported when the path id is not a UUID.
const InvalidUUIDMessage = "'uuid' should be a valid UUID"

// UserService is the orchestration the handler delegates to
type UserService interface {
	FindByID(ctx context.Context, id uuid.UUID) (*dto.UserDTO, error)
	Create(ctx context.Context, req dto.CreateUserDTO) (*dto.UserDTO, error)
	Patch(ctx context.Context, id uuid.UUID, req dto.UpdateUserDTO) (*dto.UserDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	service      UserService
	errorHandler *pkgerrors.ErrorHandler
	logger       *zap.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(service UserService, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		service:      service,
		errorHandler: errorHandler,
		logger:       logger,
	}
}

// Routes mounts the user endpoints on r
func (h *UserHandler) Routes(r chi.Router) {
	r.Post("/", h.CreateUser)
	r.Get("/{uuid}", h.GetUser)
	r.Patch("/{uuid}", h.PatchUser)
	r.Delete("/{uuid}", h.DeleteUser)
}

// GetUser handles GET /users/{uuid}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	user, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, user)
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserDTO
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, user)
}

// PatchUser handles PATCH /users/{uuid}
func (h *UserHandler) PatchUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateUserDTO
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.service.Patch(r.Context(), id, req)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusOK, user)
}

// DeleteUser handles DELETE /users/{uuid}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "uuid"))
	if err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError(InvalidUUIDMessage))
		return uuid.Nil, false
	}
	return id, true
}

// decode reads the JSON body into dst and validates it
func (h *UserHandler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError(err.Error()))
		return false
	}

	if err := utils.ValidateStruct(dst); err != nil {
		h.errorHandler.Handle(w, r, err)
		return false
	}
	return true
}

func (h *UserHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}
