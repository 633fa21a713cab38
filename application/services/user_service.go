package services

import (
	"context"
	"errors"
	"fmt"

	"user-service/application/dto"
	"user-service/application/ports"
	"user-service/domain/core/entities"
	pkgerrors "user-service/pkg/errors"

	"github.com/aws/smithy-go"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Titles and message formats of the errors raised by UserService.
const (
	NotFoundTitle   = "Não encontrado"
	NotCreatedTitle = "Erro ao criar usuário"
	NotPatchedTitle = "Erro ao atualizar usuário"
	NotDeletedTitle = "Erro ao excluir usuário"

	notFoundFormat   = "Usuário não encontrado pelo uuid: %s"
	notCreatedFormat = "Não foi possível criar usuário com username: %s"
	notPatchedFormat = "Não foi possível atualizar usuário com uuid: %s"
	notDeletedFormat = "Não foi possível remover usuário pelo uuid: %s"
)

// UserService orchestrates user use cases on top of the repository.
// Every operation runs synchronously on the caller's goroutine.
type UserService struct {
	repo   ports.UserRepository
	logger *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(repo ports.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		repo:   repo,
		logger: logger,
	}
}

// FindByID returns the stored user. Store failures are returned untouched.
func (s *UserService) FindByID(ctx context.Context, id uuid.UUID) (*dto.UserDTO, error) {
	user, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.FromEntity(user), nil
}

// Create assigns a new ID to the request and persists it. The returned view is
// built from the record as written, without reading it back.
func (s *UserService) Create(ctx context.Context, req dto.CreateUserDTO) (*dto.UserDTO, error) {
	user := req.ToEntity(uuid.New())

	if err := s.repo.Save(ctx, user); err != nil {
		s.logFailure("Failed to create user", user.ID, err, zap.String("username", user.Username))
		return nil, pkgerrors.NewNotCreatedError(NotCreatedTitle, fmt.Sprintf(notCreatedFormat, user.Username)).WithCause(err)
	}

	s.logger.Info("User created", zap.String("uuid", user.ID.String()))
	return dto.FromEntity(user), nil
}

// Patch overwrites the fields present in req on an existing user and returns the
// record the store holds after the update.
func (s *UserService) Patch(ctx context.Context, id uuid.UUID, req dto.UpdateUserDTO) (*dto.UserDTO, error) {
	user, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.ApplyPatch(req.Patch())

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		s.logFailure("Failed to patch user", id, err)
		return nil, pkgerrors.NewNotPatchedError(NotPatchedTitle, fmt.Sprintf(notPatchedFormat, id)).WithCause(err)
	}

	s.logger.Info("User patched", zap.String("uuid", id.String()))
	return dto.FromEntity(updated), nil
}

// Delete removes the user. Deleting an unknown ID succeeds.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logFailure("Failed to delete user", id, err)
		return pkgerrors.NewNotDeletedError(NotDeletedTitle, fmt.Sprintf(notDeletedFormat, id)).WithCause(err)
	}

	s.logger.Info("User deleted", zap.String("uuid", id.String()))
	return nil
}

func (s *UserService) findUser(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	user, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logFailure("Failed to fetch user", id, err)
		return nil, err
	}
	if !found {
		return nil, pkgerrors.NewNotFoundError(NotFoundTitle, fmt.Sprintf(notFoundFormat, id))
	}
	return user, nil
}

func (s *UserService) logFailure(msg string, id uuid.UUID, err error, extra ...zap.Field) {
	fields := append([]zap.Field{
		zap.String("uuid", id.String()),
		zap.Error(err),
	}, extra...)

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		fields = append(fields, zap.String("errorCode", apiErr.ErrorCode()))
	}
	s.logger.Error(msg, fields...)
}
