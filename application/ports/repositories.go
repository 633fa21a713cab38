package ports

import (
	"context"

	"user-service/domain/core/entities"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence
// This is a port in hexagonal architecture - the domain doesn't know about the implementation
type UserRepository interface {
	// FindByID retrieves a user by its ID. A missing user is reported as found == false
	// with a nil error.
	FindByID(ctx context.Context, id uuid.UUID) (user *entities.User, found bool, err error)

	// Save inserts or replaces the user unconditionally
	Save(ctx context.Context, user *entities.User) error

	// Update writes the user's attributes over the stored item and returns the stored state
	Update(ctx context.Context, user *entities.User) (*entities.User, error)

	// Delete removes the user. Deleting a missing user is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
