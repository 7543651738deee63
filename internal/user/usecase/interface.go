// Package usecase implements the user business logic and orchestrates user domain operations.
package usecase

import (
	"context"
	"time"

	"github.com/allisson/users/internal/user/domain"
)

// CreateUserInput contains the input data for user creation.
// The input is assumed to be structurally valid; normalization (lowercasing,
// trimming) and credential hashing happen inside the use case.
type CreateUserInput struct {
	Email    string
	Username string
	Password string
	Phone    string
	Cell     string
	DOB      *time.Time
	PPS      string
	Gender   string
	Name     *domain.Name
	Picture  *domain.Picture
	Location *domain.Location
}

// UpdateUserInput contains the input data for a partial user update.
// A nil field means "leave unchanged"; the update never resets absent fields.
type UpdateUserInput struct {
	Email    *string
	Username *string
	Phone    *string
	Cell     *string
	DOB      *time.Time
	PPS      *string
	Gender   *string
	Name     *domain.Name
	Picture  *domain.Picture
	Location *domain.Location
}

// UseCase defines the interface for user business logic operations.
type UseCase interface {
	// List returns one page of users and the next page window when more exist.
	List(ctx context.Context, offset, limit int) (*domain.PageResult, error)
	// Get returns the user with the given id or domain.ErrUserNotFound.
	Get(ctx context.Context, id int64) (*domain.User, error)
	// Create registers a new user; the store assigns the id.
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	// Update applies only the supplied fields to an existing user.
	Update(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error)
	// Delete removes a user, reporting whether a record existed.
	Delete(ctx context.Context, id int64) (bool, error)
	// VerifyLogin authenticates a user by email or username plus password.
	VerifyLogin(ctx context.Context, login, password string) (*domain.User, error)
}

// Repository defines the interface for user persistence operations.
type Repository interface {
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) (bool, error)
}
