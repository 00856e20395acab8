package repositories

import (
	"context"
	"errors"
	"time"

	"taskeasy/internal/adapters/persistence/models"
)

// Lookup errors shared by all backends
var (
	ErrUserNotFound = errors.New("user not found")
	ErrTodoNotFound = errors.New("todo not found")
)

// UserStore resolves identities by username. It is read-only: the identity
// table is populated once at process start and never mutated afterward, so
// implementations need no locking for concurrent lookups.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// TodoRepository defines todo persistence operations
type TodoRepository interface {
	ListByUsername(ctx context.Context, username string) ([]*models.Todo, error)
	GetByID(ctx context.Context, id uint) (*models.Todo, error)
	Create(ctx context.Context, todo *models.Todo) error
	Update(ctx context.Context, todo *models.Todo) error
	Delete(ctx context.Context, id uint) error
	ListOverdue(ctx context.Context, before time.Time) ([]*models.Todo, error)
}
