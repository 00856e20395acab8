package services

import (
	"context"
	"time"

	"taskeasy/internal/adapters/persistence/models"
	"taskeasy/internal/adapters/persistence/repositories"
)

// TodoService handles todo business logic
type TodoService struct {
	todos repositories.TodoRepository
}

// NewTodoService creates a new todo service
func NewTodoService(todos repositories.TodoRepository) *TodoService {
	return &TodoService{todos: todos}
}

// CreateTodoInput for creating a todo
type CreateTodoInput struct {
	Username    string
	Description string
	TargetDate  time.Time
	IsDone      bool
}

// UpdateTodoInput for updating a todo
type UpdateTodoInput struct {
	Description string
	TargetDate  time.Time
	IsDone      bool
}

// List lists all todos for a user
func (s *TodoService) List(ctx context.Context, username string) ([]*models.Todo, error) {
	return s.todos.ListByUsername(ctx, username)
}

// Get gets a todo by ID
func (s *TodoService) Get(ctx context.Context, id uint) (*models.Todo, error) {
	return s.todos.GetByID(ctx, id)
}

// Create creates a new todo
func (s *TodoService) Create(ctx context.Context, input CreateTodoInput) (*models.Todo, error) {
	todo := &models.Todo{
		Username:    input.Username,
		Description: input.Description,
		TargetDate:  input.TargetDate,
		IsDone:      input.IsDone,
	}
	if err := s.todos.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// Update updates an existing todo
func (s *TodoService) Update(ctx context.Context, id uint, input UpdateTodoInput) (*models.Todo, error) {
	todo, err := s.todos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	todo.Description = input.Description
	todo.TargetDate = input.TargetDate
	todo.IsDone = input.IsDone

	if err := s.todos.Update(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// Delete removes a todo by ID
func (s *TodoService) Delete(ctx context.Context, id uint) error {
	return s.todos.Delete(ctx, id)
}
