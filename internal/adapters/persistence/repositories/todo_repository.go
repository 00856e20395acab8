package repositories

import (
	"context"
	"errors"
	"time"

	"taskeasy/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// gormTodoRepository implements TodoRepository backed by the todos table
type gormTodoRepository struct {
	db *gorm.DB
}

// NewGormTodoRepository creates a database-backed todo repository
func NewGormTodoRepository(db *gorm.DB) TodoRepository {
	return &gormTodoRepository{db: db}
}

// ListByUsername lists all todos belonging to a user
func (r *gormTodoRepository) ListByUsername(ctx context.Context, username string) ([]*models.Todo, error) {
	var todos []*models.Todo
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Order("target_date ASC").
		Find(&todos).Error
	if err != nil {
		return nil, err
	}
	return todos, nil
}

// GetByID gets a todo by ID
func (r *gormTodoRepository) GetByID(ctx context.Context, id uint) (*models.Todo, error) {
	var todo models.Todo
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&todo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, err
	}
	return &todo, nil
}

// Create creates a new todo
func (r *gormTodoRepository) Create(ctx context.Context, todo *models.Todo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

// Update updates an existing todo
func (r *gormTodoRepository) Update(ctx context.Context, todo *models.Todo) error {
	result := r.db.WithContext(ctx).Model(&models.Todo{}).
		Where("id = ?", todo.ID).
		Updates(map[string]interface{}{
			"username":    todo.Username,
			"description": todo.Description,
			"target_date": todo.TargetDate,
			"is_done":     todo.IsDone,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTodoNotFound
	}
	return nil
}

// Delete removes a todo by ID
func (r *gormTodoRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Todo{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTodoNotFound
	}
	return nil
}

// ListOverdue lists todos whose target date has passed and are not done
func (r *gormTodoRepository) ListOverdue(ctx context.Context, before time.Time) ([]*models.Todo, error) {
	var todos []*models.Todo
	err := r.db.WithContext(ctx).
		Where("is_done = ? AND target_date < ?", false, before).
		Order("target_date ASC").
		Find(&todos).Error
	if err != nil {
		return nil, err
	}
	return todos, nil
}
