package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"taskeasy/internal/adapters/persistence/models"
)

// memoryTodoRepository implements TodoRepository over an in-memory map.
// Unlike the user store the todo set mutates at runtime, so access is
// guarded by a mutex.
type memoryTodoRepository struct {
	mu     sync.RWMutex
	todos  map[uint]*models.Todo
	nextID uint
}

// NewMemoryTodoRepository creates an in-memory todo repository with an
// optional seed set
func NewMemoryTodoRepository(seed []*models.Todo) TodoRepository {
	r := &memoryTodoRepository{
		todos:  make(map[uint]*models.Todo),
		nextID: 1,
	}
	for _, t := range seed {
		copied := *t
		copied.ID = r.nextID
		r.todos[copied.ID] = &copied
		r.nextID++
	}
	return r
}

func (r *memoryTodoRepository) ListByUsername(_ context.Context, username string) ([]*models.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var todos []*models.Todo
	for _, t := range r.todos {
		if t.Username == username {
			copied := *t
			todos = append(todos, &copied)
		}
	}
	sort.Slice(todos, func(i, j int) bool {
		return todos[i].TargetDate.Before(todos[j].TargetDate)
	})
	return todos, nil
}

func (r *memoryTodoRepository) GetByID(_ context.Context, id uint) (*models.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.todos[id]
	if !ok {
		return nil, ErrTodoNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *memoryTodoRepository) Create(_ context.Context, todo *models.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	todo.ID = r.nextID
	r.nextID++
	now := time.Now()
	todo.CreatedAt = now
	todo.UpdatedAt = now

	copied := *todo
	r.todos[copied.ID] = &copied
	return nil
}

func (r *memoryTodoRepository) Update(_ context.Context, todo *models.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.todos[todo.ID]
	if !ok {
		return ErrTodoNotFound
	}
	todo.CreatedAt = existing.CreatedAt
	todo.UpdatedAt = time.Now()

	copied := *todo
	r.todos[copied.ID] = &copied
	return nil
}

func (r *memoryTodoRepository) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.todos[id]; !ok {
		return ErrTodoNotFound
	}
	delete(r.todos, id)
	return nil
}

func (r *memoryTodoRepository) ListOverdue(_ context.Context, before time.Time) ([]*models.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var todos []*models.Todo
	for _, t := range r.todos {
		if !t.IsDone && t.TargetDate.Before(before) {
			copied := *t
			todos = append(todos, &copied)
		}
	}
	sort.Slice(todos, func(i, j int) bool {
		return todos[i].TargetDate.Before(todos[j].TargetDate)
	})
	return todos, nil
}
