package handlers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"taskeasy/internal/adapters/persistence/repositories"
	"taskeasy/internal/core/services"
	"taskeasy/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// TodoHandler handles todo CRUD endpoints
type TodoHandler struct {
	todoService *services.TodoService
}

// NewTodoHandler creates a new todo handler
func NewTodoHandler(todoService *services.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// TodoRequest represents a todo create/update body
type TodoRequest struct {
	Description string    `json:"description"`
	TargetDate  time.Time `json:"target_date"`
	IsDone      bool      `json:"is_done"`
}

// List lists all todos for a user
// @Summary List todos
// @Tags Todos
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/users/{username}/todos [get]
func (h *TodoHandler) List(c *fiber.Ctx) error {
	todos, err := h.todoService.List(c.Context(), c.Params("username"))
	if err != nil {
		return response.InternalServerError(c, "Failed to list todos")
	}
	return response.Success(c, "", todos)
}

// Get gets a single todo
// @Summary Get todo
// @Tags Todos
// @Produce json
// @Param username path string true "Username"
// @Param id path int true "Todo ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/users/{username}/todos/{id} [get]
func (h *TodoHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid todo ID")
	}

	todo, err := h.todoService.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrTodoNotFound) {
			return response.NotFound(c, "Todo not found")
		}
		return response.InternalServerError(c, "Failed to get todo")
	}
	return response.Success(c, "", todo)
}

// Create creates a new todo for a user
// @Summary Create todo
// @Tags Todos
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param body body TodoRequest true "Todo data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/users/{username}/todos [post]
func (h *TodoHandler) Create(c *fiber.Ctx) error {
	var req TodoRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if strings.TrimSpace(req.Description) == "" {
		return response.BadRequest(c, "Description is required")
	}

	todo, err := h.todoService.Create(c.Context(), services.CreateTodoInput{
		Username:    c.Params("username"),
		Description: strings.TrimSpace(req.Description),
		TargetDate:  req.TargetDate,
		IsDone:      req.IsDone,
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to create todo")
	}
	return response.Created(c, "Todo created", todo)
}

// Update updates an existing todo
// @Summary Update todo
// @Tags Todos
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param id path int true "Todo ID"
// @Param body body TodoRequest true "Todo data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/users/{username}/todos/{id} [put]
func (h *TodoHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid todo ID")
	}

	var req TodoRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if strings.TrimSpace(req.Description) == "" {
		return response.BadRequest(c, "Description is required")
	}

	todo, err := h.todoService.Update(c.Context(), id, services.UpdateTodoInput{
		Description: strings.TrimSpace(req.Description),
		TargetDate:  req.TargetDate,
		IsDone:      req.IsDone,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrTodoNotFound) {
			return response.NotFound(c, "Todo not found")
		}
		return response.InternalServerError(c, "Failed to update todo")
	}
	return response.Success(c, "Todo updated", todo)
}

// Delete removes a todo
// @Summary Delete todo
// @Tags Todos
// @Param username path string true "Username"
// @Param id path int true "Todo ID"
// @Success 204
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/v1/users/{username}/todos/{id} [delete]
func (h *TodoHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid todo ID")
	}

	if err := h.todoService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrTodoNotFound) {
			return response.NotFound(c, "Todo not found")
		}
		return response.InternalServerError(c, "Failed to delete todo")
	}
	return response.NoContent(c)
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
