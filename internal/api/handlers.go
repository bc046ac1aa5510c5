package api

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"todobot/internal/db/task"
)

type Handlers struct {
	repo task.Repository
}

func NewHandlers(repo task.Repository) *Handlers {
	return &Handlers{repo: repo}
}

func (h *Handlers) root(c *fiber.Ctx) error {
	return c.JSON(MessageResponse{Message: "Telegram Todo Bot API is running"})
}

// createTask handles POST /tasks/.
func (h *Handlers) createTask(c *fiber.Ctx) error {
	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := task.ValidateDescription(req.Task); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
	}

	t, err := h.repo.Create(c.UserContext(), req.UserID, req.Task)
	if err != nil {
		log.Printf("[Handlers.createTask] userID=%d err=%v", req.UserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "create_failed",
			Message: "Failed to create task",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(toResponse(t))
}

// listTasks handles GET /tasks/:userID.
func (h *Handlers) listTasks(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Params("userID"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: "User id must be an integer",
		})
	}

	tasks, err := h.repo.ListByOwner(c.UserContext(), userID)
	if err != nil {
		log.Printf("[Handlers.listTasks] userID=%d err=%v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "list_failed",
			Message: "Failed to list tasks",
		})
	}

	resp := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, toResponse(t))
	}
	return c.JSON(resp)
}

// completeTask handles PUT /tasks/:taskID/complete. Unlike the chat
// front end, no owner is required here.
func (h *Handlers) completeTask(c *fiber.Ctx) error {
	taskID, err := strconv.ParseInt(c.Params("taskID"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: "Task id must be an integer",
		})
	}

	t, err := h.repo.CompleteByID(c.UserContext(), taskID)
	if errors.Is(err, task.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: "Task not found",
		})
	}
	if err != nil {
		log.Printf("[Handlers.completeTask] taskID=%d err=%v", taskID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "complete_failed",
			Message: "Failed to complete task",
		})
	}

	return c.JSON(toResponse(t))
}

// deleteTask handles DELETE /tasks/:taskID.
func (h *Handlers) deleteTask(c *fiber.Ctx) error {
	taskID, err := strconv.ParseInt(c.Params("taskID"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "validation_error",
			Message: "Task id must be an integer",
		})
	}

	_, err = h.repo.DeleteByID(c.UserContext(), taskID)
	if errors.Is(err, task.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: "Task not found",
		})
	}
	if err != nil {
		log.Printf("[Handlers.deleteTask] taskID=%d err=%v", taskID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "delete_failed",
			Message: "Failed to delete task",
		})
	}

	return c.JSON(MessageResponse{Message: "Task deleted successfully"})
}

func toResponse(t task.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		UserID:      t.OwnerID,
		Task:        t.Description,
		IsCompleted: t.Completed,
	}
}
