package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"todobot/internal/db/task"
)

// New builds the REST app sharing the task store with the chat bot.
func New(repo task.Repository) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New())

	h := NewHandlers(repo)

	app.Get("/", h.root)
	app.Post("/tasks/", h.createTask)
	app.Get("/tasks/:userID", h.listTasks)
	app.Put("/tasks/:taskID/complete", h.completeTask)
	app.Delete("/tasks/:taskID", h.deleteTask)

	return app
}
