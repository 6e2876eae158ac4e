package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"seekr/backend/internal/logger"
	"seekr/backend/internal/models"
)

type Handlers struct {
	Resume   *ResumeHandler
	Settings *SettingsHandler
	Chat     *ChatHandler
}

func RegisterRoutes(app *fiber.App, h Handlers) {
	app.Get("/", HandleRoot)
	app.Get("/health", HandleHealth)

	api := app.Group("/api")

	resumes := api.Group("/resumes")
	resumes.Post("/", h.Resume.HandleCreate)
	resumes.Get("/", h.Resume.HandleList)
	resumes.Get("/:id", h.Resume.HandleGet)
	resumes.Put("/:id", h.Resume.HandleUpdate)
	resumes.Delete("/:id", h.Resume.HandleDelete)

	settings := api.Group("/settings")
	settings.Post("/", h.Settings.HandleCreate)
	settings.Get("/", h.Settings.HandleList)
	settings.Get("/name/:name", h.Settings.HandleGetByName)
	settings.Get("/:id", h.Settings.HandleGet)
	settings.Put("/:id", h.Settings.HandleUpdate)
	settings.Delete("/:id", h.Settings.HandleDelete)

	api.Post("/chat", h.Chat.HandleChat)
	api.Post("/chat/upload", h.Chat.HandleUpload)
}

func HandleRoot(c *fiber.Ctx) error {
	return c.JSON(models.HealthCheckResponse{
		Status:  "ok",
		Message: "Seekr API is running",
	})
}

func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(models.HealthCheckResponse{
		Status:  "healthy",
		Message: "Service is operational",
	})
}

// ErrorHandler renders errors that escape the handlers, such as unknown
// routes and recovered panics.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	if code >= fiber.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Path()).Msg("Unhandled request error")
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
