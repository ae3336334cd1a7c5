package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-reviewer/internal/models"
)

func SetupRoutes(app *fiber.App, reviewHandler *ReviewHandler, modelName string) {
	app.Get("/", HandleUploadForm)
	app.Post("/analyze-resume/", reviewHandler.HandleAnalyzeResume)

	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(models.HealthResponse{
			Status: "healthy",
			Model:  modelName,
			Time:   time.Now(),
		})
	})
}

// ErrorHandler renders errors that escape a handler, such as 404s or an
// oversized body, in the same JSON shape as pipeline errors.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return c.Status(code).JSON(models.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
