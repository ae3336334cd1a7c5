package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"alfredoptarigan/resume-reviewer/internal/models"
	"alfredoptarigan/resume-reviewer/internal/services"
)

type ReviewHandler struct {
	reviewerService services.ReviewerService
	maxFileSize     int64
}

func NewReviewHandler(
	reviewerService services.ReviewerService,
	maxFileSize int64,
) *ReviewHandler {
	return &ReviewHandler{
		reviewerService: reviewerService,
		maxFileSize:     maxFileSize,
	}
}

// HandleAnalyzeResume handles POST /analyze-resume/
func (h *ReviewHandler) HandleAnalyzeResume(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return RespondError(c, services.InvalidInput("a PDF file is required in the 'file' form field"))
	}

	if file.Size > h.maxFileSize {
		return RespondError(c, services.InvalidInput(fmt.Sprintf("file too large. Max size: %d bytes", h.maxFileSize)))
	}

	log.Infof("📄 Reviewing %q (%d bytes)", file.Filename, file.Size)

	result, err := h.reviewerService.ReviewUpload(c.UserContext(), file, c.FormValue("job_title"))
	if err != nil {
		return RespondError(c, err)
	}

	return c.JSON(result)
}

// RespondError writes a tagged pipeline error as JSON. Only the error's
// client message is exposed; the full chain goes to the log.
func RespondError(c *fiber.Ctx, err error) error {
	code := StatusForKind(services.KindOf(err))
	message := "internal server error"

	var reviewErr *services.ReviewError
	if errors.As(err, &reviewErr) {
		message = reviewErr.Message
	}

	if code >= fiber.StatusInternalServerError {
		log.Errorf("❌ %s %s failed: %v", c.Method(), c.Path(), err)
	} else {
		log.Warnf("⚠️  %s %s rejected: %v", c.Method(), c.Path(), err)
	}

	return c.Status(code).JSON(models.ErrorResponse{
		Error: message,
		Kind:  string(services.KindOf(err)),
		Code:  code,
	})
}

func StatusForKind(kind services.ErrorKind) int {
	switch kind {
	case services.KindInvalidInput:
		return fiber.StatusBadRequest
	case services.KindUnprocessable:
		return fiber.StatusUnprocessableEntity
	case services.KindUpstream:
		return fiber.StatusBadGateway
	case services.KindUpstreamTimeout:
		return fiber.StatusGatewayTimeout
	default:
		return fiber.StatusInternalServerError
	}
}
