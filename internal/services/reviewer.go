package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"alfredoptarigan/resume-reviewer/internal/models"
)

type ReviewerService interface {
	ReviewUpload(ctx context.Context, file *multipart.FileHeader, jobTitle string) (*models.FeedbackResult, error)
	ReviewFile(ctx context.Context, filePath, jobTitle string) (*models.FeedbackResult, error)
}

type reviewerService struct {
	geminiService  GeminiService
	pdfParser      PDFParserService
	storageService StorageService
	promptBuilder  *PromptBuilder
	maxAttempts    int
	timeout        time.Duration
}

func NewReviewerService(
	geminiService GeminiService,
	pdfParser PDFParserService,
	storageService StorageService,
	maxAttempts int,
	timeout time.Duration,
) ReviewerService {
	return &reviewerService{
		geminiService:  geminiService,
		pdfParser:      pdfParser,
		storageService: storageService,
		promptBuilder:  NewPromptBuilder(),
		maxAttempts:    maxAttempts,
		timeout:        timeout,
	}
}

// ReviewUpload stores the upload in a private temp file, extracts its text,
// removes the file and reviews the text. The temp file is removed on every
// path, including failures.
func (r *reviewerService) ReviewUpload(ctx context.Context, file *multipart.FileHeader, jobTitle string) (*models.FeedbackResult, error) {
	filePath, err := r.storageService.SaveTemp(file)
	if err != nil {
		if errors.Is(err, ErrInvalidExtension) {
			return nil, newReviewError(KindInvalidInput, "only PDF resumes are supported", err)
		}
		return nil, newReviewError(KindInternal, "failed to store the uploaded file", err)
	}

	resumeText, err := r.extractTemp(filePath)
	if err != nil {
		return nil, err
	}

	return r.review(ctx, resumeText, jobTitle)
}

// extractTemp extracts a temp upload and removes it before returning,
// so the file never outlives extraction.
func (r *reviewerService) extractTemp(filePath string) (string, error) {
	defer r.removeTemp(filePath)
	return r.extract(filePath)
}

// ReviewFile reviews a PDF that already lives on disk. The file is left in place.
func (r *reviewerService) ReviewFile(ctx context.Context, filePath, jobTitle string) (*models.FeedbackResult, error) {
	resumeText, err := r.extract(filePath)
	if err != nil {
		return nil, err
	}

	return r.review(ctx, resumeText, jobTitle)
}

func (r *reviewerService) extract(filePath string) (string, error) {
	resumeText, err := r.pdfParser.ExtractText(filePath)
	if err != nil {
		return "", newReviewError(KindUnprocessable, "the uploaded file is not a readable PDF", err)
	}

	if resumeText == "" {
		log.Warnf("⚠️  No text layer found in %s, sending an empty resume", filePath)
	}

	return resumeText, nil
}

func (r *reviewerService) review(ctx context.Context, resumeText, jobTitle string) (*models.FeedbackResult, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	prompt := r.promptBuilder.BuildResumeReviewPrompt(resumeText, jobTitle)
	log.Infof("📝 Review prompt length: %d characters", len(prompt))

	response, err := r.geminiService.GenerateTextWithRetry(ctx, prompt, r.maxAttempts)
	if err != nil {
		return nil, upstreamError(fmt.Errorf("failed to generate review: %w", err))
	}

	log.Infof("✅ Review response received: %d characters", len(response))

	return ParseFeedback(response), nil
}

func (r *reviewerService) removeTemp(filePath string) {
	if err := r.storageService.Remove(filePath); err != nil {
		log.Errorf("❌ Failed to remove temp file %s: %v", filePath, err)
	}
}
