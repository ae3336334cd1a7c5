package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strings"

	"alfredoptarigan/resume-reviewer/internal/config"
	"alfredoptarigan/resume-reviewer/internal/services"
)

// Reviews local PDF resumes without going through the HTTP server.
//
//	go run ./scripts/review_resume.go ./resumes/jane.pdf [job title]
func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <resume.pdf> [job title]", os.Args[0])
	}
	resumePath := os.Args[1]
	jobTitle := strings.Join(os.Args[2:], " ")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Temperature)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	pdfParser := services.NewPDFParserService()
	reviewer := services.NewReviewerService(
		geminiService,
		pdfParser,
		services.NewStorageService(cfg.Storage.UploadPath),
		cfg.Gemini.MaxAttempts,
		cfg.Gemini.Timeout,
	)

	log.Printf("📄 Processing: %s", resumePath)

	content, err := pdfParser.ExtractTextWithMetaData(resumePath)
	if err != nil {
		log.Fatalf("❌ Failed to extract text: %v", err)
	}
	log.Printf("✅ Extracted %d pages, %d characters", content.PageCount, len(content.Text))

	result, err := reviewer.ReviewFile(context.Background(), resumePath, jobTitle)
	if err != nil {
		log.Fatalf("❌ Review failed (%s): %v", services.KindOf(err), err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		log.Fatalf("❌ Failed to write result: %v", err)
	}

	log.Println(strings.Repeat("=", 60))
	log.Printf("⭐ %s", result.Rating)
	log.Println(strings.Repeat("=", 60))
}
