package services

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

type PDFParserService interface {
	ExtractText(filepath string) (string, error)
	ExtractTextWithMetaData(filepath string) (*PDFContent, error)
}

type PDFContent struct {
	Text      string
	PageCount int
	FilePath  string
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

// ExtractText returns the text of every page in document order, trimmed.
// Scanned or image-only documents have no text layer and yield "".
func (p *pdfParserService) ExtractText(filePath string) (string, error) {
	content, err := p.ExtractTextWithMetaData(filePath)
	if err != nil {
		return "", err
	}

	return content.Text, nil
}

func (p *pdfParserService) ExtractTextWithMetaData(filePath string) (content *PDFContent, err error) {
	// The pdf package panics on broken object tables outside GetPlainText
	defer func() {
		if rec := recover(); rec != nil {
			content = nil
			err = fmt.Errorf("malformed PDF: %v", rec)
		}
	}()

	// Check if file exists
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", filePath)
	}

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Undecodable page, keep the rest of the document
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	return &PDFContent{
		Text:      strings.TrimSpace(textBuilder.String()),
		PageCount: totalPage,
		FilePath:  filePath,
	}, nil
}
