package services

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"alfredoptarigan/resume-reviewer/internal/models"
)

type feedbackSection int

const (
	sectionNone feedbackSection = iota
	sectionRating
	sectionSummary
	sectionImprovements
)

// headerMarkers are markdown decorations models put in front of headers,
// e.g. "**Rating:** 8/10" or "## Summary". A "* " list item is never a
// header, even when its text starts with a header word.
const headerMarkers = "#* \t"

// bulletChars are stripped from the front of an improvement line.
const bulletChars = "-•*0123456789.) \t"

// ParseFeedback splits a completion into rating, summary and improvements.
//
// Lines are scanned once with a small state machine. A line whose lowercased
// text starts with "rating", "summary" or "improvements" switches the current
// section:
//
//   - rating: the header line itself is the rating; later lines are ignored.
//   - summary: the summary restarts; each following non-header line is
//     appended, space separated.
//   - improvements: each following line that starts with '-', '•', '*' or a
//     digit is kept, minus its bullet or numbering.
//
// Blank lines never change anything. Missing parts fall back to the
// placeholder values in models, and RawFeedback is always the input.
func ParseFeedback(raw string) *models.FeedbackResult {
	var (
		section      = sectionNone
		rating       string
		summary      []string
		improvements []string
	)

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		header := ""
		if !isStarBullet(line) {
			header = strings.ToLower(strings.TrimLeft(line, headerMarkers))
		}
		switch {
		case strings.HasPrefix(header, "rating"):
			section = sectionRating
			rating = line
			continue
		case strings.HasPrefix(header, "summary"):
			section = sectionSummary
			summary = summary[:0]
			continue
		case strings.HasPrefix(header, "improvements"):
			section = sectionImprovements
			continue
		}

		switch section {
		case sectionSummary:
			summary = append(summary, line)
		case sectionImprovements:
			if !isBulletLine(line) {
				continue
			}
			if item := strings.TrimSpace(strings.TrimLeft(line, bulletChars)); item != "" {
				improvements = append(improvements, item)
			}
		}
	}

	result := &models.FeedbackResult{
		Rating:       rating,
		Summary:      strings.Join(summary, " "),
		Improvements: improvements,
		RawFeedback:  raw,
	}

	if result.Rating == "" {
		result.Rating = models.DefaultRating
	}
	if result.Summary == "" {
		result.Summary = models.DefaultSummary
	}
	if len(result.Improvements) == 0 {
		result.Improvements = []string{models.DefaultImprovements}
	}

	return result
}

// isStarBullet reports whether line is a "* item" markdown list entry
// rather than "**bold**" emphasis.
func isStarBullet(line string) bool {
	rest, ok := strings.CutPrefix(line, "*")
	if !ok {
		return false
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return unicode.IsSpace(r)
}

func isBulletLine(line string) bool {
	r, _ := utf8.DecodeRuneInString(line)
	return r == '-' || r == '•' || r == '*' || unicode.IsDigit(r)
}
