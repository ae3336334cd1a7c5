package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alfredoptarigan/resume-reviewer/internal/models"
)

func TestParseFeedback(t *testing.T) {
	testCases := []struct {
		name             string
		raw              string
		wantRating       string
		wantSummary      string
		wantImprovements []string
	}{
		{
			name: "well formed response",
			raw: "Rating: 8/10\n" +
				"Summary:\n" +
				"Strong candidate with clear experience.\n" +
				"Improvements:\n" +
				"- Add metrics\n" +
				"2. Include a portfolio link\n" +
				"• Tailor keywords\n",
			wantRating:       "Rating: 8/10",
			wantSummary:      "Strong candidate with clear experience.",
			wantImprovements: []string{"Add metrics", "Include a portfolio link", "Tailor keywords"},
		},
		{
			name:             "no recognised headers",
			raw:              "Just some unrelated text.",
			wantRating:       models.DefaultRating,
			wantSummary:      models.DefaultSummary,
			wantImprovements: []string{models.DefaultImprovements},
		},
		{
			name:             "empty input",
			raw:              "",
			wantRating:       models.DefaultRating,
			wantSummary:      models.DefaultSummary,
			wantImprovements: []string{models.DefaultImprovements},
		},
		{
			name: "improvements header without bullets",
			raw: "Rating: 5/10\n" +
				"Summary:\n" +
				"Average resume.\n" +
				"Improvements:\n" +
				"Nothing stands out as needing change.\n",
			wantRating:       "Rating: 5/10",
			wantSummary:      "Average resume.",
			wantImprovements: []string{models.DefaultImprovements},
		},
		{
			name: "summary lines are joined and blank lines skipped",
			raw: "Summary:\n" +
				"Backend engineer with five years of Go.\n" +
				"\n" +
				"   \n" +
				"Led two platform migrations.\n",
			wantRating:       models.DefaultRating,
			wantSummary:      "Backend engineer with five years of Go. Led two platform migrations.",
			wantImprovements: []string{models.DefaultImprovements},
		},
		{
			name: "repeated summary header restarts the summary",
			raw: "Summary:\n" +
				"First draft.\n" +
				"Summary:\n" +
				"Final answer.\n",
			wantRating:       models.DefaultRating,
			wantSummary:      "Final answer.",
			wantImprovements: []string{models.DefaultImprovements},
		},
		{
			name: "headers are case insensitive",
			raw: "RATING: 9/10\n" +
				"SUMMARY\n" +
				"Excellent.\n" +
				"IMPROVEMENTS\n" +
				"1. Shorten the objective\n",
			wantRating:       "RATING: 9/10",
			wantSummary:      "Excellent.",
			wantImprovements: []string{"Shorten the objective"},
		},
		{
			name: "markdown decorated headers and star bullets",
			raw: "**Rating:** 7/10\n" +
				"## Summary\n" +
				"Solid junior profile.\n" +
				"**Improvements:**\n" +
				"* Add project links\n" +
				"1) Quantify impact\n",
			wantRating:       "**Rating:** 7/10",
			wantSummary:      "Solid junior profile.",
			wantImprovements: []string{"Add project links", "Quantify impact"},
		},
		{
			name: "star bullets starting with a header word stay improvements",
			raw: "Rating: 6/10\n" +
				"Summary:\n" +
				"Decent.\n" +
				"Improvements:\n" +
				"* Summary: add a professional summary at the top\n" +
				"* Quantify achievements\n" +
				"* Rating of skills: drop the star ratings\n",
			wantRating:  "Rating: 6/10",
			wantSummary: "Decent.",
			wantImprovements: []string{
				"Summary: add a professional summary at the top",
				"Quantify achievements",
				"Rating of skills: drop the star ratings",
			},
		},
		{
			name: "windows line endings",
			raw: "Rating: 6/10\r\n" +
				"Summary:\r\n" +
				"Needs polish.\r\n" +
				"Improvements:\r\n" +
				"- Fix typos\r\n",
			wantRating:       "Rating: 6/10",
			wantSummary:      "Needs polish.",
			wantImprovements: []string{"Fix typos"},
		},
		{
			name: "lines after the rating are ignored",
			raw: "Rating: 4/10\n" +
				"The layout is hard to follow.\n" +
				"Improvements:\n" +
				"Here is what to change:\n" +
				"- Use one column\n" +
				"-\n",
			wantRating:       "Rating: 4/10",
			wantSummary:      models.DefaultSummary,
			wantImprovements: []string{"Use one column"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := ParseFeedback(tc.raw)
			assert.Equal(t, tc.wantRating, result.Rating)
			assert.Equal(t, tc.wantSummary, result.Summary)
			assert.Equal(t, tc.wantImprovements, result.Improvements)
			assert.Equal(t, tc.raw, result.RawFeedback)
		})
	}
}

func TestParseFeedback_Deterministic(t *testing.T) {
	raw := "Rating: 8/10\nSummary:\nGood.\nImprovements:\n- One\n- Two\n- Three\n"
	assert.Equal(t, ParseFeedback(raw), ParseFeedback(raw))
}
