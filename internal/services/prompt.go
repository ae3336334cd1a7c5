package services

import (
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildResumeReviewPrompt creates the HR review prompt for a resume.
// The resume text is inserted as-is.
func (pb *PromptBuilder) BuildResumeReviewPrompt(resumeText, jobTitle string) string {
	return fmt.Sprintf(`You are an experienced HR recruiter reviewing a candidate's resume%s.

CANDIDATE RESUME:
%s

Your task is to critique this resume.

1. Rate the resume on a scale of 1 to 10.
2. Write a short summary (2-3 sentences) of the candidate's profile and the resume's overall quality.
3. Suggest exactly 3 specific improvements that would make the resume more appealing.

Respond using exactly these section headers, each on its own line:

Rating: <score>/10
Summary:
<short summary>
Improvements:
- <improvement 1>
- <improvement 2>
- <improvement 3>

Do not add any other sections. Be concise and specific to this resume.`,
		roleClause(jobTitle), resumeText)
}

func roleClause(jobTitle string) string {
	jobTitle = strings.TrimSpace(jobTitle)
	if jobTitle == "" {
		return ""
	}
	return fmt.Sprintf(" for a %s role", jobTitle)
}
