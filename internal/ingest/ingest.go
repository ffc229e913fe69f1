package ingest

import (
	"regexp"
	"strings"

	"resumi/internal/logging"
)

// resumeIndicators are words that usually appear somewhere in a resume.
// Their absence is logged but not fatal; extraction still gets a chance.
var resumeIndicators = []string{
	"experience", "education", "skills", "work", "employment",
	"university", "college", "degree", "job", "position",
	"project", "summary", "contact", "email", "phone",
}

var collapseRegex = regexp.MustCompile(`[ \t]+`)

const minResumeLength = 10

// ValidateResumeContent checks that the text plausibly carries resume
// content. Only empty or near-empty text fails validation.
func ValidateResumeContent(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < minResumeLength {
		logging.GetGlobalLogger().Warn("Resume validation failed", map[string]interface{}{
			"length": len(trimmed),
		})
		return false
	}

	textLower := strings.ToLower(text)
	found := 0
	for _, indicator := range resumeIndicators {
		if strings.Contains(textLower, indicator) {
			found++
		}
	}

	if found == 0 {
		logging.GetGlobalLogger().Warn("No resume keywords found, extracting anyway")
	}

	return true
}

// NormalizeText collapses runs of spaces and tabs while keeping line breaks,
// which the title and experience regexes depend on.
func NormalizeText(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(collapseRegex.ReplaceAllString(line, " "))
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
