package collector

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	entityRegex     = regexp.MustCompile(`&[a-z]+;`)
)

// noiseTags are elements stripped before text extraction
var noiseTags = []string{
	"script", "style", "noscript", "iframe", "object", "embed",
	"form", "input", "button", "select", "textarea",
	"nav", "header", "footer", "aside",
}

// CleanDescription strips HTML markup from a job description and collapses
// whitespace, leaving plain text for skill extraction. Input that is already
// plain text passes through with only whitespace normalization.
func CleanDescription(html string) string {
	if html == "" {
		return ""
	}

	if !strings.Contains(html, "<") {
		return strings.TrimSpace(whitespaceRegex.ReplaceAllString(html, " "))
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		// Fall back to the raw text rather than dropping the description
		return strings.TrimSpace(whitespaceRegex.ReplaceAllString(html, " "))
	}

	for _, tag := range noiseTags {
		doc.Find(tag).Remove()
	}

	text := doc.Find("body").Text()
	if text == "" {
		text = doc.Text()
	}

	text = entityRegex.ReplaceAllString(text, " ")
	text = whitespaceRegex.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
