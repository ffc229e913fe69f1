package ingest

import (
	"errors"
	"fmt"
)

// ErrEmptyContent reports resume input with no usable text.
var ErrEmptyContent = errors.New("resume content is empty or too short")

// Parser turns uploaded resume input into clean plain text ready for profile
// extraction. Binary formats would implement this behind the same interface.
type Parser interface {
	Parse(filename, content string) (string, error)
}

// PlainTextParser handles already-extracted resume text.
type PlainTextParser struct{}

func NewPlainTextParser() *PlainTextParser {
	return &PlainTextParser{}
}

func (p *PlainTextParser) Parse(filename, content string) (string, error) {
	if !ValidateResumeContent(content) {
		if filename != "" {
			return "", fmt.Errorf("parsing %s: %w", filename, ErrEmptyContent)
		}
		return "", ErrEmptyContent
	}
	return NormalizeText(content), nil
}
