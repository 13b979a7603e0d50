// Package extraction converts raw résumé files (PDF, Word, plain text) into
// normalized text.
package extraction

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Format identifies a supported document format.
type Format int

const (
	FormatUnknown Format = iota
	FormatPDF
	FormatWord
	FormatText
)

// DetectFormat maps a filename extension to its Format, case-insensitively.
func DetectFormat(filename string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch ext {
	case "pdf":
		return FormatPDF, nil
	case "doc", "docx":
		return FormatWord, nil
	case "txt":
		return FormatText, nil
	default:
		return FormatUnknown, &UnsupportedFormatError{Filename: filename, Ext: ext}
	}
}

// Extractor converts document bytes into trimmed text.
type Extractor struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{logger: logger}
}

// Extract returns the text content of a document, dispatching on the
// filename extension. Whitespace-only output counts as a failure no matter
// which path produced it.
func (x *Extractor) Extract(content []byte, filename string) (string, error) {
	if len(content) == 0 {
		return "", &EmptyInputError{Filename: filename}
	}

	format, err := DetectFormat(filename)
	if err != nil {
		return "", err
	}

	var text string
	switch format {
	case FormatPDF:
		text, err = x.extractPDF(content)
	case FormatWord:
		text, err = x.extractWord(content)
	case FormatText:
		text, err = x.extractText(content)
	default:
		return "", &UnsupportedFormatError{Filename: filename}
	}
	if err != nil {
		return "", &ExtractionError{Filename: filename, Reason: "extraction failed", Cause: err}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", &ExtractionError{Filename: filename, Reason: "no text content extracted"}
	}

	x.logger.Debug("extracted document text",
		zap.String("file", filename),
		zap.Int("bytes", len(content)),
		zap.Int("chars", len(text)))

	return text, nil
}
