package extraction

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// extractPDF reads text page by page. Pages that yield nothing are skipped;
// the document only fails when no page yields text.
func (x *Extractor) extractPDF(content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("reading pdf: %w", err)
	}

	total := reader.NumPage()
	if total == 0 {
		return "", fmt.Errorf("pdf has no pages")
	}

	var sb strings.Builder
	for i := 1; i <= total; i++ {
		pageText, err := x.pdfPageText(reader, i)
		if err != nil {
			x.logger.Warn("skipping pdf page", zap.Int("page", i), zap.Error(err))
			continue
		}
		if strings.TrimSpace(pageText) == "" {
			x.logger.Warn("no text extracted from pdf page", zap.Int("page", i))
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	if strings.TrimSpace(sb.String()) == "" {
		return "", fmt.Errorf("no text content found in pdf")
	}
	return sb.String(), nil
}

// pdfPageText isolates one page read. The pdf library panics on some
// malformed content streams; a panic here downgrades to a skipped page.
func (x *Extractor) pdfPageText(reader *pdf.Reader, num int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed page content: %v", r)
		}
	}()

	page := reader.Page(num)
	if page.V.IsNull() {
		return "", fmt.Errorf("page is unreadable")
	}
	return page.GetPlainText(nil)
}
