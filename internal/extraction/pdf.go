package extraction

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	"github.com/quizforge/backend/pkg/logger"
)

// extractPDF pulls the plain text of every page. Pages that fail to decode
// are skipped so one broken page does not lose the document.
func extractPDF(data []byte) (string, int, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("failed to open PDF: %w", err)
	}

	pages := reader.NumPage()
	var b strings.Builder
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			logger.Warn("Failed to extract PDF page",
				zap.Int("page", i),
				zap.Error(err),
			)
			continue
		}

		b.WriteString(content)
		b.WriteString("\n")
	}

	return b.String(), pages, nil
}
