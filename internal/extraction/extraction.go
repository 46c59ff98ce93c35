package extraction

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/quizforge/backend/internal/metrics"
	"github.com/quizforge/backend/pkg/logger"
	"github.com/quizforge/backend/pkg/utils"
)

const (
	FormatTXT  = "txt"
	FormatMD   = "md"
	FormatHTML = "html"
	FormatRTF  = "rtf"
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
)

const (
	defaultMaxFileSize = 10 << 20
	summaryLimit       = 500
)

var (
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrFileTooLarge      = errors.New("file too large")
)

// Metadata describes one extracted document.
type Metadata struct {
	Format         string `json:"format" yaml:"format"`
	CharCount      int    `json:"char_count" yaml:"char_count"`
	WordCount      int    `json:"word_count" yaml:"word_count"`
	ContentHash    string `json:"content_hash" yaml:"content_hash"`
	PageCount      int    `json:"page_count,omitempty" yaml:"page_count,omitempty"`
	ParagraphCount int    `json:"paragraph_count,omitempty" yaml:"paragraph_count,omitempty"`
}

// Document is cleaned text ready for the generation pipeline, with a short
// sentence-bounded summary and content metadata.
type Document struct {
	Text     string   `json:"text" yaml:"text"`
	Summary  string   `json:"summary" yaml:"summary"`
	Metadata Metadata `json:"metadata" yaml:"metadata"`
}

// Service extracts plain text from the supported document formats.
type Service struct {
	maxFileSize int64
}

func NewService(maxFileSize int64) *Service {
	if maxFileSize <= 0 {
		maxFileSize = defaultMaxFileSize
	}
	return &Service{maxFileSize: maxFileSize}
}

// ExtractFile reads path and extracts it according to its extension. The
// size cap is enforced before any bytes are read.
func (s *Service) ExtractFile(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.Size() > s.maxFileSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrFileTooLarge, info.Size(), s.maxFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	format := strings.TrimPrefix(filepath.Ext(path), ".")
	return s.Extract(data, format)
}

// Extract pulls plain text out of data according to format, cleans it, and
// assembles the document record.
func (s *Service) Extract(data []byte, format string) (*Document, error) {
	format = normalizeFormat(format)

	var (
		text       string
		pages      int
		paragraphs int
		err        error
	)

	switch format {
	case FormatTXT:
		text = string(data)
	case FormatMD:
		text = stripMarkdown(string(data))
	case FormatHTML:
		text, err = extractHTML(data)
	case FormatRTF:
		text = stripRTF(string(data))
	case FormatPDF:
		text, pages, err = extractPDF(data)
	case FormatDOCX:
		text, paragraphs, err = extractDOCX(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	text = cleanText(text)
	if text == "" {
		return nil, fmt.Errorf("no text extracted from %s document", format)
	}

	doc := &Document{
		Text:    text,
		Summary: summarize(text, summaryLimit),
		Metadata: Metadata{
			Format:         format,
			CharCount:      utf8.RuneCountInString(text),
			WordCount:      len(strings.Fields(text)),
			ContentHash:    utils.HashString(text),
			PageCount:      pages,
			ParagraphCount: paragraphs,
		},
	}

	metrics.DocumentsExtracted.WithLabelValues(format).Inc()
	logger.Info("Document extracted",
		zap.String("format", format),
		zap.Int("chars", doc.Metadata.CharCount),
		zap.Int("words", doc.Metadata.WordCount),
	)

	return doc, nil
}

func normalizeFormat(format string) string {
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case "markdown":
		return FormatMD
	case "htm":
		return FormatHTML
	default:
		return format
	}
}

var (
	markupTagPattern  = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	dotRunPattern     = regexp.MustCompile(`\.{3,}`)
	dashRunPattern    = regexp.MustCompile(`-{3,}`)
)

// cleanText normalizes extracted text: residual tags out, whitespace runs
// collapsed, long punctuation runs squeezed, control characters dropped.
func cleanText(text string) string {
	text = markupTagPattern.ReplaceAllString(text, " ")
	text = strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, text)
	text = whitespacePattern.ReplaceAllString(text, " ")
	text = dotRunPattern.ReplaceAllString(text, "...")
	text = dashRunPattern.ReplaceAllString(text, "---")
	return strings.TrimSpace(text)
}

// summarize returns a leading slice of text of at most limit characters,
// cut back to the last full sentence when one fits.
func summarize(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}

	cut := string(runes[:limit])
	if i := strings.LastIndexAny(cut, ".!?"); i > 0 {
		return strings.TrimSpace(cut[:i+1])
	}
	return strings.TrimSpace(cut)
}
