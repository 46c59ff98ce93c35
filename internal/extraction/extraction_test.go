package extraction

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTXT(t *testing.T) {
	s := NewService(0)

	doc, err := s.Extract([]byte("Cells   divide\n\nconstantly in tissue."), FormatTXT)
	require.NoError(t, err)

	assert.Equal(t, "Cells divide constantly in tissue.", doc.Text)
	assert.Equal(t, FormatTXT, doc.Metadata.Format)
	assert.Equal(t, len("Cells divide constantly in tissue."), doc.Metadata.CharCount)
	assert.Equal(t, 5, doc.Metadata.WordCount)
	assert.Len(t, doc.Metadata.ContentHash, 64)
	assert.Equal(t, doc.Text, doc.Summary)
	assert.Zero(t, doc.Metadata.PageCount)
	assert.Zero(t, doc.Metadata.ParagraphCount)
}

func TestExtractMarkdown(t *testing.T) {
	s := NewService(0)
	md := "# Heading\n\nSome **bold** text with `inline code` and a [link text](https://example.com).\n\n" +
		"```go\nfmt.Println(\"code\")\n```\n\nMore *italic* prose follows here.\n"

	doc, err := s.Extract([]byte(md), FormatMD)
	require.NoError(t, err)

	assert.Equal(t, "Heading Some bold text with inline code and a link text. More italic prose follows here.", doc.Text)
}

func TestExtractHTML(t *testing.T) {
	s := NewService(0)
	html := `<html><head><title>Ignored</title><style>body{color:red}</style></head>` +
		`<body><nav>Menu items</nav><p>Cells divide constantly in tissue.</p>` +
		`<script>var x = 1;</script><footer>Copyright</footer></body></html>`

	doc, err := s.Extract([]byte(html), FormatHTML)
	require.NoError(t, err)

	assert.Equal(t, "Cells divide constantly in tissue.", doc.Text)
	assert.NotContains(t, doc.Text, "Menu")
	assert.NotContains(t, doc.Text, "color:red")
	assert.NotContains(t, doc.Text, "var x")
	assert.NotContains(t, doc.Text, "Copyright")
}

func TestExtractRTF(t *testing.T) {
	s := NewService(0)
	rtf := `{\rtf1\ansi\b Bold\b0 statement about cells.}`

	doc, err := s.Extract([]byte(rtf), FormatRTF)
	require.NoError(t, err)

	assert.Equal(t, "Bold statement about cells.", doc.Text)
}

func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.Bytes()
}

func TestExtractDOCX(t *testing.T) {
	s := NewService(0)
	data := buildDOCX(t, `<?xml version="1.0"?>`+
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`+
		`<w:body>`+
		`<w:p><w:r><w:t>First paragraph text here.</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>Second paragraph follows.</w:t></w:r></w:p>`+
		`</w:body></w:document>`)

	doc, err := s.Extract(data, FormatDOCX)
	require.NoError(t, err)

	assert.Equal(t, "First paragraph text here. Second paragraph follows.", doc.Text)
	assert.Equal(t, 2, doc.Metadata.ParagraphCount)
}

func TestExtractDOCXMissingDocumentPart(t *testing.T) {
	s := NewService(0)

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = s.Extract(buf.Bytes(), FormatDOCX)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "word/document.xml")
}

func TestExtractPDFInvalid(t *testing.T) {
	s := NewService(0)

	_, err := s.Extract([]byte("definitely not a pdf"), FormatPDF)
	assert.Error(t, err)
}

func TestExtractUnsupportedFormat(t *testing.T) {
	s := NewService(0)

	_, err := s.Extract([]byte("data"), "xlsx")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractEmptyDocument(t *testing.T) {
	s := NewService(0)

	_, err := s.Extract([]byte("   \n\t  "), FormatTXT)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text extracted")
}

func TestExtractFile(t *testing.T) {
	s := NewService(0)

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("Mitochondria produce most cellular energy."), 0o644))

	doc, err := s.ExtractFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Mitochondria produce most cellular energy.", doc.Text)
	assert.Equal(t, FormatTXT, doc.Metadata.Format)
}

func TestExtractFileTooLarge(t *testing.T) {
	s := NewService(8)

	path := filepath.Join(t.TempDir(), "big.txt")
	require.NoError(t, os.WriteFile(path, []byte("this file is larger than eight bytes"), 0o644))

	_, err := s.ExtractFile(path)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestNormalizeFormat(t *testing.T) {
	assert.Equal(t, FormatMD, normalizeFormat("markdown"))
	assert.Equal(t, FormatMD, normalizeFormat("MD"))
	assert.Equal(t, FormatHTML, normalizeFormat("htm"))
	assert.Equal(t, FormatTXT, normalizeFormat(" TXT "))
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "residual tags", in: "before <div class=\"x\">middle</div> after", want: "before middle after"},
		{name: "whitespace runs", in: "a\n\n\tb   c", want: "a b c"},
		{name: "dot runs squeezed", in: "wait......for it", want: "wait...for it"},
		{name: "dash runs squeezed", in: "a ------ b", want: "a --- b"},
		{name: "control characters dropped", in: "a\x00b\x07c", want: "abc"},
		{name: "trimmed", in: "  padded  ", want: "padded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanText(tt.in))
		})
	}
}

func TestSummarize(t *testing.T) {
	t.Run("short text returned whole", func(t *testing.T) {
		assert.Equal(t, "Tiny text.", summarize("Tiny text.", 500))
	})

	t.Run("long text cut at sentence boundary", func(t *testing.T) {
		text := strings.TrimSpace(strings.Repeat("This sentence is repeated to pad the source text well past the cap. ", 20))
		sum := summarize(text, 500)

		assert.LessOrEqual(t, len(sum), 500)
		assert.True(t, strings.HasSuffix(sum, "."), "summary should end at a sentence boundary")
		assert.True(t, strings.HasPrefix(text, sum))
	})

	t.Run("no boundary falls back to hard cut", func(t *testing.T) {
		text := strings.Repeat("x", 600)
		sum := summarize(text, 500)
		assert.Len(t, sum, 500)
	})
}

func TestExtractFileMissing(t *testing.T) {
	s := NewService(0)
	_, err := s.ExtractFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnsupportedFormat))
}
