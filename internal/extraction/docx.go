package extraction

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const documentPartName = "word/document.xml"

// extractDOCX unpacks the archive and concatenates the run text of
// word/document.xml, one line per paragraph.
func extractDOCX(data []byte) (string, int, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("failed to open DOCX archive: %w", err)
	}

	var part *zip.File
	for _, f := range zr.File {
		if f.Name == documentPartName {
			part = f
			break
		}
	}
	if part == nil {
		return "", 0, fmt.Errorf("DOCX archive has no %s", documentPartName)
	}

	rc, err := part.Open()
	if err != nil {
		return "", 0, fmt.Errorf("failed to open document part: %w", err)
	}
	defer rc.Close()

	return parseDocumentXML(rc)
}

// parseDocumentXML walks the WordprocessingML stream collecting the text
// inside w:t elements and counting w:p paragraphs.
func parseDocumentXML(r io.Reader) (string, int, error) {
	decoder := xml.NewDecoder(r)

	var b strings.Builder
	paragraphs := 0
	inText := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", 0, fmt.Errorf("failed to parse document XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteString("\n")
				paragraphs++
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}

	return b.String(), paragraphs, nil
}
