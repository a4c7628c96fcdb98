// Package ingestion decodes uploaded resume files into plain text and
// normalizes it for the line-oriented section extractors.
package ingestion

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// UnsupportedFormatError indicates an upload with a file extension the
// extractor cannot decode.
type UnsupportedFormatError struct {
	Filename string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported resume format: %s (want .pdf or .docx)", e.Filename)
}

// EmptyFileError indicates an upload with no content.
type EmptyFileError struct {
	Filename string
}

func (e *EmptyFileError) Error() string {
	return fmt.Sprintf("empty resume file: %s", e.Filename)
}

// ExtractText decodes a resume file into plain text based on its file
// extension. Only PDF and DOCX are supported.
func ExtractText(filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", &EmptyFileError{Filename: filename}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDOCX(data)
	default:
		return "", &UnsupportedFormatError{Filename: filename}
	}
}

// extractPDF pulls plain text out of a PDF, page by page. Pages that fail
// to decode are skipped; only a document with no readable text at all is
// an error.
func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse PDF: %w", err)
	}

	var sb strings.Builder
	for pageIndex := 1; pageIndex <= reader.NumPage(); pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}
	return text, nil
}

// docxTags strips WordprocessingML markup after paragraph boundaries have
// been turned into newlines.
var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>`)
	docxTags         = regexp.MustCompile(`<[^>]+>`)
)

// extractDOCX pulls plain text out of a DOCX document. Paragraph
// boundaries become newlines so section headings stay on their own lines.
func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse DOCX: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = docxTags.ReplaceAllString(content, "")

	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("no text content found in DOCX")
	}
	return content, nil
}
