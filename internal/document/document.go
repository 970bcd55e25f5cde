// Package document turns resume and job description files into plain text.
package document

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Failure texts produced by Extract.
const (
	NoPagesText  = "Error: PDF has no pages"
	NoTextText   = "Error: Could not extract text"
	PDFErrorFmt  = "Error extracting PDF: %s"
	ReadErrorFmt = "Error reading document: %s"
)

var (
	// ErrExtraction marks text that is a failure sentinel rather than content.
	ErrExtraction = errors.New("text extraction failed")
	// ErrNoPages is returned for PDF documents without pages.
	ErrNoPages = errors.New("pdf has no pages")
	// ErrNoText is returned when a document holds no extractable text.
	ErrNoText = errors.New("no extractable text")
	// ErrPDF wraps failures of the pdf reader.
	ErrPDF = errors.New("pdf")
)

// Source describes where a document comes from.
type Source struct {
	// Name is used in error messages and logs.
	Name string
	// Value is inline document text.
	Value string
	// File points to a .pdf, .docx or plain-text file. When set it takes
	// precedence over Value.
	File string
}

// DisplayName returns the source name, falling back to the file base name.
func (s Source) DisplayName() string {
	if name := strings.TrimSpace(s.Name); name != "" {
		return name
	}
	if s.File != "" {
		return filepath.Base(s.File)
	}
	return "document"
}

// Read returns the trimmed text of the source. PDF and DOCX files are
// converted to text; any other file is read as is.
func Read(src Source) (string, error) {
	name := src.DisplayName()

	file := strings.TrimSpace(src.File)
	if file == "" {
		text := strings.TrimSpace(src.Value)
		if text == "" {
			return "", fmt.Errorf("%s: %w", name, ErrNoText)
		}
		return text, nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
	}

	var text string
	switch strings.ToLower(filepath.Ext(file)) {
	case ".pdf":
		text, err = PDFText(data)
		if err != nil && !errors.Is(err, ErrNoPages) && !errors.Is(err, ErrNoText) {
			err = fmt.Errorf("%w: %w", ErrPDF, err)
		}
	case ".docx":
		text, err = DocxText(data)
	default:
		text = string(data)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%s file %q: %w", name, file, ErrNoText)
	}
	return text, nil
}

// Extract is Read for callers that carry failures as text: errors become a
// sentinel string starting with "Error".
func Extract(src Source) string {
	text, err := Read(src)
	if err != nil {
		return Sentinel(err)
	}
	return text
}

// Sentinel converts a read error into its failure text.
func Sentinel(err error) string {
	switch {
	case errors.Is(err, ErrNoPages):
		return NoPagesText
	case errors.Is(err, ErrNoText):
		return NoTextText
	case errors.Is(err, ErrPDF):
		return fmt.Sprintf(PDFErrorFmt, err)
	default:
		return fmt.Sprintf(ReadErrorFmt, err)
	}
}

var failurePrefixes = []string{"Error: ", "Error extracting PDF: ", "Error reading document: "}

// IsFailure reports whether text is a failure sentinel.
func IsFailure(text string) bool {
	for _, p := range failurePrefixes {
		if strings.HasPrefix(text, p) {
			return true
		}
	}
	return false
}

// Check returns ErrExtraction when text is a failure sentinel.
func Check(text string) error {
	if IsFailure(text) {
		return fmt.Errorf("%w: %s", ErrExtraction, text)
	}
	return nil
}

// PDFText extracts the text of every page. Pages that fail to decode are
// skipped.
func PDFText(data []byte) (text string, err error) {
	// The pdf reader panics on some malformed documents.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	if r.NumPage() == 0 {
		return "", ErrNoPages
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		content, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}

	text = normalizeWhitespace(b.String())
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// DocxText extracts the paragraphs of a Word document.
func DocxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var xml []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		xml, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", err
		}
		break
	}
	if len(xml) == 0 {
		return "", errors.New("no document.xml found in docx")
	}

	s := strings.ReplaceAll(string(xml), "</w:p>", "\n")
	s = strings.ReplaceAll(s, "<w:tab/>", "\t")
	text := normalizeWhitespace(tagPattern.ReplaceAllString(s, " "))
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

var (
	spacePattern   = regexp.MustCompile(`[ \t\r\f\v]+`)
	newlinePattern = regexp.MustCompile(`\n+`)
)

func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = spacePattern.ReplaceAllString(s, " ")
	s = newlinePattern.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
