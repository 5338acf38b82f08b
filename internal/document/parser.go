// Package document extracts plain text from uploaded resume and job
// description files (PDF, DOCX, TXT).
package document

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/nguyenthenguyen/docx"
	"github.com/unidoc/unipdf/v3/extractor"
	"github.com/unidoc/unipdf/v3/model"
)

// ErrUnsupportedFormat is returned for file types the parser cannot handle.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// MIME types accepted by Extract
const (
	mimePDF   = "application/pdf"
	mimeDOCX  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeWord  = "application/msword"
	mimePlain = "text/plain"
)

// Extract returns the plain text of a file, dispatching on the MIME type.
// When the MIME type is empty or generic, the filename extension decides.
func Extract(data []byte, mimeType string, filename string) (string, error) {
	// Content-Type values may carry parameters ("text/plain; charset=utf-8")
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = mimeType[:i]
	}
	mimeType = strings.TrimSpace(strings.ToLower(mimeType))

	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = mimeTypeFromFilename(filename)
	}

	switch mimeType {
	case mimePDF:
		return ExtractPDF(data)
	case mimeDOCX, mimeWord:
		return ExtractDOCX(data)
	case mimePlain:
		if !utf8.Valid(data) {
			return "", fmt.Errorf("text file is not valid UTF-8")
		}
		return strings.TrimSpace(string(data)), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, mimeType)
	}
}

// ExtractPDF extracts text from a PDF, page by page
func ExtractPDF(data []byte) (string, error) {
	pdfReader, err := model.NewPdfReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to read PDF: %w", err)
	}

	numPages, err := pdfReader.GetNumPages()
	if err != nil {
		return "", fmt.Errorf("failed to get page count: %w", err)
	}
	if numPages == 0 {
		return "", fmt.Errorf("PDF has no pages")
	}

	var textBuilder strings.Builder
	for i := 1; i <= numPages; i++ {
		page, err := pdfReader.GetPage(i)
		if err != nil {
			continue // skip pages that fail to load
		}

		ex, err := extractor.New(page)
		if err != nil {
			continue
		}

		pageText, err := ex.ExtractText()
		if err != nil || pageText == "" {
			continue
		}

		textBuilder.WriteString(pageText)
		textBuilder.WriteString("\n")
	}

	result := strings.TrimSpace(textBuilder.String())
	if result == "" {
		return "", fmt.Errorf("no text could be extracted from any page of the PDF")
	}

	return result, nil
}

// ExtractDOCX extracts text from a DOCX document
func ExtractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read DOCX: %w", err)
	}
	defer doc.Close()

	text, err := wordprocessingText(doc.Editable().GetContent())
	if err != nil {
		return "", fmt.Errorf("failed to parse DOCX content: %w", err)
	}

	return text, nil
}

// wordprocessingText pulls the visible text runs (w:t) out of a
// WordprocessingML document body, one line per paragraph (w:p).
func wordprocessingText(content string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(content))

	var textBuilder strings.Builder
	inTextRun := false
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inTextRun = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inTextRun = false
			case "p":
				textBuilder.WriteString("\n")
			}
		case xml.CharData:
			if inTextRun {
				textBuilder.Write(t)
			}
		}
	}

	return strings.TrimSpace(textBuilder.String()), nil
}

func mimeTypeFromFilename(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return mimePDF
	case ".docx", ".doc":
		return mimeDOCX
	case ".txt":
		return mimePlain
	default:
		return ""
	}
}
