package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPlainText(t *testing.T) {
	text, err := Extract([]byte("  Jane Doe\nSenior Gopher  "), "text/plain", "resume.txt")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSenior Gopher", text)
}

func TestExtractPlainTextWithCharset(t *testing.T) {
	text, err := Extract([]byte("hello"), "text/plain; charset=utf-8", "resume.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestExtractRejectsInvalidUTF8(t *testing.T) {
	_, err := Extract([]byte{0xff, 0xfe, 0xfd}, "text/plain", "resume.txt")
	assert.Error(t, err)
}

func TestExtractUnsupportedFormat(t *testing.T) {
	tests := []struct {
		name     string
		mimeType string
		filename string
	}{
		{"image upload", "image/png", "photo.png"},
		{"spreadsheet", "application/vnd.ms-excel", "data.xls"},
		{"unknown extension fallback", "", "resume.xyz"},
		{"octet-stream without extension", "application/octet-stream", "resume"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract([]byte("data"), tt.mimeType, tt.filename)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnsupportedFormat)
		})
	}
}

func TestExtractFallsBackToExtension(t *testing.T) {
	// Browsers often send octet-stream for .txt attachments
	text, err := Extract([]byte("plain contents"), "application/octet-stream", "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "plain contents", text)
}

func TestExtractPDFRejectsGarbage(t *testing.T) {
	_, err := ExtractPDF([]byte("definitely not a pdf"))
	assert.Error(t, err)
}

func TestExtractDOCXRejectsGarbage(t *testing.T) {
	_, err := ExtractDOCX([]byte("definitely not a docx"))
	assert.Error(t, err)
}

func TestWordprocessingText(t *testing.T) {
	content := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t xml:space="preserve">Senior </w:t></w:r><w:r><w:t>Gopher</w:t></w:r></w:p>
    <w:p><w:r><w:t>5 years of Go</w:t></w:r></w:p>
  </w:body>
</w:document>`

	text, err := wordprocessingText(content)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSenior Gopher\n5 years of Go", text)
}

func TestWordprocessingTextIgnoresNonTextNodes(t *testing.T) {
	content := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p>
      <w:pPr><w:pStyle w:val="Heading1"/></w:pPr>
      <w:r><w:t>Skills</w:t></w:r>
    </w:p>
  </w:body>
</w:document>`

	text, err := wordprocessingText(content)
	require.NoError(t, err)
	assert.Equal(t, "Skills", text)
}
