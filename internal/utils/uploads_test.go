package utils

import (
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedCVFile(t *testing.T) {
	assert.True(t, AllowedCVFile("resume.pdf"))
	assert.True(t, AllowedCVFile("resume.DOC"))
	assert.True(t, AllowedCVFile("resume.docx"))
	assert.False(t, AllowedCVFile("resume.exe"))
	assert.False(t, AllowedCVFile("resume"))
	assert.False(t, AllowedCVFile(""))
}

func writeTo(content string) SaveFunc {
	return func(_ *multipart.FileHeader, dst string) error {
		return os.WriteFile(dst, []byte(content), 0644)
	}
}

func TestSaveCV(t *testing.T) {
	dir := t.TempDir()

	name, err := SaveCV(dir, &multipart.FileHeader{Filename: "resume.docx"}, writeTo("hello"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".docx"))
	assert.NotEqual(t, "resume.docx", name) // stored under a generated name

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestSaveCVRejectsExtension(t *testing.T) {
	_, err := SaveCV(t.TempDir(), &multipart.FileHeader{Filename: "malware.exe"}, writeTo("x"))
	assert.ErrorIs(t, err, ErrUnsupportedFileType)
}

func TestSaveCVRejectsCorruptPDF(t *testing.T) {
	dir := t.TempDir()

	name, err := SaveCV(dir, &multipart.FileHeader{Filename: "resume.pdf"}, writeTo("not a pdf"))
	assert.Error(t, err)
	assert.Empty(t, name)

	// The bad upload must not be left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExtractPDFTextNonPDF(t *testing.T) {
	text, err := ExtractPDFText("whatever.docx")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestRemoveCV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cv.pdf")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	require.NoError(t, RemoveCV(dir, "cv.pdf"))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Missing files and path traversal are no-ops, not errors.
	assert.NoError(t, RemoveCV(dir, "cv.pdf"))
	assert.NoError(t, RemoveCV(dir, "../cv.pdf"))
	assert.NoError(t, RemoveCV(dir, ""))
}
