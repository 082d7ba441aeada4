package utils

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

var ErrUnsupportedFileType = errors.New("unsupported file type, upload PDF, DOC or DOCX")

var allowedCVExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// AllowedCVFile reports whether filename carries an accepted CV extension.
func AllowedCVFile(filename string) bool {
	return allowedCVExtensions[strings.ToLower(filepath.Ext(filename))]
}

// SaveFunc persists an uploaded file to dst. Handlers pass gin's
// SaveUploadedFile; tests supply their own.
type SaveFunc func(file *multipart.FileHeader, dst string) error

// SaveCV stores an uploaded CV under dir with a uuid-based filename and
// returns the stored name. PDF uploads are structurally validated and removed
// again if they fail.
func SaveCV(dir string, file *multipart.FileHeader, save SaveFunc) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedCVExtensions[ext] {
		return "", ErrUnsupportedFileType
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	name := uuid.New().String() + ext
	path := filepath.Join(dir, name)
	if err := save(file, path); err != nil {
		return "", err
	}

	if ext == ".pdf" {
		if err := api.ValidateFile(path, nil); err != nil {
			_ = os.Remove(path)
			return "", fmt.Errorf("corrupt pdf upload: %w", err)
		}
	}
	return name, nil
}

// ExtractPDFText pulls the plain text out of a stored PDF CV for the
// employer-side preview. Non-PDF files yield an empty string.
func ExtractPDFText(path string) (string, error) {
	if strings.ToLower(filepath.Ext(path)) != ".pdf" {
		return "", nil
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	b, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	buf := &bytes.Buffer{}
	if _, err := buf.ReadFrom(b); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RemoveCV deletes a stored CV. filename must be a bare name, never a path.
func RemoveCV(dir, filename string) error {
	if filename == "" || filepath.Base(filename) != filename {
		return nil
	}
	err := os.Remove(filepath.Join(dir, filename))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
