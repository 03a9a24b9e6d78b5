package app

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/hyperifyio/pdftext/internal/ocr"
)

// CheckDependencies verifies the external tools are installed before any
// extraction work starts. Everything missing is reported in one error so
// the user can fix the whole list at once.
func CheckDependencies(cfg Config) error {
	var missing []string

	if _, err := exec.LookPath(binOr(cfg.PdfToTextBin, "pdftotext")); err != nil {
		missing = append(missing, "pdftotext (poppler-utils)")
	}
	if _, err := exec.LookPath(binOr(cfg.PdfToPpmBin, "pdftoppm")); err != nil {
		missing = append(missing, "pdftoppm (poppler-utils)")
	}
	if err := ocr.Available(); err != nil {
		missing = append(missing, "tesseract language data (tesseract-ocr)")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing dependencies: %s", strings.Join(missing, ", "))
	}
	return nil
}

func binOr(path, fallback string) string {
	if path != "" {
		return path
	}
	return fallback
}
