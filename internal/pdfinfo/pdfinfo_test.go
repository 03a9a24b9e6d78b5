package pdfinfo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"
)

// writeTextPDF generates a small text-only PDF fixture with the given number
// of pages.
func writeTextPDF(t *testing.T, pages int) string {
	t.Helper()
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 12)
	for i := 0; i < pages; i++ {
		pdf.AddPage()
		pdf.MultiCell(0, 6, "Some page content for structural inspection.", "", "L", false)
	}
	path := filepath.Join(t.TempDir(), "fixture.pdf")
	if err := pdf.OutputFileAndClose(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInspect_PageCount(t *testing.T) {
	path := writeTextPDF(t, 3)

	info, err := Inspect(path)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if info.PageCount != 3 {
		t.Fatalf("page count %d, want 3", info.PageCount)
	}
	if info.HasImages {
		t.Fatal("text-only fixture should carry no image streams")
	}
}

func TestInspect_MissingFile(t *testing.T) {
	if _, err := Inspect(filepath.Join(t.TempDir(), "missing.pdf")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestInspect_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.pdf")
	if err := os.WriteFile(path, []byte("this is not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Inspect(path); err == nil {
		t.Fatal("expected error for malformed input")
	}
}
