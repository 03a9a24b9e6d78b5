package poppler

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/hyperifyio/pdftext/internal/ocr"
)

// PdfToPpm rasterizes a document into one PNG per page via the pdftoppm
// binary. Pages are written to a temporary directory and read back into
// memory in page order; the directory is removed before returning.
type PdfToPpm struct {
	// BinPath overrides the binary looked up on PATH. Empty means "pdftoppm".
	BinPath string
}

func (p *PdfToPpm) bin() string {
	if p.BinPath != "" {
		return p.BinPath
	}
	return "pdftoppm"
}

// Rasterize renders every page of the document at the given resolution.
// Failure is per document, never per page.
func (p *PdfToPpm) Rasterize(ctx context.Context, path string, dpi int) ([]ocr.PageImage, error) {
	dir, err := os.MkdirTemp("", "pdftext-pages-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	prefix := filepath.Join(dir, "page")
	cmd := exec.CommandContext(ctx, p.bin(), "-png", "-r", strconv.Itoa(dpi), path, prefix)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("pdftoppm: %w: %s", err, bytes.TrimSpace(stderr.Bytes()))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	pages := make([]ocr.PageImage, 0, len(entries))
	for _, e := range entries {
		n, ok := pageNumber(e.Name())
		if !ok {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read page image: %w", err)
		}
		pages = append(pages, ocr.PageImage{Number: n, PNG: data})
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("pdftoppm: no page images produced for %s", path)
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].Number < pages[j].Number })
	return pages, nil
}

// pageNumber parses the page index out of a pdftoppm output name such as
// "page-07.png".
func pageNumber(name string) (int, bool) {
	base := strings.TrimSuffix(name, ".png")
	if base == name {
		return 0, false
	}
	i := strings.LastIndexByte(base, '-')
	if i < 0 {
		return 0, false
	}
	n, err := strconv.Atoi(base[i+1:])
	if err != nil {
		return 0, false
	}
	return n, true
}
