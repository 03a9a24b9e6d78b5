// Package poppler wraps the poppler-utils command line tools: pdftotext for
// text-layer extraction and pdftoppm for page rasterization. Each wrapper is
// a thin capability around one binary so callers can substitute fakes.
package poppler

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"time"
)

const (
	// sampleTimeout bounds the classifier's page-prefix sample.
	sampleTimeout = 30 * time.Second

	// extractTimeout bounds full-document extraction; generous to cover
	// large documents.
	extractTimeout = 120 * time.Second
)

// PdfToText extracts a document's embedded text layer via the pdftotext
// binary.
type PdfToText struct {
	// BinPath overrides the binary looked up on PATH. Empty means "pdftotext".
	BinPath string
}

func (p *PdfToText) bin() string {
	if p.BinPath != "" {
		return p.BinPath
	}
	return "pdftotext"
}

// Extract pulls the full text layer with the original layout approximated
// in the output. A timeout or tool failure is surfaced to the caller; at
// this stage OCR is not an automatic fallback.
func (p *PdfToText) Extract(ctx context.Context, path string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, extractTimeout)
	defer cancel()
	return p.run(ctx, "-layout", path, "-")
}

// Sample extracts the text layer of the first pages only. Kept cheap on
// purpose; the classifier treats any failure here as "no text layer".
func (p *PdfToText) Sample(ctx context.Context, path string, pages int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, sampleTimeout)
	defer cancel()
	return p.run(ctx, "-l", strconv.Itoa(pages), path, "-")
}

func (p *PdfToText) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, p.bin(), args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("pdftotext: %w", ctx.Err())
		}
		return "", fmt.Errorf("pdftotext: %w: %s", err, bytes.TrimSpace(stderr.Bytes()))
	}
	return stdout.String(), nil
}
