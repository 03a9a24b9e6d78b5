// Package detect classifies a PDF as text-bearing or image-only by sampling
// the embedded text layer of the first pages.
package detect

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
)

// Sampler extracts the text layer of a bounded page prefix of a document.
type Sampler interface {
	Sample(ctx context.Context, path string, pages int) (string, error)
}

const (
	// samplePages bounds the sample; full extraction would be wasteful on
	// large scanned documents.
	samplePages = 2

	// wordThreshold filters the handful of spurious words a scanned PDF can
	// carry in a thin embedded text layer or metadata, while staying low
	// enough to accept short but genuine text pages.
	wordThreshold = 50
)

// Classifier decides the extraction method for a document.
type Classifier struct {
	Sampler Sampler
}

// TextBearing reports whether the document carries a usable embedded text
// layer. Any sampling failure (missing tool, corrupt file, timeout)
// classifies the document as image-only so the caller falls back to OCR,
// the more universally applicable method.
func (c *Classifier) TextBearing(ctx context.Context, path string) bool {
	text, err := c.Sampler.Sample(ctx, path, samplePages)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("text sample failed; assuming image-only")
		return false
	}
	words := len(strings.Fields(strings.TrimSpace(text)))
	return words > wordThreshold
}
