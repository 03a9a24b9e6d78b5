// Package ocr recognizes text from rasterized PDF pages. The document is
// rendered in full first, then pages are recognized one at a time in
// document order; a failure on one page never aborts the run.
package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// DefaultDPI is the rasterization resolution used when none is configured.
const DefaultDPI = 400

// PageImage is one rendered page. Number is 1-indexed in document order.
type PageImage struct {
	Number int
	PNG    []byte
}

// Rasterizer renders every page of a document at the given resolution.
// Rasterization fails for the document as a whole, never per page.
type Rasterizer interface {
	Rasterize(ctx context.Context, path string, dpi int) ([]PageImage, error)
}

// Engine recognizes text on a single page image.
type Engine interface {
	Recognize(ctx context.Context, page PageImage) (string, error)
}

// Extractor runs the OCR extraction path.
type Extractor struct {
	Rasterizer Rasterizer
	Engine     Engine
	DPI        int
}

// pageText is one page's recognition outcome. The failure placeholder is
// rendered only at the final join, keeping isolation decoupled from
// formatting.
type pageText struct {
	number int
	text   string
	failed bool
}

func (e *Extractor) dpi() int {
	if e.DPI > 0 {
		return e.DPI
	}
	return DefaultDPI
}

// Extract produces text for every page of the document, joined in page
// order with a blank line between pages. A page whose recognition fails
// contributes the literal marker "[OCR ERROR on page N]" instead of text
// so page count and ordering stay intact.
func (e *Extractor) Extract(ctx context.Context, path string) (string, error) {
	dpi := e.dpi()
	log.Info().Int("dpi", dpi).Str("path", path).Msg("rasterizing for OCR")

	pages, err := e.Rasterizer.Rasterize(ctx, path, dpi)
	if err != nil {
		return "", fmt.Errorf("rasterize: %w", err)
	}
	log.Info().Int("pages", len(pages)).Msg("running OCR")

	results := make([]pageText, 0, len(pages))
	for i, page := range pages {
		text, err := e.Engine.Recognize(ctx, page)
		if err != nil {
			log.Warn().Err(err).
				Int("page", i+1).Int("total", len(pages)).
				Msg("OCR page failed")
			results = append(results, pageText{number: page.Number, failed: true})
			continue
		}
		log.Info().Int("page", i+1).Int("total", len(pages)).Msg("OCR page done")
		results = append(results, pageText{number: page.Number, text: strings.TrimSpace(text)})
	}

	parts := make([]string, len(results))
	for i, r := range results {
		if r.failed {
			parts[i] = fmt.Sprintf("[OCR ERROR on page %d]", r.number)
			continue
		}
		parts[i] = r.text
	}
	return strings.Join(parts, "\n\n"), nil
}
