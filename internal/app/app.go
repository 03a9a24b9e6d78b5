// Package app wires the extraction pipeline together: method resolution,
// extraction, boilerplate cleaning and output writing for one document.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/pdftext/internal/clean"
	"github.com/hyperifyio/pdftext/internal/detect"
	"github.com/hyperifyio/pdftext/internal/ocr"
	"github.com/hyperifyio/pdftext/internal/pdfinfo"
	"github.com/hyperifyio/pdftext/internal/poppler"
)

// Method names the extraction strategy chosen for a run. It is resolved
// once, before any extraction work, and never revisited mid-document.
type Method string

const (
	MethodText Method = "text-layer"
	MethodOCR  Method = "ocr"
)

// Config holds one run's settings.
type Config struct {
	InputPath  string
	OutputPath string

	// ForceOCR wins over ForceText; either disables the classifier.
	ForceOCR  bool
	ForceText bool

	DPI      int
	Language string

	// HeaderPatterns are extra removal patterns appended to the built-in
	// boilerplate rules.
	HeaderPatterns []string
	NoClean        bool

	// DetectOnly reports the resolved method without extracting.
	DetectOnly bool

	// Tool path overrides; empty values fall back to PATH lookup.
	PdfToTextBin string
	PdfToPpmBin  string
}

// TextLayer is the full-document text-layer extraction capability.
type TextLayer interface {
	Extract(ctx context.Context, path string) (string, error)
}

// OCR is the rasterize-and-recognize extraction capability.
type OCR interface {
	Extract(ctx context.Context, path string) (string, error)
}

// Classifier decides whether a document carries a usable text layer.
type Classifier interface {
	TextBearing(ctx context.Context, path string) bool
}

// Stats summarizes the emitted text. Informational only.
type Stats struct {
	Lines int
	Words int
}

type App struct {
	cfg        Config
	textLayer  TextLayer
	ocr        OCR
	classifier Classifier
}

func New(cfg Config) *App {
	pdftotext := &poppler.PdfToText{BinPath: cfg.PdfToTextBin}
	return &App{
		cfg:       cfg,
		textLayer: pdftotext,
		ocr: &ocr.Extractor{
			Rasterizer: &poppler.PdfToPpm{BinPath: cfg.PdfToPpmBin},
			Engine:     &ocr.Tesseract{Language: cfg.Language},
			DPI:        cfg.DPI,
		},
		classifier: &detect.Classifier{Sampler: pdftotext},
	}
}

// Run processes one document: resolve the extraction method, extract,
// optionally clean, write the output file and log summary statistics.
func (a *App) Run(ctx context.Context) error {
	if _, err := os.Stat(a.cfg.InputPath); err != nil {
		return fmt.Errorf("input %s: %w", a.cfg.InputPath, err)
	}

	// Structural inspection is observational; the poppler tools stay
	// authoritative, so a parse failure here only warns.
	if info, err := pdfinfo.Inspect(a.cfg.InputPath); err != nil {
		log.Warn().Err(err).Msg("document inspection failed")
	} else {
		log.Info().Int("pages", info.PageCount).Bool("imageStreams", info.HasImages).Msg("document")
	}

	method := a.resolveMethod(ctx)
	log.Info().Str("method", string(method)).Msg("extraction method resolved")

	if a.cfg.DetectOnly {
		fmt.Printf("%s: %s\n", a.cfg.InputPath, method)
		return nil
	}

	var text string
	var err error
	switch method {
	case MethodOCR:
		text, err = a.ocr.Extract(ctx, a.cfg.InputPath)
	default:
		text, err = a.textLayer.Extract(ctx, a.cfg.InputPath)
	}
	if err != nil {
		return fmt.Errorf("extract %s: %w", a.cfg.InputPath, err)
	}

	if !a.cfg.NoClean {
		log.Info().Msg("cleaning boilerplate")
		text, err = clean.Clean(text, a.cfg.HeaderPatterns)
		if err != nil {
			return err
		}
	}

	if err := os.WriteFile(a.cfg.OutputPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	st := Summarize(text)
	log.Info().
		Int("lines", st.Lines).Int("words", st.Words).
		Str("output", a.cfg.OutputPath).
		Msg("complete")
	return nil
}

// resolveMethod applies the decision order: an explicit OCR override wins,
// then an explicit text override, then the classifier.
func (a *App) resolveMethod(ctx context.Context) Method {
	switch {
	case a.cfg.ForceOCR:
		return MethodOCR
	case a.cfg.ForceText:
		return MethodText
	default:
		if a.classifier.TextBearing(ctx, a.cfg.InputPath) {
			return MethodText
		}
		return MethodOCR
	}
}

// Summarize computes the informational line and word counts of text.
func Summarize(text string) Stats {
	return Stats{
		Lines: strings.Count(text, "\n") + 1,
		Words: len(strings.Fields(text)),
	}
}

// DefaultOutputPath derives the output file for an input document by
// replacing its extension with ".txt".
func DefaultOutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".txt"
}
