package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// DefaultLanguage is the tesseract language code used when none is configured.
const DefaultLanguage = "eng"

// Tesseract is the default Engine, backed by the gosseract binding. Pages
// are segmented as a single column of variable-size text (PSM 4), which
// keeps reading order stable on typical document layouts.
type Tesseract struct {
	Language string
}

func (t *Tesseract) language() string {
	if t.Language != "" {
		return t.Language
	}
	return DefaultLanguage
}

// Recognize runs tesseract over one page image. A fresh client per page
// keeps page failures isolated from each other.
func (t *Tesseract) Recognize(ctx context.Context, page PageImage) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetImageFromBytes(page.PNG); err != nil {
		return "", fmt.Errorf("set page image: %w", err)
	}
	if err := client.SetLanguage(t.language()); err != nil {
		return "", fmt.Errorf("set language: %w", err)
	}
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_COLUMN); err != nil {
		return "", fmt.Errorf("set segmentation mode: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize: %w", err)
	}
	return text, nil
}

// Available reports whether tesseract language data can be loaded. Used by
// the preflight dependency check.
func Available() error {
	langs, err := gosseract.GetAvailableLanguages()
	if err != nil {
		return fmt.Errorf("tesseract: %w", err)
	}
	if len(langs) == 0 {
		return fmt.Errorf("tesseract: no language data installed")
	}
	return nil
}
