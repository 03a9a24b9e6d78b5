package ocr

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// NormalizeLanguage maps a user-supplied language hint to the ISO 639-3
// code tesseract expects. Three-letter codes pass through unchanged;
// anything else is parsed as a BCP 47 tag such as "en" or "pt-BR".
func NormalizeLanguage(hint string) (string, error) {
	hint = strings.TrimSpace(hint)
	if hint == "" {
		return DefaultLanguage, nil
	}
	if len(hint) == 3 && !strings.ContainsAny(hint, "-_") {
		return strings.ToLower(hint), nil
	}

	tag, err := language.Parse(hint)
	if err != nil {
		return "", fmt.Errorf("language hint %q: %w", hint, err)
	}
	base, _ := tag.Base()
	return base.ISO3(), nil
}
