package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the optional single-file configuration schema. File values
// act as defaults; explicitly set command line flags win.
type FileConfig struct {
	Output string `yaml:"output" json:"output"`

	OCR struct {
		DPI      int    `yaml:"dpi" json:"dpi"`
		Language string `yaml:"language" json:"language"`
	} `yaml:"ocr" json:"ocr"`

	Clean struct {
		Disable bool     `yaml:"disable" json:"disable"`
		Headers []string `yaml:"headers" json:"headers"`
	} `yaml:"clean" json:"clean"`

	Tools struct {
		PdfToText string `yaml:"pdftotext" json:"pdftotext"`
		PdfToPpm  string `yaml:"pdftoppm" json:"pdftoppm"`
	} `yaml:"tools" json:"tools"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// Apply overlays file values onto cfg. setFlags names the command line
// flags the user set explicitly; those keep their values. File-supplied
// header patterns are prepended so CLI patterns keep their position at the
// end of the rule list.
func (fc FileConfig) Apply(cfg Config, setFlags map[string]bool) Config {
	if fc.Output != "" && cfg.OutputPath == "" {
		cfg.OutputPath = fc.Output
	}
	if fc.OCR.DPI > 0 && !setFlags["dpi"] {
		cfg.DPI = fc.OCR.DPI
	}
	if fc.OCR.Language != "" && !setFlags["lang"] {
		cfg.Language = fc.OCR.Language
	}
	if fc.Clean.Disable && !setFlags["no-clean"] {
		cfg.NoClean = true
	}
	if len(fc.Clean.Headers) > 0 {
		cfg.HeaderPatterns = append(append([]string(nil), fc.Clean.Headers...), cfg.HeaderPatterns...)
	}
	if fc.Tools.PdfToText != "" {
		cfg.PdfToTextBin = fc.Tools.PdfToText
	}
	if fc.Tools.PdfToPpm != "" {
		cfg.PdfToPpmBin = fc.Tools.PdfToPpm
	}
	return cfg
}
