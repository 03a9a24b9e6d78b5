package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/pdftext/internal/app"
	"github.com/hyperifyio/pdftext/internal/ocr"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		forceOCR   bool
		forceText  bool
		dpi        int
		lang       string
		headers    string
		noClean    bool
		detectOnly bool
		configPath string
		verbose    bool
	)

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [flags] input.pdf [output.txt]\n\nExtract text from PDF files (handles both text and scanned PDFs).\nThe default output path is the input path with a .txt extension.\n\nFlags:\n",
			os.Args[0])
		flag.PrintDefaults()
	}
	flag.BoolVar(&forceOCR, "force-ocr", false, "Force OCR even if a text layer is extractable")
	flag.BoolVar(&forceText, "force-text", false, "Force text-layer extraction even if the PDF appears scanned")
	flag.IntVar(&dpi, "dpi", ocr.DefaultDPI, "Rasterization resolution for OCR")
	flag.StringVar(&lang, "lang", ocr.DefaultLanguage, "OCR language (ISO 639-3 code or BCP 47 tag)")
	flag.StringVar(&headers, "headers", "", "Comma-separated extra removal patterns (regex, matched at line start)")
	flag.BoolVar(&noClean, "no-clean", false, "Skip boilerplate cleaning")
	flag.BoolVar(&detectOnly, "detect", false, "Report the extraction method without extracting")
	flag.StringVar(&configPath, "config", "", "Path to YAML or JSON config file")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := app.Config{
		InputPath:  args[0],
		ForceOCR:   forceOCR,
		ForceText:  forceText,
		DPI:        dpi,
		Language:   lang,
		NoClean:    noClean,
		DetectOnly: detectOnly,
	}
	if len(args) == 2 {
		cfg.OutputPath = args[1]
	}
	if s := strings.TrimSpace(headers); s != "" {
		for _, p := range strings.Split(s, ",") {
			if v := strings.TrimSpace(p); v != "" {
				cfg.HeaderPatterns = append(cfg.HeaderPatterns, v)
			}
		}
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("config file")
			os.Exit(1)
		}
		set := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		cfg = fc.Apply(cfg, set)
	}

	normalized, err := ocr.NormalizeLanguage(cfg.Language)
	if err != nil {
		log.Error().Err(err).Msg("invalid language")
		os.Exit(1)
	}
	cfg.Language = normalized

	if cfg.OutputPath == "" {
		cfg.OutputPath = app.DefaultOutputPath(cfg.InputPath)
	}

	log.Info().Str("input", cfg.InputPath).Str("output", cfg.OutputPath).Msg("pdftext")

	if err := app.CheckDependencies(cfg); err != nil {
		log.Error().Err(err).Msg("dependency check failed")
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	ctx := context.Background()
	return app.New(cfg).Run(ctx)
}
