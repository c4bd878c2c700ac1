// Command mdfw converts Markdown files into styled text runs.
//
// Usage:
//
//	mdfw [flags] pattern ...
//
// Each pattern is a doublestar glob (e.g. docs/**/*.md). Matched files are
// converted and emitted as JSON conversion plans — the element text plus
// the ordered range instructions a host-side plugin replays into its
// document. With -preview the conversions render to the terminal instead.
//
// Flags:
//
//	-preview       render conversions to the terminal instead of writing plans
//	-width int     preview width in columns (default 80)
//	-batch path    read a JSON batch request instead of globbing ("-" = stdin)
//	-styles path   YAML style sheet overriding the built-in styles
//	-out dir       directory for emitted plans (default ".")
//	-verbose       debug logging
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	mdfw "github.com/kocheck/MarkDown-For-What"
	"github.com/kocheck/MarkDown-For-What/ansi"
	"github.com/kocheck/MarkDown-For-What/goldmark"
	"github.com/kocheck/MarkDown-For-What/importer"
	mdfwjson "github.com/kocheck/MarkDown-For-What/json"
	"github.com/kocheck/MarkDown-For-What/memdoc"
	"github.com/kocheck/MarkDown-For-What/style"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "mdfw: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		preview   = flag.Bool("preview", false, "render conversions to the terminal")
		width     = flag.Int("width", 80, "preview width in columns")
		batchPath = flag.String("batch", "", "read a JSON batch request (\"-\" = stdin)")
		styles    = flag.String("styles", "", "YAML style sheet overriding the built-in styles")
		outDir    = flag.String("out", ".", "directory for emitted plans")
		verbose   = flag.Bool("verbose", false, "debug logging")
	)
	flag.Parse()

	log, err := newLogger(*verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	sheet, err := loadSheet(*styles)
	if err != nil {
		return err
	}

	files, err := collectFiles(*batchPath, flag.Args())
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return mdfw.ErrEmptyBatch
	}

	// The CLI has no live host; conversions run against an in-memory
	// document whose style registry seeds from the sheet.
	im := importer.New(memdoc.New(), memdoc.NewFonts(),
		importer.WithLogger(log),
		importer.WithSheet(sheet),
	)

	for _, f := range files {
		if *preview {
			blocks := goldmark.Extract(importer.StripFrontMatter(f.Content))
			fmt.Printf("── %s ──\n%s\n", f.Name, ansi.Render(blocks, *width))
			continue
		}
		fullText, instrs := im.Convert(f.Content)
		plan, err := mdfwjson.MarshalPlan(importer.BaseName(f.Name), fullText, instrs)
		if err != nil {
			return fmt.Errorf("%s: %w", f.Name, err)
		}
		path := filepath.Join(*outDir, importer.BaseName(f.Name)+".plan.json")
		if err := os.WriteFile(path, plan, 0o644); err != nil {
			return fmt.Errorf("write plan: %w", err)
		}
		log.Debug("plan written", zap.String("file", f.Name), zap.String("plan", path))
	}

	status, err := mdfwjson.MarshalStatus(mdfw.Result{Succeeded: len(files)})
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, string(status))
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return log, nil
}

func loadSheet(path string) (style.Sheet, error) {
	if path == "" {
		return nil, nil
	}
	sheet, err := style.LoadSheet(path)
	if err != nil {
		return nil, err
	}
	return sheet, nil
}
