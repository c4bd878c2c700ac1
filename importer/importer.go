// Package importer matches batches of Markdown source files against named
// elements of a host document and runs the conversion pipeline for each
// match. It is the orchestration layer: matching policy, element
// creation-or-replacement, font loading with fallback, and partial-failure
// accounting all live here.
package importer

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	mdfw "github.com/kocheck/MarkDown-For-What"
	"github.com/kocheck/MarkDown-For-What/style"
)

// Mode selects what happens to files with no matching element.
type Mode string

const (
	// ModeReplace only writes into existing matched elements; files with
	// no match are skipped.
	ModeReplace Mode = "replace"
	// ModeCreate creates a new text element for files with no match, and
	// replaces a differently-typed element that occupies the name.
	ModeCreate Mode = "create"
)

// Suffixes stripped (case-insensitively) from a file name to derive the
// base name used for element matching.
var sourceSuffixes = []string{".md", ".markdown", ".txt"}

// Vertical gap between elements created for unmatched files.
const stackGap = 40

// Importer reconciles source files with a host document.
type Importer struct {
	doc      mdfw.Document
	fonts    mdfw.FontService
	resolver *style.Resolver
	log      *zap.Logger

	mode       Mode
	plainLists bool
	fallback   string
	sheet      style.Sheet
}

// Option configures an Importer.
type Option func(*Importer)

// WithLogger sets the logger. A nil logger silences all output.
func WithLogger(log *zap.Logger) Option {
	return func(im *Importer) {
		im.log = log
	}
}

// WithMode sets the no-match policy. The default is ModeReplace.
func WithMode(mode Mode) Option {
	return func(im *Importer) {
		im.mode = mode
	}
}

// WithPlainListItems degrades list items to their plain text instead of
// resolving bold/italic inside bullets.
func WithPlainListItems() Option {
	return func(im *Importer) {
		im.plainLists = true
	}
}

// WithSheet overrides the default style sheet used to materialize named
// styles on first use.
func WithSheet(sheet style.Sheet) Option {
	return func(im *Importer) {
		im.sheet = sheet
	}
}

// WithFallbackFamily sets the family tried when a configured font cannot
// be loaded. The default is style.DefaultFamily.
func WithFallbackFamily(family string) Option {
	return func(im *Importer) {
		im.fallback = family
	}
}

// New creates an Importer for one host document and font service.
func New(doc mdfw.Document, fonts mdfw.FontService, opts ...Option) *Importer {
	im := &Importer{
		doc:      doc,
		fonts:    fonts,
		mode:     ModeReplace,
		fallback: style.DefaultFamily,
	}
	for _, opt := range opts {
		opt(im)
	}
	if im.log == nil {
		im.log = zap.NewNop()
	}
	im.resolver = style.NewResolver(style.NewRegistry(doc.Styles(), im.sheet))
	return im
}

// Import reconciles and runs a whole batch. An empty batch is an input
// error and aborts before any matching or writes.
func (im *Importer) Import(ctx context.Context, files []mdfw.SourceFile) (mdfw.Result, error) {
	if len(files) == 0 {
		return mdfw.Result{}, mdfw.ErrEmptyBatch
	}
	return im.Run(ctx, im.Reconcile(files)), nil
}

// Reconcile pairs each file with its targets.
//
// With exactly one file and a non-empty selection, the file fans out to
// every selected element. Otherwise matching is name-directed: an element
// matches a file when its name equals the file's full name or the file's
// suffix-stripped base name, and the file pairs with every match. In
// ModeCreate an unmatched file yields a creation task, placed where a
// same-named non-text element stood (displacing it) or stacked below the
// previous creation.
func (im *Importer) Reconcile(files []mdfw.SourceFile) []mdfw.ImportTask {
	var tasks []mdfw.ImportTask

	if len(files) == 1 {
		if sel := im.doc.Selection(); len(sel) > 0 {
			for _, el := range sel {
				tasks = append(tasks, mdfw.ImportTask{File: files[0], Target: el})
			}
			im.log.Debug("selection-directed batch",
				zap.String("file", files[0].Name),
				zap.Int("targets", len(tasks)))
			return tasks
		}
	}

	elements := im.doc.Elements()
	nextAt := mdfw.Position{}

	for _, f := range files {
		base := BaseName(f.Name)

		matched := false
		var displaced mdfw.Element
		for _, el := range elements {
			if el.Name() != f.Name && el.Name() != base {
				continue
			}
			if txt, ok := el.(mdfw.TextElement); ok {
				tasks = append(tasks, mdfw.ImportTask{File: f, Target: txt})
				matched = true
			} else if displaced == nil {
				displaced = el
			}
		}
		if matched {
			continue
		}

		if im.mode != ModeCreate {
			im.log.Debug("no matching targets, skipping", zap.String("file", f.Name))
			continue
		}

		task := mdfw.ImportTask{File: f, Create: true, Index: -1}
		if displaced != nil {
			// A differently-typed element holds the name: the new text
			// element takes its position and sibling index.
			task.Displaced = displaced
			task.At = displaced.Position()
			task.Index = displaced.Index()
		} else {
			task.At = nextAt
			nextAt.Y += stackGap
		}
		tasks = append(tasks, task)
	}
	return tasks
}

// Run executes tasks one at a time, in order. A task's failure is logged
// and counted; the batch continues. The result's Err aggregates per-task
// failures.
func (im *Importer) Run(ctx context.Context, tasks []mdfw.ImportTask) mdfw.Result {
	var res mdfw.Result
	for _, task := range tasks {
		if err := im.runTask(ctx, task); err != nil {
			im.log.Warn("import task failed",
				zap.String("file", task.File.Name),
				zap.Error(err))
			res.Failed++
			res.Err = multierr.Append(res.Err, fmt.Errorf("%s: %w", task.File.Name, err))
			continue
		}
		res.Succeeded++
	}
	im.log.Info("batch complete",
		zap.Int("succeeded", res.Succeeded),
		zap.Int("failed", res.Failed),
		zap.String("outcome", string(res.Outcome())))
	return res
}

func (im *Importer) runTask(ctx context.Context, task mdfw.ImportTask) error {
	target := task.Target
	if target == nil {
		if !task.Create {
			return mdfw.ErrElementGone
		}
		created, err := im.doc.CreateText(ctx, BaseName(task.File.Name), task.At, task.Index)
		if err != nil {
			return fmt.Errorf("create element: %w", err)
		}
		if task.Displaced != nil {
			if err := im.doc.Remove(ctx, task.Displaced); err != nil {
				return fmt.Errorf("displace %q: %w", task.Displaced.Name(), err)
			}
		}
		target = created
	}

	fullText, instrs := im.Convert(task.File.Content)

	instrs, err := im.loadFonts(ctx, instrs)
	if err != nil {
		return err
	}
	if err := target.SetText(ctx, fullText); err != nil {
		return fmt.Errorf("set text: %w", err)
	}
	for _, in := range instrs {
		if err := target.ApplyRange(ctx, in); err != nil {
			return fmt.Errorf("apply range [%d,%d): %w", in.Start, in.End, err)
		}
	}
	return nil
}

// BaseName strips a Markdown or text suffix from a file name,
// case-insensitively. Names without a known suffix are returned unchanged.
func BaseName(name string) string {
	lower := strings.ToLower(name)
	for _, suffix := range sourceSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return name[:len(name)-len(suffix)]
		}
	}
	return name
}
