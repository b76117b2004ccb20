package processor

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"codeberg.org/snonux/jsontrans/internal"
	"codeberg.org/snonux/jsontrans/internal/archive"
	"codeberg.org/snonux/jsontrans/internal/dictionary"
)

// Translator turns a source record into a translated one
type Translator interface {
	Translate(ctx context.Context, rec dictionary.Record, targetLang string) (dictionary.Record, error)
}

// Config holds everything one pipeline run needs
type Config struct {
	InputFile  string
	OutputFile string
	TargetLang string
	// Concurrency above 1 translates that many records at once.
	// Zero and one mean strictly sequential.
	Concurrency int
	Compact     bool
	Verbose     bool
	Quiet       bool
	DryRun      bool
	// Backup moves an existing output file into the archive directory
	// instead of overwriting it
	Backup bool
}

// Summary describes a finished run
type Summary struct {
	OutputFile string
	Records    int
	Elapsed    time.Duration
	DryRun     bool
}

// Processor runs the translation pipeline
type Processor struct {
	cfg        Config
	translator Translator
	out        io.Writer
	mu         sync.Mutex
}

// NewProcessor creates a new pipeline processor writing progress to out
func NewProcessor(cfg Config, translator Translator, out io.Writer) *Processor {
	if cfg.OutputFile == "" {
		cfg.OutputFile = internal.OutputFileName(cfg.InputFile, cfg.TargetLang)
	}
	if out == nil {
		out = io.Discard
	}
	return &Processor{
		cfg:        cfg,
		translator: translator,
		out:        out,
	}
}

// OutputFile returns the path the translated dictionary is written to
func (p *Processor) OutputFile() string {
	return p.cfg.OutputFile
}

// Run reads the input file, translates every entry and writes the output
// file. Any failure stops the run and no output file is written.
func (p *Processor) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()

	input, err := dictionary.ReadFile(p.cfg.InputFile)
	if err != nil {
		return nil, err
	}

	records := dictionary.Flatten(input)

	if p.cfg.DryRun {
		p.printPlan(records)
		return &Summary{
			OutputFile: p.cfg.OutputFile,
			Records:    len(records),
			Elapsed:    time.Since(start),
			DryRun:     true,
		}, nil
	}

	translated, err := p.ProcessAll(ctx, records)
	if err != nil {
		return nil, err
	}

	output := dictionary.Unflatten(translated)
	if err := checkSameKeys(input, output); err != nil {
		return nil, err
	}

	if p.cfg.Backup {
		archived, err := archive.ArchiveFile(p.cfg.OutputFile)
		if err != nil {
			return nil, err
		}
		if archived != "" {
			p.logf(!p.cfg.Quiet, "Previous output archived to: %s\n", archived)
		}
	}

	if err := dictionary.WriteFile(p.cfg.OutputFile, output, dictionary.WriteOptions{Compact: p.cfg.Compact}); err != nil {
		return nil, err
	}

	return &Summary{
		OutputFile: p.cfg.OutputFile,
		Records:    len(translated),
		Elapsed:    time.Since(start),
	}, nil
}

// ProcessAll translates records in input order. Each translation finishes
// before the next one starts unless Concurrency is above one. The first
// failure aborts the whole batch and no partial result is returned.
func (p *Processor) ProcessAll(ctx context.Context, records []dictionary.Record) ([]dictionary.Record, error) {
	if p.cfg.Concurrency > 1 {
		return p.processConcurrent(ctx, records)
	}

	results := make([]dictionary.Record, 0, len(records))
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		translated, err := p.translateOne(ctx, i, len(records), rec)
		if err != nil {
			return nil, err
		}
		results = append(results, translated)
	}

	return results, nil
}

// processConcurrent keeps at most Concurrency translations in flight.
// Results keep the input order.
func (p *Processor) processConcurrent(ctx context.Context, records []dictionary.Record) ([]dictionary.Record, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Concurrency)

	results := make([]dictionary.Record, len(records))
	for i, rec := range records {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			translated, err := p.translateOne(gctx, i, len(records), rec)
			if err != nil {
				return err
			}
			results[i] = translated
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func (p *Processor) translateOne(ctx context.Context, i, total int, rec dictionary.Record) (dictionary.Record, error) {
	p.logf(!p.cfg.Quiet, "Translating %d/%d: %s\n", i+1, total, rec.Key)

	translated, err := p.translator.Translate(ctx, rec, p.cfg.TargetLang)
	if err != nil {
		return dictionary.Record{}, fmt.Errorf("failed to translate %q (%d/%d): %w", rec.Key, i+1, total, err)
	}

	p.logf(p.cfg.Verbose && !p.cfg.Quiet, "  %q -> %q\n", rec.Value, translated.Value)
	return translated, nil
}

func (p *Processor) printPlan(records []dictionary.Record) {
	p.logf(true, "Dry run: %d entries from %s would be translated to %q\n", len(records), p.cfg.InputFile, p.cfg.TargetLang)
	for i, rec := range records {
		p.logf(p.cfg.Verbose, "  %d. %s: %q\n", i+1, rec.Key, rec.Value)
	}
	p.logf(true, "Output would be written to %s\n", p.cfg.OutputFile)
}

func (p *Processor) logf(enabled bool, format string, args ...any) {
	if !enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, format, args...)
}

// checkSameKeys makes sure translation changed values only
func checkSameKeys(input, output *dictionary.Dictionary) error {
	if input.Len() != output.Len() {
		return fmt.Errorf("translated dictionary has %d keys, source has %d", output.Len(), input.Len())
	}
	for _, key := range input.Keys() {
		if _, ok := output.Get(key); !ok {
			return fmt.Errorf("translated dictionary is missing key %q", key)
		}
	}
	return nil
}
