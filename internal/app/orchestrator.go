// Package app wires the pipeline together: manifest records in, RST tree
// and index out, one record at a time in manifest order.
package app

import (
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/cdoctools/csphinx-go/internal/config"
	"github.com/cdoctools/csphinx-go/internal/domain"
	"github.com/cdoctools/csphinx-go/internal/manifest"
	"github.com/cdoctools/csphinx-go/internal/output"
	"github.com/cdoctools/csphinx-go/internal/resolver"
	"github.com/cdoctools/csphinx-go/internal/utils"
)

// Orchestrator coordinates documentation generation
type Orchestrator struct {
	config   *config.Config
	logger   *utils.Logger
	loader   *manifest.Loader
	resolver *resolver.Resolver
	writer   *output.Writer
	index    *output.IndexCollector
}

// OrchestratorOptions contains options for creating an orchestrator
type OrchestratorOptions struct {
	Config *config.Config
	// Logger overrides the config-derived logger; used by tests.
	Logger *utils.Logger
}

// NewOrchestrator creates a new orchestrator with the given configuration
func NewOrchestrator(opts OrchestratorOptions) (*Orchestrator, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewLogger(utils.LoggerOptions{
			Level:   cfg.Logging.Level,
			Format:  cfg.Logging.Format,
			Verbose: cfg.Verbose,
			Quiet:   cfg.Quiet,
		})
	}

	return &Orchestrator{
		config: cfg,
		logger: logger,
		loader: manifest.NewLoader(manifest.LoaderOptions{
			SourceRoot: cfg.SourceLocation,
			Exclude:    cfg.ExcludeFilters(),
		}),
		resolver: resolver.New(logger),
		writer: output.NewWriter(output.WriterOptions{
			OutputDir:  cfg.Output.Directory,
			SourceRoot: cfg.SourceLocation,
			DryRun:     cfg.Output.DryRun,
		}),
		index: output.NewIndexCollector(output.CollectorOptions{
			OutputDir: cfg.Output.Directory,
			DryRun:    cfg.Output.DryRun,
		}),
	}, nil
}

// Run executes documentation generation for the configured manifest.
//
// Manifest and output-root failures are fatal. A record whose sources
// cannot be read is logged and skipped; everything else keeps going so one
// unreadable file does not sink the whole run.
func (o *Orchestrator) Run() error {
	startTime := time.Now()

	o.logger.Info().
		Str("manifest", o.config.CompileCommands).
		Str("source_root", o.config.SourceLocation).
		Str("output", o.config.Output.Directory).
		Msg("Starting documentation generation")

	records, err := o.loader.Load(o.config.CompileCommands)
	if err != nil {
		return err
	}

	o.logger.Debug().Int("records", len(records)).Msg("Manifest loaded")

	if err := o.writer.EnsureBaseDir(); err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	if !o.config.Quiet && !o.config.Verbose {
		bar = utils.NewProgressBar(len(records), utils.DescProcessing)
	}

	var processed, skipped int
	for _, record := range records {
		if bar != nil {
			_ = bar.Add(1)
		}

		doc, err := o.resolver.Resolve(record)
		if err != nil {
			if !domain.IsRecoverable(err) {
				return err
			}
			o.logger.Warn().
				Str("file", record.File).
				Err(err).
				Msg("Skipping record")
			skipped++
			continue
		}

		docPath := o.writer.DocumentPath(record)
		if !o.index.Add(docPath) {
			// Another record already produced this document.
			o.logger.Debug().
				Str("document", docPath).
				Msg("Duplicate document target")
			continue
		}

		if err := o.writer.Write(doc); err != nil {
			return err
		}

		o.logger.Info().
			Str("file", record.File).
			Msg("Processed")
		processed++
	}

	if err := o.index.Flush(); err != nil {
		return err
	}

	o.logger.Info().
		Int("processed", processed).
		Int("skipped", skipped).
		Dur("duration", time.Since(startTime)).
		Msg("Documentation generation completed")

	return nil
}
