// Package app runs one files-to-prompt invocation from a resolved config
package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bethropolis/files-to-prompt/internal/config"
	"github.com/bethropolis/files-to-prompt/internal/logger"
	"github.com/bethropolis/files-to-prompt/internal/printer"
	"github.com/bethropolis/files-to-prompt/internal/setup"
	"github.com/bethropolis/files-to-prompt/internal/summary"
	"github.com/bethropolis/files-to-prompt/internal/walker"
	"github.com/fatih/color"
)

// App encapsulates the main application functionality
type App struct {
	cfg    *config.Config
	log    logger.Interface
	zap    *logger.ZapLogger
	stdout io.Writer
	stderr io.Writer

	// Output is where documents are written; set by Run
	Output io.Writer
	file   *os.File
}

// New creates a new App instance. Documents go to stdout unless an output
// file is configured; diagnostics always go to stderr.
func New(cfg *config.Config, stdout, stderr io.Writer) *App {
	// Configure color globally
	color.NoColor = !cfg.UseColors

	a := &App{
		cfg:    cfg,
		stdout: stdout,
		stderr: stderr,
	}

	if cfg.LogFormat == config.LogFormatJSON {
		a.zap = logger.NewZap(stderr, cfg.Level())
		a.log = a.zap
	} else {
		a.log = logger.New(stderr, cfg.Verbose, cfg.UseColors).WithLevel(cfg.Level())
	}
	return a
}

// Run validates every input path, then emits each one in order
func (a *App) Run() (err error) {
	startTime := time.Now()
	defer func() {
		if a.zap != nil {
			_ = a.zap.Sync()
		}
	}()

	a.log.Debug("Paths: %v", a.cfg.Paths)
	a.log.Debug("Output format: %s", a.cfg.Format())
	a.log.Debug("Color output: %v", a.cfg.UseColors)
	a.log.Debug("Ignore settings: hidden=%v, gitignore=%v, strict=%v",
		!a.cfg.IncludeHidden, !a.cfg.IgnoreGitignore, a.cfg.StrictGitignore)

	// A missing path aborts before anything is written or truncated
	for _, path := range a.cfg.Paths {
		if err := walker.Exists(path); err != nil {
			return err
		}
	}

	if err := a.openOutput(); err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(); err == nil {
			err = cerr
		}
	}()

	store, walkOptions := setup.ConfigureWalker(a.cfg, a.log)

	p := printer.New().WithOutput(a.Output).WithFormat(a.cfg.Format())
	if err := p.Start(len(a.cfg.Paths) > 0); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	emit := func(path, content string) error {
		a.log.Debug("Emitting %s (%d bytes)", path, len(content))
		return p.PrintFile(path, content)
	}

	var skippedItems []walker.SkippedItem
	for _, path := range a.cfg.Paths {
		a.log.Info("Scanning %s", path)
		skipped, err := walker.Walk(path, store, emit, walkOptions...)
		skippedItems = append(skippedItems, skipped...)
		if err != nil {
			return err
		}
	}

	if err := p.Finalize(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	summary.DisplayResults(a.log, p.GetCount(), time.Since(startTime))

	if a.cfg.ShowSkipped {
		if err := summary.DisplaySkippedItems(a.log, skippedItems, a.stderr); err != nil {
			return fmt.Errorf("writing skipped items: %w", err)
		}
	}
	return nil
}

// openOutput creates or truncates the output file, or falls back to stdout
func (a *App) openOutput() error {
	if a.cfg.OutputFile == "" {
		a.Output = a.stdout
		return nil
	}

	file, err := os.Create(a.cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	a.log.Debug("Writing output to %s", a.cfg.OutputFile)
	a.file = file
	a.Output = file
	return nil
}

// Close closes the output file, if one was opened
func (a *App) Close() error {
	if a.file == nil {
		return nil
	}
	err := a.file.Close()
	a.file = nil
	if err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	return nil
}
