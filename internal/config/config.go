package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bethropolis/files-to-prompt/internal/logger"
	"github.com/bethropolis/files-to-prompt/internal/printer"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

// Version is overridden at build time with -ldflags "-X ...config.Version=..."
var Version = "0.1.0"

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

var (
	// ErrNoPaths is returned when no input path was given
	ErrNoPaths = errors.New("at least one path is required")
	// ErrFormatConflict is returned when more than one output format is selected
	ErrFormatConflict = errors.New("only one of --cxml, --markdown and --json may be set")
)

// Config holds all application configuration settings
type Config struct {
	Paths []string

	// Filtering settings
	Extensions      []string
	IncludeHidden   bool
	IgnoreGitignore bool
	StrictGitignore bool
	IgnorePatterns  []string
	MaxFileSizeMB   int64

	// Output settings
	OutputFile  string
	CXML        bool
	Markdown    bool
	JSON        bool
	ShowSkipped bool

	// Logging settings
	Verbose   bool
	LogLevel  string
	LogFormat string
	NoColor   bool
	UseColors bool
}

// New creates a Config with default values
func New() *Config {
	return &Config{
		LogFormat: LogFormatText,
	}
}

// BindFlags registers every command-line flag on fs
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringArrayVarP(&c.Extensions, "extension", "e", nil, "Only include files with these extensions (repeatable)")
	fs.BoolVar(&c.IncludeHidden, "include-hidden", false, "Include files and folders starting with .")
	fs.BoolVar(&c.IgnoreGitignore, "ignore-gitignore", false, "Ignore .gitignore files and include all files")
	fs.BoolVar(&c.StrictGitignore, "strict-gitignore", false, "Apply full .gitignore semantics, scoped to the declaring directory")
	fs.StringArrayVar(&c.IgnorePatterns, "ignore", nil, "Ignore files matching these patterns (repeatable)")
	fs.Int64Var(&c.MaxFileSizeMB, "max-size", 0, "Skip files larger than this many MB found by recursion (0 = no limit)")

	fs.StringVarP(&c.OutputFile, "output", "o", "", "Output to a file instead of stdout")
	fs.BoolVarP(&c.CXML, "cxml", "c", false, "Output in XML-ish format suitable for Claude's long context window")
	fs.BoolVarP(&c.Markdown, "markdown", "m", false, "Output each file as a fenced Markdown code block")
	fs.BoolVar(&c.JSON, "json", false, "Output a JSON array of {path, content} objects")
	fs.BoolVar(&c.ShowSkipped, "show-skipped", false, "Show a list of skipped files/directories and reasons at the end")

	fs.BoolVarP(&c.Verbose, "verbose", "v", false, "Enable debug diagnostics")
	fs.StringVar(&c.LogLevel, "log-level", "", "Set the diagnostic level (debug, info, warn, error, none)")
	fs.StringVar(&c.LogFormat, "log-format", LogFormatText, "Diagnostic format (text, json)")
	fs.BoolVar(&c.NoColor, "no-color", false, "Disable color in diagnostics")
}

// Finalize stores the positional paths, normalizes values and validates
// the combination of flags. diag is the diagnostic writer, used to decide
// whether colors are wanted.
func (c *Config) Finalize(args []string, diag io.Writer) error {
	if len(args) == 0 {
		return ErrNoPaths
	}
	c.Paths = append([]string(nil), args...)
	c.Extensions = normalizeExtensions(c.Extensions)

	selected := 0
	for _, on := range []bool{c.CXML, c.Markdown, c.JSON} {
		if on {
			selected++
		}
	}
	if selected > 1 {
		return ErrFormatConflict
	}

	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	switch c.LogFormat {
	case "":
		c.LogFormat = LogFormatText
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("unknown log format %q (want %s or %s)", c.LogFormat, LogFormatText, LogFormatJSON)
	}

	if c.MaxFileSizeMB < 0 {
		return fmt.Errorf("max-size must not be negative, got %d", c.MaxFileSizeMB)
	}

	c.UseColors = !c.NoColor && c.LogFormat == LogFormatText && isTerminal(diag)
	return nil
}

// Format returns the selected output layout
func (c *Config) Format() printer.Format {
	switch {
	case c.CXML:
		return printer.FormatCXML
	case c.Markdown:
		return printer.FormatMarkdown
	case c.JSON:
		return printer.FormatJSON
	default:
		return printer.FormatPlain
	}
}

// Level resolves --log-level and --verbose; the explicit level wins
func (c *Config) Level() logger.LogLevel {
	if c.LogLevel != "" {
		return logger.ParseLevel(c.LogLevel)
	}
	if c.Verbose {
		return logger.LevelDebug
	}
	return logger.LevelWarn
}

// MaxFileSizeBytes converts the MB limit to bytes
func (c *Config) MaxFileSizeBytes() int64 {
	return c.MaxFileSizeMB * 1024 * 1024
}

func normalizeExtensions(exts []string) []string {
	seen := make(map[string]struct{}, len(exts))
	var out []string
	for _, ext := range exts {
		clean := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if clean == "" {
			continue
		}
		if _, dup := seen[clean]; dup {
			continue
		}
		seen[clean] = struct{}{}
		out = append(out, clean)
	}
	return out
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
