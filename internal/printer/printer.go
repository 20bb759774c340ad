// Package printer handles output formatting and display
//
// The plain and cxml layouts are parsed by downstream tools and must stay
// byte-for-byte stable. File content is written verbatim in every format
// except JSON; nothing is escaped.
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Format selects the output layout for a whole run
type Format int

const (
	// FormatPlain writes "path\n---\ncontent\n---\n" blocks
	FormatPlain Format = iota
	// FormatCXML wraps each file in an indexed <document> element
	FormatCXML
	// FormatMarkdown writes each file as a fenced code block
	FormatMarkdown
	// FormatJSON writes a JSON array of {path, content} objects
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatCXML:
		return "cxml"
	case FormatMarkdown:
		return "markdown"
	case FormatJSON:
		return "json"
	default:
		return "plain"
	}
}

// Printer handles output formatting and writing to the configured output destination
type Printer struct {
	output  io.Writer
	format  Format
	index   int // next document index, cxml numbering starts at 1
	count   int64
	started bool
	wrapped bool
}

// New creates a new Printer with default settings
func New() *Printer {
	return &Printer{
		output: os.Stdout,
		format: FormatPlain,
		index:  1,
	}
}

// WithOutput sets the output destination
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithFormat selects the output layout
func (p *Printer) WithFormat(f Format) *Printer {
	p.format = f
	return p
}

// JSONFileEntry represents a file entry in JSON output
type JSONFileEntry struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// Start writes the opening envelope. For cxml the <documents> element is
// only opened when the run has at least one input path.
func (p *Printer) Start(hasInputs bool) error {
	if p.started {
		return nil
	}
	p.started = true

	switch p.format {
	case FormatCXML:
		if !hasInputs {
			return nil
		}
		p.wrapped = true
		_, err := io.WriteString(p.output, "<documents>\n")
		return err
	case FormatJSON:
		p.wrapped = true
		_, err := io.WriteString(p.output, "[")
		return err
	}
	return nil
}

// PrintFile outputs the content of a file with its path
func (p *Printer) PrintFile(path string, content string) error {
	var err error
	switch p.format {
	case FormatCXML:
		_, err = fmt.Fprintf(p.output,
			"<document index=\"%d\">\n<source>%s</source>\n<document_content>\n%s\n</document_content>\n</document>\n",
			p.index, path, content)
		if err == nil {
			p.index++
		}
	case FormatMarkdown:
		fence := fenceFor(content)
		_, err = fmt.Fprintf(p.output, "file: %s\n\n%s\n%s\n%s\n\n", path, fence, content, fence)
	case FormatJSON:
		err = p.printJSON(path, content)
	default:
		_, err = fmt.Fprintf(p.output, "%s\n---\n%s\n---\n", path, content)
	}
	if err != nil {
		return fmt.Errorf("printer: writing %s: %w", path, err)
	}

	p.count++
	return nil
}

func (p *Printer) printJSON(path, content string) error {
	sep := "\n"
	if p.count > 0 {
		sep = ",\n"
	}

	data, err := json.MarshalIndent(JSONFileEntry{Path: path, Content: content}, "  ", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.output, "%s  %s", sep, data)
	return err
}

// Finalize writes the closing envelope, if Start opened one
func (p *Printer) Finalize() error {
	if !p.wrapped {
		return nil
	}
	p.wrapped = false

	var err error
	switch p.format {
	case FormatCXML:
		_, err = io.WriteString(p.output, "</documents>\n")
	case FormatJSON:
		_, err = io.WriteString(p.output, "\n]\n")
	}
	return err
}

// GetCount returns the number of files printed
func (p *Printer) GetCount() int64 {
	return p.count
}

// NextIndex returns the index the next cxml document will carry
func (p *Printer) NextIndex() int {
	return p.index
}

// fenceFor returns a backtick fence longer than any backtick run in content
func fenceFor(content string) string {
	longest, run := 0, 0
	for _, r := range content {
		if r == '`' {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}
	if longest < 3 {
		return "```"
	}
	return strings.Repeat("`", longest+1)
}
