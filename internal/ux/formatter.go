// Package ux handles output formatting and file path defaults for the
// command layer. Nothing here is imported by the engine packages.
package ux

import (
	"fmt"
	"io"
	"os"

	"github.com/felixgeelhaar/planlint/internal/lint"
	"github.com/felixgeelhaar/planlint/internal/report"
)

// Formatter writes a lint result to an output stream in one format.
type Formatter interface {
	Format(result *lint.Result) error
}

// FormatterOptions contains configuration for formatters
type FormatterOptions struct {
	// Writer is where output is written (defaults to os.Stdout)
	Writer io.Writer
	// NoColor disables colored output for the text formatter
	NoColor bool
	// ArtifactURI names the linted plan document in SARIF output
	ArtifactURI string
}

// NewFormatter creates a formatter based on the format string
func NewFormatter(format string, opts *FormatterOptions) (Formatter, error) {
	if opts == nil {
		opts = &FormatterOptions{}
	}
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	switch format {
	case "json":
		return &JSONFormatter{opts: opts}, nil
	case "sarif":
		return &SARIFFormatter{opts: opts}, nil
	case "text", "":
		return &TextFormatter{opts: opts}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s (supported: text, json, sarif)", format)
	}
}

// TextFormatter writes the human-readable finding listing
type TextFormatter struct {
	opts *FormatterOptions
}

func (f *TextFormatter) Format(result *lint.Result) error {
	_, err := io.WriteString(f.opts.Writer, result.Render(f.opts.NoColor))
	return err
}

// JSONFormatter writes the structured diagnostic list
type JSONFormatter struct {
	opts *FormatterOptions
}

func (f *JSONFormatter) Format(result *lint.Result) error {
	data, err := report.RecordsJSON(result)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = f.opts.Writer.Write(data)
	return err
}

// SARIFFormatter writes a SARIF 2.1.0 document
type SARIFFormatter struct {
	opts *FormatterOptions
}

func (f *SARIFFormatter) Format(result *lint.Result) error {
	doc := report.ToSARIF(result, f.opts.ArtifactURI)
	data, err := doc.ToJSON()
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = f.opts.Writer.Write(data)
	return err
}

// Compile-time verification that formatters implement Formatter
var _ Formatter = (*TextFormatter)(nil)
var _ Formatter = (*JSONFormatter)(nil)
var _ Formatter = (*SARIFFormatter)(nil)
