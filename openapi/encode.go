package openapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Format selects the text encoding of a written Document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Output selects where a written Document goes.
type Output string

const (
	OutputFile  Output = "file"
	OutputPrint Output = "print"
)

var (
	ErrUnsupportedFormat = errors.New("openapi: unsupported format")
	ErrUnsupportedOutput = errors.New("openapi: unsupported output")
)

const indent = 4

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// ParseOutput validates an output name.
func ParseOutput(s string) (Output, error) {
	switch o := Output(s); o {
	case OutputFile, OutputPrint:
		return o, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedOutput, s)
}

// MarshalJSON serializes the document to JSON indented by four spaces.
func MarshalJSON(doc *Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// MarshalYAML serializes the document to YAML indented by four spaces.
func MarshalYAML(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Marshal serializes the document in the given format.
func Marshal(doc *Document, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return MarshalJSON(doc)
	case FormatYAML:
		return MarshalYAML(doc)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// Writer emits a finished Document either to "<Filename>.<format>" inside Dir
// or, for OutputPrint, as JSON to Stdout. Printing always uses JSON.
type Writer struct {
	Format   Format
	Output   Output
	Filename string
	Dir      string
	Stdout   io.Writer
}

// Path returns the file the writer targets for OutputFile.
func (w Writer) Path() string {
	name := w.Filename
	if name == "" {
		name = "openapi"
	}
	return filepath.Join(w.Dir, name+"."+string(w.Format))
}

// Write serializes the document fully in memory before touching the
// destination. It returns the written file path, or "" when printing.
func (w Writer) Write(doc *Document) (string, error) {
	switch w.Output {
	case OutputPrint:
		data, err := MarshalJSON(doc)
		if err != nil {
			return "", fmt.Errorf("encode document: %w", err)
		}
		out := w.Stdout
		if out == nil {
			out = os.Stdout
		}
		if _, err := out.Write(data); err != nil {
			return "", fmt.Errorf("print document: %w", err)
		}
		return "", nil

	case OutputFile:
		data, err := Marshal(doc, w.Format)
		if err != nil {
			return "", fmt.Errorf("encode document: %w", err)
		}
		path := w.Path()
		if err := os.WriteFile(path, data, 0644); err != nil {
			return "", fmt.Errorf("write %s: %w", path, err)
		}
		return path, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedOutput, w.Output)
}
