package service

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ludo-technologies/depinfer/domain"
	"github.com/ludo-technologies/depinfer/internal/version"
)

// OutputFormat selects how InferenceOutput is rendered.
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
)

// OutputFormatterImpl renders InferenceOutput for CLI consumers.
type OutputFormatterImpl struct{}

// NewOutputFormatter creates a new output formatter.
func NewOutputFormatter() *OutputFormatterImpl {
	return &OutputFormatterImpl{}
}

// inferenceEntryJSON is the JSON-friendly view of one InferenceOutput entry.
type inferenceEntryJSON struct {
	Specifier      string   `json:"specifier"`
	FileImports    []string `json:"file_imports"`
	PackageImports []string `json:"package_imports"`
}

// InferenceResponseJSON wraps an InferenceOutput with the metadata envelope
// this tool's JSON responses carry throughout (version, file path, entries).
type InferenceResponseJSON struct {
	Version  string               `json:"version"`
	FilePath string               `json:"file_path,omitempty"`
	Entries  []inferenceEntryJSON `json:"entries"`
}

func toEntries(output *domain.InferenceOutput) []inferenceEntryJSON {
	specifiers := output.Specifiers()
	entries := make([]inferenceEntryJSON, 0, len(specifiers))
	for _, s := range specifiers {
		info, _ := output.Get(s)
		entries = append(entries, inferenceEntryJSON{
			Specifier:      s,
			FileImports:    info.FileImportsSorted(),
			PackageImports: info.PackageImportsSorted(),
		})
	}
	return entries
}

// WriteInferenceOutput writes output to writer in the requested format.
func (f *OutputFormatterImpl) WriteInferenceOutput(output *domain.InferenceOutput, filePath string, format OutputFormat, writer io.Writer) error {
	switch format {
	case OutputFormatJSON:
		response := InferenceResponseJSON{
			Version:  version.GetVersion(),
			FilePath: filePath,
			Entries:  toEntries(output),
		}
		return WriteJSON(writer, response)
	default:
		return f.writeText(output, writer)
	}
}

func (f *OutputFormatterImpl) writeText(output *domain.InferenceOutput, writer io.Writer) error {
	for _, s := range output.Specifiers() {
		info, _ := output.Get(s)
		fmt.Fprintf(writer, "%s\n", s)
		for _, fi := range info.FileImportsSorted() {
			fmt.Fprintf(writer, "  file:    %s\n", fi)
		}
		for _, pi := range info.PackageImportsSorted() {
			fmt.Fprintf(writer, "  package: %s\n", pi)
		}
	}
	return nil
}

// WriteCollected writes a plain sorted list of raw specifiers, one per
// line, for the `collect` subcommand (JSON mode emits a JSON array).
func (f *OutputFormatterImpl) WriteCollected(specifiers []string, format OutputFormat, writer io.Writer) error {
	if format == OutputFormatJSON {
		return WriteJSON(writer, specifiers)
	}
	for _, s := range specifiers {
		fmt.Fprintf(writer, "%s\n", s)
	}
	return nil
}

// WriteJSON writes data as indented JSON to writer.
func WriteJSON(writer io.Writer, data interface{}) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
