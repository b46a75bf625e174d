package domain

import "io"

// OutputFormat selects how a DetectionResult is rendered.
type OutputFormat string

const (
	// OutputFormatJSON renders the stable shape defined in spec §6.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatYAML renders the same data as YAML, for humans reading
	// results on a terminal rather than feeding them to another tool.
	OutputFormatYAML OutputFormat = "yaml"
)

// ReportWriter abstracts writing a rendered report to a destination (a file
// or an arbitrary writer). Implementations live in the service layer.
type ReportWriter interface {
	// Write writes formatted content using the provided writeFunc.
	// - If outputPath is non-empty, implementations create/truncate the file
	//   at that path and pass it to writeFunc.
	// - If outputPath is empty, implementations pass writer to writeFunc.
	// Implementations may emit user-facing status messages (e.g. the path
	// the report was written to).
	Write(writer io.Writer, outputPath string, format OutputFormat, writeFunc func(io.Writer) error) error
}
