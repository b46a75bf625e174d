package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ludo-technologies/halide/domain"
)

// FileOutputWriter writes a rendered report to a file or an arbitrary
// writer, printing a status line to stderr when it wrote to a file.
type FileOutputWriter struct {
	status io.Writer
}

// NewFileOutputWriter creates a FileOutputWriter. A nil status writer
// defaults to os.Stderr, matching this repository's ancestor's CLI status
// messages.
func NewFileOutputWriter(status io.Writer) *FileOutputWriter {
	if status == nil {
		status = os.Stderr
	}
	return &FileOutputWriter{status: status}
}

// Write implements domain.ReportWriter.
func (w *FileOutputWriter) Write(writer io.Writer, outputPath string, format domain.OutputFormat, writeFunc func(io.Writer) error) error {
	out := writer
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file %s: %w", outputPath, err)
		}
		defer file.Close()
		out = file
	}

	if err := writeFunc(out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if outputPath != "" {
		absPath, err := filepath.Abs(outputPath)
		if err != nil {
			absPath = outputPath
		}
		fmt.Fprintf(w.status, "%s report written: %s\n", strings.ToUpper(string(format)), absPath)
	}

	return nil
}
