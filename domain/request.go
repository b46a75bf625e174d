package domain

import "io"

// DetectRequest is the input to the detection service: one or two sets of
// repository paths to scan, the algorithm to run, the Iodine thresholds
// (ignored by Oxygen/Chlorine), and where to send the result.
type DetectRequest struct {
	// Paths are the root paths of the first (or only) repository.
	Paths []string
	// SecondRepoPaths, if non-empty, names a second repository — required
	// for Chlorine/Iodine two-repo runs, forbidden otherwise.
	SecondRepoPaths []string

	Algorithm AlgorithmID

	Recursive       bool
	IncludePatterns []string
	ExcludePatterns []string

	ConfigPath string

	// IodineOverrides, if non-nil, takes precedence over the env/file/default
	// merge performed while loading Iodine's thresholds — the CLI-flag layer
	// of the spec's CLI flag > env > file > default precedence chain.
	IodineOverrides *IodineThresholds

	OutputFormat OutputFormat
	OutputPath   string
	OutputWriter io.Writer
}

// DefaultDetectRequest returns a DetectRequest with the engine's usual
// defaults: recursive scan, JSON output format, Oxygen as the algorithm.
// It sets no output destination (neither OutputPath nor OutputWriter).
func DefaultDetectRequest() DetectRequest {
	return DetectRequest{
		Algorithm:    AlgorithmOxygen,
		Recursive:    true,
		OutputFormat: OutputFormatJSON,
	}
}

// RepoCount reports how many repositories this request spans (1 or 2),
// the dimension the runner's dispatch table keys on (spec §4.8).
func (r DetectRequest) RepoCount() int {
	if len(r.SecondRepoPaths) > 0 {
		return 2
	}
	return 1
}

// HasValidOutputWriter reports whether OutputWriter is usable, mirroring
// the check this repository's ancestor's use cases run before formatting.
func (r DetectRequest) HasValidOutputWriter() bool {
	return r.OutputWriter != nil
}
