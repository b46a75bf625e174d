// Package app holds the use cases that sit between the CLI/MCP surfaces
// and the service layer: request validation, configuration merging, and
// output dispatch, mirroring this repository's ancestor's app package.
package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ludo-technologies/halide/domain"
	svc "github.com/ludo-technologies/halide/service"
)

// DetectUseCase orchestrates a single clone-detection invocation: load
// configuration, run detection, format and write the result.
type DetectUseCase struct {
	service      domain.DetectionService
	formatter    domain.DetectionFormatter
	configLoader domain.DetectionConfigLoader
	output       domain.ReportWriter
}

// NewDetectUseCase creates a DetectUseCase with the given dependencies.
func NewDetectUseCase(
	service domain.DetectionService,
	formatter domain.DetectionFormatter,
	configLoader domain.DetectionConfigLoader,
) *DetectUseCase {
	return &DetectUseCase{
		service:      service,
		formatter:    formatter,
		configLoader: configLoader,
		output:       svc.NewFileOutputWriter(nil),
	}
}

// Execute runs detection for req and writes the formatted result to
// req.OutputPath (if set) or req.OutputWriter.
func (uc *DetectUseCase) Execute(ctx context.Context, req domain.DetectRequest) error {
	if len(req.Paths) == 0 {
		return domain.NewUserInputError("no paths specified for clone detection")
	}

	if err := uc.loadConfig(&req); err != nil {
		return err
	}

	result, err := uc.service.Detect(ctx, &req)
	if err != nil {
		return err
	}

	if !req.HasValidOutputWriter() && req.OutputPath == "" {
		req.OutputPath = defaultTimestampedOutputPath()
	}

	var out io.Writer
	if req.OutputPath == "" {
		out = req.OutputWriter
	}

	if err := uc.output.Write(out, req.OutputPath, req.OutputFormat, func(w io.Writer) error {
		return uc.formatter.Format(result, req.OutputFormat, w)
	}); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

// ExecuteAndReturn runs detection for req and returns the result without
// formatting it, for callers (such as the MCP handler) that need the
// structured DetectionResult rather than rendered bytes.
func (uc *DetectUseCase) ExecuteAndReturn(ctx context.Context, req domain.DetectRequest) (*domain.DetectionResult, error) {
	if len(req.Paths) == 0 {
		return nil, domain.NewUserInputError("no paths specified for clone detection")
	}
	if err := uc.loadConfig(&req); err != nil {
		return nil, err
	}
	return uc.service.Detect(ctx, &req)
}

// loadConfig resolves req.ConfigPath through uc.configLoader and folds the
// result into req.IodineOverrides, with any field the caller already set on
// IodineOverrides (the CLI-flag layer) taking precedence — mirroring the
// teacher's CloneUseCase.Execute, which loads via uc.configLoader before
// merging in the request's own values.
func (uc *DetectUseCase) loadConfig(req *domain.DetectRequest) error {
	loaded, err := uc.configLoader.Load(req.ConfigPath)
	if err != nil {
		return err
	}

	merged := loaded
	if req.IodineOverrides != nil {
		if req.IodineOverrides.MinNodes != 0 {
			merged.MinNodes = req.IodineOverrides.MinNodes
		}
		if req.IodineOverrides.MaxHoles != 0 {
			merged.MaxHoles = req.IodineOverrides.MaxHoles
		}
		if req.IodineOverrides.HoleMassLimit != 0 {
			merged.HoleMassLimit = req.IodineOverrides.HoleMassLimit
		}
		if req.IodineOverrides.HolesAtLeast {
			merged.HolesAtLeast = true
		}
	}
	req.IodineOverrides = &merged
	req.ConfigPath = ""
	return nil
}

// defaultTimestampedOutputPath returns clones_YYYYMMDD_HHMMSS.json in the
// current directory, the CLI's default output destination (spec §C.3) when
// neither --output nor an explicit writer is given.
func defaultTimestampedOutputPath() string {
	return fmt.Sprintf("clones_%s.json", time.Now().Format("20060102_150405"))
}

// DetectUseCaseBuilder builds a DetectUseCase from its dependencies,
// mirroring this repository's ancestor's builder-style use case
// construction.
type DetectUseCaseBuilder struct {
	service      domain.DetectionService
	formatter    domain.DetectionFormatter
	configLoader domain.DetectionConfigLoader
	output       domain.ReportWriter
}

// NewDetectUseCaseBuilder creates a new builder.
func NewDetectUseCaseBuilder() *DetectUseCaseBuilder {
	return &DetectUseCaseBuilder{}
}

func (b *DetectUseCaseBuilder) WithService(service domain.DetectionService) *DetectUseCaseBuilder {
	b.service = service
	return b
}

func (b *DetectUseCaseBuilder) WithFormatter(formatter domain.DetectionFormatter) *DetectUseCaseBuilder {
	b.formatter = formatter
	return b
}

func (b *DetectUseCaseBuilder) WithConfigLoader(configLoader domain.DetectionConfigLoader) *DetectUseCaseBuilder {
	b.configLoader = configLoader
	return b
}

func (b *DetectUseCaseBuilder) WithOutputWriter(output domain.ReportWriter) *DetectUseCaseBuilder {
	b.output = output
	return b
}

// Build constructs the DetectUseCase, defaulting any dependency the caller
// did not set to this repository's standard service-layer implementation.
func (b *DetectUseCaseBuilder) Build() (*DetectUseCase, error) {
	if b.service == nil {
		b.service = svc.NewDetectionService()
	}
	if b.formatter == nil {
		b.formatter = svc.NewDetectionFormatter()
	}
	if b.configLoader == nil {
		b.configLoader = svc.NewIodineConfigLoader()
	}

	uc := NewDetectUseCase(b.service, b.formatter, b.configLoader)
	if b.output != nil {
		uc.output = b.output
	}
	return uc, nil
}
