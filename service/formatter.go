package service

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ludo-technologies/halide/domain"
)

// DetectionFormatter implements domain.DetectionFormatter: JSON is the
// canonical, stable-shape output (spec §6); YAML is an alternative
// rendering for humans reading results on a terminal.
type DetectionFormatter struct{}

// NewDetectionFormatter constructs a DetectionFormatter.
func NewDetectionFormatter() *DetectionFormatter {
	return &DetectionFormatter{}
}

// Format implements domain.DetectionFormatter.
func (f *DetectionFormatter) Format(result *domain.DetectionResult, format domain.OutputFormat, w io.Writer) error {
	switch format {
	case domain.OutputFormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case domain.OutputFormatYAML:
		return formatYAML(result, w)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// formatYAML round-trips through the stable JSON encoding before handing
// off to yaml.v3, so YAML output always reflects exactly the same field
// names, nesting, and origins ordering as the JSON form, rather than
// maintaining a second, divergent struct tag set.
func formatYAML(result *domain.DetectionResult, w io.Writer) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	var generic map[string]interface{}
	if err := json.Unmarshal(data, &generic); err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(generic)
}
