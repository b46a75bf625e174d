package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	mcpsdk "github.com/mark3labs/mcp-go/mcp"

	"github.com/ludo-technologies/halide/app"
	"github.com/ludo-technologies/halide/domain"
)

// HandleDetectClones handles the detect_clones tool: it runs one of the
// three detection algorithms over one or two Python repositories and
// returns the stable JSON result shape.
func HandleDetectClones(ctx context.Context, request mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcpsdk.NewToolResultError("invalid arguments format"), nil
	}

	path, ok := args["path"].(string)
	if !ok {
		return mcpsdk.NewToolResultError("path parameter is required and must be a string"), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return mcpsdk.NewToolResultError(fmt.Sprintf("path does not exist: %s", path)), nil
	}

	algorithm := domain.AlgorithmOxygen
	if a, ok := args["algorithm"].(string); ok && a != "" {
		parsed, err := parseAlgorithmArg(a)
		if err != nil {
			return mcpsdk.NewToolResultError(err.Error()), nil
		}
		algorithm = parsed
	}

	var secondPaths []string
	if sp, ok := args["second_path"].(string); ok && sp != "" {
		if _, err := os.Stat(sp); os.IsNotExist(err) {
			return mcpsdk.NewToolResultError(fmt.Sprintf("second_path does not exist: %s", sp)), nil
		}
		secondPaths = []string{sp}
	}

	recursive := true
	if r, ok := args["recursive"].(bool); ok {
		recursive = r
	}

	req := domain.DefaultDetectRequest()
	req.Paths = []string{path}
	req.SecondRepoPaths = secondPaths
	req.Algorithm = algorithm
	req.Recursive = recursive
	req.OutputWriter = io.Discard

	useCase, err := app.NewDetectUseCaseBuilder().Build()
	if err != nil {
		return mcpsdk.NewToolResultError(fmt.Sprintf("failed to build detect use case: %v", err)), nil
	}

	result, err := useCase.ExecuteAndReturn(ctx, req)
	if err != nil {
		return mcpsdk.NewToolResultError(fmt.Sprintf("clone detection failed: %v", err)), nil
	}

	jsonData, err := json.Marshal(result)
	if err != nil {
		return mcpsdk.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}

	return mcpsdk.NewToolResultText(string(jsonData)), nil
}

func parseAlgorithmArg(s string) (domain.AlgorithmID, error) {
	switch s {
	case "oxygen":
		return domain.AlgorithmOxygen, nil
	case "chlorine":
		return domain.AlgorithmChlorine, nil
	case "iodine":
		return domain.AlgorithmIodine, nil
	default:
		return "", fmt.Errorf("invalid algorithm %q, must be one of: oxygen, chlorine, iodine", s)
	}
}
