package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers halide's MCP tools with the server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("detect_clones",
		mcp.WithDescription("Detect exact or approximate Python code clones by comparing abstract syntax trees"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path to the first (or only) repository to analyze")),
		mcp.WithString("second_path",
			mcp.Description("Path to a second repository, required for the iodine algorithm and optional for chlorine")),
		mcp.WithString("algorithm",
			mcp.Description("Detection algorithm: oxygen, chlorine, or iodine (default: oxygen)")),
		mcp.WithBoolean("recursive",
			mcp.Description("Recursively analyze directories (default: true)")),
	), HandleDetectClones)
}
