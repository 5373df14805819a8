// Package tools exposes the lint and compare operations over the MCP tool
// surface. Tool failures are returned as error-flagged results with a
// human-readable message; they never crash the host process.
package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool pairs an MCP tool definition with its handler.
type Tool interface {
	Handle() mcp.Tool
	Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
}
