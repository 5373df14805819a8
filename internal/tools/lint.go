package tools

import (
	"context"
	"encoding/json"

	"github.com/acoyfellow/doclint/internal/lint"
	"github.com/acoyfellow/doclint/internal/ports"
	"github.com/mark3labs/mcp-go/mcp"
)

// LintTool exposes the extraction proxy as the "lint" operation. A nil
// linter keeps the tool registered but failing with a configuration hint,
// so the tool list is stable whether or not a credential is present.
type LintTool struct {
	linter *lint.Linter
	logger ports.Logger
}

// NewLintTool creates the lint tool. linter may be nil when no API key is
// configured.
func NewLintTool(linter *lint.Linter, logger ports.Logger) *LintTool {
	return &LintTool{
		linter: linter,
		logger: logger,
	}
}

// Handle returns the MCP tool definition.
func (t *LintTool) Handle() mcp.Tool {
	return mcp.NewTool("lint",
		mcp.WithDescription("Extract a structured, confidence-scored understanding of free-form tool documentation"),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("The documentation text to lint"),
		),
		mcp.WithString("name",
			mcp.Description("Name of the documented tool, recorded as provenance"),
		),
	)
}

// Handler runs one extraction. Upstream and parse failures surface as
// error-flagged results and are never retried.
func (t *LintTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if t.linter == nil {
		return mcp.NewToolResultError("lint is unavailable: OPENROUTER_API_KEY is not set"), nil
	}

	content, err := request.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError("lint requires a 'content' string argument"), nil
	}
	name := request.GetString("name", "")

	record, err := t.linter.Lint(ctx, content, name)
	if err != nil {
		t.logger.Error("Lint failed", "tool_name", name, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	payload, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		t.logger.Error("Failed to serialize extraction record", "error", err)
		return mcp.NewToolResultError("failed to serialize extraction record: " + err.Error()), nil
	}

	return mcp.NewToolResultText(string(payload)), nil
}
