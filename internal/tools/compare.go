package tools

import (
	"context"
	"encoding/json"

	"github.com/acoyfellow/doclint/internal/core/domain"
	"github.com/acoyfellow/doclint/internal/ports"
	"github.com/mark3labs/mcp-go/mcp"
)

// CompareTool exposes the alignment engine as the "compare" operation.
type CompareTool struct {
	comparator ports.AlignmentComparator
	logger     ports.Logger
}

// NewCompareTool creates the compare tool around an alignment comparator.
func NewCompareTool(comparator ports.AlignmentComparator, logger ports.Logger) *CompareTool {
	return &CompareTool{
		comparator: comparator,
		logger:     logger,
	}
}

// Handle returns the MCP tool definition.
func (t *CompareTool) Handle() mcp.Tool {
	return mcp.NewTool("compare",
		mcp.WithDescription("Compare an extracted documentation understanding against the intended behavior and score their alignment across six fixed dimensions"),
		mcp.WithObject("extracted",
			mcp.Required(),
			mcp.Description("Extraction record, typically produced by the lint tool: a wrapper object holding an 'extraction' sub-object"),
		),
		mcp.WithObject("intended",
			mcp.Required(),
			mcp.Description("Author-authored record of the intended behavior, keyed by dimension"),
		),
	)
}

// Handler runs one comparison. Missing or non-object arguments are tool
// errors; structurally odd but present objects degrade inside the engine.
func (t *CompareTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	extracted, ok := args["extracted"].(map[string]any)
	if !ok {
		return mcp.NewToolResultError("compare requires an 'extracted' object argument"), nil
	}
	intended, ok := args["intended"].(map[string]any)
	if !ok {
		return mcp.NewToolResultError("compare requires an 'intended' object argument"), nil
	}

	result := t.comparator.Compare(ctx, domain.Record(extracted), domain.Record(intended))

	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		t.logger.Error("Failed to serialize alignment result", "error", err)
		return mcp.NewToolResultError("failed to serialize alignment result: " + err.Error()), nil
	}

	return mcp.NewToolResultText(string(payload)), nil
}
