// Package lint implements the extraction proxy: it formats a prompt around
// caller-supplied documentation text, delegates to a language-model
// collaborator, and parses the reply into an extraction record with
// provenance metadata. It performs no comparison of its own.
package lint

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/acoyfellow/doclint/internal/core/domain"
	"github.com/acoyfellow/doclint/internal/ports"
)

const defaultToolName = "unknown_tool"

// UpstreamError reports a failed delegate call. It is never retried.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream model call failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ParseError reports a delegate reply that could not be interpreted as the
// expected structure, even after best-effort recovery.
type ParseError struct {
	Reply string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse model reply as extraction JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Linter delegates documentation text to a completer and shapes the reply
// into an extraction record.
type Linter struct {
	completer ports.Completer
	logger    ports.Logger
	now       func() time.Time
}

// NewLinter creates a new Linter around the given completer.
func NewLinter(completer ports.Completer, logger ports.Logger) *Linter {
	return &Linter{
		completer: completer,
		logger:    logger,
		now:       time.Now,
	}
}

// Lint extracts a structured understanding of the documentation text. The
// returned record wraps the extraction in an "extraction" sub-object and
// carries provenance at the top level, matching what the compare operation
// expects as its "extracted" argument.
func (l *Linter) Lint(ctx context.Context, content, name string) (domain.Record, error) {
	prompt := buildPrompt(content)

	l.logger.Debug("Delegating documentation extraction",
		"tool_name", name,
		"content_length", len(content),
	)

	reply, err := l.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}

	extraction, err := parseExtraction(reply)
	if err != nil {
		return nil, err
	}

	toolName := name
	if toolName == "" {
		toolName = defaultToolName
	}

	return domain.Record{
		"tool_name":    toolName,
		"evaluated_at": l.now().UTC().Format(time.RFC3339),
		"extraction":   extraction,
	}, nil
}

// parseExtraction interprets the model reply as a JSON object. Strict parse
// first; if that fails, retry once on the first '{' through last '}'
// substring, which tolerates replies wrapped in prose or code fences.
func parseExtraction(reply string) (map[string]any, error) {
	var extraction map[string]any
	strictErr := json.Unmarshal([]byte(reply), &extraction)
	if strictErr == nil {
		return extraction, nil
	}

	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start == -1 || end <= start {
		return nil, &ParseError{Reply: reply, Err: strictErr}
	}

	if err := json.Unmarshal([]byte(reply[start:end+1]), &extraction); err != nil {
		return nil, &ParseError{Reply: reply, Err: err}
	}
	return extraction, nil
}
