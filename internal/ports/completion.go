package ports

import "context"

// Completer defines the interface for the language-model collaborator the
// lint path delegates to. One call per invocation, no retries; cancellation
// propagates through the context.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
