package utils

import "context"

// CompletionClientInterface abstracts the external LLM completion service.
type CompletionClientInterface interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
