package llm

import "context"

// Completer is the text-completion collaborator: one system instruction plus
// one user payload in, free-form text out. Implementations are expected to
// bias toward determinism (low temperature); the caller still treats the
// output as untrusted until it passes schema validation.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}
