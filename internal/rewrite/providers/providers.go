// File path: internal/rewrite/providers/providers.go

// Package providers holds the concrete text-rewriting backends. A Provider is
// a thin transport: prompt in, rewritten text out. All policy (fallback,
// timeouts, outcome typing) lives one level up in the rewrite package.
package providers

import "context"

// Request is the assembled rewriting prompt.
type Request struct {
	// System is the fixed instruction imposing the institutional register.
	System string
	// Prompt carries the child context summary and the guardian's notes.
	Prompt string
	// MaxTokens bounds the generated output.
	MaxTokens int
}

type Provider interface {
	Rewrite(ctx context.Context, req Request) (string, error)
	Name() string
}
