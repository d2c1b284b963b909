package wpmcp

import (
	"context"

	// Packages
	opt "github.com/mutablelogic/go-wpmcp/pkg/opt"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Generator is the interface implemented by every text generation provider.
// Exactly one generator is active per process.
type Generator interface {
	// Return the provider name
	Name() string

	// Available reports whether the generator was configured with a usable
	// credential. It never makes a network call.
	Available() bool

	// Complete returns raw text for a prompt. Options include a system
	// prompt and a maximum number of tokens.
	Complete(ctx context.Context, prompt string, opts ...opt.Opt) (string, error)

	// CompleteStructured returns raw text which is expected to contain a JSON
	// document with title, content, excerpt, categories and tags. Options
	// include style, tone and language.
	CompleteStructured(ctx context.Context, prompt string, opts ...opt.Opt) (string, error)
}
