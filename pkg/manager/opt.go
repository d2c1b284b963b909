package manager

import (
	// Packages
	log "github.com/charmbracelet/log"
	wpmcp "github.com/mutablelogic/go-wpmcp"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a functional option for configuring a manager
type Opt func(*Manager) error

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithContent sets the content service client
func WithContent(content ContentAPI) Opt {
	return func(m *Manager) error {
		if content == nil {
			return wpmcp.ErrBadParameter.With("content client is required")
		}
		m.content = content
		return nil
	}
}

// WithGenerator sets the generator. A nil generator is ignored.
func WithGenerator(generator wpmcp.Generator) Opt {
	return func(m *Manager) error {
		if generator != nil {
			m.generator = generator
		}
		return nil
	}
}

// WithTracer sets the tracer used for a span per operation
func WithTracer(tracer trace.Tracer) Opt {
	return func(m *Manager) error {
		m.tracer = tracer
		return nil
	}
}

// WithLogger sets the logger
func WithLogger(logger *log.Logger) Opt {
	return func(m *Manager) error {
		if logger == nil {
			return wpmcp.ErrBadParameter.With("logger is required")
		}
		m.logger = logger
		return nil
	}
}
