/*
manager holds the configured content client, generator and taxonomy
resolver, and implements every tool operation on top of them. A single
Manager is constructed at startup and shared by all transports.
*/
package manager

import (
	"context"
	"io"

	// Packages
	log "github.com/charmbracelet/log"
	wpmcp "github.com/mutablelogic/go-wpmcp"
	opt "github.com/mutablelogic/go-wpmcp/pkg/opt"
	schema "github.com/mutablelogic/go-wpmcp/pkg/schema"
	taxonomy "github.com/mutablelogic/go-wpmcp/pkg/taxonomy"
	tool "github.com/mutablelogic/go-wpmcp/pkg/tool"
	trace "go.opentelemetry.io/otel/trace"
	noop "go.opentelemetry.io/otel/trace/noop"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ContentAPI is the content service used by the manager
type ContentAPI interface {
	taxonomy.TermAPI

	// Return the site url
	URL() string

	ListPosts(ctx context.Context, opts ...opt.Opt) ([]schema.Post, error)
	GetPost(ctx context.Context, id uint64) (*schema.Post, error)
	CreatePost(ctx context.Context, req schema.PostRequest) (*schema.Post, error)
	UpdatePost(ctx context.Context, id uint64, req schema.UpdatePostRequest) (*schema.Post, error)
	DeletePost(ctx context.Context, id uint64, opts ...opt.Opt) (*schema.DeletedPost, error)
	UploadMedia(ctx context.Context, filename string, r io.Reader, meta schema.MediaRequest) (*schema.Media, error)
}

type Manager struct {
	content   ContentAPI
	generator wpmcp.Generator
	resolver  *taxonomy.Resolver
	toolkit   *tool.Toolkit
	tracer    trace.Tracer
	logger    *log.Logger
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a manager. A content client is required, a generator is
// optional and without one the generation tools fail as unavailable.
func New(opts ...Opt) (*Manager, error) {
	m := &Manager{
		logger: log.New(io.Discard),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	// Check and set defaults
	if m.content == nil {
		return nil, wpmcp.ErrBadParameter.With("content client is required")
	}
	if m.tracer == nil {
		m.tracer = noop.NewTracerProvider().Tracer("")
	}
	m.resolver = taxonomy.New(m.content, taxonomy.WithLogger(m.logger))

	// Register the tools
	if toolkit, err := tool.NewToolkit(m.tools()...); err != nil {
		return nil, err
	} else {
		m.toolkit = toolkit
	}

	// Return success
	return m, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Toolkit returns the registry of tools, used for both listing and dispatch
func (m *Manager) Toolkit() *tool.Toolkit {
	return m.toolkit
}

// URL returns the url of the content site
func (m *Manager) URL() string {
	return m.content.URL()
}

// Available returns true if generation tools can be used
func (m *Manager) Available() bool {
	return m.generator != nil && m.generator.Available()
}

// Provider returns the name of the generator, or empty string
func (m *Manager) Provider() string {
	if m.generator == nil {
		return ""
	}
	return m.generator.Name()
}

// CallTool runs a tool by name
func (m *Manager) CallTool(ctx context.Context, name string, input []byte) (any, error) {
	return m.toolkit.Run(ctx, name, input)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// checkGenerator fails fast before any content is read or written
func (m *Manager) checkGenerator() error {
	if m.generator == nil {
		return wpmcp.ErrProviderUnavailable.With("no generator configured")
	} else if !m.generator.Available() {
		return wpmcp.ErrProviderUnavailable.Withf("%s: missing api key", m.generator.Name())
	}
	return nil
}
