/*
taxonomy maps free-text category and tag names onto identifiers known to
the content service. Resolution never fails: names which cannot be
resolved are omitted from the result.
*/
package taxonomy

import (
	"context"
	"io"
	"strings"

	// Packages
	log "github.com/charmbracelet/log"
	opt "github.com/mutablelogic/go-wpmcp/pkg/opt"
	schema "github.com/mutablelogic/go-wpmcp/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// TermAPI is the part of the content service used for resolution
type TermAPI interface {
	ListCategories(ctx context.Context, opts ...opt.Opt) ([]schema.Term, error)
	ListTags(ctx context.Context, opts ...opt.Opt) ([]schema.Term, error)
	CreateTag(ctx context.Context, req schema.TermRequest) (*schema.Term, error)
}

type Resolver struct {
	api    TermAPI
	logger *log.Logger
}

type Opt func(*Resolver)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func New(api TermAPI, opts ...Opt) *Resolver {
	r := &Resolver{
		api:    api,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithLogger reports names which could not be resolved
func WithLogger(logger *log.Logger) Opt {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Resolve returns the identifiers for names, in input order
func (r *Resolver) Resolve(ctx context.Context, names []string, kind schema.TermKind) []uint64 {
	terms := r.ResolveTerms(ctx, names, kind)
	result := make([]uint64, 0, len(terms))
	for _, term := range terms {
		result = append(result, term.ID)
	}
	return result
}

// ResolveTerms returns the terms for names, in input order. Names match
// existing terms case-insensitively. A missing tag is created, a missing
// category is dropped. Any failure for a name drops that name.
func (r *Resolver) ResolveTerms(ctx context.Context, names []string, kind schema.TermKind) []schema.Term {
	result := make([]schema.Term, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name == "" {
			continue
		}
		if term := r.resolve(ctx, name, kind); term != nil {
			result = append(result, *term)
		}
	}
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// resolve a single name, reading the full set of terms each time so that
// a tag created for an earlier name is visible
func (r *Resolver) resolve(ctx context.Context, name string, kind schema.TermKind) *schema.Term {
	var terms []schema.Term
	var err error
	switch kind {
	case schema.Category:
		terms, err = r.api.ListCategories(ctx, opt.WithPerPage(opt.MaxPerPage))
	case schema.Tag:
		terms, err = r.api.ListTags(ctx, opt.WithPerPage(opt.MaxPerPage))
	default:
		r.logger.Warn("unknown taxonomy", "kind", kind, "name", name)
		return nil
	}
	if err != nil {
		r.logger.Warn("taxonomy listing failed", "kind", kind, "name", name, "err", err)
		return nil
	}

	// Match by name
	for _, term := range terms {
		if strings.EqualFold(term.Name, name) {
			return &term
		}
	}

	// Categories are never created
	if kind != schema.Tag {
		r.logger.Debug("category not found", "name", name)
		return nil
	}
	term, err := r.api.CreateTag(ctx, schema.TermRequest{Name: name})
	if err != nil {
		r.logger.Warn("tag creation failed", "name", name, "err", err)
		return nil
	}
	return term
}
