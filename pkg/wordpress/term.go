package wordpress

import (
	"context"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"
	wpmcp "github.com/mutablelogic/go-wpmcp"
	opt "github.com/mutablelogic/go-wpmcp/pkg/opt"
	schema "github.com/mutablelogic/go-wpmcp/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListCategories returns categories, optionally filtered by a search term
func (c *Client) ListCategories(ctx context.Context, opts ...opt.Opt) ([]schema.Term, error) {
	return c.listTerms(ctx, "categories", opts...)
}

// ListTags returns tags, optionally filtered by a search term
func (c *Client) ListTags(ctx context.Context, opts ...opt.Opt) ([]schema.Term, error) {
	return c.listTerms(ctx, "tags", opts...)
}

// CreateTag creates a new tag
func (c *Client) CreateTag(ctx context.Context, req schema.TermRequest) (*schema.Term, error) {
	if req.Name = strings.TrimSpace(req.Name); req.Name == "" {
		return nil, wpmcp.ErrBadParameter.With("missing tag name")
	}

	payload, err := client.NewJSONRequest(req)
	if err != nil {
		return nil, err
	}

	var response schema.Term
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("tags")); err != nil {
		return nil, remoteErr(err)
	}
	return &response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *Client) listTerms(ctx context.Context, path string, opts ...opt.Opt) ([]schema.Term, error) {
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	var response []schema.Term
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath(path), client.OptQuery(o.Query(opt.KeyPerPage, opt.KeyPage, opt.KeySearch))); err != nil {
		return nil, remoteErr(err)
	}
	return response, nil
}
