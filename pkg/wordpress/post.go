package wordpress

import (
	"context"
	"net/http"
	"strconv"

	// Packages
	client "github.com/mutablelogic/go-client"
	wpmcp "github.com/mutablelogic/go-wpmcp"
	opt "github.com/mutablelogic/go-wpmcp/pkg/opt"
	schema "github.com/mutablelogic/go-wpmcp/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListPosts returns a page of posts, filtered by status and search term
func (c *Client) ListPosts(ctx context.Context, opts ...opt.Opt) ([]schema.Post, error) {
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	var response []schema.Post
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("posts"), client.OptQuery(o.Query(opt.KeyPerPage, opt.KeyPage, opt.KeyStatus, opt.KeySearch))); err != nil {
		return nil, remoteErr(err)
	}
	return response, nil
}

// GetPost returns a post by identifier
func (c *Client) GetPost(ctx context.Context, id uint64) (*schema.Post, error) {
	if id == 0 {
		return nil, wpmcp.ErrBadParameter.With("missing post id")
	}

	var response schema.Post
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("posts", strconv.FormatUint(id, 10))); err != nil {
		return nil, remoteErr(err)
	}
	return &response, nil
}

// CreatePost creates a post, as a draft unless another status is given
func (c *Client) CreatePost(ctx context.Context, req schema.PostRequest) (*schema.Post, error) {
	if req.Status == "" {
		req.Status = schema.StatusDraft
	}

	payload, err := client.NewJSONRequest(req)
	if err != nil {
		return nil, err
	}

	var response schema.Post
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("posts")); err != nil {
		return nil, remoteErr(err)
	}
	return &response, nil
}

// UpdatePost changes only the fields which are set in req
func (c *Client) UpdatePost(ctx context.Context, id uint64, req schema.UpdatePostRequest) (*schema.Post, error) {
	if id == 0 {
		return nil, wpmcp.ErrBadParameter.With("missing post id")
	} else if req.IsEmpty() {
		return nil, wpmcp.ErrBadParameter.With("nothing to update")
	}

	payload, err := client.NewJSONRequestEx(http.MethodPut, req, client.ContentTypeJson)
	if err != nil {
		return nil, err
	}

	var response schema.Post
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("posts", strconv.FormatUint(id, 10))); err != nil {
		return nil, remoteErr(err)
	}
	return &response, nil
}

// DeletePost moves a post to the trash, or deletes it permanently
// with the force option
func (c *Client) DeletePost(ctx context.Context, id uint64, opts ...opt.Opt) (*schema.DeletedPost, error) {
	if id == 0 {
		return nil, wpmcp.ErrBadParameter.With("missing post id")
	}
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	var response schema.DeletedPost
	if err := c.DoWithContext(ctx, client.MethodDelete, &response, client.OptPath("posts", strconv.FormatUint(id, 10)), client.OptQuery(o.Query(opt.KeyForce))); err != nil {
		return nil, remoteErr(err)
	}

	// A permanent delete returns the post as it was
	if response.Deleted && response.Previous != nil {
		response.Post = *response.Previous
	}
	return &response, nil
}
