package manager

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	wpmcp "github.com/mutablelogic/go-wpmcp"
	opt "github.com/mutablelogic/go-wpmcp/pkg/opt"
	schema "github.com/mutablelogic/go-wpmcp/pkg/schema"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultTermsPerPage  = 100
	defaultPostsPerPage  = 10
	defaultSearchPerPage = 10
)

///////////////////////////////////////////////////////////////////////////////
// POSTS

// ListPosts returns a page of posts with any status unless filtered
func (m *Manager) ListPosts(ctx context.Context, req schema.ListPostsArgs) (result []schema.Post, err error) {
	ctx, endSpan := otel.StartSpan(m.tracer, ctx, "ListPosts")
	defer func() { endSpan(err) }()

	if err := oneOf("status", req.Status, schema.FilterStatuses); err != nil {
		return nil, err
	}
	return m.content.ListPosts(ctx,
		opt.WithPerPage(valueOr(req.PerPage, defaultPostsPerPage)),
		opt.WithPage(valueOr(req.Page, 1)),
		opt.WithStatus(stringOr(req.Status, schema.StatusAny)),
	)
}

// SearchPosts returns posts matching a search term
func (m *Manager) SearchPosts(ctx context.Context, req schema.SearchPostsArgs) (result []schema.Post, err error) {
	ctx, endSpan := otel.StartSpan(m.tracer, ctx, "SearchPosts")
	defer func() { endSpan(err) }()

	if strings.TrimSpace(req.Search) == "" {
		return nil, wpmcp.ErrMissingArgument.With("search")
	}
	return m.content.ListPosts(ctx,
		opt.WithSearch(req.Search),
		opt.WithPerPage(valueOr(req.PerPage, defaultSearchPerPage)),
	)
}

// GetPost returns a single post
func (m *Manager) GetPost(ctx context.Context, req schema.GetPostArgs) (result *schema.Post, err error) {
	ctx, endSpan := otel.StartSpan(m.tracer, ctx, "GetPost",
		attribute.Int64("post_id", int64(req.PostID)),
	)
	defer func() { endSpan(err) }()

	if req.PostID == 0 {
		return nil, wpmcp.ErrMissingArgument.With("post_id")
	}
	return m.content.GetPost(ctx, req.PostID)
}

// CreatePost creates a post, as a draft unless another status is given
func (m *Manager) CreatePost(ctx context.Context, req schema.CreatePostArgs) (result *schema.PostResult, err error) {
	ctx, endSpan := otel.StartSpan(m.tracer, ctx, "CreatePost",
		attribute.String("status", req.Status),
	)
	defer func() { endSpan(err) }()

	if strings.TrimSpace(req.Title) == "" {
		return nil, wpmcp.ErrMissingArgument.With("title")
	} else if strings.TrimSpace(req.Content) == "" {
		return nil, wpmcp.ErrMissingArgument.With("content")
	} else if err := oneOf("status", req.Status, schema.PostStatuses); err != nil {
		return nil, err
	}

	post, err := m.content.CreatePost(ctx, schema.PostRequest{
		Title:      req.Title,
		Content:    req.Content,
		Status:     stringOr(req.Status, schema.StatusDraft),
		Excerpt:    req.Excerpt,
		Categories: req.Categories,
		Tags:       req.Tags,
	})
	if err != nil {
		return nil, err
	}

	m.logger.Info("created post", "id", post.ID, "status", post.Status)
	return ptr(schema.NewPostResult(post)), nil
}

// UpdatePost changes the fields which are provided
func (m *Manager) UpdatePost(ctx context.Context, req schema.UpdatePostArgs) (result *schema.Post, err error) {
	ctx, endSpan := otel.StartSpan(m.tracer, ctx, "UpdatePost",
		attribute.Int64("post_id", int64(req.PostID)),
	)
	defer func() { endSpan(err) }()

	if req.PostID == 0 {
		return nil, wpmcp.ErrMissingArgument.With("post_id")
	} else if req.Status != nil && !slices.Contains(schema.PostStatuses, *req.Status) {
		return nil, wpmcp.ErrBadParameter.Withf("status: %q is not one of %s", *req.Status, strings.Join(schema.PostStatuses, ", "))
	}
	return m.content.UpdatePost(ctx, req.PostID, schema.UpdatePostRequest{
		Title:      req.Title,
		Content:    req.Content,
		Excerpt:    req.Excerpt,
		Status:     req.Status,
		Categories: req.Categories,
		Tags:       req.Tags,
	})
}

// DeletePost moves a post to the trash, or deletes it permanently when
// force is set
func (m *Manager) DeletePost(ctx context.Context, req schema.DeletePostArgs) (result *schema.DeletedPost, err error) {
	ctx, endSpan := otel.StartSpan(m.tracer, ctx, "DeletePost",
		attribute.Int64("post_id", int64(req.PostID)),
		attribute.Bool("force", req.Force),
	)
	defer func() { endSpan(err) }()

	if req.PostID == 0 {
		return nil, wpmcp.ErrMissingArgument.With("post_id")
	}
	result, err = m.content.DeletePost(ctx, req.PostID, opt.WithForce(req.Force))
	if err == nil {
		m.logger.Info("deleted post", "id", req.PostID, "force", req.Force)
	}
	return result, err
}

///////////////////////////////////////////////////////////////////////////////
// MEDIA

// UploadMedia uploads a local file
func (m *Manager) UploadMedia(ctx context.Context, req schema.UploadMediaArgs) (result *schema.Media, err error) {
	ctx, endSpan := otel.StartSpan(m.tracer, ctx, "UploadMedia",
		attribute.String("file", filepath.Base(req.FilePath)),
	)
	defer func() { endSpan(err) }()

	if strings.TrimSpace(req.FilePath) == "" {
		return nil, wpmcp.ErrMissingArgument.With("file_path")
	}
	f, err := os.Open(req.FilePath)
	if err != nil {
		return nil, wpmcp.ErrNotFound.With(err)
	}
	defer f.Close()

	// Directories can be opened but not read
	if info, err := f.Stat(); err != nil {
		return nil, wpmcp.ErrBadParameter.With(err)
	} else if info.IsDir() {
		return nil, wpmcp.ErrBadParameter.Withf("%q is a directory", req.FilePath)
	}

	return m.content.UploadMedia(ctx, req.FilePath, f, schema.MediaRequest{
		Title:   req.Title,
		AltText: req.AltText,
	})
}

///////////////////////////////////////////////////////////////////////////////
// TAXONOMY

// ListCategories returns categories
func (m *Manager) ListCategories(ctx context.Context, req schema.ListCategoriesArgs) (result []schema.Term, err error) {
	ctx, endSpan := otel.StartSpan(m.tracer, ctx, "ListCategories")
	defer func() { endSpan(err) }()

	return m.content.ListCategories(ctx, opt.WithPerPage(valueOr(req.PerPage, defaultTermsPerPage)))
}

// ListTags returns tags
func (m *Manager) ListTags(ctx context.Context, req schema.ListTagsArgs) (result []schema.Term, err error) {
	ctx, endSpan := otel.StartSpan(m.tracer, ctx, "ListTags")
	defer func() { endSpan(err) }()

	return m.content.ListTags(ctx, opt.WithPerPage(valueOr(req.PerPage, defaultTermsPerPage)))
}

// SearchTags returns tags matching a search term
func (m *Manager) SearchTags(ctx context.Context, req schema.SearchTagsArgs) (result []schema.Term, err error) {
	ctx, endSpan := otel.StartSpan(m.tracer, ctx, "SearchTags")
	defer func() { endSpan(err) }()

	if strings.TrimSpace(req.Search) == "" {
		return nil, wpmcp.ErrMissingArgument.With("search")
	}
	return m.content.ListTags(ctx,
		opt.WithSearch(req.Search),
		opt.WithPerPage(valueOr(req.PerPage, defaultSearchPerPage)),
	)
}

// CreateTag creates a tag
func (m *Manager) CreateTag(ctx context.Context, req schema.CreateTagArgs) (result *schema.Term, err error) {
	ctx, endSpan := otel.StartSpan(m.tracer, ctx, "CreateTag",
		attribute.String("name", req.Name),
	)
	defer func() { endSpan(err) }()

	if strings.TrimSpace(req.Name) == "" {
		return nil, wpmcp.ErrMissingArgument.With("name")
	}
	return m.content.CreateTag(ctx, schema.TermRequest{
		Name:        req.Name,
		Description: req.Description,
		Slug:        req.Slug,
	})
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func valueOr(v, def uint) uint {
	if v == 0 {
		return def
	}
	return v
}

// oneOf returns an error when a value is set and is not one of values
func oneOf(name, value string, values []string) error {
	if value = strings.TrimSpace(value); value == "" || slices.Contains(values, value) {
		return nil
	}
	return wpmcp.ErrBadParameter.Withf("%s: %q is not one of %s", name, value, strings.Join(values, ", "))
}

func stringOr(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}

func ptr[T any](v T) *T {
	return &v
}
