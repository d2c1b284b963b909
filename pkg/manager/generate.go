package manager

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	// Packages
	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	wpmcp "github.com/mutablelogic/go-wpmcp"
	normalize "github.com/mutablelogic/go-wpmcp/pkg/normalize"
	opt "github.com/mutablelogic/go-wpmcp/pkg/opt"
	provider "github.com/mutablelogic/go-wpmcp/pkg/provider"
	schema "github.com/mutablelogic/go-wpmcp/pkg/schema"
	goldmark "github.com/yuin/goldmark"
	extension "github.com/yuin/goldmark/extension"
	html "github.com/yuin/goldmark/renderer/html"
	attribute "go.opentelemetry.io/otel/attribute"
	errgroup "golang.org/x/sync/errgroup"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// GeneratePost generates a document from a prompt, resolves the proposed
// categories and tags and creates a post from it. Categories and tags which
// could not be resolved are reported but do not fail the call.
func (m *Manager) GeneratePost(ctx context.Context, req schema.GeneratePostArgs) (result *schema.GeneratedPostResult, err error) {
	ctx, endSpan := otel.StartSpan(m.tracer, ctx, "GeneratePost",
		attribute.String("provider", m.Provider()),
	)
	defer func() { endSpan(err) }()

	// Fail before anything is written
	if err := m.checkGenerator(); err != nil {
		return nil, err
	} else if strings.TrimSpace(req.Prompt) == "" {
		return nil, wpmcp.ErrMissingArgument.With("prompt")
	} else if err := oneOf("status", req.Status, schema.PostStatuses); err != nil {
		return nil, err
	}

	// Generate the document
	doc, err := m.generate(ctx, req.Prompt, req.Style, req.Tone, req.Language)
	if err != nil {
		return nil, err
	}

	// Resolve categories and tags
	var categories, tags []schema.Term
	var g errgroup.Group
	g.Go(func() error {
		categories = m.resolver.ResolveTerms(ctx, doc.Categories, schema.Category)
		return nil
	})
	g.Go(func() error {
		tags = m.resolver.ResolveTerms(ctx, doc.Tags, schema.Tag)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if len(categories) != len(doc.Categories) || len(tags) != len(doc.Tags) {
		m.logger.Warn("some taxonomy was not attached",
			"categories", len(categories), "requested_categories", len(doc.Categories),
			"tags", len(tags), "requested_tags", len(doc.Tags),
		)
	}

	// Create the post
	post, err := m.content.CreatePost(ctx, schema.PostRequest{
		Title:      doc.Title,
		Content:    doc.Content,
		Excerpt:    doc.Excerpt,
		Status:     stringOr(req.Status, schema.StatusDraft),
		Categories: termIDs(categories),
		Tags:       termIDs(tags),
	})
	if err != nil {
		// Tags may already have been created, so report what was attached
		return nil, fmt.Errorf("%w (resolved categories %q, tags %q)", err, termNames(categories), termNames(tags))
	}

	m.logger.Info("generated post", "id", post.ID, "provider", m.Provider())
	return &schema.GeneratedPostResult{
		PostResult:   schema.NewPostResult(post),
		AIGenerated:  true,
		Source:       m.Provider(),
		Excerpt:      doc.Excerpt,
		AICategories: doc.Categories,
		AITags:       doc.Tags,
		Categories:   termNames(categories),
		Tags:         termNames(tags),
		CategoryIDs:  termIDs(categories),
		TagIDs:       termIDs(tags),
	}, nil
}

// GenerateContent generates a document from a prompt without publishing it
func (m *Manager) GenerateContent(ctx context.Context, req schema.GenerateContentArgs) (result *schema.GeneratedContentResult, err error) {
	ctx, endSpan := otel.StartSpan(m.tracer, ctx, "GenerateContent",
		attribute.String("provider", m.Provider()),
	)
	defer func() { endSpan(err) }()

	if err := m.checkGenerator(); err != nil {
		return nil, err
	} else if strings.TrimSpace(req.Prompt) == "" {
		return nil, wpmcp.ErrMissingArgument.With("prompt")
	}

	doc, err := m.generate(ctx, req.Prompt, req.Style, req.Tone, req.Language)
	if err != nil {
		return nil, err
	}

	return &schema.GeneratedContentResult{
		Success:     true,
		AIGenerated: true,
		Source:      m.Provider(),
		Content:     *doc,
	}, nil
}

// ImprovePost rewrites the content of an existing post. The post is sent to
// the generator as Markdown and the reply is rendered back into HTML.
func (m *Manager) ImprovePost(ctx context.Context, req schema.ImprovePostArgs) (result *schema.ImprovedPostResult, err error) {
	ctx, endSpan := otel.StartSpan(m.tracer, ctx, "ImprovePost",
		attribute.String("provider", m.Provider()),
		attribute.Int64("post_id", int64(req.PostID)),
	)
	defer func() { endSpan(err) }()

	if err := m.checkGenerator(); err != nil {
		return nil, err
	} else if req.PostID == 0 {
		return nil, wpmcp.ErrMissingArgument.With("post_id")
	}

	// Fetch the post
	post, err := m.content.GetPost(ctx, req.PostID)
	if err != nil {
		return nil, err
	}
	source, err := htmltomarkdown.ConvertString(post.Content.Rendered)
	if err != nil {
		return nil, wpmcp.ErrBadParameter.Withf("post %d: %v", req.PostID, err)
	}

	// Ask for the improved article
	prompt := "Título: " + post.Title.Rendered + "\n\n" + source
	text, err := m.generator.Complete(ctx, prompt,
		opt.WithSystemPrompt(provider.ImprovePrompt(req.Improvements)),
		opt.WithMaxTokens(provider.MaxTokensImprove),
	)
	if err != nil {
		return nil, err
	}

	// Render to HTML
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(normalize.StripFence(text)), &buf); err != nil {
		return nil, wpmcp.ErrNormalization.With(err)
	}
	content := buf.String()
	if strings.TrimSpace(content) == "" {
		return nil, wpmcp.ErrNormalization.With("empty content")
	}

	// Update the content only
	updated, err := m.content.UpdatePost(ctx, req.PostID, schema.UpdatePostRequest{
		Content: &content,
	})
	if err != nil {
		return nil, err
	}

	m.logger.Info("improved post", "id", updated.ID, "provider", m.Provider())
	return &schema.ImprovedPostResult{
		Success:    true,
		PostID:     updated.ID,
		Link:       updated.Link,
		AIImproved: true,
		Source:     m.Provider(),
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (m *Manager) generate(ctx context.Context, prompt, style, tone, language string) (*schema.GeneratedDocument, error) {
	if err := oneOf("style", style, provider.Styles); err != nil {
		return nil, err
	} else if err := oneOf("tone", tone, provider.Tones); err != nil {
		return nil, err
	}
	text, err := m.generator.CompleteStructured(ctx, prompt,
		opt.WithStyle(stringOr(style, provider.DefaultStyle)),
		opt.WithTone(stringOr(tone, provider.DefaultTone)),
		opt.WithLanguage(stringOr(language, provider.DefaultLanguage)),
	)
	if err != nil {
		return nil, err
	}
	doc, err := normalize.Normalize(text)
	if err != nil {
		m.logger.Warn("generated content could not be normalized", "provider", m.Provider(), "err", err)
		return nil, err
	}
	return doc, nil
}

func termIDs(terms []schema.Term) []uint64 {
	result := make([]uint64, 0, len(terms))
	for _, term := range terms {
		result = append(result, term.ID)
	}
	return result
}

func termNames(terms []schema.Term) []string {
	result := make([]string, 0, len(terms))
	for _, term := range terms {
		result = append(result, term.Name)
	}
	return result
}
