package manager

import (
	"context"

	// Packages
	provider "github.com/mutablelogic/go-wpmcp/pkg/provider"
	schema "github.com/mutablelogic/go-wpmcp/pkg/schema"
	tool "github.com/mutablelogic/go-wpmcp/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Tool names
const (
	ToolListCategories  = "list_categories"
	ToolListPosts       = "list_posts"
	ToolSearchPosts     = "search_posts"
	ToolGetPost         = "get_post"
	ToolCreatePost      = "create_post"
	ToolUpdatePost      = "update_post"
	ToolDeletePost      = "delete_post"
	ToolUploadMedia     = "upload_media"
	ToolListTags        = "list_tags"
	ToolSearchTags      = "search_tags"
	ToolCreateTag       = "create_tag"
	ToolGeneratePost    = "generate_post_with_ai"
	ToolImprovePost     = "improve_post_with_ai"
	ToolGenerateContent = "generate_content_from_prompt"
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// bind adapts a typed manager method to a tool function
func bind[T, R any](fn func(context.Context, T) (R, error)) func(context.Context, T) (any, error) {
	return func(ctx context.Context, args T) (any, error) {
		result, err := fn(ctx, args)
		if err != nil {
			return nil, err
		}
		return result, nil
	}
}

func status(values []string) tool.FuncOpt {
	return tool.WithEnum("status", values...)
}

var (
	styles = tool.WithEnum("style", provider.Styles...)
	tones  = tool.WithEnum("tone", provider.Tones...)
)

// tools returns the registry of every tool the manager serves
func (m *Manager) tools() []tool.Tool {
	return []tool.Tool{
		tool.NewFunc(ToolListCategories, "List the categories of the site", bind(m.ListCategories)),
		tool.NewFunc(ToolListPosts, "List posts, optionally filtered by status", bind(m.ListPosts), status(schema.FilterStatuses)),
		tool.NewFunc(ToolSearchPosts, "Search posts by a term", bind(m.SearchPosts)),
		tool.NewFunc(ToolGetPost, "Return a single post by identifier", bind(m.GetPost)),
		tool.NewFunc(ToolCreatePost, "Create a post, as a draft unless another status is given", bind(m.CreatePost), status(schema.PostStatuses)),
		tool.NewFunc(ToolUpdatePost, "Update the provided fields of an existing post", bind(m.UpdatePost), status(schema.PostStatuses)),
		tool.NewFunc(ToolDeletePost, "Move a post to the trash, or delete it permanently when force is set", bind(m.DeletePost)),
		tool.NewFunc(ToolUploadMedia, "Upload a local file to the media library", bind(m.UploadMedia)),
		tool.NewFunc(ToolListTags, "List the tags of the site", bind(m.ListTags)),
		tool.NewFunc(ToolSearchTags, "Search tags by a term", bind(m.SearchTags)),
		tool.NewFunc(ToolCreateTag, "Create a tag", bind(m.CreateTag)),
		tool.NewFunc(ToolGeneratePost, "Generate a complete post from a prompt, with categories and tags, and create it", bind(m.GeneratePost), styles, tones, status(schema.PostStatuses)),
		tool.NewFunc(ToolImprovePost, "Rewrite the content of an existing post", bind(m.ImprovePost)),
		tool.NewFunc(ToolGenerateContent, "Generate a post from a prompt without publishing it", bind(m.GenerateContent), styles, tones),
	}
}
