package schema

///////////////////////////////////////////////////////////////////////////////
// CONTENT TOOL ARGUMENTS

// ListCategoriesArgs is the input to list_categories
type ListCategoriesArgs struct {
	PerPage uint `json:"per_page,omitempty" jsonschema:"Number of categories to return (default 100)"`
}

// ListPostsArgs is the input to list_posts and GET /posts
type ListPostsArgs struct {
	PerPage uint   `json:"per_page,omitempty" jsonschema:"Posts per page (default 10)"`
	Page    uint   `json:"page,omitempty" jsonschema:"Page number (default 1)"`
	Status  string `json:"status,omitempty" jsonschema:"Post status: publish, draft, pending, trash or any (default any)"`
}

// SearchPostsArgs is the input to search_posts
type SearchPostsArgs struct {
	Search  string `json:"search" jsonschema:"Search term"`
	PerPage uint   `json:"per_page,omitempty" jsonschema:"Number of results (default 10)"`
}

// GetPostArgs is the input to get_post
type GetPostArgs struct {
	PostID uint64 `json:"post_id" jsonschema:"Post identifier"`
}

// CreatePostArgs is the input to create_post and POST /posts/create
type CreatePostArgs struct {
	Title      string   `json:"title" jsonschema:"Post title"`
	Content    string   `json:"content" jsonschema:"Post content as HTML"`
	Status     string   `json:"status,omitempty" jsonschema:"Post status: draft, publish or pending (default draft)"`
	Excerpt    string   `json:"excerpt,omitempty" jsonschema:"Post excerpt"`
	Categories []uint64 `json:"categories,omitempty" jsonschema:"Category identifiers"`
	Tags       []uint64 `json:"tags,omitempty" jsonschema:"Tag identifiers"`
}

// UpdatePostArgs is the input to update_post. Only the fields provided are
// changed.
type UpdatePostArgs struct {
	PostID     uint64    `json:"post_id" jsonschema:"Identifier of the post to update"`
	Title      *string   `json:"title,omitempty" jsonschema:"New title"`
	Content    *string   `json:"content,omitempty" jsonschema:"New content as HTML"`
	Excerpt    *string   `json:"excerpt,omitempty" jsonschema:"New excerpt"`
	Status     *string   `json:"status,omitempty" jsonschema:"New status: draft, publish or pending"`
	Categories *[]uint64 `json:"categories,omitempty" jsonschema:"Replacement category identifiers, an empty list removes all"`
	Tags       *[]uint64 `json:"tags,omitempty" jsonschema:"Replacement tag identifiers, an empty list removes all"`
}

// DeletePostArgs is the input to delete_post
type DeletePostArgs struct {
	PostID uint64 `json:"post_id" jsonschema:"Identifier of the post to delete"`
	Force  bool   `json:"force,omitempty" jsonschema:"Delete permanently instead of moving to trash (default false)"`
}

// UploadMediaArgs is the input to upload_media
type UploadMediaArgs struct {
	FilePath string `json:"file_path" jsonschema:"Path of a local file to upload"`
	Title    string `json:"title,omitempty" jsonschema:"Media title"`
	AltText  string `json:"alt_text,omitempty" jsonschema:"Alternative text"`
}

// ListTagsArgs is the input to list_tags
type ListTagsArgs struct {
	PerPage uint `json:"per_page,omitempty" jsonschema:"Number of tags to return (default 100)"`
}

// SearchTagsArgs is the input to search_tags
type SearchTagsArgs struct {
	Search  string `json:"search" jsonschema:"Search term"`
	PerPage uint   `json:"per_page,omitempty" jsonschema:"Number of results (default 10)"`
}

// CreateTagArgs is the input to create_tag
type CreateTagArgs struct {
	Name        string `json:"name" jsonschema:"Tag name"`
	Description string `json:"description,omitempty" jsonschema:"Tag description"`
	Slug        string `json:"slug,omitempty" jsonschema:"Tag slug"`
}

///////////////////////////////////////////////////////////////////////////////
// GENERATION TOOL ARGUMENTS

// GeneratePostArgs is the input to generate_post_with_ai and
// POST /ai/generate-post
type GeneratePostArgs struct {
	Prompt   string `json:"prompt" jsonschema:"Topic or description of the post to write"`
	Style    string `json:"style,omitempty" jsonschema:"Writing style (default profesional)"`
	Tone     string `json:"tone,omitempty" jsonschema:"Tone of the content (default informativo)"`
	Language string `json:"language,omitempty" jsonschema:"Language of the content (default español)"`
	Status   string `json:"status,omitempty" jsonschema:"Status of the created post (default draft)"`
}

// GenerateContentArgs is the input to generate_content_from_prompt and
// POST /ai/generate-content
type GenerateContentArgs struct {
	Prompt   string `json:"prompt" jsonschema:"Description of the content to generate"`
	Style    string `json:"style,omitempty" jsonschema:"Writing style (default profesional)"`
	Tone     string `json:"tone,omitempty" jsonschema:"Tone of the content (default informativo)"`
	Language string `json:"language,omitempty" jsonschema:"Language of the content (default español)"`
}

// ImprovePostArgs is the input to improve_post_with_ai and
// POST /ai/improve-post
type ImprovePostArgs struct {
	PostID       uint64 `json:"post_id" jsonschema:"Identifier of the post to improve"`
	Improvements string `json:"improvements,omitempty" jsonschema:"What to improve (default: mejorar SEO, claridad y estructura)"`
}
