package schema

///////////////////////////////////////////////////////////////////////////////
// TYPES

// PostResult summarises a created post
type PostResult struct {
	Success bool   `json:"success"`
	PostID  uint64 `json:"post_id"`
	Title   string `json:"title"`
	Link    string `json:"link"`
	Status  string `json:"status"`
}

// GeneratedPostResult is a post created from generated content. The
// requested taxonomy labels are those the generator proposed, the attached
// labels are those which resolved to identifiers.
type GeneratedPostResult struct {
	PostResult
	AIGenerated  bool     `json:"ai_generated"`
	Source       string   `json:"source"`
	Excerpt      string   `json:"excerpt"`
	AICategories []string `json:"ai_categories"`
	AITags       []string `json:"ai_tags"`
	Categories   []string `json:"categories"`
	Tags         []string `json:"tags"`
	CategoryIDs  []uint64 `json:"category_ids"`
	TagIDs       []uint64 `json:"tag_ids"`
}

// GeneratedContentResult is generated content which has not been published
type GeneratedContentResult struct {
	Success     bool              `json:"success"`
	AIGenerated bool              `json:"ai_generated"`
	Source      string            `json:"source"`
	Content     GeneratedDocument `json:"content"`
}

// ImprovedPostResult is a post whose content was rewritten by a generator
type ImprovedPostResult struct {
	Success    bool   `json:"success"`
	PostID     uint64 `json:"post_id"`
	Link       string `json:"link"`
	AIImproved bool   `json:"ai_improved"`
	Source     string `json:"source"`
}

// ServerInfo is returned by GET /
type ServerInfo struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Protocol     string            `json:"protocol"`
	WordPressURL string            `json:"wordpress_url,omitempty"`
	AIAvailable  bool              `json:"ai_available"`
	Provider     string            `json:"provider,omitempty"`
	Endpoints    map[string]string `json:"endpoints"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status string `json:"status"`
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewPostResult returns the summary of a post
func NewPostResult(post *Post) PostResult {
	return PostResult{
		Success: true,
		PostID:  post.ID,
		Title:   post.Title.Rendered,
		Link:    post.Link,
		Status:  post.Status,
	}
}
