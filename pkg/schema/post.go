package schema

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Post status values
const (
	StatusDraft   = "draft"
	StatusPublish = "publish"
	StatusPending = "pending"
	StatusTrash   = "trash"
	StatusAny     = "any"
)

// Statuses a post is created or updated with, and the statuses a listing
// can be filtered by
var (
	PostStatuses   = []string{StatusDraft, StatusPublish, StatusPending}
	FilterStatuses = []string{StatusPublish, StatusDraft, StatusPending, StatusTrash, StatusAny}
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Rendered is a text field which the content service returns as an object
type Rendered struct {
	Raw       string `json:"raw,omitempty"`
	Rendered  string `json:"rendered"`
	Protected bool   `json:"protected,omitempty"`
}

// Post is a post owned by the content service
type Post struct {
	ID            uint64   `json:"id"`
	Date          string   `json:"date,omitempty"`
	Modified      string   `json:"modified,omitempty"`
	Slug          string   `json:"slug,omitempty"`
	Status        string   `json:"status"`
	Type          string   `json:"type,omitempty"`
	Link          string   `json:"link,omitempty"`
	Title         Rendered `json:"title"`
	Content       Rendered `json:"content"`
	Excerpt       Rendered `json:"excerpt"`
	Author        uint64   `json:"author,omitempty"`
	FeaturedMedia uint64   `json:"featured_media,omitempty"`
	Categories    []uint64 `json:"categories,omitempty"`
	Tags          []uint64 `json:"tags,omitempty"`
}

// PostRequest is the body of a create request. Empty category and tag
// sets are omitted.
type PostRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Status     string   `json:"status"`
	Excerpt    string   `json:"excerpt,omitempty"`
	Categories []uint64 `json:"categories,omitempty"`
	Tags       []uint64 `json:"tags,omitempty"`
}

// UpdatePostRequest is the body of a partial update. Only fields which
// are set are sent, so an empty category or tag set clears them.
type UpdatePostRequest struct {
	Title      *string   `json:"title,omitempty"`
	Content    *string   `json:"content,omitempty"`
	Excerpt    *string   `json:"excerpt,omitempty"`
	Status     *string   `json:"status,omitempty"`
	Categories *[]uint64 `json:"categories,omitempty"`
	Tags       *[]uint64 `json:"tags,omitempty"`
}

// DeletedPost is the response to a delete request. A permanent delete
// sets Deleted and Previous, moving to trash returns the post itself.
type DeletedPost struct {
	Post
	Deleted  bool  `json:"deleted"`
	Previous *Post `json:"previous,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// IsEmpty returns true if the update would not change anything
func (r UpdatePostRequest) IsEmpty() bool {
	return r.Title == nil && r.Content == nil && r.Excerpt == nil && r.Status == nil && r.Categories == nil && r.Tags == nil
}
