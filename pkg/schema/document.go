package schema

// GeneratedDocument is a post produced by a generator. Title, content and
// excerpt are always present; categories and tags are never nil.
type GeneratedDocument struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Excerpt    string   `json:"excerpt"`
	Categories []string `json:"categories"`
	Tags       []string `json:"tags"`
}
