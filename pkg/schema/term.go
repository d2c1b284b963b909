package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// TermKind is the kind of taxonomy a term belongs to
type TermKind string

// Term is a category or tag owned by the content service
type Term struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
	Count       uint64 `json:"count,omitempty"`
	Link        string `json:"link,omitempty"`
	Taxonomy    string `json:"taxonomy,omitempty"`
	Parent      uint64 `json:"parent,omitempty"`
}

// TermRequest is the body of a request to create a tag
type TermRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Slug        string `json:"slug,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	Category TermKind = "category"
	Tag      TermKind = "tag"
)

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (k TermKind) String() string {
	return string(k)
}
