package schema

// Media is an attachment owned by the content service
type Media struct {
	ID        uint64   `json:"id"`
	Date      string   `json:"date,omitempty"`
	Slug      string   `json:"slug,omitempty"`
	Status    string   `json:"status,omitempty"`
	Link      string   `json:"link,omitempty"`
	Title     Rendered `json:"title"`
	AltText   string   `json:"alt_text"`
	MediaType string   `json:"media_type,omitempty"`
	MimeType  string   `json:"mime_type,omitempty"`
	SourceURL string   `json:"source_url,omitempty"`
}

// MediaRequest updates the metadata of an uploaded attachment
type MediaRequest struct {
	Title   string `json:"title,omitempty"`
	AltText string `json:"alt_text,omitempty"`
}
