package anthropic

///////////////////////////////////////////////////////////////////////////////
// TYPES - Anthropic REST API wire format
//
// Reference: https://docs.anthropic.com/en/api/messages

const (
	blockTypeText = "text"
)

// messagesRequest is the request body for POST /v1/messages
type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens uint      `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// messagesResponse is the response body from POST /v1/messages
type messagesResponse struct {
	Id         string         `json:"id"`
	Model      string         `json:"model"`
	Role       string         `json:"role"`
	Content    []contentBlock `json:"content"`
	StopReason string         `json:"stop_reason"`
	Usage      struct {
		InputTokens  uint `json:"input_tokens"`
		OutputTokens uint `json:"output_tokens"`
	} `json:"usage"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}
