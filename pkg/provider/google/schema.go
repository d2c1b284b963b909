package google

///////////////////////////////////////////////////////////////////////////////
// TYPES - Gemini REST API wire format
//
// Reference: https://ai.google.dev/api/generate-content

// content is a single message turn
type content struct {
	Parts []*part `json:"parts"`
	Role  string  `json:"role,omitempty"`
}

type part struct {
	Thought bool   `json:"thought,omitempty"`
	Text    string `json:"text,omitempty"`
}

// generateRequest is the request body for
// POST /v1beta/{model=models/*}:generateContent
type generateRequest struct {
	Contents          []*content       `json:"contents"`
	SystemInstruction *content         `json:"systemInstruction,omitempty"`
	GenerationConfig  generationConfig `json:"generationConfig,omitzero"`
}

type generationConfig struct {
	MaxOutputTokens  uint   `json:"maxOutputTokens,omitempty"`
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

// generateResponse is the response from generateContent
type generateResponse struct {
	Candidates []struct {
		Content      *content `json:"content,omitempty"`
		FinishReason string   `json:"finishReason,omitempty"`
	} `json:"candidates,omitempty"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason,omitempty"`
	} `json:"promptFeedback,omitempty"`
	ModelVersion string `json:"modelVersion,omitempty"`
}
