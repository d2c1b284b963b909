/*
google implements a generator backed by the Gemini generateContent API.
https://ai.google.dev/api/generate-content
*/
package google

import (
	"context"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"
	wpmcp "github.com/mutablelogic/go-wpmcp"
	opt "github.com/mutablelogic/go-wpmcp/pkg/opt"
	provider "github.com/mutablelogic/go-wpmcp/pkg/provider"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
	model     string
	available bool
}

var _ wpmcp.Generator = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint     = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel = "gemini-2.0-flash"
	mimeTypeJSON = "application/json"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a generator with the given API key. Without a key the
// generator is created but reports itself unavailable.
func New(apiKey, model string, opts ...client.ClientOpt) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	opts = append([]client.ClientOpt{
		client.OptEndpoint(endPoint),
		client.OptHeader("x-goog-api-key", apiKey),
	}, opts...)
	if model = strings.TrimSpace(model); model == "" {
		model = DefaultModel
	}
	if c, err := client.New(opts...); err != nil {
		return nil, err
	} else {
		return &Client{c, model, apiKey != ""}, nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Name returns the provider name
func (*Client) Name() string {
	return provider.Gemini
}

// Available returns true if an API key was provided
func (c *Client) Available() bool {
	return c.available
}

// Complete returns the text parts of the first candidate
func (c *Client) Complete(ctx context.Context, prompt string, opts ...opt.Opt) (string, error) {
	return c.generate(ctx, prompt, "", opts...)
}

// CompleteStructured returns text which should contain a generated document.
// The response is constrained to JSON.
func (c *Client) CompleteStructured(ctx context.Context, prompt string, opts ...opt.Opt) (string, error) {
	return c.generate(ctx, prompt, mimeTypeJSON, provider.Structured(opts...)...)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *Client) generate(ctx context.Context, prompt, mimetype string, opts ...opt.Opt) (string, error) {
	if !c.available {
		return "", provider.Unavailable(c.Name())
	}
	o, err := opt.Apply(opts...)
	if err != nil {
		return "", err
	}

	// Create the request
	request := generateRequest{
		Contents: []*content{{Role: "user", Parts: []*part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			MaxOutputTokens:  o.GetUintDefault(opt.KeyMaxTokens, provider.MaxTokensSimple),
			ResponseMIMEType: mimetype,
		},
	}
	if system := o.GetString(opt.KeySystem); system != "" {
		request.SystemInstruction = &content{Parts: []*part{{Text: system}}}
	}
	payload, err := client.NewJSONRequest(request)
	if err != nil {
		return "", err
	}

	// Send the request
	var response generateResponse
	model := o.GetStringDefault(opt.KeyModel, c.model)
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("models", model+":generateContent")); err != nil {
		return "", provider.Failed(c.Name(), err)
	}
	if len(response.Candidates) == 0 || response.Candidates[0].Content == nil {
		if response.PromptFeedback != nil && response.PromptFeedback.BlockReason != "" {
			return "", wpmcp.ErrProviderRequestFailed.Withf("%s: prompt blocked: %s", c.Name(), response.PromptFeedback.BlockReason)
		}
		return "", wpmcp.ErrProviderRequestFailed.Withf("%s: no candidates returned", c.Name())
	}

	// Concatenate the text parts, ignoring thoughts
	var text strings.Builder
	for _, p := range response.Candidates[0].Content.Parts {
		if p != nil && !p.Thought {
			text.WriteString(p.Text)
		}
	}
	return provider.Text(c.Name(), text.String())
}
