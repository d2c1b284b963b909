/*
mistral implements a generator backed by the Mistral chat completions API.
https://docs.mistral.ai/api/
*/
package mistral

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

// chatRequest is the request body for POST /v1/chat/completions
type chatRequest struct {
	Model     string        `json:"model"`
	MaxTokens uint          `json:"max_tokens,omitempty"`
	Messages  []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the response body from POST /v1/chat/completions
type chatResponse struct {
	Id      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index   uint        `json:"index"`
		Message chatMessage `json:"message"`
		Reason  string      `json:"finish_reason,omitempty"`
	} `json:"choices"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint     = "https://api.mistral.ai/v1"
	DefaultModel = "mistral-large-latest"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a generator with the given API key. Without a key the
// generator is created but reports itself unavailable.
func New(apiKey, model string, opts ...client.ClientOpt) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	opts = append([]client.ClientOpt{
		client.OptEndpoint(endPoint),
		client.OptReqToken(client.Token{Scheme: client.Bearer, Value: apiKey}),
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
	return provider.Mistral
}

// Available returns true if an API key was provided
func (c *Client) Available() bool {
	return c.available
}

// Complete returns the text of the first choice
func (c *Client) Complete(ctx context.Context, prompt string, opts ...opt.Opt) (string, error) {
	if !c.available {
		return "", provider.Unavailable(c.Name())
	}
	o, err := opt.Apply(opts...)
	if err != nil {
		return "", err
	}

	// System prompt comes first
	messages := make([]chatMessage, 0, 2)
	if system := o.GetString(opt.KeySystem); system != "" {
		messages = append(messages, chatMessage{Role: "system", Content: system})
	}
	messages = append(messages, chatMessage{Role: "user", Content: prompt})

	payload, err := client.NewJSONRequest(chatRequest{
		Model:     o.GetStringDefault(opt.KeyModel, c.model),
		MaxTokens: o.GetUintDefault(opt.KeyMaxTokens, provider.MaxTokensSimple),
		Messages:  messages,
	})
	if err != nil {
		return "", err
	}

	var response chatResponse
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("chat", "completions")); err != nil {
		return "", provider.Failed(c.Name(), err)
	} else if len(response.Choices) == 0 {
		return "", wpmcp.ErrProviderRequestFailed.Withf("%s: no choices returned", c.Name())
	}
	return provider.Text(c.Name(), response.Choices[0].Message.Content)
}

// CompleteStructured returns text which should contain a generated document
func (c *Client) CompleteStructured(ctx context.Context, prompt string, opts ...opt.Opt) (string, error) {
	return c.Complete(ctx, prompt, provider.Structured(opts...)...)
}
