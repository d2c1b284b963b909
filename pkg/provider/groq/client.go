/*
groq implements a generator backed by an OpenAI compatible chat completions
API. The default endpoint is Groq (https://console.groq.com/docs/openai) but
any compatible base URL can be used.
*/
package groq

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	// Packages
	wpmcp "github.com/mutablelogic/go-wpmcp"
	opt "github.com/mutablelogic/go-wpmcp/pkg/opt"
	provider "github.com/mutablelogic/go-wpmcp/pkg/provider"
	openai "github.com/sashabaranov/go-openai"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	client    *openai.Client
	model     string
	available bool
}

// Opt sets a client option
type Opt func(*openai.ClientConfig)

var _ wpmcp.Generator = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultEndpoint = "https://api.groq.com/openai/v1"
	DefaultModel    = "llama-3.3-70b-versatile"
	defaultTimeout  = 2 * time.Minute
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a generator with the given API key. Without a key the
// generator is created but reports itself unavailable.
func New(apiKey, model string, opts ...Opt) *Client {
	apiKey = strings.TrimSpace(apiKey)
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = DefaultEndpoint
	config.HTTPClient = &http.Client{Timeout: defaultTimeout}
	for _, opt := range opts {
		opt(&config)
	}
	if model = strings.TrimSpace(model); model == "" {
		model = DefaultModel
	}
	return &Client{
		client:    openai.NewClientWithConfig(config),
		model:     model,
		available: apiKey != "",
	}
}

// WithEndpoint sets the base URL of the API. An empty value is ignored.
func WithEndpoint(url string) Opt {
	return func(config *openai.ClientConfig) {
		if url = strings.TrimSuffix(strings.TrimSpace(url), "/"); url != "" {
			config.BaseURL = url
		}
	}
}

// WithTimeout sets the timeout for each request
func WithTimeout(timeout time.Duration) Opt {
	return func(config *openai.ClientConfig) {
		if timeout > 0 {
			config.HTTPClient = &http.Client{Timeout: timeout}
		}
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Name returns the provider name
func (*Client) Name() string {
	return provider.Groq
}

// Available returns true if an API key was provided
func (c *Client) Available() bool {
	return c.available
}

// Complete returns the text of the first choice
func (c *Client) Complete(ctx context.Context, prompt string, opts ...opt.Opt) (string, error) {
	return c.generate(ctx, prompt, nil, opts...)
}

// CompleteStructured returns text which should contain a generated document.
// The response is constrained to a JSON object.
func (c *Client) CompleteStructured(ctx context.Context, prompt string, opts ...opt.Opt) (string, error) {
	return c.generate(ctx, prompt, &openai.ChatCompletionResponseFormat{
		Type: openai.ChatCompletionResponseFormatTypeJSONObject,
	}, provider.Structured(opts...)...)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *Client) generate(ctx context.Context, prompt string, format *openai.ChatCompletionResponseFormat, opts ...opt.Opt) (string, error) {
	if !c.available {
		return "", provider.Unavailable(c.Name())
	}
	o, err := opt.Apply(opts...)
	if err != nil {
		return "", err
	}

	// System prompt comes first
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if system := o.GetString(opt.KeySystem); system != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: system})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: prompt})

	response, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:          o.GetStringDefault(opt.KeyModel, c.model),
		MaxTokens:      int(o.GetUintDefault(opt.KeyMaxTokens, provider.MaxTokensSimple)),
		Messages:       messages,
		ResponseFormat: format,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", wpmcp.ErrProviderRequestFailed.Withf("%s: status %d: %s", c.Name(), apiErr.HTTPStatusCode, apiErr.Message)
		}
		return "", provider.Failed(c.Name(), err)
	} else if len(response.Choices) == 0 {
		return "", wpmcp.ErrProviderRequestFailed.Withf("%s: no choices returned", c.Name())
	}
	return provider.Text(c.Name(), response.Choices[0].Message.Content)
}
