/*
anthropic implements a generator backed by the Anthropic Messages API.
https://docs.anthropic.com/en/api/messages
*/
package anthropic

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
	endPoint     = "https://api.anthropic.com/v1"
	apiVersion   = "2023-06-01"
	DefaultModel = "claude-3-5-sonnet-20241022"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a generator with the given API key. Without a key the
// generator is created but reports itself unavailable.
func New(apiKey, model string, opts ...client.ClientOpt) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	opts = append([]client.ClientOpt{
		client.OptEndpoint(endPoint),
		client.OptHeader("x-api-key", apiKey),
		client.OptHeader("anthropic-version", apiVersion),
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
	return provider.Anthropic
}

// Available returns true if an API key was provided
func (c *Client) Available() bool {
	return c.available
}

// Complete returns the text of a single turn
func (c *Client) Complete(ctx context.Context, prompt string, opts ...opt.Opt) (string, error) {
	if !c.available {
		return "", provider.Unavailable(c.Name())
	}
	o, err := opt.Apply(opts...)
	if err != nil {
		return "", err
	}

	// Create the request
	payload, err := client.NewJSONRequest(messagesRequest{
		Model:     o.GetStringDefault(opt.KeyModel, c.model),
		MaxTokens: o.GetUintDefault(opt.KeyMaxTokens, provider.MaxTokensSimple),
		System:    o.GetString(opt.KeySystem),
		Messages:  []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}

	// Send the request
	var response messagesResponse
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("messages")); err != nil {
		return "", provider.Failed(c.Name(), err)
	}

	// Concatenate the text blocks
	var text strings.Builder
	for _, block := range response.Content {
		if block.Type == blockTypeText {
			text.WriteString(block.Text)
		}
	}
	return provider.Text(c.Name(), text.String())
}

// CompleteStructured returns text which should contain a generated document
func (c *Client) CompleteStructured(ctx context.Context, prompt string, opts ...opt.Opt) (string, error) {
	return c.Complete(ctx, prompt, provider.Structured(opts...)...)
}
