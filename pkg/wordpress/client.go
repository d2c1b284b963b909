/*
wordpress implements a client for the WordPress REST API
(https://developer.wordpress.org/rest-api/reference/), authenticated with an
application password.
*/
package wordpress

import (
	"encoding/base64"
	"net/url"
	"slices"
	"strings"
	"time"

	// Packages
	client "github.com/mutablelogic/go-client"
	wpmcp "github.com/mutablelogic/go-wpmcp"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client

	// Uploads use a separate client with a longer timeout
	upload *client.Client
	url    string
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	apiPath = "/wp-json/wp/v2"

	// Timeouts for each request
	Timeout       = 30 * time.Second
	UploadTimeout = 60 * time.Second
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client for the site at baseURL. Options are applied after
// the endpoint and credentials. Timeouts are fixed and cannot be overridden.
func New(baseURL, username, password string, opts ...client.ClientOpt) (*Client, error) {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, wpmcp.ErrBadParameter.With("missing site url")
	} else if u, err := url.Parse(baseURL); err != nil || u.Host == "" {
		return nil, wpmcp.ErrBadParameter.Withf("invalid site url %q", baseURL)
	}
	if username == "" || password == "" {
		return nil, wpmcp.ErrBadParameter.With("missing username or application password")
	}

	// Every request carries the same credentials
	defaults := []client.ClientOpt{
		client.OptEndpoint(baseURL + apiPath),
		client.OptHeader("Authorization", "Basic "+basicAuth(username, password)),
	}

	crud, err := client.New(slices.Concat(defaults, opts, []client.ClientOpt{client.OptTimeout(Timeout)})...)
	if err != nil {
		return nil, err
	}
	upload, err := client.New(slices.Concat(defaults, opts, []client.ClientOpt{client.OptTimeout(UploadTimeout)})...)
	if err != nil {
		return nil, err
	}

	// Return the client
	return &Client{
		Client: crud,
		upload: upload,
		url:    baseURL,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// URL returns the site url
func (c *Client) URL() string {
	return c.url
}

// Timeouts returns the timeout for each request and for each upload
func (c *Client) Timeouts() (time.Duration, time.Duration) {
	return c.Client.Client.Timeout, c.upload.Client.Timeout
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func basicAuth(username, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
}
