/*
paramstore reads secrets from AWS SSM Parameter Store. Parameters are read
with decryption so SecureString values are returned in clear, and are never
cached beyond the values the caller keeps.
*/
package paramstore

import (
	"context"
	"errors"
	"path"
	"strings"

	// Packages
	ssm "github.com/aws/aws-sdk-go-v2/service/ssm"
	types "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	wpmcp "github.com/mutablelogic/go-wpmcp"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ssmAPI is the part of *ssm.Client which is used
type ssmAPI interface {
	GetParameter(ctx context.Context, in *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// Getter returns the value of a named parameter
type Getter interface {
	GetParameter(ctx context.Context, name string) (string, error)
}

type Client struct {
	api ssmAPI
}

var _ Getter = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Parameter holding the content service application password
	ParamPassword = "wp-app-password"

	// Suffix of parameters holding a generation provider key
	ParamKeySuffix = "-api-key"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a client for an SSM API, usually *ssm.Client
func New(api ssmAPI) (*Client, error) {
	if api == nil {
		return nil, wpmcp.ErrBadParameter.With("paramstore: api is required")
	}
	return &Client{api: api}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// GetParameter returns the decrypted value of a parameter
func (c *Client) GetParameter(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", wpmcp.ErrMissingArgument.With("paramstore: name")
	}

	decrypt := true
	out, err := c.api.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           &name,
		WithDecryption: &decrypt,
	})
	var notfound *types.ParameterNotFound
	switch {
	case errors.As(err, &notfound):
		return "", wpmcp.ErrNotFound.Withf("paramstore: %q", name)
	case err != nil:
		return "", wpmcp.ErrRemoteRequestFailed.Withf("paramstore: %q: %v", name, err)
	case out == nil || out.Parameter == nil || out.Parameter.Value == nil:
		return "", wpmcp.ErrNotFound.Withf("paramstore: %q has no value", name)
	}

	// Return success
	return *out.Parameter.Value, nil
}

// Fill sets each empty secret from the parameter <prefix>/<name>. Secrets
// which already have a value are not read. Parameters which do not exist
// are skipped, any other failure is returned.
func Fill(ctx context.Context, getter Getter, prefix string, secrets map[string]*string) error {
	var result error
	for name, secret := range secrets {
		if secret == nil || *secret != "" {
			continue
		}
		value, err := getter.GetParameter(ctx, Name(prefix, name))
		if errors.Is(err, wpmcp.ErrNotFound) {
			continue
		} else if err != nil {
			result = errors.Join(result, err)
			continue
		}
		*secret = strings.TrimSpace(value)
	}
	return result
}

// Name returns the full name of a parameter under a prefix
func Name(prefix, name string) string {
	return path.Join("/", strings.Trim(prefix, "/"), name)
}

// ProviderKey returns the name of the parameter holding a provider key
func ProviderKey(provider string) string {
	return strings.ToLower(provider) + ParamKeySuffix
}
