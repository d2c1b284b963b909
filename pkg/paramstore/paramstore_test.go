package paramstore_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	// Packages
	ssm "github.com/aws/aws-sdk-go-v2/service/ssm"
	types "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	wpmcp "github.com/mutablelogic/go-wpmcp"
	paramstore "github.com/mutablelogic/go-wpmcp/pkg/paramstore"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

///////////////////////////////////////////////////////////////////////////////
// FAKE SSM

type fakeSSM struct {
	sync.Mutex
	values  map[string]string
	err     error
	names   []string
	decrypt bool
}

func (f *fakeSSM) GetParameter(_ context.Context, in *ssm.GetParameterInput, _ ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	f.Lock()
	defer f.Unlock()
	f.names = append(f.names, *in.Name)
	f.decrypt = in.WithDecryption != nil && *in.WithDecryption
	if f.err != nil {
		return nil, f.err
	}
	value, exists := f.values[*in.Name]
	if !exists {
		return nil, &types.ParameterNotFound{}
	}
	return &ssm.GetParameterOutput{Parameter: &types.Parameter{
		Name:  in.Name,
		Value: &value,
		Type:  types.ParameterTypeSecureString,
	}}, nil
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_paramstore_001(t *testing.T) {
	// A client needs an api
	_, err := paramstore.New(nil)
	assert.ErrorIs(t, err, wpmcp.ErrBadParameter)
}

func Test_paramstore_002(t *testing.T) {
	// Parameters are read with decryption
	assert := assert.New(t)
	api := &fakeSSM{values: map[string]string{"/wpmcp/wp-app-password": "abcd efgh"}}
	client, err := paramstore.New(api)
	require.NoError(t, err)

	value, err := client.GetParameter(t.Context(), "  /wpmcp/wp-app-password ")
	require.NoError(t, err)
	assert.Equal("abcd efgh", value)
	assert.True(api.decrypt)
	assert.Equal([]string{"/wpmcp/wp-app-password"}, api.names)
}

func Test_paramstore_003(t *testing.T) {
	// Failures are classified
	assert := assert.New(t)
	client, err := paramstore.New(&fakeSSM{})
	require.NoError(t, err)

	_, err = client.GetParameter(t.Context(), " ")
	assert.ErrorIs(err, wpmcp.ErrMissingArgument)

	_, err = client.GetParameter(t.Context(), "/missing")
	assert.ErrorIs(err, wpmcp.ErrNotFound)

	client, err = paramstore.New(&fakeSSM{err: errors.New("boom")})
	require.NoError(t, err)
	_, err = client.GetParameter(t.Context(), "/any")
	assert.ErrorIs(err, wpmcp.ErrRemoteRequestFailed)
	assert.Contains(err.Error(), "boom")
}

func Test_paramstore_004(t *testing.T) {
	// Parameter names are joined under a prefix
	assert := assert.New(t)
	assert.Equal("/wpmcp/wp-app-password", paramstore.Name("wpmcp", paramstore.ParamPassword))
	assert.Equal("/wpmcp/prod/groq-api-key", paramstore.Name("/wpmcp/prod/", paramstore.ProviderKey("Groq")))
}

func Test_paramstore_005(t *testing.T) {
	// Only empty secrets are filled, and missing parameters are skipped
	assert := assert.New(t)
	api := &fakeSSM{values: map[string]string{
		"/site/wp-app-password":   "secret\n",
		"/site/anthropic-api-key": "never read",
	}}
	client, err := paramstore.New(api)
	require.NoError(t, err)

	password, anthropic, groq := "", "given", ""
	require.NoError(t, paramstore.Fill(t.Context(), client, "site", map[string]*string{
		paramstore.ParamPassword:            &password,
		paramstore.ProviderKey("anthropic"): &anthropic,
		paramstore.ProviderKey("groq"):      &groq,
	}))
	assert.Equal("secret", password)
	assert.Equal("given", anthropic)
	assert.Equal("", groq)
	assert.NotContains(api.names, "/site/anthropic-api-key")
}

func Test_paramstore_006(t *testing.T) {
	// Remote failures are returned from fill
	client, err := paramstore.New(&fakeSSM{err: errors.New("denied")})
	require.NoError(t, err)

	password := ""
	err = paramstore.Fill(t.Context(), client, "site", map[string]*string{paramstore.ParamPassword: &password})
	assert.ErrorIs(t, err, wpmcp.ErrRemoteRequestFailed)
	assert.Empty(t, password)
}
