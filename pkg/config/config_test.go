package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	// Packages
	client "github.com/mutablelogic/go-client"
	wpmcp "github.com/mutablelogic/go-wpmcp"
	config "github.com/mutablelogic/go-wpmcp/pkg/config"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

// params is a parameter store backed by a map
type params map[string]string

func (p params) GetParameter(_ context.Context, name string) (string, error) {
	if value, exists := p[name]; exists {
		return value, nil
	}
	return "", wpmcp.ErrNotFound.With(name)
}

func site() config.Config {
	var c config.Config
	c.WordPress.URL = "https://example.com"
	c.WordPress.User = "admin"
	c.WordPress.Password = "abcd efgh ijkl mnop"
	return c
}

func Test_config_001(t *testing.T) {
	// The content service settings are required
	assert := assert.New(t)
	var c config.Config
	err := c.Validate()
	assert.ErrorIs(err, wpmcp.ErrBadParameter)
	assert.Contains(err.Error(), "WP_URL")
	assert.Contains(err.Error(), "WP_APP_PASSWORD")

	c = site()
	assert.NoError(c.Validate())
	c.Generation.Provider = "openai"
	assert.ErrorIs(c.Validate(), wpmcp.ErrBadParameter)
	c.Generation.Provider = "Groq"
	assert.NoError(c.Validate())
}

func Test_config_002(t *testing.T) {
	// Without a key there is no generator
	c := site()
	generator, err := c.Generator(time.Second)
	require.NoError(t, err)
	assert.Nil(t, generator)

	c.Generation.Provider = "anthropic"
	c.GroqAPIKey = "gsk"
	generator, err = c.Generator(time.Second)
	require.NoError(t, err)
	assert.Nil(t, generator)
}

func Test_config_003(t *testing.T) {
	// The first provider with a key is used unless one is named
	assert := assert.New(t)
	c := site()
	c.MistralAPIKey = "mk"
	c.GeminiAPIKey = "gk"
	generator, err := c.Generator(time.Second)
	require.NoError(t, err)
	require.NotNil(t, generator)
	assert.Equal("mistral", generator.Name())
	assert.True(generator.Available())

	c.Generation.Provider = "gemini"
	generator, err = c.Generator(time.Second)
	require.NoError(t, err)
	require.NotNil(t, generator)
	assert.Equal("gemini", generator.Name())

	c.Generation.Provider = ""
	c.MistralAPIKey = ""
	c.GeminiAPIKey = ""
	c.GroqAPIKey = "gsk"
	c.GroqEndpoint = "http://localhost:11434/v1"
	generator, err = c.Generator(time.Second)
	require.NoError(t, err)
	require.NotNil(t, generator)
	assert.Equal("groq", generator.Name())
}

func Test_config_004(t *testing.T) {
	// A file only fills empty values
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "wpmcp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
wordpress:
  url: https://file.example.com
  user: editor
  password: " from file "
generation:
  provider: groq
  groq_api_key: gsk
ssm_prefix: /wpmcp
`), 0o600))

	var c config.Config
	c.WordPress.URL = "https://flag.example.com"
	require.NoError(t, c.Load(path))
	assert.Equal("https://flag.example.com", c.WordPress.URL)
	assert.Equal("editor", c.WordPress.User)
	assert.Equal("from file", c.WordPress.Password)
	assert.Equal("groq", c.Generation.Provider)
	assert.Equal("gsk", c.GroqAPIKey)
	assert.Equal("/wpmcp", c.SSMPrefix)

	assert.NoError(c.Load(""))
	assert.ErrorIs(c.Load(filepath.Join(t.TempDir(), "missing.yaml")), wpmcp.ErrNotFound)
}

func Test_config_005(t *testing.T) {
	// Secrets are filled from the parameter store
	assert := assert.New(t)
	store := params{
		"/site/wp-app-password":   "stored",
		"/site/mistral-api-key":   "mk",
		"/site/anthropic-api-key": "ak",
	}

	c := site()
	require.NoError(t, c.LoadSecrets(t.Context(), store))
	assert.Equal("abcd efgh ijkl mnop", c.WordPress.Password)
	assert.Empty(c.MistralAPIKey)

	c.SSMPrefix = "site"
	c.WordPress.Password = ""
	c.AnthropicAPIKey = "given"
	require.NoError(t, c.LoadSecrets(t.Context(), store))
	assert.Equal("stored", c.WordPress.Password)
	assert.Equal("mk", c.MistralAPIKey)
	assert.Equal("given", c.AnthropicAPIKey)
	assert.Empty(c.GroqAPIKey)
}

func Test_config_006(t *testing.T) {
	// Secrets are redacted when described
	assert := assert.New(t)
	c := site()
	c.AnthropicAPIKey = "sk-ant-0123456789"
	s := c.String()
	assert.Contains(s, "https://example.com")
	assert.NotContains(s, "efgh")
	assert.NotContains(s, "0123456789")
	assert.Contains(s, "anthropic=")
}

func Test_config_007(t *testing.T) {
	// Content requests keep fixed timeouts when a client timeout is passed
	assert := assert.New(t)
	c := site()
	content, err := c.Content(client.OptTimeout(5 * time.Minute))
	require.NoError(t, err)
	crud, upload := content.Timeouts()
	assert.Equal(30*time.Second, crud)
	assert.Equal(60*time.Second, upload)
}
