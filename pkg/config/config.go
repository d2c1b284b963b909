/*
config holds the settings needed to reach the content service and a text
generation provider. Values come from flags and environment variables, and
any left empty may be filled from a YAML file or from SSM Parameter Store.
*/
package config

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	// Packages
	client "github.com/mutablelogic/go-client"
	wpmcp "github.com/mutablelogic/go-wpmcp"
	logger "github.com/mutablelogic/go-wpmcp/pkg/logger"
	paramstore "github.com/mutablelogic/go-wpmcp/pkg/paramstore"
	provider "github.com/mutablelogic/go-wpmcp/pkg/provider"
	anthropic "github.com/mutablelogic/go-wpmcp/pkg/provider/anthropic"
	google "github.com/mutablelogic/go-wpmcp/pkg/provider/google"
	groq "github.com/mutablelogic/go-wpmcp/pkg/provider/groq"
	mistral "github.com/mutablelogic/go-wpmcp/pkg/provider/mistral"
	wordpress "github.com/mutablelogic/go-wpmcp/pkg/wordpress"
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Config struct {
	WordPress  `embed:"" prefix:"wp-" yaml:"wordpress"`
	Generation `embed:"" yaml:"generation"`

	// Parameter store
	SSMPrefix string `name:"ssm-prefix" env:"WPMCP_SSM_PREFIX" help:"SSM Parameter Store prefix for secrets" yaml:"ssm_prefix"`
}

type WordPress struct {
	URL      string `name:"url" env:"WP_URL" help:"WordPress site URL" yaml:"url"`
	User     string `name:"user" env:"WP_USER,WP_USERNAME" help:"WordPress user name" yaml:"user"`
	Password string `name:"password" env:"WP_APP_PASSWORD,WP_PASSWORD" help:"WordPress application password" yaml:"password"`
}

type Generation struct {
	Provider string `name:"provider" env:"AI_PROVIDER" help:"Text generation provider (anthropic, groq, mistral, gemini)" yaml:"provider"`
	Model    string `name:"model" env:"AI_MODEL" help:"Text generation model" yaml:"model"`

	// Provider API Keys
	AnthropicAPIKey string `name:"anthropic-api-key" env:"ANTHROPIC_API_KEY" help:"Anthropic API key" yaml:"anthropic_api_key"`
	GroqAPIKey      string `name:"groq-api-key" env:"GROQ_API_KEY" help:"Groq API key" yaml:"groq_api_key"`
	MistralAPIKey   string `name:"mistral-api-key" env:"MISTRAL_API_KEY" help:"Mistral API key" yaml:"mistral_api_key"`
	GeminiAPIKey    string `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Google Gemini API key" yaml:"gemini_api_key"`
	GroqEndpoint    string `name:"groq-endpoint" env:"GROQ_ENDPOINT" help:"OpenAI compatible endpoint used with the groq provider" yaml:"groq_endpoint"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Load fills empty values from a YAML file. An empty path is ignored.
func (c *Config) Load(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return wpmcp.ErrNotFound.Withf("config: %v", err)
	}
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return wpmcp.ErrBadParameter.Withf("config: %s: %v", path, err)
	}
	c.merge(&file)
	return nil
}

// LoadSecrets fills the password and provider keys which are empty from
// parameters under the SSM prefix. Without a prefix nothing is read.
func (c *Config) LoadSecrets(ctx context.Context, getter paramstore.Getter) error {
	if c.SSMPrefix == "" {
		return nil
	}
	secrets := map[string]*string{
		paramstore.ParamPassword: &c.WordPress.Password,
	}
	for name, key := range c.keys() {
		secrets[paramstore.ProviderKey(name)] = key
	}
	return paramstore.Fill(ctx, getter, c.SSMPrefix, secrets)
}

// Validate returns an error if the content service cannot be reached with
// this configuration. Generation settings only fail for an unknown provider.
func (c *Config) Validate() error {
	var missing []string
	if c.WordPress.URL == "" {
		missing = append(missing, "WP_URL")
	}
	if c.WordPress.User == "" {
		missing = append(missing, "WP_USER")
	}
	if c.WordPress.Password == "" {
		missing = append(missing, "WP_APP_PASSWORD")
	}
	if len(missing) > 0 {
		return wpmcp.ErrBadParameter.Withf("missing configuration: %s", strings.Join(missing, ", "))
	}
	if name := c.providerName(); name != "" && !slices.Contains(provider.Names(), name) {
		return wpmcp.ErrBadParameter.Withf("unknown provider %q", c.Generation.Provider)
	}
	return nil
}

// Content returns a client for the content service
func (c *Config) Content(opts ...client.ClientOpt) (*wordpress.Client, error) {
	return wordpress.New(c.WordPress.URL, c.WordPress.User, c.WordPress.Password, opts...)
}

// Generator returns the configured provider, or the first provider with a
// key when none is named. Returns nil when no provider has a key.
func (c *Config) Generator(timeout time.Duration, opts ...client.ClientOpt) (wpmcp.Generator, error) {
	name := c.providerName()
	keys := c.keys()
	if name == "" {
		for _, candidate := range provider.Names() {
			if *keys[candidate] != "" {
				name = candidate
				break
			}
		}
	}
	if name == "" || *keys[name] == "" {
		return nil, nil
	}

	key := *keys[name]
	switch name {
	case provider.Anthropic:
		if generator, err := anthropic.New(key, c.Model, opts...); err != nil {
			return nil, err
		} else {
			return generator, nil
		}
	case provider.Mistral:
		if generator, err := mistral.New(key, c.Model, opts...); err != nil {
			return nil, err
		} else {
			return generator, nil
		}
	case provider.Gemini:
		if generator, err := google.New(key, c.Model, opts...); err != nil {
			return nil, err
		} else {
			return generator, nil
		}
	case provider.Groq:
		return groq.New(key, c.Model, groq.WithEndpoint(c.GroqEndpoint), groq.WithTimeout(timeout)), nil
	default:
		return nil, wpmcp.ErrBadParameter.Withf("unknown provider %q", name)
	}
}

// String describes the configuration with secrets redacted
func (c *Config) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "url=%q user=%q password=%q", c.WordPress.URL, c.WordPress.User, logger.Redact(c.WordPress.Password))
	for _, name := range provider.Names() {
		if key := *c.keys()[name]; key != "" {
			fmt.Fprintf(&b, " %s=%q", name, logger.Redact(key))
		}
	}
	if c.SSMPrefix != "" {
		fmt.Fprintf(&b, " ssm=%q", c.SSMPrefix)
	}
	return b.String()
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *Config) providerName() string {
	return strings.ToLower(strings.TrimSpace(c.Generation.Provider))
}

// keys returns the api key field for each provider
func (c *Config) keys() map[string]*string {
	return map[string]*string{
		provider.Anthropic: &c.AnthropicAPIKey,
		provider.Groq:      &c.GroqAPIKey,
		provider.Mistral:   &c.MistralAPIKey,
		provider.Gemini:    &c.GeminiAPIKey,
	}
}

func (c *Config) merge(other *Config) {
	fill(&c.WordPress.URL, other.WordPress.URL)
	fill(&c.WordPress.User, other.WordPress.User)
	fill(&c.WordPress.Password, other.WordPress.Password)
	fill(&c.Generation.Provider, other.Generation.Provider)
	fill(&c.Model, other.Model)
	fill(&c.GroqEndpoint, other.GroqEndpoint)
	fill(&c.SSMPrefix, other.SSMPrefix)
	keys := other.keys()
	for name, key := range c.keys() {
		fill(key, *keys[name])
	}
}

func fill(dst *string, src string) {
	if *dst == "" {
		*dst = strings.TrimSpace(src)
	}
}
