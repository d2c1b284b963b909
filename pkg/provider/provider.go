/*
provider contains the behaviour shared by every text generation provider:
the structured generation contract, default limits and the translation of
failures into the error taxonomy.
*/
package provider

import (
	"errors"
	"fmt"
	"strings"

	// Packages
	wpmcp "github.com/mutablelogic/go-wpmcp"
	opt "github.com/mutablelogic/go-wpmcp/pkg/opt"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Provider names
const (
	Anthropic = "anthropic"
	Groq      = "groq"
	Mistral   = "mistral"
	Gemini    = "gemini"
)

// Generation defaults
const (
	DefaultStyle        = "profesional"
	DefaultTone         = "informativo"
	DefaultLanguage     = "español"
	DefaultImprovements = "mejorar SEO, claridad y estructura"
)

// Token limits
const (
	MaxTokensStructured = 4000
	MaxTokensSimple     = 2000
	MaxTokensImprove    = 4000
)

// Accepted values for style and tone
var (
	Styles = []string{"profesional", "casual", "técnico", "creativo"}
	Tones  = []string{"informativo", "persuasivo", "educativo", "entretenido"}
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Names returns the provider names in order of preference
func Names() []string {
	return []string{Anthropic, Groq, Mistral, Gemini}
}

// SystemPrompt returns the instructions which ask for a single JSON
// document with title, content, excerpt, categories and tags
func SystemPrompt(style, tone, language string) string {
	var b strings.Builder
	b.WriteString("Eres un experto creador de contenido para WordPress.\n")
	b.WriteString("Tu tarea es escribir artículos de alta calidad, optimizados para SEO y bien estructurados.\n\n")
	fmt.Fprintf(&b, "Estilo: %s\nTono: %s\nIdioma: %s\n\n", style, tone, language)
	b.WriteString("IMPORTANTE: responde SOLO con un objeto JSON válido con esta estructura:\n")
	b.WriteString(`{
  "title": "Título atractivo optimizado para SEO (máximo 60 caracteres)",
  "content": "Artículo completo en HTML usando <h2>, <h3>, <p>, <ul>, <li>, <strong> y <em>. Extenso y bien estructurado, mínimo 800 palabras.",
  "excerpt": "Resumen breve del artículo (máximo 160 caracteres)",
  "categories": ["Categoría 1", "Categoría 2"],
  "tags": ["tag1", "tag2", "tag3", "tag4", "tag5"]
}`)
	b.WriteString("\n\nNo incluyas texto fuera del JSON. El contenido debe ser HTML válido.")
	return b.String()
}

// ImprovePrompt returns the instructions for rewriting an article,
// which is supplied in Markdown and returned in Markdown
func ImprovePrompt(improvements string) string {
	if improvements = strings.TrimSpace(improvements); improvements == "" {
		improvements = DefaultImprovements
	}
	return "Mejora el artículo que recibirás enfocándote en: " + improvements + ".\n" +
		"Mantén la estructura general pero optimiza el texto. " +
		"Devuelve SOLO el artículo mejorado en formato Markdown, sin comentarios adicionales."
}

// Structured returns the options for a structured completion: the system
// prompt built from style, tone and language, and the structured token limit
// unless another limit was set
func Structured(opts ...opt.Opt) []opt.Opt {
	o, err := opt.Apply(opts...)
	if err != nil {
		return []opt.Opt{opt.Error(err)}
	}
	return append(opts,
		opt.WithMaxTokens(o.GetUintDefault(opt.KeyMaxTokens, MaxTokensStructured)),
		opt.WithSystemPrompt(SystemPrompt(
			o.GetStringDefault(opt.KeyStyle, DefaultStyle),
			o.GetStringDefault(opt.KeyTone, DefaultTone),
			o.GetStringDefault(opt.KeyLanguage, DefaultLanguage),
		)),
	)
}

// Unavailable returns the error for a generator without credentials
func Unavailable(name string) error {
	return wpmcp.ErrProviderUnavailable.Withf("%s: missing api key", name)
}

// Failed wraps a transport or decoding failure. Errors which already carry
// a code are returned unchanged.
func Failed(name string, err error) error {
	var code wpmcp.Err
	if err == nil || errors.As(err, &code) {
		return err
	}
	return wpmcp.ErrProviderRequestFailed.Withf("%s: %v", name, err)
}

// Text returns the generated text, or an error when it is empty
func Text(name, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", wpmcp.ErrProviderRequestFailed.Withf("%s: empty response", name)
	}
	return text, nil
}
