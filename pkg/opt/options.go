package opt

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Content request keys, which map directly onto query parameters
const (
	KeyPerPage = "per_page"
	KeyPage    = "page"
	KeyStatus  = "status"
	KeySearch  = "search"
	KeyForce   = "force"
)

// Generation request keys
const (
	KeySystem    = "system"
	KeyMaxTokens = "max_tokens"
	KeyStyle     = "style"
	KeyTone      = "tone"
	KeyLanguage  = "language"
	KeyModel     = "model"
)

// The maximum number of items the content service returns in a page
const MaxPerPage = 100

///////////////////////////////////////////////////////////////////////////////
// CONTENT OPTIONS

// WithPerPage sets the number of items in a listing, which is capped
// at MaxPerPage
func WithPerPage(n uint) Opt {
	return SetUint(KeyPerPage, min(n, MaxPerPage))
}

// WithPage sets the page number of a listing, starting at one
func WithPage(n uint) Opt {
	return SetUint(KeyPage, n)
}

// WithStatus filters a listing by post status
func WithStatus(status string) Opt {
	return SetString(KeyStatus, status)
}

// WithSearch filters a listing by a search term
func WithSearch(search string) Opt {
	return SetString(KeySearch, search)
}

// WithForce controls whether a delete is permanent
func WithForce(force bool) Opt {
	return SetBool(KeyForce, force)
}

///////////////////////////////////////////////////////////////////////////////
// GENERATION OPTIONS

// WithSystemPrompt sets the system instructions for a completion
func WithSystemPrompt(system string) Opt {
	return SetString(KeySystem, system)
}

// WithMaxTokens sets the maximum number of tokens to generate
func WithMaxTokens(n uint) Opt {
	return SetUint(KeyMaxTokens, n)
}

// WithStyle sets the writing style for structured generation
func WithStyle(style string) Opt {
	return SetString(KeyStyle, style)
}

// WithTone sets the tone for structured generation
func WithTone(tone string) Opt {
	return SetString(KeyTone, tone)
}

// WithLanguage sets the output language for structured generation
func WithLanguage(language string) Opt {
	return SetString(KeyLanguage, language)
}

// WithModel overrides the provider default model
func WithModel(model string) Opt {
	return SetString(KeyModel, model)
}
