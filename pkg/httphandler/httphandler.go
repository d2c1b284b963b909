package httphandler

import (
	"errors"
	"net/http"

	// Packages
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	jsonschema "github.com/mutablelogic/go-server/pkg/jsonschema"
	openapi "github.com/mutablelogic/go-server/pkg/openapi/schema"
	wpmcp "github.com/mutablelogic/go-wpmcp"
	manager "github.com/mutablelogic/go-wpmcp/pkg/manager"
	mcp "github.com/mutablelogic/go-wpmcp/pkg/mcp"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Router is satisfied by httprouter.Router, which applies its middleware
// to every path it registers
type Router interface {
	RegisterPath(path string, params *jsonschema.Schema, pathitem httprequest.PathItem) error
}

// pathItem serves one handler for every method, which switches on the
// method itself
type pathItem struct {
	handler http.HandlerFunc
	spec    *openapi.PathItem
}

var _ httprequest.PathItem = (*pathItem)(nil)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// RegisterHandlers registers the protocol endpoints, the notification
// channel and the REST endpoints with a router
func RegisterHandlers(manager *manager.Manager, server *mcp.Server, router Router) error {
	var result error

	// Convenience function to register a handler and accumulate any errors
	register := func(path string, handler http.HandlerFunc, spec *openapi.PathItem) {
		result = errors.Join(result, router.RegisterPath(path, nil, &pathItem{handler, spec}))
	}

	// Information and protocol
	register(InfoHandler(manager, server))
	register(HealthHandler())
	for _, path := range []string{"/stream", "/mcp", "/mcp/messages"} {
		register(MessageHandler(path, server))
	}
	register(EventHandler(server))

	// REST
	register(PostListHandler(manager))
	register(PostCreateHandler(manager))
	register(CategoryListHandler(manager))
	register(TagListHandler(manager))
	register(GeneratePostHandler(manager))
	register(GenerateContentHandler(manager))
	register(ImprovePostHandler(manager))

	// Return any errors
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PATH ITEM

func (p *pathItem) Handler() http.HandlerFunc {
	return p.handler
}

func (p *pathItem) Spec(string, *jsonschema.Schema) *openapi.PathItem {
	return p.spec
}

func (p *pathItem) WrapHandler(_ string, fn func(http.HandlerFunc) http.HandlerFunc) {
	p.handler = fn(p.handler)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// httpErr converts an error code to an httpresponse.Err, preserving the
// original error message. Unknown error codes map to 500.
func httpErr(err error) error {
	var code wpmcp.Err
	if !errors.As(err, &code) {
		return httpresponse.ErrInternalError.With(err)
	}
	switch code {
	case wpmcp.ErrBadParameter, wpmcp.ErrMissingArgument:
		return httpresponse.ErrBadRequest.With(err)
	case wpmcp.ErrNotFound, wpmcp.ErrUnknownTool:
		return httpresponse.ErrNotFound.With(err)
	case wpmcp.ErrProviderUnavailable:
		return httpresponse.Err(http.StatusServiceUnavailable).With(err)
	case wpmcp.ErrAuthenticationFailed:
		return httpresponse.Err(http.StatusUnauthorized).With(err)
	case wpmcp.ErrRemoteRequestFailed, wpmcp.ErrProviderRequestFailed, wpmcp.ErrNormalization:
		return httpresponse.Err(http.StatusBadGateway).With(err)
	default:
		return httpresponse.ErrInternalError.With(err)
	}
}
