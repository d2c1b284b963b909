package httphandler

import (
	"net/http"

	// Packages
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	openapi "github.com/mutablelogic/go-server/pkg/openapi/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
	manager "github.com/mutablelogic/go-wpmcp/pkg/manager"
	mcp "github.com/mutablelogic/go-wpmcp/pkg/mcp"
	schema "github.com/mutablelogic/go-wpmcp/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: /
func InfoHandler(manager *manager.Manager, server *mcp.Server) (string, http.HandlerFunc, *openapi.PathItem) {
	return "/{$}", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead:
				initialize := server.Initialize()
				_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), schema.ServerInfo{
					Name:         initialize.ServerInfo.Name,
					Version:      initialize.ServerInfo.Version,
					Protocol:     initialize.Version,
					WordPressURL: manager.URL(),
					AIAvailable:  manager.Available(),
					Provider:     manager.Provider(),
					Endpoints: map[string]string{
						"messages": "/mcp/messages",
						"sse":      "/mcp/sse",
						"stream":   "/stream",
						"health":   "/health",
						"posts":    "/posts",
					},
				})
			case http.MethodPost:
				server.ServeHTTP(w, r)
			default:
				_ = httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
			}
		}, types.Ptr(openapi.PathItem{
			Get: &openapi.Operation{
				Description: "Describe the server",
			},
			Post: &openapi.Operation{
				Description: "Handle a JSON-RPC request",
			},
		})
}

// Path: /health
func HealthHandler() (string, http.HandlerFunc, *openapi.PathItem) {
	return "/health", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead:
				_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), schema.HealthResponse{Status: "healthy"})
			default:
				_ = httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
			}
		}, types.Ptr(openapi.PathItem{
			Get: &openapi.Operation{
				Description: "Report the server is running",
			},
		})
}

// Path: /mcp, /mcp/messages, /stream
func MessageHandler(path string, server *mcp.Server) (string, http.HandlerFunc, *openapi.PathItem) {
	return path, server.ServeHTTP, types.Ptr(openapi.PathItem{
		Post: &openapi.Operation{
			Description: "Handle a JSON-RPC request",
		},
	})
}

// Path: /mcp/sse
func EventHandler(server *mcp.Server) (string, http.HandlerFunc, *openapi.PathItem) {
	return "/mcp/sse", server.ServeEvents, types.Ptr(openapi.PathItem{
		Get: &openapi.Operation{
			Description: "Open a notification channel",
		},
	})
}
