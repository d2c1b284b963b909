package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	// Packages
	events "github.com/aws/aws-lambda-go/events"
	uuid "github.com/google/uuid"
	wpmcp "github.com/mutablelogic/go-wpmcp"
	logger "github.com/mutablelogic/go-wpmcp/pkg/logger"
	mcp "github.com/mutablelogic/go-wpmcp/pkg/mcp"
	schema "github.com/mutablelogic/go-wpmcp/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Site describes the content service and generator behind the server
type Site interface {
	URL() string
	Available() bool
	Provider() string
}

// Handler answers function URL requests. POST bodies are protocol
// messages, GET returns a description of the server.
type Handler struct {
	server *mcp.Server
	site   Site
	logger *logger.Logger
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Largest request body accepted
const maxBody = 10 << 20

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func NewHandler(server *mcp.Server, site Site, logger *logger.Logger) (*Handler, error) {
	if server == nil || site == nil || logger == nil {
		return nil, wpmcp.ErrBadParameter.With("server, site and logger are required")
	}
	return &Handler{server: server, site: site, logger: logger}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (h *Handler) Handle(ctx context.Context, req events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	id := req.RequestContext.RequestID
	if id == "" {
		id = uuid.NewString()
	}
	ctx = logger.WithRequestId(ctx, id)
	method := req.RequestContext.HTTP.Method
	path := req.RawPath
	if path == "" {
		path = "/"
	}

	resp := h.handle(ctx, method, path, req)
	resp.Headers[logger.RequestIdHeader] = id
	h.logger.Printf(ctx, "%s %s %d", method, path, resp.StatusCode)
	return resp, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (h *Handler) handle(ctx context.Context, method, path string, req events.LambdaFunctionURLRequest) events.LambdaFunctionURLResponse {
	switch method {
	case http.MethodGet, http.MethodHead:
		if strings.TrimSuffix(path, "/") == "/health" {
			return jsonResponse(http.StatusOK, schema.HealthResponse{Status: "healthy"})
		}
		initialize := h.server.Initialize()
		return jsonResponse(http.StatusOK, schema.ServerInfo{
			Name:         initialize.ServerInfo.Name,
			Version:      initialize.ServerInfo.Version,
			Protocol:     initialize.Version,
			WordPressURL: h.site.URL(),
			AIAvailable:  h.site.Available(),
			Provider:     h.site.Provider(),
			Endpoints: map[string]string{
				"messages": "/",
				"health":   "/health",
			},
		})
	case http.MethodPost:
		body, err := requestBody(req)
		if err != nil {
			return jsonResponse(http.StatusBadRequest, mcp.Response{
				Version: mcp.RPCVersion,
				Err:     mcp.NewError(mcp.ErrorCodeParseError, err.Error()),
			})
		}
		response := h.server.Process(ctx, body)
		if response == nil {
			return events.LambdaFunctionURLResponse{StatusCode: http.StatusAccepted, Headers: map[string]string{}}
		}
		return jsonResponse(http.StatusOK, response)
	default:
		return jsonResponse(http.StatusMethodNotAllowed, map[string]string{"error": http.StatusText(http.StatusMethodNotAllowed)})
	}
}

func requestBody(req events.LambdaFunctionURLRequest) ([]byte, error) {
	var body []byte
	if req.IsBase64Encoded {
		data, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return nil, err
		}
		body = data
	} else {
		body = []byte(req.Body)
	}
	if len(body) > maxBody {
		return nil, wpmcp.ErrBadParameter.Withf("request body exceeds %d bytes", maxBody)
	}
	return body, nil
}

func jsonResponse(status int, v any) events.LambdaFunctionURLResponse {
	headers := map[string]string{"Content-Type": "application/json"}
	data, err := json.Marshal(v)
	if err != nil {
		return events.LambdaFunctionURLResponse{StatusCode: http.StatusInternalServerError, Headers: headers}
	}
	return events.LambdaFunctionURLResponse{StatusCode: status, Headers: headers, Body: string(data)}
}
