// Implements a JSON-RPC 2.0 tool server which follows the lifecycle in
// https://modelcontextprotocol.io/specification/2024-11-05/basic/lifecycle
package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	// Packages
	log "github.com/charmbracelet/log"
	wpmcp "github.com/mutablelogic/go-wpmcp"
	tool "github.com/mutablelogic/go-wpmcp/pkg/tool"
)

///////////////////////////////////////////////////////////////////////
// TYPES

type Server struct {
	name    string
	version string
	toolkit *tool.Toolkit
	logger  *log.Logger

	// Private members
	mu       sync.RWMutex       // Handler map lock
	handlers map[string]Handler // Method handlers
}

type Handler func(context.Context, json.RawMessage) (any, error)

///////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new server for a toolkit, reporting the given version
func New(version string, toolkit *tool.Toolkit, opts ...Opt) (*Server, error) {
	if toolkit == nil {
		return nil, wpmcp.ErrBadParameter.With("toolkit is required")
	}

	server := &Server{
		name:     ServerName,
		version:  version,
		toolkit:  toolkit,
		logger:   log.New(io.Discard),
		handlers: make(map[string]Handler, 5),
	}
	if err := server.apply(opts...); err != nil {
		return nil, err
	}

	// Register default handlers
	server.HandlerFunc(MessageTypeInitialize, server.handleInitialize)
	server.HandlerFunc(MessageTypePing, server.handlePing)
	server.HandlerFunc(NotificationTypeInitialized, server.handleInitialized)
	server.HandlerFunc(MessageTypeListTools, server.handleListTools)
	server.HandlerFunc(MessageTypeCallTool, server.handleCallTool)

	// Return success
	return server, nil
}

///////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// RunStdio reads newline delimited requests from r and writes responses
// to w, until r is exhausted or the context is done. Requests are handled
// concurrently so responses may be written out of order.
func (server *Server) RunStdio(ctx context.Context, r io.Reader, w io.Writer) error {
	var requests, output sync.WaitGroup

	reader := bufio.NewReader(r)
	writer := bufio.NewWriter(w)

	// Writer goroutine owns the output, and exits after the last request
	writerCh := make(chan []byte)
	defer func() {
		requests.Wait()
		close(writerCh)
		output.Wait()
	}()
	output.Go(func() {
		for data := range writerCh {
			if _, err := writer.Write(data); err != nil {
				server.logger.Error("stdio write failed", "err", err)
				continue
			}
			writer.Flush()
		}
	})

	// Continue receiving input until the context is done
	var request strings.Builder
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		part, isPrefix, err := reader.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return err
		}
		request.Write(part)
		if isPrefix {
			continue
		}
		payload := strings.TrimSpace(request.String())
		request.Reset()
		if payload == "" {
			continue
		}

		requests.Go(func() {
			if response := server.Process(ctx, []byte(payload)); response != nil {
				if data, err := json.Marshal(response); err != nil {
					server.logger.Error("stdio encode failed", "err", err)
				} else {
					writerCh <- append(data, '\n')
				}
			}
		})
	}

	// Return success
	return nil
}

// Process decodes and handles a single request. It returns nil when the
// request is a notification.
func (server *Server) Process(ctx context.Context, payload []byte) *Response {
	var request Request
	if err := json.Unmarshal(payload, &request); err != nil {
		return &Response{Version: RPCVersion, Err: NewError(ErrorCodeParseError, "parse error: "+err.Error(), ErrorData{Type: ErrorTypeParse})}
	}
	return server.Handle(ctx, &request)
}

// Handle calls the handler for a request. It returns nil when the request
// is a notification.
func (server *Server) Handle(ctx context.Context, request *Request) *Response {
	result, err := server.call(ctx, request)
	if request.IsNotification() {
		if err != nil {
			server.logger.Warn("notification failed", "method", request.Method, "err", err)
		}
		return nil
	}

	response := &Response{Version: RPCVersion, ID: request.ID}
	if err != nil {
		response.Err = rpcError(err)
		server.logger.Debug("request failed", "method", request.Method, "code", response.Err.Code, "err", err)
	} else if result == nil {
		response.Result = map[string]any{}
	} else {
		response.Result = result
	}
	return response
}

// HandlerFunc registers (or removes) a handler for a method
func (server *Server) HandlerFunc(method string, fn Handler) {
	server.mu.Lock()
	defer server.mu.Unlock()
	if fn == nil {
		delete(server.handlers, method)
	} else {
		server.handlers[method] = fn
	}
}

// Initialize returns the server description sent in response to
// initialize, and on the notification channel
func (server *Server) Initialize() ResponseInitialize {
	return ResponseInitialize{
		Version: ProtocolVersion,
		Capabilities: Capabilities{
			Tools: map[string]any{},
		},
		ServerInfo: ServerInfo{
			Name:    server.name,
			Version: server.version,
		},
	}
}

///////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (server *Server) call(ctx context.Context, request *Request) (any, error) {
	if request.Version != RPCVersion {
		return nil, NewError(ErrorCodeInvalidRequest, fmt.Sprintf("invalid request: unsupported version %q", request.Version), ErrorData{Type: ErrorTypeInvalidRequest})
	}

	server.mu.RLock()
	fn, exists := server.handlers[request.Method]
	server.mu.RUnlock()
	if !exists {
		return nil, NewError(ErrorCodeMethodNotFound, fmt.Sprintf("method not found: %q", request.Method), ErrorData{Type: ErrorTypeMethodNotFound})
	}

	return fn(ctx, request.Payload)
}

// rpcError converts an error into an error object. Caller errors are
// invalid parameters, everything else is an internal error.
func rpcError(err error) *Error {
	var target *Error
	if errors.As(err, &target) {
		return target
	}
	code := wpmcp.Kind(err)
	switch code {
	case wpmcp.ErrUnknownTool, wpmcp.ErrMissingArgument, wpmcp.ErrBadParameter:
		return NewError(ErrorCodeInvalidParameters, err.Error(), ErrorData{Type: code.Name()})
	default:
		return NewError(ErrorCodeInternalError, err.Error(), ErrorData{Type: code.Name()})
	}
}

///////////////////////////////////////////////////////////////////////
// HANDLERS

func (server *Server) handleInitialize(_ context.Context, _ json.RawMessage) (any, error) {
	return server.Initialize(), nil
}

func (server *Server) handlePing(_ context.Context, _ json.RawMessage) (any, error) {
	return map[string]any{}, nil
}

func (server *Server) handleInitialized(_ context.Context, _ json.RawMessage) (any, error) {
	server.logger.Debug("client initialized")
	return nil, nil
}

func (server *Server) handleListTools(_ context.Context, _ json.RawMessage) (any, error) {
	definitions, err := server.toolkit.Definitions()
	if err != nil {
		return nil, err
	}
	return &ResponseListTools{Tools: definitions}, nil
}

func (server *Server) handleCallTool(ctx context.Context, payload json.RawMessage) (any, error) {
	var req RequestToolCall
	if len(payload) == 0 {
		return nil, wpmcp.ErrMissingArgument.With("name")
	} else if err := json.Unmarshal(payload, &req); err != nil {
		return nil, wpmcp.ErrBadParameter.With(err)
	} else if req.Name == "" {
		return nil, wpmcp.ErrMissingArgument.With("name")
	}

	// Run the tool
	result, err := server.toolkit.Run(ctx, req.Name, req.Arguments)
	if err != nil {
		server.logger.Warn("tool call failed", "tool", req.Name, "err", err)
		return nil, err
	}

	// Return the result as text
	if response, err := NewTextContent(result); err != nil {
		return nil, wpmcp.ErrInternalServerError.With(err)
	} else {
		return response, nil
	}
}
