package mcp

import (
	"encoding/json"
	"fmt"

	// Packages
	schema "github.com/mutablelogic/go-wpmcp/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////
// TYPES

type Request struct {
	Version string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	ID      json.RawMessage `json:"id,omitempty"` // string, number or null, absent for notifications
	Payload json.RawMessage `json:"params,omitempty"`
}

type Response struct {
	Version string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Err     *Error          `json:"error,omitempty"`
}

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorData identifies the kind of failure behind an error
type ErrorData struct {
	Type string `json:"type"`
}

type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type Capabilities struct {
	Tools map[string]any `json:"tools"`
}

type ResponseInitialize struct {
	Version      string       `json:"protocolVersion"`
	Capabilities Capabilities `json:"capabilities"`
	ServerInfo   ServerInfo   `json:"serverInfo"`
}

// EventInitialized is sent once when a notification channel opens
type EventInitialized struct {
	ResponseInitialize
	Session string `json:"sessionId"`
}

type RequestToolCall struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

type ResponseListTools struct {
	Tools []schema.ToolDefinition `json:"tools"`
}

type ResponseToolCall struct {
	Content []*Content `json:"content"`
}

type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	RPCVersion      = "2.0"
	ProtocolVersion = "2024-11-05"
	ServerName      = "wordpress-mcp"

	// Message types
	MessageTypeInitialize = "initialize"
	MessageTypePing       = "ping"
	MessageTypeListTools  = "tools/list"
	MessageTypeCallTool   = "tools/call"

	// Notification types
	NotificationTypeInitialized = "notifications/initialized"

	// Event types on the notification channel
	EventTypeInitialized = "initialized"

	// Error codes
	ErrorCodeParseError        = -32700
	ErrorCodeInvalidRequest    = -32600
	ErrorCodeMethodNotFound    = -32601
	ErrorCodeInvalidParameters = -32602
	ErrorCodeInternalError     = -32603

	// Error data types for protocol errors
	ErrorTypeParse          = "parse_error"
	ErrorTypeInvalidRequest = "invalid_request"
	ErrorTypeMethodNotFound = "method_not_found"
)

////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func NewError(code int, message string, data ...any) *Error {
	switch len(data) {
	case 0:
		return &Error{Code: code, Message: message}
	case 1:
		return &Error{Code: code, Message: message, Data: data[0]}
	default:
		return &Error{Code: code, Message: message, Data: data}
	}
}

// NewTextContent returns a tool result as indented JSON text
func NewTextContent(v any) (*ResponseToolCall, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return &ResponseToolCall{
		Content: []*Content{{Type: "text", Text: string(data)}},
	}, nil
}

////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e *Error) Error() string {
	if e.Data != nil {
		return fmt.Sprintf("%d: %s (%v)", e.Code, e.Message, e.Data)
	}
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// IsNotification returns true when the request has no id member. An id
// of null still expects a response.
func (r *Request) IsNotification() bool {
	return len(r.ID) == 0
}
