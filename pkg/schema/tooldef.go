package schema

// ToolDefinition is the description of a tool as it is listed to callers.
// Definitions are built once when the toolkit is created.
type ToolDefinition struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	InputSchema any    `json:"inputSchema"`
}

// ToolCallRequest is a single invocation of a tool by name
type ToolCallRequest struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments,omitempty"`
}
