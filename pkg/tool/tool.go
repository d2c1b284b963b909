package tool

import (
	"context"
	"encoding/json"
	"slices"
	"strings"
	"sync"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	types "github.com/mutablelogic/go-server/pkg/types"
	wpmcp "github.com/mutablelogic/go-wpmcp"
	schema "github.com/mutablelogic/go-wpmcp/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Tool is an interface for a tool with a name, description and JSON schema
type Tool interface {
	// Return the name of the tool
	Name() string

	// Return the description of the tool
	Description() string

	// Return the JSON schema for the tool input
	Schema() (*jsonschema.Schema, error)

	// Run the tool with the given input as JSON (may be nil)
	Run(ctx context.Context, input json.RawMessage) (any, error)
}

// Toolkit is a collection of tools with unique names. The same toolkit
// answers both listing and dispatch, so the two can never disagree.
type Toolkit struct {
	sync.RWMutex
	tools map[string]Tool
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewToolkit creates a new toolkit with the given tools.
// Returns an error if any tool has an invalid or duplicate name.
func NewToolkit(tools ...Tool) (*Toolkit, error) {
	tk := &Toolkit{
		tools: make(map[string]Tool, len(tools)),
	}
	if err := tk.Register(tools...); err != nil {
		return nil, err
	}
	return tk, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Register adds one or more tools to the toolkit
func (tk *Toolkit) Register(tools ...Tool) error {
	tk.Lock()
	defer tk.Unlock()
	for _, t := range tools {
		if t == nil {
			return wpmcp.ErrBadParameter.With("nil tool")
		}
		name := t.Name()
		if !types.IsIdentifier(name) {
			return wpmcp.ErrBadParameter.Withf("invalid tool name: %q", name)
		}
		if _, exists := tk.tools[name]; exists {
			return wpmcp.ErrBadParameter.Withf("duplicate tool name: %q", name)
		}
		tk.tools[name] = t
	}
	return nil
}

// Tools returns all tools in the toolkit, sorted by name
func (tk *Toolkit) Tools() []Tool {
	tk.RLock()
	defer tk.RUnlock()
	result := make([]Tool, 0, len(tk.tools))
	for _, t := range tk.tools {
		result = append(result, t)
	}
	slices.SortFunc(result, func(a, b Tool) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return result
}

// Lookup returns a tool by name, or nil if not found
func (tk *Toolkit) Lookup(name string) Tool {
	tk.RLock()
	defer tk.RUnlock()
	return tk.tools[name]
}

// Definitions returns the name, description and input schema of every tool
func (tk *Toolkit) Definitions() ([]schema.ToolDefinition, error) {
	tools := tk.Tools()
	result := make([]schema.ToolDefinition, 0, len(tools))
	for _, t := range tools {
		s, err := t.Schema()
		if err != nil {
			return nil, wpmcp.ErrInternalServerError.Withf("%s: %v", t.Name(), err)
		}
		result = append(result, schema.ToolDefinition{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: s,
		})
	}
	return result, nil
}

// Run executes a tool by name with the given input, which must be a JSON
// object or empty
func (tk *Toolkit) Run(ctx context.Context, name string, input json.RawMessage) (any, error) {
	tool := tk.Lookup(name)
	if tool == nil {
		return nil, wpmcp.ErrUnknownTool.Withf("%q", name)
	}
	return tool.Run(ctx, input)
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (tk *Toolkit) String() string {
	definitions, err := tk.Definitions()
	if err != nil {
		return err.Error()
	}
	return schema.Stringify(definitions)
}
