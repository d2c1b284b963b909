package tool

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	wpmcp "github.com/mutablelogic/go-wpmcp"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Func is a tool whose input is decoded into T before fn is called.
// Fields of T without omitempty are required arguments.
type Func[T any] struct {
	name        string
	description string
	fn          func(context.Context, T) (any, error)
	enums       map[string][]string
}

// FuncOpt sets a constraint on the input of a tool
type FuncOpt func(*funcopts)

type funcopts struct {
	enums map[string][]string
}

var _ Tool = (*Func[struct{}])(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func NewFunc[T any](name, description string, fn func(context.Context, T) (any, error), opts ...FuncOpt) *Func[T] {
	o := funcopts{enums: make(map[string][]string)}
	for _, opt := range opts {
		opt(&o)
	}
	return &Func[T]{
		name:        name,
		description: description,
		fn:          fn,
		enums:       o.enums,
	}
}

// WithEnum lists the values a string property accepts
func WithEnum(property string, values ...string) FuncOpt {
	return func(o *funcopts) {
		o.enums[property] = values
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (f *Func[T]) Name() string {
	return f.name
}

func (f *Func[T]) Description() string {
	return f.description
}

func (f *Func[T]) Schema() (*jsonschema.Schema, error) {
	s, err := jsonschema.For[T](nil)
	if err != nil {
		return nil, err
	}
	for property, values := range f.enums {
		p, exists := s.Properties[property]
		if !exists {
			return nil, fmt.Errorf("enum for unknown property %q", property)
		}
		p.Enum = make([]any, 0, len(values)+1)
		for _, value := range values {
			p.Enum = append(p.Enum, value)
		}
		if slices.Contains(p.Types, "null") {
			p.Enum = append(p.Enum, nil)
		}
	}
	return s, nil
}

// Run checks required arguments are present, decodes the input and calls
// the tool function
func (f *Func[T]) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var args T

	// No input is treated as an empty object
	if input = bytes.TrimSpace(input); len(input) == 0 || bytes.Equal(input, []byte("null")) {
		input = json.RawMessage("{}")
	}

	// Check required arguments
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(input, &fields); err != nil {
		return nil, wpmcp.ErrBadParameter.Withf("arguments must be an object: %v", err)
	}
	if s, err := f.Schema(); err != nil {
		return nil, wpmcp.ErrInternalServerError.With(err)
	} else {
		for _, key := range s.Required {
			if value, exists := fields[key]; !exists || bytes.Equal(value, []byte("null")) {
				return nil, wpmcp.ErrMissingArgument.With(key)
			}
		}
	}

	// Check enumerated arguments, where empty is the default
	for property, values := range f.enums {
		value, exists := fields[property]
		if !exists || bytes.Equal(value, []byte("null")) {
			continue
		}
		var str string
		if err := json.Unmarshal(value, &str); err != nil {
			return nil, wpmcp.ErrBadParameter.Withf("%s: must be a string", property)
		} else if str != "" && !slices.Contains(values, str) {
			return nil, wpmcp.ErrBadParameter.Withf("%s: %q is not one of %s", property, str, strings.Join(values, ", "))
		}
	}

	// Decode the arguments
	if err := json.Unmarshal(input, &args); err != nil {
		return nil, wpmcp.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
	}

	// Run the tool
	return f.fn(ctx, args)
}
