package tool_test

import (
	"context"
	"encoding/json"
	"testing"

	// Packages
	wpmcp "github.com/mutablelogic/go-wpmcp"
	tool "github.com/mutablelogic/go-wpmcp/pkg/tool"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

type echoArgs struct {
	Text  string `json:"text" jsonschema:"Text to echo"`
	Times uint   `json:"times,omitempty" jsonschema:"Number of repeats"`
}

func echo(name string) tool.Tool {
	return tool.NewFunc(name, "Echo the text", func(_ context.Context, args echoArgs) (any, error) {
		return args, nil
	})
}

func Test_toolkit_001(t *testing.T) {
	// Names must be identifiers and unique
	assert := assert.New(t)
	_, err := tool.NewToolkit(echo("not a name"))
	assert.ErrorIs(err, wpmcp.ErrBadParameter)
	_, err = tool.NewToolkit(echo("echo"), echo("echo"))
	assert.ErrorIs(err, wpmcp.ErrBadParameter)
	_, err = tool.NewToolkit(nil)
	assert.ErrorIs(err, wpmcp.ErrBadParameter)
}

func Test_toolkit_002(t *testing.T) {
	// Tools and definitions are sorted by name and carry a schema
	assert := assert.New(t)
	tk, err := tool.NewToolkit(echo("zeta"), echo("alpha"), echo("mid"))
	require.NoError(t, err)

	tools := tk.Tools()
	if assert.Len(tools, 3) {
		assert.Equal("alpha", tools[0].Name())
		assert.Equal("zeta", tools[2].Name())
	}

	definitions, err := tk.Definitions()
	require.NoError(t, err)
	require.Len(t, definitions, 3)
	assert.Equal("alpha", definitions[0].Name)
	assert.Equal("Echo the text", definitions[0].Description)
	assert.NotNil(definitions[0].InputSchema)

	data, err := json.Marshal(definitions[0])
	require.NoError(t, err)
	assert.Contains(string(data), `"inputSchema"`)
	assert.Contains(string(data), `"required":["text"]`)
}

func Test_toolkit_003(t *testing.T) {
	// Unknown tools are reported as such
	assert := assert.New(t)
	tk, err := tool.NewToolkit(echo("echo"))
	require.NoError(t, err)
	_, err = tk.Run(t.Context(), "nope", nil)
	assert.ErrorIs(err, wpmcp.ErrUnknownTool)
	assert.Nil(tk.Lookup("nope"))
}

func Test_toolkit_004(t *testing.T) {
	// Required arguments must be present
	assert := assert.New(t)
	tk, err := tool.NewToolkit(echo("echo"))
	require.NoError(t, err)

	for _, input := range []string{``, `null`, `{}`, `{"times":2}`, `{"text":null}`} {
		_, err := tk.Run(t.Context(), "echo", json.RawMessage(input))
		assert.ErrorIs(err, wpmcp.ErrMissingArgument, input)
		assert.ErrorContains(err, "text", input)
	}
}

func Test_toolkit_005(t *testing.T) {
	// Malformed arguments are bad parameters
	assert := assert.New(t)
	tk, err := tool.NewToolkit(echo("echo"))
	require.NoError(t, err)

	_, err = tk.Run(t.Context(), "echo", json.RawMessage(`[1]`))
	assert.ErrorIs(err, wpmcp.ErrBadParameter)
	_, err = tk.Run(t.Context(), "echo", json.RawMessage(`{"text":1}`))
	assert.ErrorIs(err, wpmcp.ErrBadParameter)
}

func Test_toolkit_006(t *testing.T) {
	// Arguments are decoded and passed to the tool
	assert := assert.New(t)
	tk, err := tool.NewToolkit(echo("echo"))
	require.NoError(t, err)

	result, err := tk.Run(t.Context(), "echo", json.RawMessage(`{"text":"hi","times":3}`))
	require.NoError(t, err)
	assert.Equal(echoArgs{Text: "hi", Times: 3}, result)
}

func Test_toolkit_007(t *testing.T) {
	// Enumerated arguments are listed in the schema and checked on input
	assert := assert.New(t)
	type moodArgs struct {
		Mood  string  `json:"mood,omitempty"`
		Level *string `json:"level,omitempty"`
	}
	fn := tool.NewFunc("mood", "Set the mood", func(_ context.Context, args moodArgs) (any, error) {
		return args.Mood, nil
	}, tool.WithEnum("mood", "calm", "happy"), tool.WithEnum("level", "low", "high"))

	s, err := fn.Schema()
	require.NoError(t, err)
	assert.Equal([]any{"calm", "happy"}, s.Properties["mood"].Enum)
	assert.Equal([]any{"low", "high", nil}, s.Properties["level"].Enum)

	result, err := fn.Run(t.Context(), json.RawMessage(`{"mood":"calm","level":"low"}`))
	require.NoError(t, err)
	assert.Equal("calm", result)
	_, err = fn.Run(t.Context(), json.RawMessage(`{"mood":""}`))
	assert.NoError(err)
	_, err = fn.Run(t.Context(), json.RawMessage(`{"mood":"angry"}`))
	assert.ErrorIs(err, wpmcp.ErrBadParameter)
	_, err = fn.Run(t.Context(), json.RawMessage(`{"level":"max"}`))
	assert.ErrorIs(err, wpmcp.ErrBadParameter)
	_, err = fn.Run(t.Context(), json.RawMessage(`{"mood":1}`))
	assert.ErrorIs(err, wpmcp.ErrBadParameter)

	// Enums for unknown properties are a schema error
	_, err = tool.NewFunc("mood", "Set the mood", func(_ context.Context, args moodArgs) (any, error) {
		return nil, nil
	}, tool.WithEnum("colour", "red")).Schema()
	assert.Error(err)
}
