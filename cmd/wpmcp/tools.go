package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	// Packages
	mcp "github.com/mutablelogic/go-wpmcp/pkg/mcp"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ToolCommands struct {
	ListTools ListToolsCommand `cmd:"" name:"tools" help:"List available tools." group:"TOOL"`
	CallTool  CallToolCommand  `cmd:"" name:"call" help:"Call a tool with JSON arguments." group:"TOOL"`
}

type ListToolsCommand struct {
	JSON bool `name:"json" help:"Output definitions with input schemas as JSON"`
}

type CallToolCommand struct {
	Name  string          `arg:"" name:"name" help:"Tool name"`
	Input json.RawMessage `arg:"" name:"input" optional:"" help:"JSON arguments for the tool (optional)"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ListToolsCommand) Run(ctx *Globals) error {
	manager, err := ctx.Manager()
	if err != nil {
		return err
	}

	// Output definitions as JSON
	if cmd.JSON {
		definitions, err := manager.Toolkit().Definitions()
		if err != nil {
			return err
		}
		return printJSON(mcp.ResponseListTools{Tools: definitions})
	}

	// Output as a table
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, tool := range manager.Toolkit().Tools() {
		fmt.Fprintf(w, "%s\t%s\n", tool.Name(), tool.Description())
	}
	return w.Flush()
}

func (cmd *CallToolCommand) Run(ctx *Globals) error {
	manager, err := ctx.Manager()
	if err != nil {
		return err
	}
	result, err := manager.CallTool(ctx.ctx, cmd.Name, cmd.Input)
	if err != nil {
		return err
	}
	return printJSON(result)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, string(data))
	return err
}
