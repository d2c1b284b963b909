package main

import (
	"crypto/tls"
	"fmt"
	"os"

	// Packages
	httprouter "github.com/mutablelogic/go-server/pkg/httprouter"
	httpserver "github.com/mutablelogic/go-server/pkg/httpserver"
	httphandler "github.com/mutablelogic/go-wpmcp/pkg/httphandler"
	manager "github.com/mutablelogic/go-wpmcp/pkg/manager"
	mcp "github.com/mutablelogic/go-wpmcp/pkg/mcp"
	version "github.com/mutablelogic/go-wpmcp/pkg/version"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ServerCommands struct {
	RunServer   RunServer   `cmd:"" name:"run" help:"Run the HTTP server." group:"SERVER"`
	StdioServer StdioServer `cmd:"" name:"stdio" help:"Serve protocol messages on stdin and stdout." group:"SERVER"`
}

type RunServer struct {
	// TLS server options
	TLS struct {
		ServerName string `name:"name" help:"TLS server name"`
		CertFile   string `name:"cert" help:"TLS certificate file"`
		KeyFile    string `name:"key" help:"TLS key file"`
	} `embed:"" prefix:"tls."`
}

type StdioServer struct{}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *RunServer) Run(ctx *Globals) error {
	manager, err := ctx.Manager()
	if err != nil {
		return err
	}
	server, err := mcp.New(version.Version(), manager.Toolkit(), mcp.WithLogger(ctx.logger.Logger))
	if err != nil {
		return err
	}
	return cmd.Serve(ctx, manager, server, version.Version())
}

// Serve creates the HTTP server and blocks until the context is cancelled
func (cmd *RunServer) Serve(ctx *Globals, manager *manager.Manager, server *mcp.Server, versionTag string) error {
	// Every request is logged
	middleware := []httprouter.HTTPMiddlewareFunc{ctx.logger.WrapFunc}

	// The server serves its mux directly, so cross-origin headers are set
	// on each route
	if ctx.HTTP.Origin != "" {
		middleware = append(middleware, httprouter.Cors(ctx.HTTP.Origin))
	}

	// Create the TLS config if TLS options are provided
	tlsConfig, err := cmd.tlsConfig()
	if err != nil {
		return err
	}

	// Create the server
	addr := listenAddr(ctx.HTTP.Addr)
	httpserver, err := httpserver.New(addr, tlsConfig)
	if err != nil {
		return err
	}

	// Create the HTTP router on the server mux
	router, err := httprouter.NewRouter(ctx.ctx, httpserver.Router(), ctx.HTTP.Prefix, ctx.HTTP.Origin, "WordPress MCP Server", versionTag, middleware...)
	if err != nil {
		return err
	}
	if err := httphandler.RegisterHandlers(manager, server, router); err != nil {
		return err
	}

	// Run the server
	ctx.logger.Printf(ctx.ctx, "%s@%s started on %s for %s (ai=%v)", ctx.execName, versionTag, addr, manager.URL(), manager.Available())
	if err := httpserver.Run(ctx.ctx); err != nil {
		return err
	}

	// Return success
	ctx.logger.Printf(ctx.ctx, "%s@%s stopped", ctx.execName, versionTag)
	return nil
}

func (cmd *StdioServer) Run(ctx *Globals) error {
	manager, err := ctx.Manager()
	if err != nil {
		return err
	}
	server, err := mcp.New(version.Version(), manager.Toolkit(), mcp.WithLogger(ctx.logger.Logger))
	if err != nil {
		return err
	}

	ctx.logger.Printf(ctx.ctx, "%s@%s serving %s on stdio", ctx.execName, version.Version(), manager.URL())
	return server.RunStdio(ctx.ctx, os.Stdin, os.Stdout)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (cmd *RunServer) tlsConfig() (*tls.Config, error) {
	if cmd.TLS.CertFile == "" && cmd.TLS.KeyFile == "" {
		return nil, nil
	}
	var pemData [][]byte
	for _, path := range []string{cmd.TLS.CertFile, cmd.TLS.KeyFile} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read TLS file: %w", err)
		}
		pemData = append(pemData, data)
	}
	config, err := httpserver.TLSConfig(cmd.TLS.ServerName, false, pemData...)
	if err != nil {
		return nil, fmt.Errorf("failed to create TLS config: %w", err)
	}
	return config, nil
}
