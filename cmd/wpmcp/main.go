package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	ssm "github.com/aws/aws-sdk-go-v2/service/ssm"
	client "github.com/mutablelogic/go-client"
	config "github.com/mutablelogic/go-wpmcp/pkg/config"
	logger "github.com/mutablelogic/go-wpmcp/pkg/logger"
	manager "github.com/mutablelogic/go-wpmcp/pkg/manager"
	paramstore "github.com/mutablelogic/go-wpmcp/pkg/paramstore"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug logging"`
	Verbose bool `name:"verbose" help:"Trace requests to the content service and providers"`

	// Configuration
	File          string `name:"config" env:"WPMCP_CONFIG" help:"YAML configuration file, fills any value not otherwise set" type:"path"`
	config.Config `embed:""`

	// HTTP options
	HTTP struct {
		Addr    string        `name:"addr" env:"PORT" default:":8000" help:"Listen address or port"`
		Prefix  string        `name:"prefix" default:"/" help:"Path prefix for all endpoints"`
		Origin  string        `name:"origin" default:"*" help:"Cross-origin requests are allowed from this origin"`
		Timeout time.Duration `name:"timeout" default:"60s" help:"Timeout for generation requests"`
	} `embed:"" prefix:"http."`

	// Private fields
	ctx      context.Context
	logger   *logger.Logger
	execName string
}

type CLI struct {
	Globals
	ServerCommands
	ToolCommands
	VersionCommands
}

///////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	cli := new(CLI)
	cli.execName = execName()
	cmd := kong.Parse(cli,
		kong.Name(cli.execName),
		kong.Description("WordPress tool server for the Model Context Protocol"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	// Create a context which is cancelled on interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.ctx = ctx

	// Logs are written to stderr, stdout carries protocol messages
	cli.logger = logger.New(os.Stderr, logger.WithDebug(cli.Debug))

	// Run the command
	cmd.FatalIfErrorf(cmd.Run(&cli.Globals))
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Manager reads the configuration and returns a manager with the content
// client and, when a provider key is present, a generator
func (g *Globals) Manager() (*manager.Manager, error) {
	// Fill empty values from a file then from the parameter store
	if err := g.Config.Load(g.File); err != nil {
		return nil, err
	}
	if g.SSMPrefix != "" {
		cfg, err := awsconfig.LoadDefaultConfig(g.ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		store, err := paramstore.New(ssm.NewFromConfig(cfg))
		if err != nil {
			return nil, err
		}
		if err := g.Config.LoadSecrets(g.ctx, store); err != nil {
			return nil, err
		}
	}
	if err := g.Config.Validate(); err != nil {
		return nil, err
	}
	g.logger.Debugf(g.ctx, "config: %v", &g.Config)

	// Client options
	clientOpts := []client.ClientOpt{}
	if g.Debug || g.Verbose {
		clientOpts = append(clientOpts, client.OptTrace(os.Stderr, g.Verbose))
	}

	// Content client, which has fixed timeouts
	content, err := g.Config.Content(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create WordPress client: %w", err)
	}
	opts := []manager.Opt{
		manager.WithContent(content),
		manager.WithLogger(g.logger.Logger),
	}

	// Generator
	if g.HTTP.Timeout > 0 {
		clientOpts = append(clientOpts, client.OptTimeout(g.HTTP.Timeout))
	}
	if generator, err := g.Config.Generator(g.HTTP.Timeout, clientOpts...); err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	} else if generator == nil {
		g.logger.Printf(g.ctx, "no generation provider key, AI tools are disabled")
	} else {
		opts = append(opts, manager.WithGenerator(generator))
	}

	return manager.New(opts...)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	name, err := os.Executable()
	if err != nil {
		return "wpmcp"
	}
	return filepath.Base(name)
}

// listenAddr accepts a bare port number, as PORT is usually set
func listenAddr(addr string) string {
	if addr != "" && !strings.Contains(addr, ":") {
		return ":" + addr
	}
	return addr
}
