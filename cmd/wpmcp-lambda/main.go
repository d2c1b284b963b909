package main

import (
	"context"
	"os"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	lambda "github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	ssm "github.com/aws/aws-sdk-go-v2/service/ssm"
	client "github.com/mutablelogic/go-client"
	config "github.com/mutablelogic/go-wpmcp/pkg/config"
	logger "github.com/mutablelogic/go-wpmcp/pkg/logger"
	manager "github.com/mutablelogic/go-wpmcp/pkg/manager"
	mcp "github.com/mutablelogic/go-wpmcp/pkg/mcp"
	paramstore "github.com/mutablelogic/go-wpmcp/pkg/paramstore"
	version "github.com/mutablelogic/go-wpmcp/pkg/version"
)

// Settings are read from the environment only
type Settings struct {
	config.Config `embed:""`
	Debug         bool          `name:"debug" env:"WPMCP_DEBUG"`
	Timeout       time.Duration `name:"timeout" env:"WPMCP_TIMEOUT" default:"25s"`
}

func main() {
	ctx := context.Background()
	log := logger.New(os.Stderr, logger.WithJSON())

	// Configuration
	var settings Settings
	parser, err := kong.New(&settings, kong.Name("wpmcp-lambda"))
	if err != nil {
		log.Fatal("failed to create parser", "err", err)
	} else if _, err := parser.Parse(nil); err != nil {
		log.Fatal("failed to read environment", "err", err)
	}
	if settings.Debug {
		log = logger.New(os.Stderr, logger.WithJSON(), logger.WithDebug(true))
	}

	// Secrets from the parameter store
	if settings.SSMPrefix != "" {
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			log.Fatal("failed to load AWS config", "err", err)
		}
		store, err := paramstore.New(ssm.NewFromConfig(cfg))
		if err != nil {
			log.Fatal("failed to create parameter store client", "err", err)
		}
		if err := settings.LoadSecrets(ctx, store); err != nil {
			log.Fatal("failed to read secrets", "err", err)
		}
	}
	if err := settings.Validate(); err != nil {
		log.Fatal("invalid configuration", "err", err)
	}
	log.Debugf(ctx, "config: %v", &settings.Config)

	// Clients
	content, err := settings.Content()
	if err != nil {
		log.Fatal("failed to create WordPress client", "err", err)
	}
	generator, err := settings.Generator(settings.Timeout, client.OptTimeout(settings.Timeout))
	if err != nil {
		log.Fatal("failed to create generator", "err", err)
	}

	// Manager and protocol server
	manager, err := manager.New(
		manager.WithContent(content),
		manager.WithGenerator(generator),
		manager.WithLogger(log.Logger),
	)
	if err != nil {
		log.Fatal("failed to create manager", "err", err)
	}
	server, err := mcp.New(version.Version(), manager.Toolkit(), mcp.WithLogger(log.Logger))
	if err != nil {
		log.Fatal("failed to create server", "err", err)
	}

	h, err := NewHandler(server, manager, log)
	if err != nil {
		log.Fatal("failed to create handler", "err", err)
	}
	lambda.Start(h.Handle)
}
