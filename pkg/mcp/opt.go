package mcp

import (
	// Packages
	log "github.com/charmbracelet/log"
	wpmcp "github.com/mutablelogic/go-wpmcp"
)

/////////////////////////////////////////////////////////////////////////////////
// TYPES

type Opt func(*Server) error

/////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func (server *Server) apply(opts ...Opt) error {
	for _, opt := range opts {
		if err := opt(server); err != nil {
			return err
		}
	}
	return nil
}

/////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithName overrides the name reported in serverInfo
func WithName(name string) Opt {
	return func(server *Server) error {
		if name == "" {
			return wpmcp.ErrBadParameter.With("name is required")
		}
		server.name = name
		return nil
	}
}

func WithLogger(logger *log.Logger) Opt {
	return func(server *Server) error {
		if logger == nil {
			return wpmcp.ErrBadParameter.With("logger is required")
		}
		server.logger = logger
		return nil
	}
}
