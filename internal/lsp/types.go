package lsp

import (
	"context"
	"encoding/json"

	"github.com/luna-video/luna-lsp/internal/lsp/protocol"
)

// HoverProvider is an interface for providing hover information
type HoverProvider interface {
	// GetHover returns hover content for the word in params, or nil if the
	// provider has nothing to show
	GetHover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error)
}

// CommandFunc executes a workspace command with its raw arguments
type CommandFunc func(ctx context.Context, args []json.RawMessage) (interface{}, error)

// CommandProvider is an interface for providers of workspace/executeCommand commands
type CommandProvider interface {
	// GetCommands returns the commands this provider handles keyed by name
	GetCommands(ctx context.Context) map[string]CommandFunc
}
