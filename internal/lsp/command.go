package lsp

import (
	"context"
	"errors"
	"sort"

	"github.com/luna-video/luna-lsp/internal/lsp/protocol"
	"github.com/sourcegraph/jsonrpc2"
)

// executeCommand handles workspace/executeCommand requests
func (s *Server) executeCommand(ctx context.Context, params *protocol.ExecuteCommandParams) (interface{}, error) {
	for _, provider := range s.commandProviders {
		if fn, ok := provider.GetCommands(ctx)[params.Command]; ok {
			result, err := fn(ctx, params.Arguments)
			if err != nil {
				var rpcErr *jsonrpc2.Error
				if errors.As(err, &rpcErr) {
					return nil, rpcErr
				}
				rpcErr = &jsonrpc2.Error{Code: jsonrpc2.CodeInternalError, Message: err.Error()}
				rpcErr.SetError(protocol.NewLspError(err.Error(), "luna/commandFailed"))
				return nil, rpcErr
			}
			return result, nil
		}
	}

	return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: "Unknown command: " + params.Command}
}

// collectCommands collects the names of all commands from registered providers
func (s *Server) collectCommands(ctx context.Context) []string {
	commands := make([]string, 0)
	for _, provider := range s.commandProviders {
		for name := range provider.GetCommands(ctx) {
			commands = append(commands, name)
		}
	}
	sort.Strings(commands)
	return commands
}
