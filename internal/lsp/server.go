package lsp

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/luna-video/luna-lsp/internal/lsp/protocol"
	"github.com/sourcegraph/jsonrpc2"
	"github.com/tidwall/gjson"
)

// ServerName is reported to clients in the initialize result
const ServerName = "luna-lsp"

// Server represents the LSP server
type Server struct {
	version          string
	rootPath         string
	conn             *jsonrpc2.Conn
	hoverProviders   []HoverProvider
	commandProviders []CommandProvider
	documentManager  *DocumentManager

	mu                sync.RWMutex
	markupKind        protocol.MarkupKind
	shutdownRequested bool

	exited   chan struct{}
	exitOnce sync.Once
}

// NewServer creates a new LSP server
func NewServer(version string) *Server {
	return &Server{
		version:          version,
		hoverProviders:   make([]HoverProvider, 0),
		commandProviders: make([]CommandProvider, 0),
		documentManager:  NewDocumentManager(),
		markupKind:       protocol.Markdown,
		exited:           make(chan struct{}),
	}
}

// RegisterHoverProvider registers a hover provider with the server
func (s *Server) RegisterHoverProvider(provider HoverProvider) {
	s.hoverProviders = append(s.hoverProviders, provider)
}

// RegisterCommandProvider registers a command provider with the server
func (s *Server) RegisterCommandProvider(provider CommandProvider) {
	s.commandProviders = append(s.commandProviders, provider)
}

// CloseAll releases all resources held by the server
func (s *Server) CloseAll() error {
	if s.documentManager != nil {
		s.documentManager.Close()
	}
	return nil
}

// Start serves LSP requests read from in and writes responses to out. It
// returns once the connection is closed or the client sent exit.
func (s *Server) Start(in io.Reader, out io.Writer) error {
	// Create a new JSON-RPC connection
	stream := jsonrpc2.NewBufferedStream(rwc{in, out}, jsonrpc2.VSCodeObjectCodec{})
	conn := jsonrpc2.NewConn(context.Background(), stream, jsonrpc2.HandlerWithError(s.handle))
	s.conn = conn

	// Wait for the connection to close
	select {
	case <-conn.DisconnectNotify():
	case <-s.exited:
	}
	return nil
}

// ShutdownRequested reports whether the client sent a shutdown request
func (s *Server) ShutdownRequested() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shutdownRequested
}

// rwc combines a reader and writer into a single ReadWriteCloser
type rwc struct {
	io.Reader
	io.Writer
}

// Close implements io.Closer
func (rwc) Close() error {
	return nil
}

// unmarshalParams decodes request params, reporting failures as InvalidParams
func unmarshalParams(req *jsonrpc2.Request, v interface{}) error {
	if req.Params == nil {
		return &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: "Missing params for " + req.Method}
	}
	if err := json.Unmarshal(*req.Params, v); err != nil {
		return &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: err.Error()}
	}
	return nil
}

// handle processes incoming JSON-RPC requests and notifications
func (s *Server) handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (interface{}, error) {
	// Handle exit notification after shutdown
	if req.Method == "exit" {
		log.Println("Received exit notification, exiting")
		if err := conn.Close(); err != nil {
			log.Printf("error closing connection: %v", err)
		}
		s.exitOnce.Do(func() { close(s.exited) })
		return nil, nil
	}

	switch req.Method {
	case "initialize":
		if req.Params == nil {
			return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: "Missing params for initialize"}
		}
		var params protocol.InitializeParams
		if err := json.Unmarshal(*req.Params, &params); err != nil {
			return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeParseError, Message: err.Error()}
		}
		return s.initialize(ctx, &params, *req.Params), nil

	case "initialized":
		log.Printf("Client initialized, serving %s", s.rootPath)
		return nil, nil

	case "textDocument/didOpen":
		var params protocol.DidOpenTextDocumentParams
		if err := unmarshalParams(req, &params); err != nil {
			return nil, err
		}
		s.documentManager.OpenDocument(params.TextDocument.URI, params.TextDocument.Text, params.TextDocument.Version)
		return nil, nil

	case "textDocument/didChange":
		var params protocol.DidChangeTextDocumentParams
		if err := unmarshalParams(req, &params); err != nil {
			return nil, err
		}
		if len(params.ContentChanges) > 0 {
			// Full sync: the last change carries the complete text
			last := params.ContentChanges[len(params.ContentChanges)-1]
			s.documentManager.UpdateDocument(params.TextDocument.URI, last.Text, params.TextDocument.Version)
		}
		return nil, nil

	case "textDocument/didClose":
		var params protocol.DidCloseTextDocumentParams
		if err := unmarshalParams(req, &params); err != nil {
			return nil, err
		}
		s.documentManager.CloseDocument(params.TextDocument.URI)
		return nil, nil

	case "textDocument/hover":
		var params protocol.HoverParams
		if err := unmarshalParams(req, &params); err != nil {
			return nil, err
		}
		return s.hover(ctx, &params)

	case "workspace/executeCommand":
		var params protocol.ExecuteCommandParams
		if err := unmarshalParams(req, &params); err != nil {
			return nil, err
		}
		return s.executeCommand(ctx, &params)

	case "shutdown":
		// Clean up resources
		if err := s.CloseAll(); err != nil {
			log.Printf("Error closing server resources: %v", err)
		}

		s.mu.Lock()
		s.shutdownRequested = true
		s.mu.Unlock()

		log.Println("Received shutdown request, waiting for exit notification")
		return nil, nil

	default:
		// Notifications such as $/cancelRequest need no response
		if req.Notif {
			return nil, nil
		}
		return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeMethodNotFound, Message: "Method not implemented: " + req.Method}
	}
}

// initialize handles the LSP initialize request
func (s *Server) initialize(ctx context.Context, params *protocol.InitializeParams, raw []byte) interface{} {
	// Extract root path from params
	s.extractRootPath(params)

	s.mu.Lock()
	s.markupKind = preferredMarkupKind(raw)
	s.mu.Unlock()

	if params.ClientInfo != nil {
		log.Printf("Initializing for %s %s", params.ClientInfo.Name, params.ClientInfo.Version)
	}

	// Define server capabilities
	return map[string]interface{}{
		"capabilities": map[string]interface{}{
			"textDocumentSync": map[string]interface{}{
				"openClose": true,
				"change":    protocol.SyncFull,
			},
			"hoverProvider": true,
			"executeCommandProvider": map[string]interface{}{
				"commands": s.collectCommands(ctx),
			},
		},
		"serverInfo": protocol.ServerInfo{
			Name:    ServerName,
			Version: s.version,
		},
	}
}

// preferredMarkupKind picks markdown unless the client lists its hover
// content formats and markdown is not one of them
func preferredMarkupKind(rawParams []byte) protocol.MarkupKind {
	formats := gjson.GetBytes(rawParams, "capabilities.textDocument.hover.contentFormat")
	if !formats.IsArray() || len(formats.Array()) == 0 {
		return protocol.Markdown
	}

	for _, format := range formats.Array() {
		if protocol.MarkupKind(format.String()) == protocol.Markdown {
			return protocol.Markdown
		}
	}
	return protocol.PlainText
}

func (s *Server) hoverMarkupKind() protocol.MarkupKind {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.markupKind
}

// extractRootPath extracts the root path from the initialize params
func (s *Server) extractRootPath(params *protocol.InitializeParams) {
	// Try to get from RootPath
	if params.RootPath != "" {
		s.rootPath = params.RootPath
		return
	}

	// Try to get from RootURI
	if params.RootURI != "" {
		s.rootPath = strings.TrimPrefix(params.RootURI, "file://")
		return
	}

	// Try to get from WorkspaceFolders
	if len(params.WorkspaceFolders) > 0 {
		s.rootPath = strings.TrimPrefix(params.WorkspaceFolders[0].URI, "file://")
		return
	}

	// Fall back to current directory
	s.rootPath, _ = os.Getwd()
}

func (s *Server) DocumentManager() *DocumentManager {
	return s.documentManager
}
