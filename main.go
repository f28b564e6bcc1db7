package main

import (
	"log"
	"os"

	"github.com/luna-video/luna-lsp/internal/lsp"
	"github.com/luna-video/luna-lsp/internal/lsp/command"
	"github.com/luna-video/luna-lsp/internal/lsp/hover"
)

var version = "dev"

func main() {
	// stdout carries the protocol, logs go to stderr
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
	log.SetPrefix("[luna-lsp] ")

	server := lsp.NewServer(version)

	exportDir, err := getExportDir()
	if err != nil {
		log.Printf("Warning: no default export directory: %v", err)
	}

	server.RegisterHoverProvider(hover.NewLunaHoverProvider())
	server.RegisterCommandProvider(command.NewDocsCommandProvider(exportDir))

	if err := server.Start(os.Stdin, os.Stdout); err != nil {
		log.Fatalf("LSP server error: %v", err)
	}

	if !server.ShutdownRequested() {
		os.Exit(1)
	}
}
