package command

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/luna-video/luna-lsp/internal/docs"
	"github.com/luna-video/luna-lsp/internal/lsp"
	"github.com/sourcegraph/jsonrpc2"
)

// ExportDocsCommand writes the hover catalog to a JSON file
const ExportDocsCommand = "luna/exportDocs"

// DefaultExportFile is used when the command is called without a path
const DefaultExportFile = "luna-docs.json"

type DocsCommandProvider struct {
	outputDir string
}

// NewDocsCommandProvider creates a provider that exports into outputDir
// unless the caller names a file
func NewDocsCommandProvider(outputDir string) *DocsCommandProvider {
	return &DocsCommandProvider{
		outputDir: outputDir,
	}
}

func (d *DocsCommandProvider) GetCommands(ctx context.Context) map[string]lsp.CommandFunc {
	return map[string]lsp.CommandFunc{
		ExportDocsCommand: d.exportDocs,
	}
}

// ExportResult is returned to the client after a successful export
type ExportResult struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

func (d *DocsCommandProvider) exportDocs(ctx context.Context, args []json.RawMessage) (interface{}, error) {
	var params struct {
		Path string `json:"path"`
	}

	if len(args) > 0 {
		if err := json.Unmarshal(args[0], &params); err != nil {
			return nil, &jsonrpc2.Error{
				Code:    jsonrpc2.CodeInvalidParams,
				Message: fmt.Sprintf("invalid arguments for %s: %v", ExportDocsCommand, err),
			}
		}
	}

	path := strings.TrimPrefix(params.Path, "file://")
	if path == "" {
		if d.outputDir == "" {
			return nil, fmt.Errorf("no output path given and no default directory configured")
		}
		path = filepath.Join(d.outputDir, DefaultExportFile)
	}

	content, err := docs.ExportJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to export documentation: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write file %s: %w", path, err)
	}

	return ExportResult{
		Path:  path,
		Count: docs.Len(),
	}, nil
}
