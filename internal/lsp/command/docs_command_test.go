package command

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/luna-video/luna-lsp/internal/docs"
	"github.com/sourcegraph/jsonrpc2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func runExport(t *testing.T, provider *DocsCommandProvider, args ...string) (interface{}, error) {
	t.Helper()

	fn, ok := provider.GetCommands(context.Background())[ExportDocsCommand]
	require.True(t, ok, "export command must be registered")

	raw := make([]json.RawMessage, len(args))
	for i, arg := range args {
		raw[i] = json.RawMessage(arg)
	}
	return fn(context.Background(), raw)
}

func TestExportDocsDefaultPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "luna-lsp")
	provider := NewDocsCommandProvider(dir)

	result, err := runExport(t, provider)
	require.NoError(t, err)

	expectedPath := filepath.Join(dir, DefaultExportFile)
	assert.Equal(t, ExportResult{Path: expectedPath, Count: docs.Len()}, result)

	content, err := os.ReadFile(expectedPath)
	require.NoError(t, err)
	assert.Equal(t, "Class: Clip(path: String)", gjson.GetBytes(content, "Clip.signature").String())
}

func TestExportDocsExplicitPath(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "catalog.json")
	provider := NewDocsCommandProvider("")

	arg, err := json.Marshal(map[string]string{"path": "file://" + target})
	require.NoError(t, err)

	result, err := runExport(t, provider, string(arg))
	require.NoError(t, err)
	assert.Equal(t, target, result.(ExportResult).Path)

	content, err := os.ReadFile(target)
	require.NoError(t, err)

	expected, err := docs.ExportJSON()
	require.NoError(t, err)
	assert.Equal(t, expected, content)
}

func TestExportDocsErrors(t *testing.T) {
	t.Run("invalid arguments", func(t *testing.T) {
		provider := NewDocsCommandProvider(t.TempDir())

		_, err := runExport(t, provider, `"not an object"`)
		require.Error(t, err)

		var rpcErr *jsonrpc2.Error
		require.ErrorAs(t, err, &rpcErr)
		assert.Equal(t, int64(jsonrpc2.CodeInvalidParams), rpcErr.Code)
	})

	t.Run("no default directory", func(t *testing.T) {
		provider := NewDocsCommandProvider("")

		_, err := runExport(t, provider)
		assert.Error(t, err)
	})
}
