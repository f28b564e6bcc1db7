package hover

import (
	"context"
	"testing"

	"github.com/luna-video/luna-lsp/internal/lsp/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hoverParams(word string, kind protocol.MarkupKind) *protocol.HoverParams {
	params := &protocol.HoverParams{
		Word:       word,
		MarkupKind: kind,
		WordRange: protocol.Range{
			Start: protocol.Position{Line: 2, Character: 5},
			End:   protocol.Position{Line: 2, Character: 5 + len(word)},
		},
	}
	params.TextDocument.URI = "file:///project/main.luna"
	params.Position = protocol.Position{Line: 2, Character: 6}
	return params
}

func TestLunaHoverProvider(t *testing.T) {
	tests := []struct {
		name          string
		word          string
		kind          protocol.MarkupKind
		expectNil     bool
		expectedKind  protocol.MarkupKind
		expectedValue string
	}{
		{
			name:          "method as markdown",
			word:          "export",
			kind:          protocol.Markdown,
			expectedKind:  protocol.Markdown,
			expectedValue: "```luna\nMethod: export(filename)\n```\n---\n导出当前素材为文件。",
		},
		{
			name:          "property as plain text",
			word:          "width",
			kind:          protocol.PlainText,
			expectedKind:  protocol.PlainText,
			expectedValue: "Property: width (Number)\n---\n宽度 (只读)",
		},
		{
			name:          "unset kind falls back to markdown",
			word:          "var",
			expectedKind:  protocol.Markdown,
			expectedValue: "```luna\nKeyword: var\n```\n---\n声明一个变量。",
		},
		{
			name:      "unknown word",
			word:      "frobnicate",
			kind:      protocol.Markdown,
			expectNil: true,
		},
		{
			name:      "wrong case",
			word:      "timeline",
			kind:      protocol.Markdown,
			expectNil: true,
		},
		{
			name:      "empty word",
			word:      "",
			kind:      protocol.Markdown,
			expectNil: true,
		},
	}

	provider := NewLunaHoverProvider()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := hoverParams(tt.word, tt.kind)
			result, err := provider.GetHover(context.Background(), params)
			require.NoError(t, err)

			if tt.expectNil {
				assert.Nil(t, result)
				return
			}

			require.NotNil(t, result)
			assert.Equal(t, tt.expectedKind, result.Contents.Kind)
			assert.Equal(t, tt.expectedValue, result.Contents.Value)
			require.NotNil(t, result.Range)
			assert.Equal(t, params.WordRange, *result.Range)
		})
	}
}
