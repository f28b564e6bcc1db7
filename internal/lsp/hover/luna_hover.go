package hover

import (
	"context"

	"github.com/luna-video/luna-lsp/internal/docs"
	"github.com/luna-video/luna-lsp/internal/lsp/protocol"
)

// LunaHoverProvider shows catalog documentation for Luna classes, methods,
// properties and keywords
type LunaHoverProvider struct{}

func NewLunaHoverProvider() *LunaHoverProvider {
	return &LunaHoverProvider{}
}

func (p *LunaHoverProvider) GetHover(_ context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	if params.Word == "" {
		return nil, nil
	}

	info, ok := docs.GetHoverInfo(params.Word)
	if !ok {
		return nil, nil
	}

	content := protocol.MarkupContent{
		Kind:  protocol.Markdown,
		Value: info.Markdown(),
	}
	if params.MarkupKind == protocol.PlainText {
		content = protocol.MarkupContent{
			Kind:  protocol.PlainText,
			Value: info.PlainText(),
		}
	}

	wordRange := params.WordRange
	return &protocol.Hover{
		Contents: content,
		Range:    &wordRange,
	}, nil
}
