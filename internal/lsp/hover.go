package lsp

import (
	"context"
	"log"

	"github.com/luna-video/luna-lsp/internal/lsp/protocol"
)

// hover handles textDocument/hover requests
func (s *Server) hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	word, wordRange, ok := s.documentManager.GetWordAtPosition(params.TextDocument.URI, params.Position.Line, params.Position.Character)
	if !ok {
		return nil, nil
	}

	params.Word = word
	params.WordRange = wordRange
	params.MarkupKind = s.hoverMarkupKind()

	// Try each hover provider until one returns a result
	for _, provider := range s.hoverProviders {
		hover, err := provider.GetHover(ctx, params)
		if err != nil {
			log.Printf("Hover provider failed for %q: %v", word, err)
			continue
		}
		if hover != nil {
			return hover, nil
		}
	}

	// No hover information available
	return nil, nil
}
