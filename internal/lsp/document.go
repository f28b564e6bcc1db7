package lsp

import (
	"sync"

	"github.com/luna-video/luna-lsp/internal/lsp/protocol"
)

// TextDocument represents a document open in the editor
type TextDocument struct {
	URI     string
	Text    string
	Version int
}

// DocumentManager manages text documents
type DocumentManager struct {
	documents map[string]*TextDocument
	mu        sync.RWMutex
}

// NewDocumentManager creates a new document manager
func NewDocumentManager() *DocumentManager {
	return &DocumentManager{
		documents: make(map[string]*TextDocument),
	}
}

// OpenDocument adds or replaces a document
func (m *DocumentManager) OpenDocument(uri string, text string, version int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.documents[uri] = &TextDocument{
		URI:     uri,
		Text:    text,
		Version: version,
	}
}

// UpdateDocument updates an existing document, creating it if necessary
func (m *DocumentManager) UpdateDocument(uri string, text string, version int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if doc, ok := m.documents[uri]; ok {
		doc.Text = text
		doc.Version = version
		return
	}

	m.documents[uri] = &TextDocument{
		URI:     uri,
		Text:    text,
		Version: version,
	}
}

// CloseDocument removes a document
func (m *DocumentManager) CloseDocument(uri string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.documents, uri)
}

// GetDocument returns a copy of a document by URI
func (m *DocumentManager) GetDocument(uri string) (TextDocument, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.documents[uri]
	if !ok {
		return TextDocument{}, false
	}
	return *doc, true
}

// GetWordAtPosition returns the word under the given position together with
// the range it occupies
func (m *DocumentManager) GetWordAtPosition(uri string, line int, character int) (string, protocol.Range, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.documents[uri]
	if !ok {
		return "", protocol.Range{}, false
	}

	return wordAt(doc.Text, protocol.Position{Line: line, Character: character})
}

// Close drops all documents
func (m *DocumentManager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.documents = make(map[string]*TextDocument)
}
