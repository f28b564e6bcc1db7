package lsp

import (
	"sync"
	"testing"

	"github.com/luna-video/luna-lsp/internal/lsp/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentManagerLifecycle(t *testing.T) {
	m := NewDocumentManager()
	uri := "file:///project/a.luna"

	m.OpenDocument(uri, "var c = Clip(\"a.mp4\")", 1)

	doc, ok := m.GetDocument(uri)
	require.True(t, ok)
	assert.Equal(t, 1, doc.Version)

	word, wordRange, ok := m.GetWordAtPosition(uri, 0, 10)
	require.True(t, ok)
	assert.Equal(t, "Clip", word)
	assert.Equal(t, protocol.Range{Start: pos(0, 8), End: pos(0, 12)}, wordRange)

	m.UpdateDocument(uri, "c.setOpacity(0.5)", 2)
	word, _, ok = m.GetWordAtPosition(uri, 0, 4)
	require.True(t, ok)
	assert.Equal(t, "setOpacity", word)

	m.CloseDocument(uri)
	_, ok = m.GetDocument(uri)
	assert.False(t, ok)

	_, _, ok = m.GetWordAtPosition(uri, 0, 4)
	assert.False(t, ok)
}

func TestDocumentManagerUpdateCreatesDocument(t *testing.T) {
	m := NewDocumentManager()
	m.UpdateDocument("file:///b.luna", "preview", 3)

	doc, ok := m.GetDocument("file:///b.luna")
	require.True(t, ok)
	assert.Equal(t, "preview", doc.Text)
	assert.Equal(t, 3, doc.Version)
}

func TestDocumentManagerGetDocumentReturnsCopy(t *testing.T) {
	m := NewDocumentManager()
	m.OpenDocument("file:///c.luna", "fps", 1)

	doc, _ := m.GetDocument("file:///c.luna")
	doc.Text = "changed"

	again, _ := m.GetDocument("file:///c.luna")
	assert.Equal(t, "fps", again.Text)
}

func TestDocumentManagerClose(t *testing.T) {
	m := NewDocumentManager()
	m.OpenDocument("file:///d.luna", "width", 1)
	m.Close()

	_, ok := m.GetDocument("file:///d.luna")
	assert.False(t, ok)
}

func TestDocumentManagerConcurrentAccess(t *testing.T) {
	m := NewDocumentManager()
	uri := "file:///e.luna"
	m.OpenDocument(uri, "trim", 1)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(version int) {
			defer wg.Done()
			m.UpdateDocument(uri, "trim", version)
		}(i)
		go func() {
			defer wg.Done()
			word, _, ok := m.GetWordAtPosition(uri, 0, 2)
			assert.True(t, ok)
			assert.Equal(t, "trim", word)
		}()
	}
	wg.Wait()
}
