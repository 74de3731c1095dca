package documents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestDidOpenAndGet(t *testing.T) {
	m := NewManager()
	err := m.DidOpen("file:///a.schema.json", "json", 1, `{"type": "object"}`)
	require.NoError(t, err)

	doc := m.Get("file:///a.schema.json")
	require.NotNil(t, doc)
	assert.Equal(t, "json", doc.LanguageID())
	assert.Equal(t, 1, doc.Version())
	assert.Equal(t, `{"type": "object"}`, doc.Content())
}

func TestDidCloseUnknownDocument(t *testing.T) {
	m := NewManager()
	assert.Error(t, m.DidClose("file:///missing.json"))
}

func TestDidChangeFullReplacement(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.DidOpen("file:///a.json", "json", 1, "{}"))

	err := m.DidChange("file:///a.json", 2, []protocol.TextDocumentContentChangeEvent{
		{Text: `{"title": "A"}`},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"title": "A"}`, m.Get("file:///a.json").Content())
	assert.Equal(t, 2, m.Get("file:///a.json").Version())
}

func TestDidChangeIncremental(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.DidOpen("file:///a.json", "json", 1, "{\n  \"type\": \"\"\n}"))

	// Insert "object" inside the empty quotes on line 1
	err := m.DidChange("file:///a.json", 2, []protocol.TextDocumentContentChangeEvent{
		{
			Range: &protocol.Range{
				Start: protocol.Position{Line: 1, Character: 11},
				End:   protocol.Position{Line: 1, Character: 11},
			},
			Text: "object",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"type\": \"object\"\n}", m.Get("file:///a.json").Content())
}

func TestDidChangeStaleVersionRejected(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.DidOpen("file:///a.json", "json", 5, "{}"))

	err := m.DidChange("file:///a.json", 3, []protocol.TextDocumentContentChangeEvent{
		{Text: "[]"},
	})
	assert.Error(t, err)
	assert.Equal(t, "{}", m.Get("file:///a.json").Content())
}

func TestDidChangeOutOfBoundsRange(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.DidOpen("file:///a.json", "json", 1, "{}"))

	err := m.DidChange("file:///a.json", 2, []protocol.TextDocumentContentChangeEvent{
		{
			Range: &protocol.Range{
				Start: protocol.Position{Line: 9, Character: 0},
				End:   protocol.Position{Line: 9, Character: 0},
			},
			Text: "x",
		},
	})
	assert.Error(t, err)
}

func TestLineText(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.DidOpen("file:///a.json", "json", 1, "{\n  \"$ref\": \"./b.schema.json\"\n}"))

	assert.Equal(t, `  "$ref": "./b.schema.json"`, m.LineText("file:///a.json", 1))
	assert.Equal(t, "", m.LineText("file:///a.json", 42))
	assert.Equal(t, "", m.LineText("file:///a.json", -1))
	assert.Equal(t, "", m.LineText("file:///missing.json", 0))
}

func TestGetAll(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.DidOpen("file:///a.json", "json", 1, "{}"))
	require.NoError(t, m.DidOpen("file:///b.json", "json", 1, "{}"))
	assert.Len(t, m.GetAll(), 2)
}
