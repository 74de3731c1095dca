package schemadoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordCatalogShape(t *testing.T) {
	assert.GreaterOrEqual(t, len(Keywords), 30)

	seen := map[string]bool{}
	for _, kw := range Keywords {
		assert.NotEmpty(t, kw.Name)
		assert.NotEmpty(t, kw.Detail, "keyword %q needs a one-line detail", kw.Name)
		assert.NotEmpty(t, kw.Description, "keyword %q needs a description", kw.Name)
		assert.False(t, seen[kw.Name], "duplicate keyword %q", kw.Name)
		seen[kw.Name] = true
	}
}

func TestLookupKeyword(t *testing.T) {
	kw, ok := LookupKeyword("$ref")
	require.True(t, ok)
	assert.Equal(t, "$ref", kw.Name)

	_, ok = LookupKeyword("notAKeyword")
	assert.False(t, ok)
}

func TestValueVocabularies(t *testing.T) {
	assert.Len(t, Types, 7)
	assert.Len(t, Formats, 13)
	assert.Len(t, Patterns, 12)

	for _, typ := range Types {
		assert.Contains(t, TypeDescriptions, typ.Label)
	}
	for _, format := range Formats {
		assert.Contains(t, FormatDescriptions, format.Label)
	}
}

func TestValuesFor(t *testing.T) {
	assert.Len(t, ValuesFor("type"), 7)
	assert.Len(t, ValuesFor("format"), 13)
	assert.Len(t, ValuesFor("pattern"), 12)
	assert.Nil(t, ValuesFor("title"))
}

func TestSnippets(t *testing.T) {
	assert.GreaterOrEqual(t, len(Snippets), 6)
	for _, snippet := range Snippets {
		assert.NotEmpty(t, snippet.Label)
		assert.Contains(t, snippet.Body, "$", "snippet %q needs placeholder tokens", snippet.Label)
	}
}
