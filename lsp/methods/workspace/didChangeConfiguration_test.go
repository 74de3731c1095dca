package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/schemabench/swls/lsp/testutil"
	"github.com/schemabench/swls/lsp/types"
)

func TestParseConfigurationNested(t *testing.T) {
	settings := map[string]any{
		"schemaWorkbench": map[string]any{
			"schemaGlobs":     []any{"schemas/**/*.schema.json"},
			"debounceDelayMs": 250,
		},
	}

	config, err := parseConfiguration(settings)
	require.NoError(t, err)
	assert.Equal(t, []string{"schemas/**/*.schema.json"}, config.SchemaGlobs)
	assert.Equal(t, 250, config.DebounceDelayMs)
	// untouched fields keep their defaults
	assert.Equal(t, types.DefaultConfig().HoverPreviewBudget, config.HoverPreviewBudget)
}

func TestParseConfigurationKebabKey(t *testing.T) {
	settings := map[string]any{
		"schema-workbench": map[string]any{
			"hoverPreviewBudget": 1000,
		},
	}

	config, err := parseConfiguration(settings)
	require.NoError(t, err)
	assert.Equal(t, 1000, config.HoverPreviewBudget)
}

func TestParseConfigurationNilSettings(t *testing.T) {
	config, err := parseConfiguration(nil)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultConfig(), config)
}

func TestParseConfigurationNotAMap(t *testing.T) {
	_, err := parseConfiguration("nope")
	assert.Error(t, err)
}

func TestDidChangeConfigurationReloadsCatalog(t *testing.T) {
	mock := testutil.NewMockServerContext()
	req := types.NewRequestContext(mock, nil)

	err := DidChangeConfiguration(req, &protocol.DidChangeConfigurationParams{
		Settings: map[string]any{
			"schemaWorkbench": map[string]any{"debounceDelayMs": 100},
		},
	})
	require.NoError(t, err)

	assert.True(t, mock.LoadCatalogCalled)
	assert.Equal(t, 100, mock.GetConfig().DebounceDelayMs)
}

func TestDidChangeWatchedFilesSchemaChange(t *testing.T) {
	mock := testutil.NewMockServerContext()
	req := types.NewRequestContext(mock, nil)

	err := DidChangeWatchedFiles(req, &protocol.DidChangeWatchedFilesParams{
		Changes: []protocol.FileEvent{
			{URI: "file:///workspace/user.schema.json", Type: protocol.FileChangeTypeChanged},
		},
	})
	require.NoError(t, err)
	assert.True(t, mock.LoadCatalogCalled)
}

func TestDidChangeWatchedFilesUnrelatedChange(t *testing.T) {
	mock := testutil.NewMockServerContext()
	req := types.NewRequestContext(mock, nil)

	err := DidChangeWatchedFiles(req, &protocol.DidChangeWatchedFilesParams{
		Changes: []protocol.FileEvent{
			{URI: "file:///workspace/readme.md", Type: protocol.FileChangeTypeChanged},
		},
	})
	require.NoError(t, err)
	assert.False(t, mock.LoadCatalogCalled)
}
