package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/schemabench/swls/lsp/testutil"
	"github.com/schemabench/swls/lsp/types"
)

func TestInitializeStoresWorkspaceRoot(t *testing.T) {
	mock := testutil.NewMockServerContext()
	req := types.NewRequestContext(mock, nil)

	rootURI := "file:///workspace/project"
	result, err := Initialize(req, &protocol.InitializeParams{
		RootURI: &rootURI,
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, rootURI, mock.RootURI())
	assert.Equal(t, "/workspace/project", mock.RootPath())
}

func TestInitializeFromRootPath(t *testing.T) {
	mock := testutil.NewMockServerContext()
	req := types.NewRequestContext(mock, nil)

	rootPath := "/workspace/project"
	_, err := Initialize(req, &protocol.InitializeParams{
		RootPath: &rootPath,
	})
	require.NoError(t, err)

	assert.Equal(t, rootPath, mock.RootPath())
	assert.Equal(t, "file:///workspace/project", mock.RootURI())
}

func TestInitializeCapabilities(t *testing.T) {
	mock := testutil.NewMockServerContext()
	req := types.NewRequestContext(mock, nil)

	result, err := Initialize(req, &protocol.InitializeParams{})
	require.NoError(t, err)

	typed, ok := result.(struct {
		Capabilities any                                  `json:"capabilities"`
		ServerInfo   *protocol.InitializeResultServerInfo `json:"serverInfo,omitempty"`
	})
	require.True(t, ok)

	capabilities, ok := typed.Capabilities.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, capabilities["hoverProvider"])
	assert.Equal(t, true, capabilities["definitionProvider"])
	assert.Contains(t, capabilities, "completionProvider")
	assert.Contains(t, capabilities, "textDocumentSync")

	require.NotNil(t, typed.ServerInfo)
	assert.Equal(t, "schema-workbench-language-server", typed.ServerInfo.Name)
}

func TestInitializedLoadsCatalogAndStartsWatcher(t *testing.T) {
	mock := testutil.NewMockServerContext()
	req := types.NewRequestContext(mock, nil)

	err := Initialized(req, &protocol.InitializedParams{})
	require.NoError(t, err)

	assert.True(t, mock.LoadCatalogCalled)
	assert.True(t, mock.StartWatcherCalled)
}

func TestInitializedCatalogFailureIsWarning(t *testing.T) {
	mock := testutil.NewMockServerContext()
	mock.LoadCatalogFunc = func() error { return assert.AnError }
	req := types.NewRequestContext(mock, nil)

	err := Initialized(req, &protocol.InitializedParams{})
	require.NoError(t, err)
	assert.True(t, req.HasWarnings())
}

func TestShutdownReleasesOpenDocuments(t *testing.T) {
	mock := testutil.NewMockServerContext()
	require.NoError(t, mock.DocumentManager().DidOpen("file:///a.schema.json", "json", 1, "{}"))
	require.NoError(t, mock.DocumentManager().DidOpen("file:///b.schema.json", "json", 1, "{}"))
	req := types.NewRequestContext(mock, nil)

	require.NoError(t, Shutdown(req))
	assert.Len(t, mock.ReleasedURIs, 2)
}
