package workbench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemabench/swls/internal/catalog"
	"github.com/schemabench/swls/internal/workspacetree"
	"github.com/schemabench/swls/lsp/testutil"
	"github.com/schemabench/swls/lsp/types"
)

func TestWorkspaceTree(t *testing.T) {
	mock := testutil.NewMockServerContext()
	mock.ReplaceCatalog([]*catalog.Entry{
		{ID: "1", Name: "address.schema.json", RelativePath: "common/address.schema.json"},
		{ID: "2", Name: "user.schema.json", RelativePath: "user.schema.json"},
	})
	req := types.NewRequestContext(mock, nil)

	result, err := WorkspaceTree(req)
	require.NoError(t, err)
	require.NotNil(t, result)

	// folder before file at the root level
	require.Len(t, result.Roots, 2)
	assert.Equal(t, workspacetree.KindFolder, result.Roots[0].Kind)
	assert.Equal(t, "common", result.Roots[0].Name)
	assert.Equal(t, workspacetree.KindFile, result.Roots[1].Kind)
	assert.Equal(t, "user", result.Roots[1].Name)
}

func TestWorkspaceTreeEmptyCatalog(t *testing.T) {
	mock := testutil.NewMockServerContext()
	req := types.NewRequestContext(mock, nil)

	result, err := WorkspaceTree(req)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result.Roots)
}
