// Package workbench implements the custom schemaWorkbench/* methods that
// sit outside the standard LSP surface.
package workbench

import (
	"github.com/schemabench/swls/internal/log"
	"github.com/schemabench/swls/internal/workspacetree"
	"github.com/schemabench/swls/lsp/types"
)

// WorkspaceTreeResult is the response payload for schemaWorkbench/workspaceTree.
type WorkspaceTreeResult struct {
	Roots []*workspacetree.Node `json:"roots"`
}

// WorkspaceTree handles the schemaWorkbench/workspaceTree request
func WorkspaceTree(req *types.RequestContext) (*WorkspaceTreeResult, error) {
	roots := req.Server.WorkspaceTree()
	log.Debug("workspaceTree: %d root nodes", len(roots))
	return &WorkspaceTreeResult{Roots: roots}, nil
}
