package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/schemabench/swls/lsp/methods/workbench"
	"github.com/schemabench/swls/lsp/types"
)

// MethodWorkspaceTree is the custom request that returns the schema catalog
// as a folder tree for workbench clients.
const MethodWorkspaceTree = "schemaWorkbench/workspaceTree"

// CustomHandler wraps protocol.Handler to add workbench-specific methods.
//
// protocol.Handler only dispatches methods it knows about, so requests
// outside the LSP 3.16 surface are intercepted here before falling through.
type CustomHandler struct {
	*protocol.Handler // Pointer to avoid copying embedded mutex
	server            *Server
}

// Handle implements glsp.Handler interface
func (h *CustomHandler) Handle(context *glsp.Context) (r any, validMethod bool, validParams bool, err error) {
	if context.Method == MethodWorkspaceTree {
		req := types.NewRequestContext(h.server, context)
		result, err := workbench.WorkspaceTree(req)
		if err != nil {
			return nil, true, true, err
		}
		return result, true, true, nil
	}

	// Fall through to default protocol.Handler
	return h.Handler.Handle(context)
}
