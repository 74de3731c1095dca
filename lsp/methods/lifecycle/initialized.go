package lifecycle

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/schemabench/swls/internal/log"
	"github.com/schemabench/swls/lsp/types"
)

// Initialized handles the LSP initialized notification
func Initialized(req *types.RequestContext, params *protocol.InitializedParams) error {
	log.Info("Server initialized")

	// Store context for later use (diagnostics, notifications)
	req.Server.SetGLSPContext(req.GLSP)

	// Scan the workspace for schema files
	if err := req.Server.LoadCatalog(); err != nil {
		// Don't fail initialization, just surface the problem
		req.AddWarning(err)
	}

	// Keep the catalog current as files change on disk
	if err := req.Server.StartWatcher(); err != nil {
		req.AddWarning(err)
	}

	return nil
}
