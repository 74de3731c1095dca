package lifecycle

import (
	"github.com/schemabench/swls/internal/log"
	"github.com/schemabench/swls/lsp/types"
)

// Shutdown handles the LSP shutdown request
func Shutdown(req *types.RequestContext) error {
	log.Info("Server shutting down")

	// Release per-document registrations so no validation fires after
	// shutdown. Process-level resources are closed by Server.Close.
	for _, doc := range req.Server.DocumentManager().GetAll() {
		req.Server.ReleaseDocument(doc.URI())
	}

	return nil
}
