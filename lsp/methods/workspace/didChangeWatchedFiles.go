package workspace

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/schemabench/swls/internal/catalog"
	"github.com/schemabench/swls/internal/log"
	"github.com/schemabench/swls/internal/uriutil"
	"github.com/schemabench/swls/lsp/types"
)

// DidChangeWatchedFiles handles the workspace/didChangeWatchedFiles notification
func DidChangeWatchedFiles(req *types.RequestContext, params *protocol.DidChangeWatchedFilesParams) error {
	log.Debug("Watched files changed: %d files", len(params.Changes))

	needsReload := false
	for _, change := range params.Changes {
		path := uriutil.URIToPath(change.URI)
		log.Debug("File change: %s (type: %d)", path, change.Type)

		if strings.HasSuffix(path, catalog.SchemaFileSuffix) ||
			strings.HasSuffix(path, types.ConfigFileName) {
			needsReload = true
		}
	}

	if needsReload {
		log.Info("Reloading schema catalog due to file changes")
		if err := req.Server.LoadWorkspaceConfig(); err != nil {
			log.Warn("failed to reload workspace config: %v", err)
		}
		if err := req.Server.LoadCatalog(); err != nil {
			LogWarning(req.GLSP, "failed to reload schema catalog: %v", err)
		}
	}

	return nil
}
