package lifecycle

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/schemabench/swls/internal/log"
	"github.com/schemabench/swls/internal/uriutil"
	"github.com/schemabench/swls/lsp/types"
)

// ServerVersion is reported to clients in the initialize response.
const ServerVersion = "0.1.0"

// Initialize handles the LSP initialize request
func Initialize(req *types.RequestContext, params *protocol.InitializeParams) (any, error) {
	clientName := "unknown"
	if params.ClientInfo != nil {
		clientName = params.ClientInfo.Name
	}
	log.Info("Initializing for client: %s", clientName)

	// Store the workspace root
	if params.RootURI != nil {
		req.Server.SetRootURI(*params.RootURI)
		req.Server.SetRootPath(uriutil.URIToPath(*params.RootURI))
		log.Info("Workspace root: %s", req.Server.RootPath())
	} else if params.RootPath != nil {
		req.Server.SetRootPath(*params.RootPath)
		req.Server.SetRootURI(uriutil.PathToURI(*params.RootPath))
		log.Info("Workspace root (from rootPath): %s", req.Server.RootPath())
	}

	// Read .schema-workbench.yaml before anything depends on the config.
	if err := req.Server.LoadWorkspaceConfig(); err != nil {
		req.AddWarning(err)
	}

	// Build server capabilities
	//
	// Capabilities go out as a plain map so the shape stays independent of
	// which option structs this glsp version models.
	syncKind := protocol.TextDocumentSyncKindIncremental
	capabilities := map[string]any{
		"textDocumentSync": protocol.TextDocumentSyncOptions{
			OpenClose: boolPtr(true),
			Change:    &syncKind,
		},
		"hoverProvider": true,
		"completionProvider": protocol.CompletionOptions{
			TriggerCharacters: []string{"\"", "/", "."},
		},
		"definitionProvider": true,
	}

	return struct {
		Capabilities any                                  `json:"capabilities"`
		ServerInfo   *protocol.InitializeResultServerInfo `json:"serverInfo,omitempty"`
	}{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    "schema-workbench-language-server",
			Version: strPtr(ServerVersion),
		},
	}, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func strPtr(s string) *string {
	return &s
}
