package types

import (
	"github.com/tliron/glsp"

	"github.com/schemabench/swls/internal/catalog"
	"github.com/schemabench/swls/internal/documents"
	"github.com/schemabench/swls/internal/workspacetree"
)

// ServerContext provides all dependencies needed for LSP handlers. Handlers
// depend on this interface rather than the concrete server, which keeps
// them testable with a mock.
type ServerContext interface {
	// Document operations
	Document(uri string) *documents.Document
	DocumentManager() *documents.Manager

	// Catalog operations
	Catalog() *catalog.Catalog
	CatalogEntries() []*catalog.Entry

	// Workspace operations
	RootURI() string
	RootPath() string
	SetRootURI(uri string)
	SetRootPath(path string)
	WorkspaceTree() []*workspacetree.Node

	// Configuration
	GetConfig() ServerConfig
	SetConfig(config ServerConfig)

	// Workspace initialization (called by lifecycle handlers)
	LoadWorkspaceConfig() error
	LoadCatalog() error
	StartWatcher() error

	// Validation pipeline
	NotifyContentChanged(uri, content string)
	TrackDocument(uri string)
	ReleaseDocument(uri string)

	// LSP context (for publishing diagnostics, notifications)
	GLSPContext() *glsp.Context
	SetGLSPContext(ctx *glsp.Context)
}
