package lsp

import (
	"path/filepath"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/schemabench/swls/internal/catalog"
	"github.com/schemabench/swls/internal/debounce"
	"github.com/schemabench/swls/internal/documents"
	"github.com/schemabench/swls/internal/log"
	"github.com/schemabench/swls/internal/providers"
	"github.com/schemabench/swls/internal/refresolve"
	"github.com/schemabench/swls/internal/uriutil"
	"github.com/schemabench/swls/internal/validate"
	"github.com/schemabench/swls/internal/workspacetree"
	"github.com/schemabench/swls/lsp/methods/lifecycle"
	"github.com/schemabench/swls/lsp/methods/textDocument"
	"github.com/schemabench/swls/lsp/methods/textDocument/completion"
	"github.com/schemabench/swls/lsp/methods/textDocument/definition"
	"github.com/schemabench/swls/lsp/methods/textDocument/hover"
	"github.com/schemabench/swls/lsp/methods/workspace"
	"github.com/schemabench/swls/lsp/types"
)

// ServerName is reported to clients in the initialize response.
const ServerName = "schema-workbench-language-server"

// Verify that Server implements ServerContext interface
var _ types.ServerContext = (*Server)(nil)

// Server is the Schema Workbench Language Server
type Server struct {
	documents  *documents.Manager
	catalog    *catalog.Catalog
	debouncer  *debounce.Debouncer
	scope      *providers.Scope
	glspServer *server.Server

	mu       sync.RWMutex // protects context, rootURI, rootPath, watcher
	context  *glsp.Context
	rootURI  string
	rootPath string
	watcher  *catalog.Watcher

	config   types.ServerConfig
	configMu sync.RWMutex
}

// NewServer creates a new schema workbench LSP server
func NewServer() (*Server, error) {
	s := &Server{
		documents: documents.NewManager(),
		catalog:   catalog.New(),
		scope:     providers.NewScope(),
		config:    types.DefaultConfig(),
	}
	s.debouncer = debounce.New(s.config.DebounceDelay(), validate.SyntaxMarkers, s.publishValidation)

	// Create the GLSP server with our handlers wrapped with middleware
	protocolHandler := protocol.Handler{
		Initialize:                      method(s, "initialize", lifecycle.Initialize),
		Initialized:                     notify(s, "initialized", lifecycle.Initialized),
		Shutdown:                        noParam(s, "shutdown", lifecycle.Shutdown),
		SetTrace:                        notify(s, "$/setTrace", lifecycle.SetTrace),
		WorkspaceDidChangeConfiguration: notify(s, "workspace/didChangeConfiguration", workspace.DidChangeConfiguration),
		WorkspaceDidChangeWatchedFiles:  notify(s, "workspace/didChangeWatchedFiles", workspace.DidChangeWatchedFiles),
		TextDocumentDidOpen:             notify(s, "textDocument/didOpen", textDocument.DidOpen),
		TextDocumentDidChange:           notify(s, "textDocument/didChange", textDocument.DidChange),
		TextDocumentDidClose:            notify(s, "textDocument/didClose", textDocument.DidClose),
		TextDocumentHover:               method(s, "textDocument/hover", hover.Hover),
		TextDocumentCompletion:          method(s, "textDocument/completion", completion.Completion),
		TextDocumentDefinition:          method(s, "textDocument/definition", definition.Definition),
	}

	// Wrap with the custom handler so workbench-specific methods (like
	// schemaWorkbench/workspaceTree) are handled before protocol.Handler,
	// which only knows standard LSP 3.16 methods.
	customHandler := &CustomHandler{
		Handler: &protocolHandler,
		server:  s,
	}

	s.glspServer = server.NewServer(customHandler, ServerName, true)

	return s, nil
}

// RunStdio starts the LSP server using stdio transport
func (s *Server) RunStdio() error {
	return s.glspServer.RunStdio()
}

// Close releases server resources. It is safe to call Close multiple times.
func (s *Server) Close() error {
	s.scope.DisposeAll()
	s.debouncer.Close()

	s.mu.Lock()
	watcher := s.watcher
	s.watcher = nil
	s.mu.Unlock()

	if watcher != nil {
		return watcher.Close()
	}
	return nil
}

// ServerContext interface implementation

// Document returns the document with the given URI
func (s *Server) Document(uri string) *documents.Document {
	return s.documents.Get(uri)
}

// DocumentManager returns the document manager
func (s *Server) DocumentManager() *documents.Manager {
	return s.documents
}

// Catalog returns the schema catalog
func (s *Server) Catalog() *catalog.Catalog {
	return s.catalog
}

// CatalogEntries returns all catalog entries
func (s *Server) CatalogEntries() []*catalog.Entry {
	return s.catalog.All()
}

// RootURI returns the workspace root URI
func (s *Server) RootURI() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rootURI
}

// RootPath returns the workspace root filesystem path
func (s *Server) RootPath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rootPath
}

// SetRootURI sets the workspace root URI
func (s *Server) SetRootURI(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rootURI = uri
}

// SetRootPath sets the workspace root filesystem path
func (s *Server) SetRootPath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rootPath = path
}

// WorkspaceTree builds the folder tree over the current catalog
func (s *Server) WorkspaceTree() []*workspacetree.Node {
	return workspacetree.Build(s.catalog.All())
}

// LoadCatalog scans the workspace for schema files, links references between
// them, and atomically replaces the catalog contents.
func (s *Server) LoadCatalog() error {
	rootPath := s.RootPath()
	if rootPath == "" {
		log.Debug("no workspace root, skipping catalog load")
		return nil
	}

	entries, err := catalog.Load(rootPath, s.GetConfig().SchemaGlobs)
	if err != nil {
		return err
	}

	refresolve.LinkReferences(entries)
	s.catalog.Replace(entries)
	log.Info("Loaded %d schema files from %s", len(entries), rootPath)
	return nil
}

// StartWatcher begins watching the workspace for schema file changes.
// Any change rebuilds the catalog after a quiet interval.
func (s *Server) StartWatcher() error {
	rootPath := s.RootPath()
	if rootPath == "" {
		return nil
	}

	watcher, err := catalog.NewWatcher(rootPath, s.GetConfig().SchemaGlobs, func() {
		if err := s.LoadCatalog(); err != nil {
			log.Warn("catalog rebuild after file change failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	old := s.watcher
	s.watcher = watcher
	s.mu.Unlock()

	if old != nil {
		if err := old.Close(); err != nil {
			log.Warn("closing previous watcher: %v", err)
		}
	}
	return nil
}

// NotifyContentChanged feeds a document snapshot into the debounced
// validation pipeline.
func (s *Server) NotifyContentChanged(uri, content string) {
	s.debouncer.Notify(uri, content)
}

// TrackDocument registers the validation disposable for an opened document
func (s *Server) TrackDocument(uri string) {
	s.scope.Register(uri, providers.KindValidation, providers.DisposeFunc(func() {
		s.debouncer.Cancel(uri)
	}))
}

// ReleaseDocument disposes all registrations for a closed document
func (s *Server) ReleaseDocument(uri string) {
	s.scope.DisposeDocument(uri)
}

// GLSPContext returns the stored GLSP context
func (s *Server) GLSPContext() *glsp.Context {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.context
}

// SetGLSPContext stores the GLSP context for server-initiated notifications
func (s *Server) SetGLSPContext(ctx *glsp.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.context = ctx
}

// publishValidation is the debouncer subscriber. It pushes diagnostics to
// the client and records the document's validation status in the catalog.
func (s *Server) publishValidation(uri, content string, errors []debounce.ValidationError) {
	diagnostics := make([]protocol.Diagnostic, 0, len(errors))
	source := "schema-workbench"
	for _, e := range errors {
		severity := diagnosticSeverity(e.Severity)
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: zeroBased(e.Line), Character: zeroBased(e.Column)},
				End:   protocol.Position{Line: zeroBased(e.EndLine), Character: zeroBased(e.EndColumn)},
			},
			Severity: &severity,
			Source:   &source,
			Message:  e.Message,
		})
	}

	if ctx := s.GLSPContext(); ctx != nil {
		ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         uri,
			Diagnostics: diagnostics,
		})
	}

	s.recordValidationStatus(uri, len(errors) == 0)
}

// recordValidationStatus maps a document URI back to its catalog entry and
// stores the validation outcome there.
func (s *Server) recordValidationStatus(uri string, valid bool) {
	rootPath := s.RootPath()
	if rootPath == "" {
		return
	}

	path := uriutil.URIToPath(uri)
	rel, err := filepath.Rel(rootPath, path)
	if err != nil {
		return
	}
	rel = filepath.ToSlash(rel)

	status := catalog.StatusValid
	if !valid {
		status = catalog.StatusInvalid
	}
	s.catalog.SetStatus(rel, status)
}

func diagnosticSeverity(s debounce.Severity) protocol.DiagnosticSeverity {
	switch s {
	case debounce.SeverityError:
		return protocol.DiagnosticSeverityError
	case debounce.SeverityWarning:
		return protocol.DiagnosticSeverityWarning
	default:
		return protocol.DiagnosticSeverityInformation
	}
}

func zeroBased(n int) protocol.UInteger {
	if n <= 1 {
		return 0
	}
	return protocol.UInteger(n - 1)
}
