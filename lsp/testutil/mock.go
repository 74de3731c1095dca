// Package testutil provides a mock ServerContext for handler tests.
package testutil

import (
	"github.com/tliron/glsp"

	"github.com/schemabench/swls/internal/catalog"
	"github.com/schemabench/swls/internal/documents"
	"github.com/schemabench/swls/internal/workspacetree"
	"github.com/schemabench/swls/lsp/types"
)

// MockServerContext implements types.ServerContext for testing.
// It provides a minimal implementation with configurable behavior via callback functions.
type MockServerContext struct {
	docs        *documents.Manager
	catalog     *catalog.Catalog
	rootURI     string
	rootPath    string
	config      types.ServerConfig
	glspContext *glsp.Context

	// Optional callbacks for custom behavior in tests
	LoadCatalogFunc  func() error
	StartWatcherFunc func() error

	// Tracking for tests that need to verify methods were called
	LoadCatalogCalled  bool
	StartWatcherCalled bool
	NotifiedURIs       []string
	NotifiedContents   []string
	TrackedURIs        []string
	ReleasedURIs       []string
}

// NewMockServerContext creates a new mock server context with default behavior
func NewMockServerContext() *MockServerContext {
	return &MockServerContext{
		docs:    documents.NewManager(),
		catalog: catalog.New(),
		config:  types.DefaultConfig(),
	}
}

// Document returns the document with the given URI
func (m *MockServerContext) Document(uri string) *documents.Document {
	return m.docs.Get(uri)
}

// DocumentManager returns the document manager
func (m *MockServerContext) DocumentManager() *documents.Manager {
	return m.docs
}

// Catalog returns the schema catalog
func (m *MockServerContext) Catalog() *catalog.Catalog {
	return m.catalog
}

// CatalogEntries returns all catalog entries
func (m *MockServerContext) CatalogEntries() []*catalog.Entry {
	return m.catalog.All()
}

// RootURI returns the workspace root URI
func (m *MockServerContext) RootURI() string {
	return m.rootURI
}

// RootPath returns the workspace root path
func (m *MockServerContext) RootPath() string {
	return m.rootPath
}

// SetRootURI sets the workspace root URI
func (m *MockServerContext) SetRootURI(uri string) {
	m.rootURI = uri
}

// SetRootPath sets the workspace root path
func (m *MockServerContext) SetRootPath(path string) {
	m.rootPath = path
}

// WorkspaceTree builds the folder tree over the mock catalog
func (m *MockServerContext) WorkspaceTree() []*workspacetree.Node {
	return workspacetree.Build(m.catalog.All())
}

// GetConfig returns the mock configuration
func (m *MockServerContext) GetConfig() types.ServerConfig {
	return m.config
}

// SetConfig replaces the mock configuration
func (m *MockServerContext) SetConfig(config types.ServerConfig) {
	m.config = config
}

// LoadWorkspaceConfig is a no-op in the mock
func (m *MockServerContext) LoadWorkspaceConfig() error {
	return nil
}

// LoadCatalog records the call and delegates to LoadCatalogFunc if set
func (m *MockServerContext) LoadCatalog() error {
	m.LoadCatalogCalled = true
	if m.LoadCatalogFunc != nil {
		return m.LoadCatalogFunc()
	}
	return nil
}

// StartWatcher records the call and delegates to StartWatcherFunc if set
func (m *MockServerContext) StartWatcher() error {
	m.StartWatcherCalled = true
	if m.StartWatcherFunc != nil {
		return m.StartWatcherFunc()
	}
	return nil
}

// NotifyContentChanged records the notification
func (m *MockServerContext) NotifyContentChanged(uri, content string) {
	m.NotifiedURIs = append(m.NotifiedURIs, uri)
	m.NotifiedContents = append(m.NotifiedContents, content)
}

// TrackDocument records the registration
func (m *MockServerContext) TrackDocument(uri string) {
	m.TrackedURIs = append(m.TrackedURIs, uri)
}

// ReleaseDocument records the disposal
func (m *MockServerContext) ReleaseDocument(uri string) {
	m.ReleasedURIs = append(m.ReleasedURIs, uri)
}

// GLSPContext returns the stored GLSP context
func (m *MockServerContext) GLSPContext() *glsp.Context {
	return m.glspContext
}

// SetGLSPContext stores the GLSP context
func (m *MockServerContext) SetGLSPContext(ctx *glsp.Context) {
	m.glspContext = ctx
}

// ReplaceCatalog fills the mock catalog with the given entries
func (m *MockServerContext) ReplaceCatalog(entries []*catalog.Entry) {
	m.catalog.Replace(entries)
}

// Verify interface compliance
var _ types.ServerContext = (*MockServerContext)(nil)
