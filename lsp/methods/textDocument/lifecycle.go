package textDocument

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/schemabench/swls/internal/log"
	"github.com/schemabench/swls/lsp/types"
)

// DidOpen handles the textDocument/didOpen notification
func DidOpen(req *types.RequestContext, params *protocol.DidOpenTextDocumentParams) error {
	log.Debug("Document opened: %s (language: %s, version: %d)",
		params.TextDocument.URI, params.TextDocument.LanguageID, int(params.TextDocument.Version))

	err := req.Server.DocumentManager().DidOpen(params.TextDocument.URI, params.TextDocument.LanguageID,
		int(params.TextDocument.Version), params.TextDocument.Text)
	if err != nil {
		return err
	}

	// Register the validation disposable and run a first validation pass.
	req.Server.TrackDocument(params.TextDocument.URI)
	req.Server.NotifyContentChanged(params.TextDocument.URI, params.TextDocument.Text)

	return nil
}

// DidChange handles the textDocument/didChange notification
func DidChange(req *types.RequestContext, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	version := int(params.TextDocument.Version)

	log.Debug("Document changed: %s (version: %d, changes: %d)", uri, version, len(params.ContentChanges))

	// ContentChanges arrives as any[]; whole-document replaces decode to a
	// separate type with no range.
	changes := make([]protocol.TextDocumentContentChangeEvent, 0, len(params.ContentChanges))
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEvent:
			changes = append(changes, c)
		case protocol.TextDocumentContentChangeEventWhole:
			changes = append(changes, protocol.TextDocumentContentChangeEvent{Text: c.Text})
		}
	}

	if err := req.Server.DocumentManager().DidChange(uri, version, changes); err != nil {
		return err
	}

	// Feed the new snapshot into the debounced validation pipeline.
	if doc := req.Server.Document(uri); doc != nil {
		req.Server.NotifyContentChanged(uri, doc.Content())
	}

	return nil
}

// DidClose handles the textDocument/didClose notification
func DidClose(req *types.RequestContext, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI

	log.Debug("Document closed: %s", uri)

	// Disposing cancels any pending validation for the document.
	req.Server.ReleaseDocument(uri)

	return req.Server.DocumentManager().DidClose(uri)
}
