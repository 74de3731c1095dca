package definition

import (
	"regexp"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/schemabench/swls/internal/log"
	"github.com/schemabench/swls/internal/refresolve"
	"github.com/schemabench/swls/internal/uriutil"
	"github.com/schemabench/swls/lsp/types"
)

// refLineRe matches a $ref declaration and captures its value.
var refLineRe = regexp.MustCompile(`"\$ref"\s*:\s*"([^"]*)"`)

// Definition handles the textDocument/definition request. It navigates from
// a $ref line to the referenced schema document.
func Definition(req *types.RequestContext, params *protocol.DefinitionParams) (any, error) {
	uri := params.TextDocument.URI
	pos := params.Position

	doc := req.Server.Document(uri)
	if doc == nil {
		return nil, nil
	}

	line := req.Server.DocumentManager().LineText(uri, int(pos.Line))
	m := refLineRe.FindStringSubmatch(line)
	if m == nil {
		// Not a $ref line, nothing to navigate to
		return nil, nil
	}
	ref := m[1]

	entry, ok := refresolve.Resolve(ref, req.Server.CatalogEntries())
	if !ok {
		log.Info("definition: unresolved reference %q", ref)
		req.Notify(protocol.ServerWindowShowMessage, &protocol.ShowMessageParams{
			Type:    protocol.MessageTypeWarning,
			Message: "Cannot resolve schema reference: " + ref,
		})
		return nil, nil
	}

	log.Debug("definition: %q -> %s", ref, entry.RelativePath)

	return protocol.Location{
		URI: uriutil.PathToURI(entry.Path),
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: 0, Character: 0},
		},
	}, nil
}
