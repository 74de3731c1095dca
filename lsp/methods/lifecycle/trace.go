package lifecycle

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/schemabench/swls/internal/log"
	"github.com/schemabench/swls/lsp/types"
)

// SetTrace handles the $/setTrace notification
func SetTrace(req *types.RequestContext, params *protocol.SetTraceParams) error {
	log.Debug("Trace level set to: %s", params.Value)
	return nil
}
