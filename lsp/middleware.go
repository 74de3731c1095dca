package lsp

import (
	"fmt"
	"runtime/debug"

	"github.com/tliron/glsp"

	"github.com/schemabench/swls/internal/log"
	"github.com/schemabench/swls/lsp/methods/workspace"
	"github.com/schemabench/swls/lsp/types"
)

// method wraps an LSP handler that returns (result, error) with middleware.
// Returns the underlying function type so it's compatible with protocol.Handler field types.
func method[P, R any](
	s types.ServerContext,
	methodName string,
	handler func(*types.RequestContext, P) (R, error),
) func(*glsp.Context, P) (R, error) {
	return func(ctx *glsp.Context, params P) (result R, err error) {
		// Panic recovery - prevents LSP server crashes
		defer func() {
			if r := recover(); r != nil {
				log.Error("PANIC in %s: %v\nStack trace:\n%s", methodName, r, debug.Stack())
				workspace.LogError(ctx, "Internal error in %s: %v", methodName, r)
				err = fmt.Errorf("internal error in %s", methodName)
				var zero R
				result = zero
			}
		}()

		log.Debug("%s started", methodName)

		req := types.NewRequestContext(s, ctx)
		result, err = handler(req, params)

		logWarnings(ctx, methodName, req)

		if err != nil {
			log.Error("%s error: %v", methodName, err)
			workspace.LogError(ctx, "%s: %v", methodName, err)
			return result, fmt.Errorf("%s: %w", methodName, err)
		}

		log.Debug("%s completed", methodName)
		return result, nil
	}
}

// notify wraps an LSP notification handler that returns only error
func notify[P any](
	s types.ServerContext,
	methodName string,
	handler func(*types.RequestContext, P) error,
) func(*glsp.Context, P) error {
	return func(ctx *glsp.Context, params P) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("PANIC in %s: %v\nStack trace:\n%s", methodName, r, debug.Stack())
				workspace.LogError(ctx, "Internal error in %s: %v", methodName, r)
				err = fmt.Errorf("internal error in %s", methodName)
			}
		}()

		log.Debug("%s started", methodName)

		req := types.NewRequestContext(s, ctx)
		err = handler(req, params)

		logWarnings(ctx, methodName, req)

		if err != nil {
			log.Error("%s error: %v", methodName, err)
			workspace.LogError(ctx, "%s: %v", methodName, err)
			return fmt.Errorf("%s: %w", methodName, err)
		}

		log.Debug("%s completed", methodName)
		return nil
	}
}

// noParam wraps an LSP handler that takes no params (like Shutdown)
func noParam(
	s types.ServerContext,
	methodName string,
	handler func(*types.RequestContext) error,
) func(*glsp.Context) error {
	return func(ctx *glsp.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("PANIC in %s: %v\nStack trace:\n%s", methodName, r, debug.Stack())
				workspace.LogError(ctx, "Internal error in %s: %v", methodName, r)
				err = fmt.Errorf("internal error in %s", methodName)
			}
		}()

		log.Debug("%s started", methodName)

		req := types.NewRequestContext(s, ctx)
		err = handler(req)

		logWarnings(ctx, methodName, req)

		if err != nil {
			log.Error("%s error: %v", methodName, err)
			workspace.LogError(ctx, "%s: %v", methodName, err)
			return fmt.Errorf("%s: %w", methodName, err)
		}

		log.Debug("%s completed", methodName)
		return nil
	}
}

// logWarnings forwards request-scoped warnings to stderr and the client.
func logWarnings(ctx *glsp.Context, methodName string, req *types.RequestContext) {
	for _, warning := range req.Warnings() {
		workspace.LogWarning(ctx, "%s: %v", methodName, warning)
	}
}
