package types

import (
	"github.com/tliron/glsp"
)

// RequestContext contains all request-scoped data for an LSP method call.
// It wraps the server-wide context and the GLSP protocol context, and
// collects request-scoped warnings for the middleware to log.
type RequestContext struct {
	Server        ServerContext
	GLSP          *glsp.Context
	warnings      []error
	notifications []Notification
}

// Notification is one server-initiated message sent during a request.
type Notification struct {
	Method string
	Params any
}

// NewRequestContext creates a new request context
func NewRequestContext(server ServerContext, glsp *glsp.Context) *RequestContext {
	return &RequestContext{
		Server: server,
		GLSP:   glsp,
	}
}

// Notify sends a notification to the client and records it on the request,
// so callers and tests can observe what was sent. The wire send happens off
// the request goroutine; a nil GLSP context only records.
func (r *RequestContext) Notify(method string, params any) {
	r.notifications = append(r.notifications, Notification{Method: method, Params: params})
	if r.GLSP != nil {
		ctx := r.GLSP
		go func() {
			ctx.Notify(method, params)
		}()
	}
}

// Notifications returns the notifications sent during this request
func (r *RequestContext) Notifications() []Notification {
	return r.notifications
}

// AddWarning adds a non-fatal warning to this request
func (r *RequestContext) AddWarning(err error) {
	if err != nil {
		r.warnings = append(r.warnings, err)
	}
}

// Warnings returns all warnings collected during this request
func (r *RequestContext) Warnings() []error {
	return r.warnings
}

// HasWarnings returns true if any warnings were collected
func (r *RequestContext) HasWarnings() bool {
	return len(r.warnings) > 0
}
