// Package providers scopes per-document provider registrations.
//
// At most one live registration of each kind may exist per document.
// Register always disposes the previous instance before installing the new
// one, so double registration is structurally impossible rather than a
// runtime failure mode.
package providers

import "sync"

// Kind names a provider registration slot.
type Kind string

const (
	KindCompletion Kind = "completion"
	KindHover      Kind = "hover"
	KindValidation Kind = "validation"
	KindCommand    Kind = "command"
)

// Disposable releases a registration.
type Disposable interface {
	Dispose()
}

// DisposeFunc adapts a plain function to Disposable.
type DisposeFunc func()

// Dispose calls the function
func (f DisposeFunc) Dispose() { f() }

// Scope tracks live registrations per document URI.
type Scope struct {
	mu   sync.Mutex
	live map[string]map[Kind]Disposable
}

// NewScope creates an empty registration scope
func NewScope() *Scope {
	return &Scope{
		live: make(map[string]map[Kind]Disposable),
	}
}

// Register installs d as the live registration of the given kind for the
// document, disposing any previous instance first.
func (s *Scope) Register(uri string, kind Kind, d Disposable) {
	s.mu.Lock()
	kinds, ok := s.live[uri]
	if !ok {
		kinds = make(map[Kind]Disposable)
		s.live[uri] = kinds
	}
	previous := kinds[kind]
	kinds[kind] = d
	s.mu.Unlock()

	// Dispose outside the lock; disposables may call back into the scope
	if previous != nil {
		previous.Dispose()
	}
}

// Live reports whether a registration of the given kind exists for the document.
func (s *Scope) Live(uri string, kind Kind) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.live[uri][kind]
	return ok
}

// DisposeDocument releases every registration for the document.
func (s *Scope) DisposeDocument(uri string) {
	s.mu.Lock()
	kinds := s.live[uri]
	delete(s.live, uri)
	s.mu.Unlock()

	for _, d := range kinds {
		d.Dispose()
	}
}

// DisposeAll releases every registration in the scope.
func (s *Scope) DisposeAll() {
	s.mu.Lock()
	live := s.live
	s.live = make(map[string]map[Kind]Disposable)
	s.mu.Unlock()

	for _, kinds := range live {
		for _, d := range kinds {
			d.Dispose()
		}
	}
}
