// Package debounce coalesces rapid document edits into at most one
// validation pass per quiescent interval.
//
// Timers are cancellable scheduled tasks with supersede-on-rearm semantics:
// rearming strictly replaces any prior timer for the document, and a
// superseded timer never delivers. Each delivery is attributed to exactly
// one distinct content snapshot.
package debounce

import (
	"sync"
	"time"
)

// Severity of a validation error.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// ValidationError is one diagnostic mapped from the editing surface.
type ValidationError struct {
	Line      int      `json:"line"`
	Column    int      `json:"column"`
	EndLine   int      `json:"endLine"`
	EndColumn int      `json:"endColumn"`
	Message   string   `json:"message"`
	Severity  Severity `json:"severity"`
}

// Marker is a raw diagnostic marker as reported by the validation surface.
// Severity strings other than "error" and "warning" map to info.
type Marker struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
	Message     string
	Severity    string
}

// MarkerSource pulls the current diagnostic markers for a document snapshot.
type MarkerSource func(uri, content string) []Marker

// Subscriber receives the frozen validation result for a document.
type Subscriber func(uri, content string, errors []ValidationError)

// docState is the per-document debounce state machine: idle, pending
// (timer armed), validated (lastValidated holds the snapshot).
type docState struct {
	timer         *time.Timer
	gen           uint64 // increments on every rearm; stale timers compare and bail
	pending       string
	lastValidated string
	hasValidated  bool
}

// Debouncer runs at most one delayed validation per document.
type Debouncer struct {
	mu         sync.Mutex
	delay      time.Duration
	source     MarkerSource
	subscriber Subscriber
	docs       map[string]*docState
	closed     bool
}

// New creates a debouncer delivering markers from source to subscriber
// after delay of quiet per document.
func New(delay time.Duration, source MarkerSource, subscriber Subscriber) *Debouncer {
	return &Debouncer{
		delay:      delay,
		source:     source,
		subscriber: subscriber,
		docs:       make(map[string]*docState),
	}
}

// SetDelay changes the quiet interval for subsequently armed timers.
func (d *Debouncer) SetDelay(delay time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.delay = delay
}

// Notify records a content-change for the document. Content identical to
// the last validated snapshot is a no-op, so non-content events (cursor
// movement, focus) never trigger redundant passes. A genuine change cancels
// any pending timer and arms a fresh one.
func (d *Debouncer) Notify(uri, content string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	st, ok := d.docs[uri]
	if !ok {
		st = &docState{}
		d.docs[uri] = st
	}

	if st.hasValidated && st.lastValidated == content {
		return
	}

	st.gen++
	gen := st.gen
	st.pending = content
	if st.timer != nil {
		st.timer.Stop()
	}
	st.timer = time.AfterFunc(d.delay, func() {
		d.fire(uri, st, gen)
	})
}

func (d *Debouncer) fire(uri string, st *docState, gen uint64) {
	d.mu.Lock()
	if d.docs[uri] != st || st.gen != gen || d.closed {
		// Superseded or cancelled; never deliver
		d.mu.Unlock()
		return
	}

	content := st.pending
	st.lastValidated = content
	st.hasValidated = true
	st.timer = nil
	source := d.source
	subscriber := d.subscriber
	d.mu.Unlock()

	markers := source(uri, content)
	errors := make([]ValidationError, 0, len(markers))
	for _, m := range markers {
		errors = append(errors, ValidationError{
			Line:      m.StartLine,
			Column:    m.StartColumn,
			EndLine:   m.EndLine,
			EndColumn: m.EndColumn,
			Message:   m.Message,
			Severity:  mapSeverity(m.Severity),
		})
	}

	subscriber(uri, content, errors)
}

func mapSeverity(s string) Severity {
	switch s {
	case "error":
		return SeverityError
	case "warning":
		return SeverityWarning
	default:
		return SeverityInfo
	}
}

// Cancel drops the document's state and stops any pending timer. The timer,
// if armed, will never deliver.
func (d *Debouncer) Cancel(uri string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	st, ok := d.docs[uri]
	if !ok {
		return
	}
	st.gen++ // invalidate any in-flight timer callback
	if st.timer != nil {
		st.timer.Stop()
	}
	delete(d.docs, uri)
}

// Close cancels every pending timer and rejects further notifications.
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	for uri, st := range d.docs {
		st.gen++
		if st.timer != nil {
			st.timer.Stop()
		}
		delete(d.docs, uri)
	}
}
