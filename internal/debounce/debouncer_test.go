package debounce

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects subscriber deliveries for assertions.
type recorder struct {
	mu        sync.Mutex
	uris      []string
	contents  []string
	errorSets [][]ValidationError
}

func (r *recorder) subscribe(uri, content string, errors []ValidationError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.uris = append(r.uris, uri)
	r.contents = append(r.contents, content)
	r.errorSets = append(r.errorSets, errors)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.uris)
}

func (r *recorder) lastContent() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.contents[len(r.contents)-1]
}

func noMarkers(string, string) []Marker { return nil }

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

// Two edits within the quiet interval produce exactly one callback
// reflecting only the final content.
func TestCoalescesEditsWithinQuietPeriod(t *testing.T) {
	rec := &recorder{}
	d := New(100*time.Millisecond, noMarkers, rec.subscribe)
	defer d.Close()

	d.Notify("file:///a.json", `{"v":1}`)
	time.Sleep(20 * time.Millisecond)
	d.Notify("file:///a.json", `{"v":2}`)

	waitFor(t, func() bool { return rec.count() == 1 })
	assert.Equal(t, `{"v":2}`, rec.lastContent())

	// No stray second delivery from the superseded timer
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, 1, rec.count())
}

func TestIdenticalContentIsNoOp(t *testing.T) {
	rec := &recorder{}
	d := New(50*time.Millisecond, noMarkers, rec.subscribe)
	defer d.Close()

	d.Notify("file:///a.json", "{}")
	waitFor(t, func() bool { return rec.count() == 1 })

	// Cursor movement style notifications carry identical content
	d.Notify("file:///a.json", "{}")
	d.Notify("file:///a.json", "{}")
	time.Sleep(120 * time.Millisecond)
	assert.Equal(t, 1, rec.count())

	// A genuine change validates again
	d.Notify("file:///a.json", "[]")
	waitFor(t, func() bool { return rec.count() == 2 })
	assert.Equal(t, "[]", rec.lastContent())
}

func TestSeverityMapping(t *testing.T) {
	source := func(string, string) []Marker {
		return []Marker{
			{StartLine: 1, StartColumn: 2, EndLine: 1, EndColumn: 5, Message: "bad", Severity: "error"},
			{Message: "meh", Severity: "warning"},
			{Message: "fyi", Severity: "hint"},
			{Message: "also fyi", Severity: ""},
		}
	}

	rec := &recorder{}
	d := New(10*time.Millisecond, source, rec.subscribe)
	defer d.Close()

	d.Notify("file:///a.json", "{")
	waitFor(t, func() bool { return rec.count() == 1 })

	errors := rec.errorSets[0]
	require.Len(t, errors, 4)
	assert.Equal(t, SeverityError, errors[0].Severity)
	assert.Equal(t, ValidationError{Line: 1, Column: 2, EndLine: 1, EndColumn: 5, Message: "bad", Severity: SeverityError}, errors[0])
	assert.Equal(t, SeverityWarning, errors[1].Severity)
	assert.Equal(t, SeverityInfo, errors[2].Severity)
	assert.Equal(t, SeverityInfo, errors[3].Severity)
}

func TestDocumentsAreIndependent(t *testing.T) {
	rec := &recorder{}
	d := New(20*time.Millisecond, noMarkers, rec.subscribe)
	defer d.Close()

	d.Notify("file:///a.json", "{}")
	d.Notify("file:///b.json", "[]")

	waitFor(t, func() bool { return rec.count() == 2 })
}

func TestCancelPreventsDelivery(t *testing.T) {
	rec := &recorder{}
	d := New(30*time.Millisecond, noMarkers, rec.subscribe)
	defer d.Close()

	d.Notify("file:///a.json", "{}")
	d.Cancel("file:///a.json")

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 0, rec.count())
}

func TestNotifyAfterCancelStartsFresh(t *testing.T) {
	rec := &recorder{}
	d := New(20*time.Millisecond, noMarkers, rec.subscribe)
	defer d.Close()

	d.Notify("file:///a.json", "{}")
	d.Cancel("file:///a.json")
	d.Notify("file:///a.json", "{}")

	waitFor(t, func() bool { return rec.count() == 1 })
	assert.Equal(t, "{}", rec.lastContent())
}

func TestCloseStopsEverything(t *testing.T) {
	rec := &recorder{}
	d := New(30*time.Millisecond, noMarkers, rec.subscribe)

	d.Notify("file:///a.json", "{}")
	d.Close()
	d.Notify("file:///b.json", "{}")

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 0, rec.count())
}

func TestManyRapidEditsSingleDelivery(t *testing.T) {
	rec := &recorder{}
	d := New(80*time.Millisecond, noMarkers, rec.subscribe)
	defer d.Close()

	for i := 0; i < 20; i++ {
		d.Notify("file:///a.json", string(rune('a'+i)))
		time.Sleep(2 * time.Millisecond)
	}

	waitFor(t, func() bool { return rec.count() == 1 })
	assert.Equal(t, string(rune('a'+19)), rec.lastContent())
}
