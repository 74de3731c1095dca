// Package catalog holds the in-memory collection of schema documents known
// to the workspace. Entries are treated as immutable snapshots by everything
// downstream; the catalog is replaced wholesale when the workspace changes.
package catalog

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// SchemaFileSuffix is the dual-extension suffix carried by schema files.
// It is used only for display-name stripping, never for identity; identity
// is always the full relative path.
const SchemaFileSuffix = ".schema.json"

// ValidationStatus describes the last known validation outcome of an entry.
type ValidationStatus string

const (
	StatusPending ValidationStatus = "pending"
	StatusValid   ValidationStatus = "valid"
	StatusInvalid ValidationStatus = "invalid"
	StatusError   ValidationStatus = "error"
)

// Metadata carries display information extracted from a schema document.
type Metadata struct {
	Title        string    `json:"title,omitempty"`
	Description  string    `json:"description,omitempty"`
	FileSize     int64     `json:"fileSize,omitempty"`
	LastModified time.Time `json:"lastModified,omitempty"`
}

// Entry is one schema document known to the catalog.
type Entry struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Path         string           `json:"path"`         // native absolute path
	RelativePath string           `json:"relativePath"` // slash-delimited, unique per workspace
	Content      []byte           `json:"-"`            // parsed (normalized) JSON bytes
	Metadata     Metadata         `json:"metadata"`
	Status       ValidationStatus `json:"validationStatus"`

	// References holds the relative paths of entries this schema points at;
	// ReferencedBy is the reverse edge set. Both are populated after the
	// whole catalog has loaded, by reference linking.
	References   []string `json:"references"`
	ReferencedBy []string `json:"referencedBy"`

	// RawRefs are the $ref strings as they appear in the document, before
	// any resolution against the catalog.
	RawRefs []string `json:"-"`
}

// Title returns the schema title, falling back to the entry name.
func (e *Entry) Title() string {
	if e.Metadata.Title != "" {
		return e.Metadata.Title
	}
	return e.Name
}

// RequiredProperties returns the top-level "required" list of the schema.
func (e *Entry) RequiredProperties() []string {
	result := gjson.GetBytes(e.Content, "required")
	if !result.IsArray() {
		return nil
	}
	var required []string
	for _, item := range result.Array() {
		if item.Type == gjson.String {
			required = append(required, item.String())
		}
	}
	return required
}

// PropertyCount returns the number of top-level properties declared.
func (e *Entry) PropertyCount() int {
	props := gjson.GetBytes(e.Content, "properties")
	if !props.IsObject() {
		return 0
	}
	count := 0
	props.ForEach(func(_, _ gjson.Result) bool {
		count++
		return true
	})
	return count
}

// ContentPreview pretty-prints the schema content, truncated at budget
// characters with an ellipsis marker.
func (e *Entry) ContentPreview(budget int) string {
	var value any
	if err := json.Unmarshal(e.Content, &value); err != nil {
		// Fall back to the raw bytes when the content no longer parses
		preview := string(e.Content)
		return truncate(preview, budget)
	}
	pretty, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return truncate(string(e.Content), budget)
	}
	return truncate(string(pretty), budget)
}

func truncate(s string, budget int) string {
	if budget <= 0 || len(s) <= budget {
		return s
	}
	// Back up to a rune boundary so the cut never splits a multi-byte rune.
	cut := budget
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return strings.TrimRight(s[:cut], " \n\t") + "…"
}

// ExtractRawRefs walks a parsed JSON document and collects every string
// value keyed "$ref", in document order, duplicates removed.
func ExtractRawRefs(content []byte) []string {
	var refs []string
	seen := map[string]struct{}{}
	var walk func(value gjson.Result)
	walk = func(value gjson.Result) {
		if !value.IsObject() && !value.IsArray() {
			return
		}
		value.ForEach(func(key, child gjson.Result) bool {
			if key.Type == gjson.String && key.String() == "$ref" && child.Type == gjson.String {
				ref := child.String()
				if _, dup := seen[ref]; !dup {
					seen[ref] = struct{}{}
					refs = append(refs, ref)
				}
			}
			walk(child)
			return true
		})
	}
	walk(gjson.ParseBytes(content))
	return refs
}
