// Package refresolve maps raw $ref strings to catalog entries.
//
// Resolution is an ordered list of increasingly permissive predicates,
// evaluated first-match-wins. Hover and go-to-definition share this resolver
// so both always agree on the target.
package refresolve

import (
	"strings"

	"github.com/schemabench/swls/internal/catalog"
)

// rule is one fallback predicate. Rules are tried in order against every
// catalog entry; the first (rule, entry) hit wins.
type rule struct {
	name  string
	match func(ref string, e *catalog.Entry) bool
}

var rules = []rule{
	{"exact path", func(ref string, e *catalog.Entry) bool {
		return e.RelativePath == ref
	}},
	{"exact name", func(ref string, e *catalog.Entry) bool {
		return e.Name == ref
	}},
	{"path suffix", func(ref string, e *catalog.Entry) bool {
		return ref != "" && strings.HasSuffix(e.RelativePath, ref)
	}},
	{"path contains", func(ref string, e *catalog.Entry) bool {
		return ref != "" && strings.Contains(e.RelativePath, ref)
	}},
	{"name contains", func(ref string, e *catalog.Entry) bool {
		return ref != "" && strings.Contains(e.Name, ref)
	}},
	{"dot-slash relative", func(ref string, e *catalog.Entry) bool {
		if !strings.HasPrefix(ref, "./") {
			return false
		}
		return strings.TrimPrefix(ref, "./") == strings.TrimPrefix(e.RelativePath, "./")
	}},
	{"dot-dot relative", func(ref string, e *catalog.Entry) bool {
		if !strings.HasPrefix(ref, "../") {
			return false
		}
		remainder := ref
		for strings.HasPrefix(remainder, "../") {
			remainder = strings.TrimPrefix(remainder, "../")
		}
		candidate := strings.TrimPrefix(e.RelativePath, "./")
		return remainder != "" && strings.HasSuffix(candidate, remainder)
	}},
}

// Resolve maps a raw $ref string to a catalog entry. The boolean reports
// whether any fallback rule matched; an unresolved reference is a normal
// outcome, not an error.
func Resolve(ref string, entries []*catalog.Entry) (*catalog.Entry, bool) {
	if ref == "" {
		return nil, false
	}
	for _, r := range rules {
		for _, e := range entries {
			if r.match(ref, e) {
				return e, true
			}
		}
	}
	return nil, false
}

// LinkReferences resolves every entry's raw $ref strings against the full
// entry list and populates the References / ReferencedBy edge sets with
// relative paths. Unresolvable refs are dropped.
func LinkReferences(entries []*catalog.Entry) {
	for _, e := range entries {
		e.References = nil
		e.ReferencedBy = nil
	}

	for _, e := range entries {
		for _, raw := range e.RawRefs {
			target, ok := Resolve(raw, entries)
			if !ok || target == e {
				continue
			}
			if !containsString(e.References, target.RelativePath) {
				e.References = append(e.References, target.RelativePath)
			}
			if !containsString(target.ReferencedBy, e.RelativePath) {
				target.ReferencedBy = append(target.ReferencedBy, e.RelativePath)
			}
		}
	}
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
