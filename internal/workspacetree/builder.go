// Package workspacetree turns the flat catalog into a sorted folder/file
// tree for the navigation UI. Trees are built fresh from an entry snapshot
// and never mutated in place; catalog changes rebuild wholesale.
package workspacetree

import (
	"sort"
	"strings"

	"github.com/schemabench/swls/internal/catalog"
	"github.com/schemabench/swls/internal/collections"
)

// Kind distinguishes folder nodes from file nodes.
type Kind string

const (
	KindFolder Kind = "folder"
	KindFile   Kind = "file"
)

// Node is one element of the workspace tree.
type Node struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"` // display name, suffix-stripped for files
	Kind     Kind           `json:"kind"`
	ParentID string         `json:"parentId,omitempty"`
	Children []*Node        `json:"children,omitempty"`
	Path     string         `json:"path"` // full relative path
	Entry    *catalog.Entry `json:"payload,omitempty"`
}

// Build converts a flat entry list into a tree of folder and file nodes.
// The result depends only on the multiset of relative paths: input order is
// irrelevant and rebuilding from the same entries yields a structurally
// identical tree. Two entries sharing a relative path are a caller error
// with an unspecified winner.
func Build(entries []*catalog.Entry) []*Node {
	// Pass 1: collect every strict folder prefix implied by the entries.
	prefixes := collections.NewSet[string]()
	for _, e := range entries {
		segments := strings.Split(e.RelativePath, "/")
		for i := 1; i < len(segments); i++ {
			prefixes.Add(strings.Join(segments[:i], "/"))
		}
	}

	// Pass 2: materialize nodes into an arena keyed by path prefix, then
	// link each node to its immediate parent prefix or the root list.
	folders := make(map[string]*Node, len(prefixes))
	var roots []*Node

	folderPaths := prefixes.Members()
	sort.Strings(folderPaths) // parents sort before children
	for _, path := range folderPaths {
		node := &Node{
			ID:   "folder:" + path,
			Name: path[strings.LastIndex(path, "/")+1:],
			Kind: KindFolder,
			Path: path,
		}
		folders[path] = node
		attach(node, parentPrefix(path), folders, &roots)
	}

	for _, e := range entries {
		node := &Node{
			ID:    "file:" + e.RelativePath,
			Name:  displayName(e.RelativePath),
			Kind:  KindFile,
			Path:  e.RelativePath,
			Entry: e,
		}
		attach(node, parentPrefix(e.RelativePath), folders, &roots)
	}

	// Pass 3: sort every sibling list, folders before files, then natural
	// case-insensitive order by display name.
	sortSiblings(roots)
	return roots
}

func attach(node *Node, parentPath string, folders map[string]*Node, roots *[]*Node) {
	if parentPath == "" {
		*roots = append(*roots, node)
		return
	}
	parent := folders[parentPath]
	node.ParentID = parent.ID
	parent.Children = append(parent.Children, node)
}

func parentPrefix(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[:i]
	}
	return ""
}

// displayName strips the dual-extension schema suffix from the final path
// segment. The suffix is display-only; node identity stays the full path.
func displayName(relativePath string) string {
	name := relativePath[strings.LastIndex(relativePath, "/")+1:]
	if stripped, ok := strings.CutSuffix(name, catalog.SchemaFileSuffix); ok && stripped != "" {
		return stripped
	}
	return name
}

func sortSiblings(nodes []*Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		a, b := nodes[i], nodes[j]
		if a.Kind != b.Kind {
			return a.Kind == KindFolder
		}
		return naturalLess(a.Name, b.Name)
	})
	for _, node := range nodes {
		sortSiblings(node.Children)
	}
}

// naturalLess compares display names case-insensitively with numeric runs
// compared by value, so "schema2" sorts before "schema10".
func naturalLess(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	i, j := 0, 0
	for i < len(la) && j < len(lb) {
		ca, cb := la[i], lb[j]
		if isDigit(ca) && isDigit(cb) {
			// Compare the full digit runs numerically
			ia, na := digitRun(la, i)
			ib, nb := digitRun(lb, j)
			if na != nb {
				return numLess(na, nb)
			}
			i, j = ia, ib
			continue
		}
		if ca != cb {
			return ca < cb
		}
		i++
		j++
	}
	return len(la)-i < len(lb)-j
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// digitRun returns the index past the run and the run with leading zeros
// trimmed (empty means zero).
func digitRun(s string, start int) (int, string) {
	end := start
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	run := strings.TrimLeft(s[start:end], "0")
	return end, run
}

// numLess compares two zero-trimmed digit strings by numeric value.
func numLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}
