package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/goccy/go-json"
	"github.com/segmentio/ksuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"

	"github.com/schemabench/swls/internal/collections"
	"github.com/schemabench/swls/internal/log"
)

// Load scans root for schema files matching the given doublestar globs and
// builds catalog entries for them. Sources may be JSONC; comments and
// trailing commas are stripped before parsing. Files that fail to parse are
// kept in the catalog with StatusError so the workspace tree still shows
// them, but carry no metadata.
func Load(root string, globs []string) ([]*Entry, error) {
	fsys := os.DirFS(root)

	matched := collections.NewSet[string]()
	for _, pattern := range globs {
		paths, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("bad schema glob %q: %w", pattern, err)
		}
		matched.Add(paths...)
	}

	relPaths := matched.Members()
	sort.Strings(relPaths)

	entries := make([]*Entry, 0, len(relPaths))
	for _, rel := range relPaths {
		entry, err := loadEntry(root, rel)
		if err != nil {
			log.Warn("Skipping schema %s: %v", rel, err)
			continue
		}
		entries = append(entries, entry)
	}

	log.Info("Loaded %d schema entries from %s", len(entries), root)
	return entries, nil
}

func loadEntry(root, rel string) (*Entry, error) {
	abs := filepath.Join(root, filepath.FromSlash(rel))

	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}

	entry := &Entry{
		ID:           ksuid.New().String(),
		Name:         filepath.Base(abs),
		Path:         abs,
		RelativePath: rel,
		Status:       StatusPending,
		Metadata: Metadata{
			FileSize:     info.Size(),
			LastModified: info.ModTime(),
		},
	}

	content := jsonc.ToJSON(raw)

	var value any
	if err := json.Unmarshal(content, &value); err != nil {
		entry.Status = StatusError
		return entry, nil
	}

	entry.Content = content
	entry.Metadata.Title = gjson.GetBytes(content, "title").String()
	entry.Metadata.Description = gjson.GetBytes(content, "description").String()
	entry.RawRefs = ExtractRawRefs(content)
	return entry, nil
}
