package output

import (
	"os"
	"path/filepath"
	"strings"
)

// IndexFilename is the name of the master index document.
const IndexFilename = "api.rst"

// IndexCollector accumulates the master index entries in processing order,
// deduplicating document paths: records from different manifest entries can
// map to the same generated document, and only the first one counts.
type IndexCollector struct {
	outputDir string
	dryRun    bool
	entries   []string
	seen      map[string]struct{}
}

// CollectorOptions contains options for the index collector
type CollectorOptions struct {
	OutputDir string
	DryRun    bool
}

// NewIndexCollector creates a new index collector
func NewIndexCollector(opts CollectorOptions) *IndexCollector {
	return &IndexCollector{
		outputDir: opts.OutputDir,
		dryRun:    opts.DryRun,
		seen:      make(map[string]struct{}),
	}
}

// Add records a document path for the index. It returns false when the path
// was already seen, in which case the caller must skip the record entirely.
func (c *IndexCollector) Add(docPath string) bool {
	if _, dup := c.seen[docPath]; dup {
		return false
	}
	c.seen[docPath] = struct{}{}
	c.entries = append(c.entries, docPath)
	return true
}

// Count returns the number of collected index entries.
func (c *IndexCollector) Count() int {
	return len(c.entries)
}

// Flush writes api.rst at the output root, listing every collected entry in
// processing order under the toctree directive.
func (c *IndexCollector) Flush() error {
	if c.dryRun {
		return nil
	}

	var b strings.Builder
	b.WriteString(indexHeader)
	for _, entry := range c.entries {
		b.WriteString("   ")
		b.WriteString(entry)
		b.WriteString("\n")
	}

	path := filepath.Join(c.outputDir, IndexFilename)
	return os.WriteFile(path, []byte(b.String()), 0644)
}
