package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	"github.com/cdoctools/csphinx-go/internal/domain"
	"github.com/cdoctools/csphinx-go/internal/utils"
)

// Loader loads and filters compile command manifests
type Loader struct {
	sourceRoot string
	exclude    []*regexp.Regexp
}

// LoaderOptions contains options for the loader
type LoaderOptions struct {
	// SourceRoot is the directory a record's file must lie under to be kept.
	SourceRoot string
	// Exclude drops any record whose file path matches one of the patterns.
	Exclude []*regexp.Regexp
}

// NewLoader creates a new manifest loader
func NewLoader(opts LoaderOptions) *Loader {
	return &Loader{
		sourceRoot: opts.SourceRoot,
		exclude:    opts.Exclude,
	}
}

// Load reads and parses a manifest file from the given path, returning the
// filtered records in manifest order. A missing or unparsable manifest is
// fatal; filtered entries are dropped silently.
func (l *Loader) Load(path string) ([]domain.CompilationRecord, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", domain.ErrManifestNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}

	return l.LoadFromBytes(data)
}

// LoadFromBytes parses manifest entries from raw JSON bytes
func (l *Loader) LoadFromBytes(data []byte) ([]domain.CompilationRecord, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidManifest, err)
	}

	records := make([]domain.CompilationRecord, 0, len(entries))
	for _, entry := range entries {
		record, err := entry.ToRecord()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidManifest, err)
		}
		if !l.included(record) {
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

// included applies the source-root prefix test and the exclusion filters.
func (l *Loader) included(record domain.CompilationRecord) bool {
	for _, re := range l.exclude {
		if re.MatchString(record.File) {
			return false
		}
	}
	return utils.ContainsPath(l.sourceRoot, record.File)
}
