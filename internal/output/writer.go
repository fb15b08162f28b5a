// Package output emits the generated documentation tree: one RST document
// per resolved source plus the api.rst master index.
package output

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cdoctools/csphinx-go/internal/domain"
	"github.com/cdoctools/csphinx-go/internal/utils"
)

// clangOptionMatcher selects the compiler arguments forwarded to the
// documentation tool: include paths and macro definitions only.
var clangOptionMatcher = regexp.MustCompile(`^-(I|D)`)

// DocExt is the extension of generated documents.
const DocExt = ".rst"

// SourcesDir is the subdirectory of the output root holding per-source
// documents.
const SourcesDir = "sources"

// Writer renders resolved documents into the output tree
type Writer struct {
	outputDir  string
	sourceRoot string
	dryRun     bool
}

// WriterOptions contains options for the writer
type WriterOptions struct {
	OutputDir  string
	SourceRoot string
	DryRun     bool
}

// NewWriter creates a new output writer
func NewWriter(opts WriterOptions) *Writer {
	return &Writer{
		outputDir:  opts.OutputDir,
		sourceRoot: opts.SourceRoot,
		dryRun:     opts.DryRun,
	}
}

// EnsureBaseDir creates the output root. Failure here is fatal for the run.
func (w *Writer) EnsureBaseDir() error {
	if w.dryRun {
		return nil
	}
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrOutputUncreatable, err)
	}
	return nil
}

// DocumentPath returns the document path for a record, relative to the
// output root: sources/<source-relative-path> with the extension replaced.
// Forward slashes throughout, since the path doubles as an index entry.
func (w *Writer) DocumentPath(record domain.CompilationRecord) string {
	rel := utils.RelativeTo(w.sourceRoot, record.File)
	rel = utils.ReplaceExt(rel, DocExt)
	return filepath.ToSlash(filepath.Join(SourcesDir, rel))
}

// Write renders one resolved document to its place in the output tree.
func (w *Writer) Write(doc *domain.ResolvedDocument) error {
	target := filepath.Join(w.outputDir, filepath.FromSlash(w.DocumentPath(doc.Record)))

	var buf bytes.Buffer
	err := docTemplate.Execute(&buf, docContext{
		RelativePath:         utils.RelativeTo(w.sourceRoot, doc.Record.File),
		Overview:             doc.Overview,
		PublicInterfaceFiles: strings.Join(doc.PublicInterfaceFiles, " "),
		ClangOptions:         ClangOptions(doc.Record.Arguments),
		File:                 doc.Record.File,
	})
	if err != nil {
		return err
	}

	if w.dryRun {
		return nil
	}

	if err := utils.EnsureDir(target); err != nil {
		return err
	}
	return os.WriteFile(target, buf.Bytes(), 0644)
}

// ClangOptions filters compiler arguments down to the include-path and
// macro-definition flags, comma-joined for the :clang: directive option.
func ClangOptions(arguments []string) string {
	var kept []string
	for _, arg := range arguments {
		if clangOptionMatcher.MatchString(arg) {
			kept = append(kept, arg)
		}
	}
	return strings.Join(kept, ",")
}
