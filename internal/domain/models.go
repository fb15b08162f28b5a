package domain

// CompilationRecord is one entry from the compile commands manifest: the
// exact command used to compile a single translation unit.
type CompilationRecord struct {
	Arguments []string
	File      string
	Directory string
	Output    string
}

// ResolvedDocument holds everything extracted for one CompilationRecord:
// the record itself, the leading overview comment (possibly empty), and the
// resolved public interface files (zero or one entries).
type ResolvedDocument struct {
	Record               CompilationRecord
	Overview             string
	PublicInterfaceFiles []string
}

// HasOverview reports whether a leading block comment was extracted.
func (d *ResolvedDocument) HasOverview() bool {
	return d.Overview != ""
}

// HasPublicInterface reports whether a sibling header was resolved.
func (d *ResolvedDocument) HasPublicInterface() bool {
	return len(d.PublicInterfaceFiles) > 0
}
