// Package resolver turns one compilation record into a resolved document:
// the sibling public interface file, if one exists, and the leading overview
// comment extracted from the first file that starts with one.
package resolver

import (
	"os"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/cdoctools/csphinx-go/internal/domain"
	"github.com/cdoctools/csphinx-go/internal/utils"
)

// HeaderExt is the extension of resolved public interface files.
const HeaderExt = ".h"

// commentLineMarker matches a leading comment continuation marker: optional
// whitespace, a literal *, then one space or end of line.
var commentLineMarker = regexp.MustCompile(`^\s*\*( |$)`)

// Resolver resolves compilation records into documents. It is stateless
// across records; Resolve is a pure single-pass function per record.
type Resolver struct {
	lexer  chroma.Lexer
	logger *utils.Logger
}

// New creates a resolver backed by a C lexer
func New(logger *utils.Logger) *Resolver {
	return &Resolver{
		lexer:  lexers.Get("c"),
		logger: logger.WithComponent("resolver"),
	}
}

// Resolve produces the ResolvedDocument for one record.
//
// The public interface file is strictly the sibling path with the extension
// replaced by .h, included only when it exists on disk. The overview is
// taken from the first file whose first non-whitespace token is a /* ... */
// block comment, scanning the interface file and then the implementation
// file; a later qualifying candidate overwrites an earlier one.
//
// Any candidate read failure fails the whole record with an ExtractionError;
// a record with no qualifying comment succeeds with an empty overview.
func (r *Resolver) Resolve(record domain.CompilationRecord) (*domain.ResolvedDocument, error) {
	var interfaces []string

	header := utils.ReplaceExt(record.File, HeaderExt)
	if _, err := os.Stat(header); err == nil {
		r.logger.Debug().
			Str("header", header).
			Msg("Found sibling header, assuming public interface")
		interfaces = append(interfaces, header)
	}

	candidates := make([]string, 0, len(interfaces)+1)
	candidates = append(candidates, interfaces...)
	candidates = append(candidates, record.File)

	var overview string
	for _, file := range candidates {
		text, ok, err := r.leadingBlockComment(file)
		if err != nil {
			return nil, domain.NewExtractionError(file, err)
		}
		if ok {
			// The last qualifying candidate wins: an implementation
			// overview replaces one found in the interface file.
			overview = text
		}
	}

	return &domain.ResolvedDocument{
		Record:               record,
		Overview:             overview,
		PublicInterfaceFiles: interfaces,
	}, nil
}

// leadingBlockComment reads and tokenizes file, returning the stripped body
// of its leading block comment. ok is false when the first non-whitespace
// token is anything else (a // comment, a preprocessor line, code).
func (r *Resolver) leadingBlockComment(file string) (string, bool, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return "", false, err
	}

	iterator, err := r.lexer.Tokenise(nil, string(data))
	if err != nil {
		return "", false, err
	}

	var first chroma.Token
	found := false
	for token := iterator(); token != chroma.EOF; token = iterator() {
		if isWhitespace(token) {
			continue
		}
		first = token
		found = true
		break
	}

	if !found {
		return "", false, nil
	}

	r.logger.Debug().
		Str("file", file).
		Str("token", first.Type.String()).
		Msg("First token")

	if first.Type != chroma.CommentMultiline {
		return "", false, nil
	}

	return stripCommentBody(first.Value), true, nil
}

// isWhitespace reports whether a token carries no lexical content. The C
// lexer emits TextWhitespace for runs of whitespace; blank Text tokens are
// treated the same way.
func isWhitespace(token chroma.Token) bool {
	if token.Type == chroma.TextWhitespace {
		return true
	}
	return token.Type == chroma.Text && strings.TrimSpace(token.Value) == ""
}

// stripCommentBody removes the comment delimiters: the first and last
// physical lines go entirely, and every remaining line loses a single
// leading * marker plus at most one following space. Lines without the
// marker are kept verbatim.
func stripCommentBody(comment string) string {
	lines := strings.Split(strings.TrimSpace(comment), "\n")
	if len(lines) <= 2 {
		return ""
	}
	lines = lines[1 : len(lines)-1]

	parts := make([]string, len(lines))
	for i, line := range lines {
		parts[i] = commentLineMarker.ReplaceAllString(line, "")
	}

	return strings.Join(parts, "\n")
}
