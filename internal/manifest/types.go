package manifest

import (
	"fmt"

	shlex "github.com/anmitsu/go-shlex"

	"github.com/cdoctools/csphinx-go/internal/domain"
)

// Entry is the raw JSON shape of one manifest element.
type Entry struct {
	Command   string `json:"command"`
	File      string `json:"file"`
	Directory string `json:"directory"`
	Output    string `json:"output"`
}

// ToRecord converts a raw entry into a CompilationRecord, splitting the
// command string with POSIX shell word-splitting so quoted paths and
// options survive intact.
func (e Entry) ToRecord() (domain.CompilationRecord, error) {
	args, err := shlex.Split(e.Command, true)
	if err != nil {
		return domain.CompilationRecord{}, fmt.Errorf("splitting command for %s: %w", e.File, err)
	}

	return domain.CompilationRecord{
		Arguments: args,
		File:      e.File,
		Directory: e.Directory,
		Output:    e.Output,
	}, nil
}
