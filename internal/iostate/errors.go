package iostate

import (
	"fmt"

	"github.com/83years/oadb/pkg/errcode"
	"github.com/gnames/gn"
)

// ReadError creates an error for an unreadable state file.
func ReadError(path string, err error) error {
	msg := "Cannot read state file <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.StateReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read state %s: %w", path, err),
	}
}

// CorruptError creates an error for a state file that is not valid
// JSON of the expected shape.
func CorruptError(path string, err error) error {
	msg := `State file <em>%s</em> is corrupt

<em>How to fix:</em>
  1. Inspect the file; it should be a JSON object keyed by parser name
  2. Run 'oadb reset' to discard progress and start over`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.StateCorruptError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("corrupt state %s: %w", path, err),
	}
}

// WriteError creates an error for a state file that cannot be
// persisted. This aborts the run: losing progress silently would make
// resume unsafe.
func WriteError(path string, err error) error {
	msg := `Cannot persist state file <em>%s</em>

Progress can no longer be recorded safely, aborting the run.`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.StateWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write state %s: %w", path, err),
	}
}
