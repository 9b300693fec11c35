package iofs

import (
	"fmt"

	"github.com/83years/oadb/pkg/errcode"
	"github.com/gnames/gn"
)

// CreateDirError creates an error for a directory that could not be
// prepared.
func CreateDirError(dir string, err error) error {
	msg := `Cannot create directory <em>%s</em>

<em>Possible causes:</em>
  - Permission denied
  - Parent path is not writable`

	vars := []any{dir}

	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot create dir %s: %w", dir, err),
	}
}

// ReadFileError creates an error for an unreadable file.
func ReadFileError(path string, err error) error {
	msg := "Cannot read file <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read file %s: %w", path, err),
	}
}

// WriteFileError creates an error for a file that could not be written.
func WriteFileError(path string, err error) error {
	msg := "Cannot write file <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.WriteFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write file %s: %w", path, err),
	}
}
