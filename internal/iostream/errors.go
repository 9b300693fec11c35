package iostream

import (
	"fmt"

	"github.com/83years/oadb/pkg/errcode"
	"github.com/gnames/gn"
)

// ListDirError creates an error for an input directory that cannot be
// enumerated.
func ListDirError(dir string, err error) error {
	msg := `Cannot enumerate snapshot files in <em>%s</em>

<em>Possible causes:</em>
  - Directory does not exist
  - Snapshot not downloaded for this entity
  - Permission denied`

	vars := []any{dir}

	return &gn.Error{
		Code: errcode.StreamOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot enumerate %s: %w", dir, err),
	}
}

// OpenFileError creates an error for a part file that cannot be opened.
func OpenFileError(path string, err error) error {
	msg := "Cannot open snapshot file <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.StreamOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot open %s: %w", path, err),
	}
}

// GzipError creates an error for a part file with a broken gzip
// stream.
func GzipError(path string, err error) error {
	msg := `Snapshot file <em>%s</em> is not a valid gzip stream

<em>How to fix:</em>
  1. Re-download the file from the snapshot
  2. Verify its checksum against the manifest`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.StreamGzipError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("bad gzip stream %s: %w", path, err),
	}
}

// ScanError creates an error for a read failure mid-file.
func ScanError(path string, line int, err error) error {
	msg := "Read failure in <em>%s</em> after line %d"
	vars := []any{path, line}

	return &gn.Error{
		Code: errcode.StreamScanError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("read failure in %s after line %d: %w", path, line, err),
	}
}
