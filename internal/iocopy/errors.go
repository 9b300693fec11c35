package iocopy

import (
	"fmt"

	"github.com/83years/oadb/pkg/errcode"
	"github.com/gnames/gn"
)

// WriteFailedError creates an error for a batch that could not be
// written after the retry budget was exhausted.
func WriteFailedError(table string, rows int, err error) error {
	msg := `Cannot write batch to table <em>%s</em> (%d rows)

<em>Possible causes:</em>
  - Database went away and did not come back within the retry budget
  - Target table is missing or has a different shape

<em>How to fix:</em>
  1. Check database health
  2. Verify the schema was created with 'oadb create'
  3. Re-run with 'oadb resume'; completed files are not repeated`

	vars := []any{table, rows}

	return &gn.Error{
		Code: errcode.CopyFailedError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("copy to %s failed: %w", table, err),
	}
}

// FallbackFailedError creates an error for a row-by-row replay that
// hit a non-data failure and had to stop.
func FallbackFailedError(table string, err error) error {
	msg := "Row-by-row insert into <em>%s</em> failed"
	vars := []any{table}

	return &gn.Error{
		Code: errcode.CopyFallbackError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("fallback insert into %s failed: %w", table, err),
	}
}
