package ioorch

import (
	"fmt"

	"github.com/83years/oadb/pkg/errcode"
	"github.com/gnames/gn"
)

// StateDirtyError creates an error for a fresh start over an existing
// state document.
func StateDirtyError(path string) error {
	msg := `State file <em>%s</em> already holds progress

<em>How to fix:</em>
  1. Continue the previous load with 'oadb resume'
  2. Or discard it with 'oadb reset' and start over`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.IngestStateDirtyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("state file %s is not empty", path),
	}
}

// DatabaseNotEmptyError creates an error for a fresh start into a
// database that already holds rows.
func DatabaseNotEmptyError(database string) error {
	msg := `Database <em>%s</em> is not empty

A fresh load requires empty target tables; the load-time schema has no
uniqueness constraints, so loading twice duplicates every row.

<em>How to fix:</em>
  1. Point oadb at a fresh database, or
  2. Recreate the schema with 'oadb create --drop', or
  3. Continue an interrupted load with 'oadb resume'`

	vars := []any{database}

	return &gn.Error{
		Code: errcode.DBEmptyDatabaseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("database %s is not empty", database),
	}
}

// NoInputDirError creates an error for an entity without a usable
// input directory.
func NoInputDirError(entity string) error {
	msg := `No input directory for entity <em>%s</em>

Set <em>import.snapshot_dir</em> or an explicit
<em>import.entities.%s.directory</em> in oadb.yaml.`

	vars := []any{entity, entity}

	return &gn.Error{
		Code: errcode.IngestDirError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("no input directory for entity %s", entity),
	}
}

// CancelledError creates an error for a run interrupted by a shutdown
// signal. In-flight files finished; state reflects the stop point.
func CancelledError(err error) error {
	msg := `Ingestion interrupted

Progress up to the last completed file is persisted.
Continue with 'oadb resume'.`

	return &gn.Error{
		Code: errcode.IngestCancelledError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("ingestion cancelled: %w", err),
	}
}
