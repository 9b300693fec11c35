package iodb

import (
	"fmt"

	"github.com/83years/oadb/pkg/errcode"
	"github.com/gnames/gn"
)

// ConnectionError creates an error for a failed PostgreSQL connection.
func ConnectionError(
	host string,
	port int,
	database, user string,
	err error,
) error {
	msg := `Cannot connect to PostgreSQL

<em>Host:</em> %s:%d
<em>Database:</em> %s
<em>User:</em> %s

<em>Possible causes:</em>
  - PostgreSQL server is not running
  - Wrong host, port or credentials
  - Database does not exist

<em>How to fix:</em>
  1. Check the server is reachable: pg_isready -h %s -p %d
  2. Verify credentials in oadb.yaml or OADB_DATABASE_* variables
  3. Create the database if missing`

	vars := []any{host, port, database, user, host, port}

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot connect to postgres: %w", err),
	}
}

// NotConnectedError creates an error for when a database operation is
// attempted without a connection.
func NotConnectedError() error {
	msg := "Database operation attempted without connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// TableCheckError creates an error for a failed table check.
func TableCheckError(table string, err error) error {
	msg := "Cannot check table <em>%s</em>"
	vars := []any{table}

	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot check table %s: %w", table, err),
	}
}

// QueryTablesError creates an error for a failed table enumeration.
func QueryTablesError(err error) error {
	msg := "Cannot list tables of the public schema"

	return &gn.Error{
		Code: errcode.DBQueryTablesError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("cannot query tables: %w", err),
	}
}

// ScanTableError creates an error for a failed table-name scan.
func ScanTableError(err error) error {
	msg := "Cannot read table names"

	return &gn.Error{
		Code: errcode.DBScanTableError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("cannot scan table name: %w", err),
	}
}

// DropTableError creates an error for a failed DROP TABLE.
func DropTableError(table string, err error) error {
	msg := "Cannot drop table <em>%s</em>"
	vars := []any{table}

	return &gn.Error{
		Code: errcode.DBDropTableError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot drop table %s: %w", table, err),
	}
}
