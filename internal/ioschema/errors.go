package ioschema

import (
	"fmt"

	"github.com/83years/oadb/pkg/errcode"
	"github.com/gnames/gn"
)

// NotConnectedError creates an error for when schema management is
// attempted without a database connection.
func NotConnectedError() error {
	msg := "Schema operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// CreateTableError creates an error for a failed CREATE TABLE.
func CreateTableError(table string, err error) error {
	msg := `Cannot create table <em>%s</em>

<em>Possible causes:</em>
  - Insufficient privileges
  - A conflicting object with the same name exists`

	vars := []any{table}

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot create table %s: %w", table, err),
	}
}
