package iosink

import (
	"fmt"

	"github.com/83years/oadb/pkg/errcode"
	"github.com/gnames/gn"
)

// OpenError creates an error for an error file that cannot be opened.
func OpenError(path string, err error) error {
	msg := "Cannot open error log <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.SinkOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot open error log %s: %w", path, err),
	}
}

// WriteError creates an error for an error file that cannot be
// written.
func WriteError(path string, err error) error {
	msg := "Cannot write error log <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.SinkWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write error log %s: %w", path, err),
	}
}
