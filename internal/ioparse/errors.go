package ioparse

import (
	"fmt"

	"github.com/83years/oadb/pkg/errcode"
	"github.com/gnames/gn"
)

// UnknownEntityError creates an error for an entity type the engine
// has no parser for.
func UnknownEntityError(entity string) error {
	msg := `No parser for entity type <em>%s</em>

Known entity types: topics, concepts, publishers, funders, sources,
institutions, authors, works.`

	vars := []any{entity}

	return &gn.Error{
		Code: errcode.IngestParserError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown entity type %q", entity),
	}
}
