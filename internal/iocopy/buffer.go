// Package iocopy moves extracted rows into PostgreSQL. Parsers
// accumulate rows per target table in Buffers; a Buffer flushes in a
// single COPY through the Writer.
package iocopy

import (
	"context"

	"github.com/83years/oadb/pkg/schema"
)

// Writer lands one batch of rows in one table. Rows within a call are
// written in order; ordering across calls is undefined. Implementations
// retry transient failures internally.
type Writer interface {
	Write(ctx context.Context, table string, columns []string, rows [][]any) (int64, error)
}

// Buffer is a typed, ordered accumulator for rows destined for one
// table. Column order comes from the schema model and is the order
// rows must be composed in. A Buffer belongs to exactly one parser and
// is not safe for concurrent use.
type Buffer struct {
	table   string
	columns []string
	rows    [][]any
}

// NewBuffer creates a buffer for one target table.
func NewBuffer(table string) *Buffer {
	return &Buffer{
		table:   table,
		columns: schema.TableColumns(table),
	}
}

// Table returns the target table name.
func (b *Buffer) Table() string { return b.table }

// Columns returns the column order rows are composed in.
func (b *Buffer) Columns() []string { return b.columns }

// Add appends one row. The row must match the column order; nil
// elements become NULL.
func (b *Buffer) Add(row []any) {
	b.rows = append(b.rows, row)
}

// Len returns the number of buffered rows.
func (b *Buffer) Len() int { return len(b.rows) }

// Flush writes all buffered rows through w and resets the buffer.
// An empty buffer is a no-op. The buffer is reset even on error: the
// write either landed or the file is aborted, re-sending the same rows
// is never correct.
func (b *Buffer) Flush(ctx context.Context, w Writer) (int64, error) {
	if len(b.rows) == 0 {
		return 0, nil
	}

	rows := b.rows
	b.rows = nil

	return w.Write(ctx, b.table, b.columns, rows)
}
