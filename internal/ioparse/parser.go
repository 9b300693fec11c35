// Package ioparse implements the entity parsers that turn snapshot
// records into table rows. Every parser satisfies the same small
// capability interface; the shared base owns the per-table buffers and
// the record loop, a concrete parser only knows its extraction shape.
package ioparse

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/83years/oadb/internal/iocopy"
	"github.com/83years/oadb/internal/iosink"
	"github.com/83years/oadb/internal/iostream"
	"github.com/83years/oadb/pkg/oaid"
	jsoniter "github.com/json-iterator/go"
)

// json tolerates missing fields and ignores unknown ones, so a parser
// decodes only its declared extraction shape however the snapshot
// evolves.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Entities lists every entity type in snapshot processing order.
var Entities = []string{
	"topics", "concepts", "publishers", "funders",
	"sources", "institutions", "authors", "works",
}

// FileStats reports one parsed file. Records plus Skipped equals the
// number of lines read from the file.
type FileStats struct {
	Records int64
	Skipped int64
	Elapsed time.Duration
}

// Parser consumes part files of one entity type and routes extracted
// rows into its target tables.
type Parser interface {
	// Entity returns the entity type the parser consumes.
	Entity() string

	// Tables returns the target tables in flush order, main table
	// first.
	Tables() []string

	// ParseFile streams one part file to the database. Bad records
	// are sunk and skipped; only file-level failures return an error.
	ParseFile(ctx context.Context, path string) (FileStats, error)
}

// Deps carries what every parser needs.
type Deps struct {
	Writer    iocopy.Writer
	Sink      iosink.Sink
	BatchSize int
	Limit     int

	// ProgressEvery triggers OnProgress every N processed records of a
	// file; zero disables the hook.
	ProgressEvery int
	OnProgress    func(fileRecords int64)
}

// New constructs the parser for one entity type.
func New(entity string, d Deps) (Parser, error) {
	switch entity {
	case "topics":
		return newTopics(d), nil
	case "concepts":
		return newConcepts(d), nil
	case "publishers":
		return newPublishers(d), nil
	case "funders":
		return newFunders(d), nil
	case "sources":
		return newSources(d), nil
	case "institutions":
		return newInstitutions(d), nil
	case "authors":
		return newAuthors(d), nil
	case "works":
		return newWorks(d), nil
	default:
		return nil, UnknownEntityError(entity)
	}
}

// base carries the machinery shared by all parsers: the buffer per
// target table, threshold flushing, sink reporting and per-file
// counters. It is not safe for concurrent use; a parser reads its
// stream sequentially.
type base struct {
	entity  string
	tables  []string
	buffers map[string]*iocopy.Buffer
	writer  iocopy.Writer
	sink    iosink.Sink
	batch   int
	limit   int

	progressEvery int
	onProgress    func(int64)

	stats   FileStats
	curFile string
	curLine int
}

func newBase(entity string, tables []string, d Deps) *base {
	buffers := make(map[string]*iocopy.Buffer, len(tables))
	for _, t := range tables {
		buffers[t] = iocopy.NewBuffer(t)
	}
	return &base{
		entity:        entity,
		tables:        tables,
		buffers:       buffers,
		writer:        d.Writer,
		sink:          d.Sink,
		batch:         d.BatchSize,
		limit:         d.Limit,
		progressEvery: d.ProgressEvery,
		onProgress:    d.OnProgress,
	}
}

func (b *base) Entity() string { return b.entity }

func (b *base) Tables() []string { return b.tables }

// add appends one row to a table buffer. The row must follow the
// schema column order of the table.
func (b *base) add(table string, row []any) {
	b.buffers[table].Add(row)
}

// skip sinks the current record and counts it as skipped. Per the
// no-partial-write contract callers must not have added rows for the
// record before calling skip.
func (b *base) skip(reason iosink.Reason, line []byte) {
	b.sink.Report(reason, b.curFile, b.curLine, line)
	b.stats.Skipped++
}

// done counts the current record as processed.
func (b *base) done() {
	b.stats.Records++
	if b.progressEvery > 0 && b.onProgress != nil &&
		b.stats.Records%int64(b.progressEvery) == 0 {
		b.onProgress(b.stats.Records)
	}
}

// flushFull flushes every buffer that crossed the batch threshold.
// Buffers flush independently; a hot table does not drag the others.
func (b *base) flushFull(ctx context.Context) error {
	for _, t := range b.tables {
		buf := b.buffers[t]
		if buf.Len() < b.batch {
			continue
		}
		if _, err := buf.Flush(ctx, b.writer); err != nil {
			return err
		}
	}
	return nil
}

// flushAll drains every buffer, main table first. Called at file end.
func (b *base) flushAll(ctx context.Context) error {
	for _, t := range b.tables {
		if _, err := b.buffers[t].Flush(ctx, b.writer); err != nil {
			return err
		}
	}
	return nil
}

// runFile drives one part file through an extract function. extract
// is called once per line and must route the record's rows into the
// buffers or skip it; only flush and stream failures abort the file.
// After a failed flush no mid-file recovery is attempted, the caller
// marks the parser failed and the file stays out of files_processed.
func (b *base) runFile(
	ctx context.Context,
	path string,
	extract func(line []byte) error,
) (FileStats, error) {
	b.stats = FileStats{}
	b.curFile = path

	res, err := iostream.ReadFile(path, b.limit, func(line []byte, num int) error {
		b.curLine = num
		if err := extract(line); err != nil {
			return err
		}
		return b.flushFull(ctx)
	})
	if err != nil {
		return b.stats, err
	}

	if err := b.flushAll(ctx); err != nil {
		return b.stats, err
	}

	b.stats.Elapsed = res.Elapsed
	return b.stats, nil
}

// Row-composition helpers. The engine writes NULL for absent scalars;
// nil inside a row is the NULL sentinel.

func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// nullID normalizes an identifier and converts the empty value to
// NULL.
func nullID(s string) any {
	return nullStr(oaid.Normalize(s))
}

func nullInt(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullFloat(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

// joinPipe renders a small string array into one pipe-delimited
// column.
func joinPipe(ss []string) any {
	if len(ss) == 0 {
		return nil
	}
	return strings.Join(ss, "|")
}

// joinYears renders affiliation years into one pipe-delimited column.
func joinYears(years []int64) any {
	if len(years) == 0 {
		return nil
	}
	ss := make([]string, len(years))
	for i, y := range years {
		ss[i] = strconv.FormatInt(y, 10)
	}
	return strings.Join(ss, "|")
}
