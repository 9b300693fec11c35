package iocopy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/83years/oadb/internal/iosink"
	"github.com/83years/oadb/pkg/schema"
	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// maxRetries bounds the exponential backoff for transient database
// failures before the parser is failed.
const maxRetries = 5

// errKind classifies a write failure by the policy it triggers.
type errKind int

const (
	kindTransient errKind = iota // retry with backoff
	kindData                     // fall back to row-by-row insert
	kindFatal                    // abort the parser
)

// CopyWriter implements Writer on top of pgx CopyFrom. Values that
// exceed their declared column width are truncated before the write
// and reported to the sink; transient failures are retried; a batch
// rejected for data reasons is replayed row by row so the bad rows can
// be skipped while the rest land.
type CopyWriter struct {
	pool *pgxpool.Pool
	sink iosink.Sink
}

// NewWriter creates a CopyWriter. sink receives field-overflow and
// copy-reject reports; it may be shared with the owning parser.
func NewWriter(pool *pgxpool.Pool, sink iosink.Sink) *CopyWriter {
	return &CopyWriter{pool: pool, sink: sink}
}

// Write lands rows in table via COPY. It returns the number of rows
// written, which is less than len(rows) only when the row-by-row
// fallback skipped rejects.
func (w *CopyWriter) Write(
	ctx context.Context,
	table string,
	columns []string,
	rows [][]any,
) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	w.truncateWide(table, columns, rows)

	var written int64
	op := func() error {
		n, err := w.pool.CopyFrom(
			ctx,
			pgx.Identifier{table},
			columns,
			pgx.CopyFromRows(rows),
		)
		if err == nil {
			written = n
			return nil
		}

		switch classify(err) {
		case kindTransient:
			slog.Warn("Transient failure during COPY, will retry",
				"table", table, "rows", len(rows), "error", err)
			return err
		default:
			return backoff.Permanent(err)
		}
	}

	bo := backoff.WithContext(
		backoff.WithMaxRetries(newBackOff(), maxRetries), ctx)
	err := backoff.Retry(op, bo)
	if err == nil {
		return written, nil
	}

	if classify(err) == kindData {
		slog.Warn("COPY rejected for data reasons, replaying row by row",
			"table", table, "rows", len(rows), "error", err)
		return w.fallbackInsert(ctx, table, columns, rows)
	}

	return 0, WriteFailedError(table, len(rows), err)
}

// fallbackInsert replays a rejected batch one row at a time so a
// single bad row cannot sink its whole batch. Rejected rows go to the
// sink with the copy-reject tag and are skipped.
func (w *CopyWriter) fallbackInsert(
	ctx context.Context,
	table string,
	columns []string,
	rows [][]any,
) (int64, error) {
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		table,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	)

	var written int64
	for _, row := range rows {
		_, err := w.pool.Exec(ctx, query, row...)
		if err == nil {
			written++
			continue
		}

		if classify(err) == kindFatal || classify(err) == kindTransient {
			return written, FallbackFailedError(table, err)
		}

		w.sink.Report(iosink.ReasonCopyReject, "", 0,
			[]byte(fmt.Sprintf("%s: %v: %v", table, err, row)))
		slog.Warn("Row rejected during fallback insert",
			"table", table, "error", err)
	}

	slog.Info("Fallback insert finished",
		"table", table,
		"written", written,
		"rejected", int64(len(rows))-written)

	return written, nil
}

// truncateWide trims string values that exceed their declared column
// width. The record still loads; the trim is reported so the operator
// can widen the column and re-load if the loss matters.
func (w *CopyWriter) truncateWide(table string, columns []string, rows [][]any) {
	widths := schema.TableWidths(table)
	if len(widths) == 0 {
		return
	}

	for _, row := range rows {
		for i, col := range columns {
			width, ok := widths[col]
			if !ok || i >= len(row) {
				continue
			}
			s, ok := row[i].(string)
			if !ok || utf8.RuneCountInString(s) <= width {
				continue
			}

			row[i] = string([]rune(s)[:width])
			w.sink.Report(iosink.ReasonFieldOverflow, "", 0,
				[]byte(fmt.Sprintf("%s.%s: %s", table, col, s)))
			slog.Warn("Value exceeds declared column width, truncated",
				"table", table,
				"column", col,
				"declared", width,
				"got", utf8.RuneCountInString(s))
		}
	}
}

// classify maps a database error onto the retry policy.
func classify(err error) errKind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "40001", // serialization_failure
			pgErr.Code == "40P01",              // deadlock_detected
			pgErr.Code == "53300",              // too_many_connections
			pgErr.Code == "57P03",              // cannot_connect_now
			strings.HasPrefix(pgErr.Code, "08"): // connection exceptions
			return kindTransient
		case strings.HasPrefix(pgErr.Code, "22"), // data exceptions
			strings.HasPrefix(pgErr.Code, "23"): // integrity violations
			return kindData
		default:
			return kindFatal
		}
	}

	if pgconn.SafeToRetry(err) {
		return kindTransient
	}

	// Dropped connections surface as plain network errors.
	var netLike interface{ Timeout() bool }
	if errors.As(err, &netLike) {
		return kindTransient
	}

	return kindFatal
}

func newBackOff() *backoff.ExponentialBackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 30 * time.Second
	bo.MaxElapsedTime = 0 // bounded by retry count, not wall clock
	return bo
}
