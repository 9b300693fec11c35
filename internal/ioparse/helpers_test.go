package ioparse

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/83years/oadb/internal/iosink"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
)

// memWriter collects rows per table, in write order.
type memWriter struct {
	tables map[string][][]any
	writes int
	err    error
}

func newMemWriter() *memWriter {
	return &memWriter{tables: make(map[string][][]any)}
}

func (w *memWriter) Write(
	_ context.Context, table string, _ []string, rows [][]any,
) (int64, error) {
	if w.err != nil {
		return 0, w.err
	}
	w.writes++
	w.tables[table] = append(w.tables[table], rows...)
	return int64(len(rows)), nil
}

// memSink records reports in memory.
type memSink struct {
	reasons []iosink.Reason
	lines   []int
}

func (s *memSink) Report(reason iosink.Reason, _ string, line int, _ []byte) {
	s.reasons = append(s.reasons, reason)
	s.lines = append(s.lines, line)
}

func (s *memSink) Count() int64 { return int64(len(s.reasons)) }
func (s *memSink) Close() error { return nil }

func testDeps(w *memWriter, s *memSink) Deps {
	return Deps{Writer: w, Sink: s, BatchSize: 50_000}
}

// writeGz creates one part file holding the given JSON records, one
// record per line. Newlines inside a record (pretty-printed fixtures)
// are removed so that each record occupies exactly one line.
func writeGz(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "part_000.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	for _, l := range lines {
		l = strings.ReplaceAll(l, "\n", "")
		_, err = gz.Write([]byte(l + "\n"))
		require.NoError(t, err)
	}
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())
	return path
}
