package ioorch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/83years/oadb/internal/iocopy"
	"github.com/83years/oadb/internal/iosink"
	"github.com/83years/oadb/internal/iostate"
	"github.com/83years/oadb/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOperator satisfies db.Operator without a database.
type fakeOperator struct {
	empty bool
}

func (f *fakeOperator) Connect(context.Context, *config.DatabaseConfig) error { return nil }
func (f *fakeOperator) Close() error                                          { return nil }
func (f *fakeOperator) Pool() *pgxpool.Pool                                   { return nil }
func (f *fakeOperator) TableExists(context.Context, string) (bool, error)     { return true, nil }
func (f *fakeOperator) HasTables(context.Context) (bool, error)               { return true, nil }
func (f *fakeOperator) DropAllTables(context.Context) error                   { return nil }
func (f *fakeOperator) IsEmpty(context.Context, []string) (bool, error) {
	return f.empty, nil
}

// memWriter is safe for the parallel reference phases.
type memWriter struct {
	mu     sync.Mutex
	tables map[string][][]any
	writes int
}

func newMemWriter() *memWriter {
	return &memWriter{tables: make(map[string][][]any)}
}

func (w *memWriter) Write(
	_ context.Context, table string, _ []string, rows [][]any,
) (int64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.writes++
	w.tables[table] = append(w.tables[table], rows...)
	return int64(len(rows)), nil
}

func (w *memWriter) rowCount(table string) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.tables[table])
}

func (w *memWriter) writeCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.writes
}

func writeGz(t *testing.T, path string, lines []string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	for _, l := range lines {
		_, err = gz.Write([]byte(l + "\n"))
		require.NoError(t, err)
	}
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())
}

// buildSnapshot lays out one part file per reference entity and the
// requested works files.
func buildSnapshot(t *testing.T, root string, worksFiles [][]string) {
	t.Helper()
	prefix := "https://openalex.org/"
	single := map[string]string{
		"topics":       `{"id": "` + prefix + `T1", "domain": {"id": "` + prefix + `domains/D1"}}`,
		"concepts":     `{"id": "` + prefix + `C1"}`,
		"publishers":   `{"id": "` + prefix + `P1"}`,
		"funders":      `{"id": "` + prefix + `F1"}`,
		"sources":      `{"id": "` + prefix + `S1"}`,
		"institutions": `{"id": "` + prefix + `I1"}`,
	}
	for entity, line := range single {
		writeGz(t,
			filepath.Join(root, entity, "updated_date=2025-01-01", "part_000.gz"),
			[]string{line})
	}
	for i, lines := range worksFiles {
		writeGz(t,
			filepath.Join(root, "works", "updated_date=2025-01-01",
				fmt.Sprintf("part_%03d.gz", i)),
			lines)
	}
}

func workLine(id string) string {
	return fmt.Sprintf(`{"id": "https://openalex.org/%s", "title": "t"}`, id)
}

func testOrchestrator(
	t *testing.T, root string, w *memWriter,
) (*orchestrator, *iostate.Store) {
	t.Helper()
	tmp := t.TempDir()

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptImportSnapshotDir(root),
		config.OptImportLogDir(filepath.Join(tmp, "logs")),
		config.OptImportStateFile(filepath.Join(tmp, "state.json")),
		config.OptImportParallelParsers(2),
	})

	store, err := iostate.Load(cfg.ResolvedStateFile())
	require.NoError(t, err)

	o := New(cfg, &fakeOperator{empty: true}, store).(*orchestrator)
	o.newWriter = func(iosink.Sink) iocopy.Writer { return w }
	return o, store
}

func TestRunFullLoad(t *testing.T) {
	root := t.TempDir()
	buildSnapshot(t, root, [][]string{
		{workLine("W1"), workLine("W2")},
		{workLine("W3")},
	})

	w := newMemWriter()
	o, store := testOrchestrator(t, root, w)

	summary, err := o.Run(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, 7, summary.Succeeded)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, int64(9), summary.Records)

	assert.Equal(t, 3, w.rowCount("works"))
	assert.Equal(t, 1, w.rowCount("topics"))
	assert.Equal(t, 1, w.rowCount("topic_hierarchy"))
	assert.Equal(t, 1, w.rowCount("institutions"))

	for _, entity := range []string{
		"topics", "concepts", "publishers", "funders",
		"sources", "institutions", "works",
	} {
		ps, ok := store.Get(entity)
		require.True(t, ok, entity)
		assert.Equal(t, iostate.StatusComplete, ps.Status, entity)
		assert.Equal(t,
			len(ps.FilesDiscovered), len(ps.FilesProcessed), entity)
		assert.Zero(t, ps.Errors, entity)
		assert.NotEmpty(t, ps.FinishedAt, entity)
	}

	ps, _ := store.Get("works")
	assert.Equal(t, int64(3), ps.Records)
	assert.Len(t, ps.FilesProcessed, 2)
}

func TestResumeAfterCompleteRunIsNoop(t *testing.T) {
	root := t.TempDir()
	buildSnapshot(t, root, [][]string{{workLine("W1")}})

	w := newMemWriter()
	o, store := testOrchestrator(t, root, w)

	_, err := o.Run(context.Background(), false)
	require.NoError(t, err)

	writesBefore := w.writeCount()
	stateBefore := store.All()

	summary, err := o.Run(context.Background(), true)
	require.NoError(t, err)

	// zero new writes, state unchanged
	assert.Equal(t, writesBefore, w.writeCount())
	assert.Equal(t, stateBefore, store.All())
	assert.Zero(t, summary.Failed)
}

func TestResumePicksUpRemainingWorksFiles(t *testing.T) {
	root := t.TempDir()
	buildSnapshot(t, root, [][]string{
		{workLine("W1")},
		{workLine("W2")},
		{workLine("W3")},
	})

	w := newMemWriter()
	o, store := testOrchestrator(t, root, w)

	// mark reference parsers complete and works interrupted after its
	// first file, as a killed run would have left them
	for _, entity := range []string{
		"topics", "concepts", "publishers", "funders",
		"sources", "institutions",
	} {
		files, err := filepath.Glob(
			filepath.Join(root, entity, "*", "part_*.gz"))
		require.NoError(t, err)
		require.NoError(t, store.Update(entity, func(ps *iostate.ParserState) {
			ps.Status = iostate.StatusComplete
			ps.FilesDiscovered = files
			ps.FilesProcessed = files
			ps.Records = 1
		}))
	}
	worksFiles, err := filepath.Glob(
		filepath.Join(root, "works", "*", "part_*.gz"))
	require.NoError(t, err)
	require.Len(t, worksFiles, 3)
	require.NoError(t, store.Update("works", func(ps *iostate.ParserState) {
		ps.Status = iostate.StatusRunning
		ps.FilesDiscovered = worksFiles
		ps.FilesProcessed = worksFiles[:1]
		ps.LastFile = worksFiles[0]
		ps.Records = 1
	}))

	summary, err := o.Run(context.Background(), true)
	require.NoError(t, err)
	assert.Zero(t, summary.Failed)

	// file 1 was cleanly completed before the kill: not reprocessed
	assert.Equal(t, 2, w.rowCount("works"))
	rows := w.tables["works"]
	assert.Equal(t, "W2", rows[0][0])
	assert.Equal(t, "W3", rows[1][0])

	ps, _ := store.Get("works")
	assert.Equal(t, iostate.StatusComplete, ps.Status)
	assert.Equal(t, int64(3), ps.Records)
	assert.Len(t, ps.FilesProcessed, 3)
}

func TestStartRefusesDirtyState(t *testing.T) {
	root := t.TempDir()
	buildSnapshot(t, root, [][]string{{workLine("W1")}})

	w := newMemWriter()
	o, store := testOrchestrator(t, root, w)
	require.NoError(t, store.Update("works", func(ps *iostate.ParserState) {}))

	_, err := o.Run(context.Background(), false)
	assert.Error(t, err)
}

func TestStartRefusesNonEmptyDatabase(t *testing.T) {
	root := t.TempDir()
	buildSnapshot(t, root, [][]string{{workLine("W1")}})

	w := newMemWriter()
	o, _ := testOrchestrator(t, root, w)
	o.op = &fakeOperator{empty: false}

	_, err := o.Run(context.Background(), false)
	assert.Error(t, err)
}

func TestParserFailureDoesNotStopOthers(t *testing.T) {
	root := t.TempDir()
	buildSnapshot(t, root, [][]string{{workLine("W1")}})
	// corrupt the funders part file so its parser fails
	funders := filepath.Join(
		root, "funders", "updated_date=2025-01-01", "part_000.gz")
	require.NoError(t, os.WriteFile(funders, []byte("not gzip"), 0644))

	w := newMemWriter()
	o, store := testOrchestrator(t, root, w)

	summary, err := o.Run(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, 6, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)

	ps, _ := store.Get("funders")
	assert.Equal(t, iostate.StatusFailed, ps.Status)

	// independent parsers and later phases still ran
	assert.Equal(t, 1, w.rowCount("topics"))
	assert.Equal(t, 1, w.rowCount("works"))
}

func TestCancelledRun(t *testing.T) {
	root := t.TempDir()
	buildSnapshot(t, root, [][]string{{workLine("W1")}})

	w := newMemWriter()
	o, _ := testOrchestrator(t, root, w)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := o.Run(ctx, false)
	assert.Error(t, err)
	assert.Zero(t, w.writeCount())
}

func TestStatusRendering(t *testing.T) {
	root := t.TempDir()
	buildSnapshot(t, root, [][]string{{workLine("W1")}})

	w := newMemWriter()
	o, store := testOrchestrator(t, root, w)

	out, err := o.Status()
	require.NoError(t, err)
	assert.Contains(t, out, "No ingestion state")

	_, err = o.Run(context.Background(), false)
	require.NoError(t, err)

	out, err = o.Status()
	require.NoError(t, err)
	assert.Contains(t, out, "works")
	assert.Contains(t, out, "complete")
	assert.Contains(t, out, "part_000.gz")

	require.NoError(t, o.Reset())
	assert.True(t, store.Empty())
}

func TestLimitForwarded(t *testing.T) {
	root := t.TempDir()
	buildSnapshot(t, root, [][]string{
		{workLine("W1"), workLine("W2"), workLine("W3")},
	})

	w := newMemWriter()
	o, _ := testOrchestrator(t, root, w)
	o.cfg.Update([]config.Option{config.OptImportLimit(2)})

	_, err := o.Run(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 2, w.rowCount("works"))
}
