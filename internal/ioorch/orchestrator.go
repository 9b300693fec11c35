// Package ioorch drives the entity parsers over the snapshot in
// dependency phases, owns the persistent progress state, and decides
// what a resume has left to do.
package ioorch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/83years/oadb/internal/iocopy"
	"github.com/83years/oadb/internal/iosink"
	"github.com/83years/oadb/internal/iostate"
	"github.com/83years/oadb/pkg/config"
	"github.com/83years/oadb/pkg/db"
	"github.com/83years/oadb/pkg/oadb"
	"github.com/83years/oadb/pkg/schema"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// phase groups parsers that may run together. Phases execute in
// order; parsers inside a parallel phase fan out onto independent
// database connections.
type phase struct {
	name     string
	entities []string
	parallel bool
}

type orchestrator struct {
	cfg   *config.Config
	op    db.Operator
	store *iostate.Store

	// newWriter builds the per-parser writer; replaced in tests.
	newWriter func(iosink.Sink) iocopy.Writer

	mu      sync.Mutex
	summary oadb.RunSummary
}

// New creates an Orchestrator over a connected database operator and a
// loaded state store.
func New(cfg *config.Config, op db.Operator, store *iostate.Store) oadb.Orchestrator {
	o := &orchestrator{cfg: cfg, op: op, store: store}
	o.newWriter = func(s iosink.Sink) iocopy.Writer {
		return iocopy.NewWriter(o.op.Pool(), s)
	}
	return o
}

// phases returns the dependency phases in execution order. The
// reference entities load first so that works and authors rows always
// point at identifiers the reference tables already carry; the mass
// phase runs sequentially to bound memory and database pressure.
func (o *orchestrator) phases() []phase {
	res := []phase{
		{
			name:     "R1",
			entities: []string{"topics", "concepts", "publishers", "funders"},
			parallel: true,
		},
		{
			name:     "R2",
			entities: []string{"sources", "institutions"},
			parallel: true,
		},
	}

	m := phase{name: "M"}
	if o.cfg.Import.WithAuthors {
		m.entities = append(m.entities, "authors")
	}
	m.entities = append(m.entities, "works")
	res = append(res, m)

	return res
}

// Run executes all phases. resume honours persisted state; a fresh
// run requires a clean state document and an empty target database.
// The returned error is fatal plumbing only (state persistence,
// pre-flight checks); per-parser failures are counted in the summary
// and do not stop independent parsers.
func (o *orchestrator) Run(
	ctx context.Context,
	resume bool,
) (oadb.RunSummary, error) {
	start := time.Now()
	runID := uuid.NewString()

	if err := o.preflight(ctx, resume); err != nil {
		return o.snapshotSummary(start), err
	}

	slog.Info("Starting snapshot ingestion",
		"run_id", runID,
		"resume", resume,
		"snapshot_dir", o.cfg.Import.SnapshotDir,
		"batch_size", o.cfg.Import.BatchSize,
		"parallel_parsers", o.cfg.Import.ParallelParsers,
		"with_authors", o.cfg.Import.WithAuthors,
		"use_unlogged_tables", o.cfg.Import.UseUnloggedTables,
		"limit", o.cfg.Import.Limit)
	gn.Info("Ingesting OpenAlex snapshot from <em>%s</em>",
		o.cfg.Import.SnapshotDir)

	for _, ph := range o.phases() {
		if ctx.Err() != nil {
			break
		}

		phaseStart := time.Now()
		slog.Info("Phase started",
			"phase", ph.name,
			"parsers", ph.entities,
			"parallel", ph.parallel)
		gn.Info("Phase <em>%s</em>: %v", ph.name, ph.entities)

		fanout := 1
		if ph.parallel {
			fanout = o.cfg.Import.ParallelParsers
		}

		var g errgroup.Group
		g.SetLimit(fanout)
		showBar := !ph.parallel || fanout == 1

		for _, entity := range ph.entities {
			g.Go(func() error {
				return o.runParser(ctx, entity, showBar)
			})
		}

		// runParser returns an error only when progress can no longer
		// be persisted; that aborts everything.
		if err := g.Wait(); err != nil {
			return o.snapshotSummary(start), err
		}

		slog.Info("Phase finished",
			"phase", ph.name,
			"duration", gnfmt.TimeString(time.Since(phaseStart).Seconds()))
		gn.Message("Phase <em>%s</em> finished in %s",
			ph.name, gnfmt.TimeString(time.Since(phaseStart).Seconds()))
	}

	summary := o.snapshotSummary(start)

	if ctx.Err() != nil {
		slog.Warn("Ingestion interrupted, state persisted",
			"run_id", runID,
			"succeeded", summary.Succeeded,
			"failed", summary.Failed)
		return summary, CancelledError(ctx.Err())
	}

	slog.Info("Ingestion finished",
		"run_id", runID,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"records", summary.Records,
		"errors", summary.Errors,
		"duration", gnfmt.TimeString(summary.Duration.Seconds()))
	gn.Info(`Ingestion finished
Parsers succeeded: %d, failed: %d
Records: %s, rejected: %s
Elapsed time: <em>%s</em>`,
		summary.Succeeded,
		summary.Failed,
		humanize.Comma(summary.Records),
		humanize.Comma(summary.Errors),
		gnfmt.TimeString(summary.Duration.Seconds()),
	)

	return summary, nil
}

// preflight validates state and database for the requested mode.
func (o *orchestrator) preflight(ctx context.Context, resume bool) error {
	if resume {
		return o.store.DemoteRunning()
	}

	if !o.store.Empty() {
		return StateDirtyError(o.store.Path())
	}

	empty, err := o.op.IsEmpty(ctx, schema.AllTables())
	if err != nil {
		return err
	}
	if !empty {
		return DatabaseNotEmptyError(o.cfg.Database.Database)
	}

	return nil
}

// Reset deletes the state document. The database is not touched.
func (o *orchestrator) Reset() error {
	return o.store.Reset()
}

func (o *orchestrator) snapshotSummary(start time.Time) oadb.RunSummary {
	o.mu.Lock()
	defer o.mu.Unlock()

	res := o.summary
	res.Duration = time.Since(start)
	return res
}

func (o *orchestrator) countSuccess(records, errs int64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.summary.Succeeded++
	o.summary.Records += records
	o.summary.Errors += errs
}

func (o *orchestrator) countFailure(records, errs int64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.summary.Failed++
	o.summary.Records += records
	o.summary.Errors += errs
}
