package ioorch

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/83years/oadb/internal/ioparse"
	"github.com/83years/oadb/internal/iosink"
	"github.com/83years/oadb/internal/iostate"
	"github.com/83years/oadb/internal/iostream"
	"github.com/cheggaaa/pb/v3"
)

// runParser drives one parser over its remaining files. A returned
// error means progress can no longer be persisted and the whole run
// must stop; every other failure marks this parser failed and lets
// independent parsers continue.
func (o *orchestrator) runParser(
	ctx context.Context,
	entity string,
	showBar bool,
) error {
	if ps, ok := o.store.Get(entity); ok && ps.Status == iostate.StatusComplete {
		slog.Info("Parser already complete, skipping",
			"parser", entity,
			"files_processed", len(ps.FilesProcessed),
			"records", ps.Records)
		return nil
	}

	dir := o.cfg.EntityDir(entity)
	if dir == "" {
		return o.fail(entity, NoInputDirError(entity))
	}

	files, err := iostream.PartFiles(dir)
	if err != nil {
		return o.fail(entity, err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	err = o.store.Update(entity, func(ps *iostate.ParserState) {
		ps.Status = iostate.StatusRunning
		ps.FilesDiscovered = files
		if ps.StartedAt == "" {
			ps.StartedAt = now
		}
	})
	if err != nil {
		return err
	}

	ps, _ := o.store.Get(entity)
	remaining := ps.Remaining()

	slog.Info("Parser started",
		"parser", entity,
		"dir", dir,
		"files_discovered", len(files),
		"files_remaining", len(remaining))

	if len(remaining) == 0 {
		return o.complete(entity)
	}

	sink, err := iosink.New(
		filepath.Join(o.cfg.ResolvedLogDir(), "errors"), entity)
	if err != nil {
		return o.fail(entity, err)
	}
	defer sink.Close()

	writer := o.newWriter(sink)
	prog := newProgress(entity, ps.Records, len(files), len(files)-len(remaining))

	parser, err := ioparse.New(entity, ioparse.Deps{
		Writer:        writer,
		Sink:          sink,
		BatchSize:     o.cfg.Import.BatchSize,
		Limit:         o.cfg.Import.Limit,
		ProgressEvery: o.cfg.Import.ProgressInterval,
		OnProgress:    prog.tick,
	})
	if err != nil {
		return o.fail(entity, err)
	}

	var bar *pb.ProgressBar
	if showBar {
		bar = pb.Full.Start(len(remaining))
		bar.Set("prefix", entity+" files: ")
		bar.Set(pb.CleanOnFinish, true)
	}

	for _, file := range remaining {
		// cancellation is honoured only at file boundaries; an
		// in-flight file always finishes or fails whole
		if ctx.Err() != nil {
			if bar != nil {
				bar.Finish()
			}
			slog.Warn("Shutdown requested, stopping at file boundary",
				"parser", entity, "next_file", filepath.Base(file))
			return o.store.Update(entity, func(ps *iostate.ParserState) {
				ps.Status = iostate.StatusPending
			})
		}

		errsBefore := sink.Count()
		stats, perr := parser.ParseFile(ctx, file)
		if perr != nil {
			if bar != nil {
				bar.Finish()
			}
			return o.fail(entity, perr)
		}

		errDelta := sink.Count() - errsBefore
		err = o.store.Update(entity, func(ps *iostate.ParserState) {
			ps.FilesProcessed = append(ps.FilesProcessed, file)
			ps.LastFile = file
			ps.Records += stats.Records
			ps.Errors += errDelta
		})
		if err != nil {
			if bar != nil {
				bar.Finish()
			}
			return err
		}

		prog.fileDone(stats.Records)
		slog.Info("File ingested",
			"parser", entity,
			"file", filepath.Base(file),
			"records", stats.Records,
			"skipped", stats.Skipped,
			"elapsed", stats.Elapsed.Round(time.Millisecond).String())

		if bar != nil {
			bar.Increment()
		}
	}

	if bar != nil {
		bar.Finish()
	}

	return o.complete(entity)
}

// complete marks a parser finished and folds its totals into the run
// summary.
func (o *orchestrator) complete(entity string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	err := o.store.Update(entity, func(ps *iostate.ParserState) {
		ps.Status = iostate.StatusComplete
		ps.FinishedAt = now
	})
	if err != nil {
		return err
	}

	ps, _ := o.store.Get(entity)
	o.countSuccess(ps.Records, ps.Errors)

	slog.Info("Parser complete",
		"parser", entity,
		"files_processed", len(ps.FilesProcessed),
		"records", ps.Records,
		"errors", ps.Errors)

	return nil
}

// fail marks a parser failed. State reflects the last successfully
// completed file; a later resume picks up from there.
func (o *orchestrator) fail(entity string, cause error) error {
	slog.Error("Parser failed",
		"parser", entity,
		"error", cause)

	now := time.Now().UTC().Format(time.RFC3339)
	err := o.store.Update(entity, func(ps *iostate.ParserState) {
		ps.Status = iostate.StatusFailed
		ps.FinishedAt = now
	})
	if err != nil {
		return err
	}

	ps, _ := o.store.Get(entity)
	o.countFailure(ps.Records, ps.Errors)

	return nil
}
