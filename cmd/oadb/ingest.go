package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/83years/oadb/internal/iodb"
	"github.com/83years/oadb/internal/ioorch"
	"github.com/83years/oadb/internal/iostate"
	"github.com/83years/oadb/pkg/config"
	"github.com/83years/oadb/pkg/errcode"
	"github.com/gnames/gn"
)

// runIngest wires the pipeline and executes a load. Shared by start,
// resume and test.
func runIngest(resume bool, limit int) error {
	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if limit > 0 {
		cfg.Update([]config.Option{config.OptImportLimit(limit)})
	}

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return &exitError{code: exitInternal, err: err}
	}
	defer op.Close()

	store, err := iostate.Load(cfg.ResolvedStateFile())
	if err != nil {
		gn.PrintErrorMessage(err)
		return &exitError{code: exitInternal, err: err}
	}

	orch := ioorch.New(cfg, op, store)
	summary, runErr := orch.Run(ctx, resume)

	// one-line status per parser on exit, regardless of outcome
	if status, serr := orch.Status(); serr == nil {
		fmt.Print(status)
	}

	if runErr != nil {
		gn.PrintErrorMessage(runErr)

		var gerr *gn.Error
		if errors.As(runErr, &gerr) &&
			gerr.Code == errcode.IngestCancelledError {
			return &exitError{code: exitPartial, err: runErr}
		}
		return &exitError{code: exitInternal, err: runErr}
	}

	if summary.Failed > 0 {
		return &exitError{
			code: exitPartial,
			err: fmt.Errorf("%d parser(s) failed, see error logs in %s",
				summary.Failed, cfg.ResolvedLogDir()),
		}
	}

	return nil
}
