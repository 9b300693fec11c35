package ioorch

import (
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
)

// progress tracks throughput of one running parser for the periodic
// progress log. Accessed only from the parser's goroutine.
type progress struct {
	entity      string
	start       time.Time
	baseline    int64 // records carried over from a previous run
	records     int64 // records of completed files this run
	filesTotal  int
	filesDone   int
	initialDone int // files already processed before this run
}

func newProgress(entity string, baseline int64, filesTotal, filesDone int) *progress {
	return &progress{
		entity:      entity,
		start:       time.Now(),
		baseline:    baseline,
		filesTotal:  filesTotal,
		filesDone:   filesDone,
		initialDone: filesDone,
	}
}

// tick logs throughput and an ETA estimate; called by the parser every
// progress_interval records of the current file.
func (p *progress) tick(fileRecords int64) {
	elapsed := time.Since(p.start).Seconds()
	runRecords := p.records + fileRecords

	var perSec int64
	if elapsed > 0 {
		perSec = int64(float64(runRecords) / elapsed)
	}

	slog.Info("Progress",
		"parser", p.entity,
		"records", humanize.Comma(p.baseline+runRecords),
		"records_per_sec", humanize.Comma(perSec),
		"files_done", p.filesDone,
		"files_total", p.filesTotal,
		"eta", p.eta())
}

// fileDone folds one completed file into the totals.
func (p *progress) fileDone(records int64) {
	p.records += records
	p.filesDone++
}

// eta extrapolates the remaining wall clock from the files completed
// during this run. Files processed by a previous run carry no timing
// information; before the first file of this run completes there is
// nothing to extrapolate from.
func (p *progress) eta() string {
	doneThisRun := p.filesDone - p.initialDone
	if doneThisRun == 0 {
		return "n/a"
	}

	perFile := time.Since(p.start) / time.Duration(doneThisRun)
	left := p.filesTotal - p.filesDone
	return (time.Duration(left) * perFile).Round(time.Second).String()
}
