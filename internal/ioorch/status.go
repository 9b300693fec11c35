package ioorch

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/83years/oadb/internal/ioparse"
	"github.com/dustin/go-humanize"
)

// Status renders a human-readable table of per-parser state, in
// snapshot processing order.
func (o *orchestrator) Status() (string, error) {
	all := o.store.All()

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "PARSER\tSTATUS\tFILES\tRECORDS\tERRORS\tLAST FILE")

	shown := 0
	for _, entity := range ioparse.Entities {
		ps, ok := all[entity]
		if !ok {
			continue
		}
		shown++

		lastFile := "-"
		if ps.LastFile != "" {
			lastFile = filepath.Base(ps.LastFile)
		}

		fmt.Fprintf(w, "%s\t%s\t%d/%d\t%s\t%s\t%s\n",
			entity,
			ps.Status,
			len(ps.FilesProcessed),
			len(ps.FilesDiscovered),
			humanize.Comma(ps.Records),
			humanize.Comma(ps.Errors),
			lastFile,
		)
	}

	if shown == 0 {
		return "No ingestion state. Run 'oadb start' to begin a load.\n", nil
	}

	if err := w.Flush(); err != nil {
		return "", err
	}
	return b.String(), nil
}
