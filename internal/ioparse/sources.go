package ioparse

import (
	"context"
	"strings"

	"github.com/83years/oadb/internal/iosink"
	"github.com/83years/oadb/pkg/oaid"
)

// sourcesParser emits the sources main table plus source_publishers
// for sources hosted by a publisher. A host organization can also be
// an institution (I-prefixed); those do not produce a publisher link.
type sourcesParser struct {
	*base
}

func newSources(d Deps) Parser {
	return &sourcesParser{
		base: newBase("sources", []string{"sources", "source_publishers"}, d),
	}
}

func (p *sourcesParser) ParseFile(
	ctx context.Context, path string,
) (FileStats, error) {
	return p.runFile(ctx, path, p.extract)
}

func (p *sourcesParser) extract(line []byte) error {
	var rec sourceRecord
	if err := json.Unmarshal(line, &rec); err != nil {
		p.skip(iosink.ReasonJSONParse, line)
		return nil
	}

	id := oaid.Normalize(rec.ID)
	if id == "" {
		p.skip(iosink.ReasonMissingKey, line)
		return nil
	}

	p.add("sources", []any{
		id,
		nullStr(rec.DisplayName),
		nullStr(rec.ISSNL),
		joinPipe(rec.ISSNs),
		nullStr(rec.Type),
		rec.IsOA,
		rec.IsInDOAJ,
		nullStr(rec.HomepageURL),
		nullInt(rec.WorksCount),
		nullInt(rec.CitedByCount),
		nullStr(rec.UpdatedDate),
	})

	if host := oaid.Normalize(rec.HostOrganization); strings.HasPrefix(host, "P") {
		p.add("source_publishers", []any{
			id,
			host,
			nullStr(rec.HostOrganizationName),
		})
	}

	p.done()
	return nil
}
