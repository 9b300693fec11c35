package ioparse

import (
	"context"

	"github.com/83years/oadb/internal/iosink"
	"github.com/83years/oadb/pkg/oaid"
)

// authorsParser consumes the authors snapshot directly. It is
// optional: a works load already derives authors into author_names,
// this parser adds the richer per-author tables when enabled.
type authorsParser struct {
	*base
}

func newAuthors(d Deps) Parser {
	return &authorsParser{
		base: newBase("authors",
			[]string{
				"authors", "author_topics", "author_concepts",
				"author_institutions", "authors_works_by_year",
			},
			d),
	}
}

func (p *authorsParser) ParseFile(
	ctx context.Context, path string,
) (FileStats, error) {
	return p.runFile(ctx, path, p.extract)
}

func (p *authorsParser) extract(line []byte) error {
	var rec authorRecord
	if err := json.Unmarshal(line, &rec); err != nil {
		p.skip(iosink.ReasonJSONParse, line)
		return nil
	}

	id := oaid.Normalize(rec.ID)
	if id == "" {
		p.skip(iosink.ReasonMissingKey, line)
		return nil
	}

	p.add("authors", []any{
		id,
		nullStr(rec.DisplayName),
		nullStr(rec.ORCID),
		nullInt(rec.WorksCount),
		nullInt(rec.CitedByCount),
		nullStr(rec.UpdatedDate),
	})

	for _, t := range rec.Topics {
		tid := oaid.Normalize(t.ID)
		if tid == "" {
			continue
		}
		p.add("author_topics", []any{id, tid, nullInt(t.Count)})
	}

	for _, c := range rec.XConcepts {
		cid := oaid.Normalize(c.ID)
		if cid == "" {
			continue
		}
		p.add("author_concepts", []any{id, cid, nullFloat(c.Score)})
	}

	for _, a := range rec.Affiliations {
		if a.Institution == nil {
			continue
		}
		iid := oaid.Normalize(a.Institution.ID)
		if iid == "" {
			continue
		}
		p.add("author_institutions", []any{id, iid, joinYears(a.Years)})
	}

	for _, yc := range rec.CountsByYear {
		p.add("authors_works_by_year", []any{
			id, yc.Year, nullInt(yc.WorksCount), nullInt(yc.CitedByCount),
		})
	}

	p.done()
	return nil
}
