package ioparse

import (
	"context"

	"github.com/83years/oadb/internal/iosink"
	"github.com/83years/oadb/pkg/oaid"
)

// institutionsParser emits the institutions main table, the geography
// table and one hierarchy edge per lineage ancestor.
type institutionsParser struct {
	*base
}

func newInstitutions(d Deps) Parser {
	return &institutionsParser{
		base: newBase("institutions",
			[]string{"institutions", "institution_geo", "institution_hierarchy"},
			d),
	}
}

func (p *institutionsParser) ParseFile(
	ctx context.Context, path string,
) (FileStats, error) {
	return p.runFile(ctx, path, p.extract)
}

func (p *institutionsParser) extract(line []byte) error {
	var rec institutionRecord
	if err := json.Unmarshal(line, &rec); err != nil {
		p.skip(iosink.ReasonJSONParse, line)
		return nil
	}

	id := oaid.Normalize(rec.ID)
	if id == "" {
		p.skip(iosink.ReasonMissingKey, line)
		return nil
	}

	p.add("institutions", []any{
		id,
		nullStr(rec.DisplayName),
		nullStr(rec.ROR),
		nullStr(rec.CountryCode),
		nullStr(rec.Type),
		nullStr(rec.HomepageURL),
		nullInt(rec.WorksCount),
		nullInt(rec.CitedByCount),
		nullStr(rec.UpdatedDate),
	})

	if rec.Geo != nil {
		p.add("institution_geo", []any{
			id,
			nullStr(rec.Geo.City),
			nullStr(rec.Geo.Region),
			nullStr(rec.Geo.CountryCode),
			nullStr(rec.Geo.Country),
			nullFloat(rec.Geo.Latitude),
			nullFloat(rec.Geo.Longitude),
		})
	}

	// lineage contains the institution itself; only real ancestors
	// become edges
	for _, ancestor := range rec.Lineage {
		aid := oaid.Normalize(ancestor)
		if aid == "" || aid == id {
			continue
		}
		p.add("institution_hierarchy", []any{id, aid})
	}

	p.done()
	return nil
}
