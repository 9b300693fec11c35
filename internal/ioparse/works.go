package ioparse

import (
	"context"

	"github.com/83years/oadb/internal/iosink"
	"github.com/83years/oadb/pkg/oaid"
)

// worksParser is the heaviest parser: one main table and a dozen
// relationship tables per record. Authorships fan out into four tables
// of their own, including the author_names extraction that later
// stages aggregate author profiles from.
type worksParser struct {
	*base
}

var workTables = []string{
	"works",
	"authorship",
	"authorship_institutions",
	"authorship_countries",
	"author_names",
	"work_topics",
	"work_concepts",
	"work_sources",
	"work_locations",
	"work_keywords",
	"work_funders",
	"citations_by_year",
	"referenced_works",
	"related_works",
}

func newWorks(d Deps) Parser {
	return &worksParser{base: newBase("works", workTables, d)}
}

func (p *worksParser) ParseFile(
	ctx context.Context, path string,
) (FileStats, error) {
	return p.runFile(ctx, path, p.extract)
}

func (p *worksParser) extract(line []byte) error {
	var rec workRecord
	if err := json.Unmarshal(line, &rec); err != nil {
		p.skip(iosink.ReasonJSONParse, line)
		return nil
	}

	id := oaid.Normalize(rec.ID)
	if id == "" {
		p.skip(iosink.ReasonMissingKey, line)
		return nil
	}

	p.add("works", []any{
		id,
		nullStr(rec.DOI),
		nullStr(rec.Title),
		nullInt(rec.PublicationYear),
		nullStr(rec.PublicationDate),
		nullStr(rec.Type),
		nullStr(rec.Language),
		rec.IsRetracted,
		rec.IsParatext,
		nullInt(rec.CitedByCount),
		nullStr(rec.UpdatedDate),
	})

	p.extractAuthorships(id, rec.Authorships)
	p.extractLocations(id, rec.PrimaryLocation, rec.Locations)

	for _, t := range rec.Topics {
		tid := oaid.Normalize(t.ID)
		if tid == "" {
			continue
		}
		p.add("work_topics", []any{id, tid, nullFloat(t.Score)})
	}

	for _, c := range rec.Concepts {
		cid := oaid.Normalize(c.ID)
		if cid == "" {
			continue
		}
		p.add("work_concepts", []any{id, cid, nullFloat(c.Score)})
	}

	for _, k := range rec.Keywords {
		kid := oaid.Normalize(k.ID)
		if kid == "" {
			continue
		}
		p.add("work_keywords", []any{
			id, kid, nullStr(k.DisplayName), nullFloat(k.Score),
		})
	}

	for _, g := range rec.Grants {
		fid := oaid.Normalize(g.Funder)
		if fid == "" {
			continue
		}
		p.add("work_funders", []any{id, fid, nullStr(g.AwardID)})
	}

	for _, yc := range rec.CountsByYear {
		p.add("citations_by_year", []any{id, yc.Year, nullInt(yc.CitedByCount)})
	}

	for _, ref := range rec.ReferencedWorks {
		rid := oaid.Normalize(ref)
		if rid == "" {
			continue
		}
		p.add("referenced_works", []any{id, rid})
	}

	for _, rel := range rec.RelatedWorks {
		rid := oaid.Normalize(rel)
		if rid == "" {
			continue
		}
		p.add("related_works", []any{id, rid})
	}

	p.done()
	return nil
}

// extractAuthorships fans one byline out into authorship,
// authorship_institutions, authorship_countries and author_names.
// The country code on authorship_institutions is a denormalised copy
// of the nested institution's country; authorship_countries stays the
// canonical per-author list.
func (p *worksParser) extractAuthorships(workID string, aa []authorshipRecord) {
	for _, a := range aa {
		var authorID any
		var displayName string
		if a.Author != nil {
			authorID = nullID(a.Author.ID)
			displayName = a.Author.DisplayName
		}

		p.add("authorship", []any{
			workID,
			authorID,
			nullStr(a.AuthorPosition),
			a.IsCorresponding,
			nullStr(a.RawAuthorName),
		})

		for _, inst := range a.Institutions {
			iid := oaid.Normalize(inst.ID)
			if iid == "" {
				continue
			}
			p.add("authorship_institutions", []any{
				workID, authorID, iid, nullStr(inst.CountryCode),
			})
		}

		for _, cc := range a.Countries {
			if cc == "" {
				continue
			}
			p.add("authorship_countries", []any{workID, authorID, cc})
		}

		if a.Author != nil {
			// name splitting happens at extraction time; a name that
			// does not split leaves forename and surname NULL
			forename, surname, ok := oaid.ParsePersonName(displayName)
			var fn, sn any
			if ok {
				fn, sn = forename, surname
			}
			p.add("author_names", []any{
				workID, authorID, nullStr(displayName), fn, sn,
			})
		}
	}
}

// extractLocations emits one work_locations row per hosting location
// and one work_sources row per distinct hosting source. A work whose
// only location is the primary one still gets both.
func (p *worksParser) extractLocations(
	workID string,
	primary *locationRecord,
	locations []locationRecord,
) {
	var primarySource, primaryPage string
	if primary != nil {
		if primary.Source != nil {
			primarySource = oaid.Normalize(primary.Source.ID)
		}
		primaryPage = primary.LandingPageURL
	}

	if len(locations) == 0 && primary != nil {
		locations = []locationRecord{*primary}
	}

	seen := make(map[string]bool)
	for _, loc := range locations {
		var sourceID any
		var sid string
		if loc.Source != nil {
			sid = oaid.Normalize(loc.Source.ID)
			sourceID = nullStr(sid)
		}

		isPrimary := primary != nil &&
			sid == primarySource &&
			loc.LandingPageURL == primaryPage

		p.add("work_locations", []any{
			workID,
			sourceID,
			nullStr(loc.Version),
			nullStr(loc.License),
			loc.IsOA,
			isPrimary,
			nullStr(loc.LandingPageURL),
			nullStr(loc.PDFURL),
		})

		if sid != "" && !seen[sid] {
			seen[sid] = true
			p.add("work_sources", []any{workID, sid})
		}
	}
}
