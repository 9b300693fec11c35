package ioparse

import (
	"context"

	"github.com/83years/oadb/internal/iosink"
	"github.com/83years/oadb/pkg/oaid"
)

// The flat reference parsers: concepts, publishers and funders each
// populate a single main table.

type conceptsParser struct {
	*base
}

func newConcepts(d Deps) Parser {
	return &conceptsParser{base: newBase("concepts", []string{"concepts"}, d)}
}

func (p *conceptsParser) ParseFile(
	ctx context.Context, path string,
) (FileStats, error) {
	return p.runFile(ctx, path, p.extract)
}

func (p *conceptsParser) extract(line []byte) error {
	var rec conceptRecord
	if err := json.Unmarshal(line, &rec); err != nil {
		p.skip(iosink.ReasonJSONParse, line)
		return nil
	}

	id := oaid.Normalize(rec.ID)
	if id == "" {
		p.skip(iosink.ReasonMissingKey, line)
		return nil
	}

	p.add("concepts", []any{
		id,
		nullStr(rec.DisplayName),
		nullInt(rec.Level),
		nullStr(rec.Description),
		nullInt(rec.WorksCount),
		nullInt(rec.CitedByCount),
		nullStr(rec.UpdatedDate),
	})

	p.done()
	return nil
}

type publishersParser struct {
	*base
}

func newPublishers(d Deps) Parser {
	return &publishersParser{base: newBase("publishers", []string{"publishers"}, d)}
}

func (p *publishersParser) ParseFile(
	ctx context.Context, path string,
) (FileStats, error) {
	return p.runFile(ctx, path, p.extract)
}

func (p *publishersParser) extract(line []byte) error {
	var rec publisherRecord
	if err := json.Unmarshal(line, &rec); err != nil {
		p.skip(iosink.ReasonJSONParse, line)
		return nil
	}

	id := oaid.Normalize(rec.ID)
	if id == "" {
		p.skip(iosink.ReasonMissingKey, line)
		return nil
	}

	p.add("publishers", []any{
		id,
		nullStr(rec.DisplayName),
		joinPipe(rec.AlternateTitles),
		joinPipe(rec.CountryCodes),
		nullInt(rec.HierarchyLevel),
		nullInt(rec.WorksCount),
		nullInt(rec.CitedByCount),
		nullStr(rec.UpdatedDate),
	})

	p.done()
	return nil
}

type fundersParser struct {
	*base
}

func newFunders(d Deps) Parser {
	return &fundersParser{base: newBase("funders", []string{"funders"}, d)}
}

func (p *fundersParser) ParseFile(
	ctx context.Context, path string,
) (FileStats, error) {
	return p.runFile(ctx, path, p.extract)
}

func (p *fundersParser) extract(line []byte) error {
	var rec funderRecord
	if err := json.Unmarshal(line, &rec); err != nil {
		p.skip(iosink.ReasonJSONParse, line)
		return nil
	}

	id := oaid.Normalize(rec.ID)
	if id == "" {
		p.skip(iosink.ReasonMissingKey, line)
		return nil
	}

	p.add("funders", []any{
		id,
		nullStr(rec.DisplayName),
		joinPipe(rec.AlternateTitles),
		nullStr(rec.CountryCode),
		nullStr(rec.Description),
		nullInt(rec.GrantsCount),
		nullInt(rec.WorksCount),
		nullInt(rec.CitedByCount),
		nullStr(rec.UpdatedDate),
	})

	p.done()
	return nil
}
