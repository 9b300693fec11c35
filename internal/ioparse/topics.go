package ioparse

import (
	"context"

	"github.com/83years/oadb/internal/iosink"
	"github.com/83years/oadb/pkg/oaid"
)

// topicsParser emits the topics main table and the topic_hierarchy
// table linking each topic to its subfield, field and domain.
type topicsParser struct {
	*base
}

func newTopics(d Deps) Parser {
	return &topicsParser{
		base: newBase("topics", []string{"topics", "topic_hierarchy"}, d),
	}
}

func (p *topicsParser) ParseFile(
	ctx context.Context, path string,
) (FileStats, error) {
	return p.runFile(ctx, path, p.extract)
}

func (p *topicsParser) extract(line []byte) error {
	var rec topicRecord
	if err := json.Unmarshal(line, &rec); err != nil {
		p.skip(iosink.ReasonJSONParse, line)
		return nil
	}

	id := oaid.Normalize(rec.ID)
	if id == "" {
		p.skip(iosink.ReasonMissingKey, line)
		return nil
	}

	p.add("topics", []any{
		id,
		nullStr(rec.DisplayName),
		nullStr(rec.Description),
		joinPipe(rec.Keywords),
		nullInt(rec.WorksCount),
		nullInt(rec.CitedByCount),
		nullStr(rec.UpdatedDate),
	})

	if rec.Subfield != nil || rec.Field != nil || rec.Domain != nil {
		row := []any{id, nil, nil, nil, nil, nil, nil}
		if rec.Subfield != nil {
			row[1] = nullID(rec.Subfield.ID)
			row[2] = nullStr(rec.Subfield.DisplayName)
		}
		if rec.Field != nil {
			row[3] = nullID(rec.Field.ID)
			row[4] = nullStr(rec.Field.DisplayName)
		}
		if rec.Domain != nil {
			row[5] = nullID(rec.Domain.ID)
			row[6] = nullStr(rec.Domain.DisplayName)
		}
		p.add("topic_hierarchy", row)
	}

	p.done()
	return nil
}
