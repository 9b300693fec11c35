package ioparse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const workW1 = `{
	"id": "https://openalex.org/W1",
	"doi": "https://doi.org/10.1/x",
	"title": "A Work",
	"publication_year": 2020,
	"publication_date": "2020-05-01",
	"type": "article",
	"language": "en",
	"cited_by_count": 7,
	"authorships": [
		{
			"author_position": "first",
			"author": {"id": "https://openalex.org/A1", "display_name": "Ada Lovelace"},
			"is_corresponding": true,
			"raw_author_name": "A. Lovelace",
			"institutions": [
				{"id": "https://openalex.org/I1", "country_code": "US"},
				{"id": "https://openalex.org/I2", "country_code": "US"}
			],
			"countries": ["US"]
		},
		{
			"author_position": "middle",
			"author": {"id": "https://openalex.org/A2", "display_name": "Grace Hopper"},
			"institutions": [{"id": "https://openalex.org/I3", "country_code": "DE"}],
			"countries": ["DE"]
		},
		{
			"author_position": "last",
			"author": {"id": "https://openalex.org/A3", "display_name": "Aristotle"},
			"institutions": [],
			"countries": []
		}
	],
	"topics": [{"id": "https://openalex.org/T1", "score": 0.9}],
	"concepts": [{"id": "https://openalex.org/C1", "score": 0.5}],
	"primary_location": {
		"source": {"id": "https://openalex.org/S1"},
		"is_oa": true,
		"version": "publishedVersion",
		"license": "cc-by",
		"landing_page_url": "https://doi.org/10.1/x"
	},
	"locations": [
		{
			"source": {"id": "https://openalex.org/S1"},
			"is_oa": true,
			"version": "publishedVersion",
			"license": "cc-by",
			"landing_page_url": "https://doi.org/10.1/x"
		},
		{
			"source": {"id": "https://openalex.org/S2"},
			"is_oa": false,
			"landing_page_url": "https://repo.example/x",
			"pdf_url": "https://repo.example/x.pdf"
		}
	],
	"keywords": [{"id": "https://openalex.org/keywords/card-sorting", "display_name": "Card Sorting", "score": 0.4}],
	"grants": [{"funder": "https://openalex.org/F1", "award_id": "ABC-123"}],
	"counts_by_year": [{"year": 2021, "cited_by_count": 3}, {"year": 2022, "cited_by_count": 4}],
	"referenced_works": ["https://openalex.org/W2", "https://openalex.org/W3"],
	"related_works": ["https://openalex.org/W4"]
}`

func TestWorksMultiAuthorship(t *testing.T) {
	w := newMemWriter()
	s := &memSink{}
	p := newWorks(testDeps(w, s))

	path := writeGz(t, workW1)
	stats, err := p.ParseFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Records)

	require.Len(t, w.tables["works"], 1)
	main := w.tables["works"][0]
	assert.Equal(t, "W1", main[0])
	assert.Equal(t, "A Work", main[2])
	assert.Equal(t, int64(2020), main[3])

	// three authorships all carrying W1
	require.Len(t, w.tables["authorship"], 3)
	for _, row := range w.tables["authorship"] {
		assert.Equal(t, "W1", row[0])
	}
	first := w.tables["authorship"][0]
	assert.Equal(t, "A1", first[1])
	assert.Equal(t, "first", first[2])
	assert.Equal(t, true, first[3])
	assert.Equal(t, "A. Lovelace", first[4])

	// three institution rows: two for A1, one for A2, none for A3
	require.Len(t, w.tables["authorship_institutions"], 3)
	assert.Equal(t,
		[]any{"W1", "A1", "I1", "US"},
		w.tables["authorship_institutions"][0])
	assert.Equal(t,
		[]any{"W1", "A1", "I2", "US"},
		w.tables["authorship_institutions"][1])
	assert.Equal(t,
		[]any{"W1", "A2", "I3", "DE"},
		w.tables["authorship_institutions"][2])

	// two country rows: US for A1, DE for A2
	require.Len(t, w.tables["authorship_countries"], 2)
	assert.Equal(t, []any{"W1", "A1", "US"}, w.tables["authorship_countries"][0])
	assert.Equal(t, []any{"W1", "A2", "DE"}, w.tables["authorship_countries"][1])

	// three author_names rows; the single-token name fails the split
	require.Len(t, w.tables["author_names"], 3)
	ada := w.tables["author_names"][0]
	assert.Equal(t, []any{"W1", "A1", "Ada Lovelace", "Ada", "Lovelace"}, ada)
	ari := w.tables["author_names"][2]
	assert.Equal(t, "Aristotle", ari[2])
	assert.Nil(t, ari[3])
	assert.Nil(t, ari[4])
}

func TestWorksRelationshipTables(t *testing.T) {
	w := newMemWriter()
	s := &memSink{}
	p := newWorks(testDeps(w, s))

	path := writeGz(t, workW1)
	_, err := p.ParseFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, [][]any{{"W1", "T1", 0.9}}, w.tables["work_topics"])
	assert.Equal(t, [][]any{{"W1", "C1", 0.5}}, w.tables["work_concepts"])
	assert.Equal(t,
		[][]any{{"W1", "keywords/card-sorting", "Card Sorting", 0.4}},
		w.tables["work_keywords"])
	assert.Equal(t, [][]any{{"W1", "F1", "ABC-123"}}, w.tables["work_funders"])
	assert.Equal(t,
		[][]any{{"W1", int64(2021), int64(3)}, {"W1", int64(2022), int64(4)}},
		w.tables["citations_by_year"])
	assert.Equal(t,
		[][]any{{"W1", "W2"}, {"W1", "W3"}},
		w.tables["referenced_works"])
	assert.Equal(t, [][]any{{"W1", "W4"}}, w.tables["related_works"])

	// two locations, the first marked primary; sources deduplicated
	require.Len(t, w.tables["work_locations"], 2)
	loc := w.tables["work_locations"][0]
	assert.Equal(t, "S1", loc[1])
	assert.Equal(t, "publishedVersion", loc[2])
	assert.Equal(t, true, loc[4]) // is_oa
	assert.Equal(t, true, loc[5]) // is_primary
	assert.Equal(t, false, w.tables["work_locations"][1][5])
	assert.Equal(t, [][]any{{"W1", "S1"}, {"W1", "S2"}}, w.tables["work_sources"])
}

func TestWorksNoPrefixAnywhere(t *testing.T) {
	w := newMemWriter()
	s := &memSink{}
	p := newWorks(testDeps(w, s))

	path := writeGz(t, workW1)
	_, err := p.ParseFile(context.Background(), path)
	require.NoError(t, err)

	for table, rows := range w.tables {
		for _, row := range rows {
			for _, v := range row {
				if str, ok := v.(string); ok {
					assert.NotContains(t, str, "openalex.org/",
						"prefix leaked into %s", table)
				}
			}
		}
	}
}

func TestWorksNoPartialRecord(t *testing.T) {
	w := newMemWriter()
	s := &memSink{}
	p := newWorks(testDeps(w, s))

	// record without its primary key: nothing from it lands anywhere
	noID := `{"title": "orphan", "authorships": [{"author": {"id": "https://openalex.org/A1"}}]}`
	path := writeGz(t, noID, workW1)
	stats, err := p.ParseFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.Records)
	assert.Equal(t, int64(1), stats.Skipped)
	assert.Len(t, w.tables["works"], 1)
	assert.Len(t, w.tables["authorship"], 3)
	for _, rows := range w.tables {
		for _, row := range rows {
			assert.Equal(t, "W1", row[0])
		}
	}
}

func TestWorksPrimaryLocationOnly(t *testing.T) {
	w := newMemWriter()
	s := &memSink{}
	p := newWorks(testDeps(w, s))

	rec := `{
		"id": "https://openalex.org/W7",
		"primary_location": {
			"source": {"id": "https://openalex.org/S9"},
			"landing_page_url": "https://x"
		}
	}`
	path := writeGz(t, rec)
	_, err := p.ParseFile(context.Background(), path)
	require.NoError(t, err)

	require.Len(t, w.tables["work_locations"], 1)
	assert.Equal(t, true, w.tables["work_locations"][0][5])
	assert.Equal(t, [][]any{{"W7", "S9"}}, w.tables["work_sources"])
}
