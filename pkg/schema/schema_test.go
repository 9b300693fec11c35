package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumns(t *testing.T) {
	assert.Equal(t,
		[]string{
			"id", "display_name", "description", "keywords",
			"works_count", "cited_by_count", "updated_date",
		},
		Columns(Topic{}),
	)

	assert.Equal(t,
		[]string{
			"work_id", "author_id", "author_position",
			"is_corresponding", "raw_author_name",
		},
		Columns(Authorship{}),
	)
}

func TestWidths(t *testing.T) {
	w := Widths(Topic{})
	assert.Equal(t, 32, w["id"])
	assert.Equal(t, 500, w["display_name"])
	// TEXT and BIGINT columns carry no width
	assert.NotContains(t, w, "description")
	assert.NotContains(t, w, "works_count")
}

func TestTableDDL(t *testing.T) {
	ddl := TableDDL(ReferencedWork{})
	assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS referenced_works")
	assert.Contains(t, ddl, "work_id VARCHAR(32) NOT NULL")
	assert.Contains(t, ddl, "referenced_work_id VARCHAR(32)")
	// constraint-free during load: no keys, no references
	assert.NotContains(t, ddl, "PRIMARY KEY")
	assert.NotContains(t, ddl, "REFERENCES")
}

func TestAllModelsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, m := range AllModels() {
		name := m.TableName()
		require.False(t, seen[name], "duplicate table %s", name)
		seen[name] = true
		require.NotEmpty(t, Columns(m), "model %s has no columns", name)
	}
	assert.Len(t, seen, 29)
}

func TestTableColumnsLookup(t *testing.T) {
	assert.Equal(t, Columns(Work{}), TableColumns("works"))
	assert.Panics(t, func() { TableColumns("nope") })
}

func TestNoConstraintsBeyondNotNull(t *testing.T) {
	for _, m := range AllModels() {
		ddl := TableDDL(m)
		assert.NotContains(t, ddl, "UNIQUE", m.TableName())
		assert.NotContains(t, ddl, "PRIMARY KEY", m.TableName())
		// only the leading identifier column is NOT NULL
		assert.Equal(t, 1, strings.Count(ddl, "NOT NULL"), m.TableName())
	}
}
