package schema

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// Model is satisfied by every row model in this package.
type Model interface {
	TableName() string
}

// AllModels returns every target-table model, main tables first.
// The slice order is also the creation order of the schema.
func AllModels() []Model {
	return []Model{
		Topic{}, TopicHierarchy{},
		Concept{},
		Publisher{},
		Funder{},
		Source{}, SourcePublisher{},
		Institution{}, InstitutionGeo{}, InstitutionHierarchy{},
		Author{}, AuthorTopic{}, AuthorConcept{}, AuthorInstitution{},
		AuthorWorksByYear{},
		Work{}, Authorship{}, AuthorshipInstitution{}, AuthorshipCountry{},
		AuthorName{}, WorkTopic{}, WorkConcept{}, WorkSource{},
		WorkLocation{}, WorkKeyword{}, WorkFunder{}, CitationByYear{},
		ReferencedWork{}, RelatedWork{},
	}
}

// AllTables returns the names of every target table in creation order.
func AllTables() []string {
	models := AllModels()
	res := make([]string, len(models))
	for i, m := range models {
		res[i] = m.TableName()
	}
	return res
}

// Columns returns the column names of a model in declaration order.
// This order is the column order of every COPY the engine issues.
func Columns(m Model) []string {
	t := reflect.TypeOf(m)
	var res []string
	for i := 0; i < t.NumField(); i++ {
		if tag := t.Field(i).Tag.Get("db"); tag != "" {
			res = append(res, tag)
		}
	}
	return res
}

var varcharRe = regexp.MustCompile(`^VARCHAR\((\d+)\)`)

// Widths returns the declared character widths of a model's VARCHAR
// columns. Columns of other types are absent from the map; values in
// them are written as-is.
func Widths(m Model) map[string]int {
	t := reflect.TypeOf(m)
	res := make(map[string]int)
	for i := 0; i < t.NumField(); i++ {
		col := t.Field(i).Tag.Get("db")
		ddl := t.Field(i).Tag.Get("ddl")
		if col == "" || ddl == "" {
			continue
		}
		if sub := varcharRe.FindStringSubmatch(ddl); sub != nil {
			n, _ := strconv.Atoi(sub[1])
			res[col] = n
		}
	}
	return res
}

// TableDDL returns the CREATE TABLE statement for a model, built from
// its db and ddl struct tags.
func TableDDL(m Model) string {
	t := reflect.TypeOf(m)
	var columns []string
	for i := 0; i < t.NumField(); i++ {
		col := t.Field(i).Tag.Get("db")
		ddl := t.Field(i).Tag.Get("ddl")
		if col != "" && ddl != "" {
			columns = append(columns, fmt.Sprintf("    %s %s", col, ddl))
		}
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n)",
		m.TableName(),
		strings.Join(columns, ",\n"))
}

// byTable is built once from AllModels for name lookups.
var byTable = func() map[string]Model {
	res := make(map[string]Model)
	for _, m := range AllModels() {
		res[m.TableName()] = m
	}
	return res
}()

// TableColumns returns the column order for a table name.
// It panics on an unknown table: table names are compile-time data and
// a miss is a programming error.
func TableColumns(table string) []string {
	m, ok := byTable[table]
	if !ok {
		panic("schema: unknown table " + table)
	}
	return Columns(m)
}

// TableWidths returns the declared VARCHAR widths for a table name.
func TableWidths(table string) map[string]int {
	m, ok := byTable[table]
	if !ok {
		panic("schema: unknown table " + table)
	}
	return Widths(m)
}
