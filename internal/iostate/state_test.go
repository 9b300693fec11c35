package iostate

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	assert.True(t, s.Empty())
}

func TestUpdateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := Load(path)
	require.NoError(t, err)

	err = s.Update("topics", func(ps *ParserState) {
		ps.Status = StatusRunning
		ps.FilesDiscovered = []string{"a.gz", "b.gz"}
		ps.FilesProcessed = []string{"a.gz"}
		ps.LastFile = "a.gz"
		ps.Records = 3
	})
	require.NoError(t, err)

	// reload from disk
	s2, err := Load(path)
	require.NoError(t, err)
	ps, ok := s2.Get("topics")
	require.True(t, ok)
	assert.Equal(t, StatusRunning, ps.Status)
	assert.Equal(t, []string{"a.gz", "b.gz"}, ps.FilesDiscovered)
	assert.Equal(t, int64(3), ps.Records)
	assert.NotEmpty(t, ps.UpdatedAt)
	assert.Equal(t, []string{"b.gz"}, ps.Remaining())
}

func TestRemaining(t *testing.T) {
	ps := ParserState{
		FilesDiscovered: []string{"a", "b", "c"},
		FilesProcessed:  []string{"b"},
	}
	assert.Equal(t, []string{"a", "c"}, ps.Remaining())

	ps.FilesProcessed = []string{"a", "b", "c"}
	assert.Empty(t, ps.Remaining())
}

func TestDemoteRunning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := Load(path)
	require.NoError(t, err)

	require.NoError(t, s.Update("works", func(ps *ParserState) {
		ps.Status = StatusRunning
	}))
	require.NoError(t, s.Update("topics", func(ps *ParserState) {
		ps.Status = StatusComplete
	}))

	require.NoError(t, s.DemoteRunning())

	ps, _ := s.Get("works")
	assert.Equal(t, StatusPending, ps.Status)
	ps, _ = s.Get("topics")
	assert.Equal(t, StatusComplete, ps.Status)
}

func TestUnknownKeysIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	doc := `{"topics": {"status": "complete", "records": 5, "future_field": true}}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	ps, ok := s.Get("topics")
	require.True(t, ok)
	assert.Equal(t, StatusComplete, ps.Status)
	assert.Equal(t, int64(5), ps.Records)
}

func TestLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, s.Update("topics", func(ps *ParserState) {}))

	_, err = os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, s.Reset())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	assert.True(t, s.Empty())

	// resetting a missing file is fine
	assert.NoError(t, s.Reset())
}

func TestSaveIsValidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, s.Update("works", func(ps *ParserState) {
		ps.Status = StatusFailed
		ps.Errors = 2
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]ParserState
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, StatusFailed, doc["works"].Status)
}
