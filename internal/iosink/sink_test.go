package iosink

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSinkReport(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, "works")
	require.NoError(t, err)

	s.Report(ReasonJSONParse, "/data/works/part_000.gz", 42, []byte(`{"broken`))
	s.Report(ReasonMissingKey, "/data/works/part_000.gz", 77, []byte(`{"title":"x"}`))
	assert.Equal(t, int64(2), s.Count())
	require.NoError(t, s.Close())

	data, err := os.ReadFile(filepath.Join(dir, "works.log"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	fields := strings.Split(lines[0], "\t")
	require.Len(t, fields, 5)
	assert.Equal(t, "part_000.gz", fields[1])
	assert.Equal(t, "42", fields[2])
	assert.Equal(t, "json-parse", fields[3])
	assert.Equal(t, `{"broken`, fields[4])

	assert.Contains(t, lines[1], "missing-key")
}

func TestSinkEchoTruncated(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, "topics")
	require.NoError(t, err)

	long := strings.Repeat("x", 5000)
	s.Report(ReasonFieldOverflow, "part_001.gz", 1, []byte(long))
	require.NoError(t, s.Close())

	data, err := os.ReadFile(filepath.Join(dir, "topics.log"))
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))
	fields := strings.Split(line, "\t")
	require.Len(t, fields, 5)
	assert.Len(t, fields[4], echoMax)
}

func TestSinkFlattensControlChars(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, "topics")
	require.NoError(t, err)

	s.Report(ReasonCopyReject, "part_001.gz", 0, []byte("a\tb\nc"))
	require.NoError(t, s.Close())

	data, err := os.ReadFile(filepath.Join(dir, "topics.log"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)
	fields := strings.Split(lines[0], "\t")
	require.Len(t, fields, 5)
	assert.Equal(t, "a b c", fields[4])
}

func TestSinkAppends(t *testing.T) {
	dir := t.TempDir()

	s, err := New(dir, "funders")
	require.NoError(t, err)
	s.Report(ReasonJSONParse, "part_000.gz", 1, []byte("one"))
	require.NoError(t, s.Close())

	s, err = New(dir, "funders")
	require.NoError(t, err)
	s.Report(ReasonJSONParse, "part_001.gz", 1, []byte("two"))
	require.NoError(t, s.Close())

	data, err := os.ReadFile(filepath.Join(dir, "funders.log"))
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 2)
}
