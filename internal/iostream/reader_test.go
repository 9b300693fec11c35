package iostream

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGz(t *testing.T, path string, lines []string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	for _, l := range lines {
		_, err = gz.Write([]byte(l + "\n"))
		require.NoError(t, err)
	}
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())
}

func TestPartFiles(t *testing.T) {
	dir := t.TempDir()
	writeGz(t, filepath.Join(dir, "updated_date=2025-01-02", "part_000.gz"), nil)
	writeGz(t, filepath.Join(dir, "updated_date=2025-01-01", "part_001.gz"), nil)
	writeGz(t, filepath.Join(dir, "updated_date=2025-01-01", "part_000.gz"), nil)
	// non-matching files are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "manifest"), []byte("{}"), 0644))

	files, err := PartFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, filepath.Join(dir, "updated_date=2025-01-01", "part_000.gz"), files[0])
	assert.Equal(t, filepath.Join(dir, "updated_date=2025-01-01", "part_001.gz"), files[1])
	assert.Equal(t, filepath.Join(dir, "updated_date=2025-01-02", "part_000.gz"), files[2])
}

func TestPartFilesMissingDir(t *testing.T) {
	_, err := PartFiles(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "part_000.gz")
	writeGz(t, path, []string{`{"id":1}`, "", `{"id":2}`, `{"id":3}`})

	var got []string
	var nums []int
	res, err := ReadFile(path, 0, func(line []byte, num int) error {
		got = append(got, string(line))
		nums = append(nums, num)
		return nil
	})
	require.NoError(t, err)
	// empty line is skipped, numbering stays contiguous
	assert.Equal(t, 3, res.Records)
	assert.Equal(t, []string{`{"id":1}`, `{"id":2}`, `{"id":3}`}, got)
	assert.Equal(t, []int{1, 2, 3}, nums)
}

func TestReadFileLimit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "part_000.gz")
	writeGz(t, path, []string{`a`, `b`, `c`, `d`})

	var n int
	res, err := ReadFile(path, 2, func(line []byte, num int) error {
		n++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Records)
	assert.Equal(t, 2, n)
}

func TestReadFileEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "part_000.gz")
	writeGz(t, path, nil)

	res, err := ReadFile(path, 0, func(line []byte, num int) error {
		t.Fatal("no lines expected")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Records)
}

func TestReadFileBadGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "part_000.gz")
	require.NoError(t, os.WriteFile(path, []byte("not gzip at all"), 0644))

	_, err := ReadFile(path, 0, func(line []byte, num int) error { return nil })
	assert.Error(t, err)
}

func TestReadFileCallbackError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "part_000.gz")
	writeGz(t, path, []string{`a`, `b`})

	_, err := ReadFile(path, 0, func(line []byte, num int) error {
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
}
