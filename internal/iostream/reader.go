// Package iostream streams JSON-lines records out of the gzip part
// files of an OpenAlex snapshot. Memory use is bounded by the longest
// single line, never by file size.
package iostream

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
)

const (
	// initial and maximum scanner buffer. Works records routinely run
	// to several MB of JSON; the cap accommodates the largest lines
	// observed in snapshots with headroom.
	scanBufInitial = 64 * 1024
	scanBufMax     = 256 * 1024 * 1024
)

// PartFiles enumerates the part_*.gz files under dir, descending into
// the updated_date=* subdirectories of the snapshot layout. The result
// is in lexicographic path order, which also is the processing and
// resume order.
func PartFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if strings.HasPrefix(name, "part_") && strings.HasSuffix(name, ".gz") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, ListDirError(dir, err)
	}

	sort.Strings(files)
	return files, nil
}

// FileResult reports one fully read part file.
type FileResult struct {
	Records int
	Elapsed time.Duration
}

// LineFunc consumes one raw JSON line. line is only valid for the
// duration of the call; num is 1-based within the file. A returned
// error aborts the file.
type LineFunc func(line []byte, num int) error

// ReadFile decompresses one part file and yields its lines in order.
// limit caps the records yielded from this file; zero means all.
// Decompression and read failures abort the file; deciding what a
// malformed line means is the caller's business.
func ReadFile(path string, limit int, fn LineFunc) (FileResult, error) {
	var res FileResult
	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		return res, OpenFileError(path, err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return res, GzipError(path, err)
	}
	defer gz.Close()

	sc := bufio.NewScanner(gz)
	sc.Buffer(make([]byte, scanBufInitial), scanBufMax)

	num := 0
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		num++

		if err := fn(line, num); err != nil {
			return res, err
		}

		res.Records++
		if limit > 0 && res.Records >= limit {
			break
		}
	}

	if err := sc.Err(); err != nil {
		return res, ScanError(path, num, err)
	}

	res.Elapsed = time.Since(start)
	return res, nil
}
