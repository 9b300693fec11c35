// Package iosink collects per-parser records that could not be
// ingested. One append-only text file per parser, one line per bad
// record. Errors here are non-fatal by design: the load continues and
// the operator reviews the files afterwards.
package iosink

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Reason tags the failure class of a rejected or mangled record.
type Reason string

const (
	ReasonJSONParse     Reason = "json-parse"
	ReasonMissingKey    Reason = "missing-key"
	ReasonFieldOverflow Reason = "field-overflow"
	ReasonCopyReject    Reason = "copy-reject"
)

const (
	// echoMax bounds the echo of the offending input per line.
	echoMax = 200

	// flushEvery bounds how long a reported error can sit in the
	// write buffer.
	flushEvery = 5 * time.Second
)

// Sink is the reporting surface handed to parsers and the copy
// writer.
type Sink interface {
	// Report records one bad record. file and line locate it in the
	// snapshot; line zero means the location is unknown (writer-side
	// rejects).
	Report(reason Reason, file string, line int, input []byte)

	// Count returns the number of reported records so far.
	Count() int64

	// Close flushes and closes the underlying file.
	Close() error
}

// fileSink writes one line per reported record to
// <dir>/<parser>.log.
type fileSink struct {
	mu        sync.Mutex
	f         *os.File
	w         *bufio.Writer
	count     atomic.Int64
	lastFlush time.Time
}

// New opens (or continues) the error file for one parser.
func New(dir, parser string) (Sink, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, OpenError(dir, err)
	}

	path := filepath.Join(dir, parser+".log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, OpenError(path, err)
	}

	return &fileSink{
		f:         f,
		w:         bufio.NewWriter(f),
		lastFlush: time.Now(),
	}, nil
}

func (s *fileSink) Report(reason Reason, file string, line int, input []byte) {
	echo := string(input)
	if len(echo) > echoMax {
		echo = echo[:echoMax]
	}
	// keep the file one-record-per-line
	echo = strings.ReplaceAll(echo, "\n", " ")
	echo = strings.ReplaceAll(echo, "\t", " ")

	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprintf(s.w, "%s\t%s\t%d\t%s\t%s\n",
		time.Now().UTC().Format(time.RFC3339),
		filepath.Base(file),
		line,
		reason,
		echo,
	)
	s.count.Add(1)

	if time.Since(s.lastFlush) > flushEvery {
		s.w.Flush()
		s.lastFlush = time.Now()
	}
}

func (s *fileSink) Count() int64 {
	return s.count.Load()
}

func (s *fileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.w.Flush(); err != nil {
		s.f.Close()
		return WriteError(s.f.Name(), err)
	}
	return s.f.Close()
}
