// Package iostate persists per-parser ingestion progress as a single
// JSON document. The document is rewritten atomically after every file
// completion, so a killed run resumes at the last file boundary.
package iostate

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"
)

// Status is the lifecycle state of one parser.
type Status string

const (
	StatusPending  Status = "pending"
	StatusRunning  Status = "running"
	StatusComplete Status = "complete"
	StatusFailed   Status = "failed"
)

// ParserState is the progress record of one parser. Unknown keys in a
// persisted record are dropped on read; additions to this shape are
// forward-compatible.
type ParserState struct {
	Status          Status   `json:"status"`
	FilesDiscovered []string `json:"files_discovered"`
	FilesProcessed  []string `json:"files_processed"`
	LastFile        string   `json:"last_file,omitempty"`
	Records         int64    `json:"records"`
	Errors          int64    `json:"errors"`
	StartedAt       string   `json:"started_at,omitempty"`
	UpdatedAt       string   `json:"updated_at,omitempty"`
	FinishedAt      string   `json:"finished_at,omitempty"`
}

// Remaining returns the discovered files not yet processed, in
// discovery order. Resume operates on this set; a file is either fully
// processed or not at all.
func (ps *ParserState) Remaining() []string {
	done := make(map[string]bool, len(ps.FilesProcessed))
	for _, f := range ps.FilesProcessed {
		done[f] = true
	}

	var res []string
	for _, f := range ps.FilesDiscovered {
		if !done[f] {
			res = append(res, f)
		}
	}
	return res
}

// Store serialises access to the state document. Parsers never touch
// it directly; the orchestrator is the single writer.
type Store struct {
	path string
	mu   sync.Mutex
	doc  map[string]*ParserState
}

// Load reads the state document, or starts an empty one when the file
// does not exist yet.
func Load(path string) (*Store, error) {
	s := &Store{
		path: path,
		doc:  make(map[string]*ParserState),
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, ReadError(path, err)
	}

	if err := json.Unmarshal(data, &s.doc); err != nil {
		return nil, CorruptError(path, err)
	}

	return s, nil
}

// Path returns the location of the state document.
func (s *Store) Path() string {
	return s.path
}

// Get returns a copy of one parser's state; ok is false when the
// parser is unknown.
func (s *Store) Get(parser string) (ParserState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ps, ok := s.doc[parser]
	if !ok {
		return ParserState{}, false
	}
	res := *ps
	res.FilesDiscovered = slices.Clone(ps.FilesDiscovered)
	res.FilesProcessed = slices.Clone(ps.FilesProcessed)
	return res, true
}

// All returns a copy of the whole document keyed by parser name.
func (s *Store) All() map[string]ParserState {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make(map[string]ParserState, len(s.doc))
	for name, ps := range s.doc {
		cp := *ps
		cp.FilesDiscovered = slices.Clone(ps.FilesDiscovered)
		cp.FilesProcessed = slices.Clone(ps.FilesProcessed)
		res[name] = cp
	}
	return res
}

// Update mutates one parser's record under the store lock and persists
// the document. The record is created when absent.
func (s *Store) Update(parser string, fn func(*ParserState)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ps, ok := s.doc[parser]
	if !ok {
		ps = &ParserState{Status: StatusPending}
		s.doc[parser] = ps
	}
	fn(ps)
	ps.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	return s.save()
}

// DemoteRunning resets parsers left in the running state by an
// abnormal termination back to pending. No mid-file resume is ever
// attempted; their remaining file set is intact.
func (s *Store) DemoteRunning() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	demoted := false
	for name, ps := range s.doc {
		if ps.Status == StatusRunning {
			slog.Warn("Parser was left running, demoting to pending",
				"parser", name,
				"files_processed", len(ps.FilesProcessed),
				"files_discovered", len(ps.FilesDiscovered))
			ps.Status = StatusPending
			demoted = true
		}
	}

	if !demoted {
		return nil
	}
	return s.save()
}

// Empty reports whether the document holds no parser records.
func (s *Store) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.doc) == 0
}

// Reset deletes the state file. The database is not touched.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc = make(map[string]*ParserState)
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return WriteError(s.path, err)
	}
	return nil
}

// save writes the document to a temp file and renames it over the
// target. Losing progress silently is worse than stopping the load, so
// a write failure is retried once and then escalated to the caller.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return WriteError(s.path, err)
	}

	if err := s.writeAtomic(data); err != nil {
		slog.Error("CRITICAL: cannot persist progress state, retrying",
			"path", s.path, "error", err)
		if err = s.writeAtomic(data); err != nil {
			slog.Error("CRITICAL: state write failed twice, aborting",
				"path", s.path, "error", err)
			return WriteError(s.path, err)
		}
	}
	return nil
}

func (s *Store) writeAtomic(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".state-*.json")
	if err != nil {
		return err
	}

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Sync()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}
