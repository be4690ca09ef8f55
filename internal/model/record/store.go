package record

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/automate6500/dataserve/internal/pathsafe"
)

// ErrNotFound reports a lookup for a GUID absent from the dataset.
var ErrNotFound = errors.New("record not found")

// DataError reports a failed attempt to load the data file.
type DataError struct {
	Path string
	Err  error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("data file %s: %v", e.Path, e.Err)
}

func (e *DataError) Unwrap() error {
	return e.Err
}

// Store exposes record retrieval for HTTP handlers.
type Store interface {
	List(ctx context.Context) ([]Record, error)
	GetByGUID(ctx context.Context, guid string) (Record, error)
}

// FileStore implements Store over a JSON array file. It keeps a single
// cached snapshot keyed by the resolved source path and reloads only
// when that path changes.
type FileStore struct {
	pathFn  func() string // current configured data file path
	baseDir string
	log     zerolog.Logger

	mu   sync.RWMutex
	snap *Snapshot
}

// NewFileStore returns a store reading the path reported by pathFn,
// constrained to baseDir. pathFn is consulted on every call so
// configuration changes between requests are observed.
func NewFileStore(pathFn func() string, baseDir string, log zerolog.Logger) *FileStore {
	return &FileStore{
		pathFn:  pathFn,
		baseDir: baseDir,
		log:     log,
	}
}

// List returns all records in file order, loading the data file first
// if no snapshot exists or the configured path has changed.
func (s *FileStore) List(ctx context.Context) ([]Record, error) {
	snap, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Records(), nil
}

// GetByGUID returns the first record in file order whose guid field
// matches the supplied key, or ErrNotFound.
func (s *FileStore) GetByGUID(ctx context.Context, guid string) (Record, error) {
	snap, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	rec, ok := snap.Lookup(guid)
	if !ok {
		return nil, ErrNotFound
	}
	return rec, nil
}

// Invalidate drops the cached snapshot so the next call reloads from
// disk even though the configured path has not changed.
func (s *FileStore) Invalidate() {
	s.mu.Lock()
	s.snap = nil
	s.mu.Unlock()
	s.log.Info().Msg("data cache cleared")
}

// current returns the cached snapshot when it matches the resolved
// configured path, otherwise loads and installs a new one. Loads are
// serialized behind the write lock with a double-check, so one path
// change costs one disk read regardless of concurrent callers. A
// failed load leaves the previous snapshot in place.
func (s *FileStore) current(_ context.Context) (*Snapshot, error) {
	resolved, err := pathsafe.Resolve(s.pathFn(), s.baseDir)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	snap := s.snap
	s.mu.RUnlock()
	if snap != nil && snap.Path() == resolved {
		return snap, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap != nil && s.snap.Path() == resolved {
		return s.snap, nil
	}

	snap, err = s.load(resolved)
	if err != nil {
		return nil, err
	}
	s.snap = snap
	return snap, nil
}

func (s *FileStore) load(path string) (*Snapshot, error) {
	s.log.Info().Str("path", path).Msg("loading data file")

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &DataError{Path: path, Err: err}
	}

	records, err := decodeRecords(raw)
	if err != nil {
		return nil, &DataError{Path: path, Err: err}
	}

	s.log.Info().Str("path", path).Int("items", len(records)).Msg("data file loaded")
	return newSnapshot(records, path), nil
}

// decodeRecords requires a top-level JSON array of objects. An empty
// array is valid and yields an empty, non-nil slice.
func decodeRecords(raw []byte) ([]Record, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, fmt.Errorf("top-level JSON value must be an array, got %v", tok)
	}

	records := make([]Record, 0)
	for dec.More() {
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("parse JSON: %w", err)
		}
		records = append(records, rec)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}
	return records, nil
}
