package record

import (
	"strings"
	"time"
)

// Snapshot is one fully-built, immutable view of the data file. It is
// never mutated after construction, so readers holding a superseded
// snapshot keep reading a consistent older view.
type Snapshot struct {
	records  []Record
	index    map[string]Record
	path     string
	loadedAt time.Time
}

func newSnapshot(records []Record, path string) *Snapshot {
	index := make(map[string]Record, len(records))
	for _, rec := range records {
		key := normalizeKey(rec.GUID())
		if key == "" {
			continue
		}
		// First occurrence in file order wins; later duplicates stay
		// in the record list but are not indexed.
		if _, seen := index[key]; !seen {
			index[key] = rec
		}
	}
	return &Snapshot{
		records:  records,
		index:    index,
		path:     path,
		loadedAt: time.Now().UTC(),
	}
}

// Records returns all records in file order. The returned slice is a
// copy and is never nil, so an empty dataset encodes as [].
func (s *Snapshot) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Lookup finds the record indexed under the normalized form of key.
func (s *Snapshot) Lookup(key string) (Record, bool) {
	rec, ok := s.index[normalizeKey(key)]
	return rec, ok
}

// Len reports the number of records in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.records)
}

// Path reports the resolved file path the snapshot was loaded from.
func (s *Snapshot) Path() string {
	return s.path
}

// LoadedAt reports when the snapshot was built.
func (s *Snapshot) LoadedAt() time.Time {
	return s.loadedAt
}

func normalizeKey(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
