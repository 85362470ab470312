package health

import "sync"

// RecordStore is the append-only, in-memory record table of a single session.
// It accepts any well-typed record; input ranges are checked before records get here.
type RecordStore struct {
	mu      sync.RWMutex
	records []HealthRecord
}

func NewRecordStore() *RecordStore {
	return &RecordStore{}
}

func (s *RecordStore) Append(record HealthRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
}

// All returns a snapshot of the records in insertion order, never nil.
func (s *RecordStore) All() []HealthRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]HealthRecord, len(s.records))
	copy(snapshot, s.records)
	return snapshot
}

func (s *RecordStore) IsEmpty() bool {
	return s.Len() == 0
}

func (s *RecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
