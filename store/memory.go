package store

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-stats-api/report"
	"github.com/bitmark-inc/covid-stats-api/schema"
)

// memoryStore keeps the current snapshot in process memory. A snapshot is
// never modified once it is stored.
type memoryStore struct {
	sync.RWMutex
	snapshot *schema.Snapshot
}

// Ping returns ErrNoSnapshot until the first report is loaded
func (m *memoryStore) Ping() error {
	if !m.Snapshot().Loaded() {
		return ErrNoSnapshot
	}
	return nil
}

func (m *memoryStore) Snapshot() *schema.Snapshot {
	m.RLock()
	defer m.RUnlock()
	return m.snapshot
}

// Replace swaps in a new snapshot. Rows and summaries are published together.
func (m *memoryStore) Replace(s *schema.Snapshot) {
	if s == nil {
		return
	}

	m.Lock()
	m.snapshot = s
	m.Unlock()

	log.WithFields(log.Fields{
		"prefix":    storeLogPrefix,
		"date":      s.Date,
		"rows":      len(s.Rows),
		"countries": len(s.National),
		"provinces": len(s.Provincial),
	}).Info("snapshot replaced")
}

func (m *memoryStore) ProvincialCases(name string) (schema.CaseCount, error) {
	return report.ProvincialCases(m.Snapshot().Rows, name)
}

func (m *memoryStore) NationalCases(name string) (schema.CaseCount, error) {
	return report.NationalCases(m.Snapshot().Rows, name)
}

// NewMemoryStore - return an in-memory report store holding an empty snapshot
func NewMemoryStore() ReportStore {
	return &memoryStore{
		snapshot: schema.EmptySnapshot(),
	}
}
