package translate

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store implementation for scaffolding and tests.
type MemoryStore struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]map[string]*Row
	now  func() time.Time
}

var _ TransactionalStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory translation store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rows: make(map[uuid.UUID]map[string]*Row),
		now:  time.Now,
	}
}

// WithClock overrides the timestamp source for deterministic tests.
func (m *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	if now != nil {
		m.now = now
	}
	return m
}

// LoadOne retrieves the row for (record, locale), matching case-insensitively.
func (m *MemoryStore) LoadOne(_ context.Context, recordID uuid.UUID, locale string) (*Row, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	row, ok := m.rows[recordID][strings.ToLower(strings.TrimSpace(locale))]
	if !ok {
		return nil, &NotFoundError{Resource: "translation", Key: fmt.Sprintf("%s:%s", recordID, locale)}
	}
	return cloneRow(row), nil
}

// LoadAll returns every persisted row for the record.
func (m *MemoryStore) LoadAll(_ context.Context, recordID uuid.UUID) ([]*Row, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Row, 0, len(m.rows[recordID]))
	for _, row := range m.rows[recordID] {
		out = append(out, cloneRow(row))
	}
	return out, nil
}

// Insert stores a new row, assigning identity and creation time when unset.
func (m *MemoryStore) Insert(_ context.Context, row *Row) (*Row, error) {
	if row == nil {
		return nil, fmt.Errorf("translate: cannot insert nil row")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneRow(row)
	if copied.ID == uuid.Nil {
		copied.ID = uuid.New()
	}
	if copied.CreatedAt.IsZero() {
		copied.CreatedAt = m.now()
	}
	if m.rows[copied.RecordID] == nil {
		m.rows[copied.RecordID] = make(map[string]*Row)
	}
	m.rows[copied.RecordID][strings.ToLower(copied.Locale)] = copied
	return cloneRow(copied), nil
}

// Update replaces the stored row by identity.
func (m *MemoryStore) Update(_ context.Context, row *Row) (*Row, error) {
	if row == nil || row.ID == uuid.Nil {
		return nil, fmt.Errorf("translate: cannot update row without identity")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := strings.ToLower(row.Locale)
	existing, ok := m.rows[row.RecordID][key]
	if !ok {
		return nil, &NotFoundError{Resource: "translation", Key: fmt.Sprintf("%s:%s", row.RecordID, row.Locale)}
	}
	copied := cloneRow(row)
	copied.CreatedAt = existing.CreatedAt
	m.rows[row.RecordID][key] = copied
	return cloneRow(copied), nil
}

// Delete removes the row for (record, locale). Absent rows are a no-op.
func (m *MemoryStore) Delete(_ context.Context, recordID uuid.UUID, locale string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.rows[recordID], strings.ToLower(strings.TrimSpace(locale)))
	return nil
}

// DeleteAll removes every row for the record.
func (m *MemoryStore) DeleteAll(_ context.Context, recordID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.rows, recordID)
	return nil
}

// Transaction satisfies TransactionalStore so save paths exercise the same
// code shape as database-backed stores. The memory store offers no real
// atomicity.
func (m *MemoryStore) Transaction(ctx context.Context, fn func(ctx context.Context, tx Store) error) error {
	return fn(ctx, m)
}

// Count reports how many rows exist for the record. Test helper.
func (m *MemoryStore) Count(recordID uuid.UUID) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rows[recordID])
}

func cloneRow(src *Row) *Row {
	if src == nil {
		return nil
	}
	copied := *src
	copied.Fields = cloneFields(src.Fields)
	return &copied
}
